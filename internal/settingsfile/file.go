package settingsfile

// File mirrors the settings TOML schema. Every scalar is a pointer so merge
// layers can distinguish "absent" from an explicit value.
type File struct {
	TranslatedSuffix            *string `toml:"translated_suffix,omitempty"`
	TranslationIgnoreFile       *string `toml:"translation_ignore_file,omitempty"`
	WhisperModel                *string `toml:"whisper_model,omitempty"`
	HistoryLimit                *int    `toml:"history_limit,omitempty"`
	BackupTTLDays               *uint64 `toml:"backup_ttl_days,omitempty"`
	DirectoryTranslationThreads *int    `toml:"directory_translation_threads,omitempty"`

	OCR     *OCR     `toml:"ocr,omitempty"`
	Overlay *Overlay `toml:"overlay,omitempty"`
	Server  *Server  `toml:"server,omitempty"`

	Formally map[string]string `toml:"formally,omitempty"`
	System   *System           `toml:"system,omitempty"`
}

// OCR holds the [ocr] table.
type OCR struct {
	Normalize *bool `toml:"normalize,omitempty"`
}

// Overlay holds the [overlay] table for rendered subtitle/image output.
type Overlay struct {
	TextColor   *string  `toml:"text_color,omitempty"`
	StrokeColor *string  `toml:"stroke_color,omitempty"`
	FillColor   *string  `toml:"fill_color,omitempty"`
	FontFamily  *string  `toml:"font_family,omitempty"`
	FontPath    *string  `toml:"font_path,omitempty"`
	FontSize    *float64 `toml:"font_size,omitempty"`
}

// Server holds the [server] table. The engine stores these values; serving
// itself happens elsewhere.
type Server struct {
	Host   *string `toml:"host,omitempty"`
	Port   *uint16 `toml:"port,omitempty"`
	TmpDir *string `toml:"tmp_dir,omitempty"`
}

// System holds the [system] table.
type System struct {
	Languages []string `toml:"languages"`
}

// Merge folds src into dst. Scalars set in src override dst; formal-style
// entries merge per key; a present system table replaces the language list
// wholesale.
func Merge(dst, src *File) {
	if dst == nil || src == nil {
		return
	}
	mergeString(&dst.TranslatedSuffix, src.TranslatedSuffix)
	mergeString(&dst.TranslationIgnoreFile, src.TranslationIgnoreFile)
	mergeString(&dst.WhisperModel, src.WhisperModel)
	if src.HistoryLimit != nil {
		v := *src.HistoryLimit
		dst.HistoryLimit = &v
	}
	if src.BackupTTLDays != nil {
		v := *src.BackupTTLDays
		dst.BackupTTLDays = &v
	}
	if src.DirectoryTranslationThreads != nil {
		v := *src.DirectoryTranslationThreads
		dst.DirectoryTranslationThreads = &v
	}

	if src.OCR != nil {
		if dst.OCR == nil {
			dst.OCR = &OCR{}
		}
		if src.OCR.Normalize != nil {
			v := *src.OCR.Normalize
			dst.OCR.Normalize = &v
		}
	}

	if src.Overlay != nil {
		if dst.Overlay == nil {
			dst.Overlay = &Overlay{}
		}
		mergeString(&dst.Overlay.TextColor, src.Overlay.TextColor)
		mergeString(&dst.Overlay.StrokeColor, src.Overlay.StrokeColor)
		mergeString(&dst.Overlay.FillColor, src.Overlay.FillColor)
		mergeString(&dst.Overlay.FontFamily, src.Overlay.FontFamily)
		mergeString(&dst.Overlay.FontPath, src.Overlay.FontPath)
		if src.Overlay.FontSize != nil {
			v := *src.Overlay.FontSize
			dst.Overlay.FontSize = &v
		}
	}

	if src.Server != nil {
		if dst.Server == nil {
			dst.Server = &Server{}
		}
		mergeString(&dst.Server.Host, src.Server.Host)
		mergeString(&dst.Server.TmpDir, src.Server.TmpDir)
		if src.Server.Port != nil {
			v := *src.Server.Port
			dst.Server.Port = &v
		}
	}

	if len(src.Formally) > 0 {
		if dst.Formally == nil {
			dst.Formally = make(map[string]string, len(src.Formally))
		}
		for key, value := range src.Formally {
			dst.Formally[key] = value
		}
	}

	if src.System != nil {
		languages := make([]string, len(src.System.Languages))
		copy(languages, src.System.Languages)
		dst.System = &System{Languages: languages}
	}
}

func mergeString(dst **string, src *string) {
	if src == nil {
		return
	}
	v := *src
	*dst = &v
}
