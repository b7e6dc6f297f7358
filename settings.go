package glot

import (
	"errors"

	"github.com/pelletier/go-toml/v2"

	"glot/internal/settingsfile"
)

const defaultHistoryLimit = 50

// Settings carries the durable engine configuration normally read from the
// layered settings.toml files. Optional string fields distinguish unset from
// empty the same way Config does; numeric fields use zero as "unset, apply
// the engine default".
type Settings struct {
	translatedSuffix      *string
	translationIgnoreFile *string
	overlayTextColor      *string
	overlayStrokeColor    *string
	overlayFillColor      *string
	overlayFontFamily     *string
	overlayFontPath       *string
	whisperModel          *string
	serverHost            *string
	serverTmpDir          *string

	ocrNormalize bool

	historyLimit                int
	backupTTLDays               uint64
	directoryTranslationThreads int
	overlayFontSize             *float64
	serverPort                  uint16

	formally        map[string]string
	systemLanguages []string
}

// NewSettings returns a Settings with engine defaults: history capped at 50
// entries and everything else unset.
func NewSettings() *Settings {
	return &Settings{
		historyLimit: defaultHistoryLimit,
		formally:     make(map[string]string),
	}
}

// LoadSettings reads the layered settings files plus the explicit path. The
// explicit file must exist; the layered files are merged when present.
func LoadSettings(path string) (*Settings, error) {
	return loadSettingsWith(settingsfile.Loader{}, path)
}

func loadSettingsWith(loader settingsfile.Loader, path string) (*Settings, error) {
	file, err := loader.Load(path)
	if err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			return nil, wrapKind(ErrParse, err)
		}
		return nil, wrapKind(ErrIO, err)
	}
	return settingsFromFile(file), nil
}

// Marshal renders the settings as TOML. Optional fields are omitted when
// unset; counted fields are always written so an explicit zero survives a
// round trip.
func (s *Settings) Marshal() ([]byte, error) {
	return settingsfile.Marshal(s.toFile())
}

// SetTranslatedSuffix sets the file name suffix for translated copies.
func (s *Settings) SetTranslatedSuffix(v string) { s.translatedSuffix = &v }

// ClearTranslatedSuffix unsets the suffix.
func (s *Settings) ClearTranslatedSuffix() { s.translatedSuffix = nil }

// TranslatedSuffix reports the suffix and whether it has been set.
func (s *Settings) TranslatedSuffix() (string, bool) { return optString(s.translatedSuffix) }

// SetTranslationIgnoreFile sets the per-directory ignore file name.
func (s *Settings) SetTranslationIgnoreFile(v string) { s.translationIgnoreFile = &v }

// ClearTranslationIgnoreFile unsets the ignore file name.
func (s *Settings) ClearTranslationIgnoreFile() { s.translationIgnoreFile = nil }

// TranslationIgnoreFile reports the ignore file name and whether it has been
// set.
func (s *Settings) TranslationIgnoreFile() (string, bool) {
	return optString(s.translationIgnoreFile)
}

// SetOverlayTextColor sets the overlay text color.
func (s *Settings) SetOverlayTextColor(v string) { s.overlayTextColor = &v }

// ClearOverlayTextColor unsets the overlay text color.
func (s *Settings) ClearOverlayTextColor() { s.overlayTextColor = nil }

// OverlayTextColor reports the overlay text color and whether it has been
// set.
func (s *Settings) OverlayTextColor() (string, bool) { return optString(s.overlayTextColor) }

// SetOverlayStrokeColor sets the overlay stroke color.
func (s *Settings) SetOverlayStrokeColor(v string) { s.overlayStrokeColor = &v }

// ClearOverlayStrokeColor unsets the overlay stroke color.
func (s *Settings) ClearOverlayStrokeColor() { s.overlayStrokeColor = nil }

// OverlayStrokeColor reports the overlay stroke color and whether it has
// been set.
func (s *Settings) OverlayStrokeColor() (string, bool) { return optString(s.overlayStrokeColor) }

// SetOverlayFillColor sets the overlay fill color.
func (s *Settings) SetOverlayFillColor(v string) { s.overlayFillColor = &v }

// ClearOverlayFillColor unsets the overlay fill color.
func (s *Settings) ClearOverlayFillColor() { s.overlayFillColor = nil }

// OverlayFillColor reports the overlay fill color and whether it has been
// set.
func (s *Settings) OverlayFillColor() (string, bool) { return optString(s.overlayFillColor) }

// SetOverlayFontFamily sets the overlay font family name.
func (s *Settings) SetOverlayFontFamily(v string) { s.overlayFontFamily = &v }

// ClearOverlayFontFamily unsets the overlay font family.
func (s *Settings) ClearOverlayFontFamily() { s.overlayFontFamily = nil }

// OverlayFontFamily reports the overlay font family and whether it has been
// set.
func (s *Settings) OverlayFontFamily() (string, bool) { return optString(s.overlayFontFamily) }

// SetOverlayFontPath sets an explicit overlay font file.
func (s *Settings) SetOverlayFontPath(v string) { s.overlayFontPath = &v }

// ClearOverlayFontPath unsets the overlay font file.
func (s *Settings) ClearOverlayFontPath() { s.overlayFontPath = nil }

// OverlayFontPath reports the overlay font file and whether it has been set.
func (s *Settings) OverlayFontPath() (string, bool) { return optString(s.overlayFontPath) }

// SetWhisperModel sets the default speech recognition model.
func (s *Settings) SetWhisperModel(v string) { s.whisperModel = &v }

// ClearWhisperModel unsets the speech recognition model.
func (s *Settings) ClearWhisperModel() { s.whisperModel = nil }

// WhisperModel reports the speech recognition model and whether it has been
// set.
func (s *Settings) WhisperModel() (string, bool) { return optString(s.whisperModel) }

// SetServerHost sets the host for the companion server mode.
func (s *Settings) SetServerHost(v string) { s.serverHost = &v }

// ClearServerHost unsets the server host.
func (s *Settings) ClearServerHost() { s.serverHost = nil }

// ServerHost reports the server host and whether it has been set.
func (s *Settings) ServerHost() (string, bool) { return optString(s.serverHost) }

// SetServerTmpDir sets the server scratch directory.
func (s *Settings) SetServerTmpDir(v string) { s.serverTmpDir = &v }

// ClearServerTmpDir unsets the server scratch directory.
func (s *Settings) ClearServerTmpDir() { s.serverTmpDir = nil }

// ServerTmpDir reports the server scratch directory and whether it has been
// set.
func (s *Settings) ServerTmpDir() (string, bool) { return optString(s.serverTmpDir) }

// SetOCRNormalize toggles text normalization after recognition.
func (s *Settings) SetOCRNormalize(v bool) { s.ocrNormalize = v }

// OCRNormalize reports whether recognition output is normalized.
func (s *Settings) OCRNormalize() bool { return s.ocrNormalize }

// SetHistoryLimit caps the stored run history. Zero disables recording;
// negative values are treated as zero.
func (s *Settings) SetHistoryLimit(n int) {
	if n < 0 {
		n = 0
	}
	s.historyLimit = n
}

// HistoryLimit reports the history cap.
func (s *Settings) HistoryLimit() int { return s.historyLimit }

// SetBackupTTLDays sets how long overwrite backups are kept. Zero means the
// engine default of thirty days.
func (s *Settings) SetBackupTTLDays(days uint64) { s.backupTTLDays = days }

// BackupTTLDays reports the backup retention in days.
func (s *Settings) BackupTTLDays() uint64 { return s.backupTTLDays }

// SetDirectoryTranslationThreads sets the worker count for directory runs.
// Values below one unset the option.
func (s *Settings) SetDirectoryTranslationThreads(n int) {
	if n < 1 {
		n = 0
	}
	s.directoryTranslationThreads = n
}

// DirectoryTranslationThreads reports the worker count and whether it has
// been set.
func (s *Settings) DirectoryTranslationThreads() (int, bool) {
	if s.directoryTranslationThreads == 0 {
		return 0, false
	}
	return s.directoryTranslationThreads, true
}

// SetOverlayFontSize sets the overlay font size in points. Values at or
// below zero unset the option.
func (s *Settings) SetOverlayFontSize(size float64) {
	if size <= 0 {
		s.overlayFontSize = nil
		return
	}
	s.overlayFontSize = &size
}

// OverlayFontSize reports the overlay font size and whether it has been set.
func (s *Settings) OverlayFontSize() (float64, bool) {
	if s.overlayFontSize == nil {
		return 0, false
	}
	return *s.overlayFontSize, true
}

// SetServerPort sets the server port. Port zero is rejected and leaves the
// setting unchanged.
func (s *Settings) SetServerPort(port uint16) bool {
	if port == 0 {
		return false
	}
	s.serverPort = port
	return true
}

// ServerPort reports the server port and whether it has been set.
func (s *Settings) ServerPort() (uint16, bool) {
	if s.serverPort == 0 {
		return 0, false
	}
	return s.serverPort, true
}

// SetFormal maps a formality style key to its prompt value.
func (s *Settings) SetFormal(key, value string) {
	if s.formally == nil {
		s.formally = make(map[string]string)
	}
	s.formally[key] = value
}

// Formal reports the style value for key and whether the key exists.
func (s *Settings) Formal(key string) (string, bool) {
	value, ok := s.formally[key]
	return value, ok
}

// RemoveFormal deletes a style key and reports whether it was present.
func (s *Settings) RemoveFormal(key string) bool {
	if _, ok := s.formally[key]; !ok {
		return false
	}
	delete(s.formally, key)
	return true
}

// FormalCount reports the number of formality styles.
func (s *Settings) FormalCount() int { return len(s.formally) }

// AddSystemLanguage appends a language code to the system language list.
func (s *Settings) AddSystemLanguage(code string) {
	s.systemLanguages = append(s.systemLanguages, code)
}

// ClearSystemLanguages drops every system language.
func (s *Settings) ClearSystemLanguages() { s.systemLanguages = nil }

// SystemLanguageCount reports the number of system languages.
func (s *Settings) SystemLanguageCount() int { return len(s.systemLanguages) }

// SystemLanguageAt reports the system language at index i. It returns
// ok=false when i is out of range.
func (s *Settings) SystemLanguageAt(i int) (string, bool) {
	if i < 0 || i >= len(s.systemLanguages) {
		return "", false
	}
	return s.systemLanguages[i], true
}

func (s *Settings) formalStyles() map[string]string {
	styles := make(map[string]string, len(s.formally))
	for key, value := range s.formally {
		styles[key] = value
	}
	return styles
}

func (s *Settings) systemLanguageList() []string {
	languages := make([]string, len(s.systemLanguages))
	copy(languages, s.systemLanguages)
	return languages
}

func settingsFromFile(file *settingsfile.File) *Settings {
	settings := NewSettings()
	if file == nil {
		return settings
	}

	settings.translatedSuffix = cloneString(file.TranslatedSuffix)
	settings.translationIgnoreFile = cloneString(file.TranslationIgnoreFile)
	settings.whisperModel = cloneString(file.WhisperModel)
	if file.HistoryLimit != nil {
		settings.SetHistoryLimit(*file.HistoryLimit)
	}
	if file.BackupTTLDays != nil {
		settings.backupTTLDays = *file.BackupTTLDays
	}
	if file.DirectoryTranslationThreads != nil {
		settings.SetDirectoryTranslationThreads(*file.DirectoryTranslationThreads)
	}

	if file.OCR != nil && file.OCR.Normalize != nil {
		settings.ocrNormalize = *file.OCR.Normalize
	}

	if overlay := file.Overlay; overlay != nil {
		settings.overlayTextColor = cloneString(overlay.TextColor)
		settings.overlayStrokeColor = cloneString(overlay.StrokeColor)
		settings.overlayFillColor = cloneString(overlay.FillColor)
		settings.overlayFontFamily = cloneString(overlay.FontFamily)
		settings.overlayFontPath = cloneString(overlay.FontPath)
		if overlay.FontSize != nil {
			settings.SetOverlayFontSize(*overlay.FontSize)
		}
	}

	if server := file.Server; server != nil {
		settings.serverHost = cloneString(server.Host)
		settings.serverTmpDir = cloneString(server.TmpDir)
		if server.Port != nil {
			settings.SetServerPort(*server.Port)
		}
	}

	for key, value := range file.Formally {
		settings.SetFormal(key, value)
	}
	if file.System != nil {
		settings.systemLanguages = append([]string(nil), file.System.Languages...)
	}
	return settings
}

func (s *Settings) toFile() *settingsfile.File {
	file := &settingsfile.File{
		TranslatedSuffix:            cloneString(s.translatedSuffix),
		TranslationIgnoreFile:       cloneString(s.translationIgnoreFile),
		WhisperModel:                cloneString(s.whisperModel),
		HistoryLimit:                &s.historyLimit,
		BackupTTLDays:               &s.backupTTLDays,
		DirectoryTranslationThreads: &s.directoryTranslationThreads,
		OCR:                         &settingsfile.OCR{Normalize: &s.ocrNormalize},
	}

	if s.overlayTextColor != nil || s.overlayStrokeColor != nil || s.overlayFillColor != nil ||
		s.overlayFontFamily != nil || s.overlayFontPath != nil || s.overlayFontSize != nil {
		file.Overlay = &settingsfile.Overlay{
			TextColor:   cloneString(s.overlayTextColor),
			StrokeColor: cloneString(s.overlayStrokeColor),
			FillColor:   cloneString(s.overlayFillColor),
			FontFamily:  cloneString(s.overlayFontFamily),
			FontPath:    cloneString(s.overlayFontPath),
		}
		if s.overlayFontSize != nil {
			size := *s.overlayFontSize
			file.Overlay.FontSize = &size
		}
	}

	if s.serverHost != nil || s.serverTmpDir != nil || s.serverPort != 0 {
		file.Server = &settingsfile.Server{
			Host:   cloneString(s.serverHost),
			TmpDir: cloneString(s.serverTmpDir),
		}
		if s.serverPort != 0 {
			port := s.serverPort
			file.Server.Port = &port
		}
	}

	if len(s.formally) > 0 {
		file.Formally = s.formalStyles()
	}
	if len(s.systemLanguages) > 0 {
		file.System = &settingsfile.System{Languages: s.systemLanguageList()}
	}
	return file
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
