package glot

// Config carries the per-run options for a translation request. The zero
// value has every field unset; Run applies defaults (target language "en",
// source "auto") when it snapshots the config.
//
// String options distinguish "never set" from "set to empty": getters return
// ok=false only for the former. Clear methods return a field to the unset
// state.
type Config struct {
	lang         *string
	model        *string
	key          *string
	formal       *string
	sourceLang   *string
	data         *string
	dataMIME     *string
	outPath      *string
	settingsPath *string
	whisperModel *string

	slang                 bool
	overwrite             bool
	forceTranslation      bool
	showEnabledLanguages  bool
	showEnabledStyles     bool
	showModelsList        bool
	showWhisperModels     bool
	pos                   bool
	correction            bool
	showHistories         bool
	withUsingTokens       bool
	withUsingModel        bool
	withCommentout        bool
	debugOCR              bool
	verbose               bool

	directoryTranslationThreads *int

	ignoreTranslationFiles []string
}

// NewConfig returns a Config with every option unset.
func NewConfig() *Config {
	return &Config{}
}

// SetLang sets the target language code.
func (c *Config) SetLang(v string) { c.lang = &v }

// ClearLang unsets the target language.
func (c *Config) ClearLang() { c.lang = nil }

// Lang reports the target language code and whether it has been set.
func (c *Config) Lang() (string, bool) { return optString(c.lang) }

// SetModel sets the model argument, either a bare name or provider:model.
func (c *Config) SetModel(v string) { c.model = &v }

// ClearModel unsets the model argument.
func (c *Config) ClearModel() { c.model = nil }

// Model reports the model argument and whether it has been set.
func (c *Config) Model() (string, bool) { return optString(c.model) }

// SetKey sets the API key used instead of the environment lookup.
func (c *Config) SetKey(v string) { c.key = &v }

// ClearKey unsets the API key.
func (c *Config) ClearKey() { c.key = nil }

// Key reports the API key and whether it has been set.
func (c *Config) Key() (string, bool) { return optString(c.key) }

// SetFormal sets the formality style name for this run.
func (c *Config) SetFormal(v string) { c.formal = &v }

// ClearFormal unsets the formality style.
func (c *Config) ClearFormal() { c.formal = nil }

// Formal reports the formality style and whether it has been set.
func (c *Config) Formal() (string, bool) { return optString(c.formal) }

// SetSourceLang sets the source language code.
func (c *Config) SetSourceLang(v string) { c.sourceLang = &v }

// ClearSourceLang unsets the source language.
func (c *Config) ClearSourceLang() { c.sourceLang = nil }

// SourceLang reports the source language code and whether it has been set.
func (c *Config) SourceLang() (string, bool) { return optString(c.sourceLang) }

// SetData sets the data path: a file or directory to translate.
func (c *Config) SetData(v string) { c.data = &v }

// ClearData unsets the data path.
func (c *Config) ClearData() { c.data = nil }

// Data reports the data path and whether it has been set.
func (c *Config) Data() (string, bool) { return optString(c.data) }

// SetDataMIME sets the MIME hint for the data payload.
func (c *Config) SetDataMIME(v string) { c.dataMIME = &v }

// ClearDataMIME unsets the MIME hint.
func (c *Config) ClearDataMIME() { c.dataMIME = nil }

// DataMIME reports the MIME hint and whether it has been set.
func (c *Config) DataMIME() (string, bool) { return optString(c.dataMIME) }

// SetOutPath sets the output destination for translated data.
func (c *Config) SetOutPath(v string) { c.outPath = &v }

// ClearOutPath unsets the output destination.
func (c *Config) ClearOutPath() { c.outPath = nil }

// OutPath reports the output destination and whether it has been set.
func (c *Config) OutPath() (string, bool) { return optString(c.outPath) }

// SetSettingsPath sets an explicit settings file for Run to load.
func (c *Config) SetSettingsPath(v string) { c.settingsPath = &v }

// ClearSettingsPath unsets the explicit settings file.
func (c *Config) ClearSettingsPath() { c.settingsPath = nil }

// SettingsPath reports the settings file path and whether it has been set.
func (c *Config) SettingsPath() (string, bool) { return optString(c.settingsPath) }

// SetWhisperModel sets the speech recognition model name, overriding the
// settings value.
func (c *Config) SetWhisperModel(v string) { c.whisperModel = &v }

// ClearWhisperModel unsets the speech recognition model.
func (c *Config) ClearWhisperModel() { c.whisperModel = nil }

// WhisperModel reports the speech recognition model and whether it has been
// set.
func (c *Config) WhisperModel() (string, bool) { return optString(c.whisperModel) }

// SetSlang toggles casual register in the translation prompt.
func (c *Config) SetSlang(v bool) { c.slang = v }

// Slang reports whether casual register is requested.
func (c *Config) Slang() bool { return c.slang }

// SetOverwrite toggles writing translated data over the source file.
func (c *Config) SetOverwrite(v bool) { c.overwrite = v }

// Overwrite reports whether in-place writing is requested.
func (c *Config) Overwrite() bool { return c.overwrite }

// SetForceTranslation toggles treating undetectable data as plain text.
func (c *Config) SetForceTranslation(v bool) { c.forceTranslation = v }

// ForceTranslation reports whether forced text handling is requested.
func (c *Config) ForceTranslation() bool { return c.forceTranslation }

// SetShowEnabledLanguages toggles the language listing query.
func (c *Config) SetShowEnabledLanguages(v bool) { c.showEnabledLanguages = v }

// ShowEnabledLanguages reports whether the language listing is requested.
func (c *Config) ShowEnabledLanguages() bool { return c.showEnabledLanguages }

// SetShowEnabledStyles toggles the formality style listing query.
func (c *Config) SetShowEnabledStyles(v bool) { c.showEnabledStyles = v }

// ShowEnabledStyles reports whether the style listing is requested.
func (c *Config) ShowEnabledStyles() bool { return c.showEnabledStyles }

// SetShowModelsList toggles the model listing query.
func (c *Config) SetShowModelsList(v bool) { c.showModelsList = v }

// ShowModelsList reports whether the model listing is requested.
func (c *Config) ShowModelsList() bool { return c.showModelsList }

// SetShowWhisperModels toggles the speech model listing query.
func (c *Config) SetShowWhisperModels(v bool) { c.showWhisperModels = v }

// ShowWhisperModels reports whether the speech model listing is requested.
func (c *Config) ShowWhisperModels() bool { return c.showWhisperModels }

// SetPOS toggles part-of-speech analysis mode.
func (c *Config) SetPOS(v bool) { c.pos = v }

// POS reports whether part-of-speech analysis is requested.
func (c *Config) POS() bool { return c.pos }

// SetCorrection toggles proofreading mode.
func (c *Config) SetCorrection(v bool) { c.correction = v }

// Correction reports whether proofreading is requested.
func (c *Config) Correction() bool { return c.correction }

// SetShowHistories toggles the history listing query.
func (c *Config) SetShowHistories(v bool) { c.showHistories = v }

// ShowHistories reports whether the history listing is requested.
func (c *Config) ShowHistories() bool { return c.showHistories }

// SetWithUsingTokens toggles token usage reporting in text output.
func (c *Config) SetWithUsingTokens(v bool) { c.withUsingTokens = v }

// WithUsingTokens reports whether token usage reporting is requested.
func (c *Config) WithUsingTokens() bool { return c.withUsingTokens }

// SetWithUsingModel toggles model name reporting in text output.
func (c *Config) SetWithUsingModel(v bool) { c.withUsingModel = v }

// WithUsingModel reports whether model name reporting is requested.
func (c *Config) WithUsingModel() bool { return c.withUsingModel }

// SetWithCommentout toggles keeping original lines as comments in
// translated structured files.
func (c *Config) SetWithCommentout(v bool) { c.withCommentout = v }

// WithCommentout reports whether comment-out mode is requested.
func (c *Config) WithCommentout() bool { return c.withCommentout }

// SetDebugOCR toggles dumping intermediate text recognition output.
func (c *Config) SetDebugOCR(v bool) { c.debugOCR = v }

// DebugOCR reports whether recognition debugging is requested.
func (c *Config) DebugOCR() bool { return c.debugOCR }

// SetVerbose toggles verbose logging for this run.
func (c *Config) SetVerbose(v bool) { c.verbose = v }

// Verbose reports whether verbose logging is requested.
func (c *Config) Verbose() bool { return c.verbose }

// SetDirectoryTranslationThreads sets the worker count for directory runs.
// Values below one unset the option.
func (c *Config) SetDirectoryTranslationThreads(n int) {
	if n < 1 {
		c.directoryTranslationThreads = nil
		return
	}
	c.directoryTranslationThreads = &n
}

// DirectoryTranslationThreads reports the worker count and whether it has
// been set.
func (c *Config) DirectoryTranslationThreads() (int, bool) {
	if c.directoryTranslationThreads == nil {
		return 0, false
	}
	return *c.directoryTranslationThreads, true
}

// AddIgnoreTranslationFile appends a glob pattern for files a directory run
// should skip.
func (c *Config) AddIgnoreTranslationFile(pattern string) {
	c.ignoreTranslationFiles = append(c.ignoreTranslationFiles, pattern)
}

// ClearIgnoreTranslationFiles drops all ignore patterns.
func (c *Config) ClearIgnoreTranslationFiles() { c.ignoreTranslationFiles = nil }

// IgnoreTranslationFileCount reports the number of ignore patterns.
func (c *Config) IgnoreTranslationFileCount() int { return len(c.ignoreTranslationFiles) }

// IgnoreTranslationFileAt reports the ignore pattern at index i. It returns
// ok=false when i is out of range.
func (c *Config) IgnoreTranslationFileAt(i int) (string, bool) {
	if i < 0 || i >= len(c.ignoreTranslationFiles) {
		return "", false
	}
	return c.ignoreTranslationFiles[i], true
}

func optString(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}
