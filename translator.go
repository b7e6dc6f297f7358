package glot

import "context"

// Task names the kind of work a Request asks for.
type Task string

const (
	// TaskTranslate translates text or an attachment into the target
	// language.
	TaskTranslate Task = "translate"
	// TaskCorrection proofreads text in its own language.
	TaskCorrection Task = "correction"
	// TaskPartOfSpeech annotates text with part-of-speech analysis.
	TaskPartOfSpeech Task = "part-of-speech"
	// TaskDirectory translates a directory tree file by file.
	TaskDirectory Task = "directory"
)

// OverlayStyle carries the rendering options for translated text drawn onto
// images or video frames. Zero values mean provider defaults.
type OverlayStyle struct {
	TextColor   string
	StrokeColor string
	FillColor   string
	FontFamily  string
	FontPath    string
	FontSize    float64
}

// Request is a fully resolved unit of work handed to a Translator. The
// engine fills every field from the run config, the settings, and the
// environment before dispatch; implementations should not need to consult
// configuration themselves.
type Request struct {
	Task Task

	// Text is the source text for text tasks, or additional instructions
	// accompanying an attachment.
	Text string
	// Attachment is the data payload for attachment runs, nil otherwise.
	Attachment *Attachment
	// DirPath and OutDir bound a directory run. OutDir is empty when the
	// run writes translated copies next to their sources.
	DirPath string
	OutDir  string

	Overwrite        bool
	ForceTranslation bool
	TranslatedSuffix string
	IgnoreFile       string
	IgnorePatterns   []string
	Threads          int

	TargetLang      string
	SourceLang      string
	Formality       string
	Slang           bool
	Styles          map[string]string
	SystemLanguages []string

	Provider string
	Model    string
	APIKey   string

	WhisperModel   string
	OCRNormalize   bool
	DebugOCR       bool
	WithCommentout bool

	Overlay OverlayStyle
}

// Usage counts the tokens a model consumed for one request.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// Result is what a Translator produced. Text carries translated or analyzed
// text; Data plus MIME carry a translated attachment. Model names the
// model that actually served the request when the implementation knows it.
type Result struct {
	Text  string
	Data  []byte
	MIME  string
	Model string
	Usage *Usage
}

// Translator performs the model-backed work the engine orchestrates.
// Implementations are called concurrently and must be safe for concurrent
// use.
type Translator interface {
	Translate(ctx context.Context, req Request) (*Result, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(ctx context.Context, req Request) (*Result, error)

// Translate calls f.
func (f TranslatorFunc) Translate(ctx context.Context, req Request) (*Result, error) {
	return f(ctx, req)
}
