package catalog

// whisperModels lists the speech models in download-size order, multilingual
// first, English-only variants after.
var whisperModels = []string{
	"tiny",
	"base",
	"small",
	"medium",
	"large",
	"large-v2",
	"large-v3",
	"tiny.en",
	"base.en",
	"small.en",
	"medium.en",
}

// WhisperModels returns the recognized whisper model names.
func WhisperModels() []string {
	out := make([]string, len(whisperModels))
	copy(out, whisperModels)
	return out
}
