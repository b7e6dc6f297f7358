package glot

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"glot/internal/catalog"
	"glot/internal/history"
	"glot/internal/language"
	"glot/internal/textutil"
)

// renderLanguagesAndStyles answers the language and style listing queries.
// Both can be requested at once; the sections are joined with a newline.
func renderLanguagesAndStyles(showLanguages, showStyles bool, settings *Settings) string {
	var sections []string
	if showLanguages {
		lines := make([]string, 0, settings.SystemLanguageCount())
		for i := 0; i < settings.SystemLanguageCount(); i++ {
			code, _ := settings.SystemLanguageAt(i)
			lines = append(lines, code+"\t"+language.DisplayName(code))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	if showStyles {
		styles := settings.formalStyles()
		keys := make([]string, 0, len(styles))
		for key := range styles {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		lines := make([]string, 0, len(keys))
		for _, key := range keys {
			lines = append(lines, key+"\t"+styles[key])
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n")
}

// renderModelsList answers the model listing query. With a model argument
// only that provider is listed; otherwise every provider with resolvable
// credentials is.
func renderModelsList(cfg *Config) (string, error) {
	_, keySet := cfg.Key()
	modelArg, modelSet := cfg.Model()
	if keySet && !modelSet {
		return "", kindErrorf(ErrInvalidArgument, "--key requires --model when using --show-models-list")
	}

	if modelSet {
		if strings.TrimSpace(modelArg) == "" {
			return "", kindErrorf(ErrInvalidArgument, "model argument is empty")
		}
		keyOverride, _ := cfg.Key()
		selection, err := catalog.ResolveSelection(modelArg, keyOverride)
		if err != nil {
			return "", wrapKind(ErrInvalidArgument, err)
		}
		return strings.Join(providerModelLines(selection.Provider), "\n"), nil
	}

	var lines []string
	for _, provider := range catalog.Providers() {
		if _, err := catalog.ResolveKey(provider, ""); err != nil {
			continue
		}
		lines = append(lines, providerModelLines(provider)...)
	}
	if len(lines) == 0 {
		return "", wrapKind(ErrInvalidArgument, catalog.ErrNoAPIKeys)
	}
	return strings.Join(lines, "\n"), nil
}

func providerModelLines(provider catalog.Provider) []string {
	models := catalog.Models(provider)
	lines := make([]string, 0, len(models))
	for _, model := range models {
		lines = append(lines, provider.String()+":"+model)
	}
	return lines
}

// renderWhisperModels answers the speech model listing query.
func renderWhisperModels() string {
	lines := make([]string, 0, len(catalog.WhisperModels())+2)
	lines = append(lines, "whisper models (ggml/gguf):")
	for _, name := range catalog.WhisperModels() {
		lines = append(lines, "- "+name)
	}
	lines = append(lines, "note: *.en models are English-only")
	return strings.Join(lines, "\n")
}

// renderHistories answers the history listing query, newest first.
func renderHistories(ctx context.Context, store *history.Store) (string, error) {
	entries, err := store.Recent(ctx, 0)
	if err != nil {
		return "", wrapKind(ErrIO, err)
	}
	lines := []string{fmt.Sprintf("histories: %d", len(entries))}
	for i, entry := range entries {
		lines = append(lines, fmt.Sprintf("[%d]", i))
		lines = append(lines, "  datetime: "+entry.CreatedAt.UTC().Format(time.RFC3339))
		lines = append(lines, "  type: "+string(entry.Kind))
		lines = append(lines, "  model: "+entry.Model)
		if entry.Formal != "" {
			lines = append(lines, "  formal: "+entry.Formal)
		}
		if entry.MIME != "" {
			lines = append(lines, "  mime: "+entry.MIME)
		}
		lines = append(lines, "  src: "+textutil.Preview(entry.Source))
		lines = append(lines, "  dest: "+textutil.Preview(entry.Result))
	}
	return strings.Join(lines, "\n"), nil
}
