package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Provider identifies an LLM provider the engine can delegate to.
type Provider string

const (
	OpenAI Provider = "openai"
	Gemini Provider = "gemini"
	Claude Provider = "claude"
)

// ErrNoAPIKeys is returned when no provider credentials can be resolved.
var ErrNoAPIKeys = errors.New(
	"no API keys found (checked OPENAI_API_KEY, GEMINI_API_KEY/GOOGLE_API_KEY, ANTHROPIC_API_KEY)")

func (p Provider) String() string { return string(p) }

type providerInfo struct {
	envKeys      []string
	defaultModel string
	models       []string
}

var providers = map[Provider]providerInfo{
	OpenAI: {
		envKeys:      []string{"OPENAI_API_KEY"},
		defaultModel: "gpt-5.2",
		models:       []string{"gpt-5.2", "gpt-5.2-mini", "gpt-5.1", "gpt-5.1-mini", "o3"},
	},
	Gemini: {
		envKeys:      []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"},
		defaultModel: "gemini-2.5-flash",
		models:       []string{"gemini-2.5-pro", "gemini-2.5-flash", "gemini-2.0-flash"},
	},
	Claude: {
		envKeys:      []string{"ANTHROPIC_API_KEY"},
		defaultModel: "claude-sonnet-4-5-20250929",
		models: []string{
			"claude-sonnet-4-5-20250929",
			"claude-opus-4-1-20250805",
			"claude-3-5-haiku-20241022",
		},
	},
}

// Providers returns the providers in key-resolution priority order.
func Providers() []Provider {
	return []Provider{OpenAI, Gemini, Claude}
}

// Models returns the known model identifiers for a provider.
func Models(p Provider) []string {
	info, ok := providers[p]
	if !ok {
		return nil
	}
	out := make([]string, len(info.models))
	copy(out, info.models)
	return out
}

// DefaultModel returns the model used when a provider is selected without an
// explicit model identifier.
func DefaultModel(p Provider) string {
	return providers[p].defaultModel
}

// ParseProvider maps a provider name or alias to its Provider. Aliases:
// "google" for gemini and "anthropic" for claude.
func ParseProvider(name string) (Provider, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "openai":
		return OpenAI, true
	case "gemini", "google":
		return Gemini, true
	case "claude", "anthropic":
		return Claude, true
	default:
		return "", false
	}
}

// Selection pairs a resolved provider with an optionally requested model.
// An empty Model means "use the provider default".
type Selection struct {
	Provider Provider
	Model    string
}

// ResolvedModel returns the requested model or the provider default.
func (s Selection) ResolvedModel() string {
	if s.Model != "" {
		return s.Model
	}
	return DefaultModel(s.Provider)
}

// ResolveSelection determines the provider (and optionally the model) for a
// run. A non-empty modelArg is parsed as a provider name, a "provider:model"
// pair, or a bare model looked up across the catalogs. With no modelArg, the
// first provider with a resolvable environment key wins, in Providers()
// order; a bare key override falls back to openai.
func ResolveSelection(modelArg, overrideKey string) (Selection, error) {
	if strings.TrimSpace(modelArg) != "" {
		return parseModelArg(modelArg)
	}
	return defaultSelection(overrideKey)
}

// ResolveKey returns the API key for a provider: the explicit override when
// present, otherwise the provider's environment variables in order.
func ResolveKey(p Provider, overrideKey string) (string, error) {
	if overrideKey != "" {
		return overrideKey, nil
	}
	for _, env := range providers[p].envKeys {
		if value := getEnv(env); value != "" {
			return value, nil
		}
	}
	return "", errors.New("API key not found for provider")
}

// ResolveModel validates a requested model against the provider catalog, or
// picks the provider default when no model was requested. Unknown models fail
// with close matches from the catalog when any exist.
func ResolveModel(p Provider, requested string) (string, error) {
	if requested == "" {
		return DefaultModel(p), nil
	}
	models := Models(p)
	for _, model := range models {
		if model == requested {
			return requested, nil
		}
	}
	hint := "no close matches found"
	if suggestions := suggestModels(requested, models, 8); len(suggestions) > 0 {
		hint = "did you mean: " + strings.Join(suggestions, ", ")
	}
	return "", fmt.Errorf("model '%s' not found for provider %s (%s)", requested, p, hint)
}

func suggestModels(requested string, models []string, limit int) []string {
	lowered := strings.ToLower(requested)
	candidates := make([]string, 0, limit)
	for _, model := range models {
		if strings.Contains(strings.ToLower(model), lowered) {
			candidates = append(candidates, model)
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, models...)
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

func parseModelArg(modelArg string) (Selection, error) {
	raw := strings.TrimSpace(modelArg)
	if raw == "" {
		return Selection{}, errors.New("model argument is empty")
	}

	if provider, ok := ParseProvider(raw); ok {
		return Selection{Provider: provider}, nil
	}

	if providerPart, modelPart, found := strings.Cut(raw, ":"); found {
		if provider, ok := ParseProvider(providerPart); ok {
			return Selection{Provider: provider, Model: strings.TrimSpace(modelPart)}, nil
		}
	}

	for _, provider := range Providers() {
		for _, model := range providers[provider].models {
			if model == raw {
				return Selection{Provider: provider, Model: model}, nil
			}
		}
	}

	return Selection{}, fmt.Errorf(
		"unable to infer provider from model '%s'. Use provider:model (openai:, gemini:, claude:)", raw)
}

func defaultSelection(overrideKey string) (Selection, error) {
	for _, provider := range Providers() {
		for _, env := range providers[provider].envKeys {
			if getEnv(env) != "" {
				return Selection{Provider: provider}, nil
			}
		}
	}
	if overrideKey != "" {
		return Selection{Provider: OpenAI}, nil
	}
	return Selection{}, ErrNoAPIKeys
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
