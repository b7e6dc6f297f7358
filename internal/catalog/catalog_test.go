package catalog

import (
	"errors"
	"strings"
	"testing"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{"OPENAI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY", "ANTHROPIC_API_KEY"} {
		t.Setenv(env, "")
	}
}

func TestParseProvider(t *testing.T) {
	tests := []struct {
		input string
		want  Provider
		ok    bool
	}{
		{"openai", OpenAI, true},
		{"Gemini", Gemini, true},
		{"google", Gemini, true},
		{"claude", Claude, true},
		{"anthropic", Claude, true},
		{" OPENAI ", OpenAI, true},
		{"mistral", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseProvider(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseProvider(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolveSelectionModelArg(t *testing.T) {
	clearKeyEnv(t)

	sel, err := ResolveSelection("claude:claude-3-5-haiku-20241022", "")
	if err != nil {
		t.Fatalf("ResolveSelection returned error: %v", err)
	}
	if sel.Provider != Claude || sel.Model != "claude-3-5-haiku-20241022" {
		t.Errorf("selection = %+v", sel)
	}

	sel, err = ResolveSelection("gemini", "")
	if err != nil {
		t.Fatalf("ResolveSelection returned error: %v", err)
	}
	if sel.Provider != Gemini || sel.Model != "" {
		t.Errorf("selection = %+v", sel)
	}
	if got := sel.ResolvedModel(); got != DefaultModel(Gemini) {
		t.Errorf("ResolvedModel = %q, want provider default", got)
	}
}

func TestResolveSelectionBareModel(t *testing.T) {
	clearKeyEnv(t)

	sel, err := ResolveSelection("gemini-2.5-pro", "")
	if err != nil {
		t.Fatalf("ResolveSelection returned error: %v", err)
	}
	if sel.Provider != Gemini || sel.Model != "gemini-2.5-pro" {
		t.Errorf("selection = %+v", sel)
	}
}

func TestResolveSelectionUnknownModel(t *testing.T) {
	clearKeyEnv(t)

	_, err := ResolveSelection("mystery-model", "")
	if err == nil {
		t.Fatal("expected error for bare unknown model")
	}
	if !strings.Contains(err.Error(), "provider:model") {
		t.Errorf("error missing hint: %v", err)
	}
}

func TestResolveSelectionEnvOrder(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")

	sel, err := ResolveSelection("", "")
	if err != nil {
		t.Fatalf("ResolveSelection returned error: %v", err)
	}
	if sel.Provider != Gemini {
		t.Errorf("provider = %q, want gemini before claude", sel.Provider)
	}
}

func TestResolveSelectionOverrideKeyFallsBackToOpenAI(t *testing.T) {
	clearKeyEnv(t)

	sel, err := ResolveSelection("", "sk-test")
	if err != nil {
		t.Fatalf("ResolveSelection returned error: %v", err)
	}
	if sel.Provider != OpenAI {
		t.Errorf("provider = %q, want openai", sel.Provider)
	}
}

func TestResolveSelectionNoKeys(t *testing.T) {
	clearKeyEnv(t)

	_, err := ResolveSelection("", "")
	if !errors.Is(err, ErrNoAPIKeys) {
		t.Fatalf("error = %v, want ErrNoAPIKeys", err)
	}
}

func TestResolveKey(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GEMINI_API_KEY", "primary")
	t.Setenv("GOOGLE_API_KEY", "secondary")

	key, err := ResolveKey(Gemini, "")
	if err != nil {
		t.Fatalf("ResolveKey returned error: %v", err)
	}
	if key != "primary" {
		t.Errorf("key = %q, want primary env var first", key)
	}

	key, err = ResolveKey(Gemini, "override")
	if err != nil {
		t.Fatalf("ResolveKey returned error: %v", err)
	}
	if key != "override" {
		t.Errorf("key = %q, want override", key)
	}

	if _, err := ResolveKey(OpenAI, ""); err == nil {
		t.Error("expected error for provider without key")
	}
}

func TestResolveModel(t *testing.T) {
	model, err := ResolveModel(Gemini, "")
	if err != nil {
		t.Fatalf("ResolveModel returned error: %v", err)
	}
	if model != DefaultModel(Gemini) {
		t.Errorf("model = %q, want provider default", model)
	}

	model, err = ResolveModel(OpenAI, "gpt-5.1")
	if err != nil {
		t.Fatalf("ResolveModel returned error: %v", err)
	}
	if model != "gpt-5.1" {
		t.Errorf("model = %q, want gpt-5.1", model)
	}
}

func TestResolveModelUnknownSuggests(t *testing.T) {
	_, err := ResolveModel(OpenAI, "gpt")
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
	if !strings.Contains(err.Error(), "did you mean: gpt-5.2") {
		t.Errorf("error missing suggestions: %v", err)
	}

	_, err = ResolveModel(Gemini, "totally-unrelated")
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
	if !strings.Contains(err.Error(), "did you mean: gemini-2.5-pro") {
		t.Errorf("error should fall back to the catalog head: %v", err)
	}
}

func TestModelsCopies(t *testing.T) {
	models := Models(OpenAI)
	if len(models) == 0 {
		t.Fatal("openai model list is empty")
	}
	models[0] = "mutated"
	if Models(OpenAI)[0] == "mutated" {
		t.Error("Models returned shared backing array")
	}
}

func TestWhisperModels(t *testing.T) {
	models := WhisperModels()
	if len(models) != 11 {
		t.Fatalf("len = %d, want 11", len(models))
	}
	if models[0] != "tiny" || models[6] != "large-v3" || models[10] != "medium.en" {
		t.Errorf("unexpected ordering: %v", models)
	}
}
