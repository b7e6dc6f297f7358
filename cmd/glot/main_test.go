package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"glot"
	"glot/internal/history"
	"glot/internal/settingsfile"
)

type cliTranslator struct {
	mu   sync.Mutex
	reqs []glot.Request
}

func (c *cliTranslator) Translate(_ context.Context, req glot.Request) (*glot.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reqs = append(c.reqs, req)
	return &glot.Result{Text: "translated:" + req.Text}, nil
}

func (c *cliTranslator) last(t *testing.T) glot.Request {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.reqs) == 0 {
		t.Fatal("expected at least one translator call")
	}
	return c.reqs[len(c.reqs)-1]
}

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func registerTranslator(t *testing.T) *cliTranslator {
	t.Helper()
	fake := &cliTranslator{}
	glot.SetTranslator(fake)
	t.Cleanup(func() { glot.SetTranslator(nil) })
	return fake
}

func TestCLISettingsInit(t *testing.T) {
	isolateHome(t)
	target := filepath.Join(t.TempDir(), "settings.toml")

	out, _, err := runCLI(t, []string{"settings", "init", target}, "")
	if err != nil {
		t.Fatalf("settings init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample settings to "+target) {
		t.Fatalf("unexpected output: %q", out)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if _, err := settingsfile.Parse(data); err != nil {
		t.Fatalf("sample does not parse: %v", err)
	}

	if _, _, err := runCLI(t, []string{"settings", "init", target}, ""); err == nil ||
		!strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected exists error, got %v", err)
	}

	if _, _, err := runCLI(t, []string{"settings", "init", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("settings init --overwrite: %v", err)
	}
}

func TestCLIShowWhisperModels(t *testing.T) {
	isolateHome(t)

	out, _, err := runCLI(t, []string{"--show-whisper-models"}, "")
	if err != nil {
		t.Fatalf("show whisper models: %v", err)
	}
	if !strings.Contains(out, "whisper models (ggml/gguf):") || !strings.Contains(out, "- large-v3") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCLIHistoryList(t *testing.T) {
	isolateHome(t)
	dbPath := filepath.Join(t.TempDir(), "history.db")

	out, _, err := runCLI(t, []string{"history", "list", "--db", dbPath}, "")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	if !strings.Contains(out, "History is empty") {
		t.Fatalf("unexpected output: %q", out)
	}

	store, err := history.Open(dbPath)
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	if _, err := store.Record(context.Background(), history.Entry{
		Kind:       history.KindText,
		Model:      "openai:gpt-5.2",
		TargetLang: "en",
		Source:     "Bonjour",
		Result:     "Hello",
	}, 50); err != nil {
		t.Fatalf("record entry: %v", err)
	}
	store.Close()

	out, _, err = runCLI(t, []string{"history", "list", "--db", dbPath}, "")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	if !strings.Contains(out, "When\tType\tModel") {
		t.Fatalf("expected tab-separated header, got %q", out)
	}
	if !strings.Contains(out, "openai:gpt-5.2") || !strings.Contains(out, "Bonjour") {
		t.Fatalf("missing entry fields: %q", out)
	}
}

func TestCLIBareInvocationShowsHelp(t *testing.T) {
	isolateHome(t)

	out, _, err := runCLI(t, nil, "")
	if err != nil {
		t.Fatalf("bare invocation: %v", err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("expected help output, got %q", out)
	}
}

func TestCLITranslatesStdin(t *testing.T) {
	isolateHome(t)
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	fake := registerTranslator(t)

	out, _, err := runCLI(t, []string{"-l", "en"}, "Bonjour")
	if err != nil {
		t.Fatalf("translate stdin: %v", err)
	}
	if !strings.Contains(out, "translated:Bonjour") {
		t.Fatalf("unexpected output: %q", out)
	}
	if req := fake.last(t); req.TargetLang != "en" {
		t.Fatalf("unexpected target: %q", req.TargetLang)
	}
}

func TestCLIFlagMapping(t *testing.T) {
	isolateHome(t)
	t.Setenv("OPENAI_API_KEY", "test-key")
	fake := registerTranslator(t)

	_, _, err := runCLI(t, []string{
		"-l", "ja",
		"-L", "fr",
		"-m", "openai:gpt-5.1",
		"-f", "formal",
		"--slang",
		"--with-commentout",
		"Good", "morning",
	}, "")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	req := fake.last(t)
	if req.Text != "Good morning" {
		t.Fatalf("expected joined args, got %q", req.Text)
	}
	if req.TargetLang != "ja" || req.SourceLang != "fr" {
		t.Fatalf("unexpected langs: %q %q", req.TargetLang, req.SourceLang)
	}
	if req.Model != "gpt-5.1" {
		t.Fatalf("unexpected model: %q", req.Model)
	}
	if !req.Slang || !req.WithCommentout {
		t.Fatalf("expected slang and commentout flags, got %+v", req)
	}
}
