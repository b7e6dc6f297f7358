package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glot"
)

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Chdir(t.TempDir())
}

func TestConfigHandleLifecycle(t *testing.T) {
	handle := newConfigHandle()
	if handle == 0 {
		t.Fatal("expected a non-zero config handle")
	}
	if configFromHandle(handle) == nil {
		t.Fatal("handle did not resolve to a config")
	}
	if configFromHandle(0) != nil {
		t.Fatal("null handle resolved to a config")
	}
	freeConfigHandle(handle)
	freeConfigHandle(0)
}

func TestSettingsHandleLifecycle(t *testing.T) {
	handle := newSettingsHandle(glot.NewSettings())
	if handle == 0 {
		t.Fatal("expected a non-zero settings handle")
	}
	settings := settingsFromHandle(handle)
	if settings == nil {
		t.Fatal("handle did not resolve to settings")
	}
	if got := settings.HistoryLimit(); got != 50 {
		t.Fatalf("fresh settings history limit = %d, want 50", got)
	}
	if settingsFromHandle(0) != nil {
		t.Fatal("null handle resolved to settings")
	}
	freeSettingsHandle(handle)
	freeSettingsHandle(0)
}

func TestHandleTypeMismatch(t *testing.T) {
	configHandle := newConfigHandle()
	defer freeConfigHandle(configHandle)
	settingsHandle := newSettingsHandle(glot.NewSettings())
	defer freeSettingsHandle(settingsHandle)

	if configFromHandle(settingsHandle) != nil {
		t.Fatal("settings handle resolved as a config")
	}
	if settingsFromHandle(configHandle) != nil {
		t.Fatal("config handle resolved as settings")
	}
}

func TestConfigHandleRoundTrip(t *testing.T) {
	handle := newConfigHandle()
	defer freeConfigHandle(handle)

	cfg := configFromHandle(handle)
	cfg.SetLang("fr")
	cfg.SetDirectoryTranslationThreads(4)
	cfg.AddIgnoreTranslationFile("*.tmp")
	cfg.AddIgnoreTranslationFile("draft_*")

	again := configFromHandle(handle)
	if lang, ok := again.Lang(); !ok || lang != "fr" {
		t.Fatalf("lang = %q, %v; want fr, true", lang, ok)
	}
	if threads, ok := again.DirectoryTranslationThreads(); !ok || threads != 4 {
		t.Fatalf("threads = %d, %v; want 4, true", threads, ok)
	}
	if got := again.IgnoreTranslationFileCount(); got != 2 {
		t.Fatalf("ignore pattern count = %d, want 2", got)
	}
	if pattern, ok := again.IgnoreTranslationFileAt(0); !ok || pattern != "*.tmp" {
		t.Fatalf("pattern[0] = %q, %v", pattern, ok)
	}
	if pattern, ok := again.IgnoreTranslationFileAt(1); !ok || pattern != "draft_*" {
		t.Fatalf("pattern[1] = %q, %v", pattern, ok)
	}
	if _, ok := again.IgnoreTranslationFileAt(2); ok {
		t.Fatal("out-of-range pattern index reported ok")
	}
}

func TestRunHandleNullConfig(t *testing.T) {
	isolateHome(t)

	_, err := runHandle(0, "Bonjour")
	if err == nil || !strings.Contains(err.Error(), "config is null") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(err, glot.ErrInvalidArgument) {
		t.Fatalf("expected argument classification, got %v", err)
	}
}

func TestRunWithSettingsHandleNullHandles(t *testing.T) {
	isolateHome(t)

	configHandle := newConfigHandle()
	defer freeConfigHandle(configHandle)

	_, err := runWithSettingsHandle(0, newSettingsHandle(glot.NewSettings()), "Bonjour")
	if err == nil || !strings.Contains(err.Error(), "config is null") {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = runWithSettingsHandle(configHandle, 0, "Bonjour")
	if err == nil || !strings.Contains(err.Error(), "settings is null") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadSettingsHandleMissing(t *testing.T) {
	isolateHome(t)

	handle, err := loadSettingsHandle("/nonexistent")
	if handle != 0 {
		t.Fatalf("expected null handle, got %#x", handle)
	}
	if err == nil || !strings.Contains(err.Error(), "settings file not found: /nonexistent") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadSettingsHandleWellFormed(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "settings.toml")
	content := `translated_suffix = "_fr"
history_limit = 5
directory_translation_threads = 3

[ocr]
normalize = true

[formally]
fr = "Use the vous form."

[system]
languages = ["en", "fr"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	handle, err := loadSettingsHandle(path)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if handle == 0 {
		t.Fatal("expected a non-zero settings handle")
	}
	defer freeSettingsHandle(handle)

	settings := settingsFromHandle(handle)
	if settings == nil {
		t.Fatal("loaded handle did not resolve")
	}
	if suffix, ok := settings.TranslatedSuffix(); !ok || suffix != "_fr" {
		t.Fatalf("translated suffix = %q, %v", suffix, ok)
	}
	if got := settings.HistoryLimit(); got != 5 {
		t.Fatalf("history limit = %d, want 5", got)
	}
	if threads, ok := settings.DirectoryTranslationThreads(); !ok || threads != 3 {
		t.Fatalf("threads = %d, %v; want 3, true", threads, ok)
	}
	if !settings.OCRNormalize() {
		t.Fatal("ocr normalize not loaded")
	}
	if value, ok := settings.Formal("fr"); !ok || value != "Use the vous form." {
		t.Fatalf("formal[fr] = %q, %v", value, ok)
	}
	if got := settings.SystemLanguageCount(); got != 2 {
		t.Fatalf("system language count = %d, want 2", got)
	}
	if code, ok := settings.SystemLanguageAt(0); !ok || code != "en" {
		t.Fatalf("system language[0] = %q, %v", code, ok)
	}
}

func TestRunThroughHandles(t *testing.T) {
	isolateHome(t)
	t.Setenv("OPENAI_API_KEY", "test-key")

	glot.SetTranslator(glot.TranslatorFunc(func(_ context.Context, req glot.Request) (*glot.Result, error) {
		return &glot.Result{Text: "translated:" + req.Text}, nil
	}))
	t.Cleanup(func() { glot.SetTranslator(nil) })

	configHandle := newConfigHandle()
	defer freeConfigHandle(configHandle)
	configFromHandle(configHandle).SetLang("en")

	out, err := runHandle(configHandle, "Bonjour tout le monde")
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if out != "translated:Bonjour tout le monde" {
		t.Fatalf("run output = %q", out)
	}

	settingsHandle := newSettingsHandle(glot.NewSettings())
	defer freeSettingsHandle(settingsHandle)
	settingsFromHandle(settingsHandle).SetHistoryLimit(0)

	out, err = runWithSettingsHandle(configHandle, settingsHandle, "Bonne nuit")
	if err != nil {
		t.Fatalf("run with settings returned error: %v", err)
	}
	if out != "translated:Bonne nuit" {
		t.Fatalf("run output = %q", out)
	}
}
