package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewConsoleFormatsRecord(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("attachment loaded", "mime", "text/plain", "bytes", 42)

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " INFO attachment loaded") {
		t.Errorf("line missing level/message: %q", line)
	}
	if !strings.Contains(line, "mime=text/plain") || !strings.Contains(line, "bytes=42") {
		t.Errorf("line missing attrs: %q", line)
	}
}

func TestNewConsoleQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("history", "src", "two words")

	if !strings.Contains(buf.String(), `src="two words"`) {
		t.Errorf("value not quoted: %q", buf.String())
	}
}

func TestNewDefaultsToWarnLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record emitted at warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestNewJSONEmitsLowercaseLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("run complete", "model", "openai:gpt-5.2-mini")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid JSON record %q: %v", buf.String(), err)
	}
	if record["level"] != "info" {
		t.Errorf("level = %v, want info", record["level"])
	}
	if record["model"] != "openai:gpt-5.2-mini" {
		t.Errorf("model = %v", record["model"])
	}
	if _, ok := record["ts"]; !ok {
		t.Errorf("record missing ts field: %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopDiscards(t *testing.T) {
	logger := Nop()
	logger.Error("nothing should happen")
}

func TestWithGroupPrefixesKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.WithGroup("usage").Info("tokens", "total", 9)

	if !strings.Contains(buf.String(), "usage.total=9") {
		t.Errorf("group prefix missing: %q", buf.String())
	}
}
