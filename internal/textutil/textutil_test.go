package textutil

import (
	"strings"
	"testing"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "(empty)",
		},
		{
			name:  "whitespace only",
			input: "  \n\t ",
			want:  "(empty)",
		},
		{
			name:  "plain text",
			input: "bonjour le monde",
			want:  "bonjour le monde",
		},
		{
			name:  "escapes newlines",
			input: "line one\nline two\r\n",
			want:  "line one\\nline two",
		},
		{
			name:  "trims surrounding space",
			input: "  padded  ",
			want:  "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.input); got != tt.want {
				t.Errorf("Preview(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreviewTruncatesLongValues(t *testing.T) {
	input := strings.Repeat("x", 200)
	got := Preview(input)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("Preview(long) = %q, want ellipsis suffix", got)
	}
	if want := 163; len([]rune(got)) != want {
		t.Errorf("Preview(long) length = %d, want %d", len([]rune(got)), want)
	}
}

func TestPreviewCountsRunes(t *testing.T) {
	input := strings.Repeat("あ", 161)
	got := Preview(input)
	if want := strings.Repeat("あ", 160) + "..."; got != want {
		t.Errorf("Preview(multibyte) = %q, want %q", got, want)
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean name", "report.txt", "report.txt"},
		{"path separators", "docs/notes.md", "docs-notes.md"},
		{"windows separators", "c:\\temp\\x", "c--temp-x"},
		{"removed characters", "wh?at\"<is>|this", "whatisthis"},
		{"empty", "", ""},
		{"whitespace", "  draft.txt  ", "draft.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
