package glot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

func TestResolveMIMEShorthands(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"pdf", MIMEPDF},
		{"doc", MIMEDoc},
		{"docx", MIMEDocx},
		{"docs", MIMEDocx},
		{"pptx", MIMEPptx},
		{"xlsx", MIMEXlsx},
		{"txt", MIMEText},
		{"text", MIMEText},
		{"html", MIMEHTML},
		{"htm", MIMEHTML},
		{"json", MIMEJSON},
		{"yaml", MIMEYAML},
		{"yml", MIMEYAML},
		{"po", MIMEPO},
		{"mp3", MIMEMP3},
		{"wav", MIMEWAV},
		{"m4a", MIMEM4A},
		{"flac", MIMEFLAC},
		{"ogg", MIMEOGG},
		{"jpg", "image/jpeg"},
		{"jpeg", "image/jpeg"},
		{"png", "image/png"},
		{"tiff", "image/tiff"},
		{"PDF", MIMEPDF},
		{"  mp3  ", MIMEMP3},
		{"application/pdf", MIMEPDF},
		{"text/x-yaml", MIMEYAML},
		{"application/x-gettext-translation", MIMEPO},
		{"image/svg+xml", "image/svg+xml"},
		{"audio/opus", "audio/opus"},
	}
	for _, tc := range cases {
		got, err := resolveMIME(tc.input, nil, "")
		if err != nil {
			t.Fatalf("resolveMIME(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("resolveMIME(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestResolveMIMERejectsUnknownHint(t *testing.T) {
	_, err := resolveMIME("bogus", nil, "")
	if err == nil {
		t.Fatal("expected error for unknown hint")
	}
	if !strings.Contains(err.Error(), "unsupported --data-mime 'bogus'") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid-argument classification, got %v", err)
	}
}

func TestResolveMIMEAutoSniffsContent(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"png", pngHeader, "image/png"},
		{"pdf", []byte("%PDF-1.7\n%binary"), MIMEPDF},
		{"html", []byte("<html><body>bonjour</body></html>"), MIMEHTML},
		{"text", []byte("hello world"), MIMEText},
		{"mp3", append([]byte("ID3"), 0x04, 0x00, 0x00), MIMEMP3},
		{"wav", []byte("RIFF\x24\x00\x00\x00WAVEfmt "), MIMEWAV},
	}
	for _, tc := range cases {
		got, err := resolveMIME("auto", tc.data, "")
		if err != nil {
			t.Fatalf("%s: resolveMIME returned error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: resolveMIME = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestResolveMIMEDetectsOfficeArchives(t *testing.T) {
	zipWith := func(marker string) []byte {
		payload := []byte{'P', 'K', 0x03, 0x04, 0x14, 0x00, 0x00, 0x00}
		return append(payload, []byte("unrelated "+marker+"content")...)
	}
	cases := []struct {
		marker string
		want   string
	}{
		{"word/", MIMEDocx},
		{"ppt/", MIMEPptx},
		{"xl/", MIMEXlsx},
	}
	for _, tc := range cases {
		got, err := resolveMIME("auto", zipWith(tc.marker), "archive.bin")
		if err != nil {
			t.Fatalf("marker %q: resolveMIME returned error: %v", tc.marker, err)
		}
		if got != tc.want {
			t.Fatalf("marker %q: resolveMIME = %q, want %q", tc.marker, got, tc.want)
		}
	}
}

func TestResolveMIMEAutoFallsBackToExtension(t *testing.T) {
	binary := []byte{0x00, 0xFF, 0x10, 0x03}
	got, err := resolveMIME("auto", binary, "song.m4a")
	if err != nil {
		t.Fatalf("resolveMIME returned error: %v", err)
	}
	if got != MIMEM4A {
		t.Fatalf("resolveMIME = %q, want %q", got, MIMEM4A)
	}

	got, err = resolveMIME("", binary, "photo.HEIC")
	if err != nil {
		t.Fatalf("resolveMIME returned error: %v", err)
	}
	if got != "image/heic" {
		t.Fatalf("resolveMIME = %q, want image/heic", got)
	}
}

func TestResolveMIMEImageHintRequiresImageData(t *testing.T) {
	_, err := resolveMIME("image/*", []byte("just text"), "note.txt")
	if err == nil {
		t.Fatal("expected error for non-image data")
	}
	if !strings.Contains(err.Error(), "data-mime image/* requires image data (detected 'text/plain')") {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := resolveMIME("image", pngHeader, "shot.png")
	if err != nil {
		t.Fatalf("resolveMIME returned error: %v", err)
	}
	if got != "image/png" {
		t.Fatalf("resolveMIME = %q, want image/png", got)
	}
}

func TestResolveMIMEUndetectableReportsSubject(t *testing.T) {
	binary := []byte{0x00, 0x01, 0x02}

	_, err := resolveMIME("auto", binary, "mystery.zzz")
	if err == nil || !strings.Contains(err.Error(), "unable to detect supported mime for file 'mystery.zzz'") {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = resolveMIME("auto", binary, "")
	if err == nil || !strings.Contains(err.Error(), "unable to detect supported mime for file 'stdin'") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAttachmentFromBytesFallsBackForAutoHint(t *testing.T) {
	binary := []byte{0x00, 0x01, 0x02}

	att, err := attachmentFromBytes(binary, "", "blob.zzz", false)
	if err != nil {
		t.Fatalf("attachmentFromBytes returned error: %v", err)
	}
	if att.MIME != MIMEOctetStream {
		t.Fatalf("expected octet-stream fallback, got %q", att.MIME)
	}

	att, err = attachmentFromBytes(binary, "auto", "blob.zzz", true)
	if err != nil {
		t.Fatalf("attachmentFromBytes returned error: %v", err)
	}
	if att.MIME != MIMEText {
		t.Fatalf("expected forced text fallback, got %q", att.MIME)
	}

	if _, err := attachmentFromBytes(binary, "bogus", "blob.zzz", true); err == nil {
		t.Fatal("expected explicit unknown hint to fail even under force")
	}
}

func TestLoadAttachmentReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "letter.txt")
	content := []byte("Bonjour tout le monde")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	att, err := loadAttachment(path, "", false)
	if err != nil {
		t.Fatalf("loadAttachment returned error: %v", err)
	}
	if att.Name != "letter.txt" {
		t.Fatalf("unexpected name: %q", att.Name)
	}
	if att.MIME != MIMEText {
		t.Fatalf("unexpected mime: %q", att.MIME)
	}
	if !bytes.Equal(att.Bytes, content) {
		t.Fatalf("unexpected bytes: %q", att.Bytes)
	}

	if _, err := loadAttachment(filepath.Join(dir, "missing.txt"), "", false); !errors.Is(err, ErrIO) {
		t.Fatalf("expected io error for missing file, got %v", err)
	}
}

func TestExtensionFromMIME(t *testing.T) {
	cases := []struct {
		mime string
		want string
		ok   bool
	}{
		{MIMEDocx, "docx", true},
		{MIMEPDF, "pdf", true},
		{MIMEText, "txt", true},
		{MIMEYAML, "yaml", true},
		{MIMEOGG, "ogg", true},
		{"image/jpeg", "jpg", true},
		{"image/png", "png", true},
		{"application/x-unknown", "", false},
		{MIMEOctetStream, "", false},
	}
	for _, tc := range cases {
		got, ok := extensionFromMIME(tc.mime)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("extensionFromMIME(%q) = %q,%v want %q,%v", tc.mime, got, ok, tc.want, tc.ok)
		}
	}
}
