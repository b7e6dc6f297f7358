package backup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestBackupCreatesCopyAndMetaEntry(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(src, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir)
	entry, err := store.Backup(src, 1)
	if err != nil {
		t.Fatalf("Backup returned error: %v", err)
	}

	if entry.Source != src {
		t.Errorf("entry.Source = %q, want %q", entry.Source, src)
	}
	got, err := os.ReadFile(entry.Backup)
	if err != nil {
		t.Fatalf("read backup copy: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("backup content = %q, want %q", got, "hello")
	}
	if !strings.HasSuffix(entry.Backup, "_input.txt") {
		t.Errorf("backup name %q does not carry the source name", entry.Backup)
	}
	if want := entry.CreatedAt.Add(24 * time.Hour); !entry.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", entry.ExpiresAt, want)
	}

	metaRaw, err := os.ReadFile(filepath.Join(dir, "meta.json"))
	if err != nil {
		t.Fatalf("read meta: %v", err)
	}
	var m meta
	if err := json.Unmarshal(metaRaw, &m); err != nil {
		t.Fatalf("parse meta: %v", err)
	}
	if len(m.Entries) != 1 || m.Entries[0].ID != entry.ID {
		t.Errorf("meta entries = %+v, want the recorded entry", m.Entries)
	}
}

func TestBackupDefaultsRetention(t *testing.T) {
	src := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(t.TempDir())
	entry, err := store.Backup(src, 0)
	if err != nil {
		t.Fatalf("Backup returned error: %v", err)
	}
	if want := entry.CreatedAt.Add(DefaultTTLDays * 24 * time.Hour); !entry.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", entry.ExpiresAt, want)
	}
}

func TestBackupPrunesExpiredCopies(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(src, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir)
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	first, err := store.Backup(src, 1)
	if err != nil {
		t.Fatalf("first Backup returned error: %v", err)
	}

	current = current.Add(48 * time.Hour)
	second, err := store.Backup(src, 1)
	if err != nil {
		t.Fatalf("second Backup returned error: %v", err)
	}

	if _, err := os.Stat(first.Backup); !os.IsNotExist(err) {
		t.Errorf("expired copy still present: %v", err)
	}
	if _, err := os.Stat(second.Backup); err != nil {
		t.Errorf("fresh copy missing: %v", err)
	}

	metaRaw, err := os.ReadFile(filepath.Join(dir, "meta.json"))
	if err != nil {
		t.Fatalf("read meta: %v", err)
	}
	var m meta
	if err := json.Unmarshal(metaRaw, &m); err != nil {
		t.Fatalf("parse meta: %v", err)
	}
	if len(m.Entries) != 1 || m.Entries[0].ID != second.ID {
		t.Errorf("meta entries = %+v, want only the fresh entry", m.Entries)
	}
}

func TestBackupDropsRecordsWithMissingCopies(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(src, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir)
	first, err := store.Backup(src, 7)
	if err != nil {
		t.Fatalf("first Backup returned error: %v", err)
	}
	if err := os.Remove(first.Backup); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Backup(src, 7); err != nil {
		t.Fatalf("second Backup returned error: %v", err)
	}

	metaRaw, err := os.ReadFile(filepath.Join(dir, "meta.json"))
	if err != nil {
		t.Fatalf("read meta: %v", err)
	}
	var m meta
	if err := json.Unmarshal(metaRaw, &m); err != nil {
		t.Fatalf("parse meta: %v", err)
	}
	for _, entry := range m.Entries {
		if entry.ID == first.ID {
			t.Errorf("stale record %q survived pruning", first.ID)
		}
	}
}

func TestBackupRejectsDirectories(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Backup(t.TempDir(), 1)
	if err == nil {
		t.Fatal("expected error for directory source")
	}
	if !strings.Contains(err.Error(), "not a file") {
		t.Errorf("error = %v, want not-a-file", err)
	}
}

func TestBackupMissingSource(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Backup(filepath.Join(t.TempDir(), "absent"), 1)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}
