package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"glot/internal/fileutil"
	"glot/internal/textutil"
)

const (
	metaFileName = "meta.json"
	lockFileName = "meta.lock"

	// DefaultTTLDays is the retention period applied when the caller does
	// not configure one.
	DefaultTTLDays = 30
)

// Entry records one preserved copy of an overwritten file.
type Entry struct {
	ID        string    `json:"id"`
	Source    string    `json:"src"`
	Backup    string    `json:"backup"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type meta struct {
	Entries []Entry `json:"entries"`
}

// Store manages backup copies beneath a single directory.
type Store struct {
	dir  string
	lock *flock.Flock
	now  func() time.Time
}

// NewStore returns a store rooted at dir. The directory is created when the
// first backup is taken.
func NewStore(dir string) *Store {
	return &Store{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, lockFileName)),
		now:  time.Now,
	}
}

// Dir returns the directory holding backup copies.
func (s *Store) Dir() string {
	return s.dir
}

// Backup copies src into the store and records it with the given retention
// period in days. Zero or negative selects DefaultTTLDays. Expired copies
// are pruned before the new one is recorded.
func (s *Store) Backup(src string, ttlDays int) (Entry, error) {
	info, err := os.Stat(src)
	if err != nil {
		return Entry{}, fmt.Errorf("read file metadata: %w", err)
	}
	if !info.Mode().IsRegular() {
		return Entry{}, fmt.Errorf("backup source is not a file: %s", src)
	}
	if ttlDays <= 0 {
		ttlDays = DefaultTTLDays
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Entry{}, fmt.Errorf("create backup dir: %w", err)
	}
	if err := s.lock.Lock(); err != nil {
		return Entry{}, fmt.Errorf("acquire backup lock: %w", err)
	}
	defer func() {
		_ = s.lock.Unlock()
	}()

	now := s.now()
	m, err := s.readMeta()
	if err != nil {
		return Entry{}, err
	}
	m.Entries = pruneExpired(m.Entries, now)

	name := textutil.SanitizeFileName(filepath.Base(src))
	if name == "" {
		name = "file"
	}
	id := uuid.NewString()
	backupPath := filepath.Join(s.dir, id+"_"+name)
	if err := fileutil.CopyVerified(src, backupPath); err != nil {
		return Entry{}, fmt.Errorf("copy backup from %s to %s: %w", src, backupPath, err)
	}

	entry := Entry{
		ID:        id,
		Source:    src,
		Backup:    backupPath,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(ttlDays) * 24 * time.Hour),
	}
	m.Entries = append(m.Entries, entry)
	if err := s.writeMeta(m); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func (s *Store) readMeta() (meta, error) {
	var m meta
	data, err := os.ReadFile(filepath.Join(s.dir, metaFileName))
	if errors.Is(err, os.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return m, fmt.Errorf("read backup meta: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse backup meta: %w", err)
	}
	return m, nil
}

func (s *Store) writeMeta(m meta) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup meta: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, metaFileName), data, 0o644); err != nil {
		return fmt.Errorf("write backup meta: %w", err)
	}
	return nil
}

// pruneExpired drops entries whose copy is gone and deletes copies whose
// retention window has passed.
func pruneExpired(entries []Entry, now time.Time) []Entry {
	kept := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if _, err := os.Stat(entry.Backup); err != nil {
			continue
		}
		if !entry.ExpiresAt.After(now) {
			_ = os.Remove(entry.Backup)
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}
