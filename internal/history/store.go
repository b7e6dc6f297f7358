package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; old databases must be deleted.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

const lastUsedModelKey = "last_used_model"

// Kind distinguishes plain text runs from attachment runs.
type Kind string

const (
	KindText       Kind = "text"
	KindAttachment Kind = "attachment"
)

// Entry is one recorded run.
type Entry struct {
	ID         string
	CreatedAt  time.Time
	Kind       Kind
	Model      string
	Formal     string
	MIME       string
	SourceLang string
	TargetLang string
	Source     string
	Result     string
}

// Store manages history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database and verifies the
// schema. The parent directory is created when missing.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return tx.Commit()
}

// Record inserts an entry and prunes the oldest rows beyond limit. A limit
// of zero keeps everything. The stored entry is returned with its generated
// ID and timestamp filled in.
func (s *Store) Record(ctx context.Context, entry Entry, limit int) (Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history_entries (
            id, created_at, kind, model, formal, mime,
            source_lang, target_lang, src, dest
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.CreatedAt.Format(time.RFC3339Nano),
		string(entry.Kind),
		entry.Model,
		nullableString(entry.Formal),
		entry.MIME,
		nullableString(entry.SourceLang),
		nullableString(entry.TargetLang),
		entry.Source,
		entry.Result,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert history entry: %w", err)
	}

	if limit > 0 {
		_, err = s.db.ExecContext(ctx,
			`DELETE FROM history_entries WHERE id NOT IN (
                SELECT id FROM history_entries
                ORDER BY created_at DESC, rowid DESC LIMIT ?
            )`, limit)
		if err != nil {
			return Entry{}, fmt.Errorf("prune history: %w", err)
		}
	}
	return entry, nil
}

// List returns every entry, oldest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, kind, model, formal, mime,
                source_lang, target_lang, src, dest
         FROM history_entries
         ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Recent returns the newest entries, newest first, capped at n. A
// non-positive n returns everything.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	query := `SELECT id, created_at, kind, model, formal, mime,
                     source_lang, target_lang, src, dest
              FROM history_entries
              ORDER BY created_at DESC, rowid DESC`
	var rows *sql.Rows
	var err error
	if n > 0 {
		rows, err = s.db.QueryContext(ctx, query+" LIMIT ?", n)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// LastUsedModel returns the most recently recorded model selection, or
// empty when none has been stored.
func (s *Store) LastUsedModel(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM engine_state WHERE key = ?", lastUsedModelKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read last used model: %w", err)
	}
	return value, nil
}

// SetLastUsedModel records the model selection for future default
// resolution.
func (s *Store) SetLastUsedModel(ctx context.Context, model string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO engine_state (key, value) VALUES (?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		lastUsedModelKey, model)
	if err != nil {
		return fmt.Errorf("store last used model: %w", err)
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var (
			entry      Entry
			createdAt  string
			kind       string
			formal     sql.NullString
			sourceLang sql.NullString
			targetLang sql.NullString
		)
		if err := rows.Scan(
			&entry.ID, &createdAt, &kind, &entry.Model, &formal, &entry.MIME,
			&sourceLang, &targetLang, &entry.Source, &entry.Result,
		); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			entry.CreatedAt = ts
		}
		entry.Kind = Kind(kind)
		entry.Formal = formal.String
		entry.SourceLang = sourceLang.String
		entry.TargetLang = targetLang.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history entries: %w", err)
	}
	return entries, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
