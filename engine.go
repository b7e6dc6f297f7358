package glot

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"glot/internal/logging"
	"glot/internal/settingsfile"
)

// textCacheSize bounds the in-process memo of pure text translations.
const textCacheSize = 128

// Engine orchestrates translation runs: it loads settings, resolves the
// model and credentials, dispatches to the registered Translator, writes
// translated attachments to disk, and records history. An Engine is safe
// for concurrent use.
type Engine struct {
	mu         sync.RWMutex
	translator Translator

	logger         *slog.Logger
	explicitLogger bool
	cache          *lru.Cache[string, *Result]
	loader         settingsfile.Loader
	historyPath    string
	backupDir      string
	now            func() time.Time
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithTranslator registers the collaborator that performs model-backed work.
func WithTranslator(t Translator) Option {
	return func(e *Engine) { e.translator = t }
}

// WithLogger sets the engine logger. An explicit logger is used as-is even
// when a run carries the verbose flag.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
		e.explicitLogger = true
	}
}

// WithHistoryPath overrides the history database location.
func WithHistoryPath(path string) Option {
	return func(e *Engine) { e.historyPath = path }
}

// WithBackupDir overrides where overwrite backups are kept.
func WithBackupDir(dir string) Option {
	return func(e *Engine) { e.backupDir = dir }
}

// WithSearchPath overrides the directories scanned for layered settings
// files: workDir for the project pair, homeDir for the per-user pair.
func WithSearchPath(workDir, homeDir string) Option {
	return func(e *Engine) {
		e.loader = settingsfile.Loader{WorkDir: workDir, HomeDir: homeDir}
	}
}

// WithClock overrides the engine clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine builds an Engine. Without options it logs warnings to stderr,
// keeps history and backups under ~/.glot, and has no Translator registered.
func NewEngine(opts ...Option) *Engine {
	cache, _ := lru.New[string, *Result](textCacheSize)
	logger, err := logging.New(logging.Options{Level: "warn"})
	if err != nil {
		logger = logging.Nop()
	}
	engine := &Engine{
		logger: logger,
		cache:  cache,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// SetTranslator swaps the registered collaborator.
func (e *Engine) SetTranslator(t Translator) {
	e.mu.Lock()
	e.translator = t
	e.mu.Unlock()
}

func (e *Engine) currentTranslator() Translator {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.translator
}

// runLogger picks the logger for one run. The verbose flag upgrades the
// default logger to debug level; an explicitly configured logger wins.
func (e *Engine) runLogger(verbose bool) *slog.Logger {
	if verbose && !e.explicitLogger {
		if logger, err := logging.New(logging.Options{Level: "debug"}); err == nil {
			return logger
		}
	}
	return e.logger
}

func (e *Engine) historyDBPath() (string, error) {
	if e.historyPath != "" {
		return e.historyPath, nil
	}
	dir, err := settingsfile.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

func (e *Engine) backupRoot() (string, error) {
	if e.backupDir != "" {
		return e.backupDir, nil
	}
	dir, err := settingsfile.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "backups"), nil
}

func (e *Engine) attachmentFallbackDir() (string, error) {
	dir, err := settingsfile.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "translated"), nil
}

// Run loads the layered settings (plus the config's explicit settings file)
// and executes the run described by cfg against the input text. It returns
// the textual output of the run; attachment and directory runs report what
// was written.
func (e *Engine) Run(ctx context.Context, cfg *Config, input string) (string, error) {
	if cfg == nil {
		return "", kindErrorf(ErrInvalidArgument, "config is null")
	}
	explicit, _ := cfg.SettingsPath()
	settings, err := loadSettingsWith(e.loader, explicit)
	if err != nil {
		return "", err
	}
	return e.execute(ctx, cfg, settings, input)
}

// RunWithSettings executes the run described by cfg against an explicit
// Settings value, skipping the settings file search entirely.
func (e *Engine) RunWithSettings(ctx context.Context, cfg *Config, settings *Settings, input string) (string, error) {
	if cfg == nil {
		return "", kindErrorf(ErrInvalidArgument, "config is null")
	}
	if settings == nil {
		return "", kindErrorf(ErrInvalidArgument, "settings is null")
	}
	return e.execute(ctx, cfg, settings, input)
}

var defaultEngine = sync.OnceValue(func() *Engine {
	return NewEngine()
})

// SetTranslator registers the collaborator on the process-wide engine used
// by Run and RunWithSettings.
func SetTranslator(t Translator) {
	defaultEngine().SetTranslator(t)
}

// Run executes a run on the process-wide engine.
func Run(ctx context.Context, cfg *Config, input string) (string, error) {
	return defaultEngine().Run(ctx, cfg, input)
}

// RunWithSettings executes a run with explicit settings on the process-wide
// engine.
func RunWithSettings(ctx context.Context, cfg *Config, settings *Settings, input string) (string, error) {
	return defaultEngine().RunWithSettings(ctx, cfg, settings, input)
}
