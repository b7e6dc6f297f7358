package settingsfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// appDir is the per-user directory holding settings overlays, run history,
// and backups.
const appDir = ".glot"

// Loader resolves and merges the layered settings search path. The zero
// value uses the process working directory and the user home directory;
// tests override both.
type Loader struct {
	WorkDir string
	HomeDir string
}

// Paths returns the candidate files in merge order: working-directory
// settings.toml and settings.local.toml, then the same pair under
// ~/.glot. The explicit path, when non-empty, is appended last.
func (l Loader) Paths(explicit string) []string {
	work := l.WorkDir
	if work == "" {
		work, _ = os.Getwd()
	}
	paths := []string{
		filepath.Join(work, "settings.toml"),
		filepath.Join(work, "settings.local.toml"),
	}
	if home := l.home(); home != "" {
		paths = append(paths,
			filepath.Join(home, appDir, "settings.toml"),
			filepath.Join(home, appDir, "settings.local.toml"),
		)
	}
	if explicit != "" {
		paths = append(paths, explicit)
	}
	return paths
}

// Load parses and merges every existing layer. A non-empty explicit path
// must exist; any unreadable or malformed layer fails the whole load.
func (l Loader) Load(explicit string) (*File, error) {
	if explicit != "" {
		expanded, err := ExpandPath(explicit)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("settings file not found: %s", expanded)
			}
			return nil, fmt.Errorf("stat settings: %w", err)
		}
		explicit = expanded
	}

	merged := &File{}
	for _, path := range l.Paths(explicit) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		layer, err := parseFile(path)
		if err != nil {
			return nil, err
		}
		Merge(merged, layer)
	}
	return merged, nil
}

func (l Loader) home() string {
	if l.HomeDir != "" {
		return l.HomeDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

func parseFile(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open settings %s: %w", path, err)
	}
	defer file.Close()

	var parsed File
	decoder := toml.NewDecoder(file)
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return &parsed, nil
}

// Parse decodes a single settings document from memory.
func Parse(data []byte) (*File, error) {
	var parsed File
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &parsed, nil
}

// Marshal renders a File back to TOML.
func Marshal(file *File) ([]byte, error) {
	data, err := toml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}

// DefaultDir returns the per-user engine directory (~/.glot).
func DefaultDir() (string, error) {
	return ExpandPath("~/" + appDir)
}

// ExpandPath resolves a leading ~ and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
