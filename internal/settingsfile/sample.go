package settingsfile

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed sample_settings.toml
var sampleSettings string

// Sample returns the commented sample settings document.
func Sample() string {
	return sampleSettings
}

// CreateSample writes the sample settings file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleSettings), 0o644); err != nil {
		return fmt.Errorf("write sample settings: %w", err)
	}
	return nil
}
