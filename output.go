package glot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// translatedOutputPath places a translated copy next to its source:
// stem, then the configured suffix, then the extension for the output type.
func translatedOutputPath(srcPath, suffix, mime string) (string, error) {
	ext, ok := extensionFromMIME(mime)
	if !ok {
		return "", kindErrorf(ErrInvalidArgument, "unsupported output mime '%s'", mime)
	}
	base := filepath.Base(srcPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(srcPath), stem+suffix+"."+ext), nil
}

// resolveOutPath interprets the out argument: an existing directory gets a
// generated file name inside it, anything else is taken verbatim.
func resolveOutPath(outPath, stem, mime string) (string, error) {
	if info, err := os.Stat(outPath); err == nil && info.IsDir() {
		ext, ok := extensionFromMIME(mime)
		if !ok {
			return "", kindErrorf(ErrInvalidArgument, "unsupported output mime '%s'", mime)
		}
		return filepath.Join(outPath, stem+"."+ext), nil
	}
	return outPath, nil
}

func writeFileCreatingParents(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}

// canonicalPath resolves symlinks and relative segments so two spellings of
// the same location compare equal.
func canonicalPath(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		resolved = path
	}
	absolute, err := filepath.Abs(resolved)
	if err != nil {
		return filepath.Clean(resolved)
	}
	return absolute
}
