package textutil

import "strings"

// previewMax caps history previews at a single readable line.
const previewMax = 160

var previewEscaper = strings.NewReplacer("\n", "\\n", "\r", "\\r")

// Preview condenses a value to a single display line. Empty input becomes
// "(empty)", newlines are escaped, and anything longer than 160 runes is
// truncated with a trailing ellipsis.
func Preview(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "(empty)"
	}
	normalized := previewEscaper.Replace(trimmed)
	runes := []rune(normalized)
	if len(runes) <= previewMax {
		return normalized
	}
	return string(runes[:previewMax]) + "..."
}
