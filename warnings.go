package pdftext

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal problem encountered during extraction.
// A successful call always yields a TextOutput; warnings record where
// the result may be incomplete.
type Warning struct {
	Kind    string // Stable category, e.g. "font-decode" or "page-skipped"
	Page    int    // 1-based page number, 0 for document-scoped warnings
	Font    string // Base font name for font-related warnings
	Message string
}

// String renders the warning for human consumption.
func (w Warning) String() string {
	var sb strings.Builder
	sb.WriteString(w.Kind)
	if w.Page > 0 {
		fmt.Fprintf(&sb, " (page %d)", w.Page)
	}
	if w.Font != "" {
		fmt.Fprintf(&sb, " (font %s)", w.Font)
	}
	sb.WriteString(": ")
	sb.WriteString(w.Message)
	return sb.String()
}

// FormatWarnings renders a warning list as one line per warning.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}

// dedupeWarnings keeps the first warning per (kind, page, font),
// preserving order.
func dedupeWarnings(warnings []Warning) []Warning {
	seen := make(map[string]bool, len(warnings))
	out := warnings[:0]
	for _, w := range warnings {
		key := fmt.Sprintf("%s\x00%d\x00%s", w.Kind, w.Page, w.Font)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, w)
	}
	return out
}
