// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"fmt"
	"io"
	"strings"

	"github.com/khoinguyent/veya-reader/core"
)

// esc HTML-escapes dynamic text for element content and attribute values.
func esc(text string) string {
	return core.EscapeText(text)
}

// write writes literal and pre-escaped parts in order.
func write(w io.Writer, parts ...string) error {
	for _, part := range parts {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}

	return nil
}

// writef writes a formatted chunk. Arguments must already be escaped.
func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)

	return err
}

// safeHref admits http(s) and site-relative URLs; anything else renders as "#".
func safeHref(raw string) string {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "http://"),
		strings.HasPrefix(trimmed, "/") && !strings.HasPrefix(trimmed, "//"):
		return trimmed
	}

	return "#"
}
