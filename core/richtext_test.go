// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core_test

import (
	"strings"
	"testing"

	. "github.com/khoinguyent/veya-reader/core"
)

func TestSanitizeRichText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		fragment    string
		wantKept    []string
		wantDropped []string
	}{
		{
			name:     "plain markup passes through",
			fragment: `<p>Breathe <em>slowly</em> and <strong>deeply</strong>.</p>`,
			wantKept: []string{"<p>", "<em>slowly</em>", "<strong>deeply</strong>"},
		},
		{
			name:        "script elements are removed with their content",
			fragment:    `<p>before</p><script>alert(1)</script><p>after</p>`,
			wantKept:    []string{"<p>before</p>", "<p>after</p>"},
			wantDropped: []string{"script", "alert"},
		},
		{
			name:        "event handlers are stripped",
			fragment:    `<p onclick="alert(1)" style="color:red">hi</p>`,
			wantKept:    []string{"hi"},
			wantDropped: []string{"onclick", "style", "alert"},
		},
		{
			name:        "javascript hrefs are neutralized",
			fragment:    `<a href="javascript:alert(1)">link</a>`,
			wantKept:    []string{"link"},
			wantDropped: []string{"javascript"},
		},
		{
			name:     "http links keep their href",
			fragment: `<a href="https://example.com/practice" target="_blank">practice</a>`,
			wantKept: []string{`href="https://example.com/practice"`},
			wantDropped: []string{
				"target",
			},
		},
		{
			name:        "images keep src and alt only",
			fragment:    `<img src="https://cdn.example.com/a.jpg" alt="calm lake" onerror="alert(1)">`,
			wantKept:    []string{`src="https://cdn.example.com/a.jpg"`, `alt="calm lake"`},
			wantDropped: []string{"onerror"},
		},
		{
			name:        "iframe and form are removed",
			fragment:    `<iframe src="https://evil.example"></iframe><form action="/steal"><input></form><p>ok</p>`,
			wantKept:    []string{"<p>ok</p>"},
			wantDropped: []string{"iframe", "form", "action"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := SanitizeRichText(tc.fragment)

			for _, want := range tc.wantKept {
				if !strings.Contains(got, want) {
					t.Errorf("sanitized output %q lost %q", got, want)
				}
			}

			for _, dropped := range tc.wantDropped {
				if strings.Contains(got, dropped) {
					t.Errorf("sanitized output %q kept %q", got, dropped)
				}
			}
		})
	}
}

func TestRichTextContent(t *testing.T) {
	t.Parallel()

	got := RichTextContent(`<p>Breathe <em>slowly</em>.</p><script>alert(1)</script>`)
	if got != "Breathe slowly." {
		t.Errorf("RichTextContent() = %q, want %q", got, "Breathe slowly.")
	}
}

func TestParagraphsHTML(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "blank lines split paragraphs",
			text: "First paragraph.\n\nSecond paragraph.",
			want: "<p>First paragraph.</p>\n<p>Second paragraph.</p>",
		},
		{
			name: "single newlines become breaks",
			text: "line one\nline two",
			want: "<p>line one<br />line two</p>",
		},
		{
			name: "windows newlines behave identically",
			text: "First.\r\n\r\nSecond.",
			want: "<p>First.</p>\n<p>Second.</p>",
		},
		{
			name: "markup in text is escaped",
			text: "a < b & c",
			want: "<p>a &lt; b &amp; c</p>",
		},
		{
			name: "whitespace-only input renders nothing",
			text: "   \n\n  ",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := ParagraphsHTML(tc.text); got != tc.want {
				t.Errorf("ParagraphsHTML(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}
