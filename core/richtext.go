// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// dangerousSelector matches elements that are removed wholesale, content
// included.
const dangerousSelector = "script, style, iframe, object, embed, form, link, meta"

// keptAttributes are the only attributes that survive sanitization, per
// element name.
var keptAttributes = map[string][]string{
	"a":   {"href"},
	"img": {"src", "alt"},
}

// SanitizeRichText cleans server-authored rich text HTML for embedding.
//
// Script-capable elements are removed entirely, every event-handler and
// style attribute is dropped, and javascript: URLs are neutralized. Input
// that fails to parse degrades to its escaped plain text rather than
// erroring; rich text rendering must never take a page down.
func SanitizeRichText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return EscapeText(fragment)
	}

	doc.Find(dangerousSelector).Remove()

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, node := range sel.Nodes {
			kept := keptAttributes[node.Data]
			attrs := node.Attr[:0]

			for _, attr := range node.Attr {
				if !attrAllowed(attr.Key, kept) {
					continue
				}

				if isURLAttr(attr.Key) && !safeURL(attr.Val) {
					continue
				}

				attrs = append(attrs, attr)
			}

			node.Attr = attrs
		}
	})

	sanitized, err := doc.Find("body").Html()
	if err != nil {
		return EscapeText(fragment)
	}

	return sanitized
}

// RichTextContent extracts the visible plain text of an HTML fragment.
// Used for fallback rendering and summaries.
func RichTextContent(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	doc.Find(dangerousSelector).Remove()

	return strings.TrimSpace(doc.Text())
}

func attrAllowed(key string, kept []string) bool {
	for _, k := range kept {
		if key == k {
			return true
		}
	}

	return false
}

func isURLAttr(key string) bool {
	return key == "href" || key == "src"
}

// safeURL rejects script-bearing URL schemes.
func safeURL(raw string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(raw))

	return !strings.HasPrefix(trimmed, "javascript:") &&
		!strings.HasPrefix(trimmed, "data:") &&
		!strings.HasPrefix(trimmed, "vbscript:")
}

// paragraphBreaks matches one blank line in any newline convention.
var paragraphBreaks = regexp.MustCompile(`\r?\n(\r?\n)+`)

// ParagraphsHTML renders plain or markdown-ish text as escaped paragraph
// elements: blank lines split paragraphs, single newlines become <br />.
func ParagraphsHTML(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	paragraphs := paragraphBreaks.Split(text, -1)
	parts := make([]string, 0, len(paragraphs))

	for _, paragraph := range paragraphs {
		if strings.TrimSpace(paragraph) == "" {
			continue
		}

		lines := strings.Split(strings.ReplaceAll(paragraph, "\r\n", "\n"), "\n")
		for i, line := range lines {
			lines[i] = EscapeText(line)
		}

		parts = append(parts, "<p>"+strings.Join(lines, "<br />")+"</p>")
	}

	return strings.Join(parts, "\n")
}

// EscapeText HTML-escapes plain text.
func EscapeText(text string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&#34;",
		"'", "&#39;",
	)

	return replacer.Replace(text)
}
