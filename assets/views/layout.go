// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/khoinguyent/veya-reader/server/request_context"
)

// Document wraps a page body in the shared HTML chrome: head, header
// navigation and footer. The document language comes from the request
// context's negotiated tag.
func Document(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := request_context.FromContext(ctx).T.String()

		if err := write(w,
			"<!DOCTYPE html>\n",
			`<html lang="`, esc(lang), "\">\n",
			"<head>\n",
			`<meta charset="utf-8" />`, "\n",
			`<meta name="viewport" content="width=device-width, initial-scale=1" />`, "\n",
			"<title>", esc(title), " - Veya Reader</title>\n",
			`<link rel="stylesheet" href="/css/main.css" />`, "\n",
			`<script src="/js/reader.js" defer></script>`, "\n",
			"</head>\n",
			"<body>\n",
			`<header class="site-header"><nav>`,
			`<a class="site-title" href="/">Veya Reader</a>`,
			`<a href="/about">About</a>`,
			"</nav></header>\n",
			`<main id="main">`, "\n",
		); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		return write(w,
			"\n</main>\n",
			`<footer class="site-footer"><p>A calmer reading room for the Veya library.</p></footer>`, "\n",
			"</body>\n</html>\n",
		)
	})
}
