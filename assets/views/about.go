// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// AboutData is the data used to render the about page.
type AboutData struct {
	Title    string
	Version  string
	Revision string
	Time     string
	RepoURL  string
}

// About renders the instance information page.
func About(data AboutData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<section class="about">`, "\n",
			"<h1>", esc(data.Title), "</h1>\n",
			`<p>Veya Reader is an open-source web reader for the Veya wellness library.</p>`, "\n",
			`<dl class="about-details">`, "\n",
			"<dt>Version</dt><dd>", esc(data.Version), "</dd>\n",
			"<dt>Revision</dt><dd>", esc(data.Revision), "</dd>\n",
			"<dt>Instance started</dt><dd>", esc(data.Time), "</dd>\n",
		); err != nil {
			return err
		}

		if data.RepoURL != "" {
			if err := write(w,
				`<dt>Source code</dt><dd><a href="`, esc(safeHref(data.RepoURL)), `">`,
				esc(data.RepoURL), "</a></dd>\n"); err != nil {
				return err
			}
		}

		return write(w, "</dl>\n</section>\n")
	})
}
