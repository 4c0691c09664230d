// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// ErrorData is the data used to render the generic error page.
type ErrorData struct {
	Title      string
	Error      error
	StatusCode int
}

// Error renders the themed error page.
func Error(data ErrorData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<section class="error-page">`, "\n",
			`<h1>`, strconv.Itoa(data.StatusCode), " - ", esc(data.Title), "</h1>\n"); err != nil {
			return err
		}

		if data.Error != nil {
			if err := write(w, `<p class="error-detail">`, esc(data.Error.Error()), "</p>\n"); err != nil {
				return err
			}
		}

		return write(w,
			`<p><a href="/">Back to the library</a></p>`, "\n",
			"</section>\n")
	})
}
