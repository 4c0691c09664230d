// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"

	"github.com/khoinguyent/veya-reader/assets/views"
	config "github.com/khoinguyent/veya-reader/configs"
)

// AboutPage is the handler for the /about page.
func AboutPage(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d",
		int(config.Global.HTTPCache.MaxAge.Seconds()),
		int(config.Global.HTTPCache.StaleWhileRevalidate.Seconds())))

	pageData := views.AboutData{
		Title:    "About",
		Version:  config.BuildVersion,
		Revision: config.Global.Build.Revision(),
		Time:     config.Global.Instance.StartingTime,
		RepoURL:  config.Global.Instance.RepoURL,
	}

	return views.Document(pageData.Title, views.About(pageData)).Render(r.Context(), w)
}

// Healthz is a plain liveness endpoint for container orchestration.
func Healthz(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	_, err := w.Write([]byte("ok\n"))

	return err
}
