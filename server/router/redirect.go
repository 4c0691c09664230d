// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

// The code in this file redirects legacy upstream URLs to ours.
//
// Add more redirects in (*Router).DefineRoutes

package router

import (
	"net/http"

	"github.com/khoinguyent/veya-reader/server/utils"
)

// redirectWithQueryParam is a helper function to redirect requests to
// a target path while preserving the specified query parameter.
//
// Example:   /article?slug=<slug>   ->   /read/slug
func redirectWithQueryParam(targetPath, preservedParam string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, targetPath+utils.GetQueryParam(r, preservedParam), http.StatusPermanentRedirect)
	}
}
