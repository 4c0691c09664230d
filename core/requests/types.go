// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requests

import (
	"net/http"
)

// RequestOptions are parameters for a single upstream request.
type RequestOptions struct {
	Method string
	URL    string

	// IncomingHeaders is the downstream client's header set. Only a small
	// allowlist of it (Accept-Language, Cache-Control) influences the
	// upstream request.
	IncomingHeaders http.Header
}
