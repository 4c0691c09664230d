// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package request_context

import (
	"context"
	"net/http"

	"golang.org/x/text/language"

	"github.com/khoinguyent/veya-reader/core/idgen"
	"github.com/khoinguyent/veya-reader/server/utils"
)

type requestContextKey struct{}

// RequestContext carries per-request state through the middleware chain
// and into route handlers and views.
type RequestContext struct {
	// RequestID identifies this request in logs and outgoing API calls.
	RequestID string

	// RequestError is set by the error handling middleware when a route
	// returns an error, so the error page can render it.
	RequestError error

	// StatusCode is the status the error handler decided on; zero until
	// an error occurs.
	StatusCode int

	// T is the negotiated display language for the request.
	T language.Tag
}

// WithRequestContext returns a context carrying a freshly populated
// RequestContext for the given request.
func WithRequestContext(ctx context.Context, r *http.Request) context.Context {
	rc := &RequestContext{
		RequestID: idgen.Make(),
		T:         utils.MatchLanguage(r),
	}

	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext retrieves the RequestContext. It always returns a valid
// pointer; requests that skipped the middleware get a zero-value context.
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(requestContextKey{}).(*RequestContext); ok {
		return rc
	}

	return &RequestContext{T: language.English}
}

// FromRequest is a convenience wrapper around FromContext.
func FromRequest(r *http.Request) *RequestContext {
	return FromContext(r.Context())
}
