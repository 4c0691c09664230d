// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package requests is the HTTP client for the Veya library API.
//
// It layers response caching, outbound rate limiting, and request auditing
// over the typed endpoint helpers in library.go.
package requests

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	config "github.com/khoinguyent/veya-reader/configs"
	"github.com/khoinguyent/veya-reader/core/audit"
	"github.com/khoinguyent/veya-reader/core/idgen"
	"github.com/khoinguyent/veya-reader/server/request_context"
	"github.com/khoinguyent/veya-reader/server/utils"
)

var (
	errInvalidJSON      = errors.New("response contained invalid JSON")
	errAPIResponseError = errors.New("API response indicated error")
)

// limiter throttles outbound traffic towards the library API. Configured in
// Setup; nil means unlimited (tests).
var limiter *rate.Limiter

// APIError represents an error returned from the library API or internal request handling.
type APIError struct {
	// StatusCode is the HTTP status code from the response.
	// Always >= 400 for API errors.
	StatusCode int

	// Message contains the error message from the API response.
	// Empty for internal request errors, populated for API errors.
	Message string

	// Err is the underlying error cause.
	// Set to errAPIResponseError for API errors, or the original error for internal failures.
	Err error
}

// Error returns a formatted error message including the status code and API message if available.
func (e *APIError) Error() string {
	var b strings.Builder

	b.WriteString(e.Err.Error())

	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}

	b.WriteString(fmt.Sprintf(" (status code: %d)", e.StatusCode))

	return b.String()
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an API error with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Setup initializes the client from the global configuration: the response
// cache, the outbound rate limiter, and the upstream timeout.
func Setup() {
	setupCache()

	limiter = rate.NewLimiter(
		rate.Limit(config.Global.Upstream.RateLimitRPS),
		config.Global.Upstream.RateLimitBurst,
	)

	utils.HTTPClient.Timeout = config.Global.Upstream.Timeout

	log.Info().
		Float64("rps", config.Global.Upstream.RateLimitRPS).
		Int("burst", config.Global.Upstream.RateLimitBurst).
		Dur("timeout", config.Global.Upstream.Timeout).
		Msg("Initialized library API client")
}

// GetJSON makes a GET request to the library API and returns the raw JSON
// response body.
//
// Returns an error if:
//   - The request fails
//   - The response has a non-2xx status code
//   - The response contains invalid JSON
func GetJSON(ctx context.Context, url string, incomingHeaders http.Header) ([]byte, error) {
	respBody, err := do(ctx, RequestOptions{
		Method:          http.MethodGet,
		URL:             url,
		IncomingHeaders: incomingHeaders,
	})
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(respBody) {
		return nil, fmt.Errorf("%w: %s", errInvalidJSON, string(respBody))
	}

	return respBody, nil
}

// Do sends an HTTP request and returns the raw *http.Response and the response body as a byte slice.
//
// This function handles the full lifecycle of an HTTP request, including caching,
// rate limiting, and logging. The `Body` field of the returned `*http.Response`
// is a `NopCloser` over these same bytes for convenience, but callers should
// prefer using the byte slice directly.
//
// This function does not check for non-OK status codes, leaving that task to the caller.
func Do(ctx context.Context, opts RequestOptions) (*http.Response, []byte, error) {
	// For GET requests, determine cache policy and check for a cached response.
	var policy cachePolicy
	if opts.Method == http.MethodGet {
		policy = determineCachePolicy(opts.URL, opts.IncomingHeaders)
		if policy.cachedItem != nil {
			// A valid cached item was found. Construct a response and return it with the body bytes.
			item := policy.cachedItem

			return &http.Response{
				StatusCode: item.StatusCode,
				Header:     item.Header.Clone(),
				Body:       io.NopCloser(bytes.NewReader(item.Body)),
			}, item.Body, nil
		}
	}

	// Honor the outbound request budget before touching the network.
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	req, err := newRequest(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	resp, bodyBytes, err := sendRequest(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	// Cache the response if it's a successful GET request and the policy allows it.
	// The cachePolicy was determined before the request was made.
	if opts.Method == http.MethodGet && resp.StatusCode == http.StatusOK && policy.shouldUseCache {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(cachedItem{
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
			Body:       bodyBytes,
			ExpiresAt:  time.Now().Add(config.Global.Cache.TTL),
			URL:        opts.URL,
		}); err != nil {
			// Log the error but don't fail the request.
			log.Ctx(ctx).Warn().Err(err).Msg("Failed to serialize item for cache")
		} else {
			cache.Add(generateCacheKey(opts.URL), buf.Bytes())
		}
	}

	return resp, bodyBytes, nil
}

// do performs a request using the given options, receives the already-read
// response body, and handles API error responses. It returns the raw body on
// success.
func do(ctx context.Context, opts RequestOptions) ([]byte, error) {
	resp, body, err := Do(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		// Attempt to extract an error message from the JSON body.
		message := apiErrorMessage(body)

		// Fall back to the HTTP status text if no JSON message is found.
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}

		// As a final fallback for unknown status codes, use a generic error message.
		if message == "" {
			message = "An unknown API error occurred"
		}

		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    message,
			Err:        errAPIResponseError,
		}
	}

	return body, nil
}

// apiErrorMessage extracts the error message from a library API error body.
//
// The API reports errors as {"detail": "..."} and validation errors as
// {"detail": [{"msg": "...", ...}, ...]}.
func apiErrorMessage(body []byte) string {
	detail := gjson.GetBytes(body, "detail")

	switch {
	case detail.Type == gjson.String:
		return detail.Str
	case detail.IsArray():
		return detail.Get("0.msg").String()
	default:
		return ""
	}
}

// newRequest constructs an *http.Request from RequestOptions.
func newRequest(ctx context.Context, opts RequestOptions) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, opts.Method, opts.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", config.Global.Upstream.UserAgent)
	req.Header.Set("Accept", "application/json")

	// Forward the reader's language preference so localized articles come
	// back in the right content_locale.
	acceptLanguage := config.Global.Upstream.AcceptLanguage
	if incoming := opts.IncomingHeaders.Get("Accept-Language"); incoming != "" {
		acceptLanguage = incoming
	}

	req.Header.Set("Accept-Language", acceptLanguage)

	return req, nil
}

// sendRequest executes the HTTP request, reads the body for auditing, and returns the response
// with a new, readable body stream, along with the raw body bytes.
func sendRequest(
	ctx context.Context,
	req *http.Request,
) (_ *http.Response, _ []byte, err error) {
	span := audit.Span{
		Destination: audit.ToLibrary,
		RequestID:   request_context.FromContext(ctx).RequestID + "-" + idgen.Make(),
		Method:      req.Method,
		URL:         req.URL.String(),
	}

	defer func() { span.Error = err }()

	_ = span.Begin(ctx)
	defer span.End() // in case of error

	resp, err := utils.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	span.StatusCode = resp.StatusCode

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	span.Body = body

	span.End()
	span.Log()

	// Replace the consumed body with a new reader so the caller can still read it.
	resp.Body = io.NopCloser(bytes.NewReader(body))

	return resp, body, nil
}

// isContextCanceled returns true if the error is due to context cancellation or deadline exceeded.
// In these cases, we should simply stop processing and return, as the client has disconnected.
func isContextCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
