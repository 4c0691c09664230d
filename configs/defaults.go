// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"time"

	"github.com/khoinguyent/veya-reader/core"
)

const (
	// Default cache TTL in minutes.
	defaultCacheTTLMinutes = 15
	// Default HTTP cache max age in seconds.
	defaultHTTPCacheMaxAgeSeconds = 30
	// Default HTTP cache stale while revalidate in seconds.
	defaultHTTPCacheStaleWhileRevalidateSeconds = 60

	// Default upstream request timeout in seconds.
	defaultUpstreamTimeoutSeconds = 10

	defaultUpstreamRPS   = 10
	defaultUpstreamBurst = 20

	// Fraction of the viewport a page must cover before a scroll counts as
	// settled on it.
	defaultSettleCoverage = 0.55
)

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = "8282"

	cfg.Upstream.RawAPIBase = "http://localhost:8000/api/v1"
	cfg.Upstream.UserAgent = "veya-reader/" + BuildVersion
	cfg.Upstream.AcceptLanguage = "en-US,en;q=0.5"
	cfg.Upstream.Timeout = defaultUpstreamTimeoutSeconds * time.Second
	cfg.Upstream.RateLimitRPS = defaultUpstreamRPS
	cfg.Upstream.RateLimitBurst = defaultUpstreamBurst

	cfg.Cache.Enabled = true
	cfg.Cache.Size = 200
	cfg.Cache.TTL = defaultCacheTTLMinutes * time.Minute
	cfg.Cache.Compress = true

	cfg.HTTPCache.MaxAge = defaultHTTPCacheMaxAgeSeconds * time.Second
	cfg.HTTPCache.StaleWhileRevalidate = defaultHTTPCacheStaleWhileRevalidateSeconds * time.Second

	policy := core.DefaultPagedPolicy()
	cfg.Reader.PagedBlockThreshold = policy.BlockThreshold
	cfg.Reader.PagedLayoutHints = policy.LayoutHints
	cfg.Reader.TapThreshold = core.DefaultTapThreshold
	cfg.Reader.SettleCoverage = defaultSettleCoverage

	cfg.Response.EarlyHintsResponses = false

	cfg.Instance.RepoURL = "https://github.com/khoinguyent/veya-reader"

	cfg.Development.SaveResponses = false
	cfg.Development.ResponseSaveLocation = "/tmp/veya-reader/responses"

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"
}
