// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requests

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	config "github.com/khoinguyent/veya-reader/configs"
	"github.com/khoinguyent/veya-reader/core/requests/lrucache"
)

var cache *lrucache.LRUCache

// cachedItem represents a cached HTTP response's components along with its expiration time and original URL.
type cachedItem struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	ExpiresAt  time.Time
	URL        string
}

// cachePolicy defines the caching behavior for a request.
type cachePolicy struct {
	// Whether to attempt fetching from the cache
	// and store any OK response that we receive.
	shouldUseCache bool

	// The cached item if available and valid.
	cachedItem *cachedItem
}

// setupCache initializes the API response cache based on parameters in GlobalConfig.
//
// It sets up an LRU cache with a specified size and logs the cache parameters.
// If caching is disabled in the configuration, it skips initialization.
func setupCache() {
	if !config.Global.Cache.Enabled {
		log.Info().
			Msg("Cache is disabled, skipping cache initialization")

		return
	}

	var err error

	cache, err = lrucache.NewLRUCache(config.Global.Cache.Size, config.Global.Cache.Compress)
	if err != nil {
		panic(fmt.Sprintf("failed to create cache: %v", err))
	}

	log.Info().
		Int("size", config.Global.Cache.Size).
		Bool("compress", config.Global.Cache.Compress).
		Msg("Initialized API response cache")
}

// generateCacheKey derives a fixed-size cache key from the request URL.
//
// The library API is unauthenticated, so the URL alone fully identifies a
// response; there is no per-user state to scope keys by.
func generateCacheKey(url string) string {
	hasher := fnv.New32()

	_, _ = hasher.Write([]byte(url))

	return strconv.FormatUint(uint64(hasher.Sum32()), 16)
}

// determineCachePolicy determines the caching policy for a given request.
//
// It returns a cachePolicy struct indicating whether a valid cached response is available,
// or whether a new response should be stored in the cache.
func determineCachePolicy(rawURL string, headers http.Header) cachePolicy {
	if !config.Global.Cache.Enabled {
		return cachePolicy{}
	}

	if cache == nil {
		return cachePolicy{}
	}

	// Honor "no-cache" directive from the downstream client: skip both read and write.
	lowerCacheControl := strings.ToLower(headers.Get("Cache-Control"))
	if strings.Contains(lowerCacheControl, "no-cache") {
		return cachePolicy{}
	}

	cacheKey := generateCacheKey(rawURL)

	// Try to serve a valid cached response immediately.
	if cachedBytes, found := cache.Get(cacheKey); found {
		var item cachedItem
		if err := gob.NewDecoder(bytes.NewReader(cachedBytes)).Decode(&item); err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("Failed to decode cached item; removing")
			cache.Remove(cacheKey)
		} else if time.Now().Before(item.ExpiresAt) {
			// Fresh item found.
			return cachePolicy{
				shouldUseCache: true, // We are using the cache.
				cachedItem:     &item,
			}
		} else {
			// Item has expired.
			cache.Remove(cacheKey)
		}
	}

	// No valid cached item was found. Decide whether to store the next response.
	return cachePolicy{
		shouldUseCache: !strings.Contains(lowerCacheControl, "no-store"),
	}
}
