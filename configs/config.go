// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	_ "github.com/khoinguyent/veya-reader/core/audit" // setup better logging format
	"github.com/khoinguyent/veya-reader/core/idgen"
)

// Global exposes the server configuration.
var Global ServerConfig

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Build buildInfo `yaml:"-"`

	Basic struct {
		Host                     string      `env:"VEYAREADER_HOST,overwrite" yaml:"host"`
		Port                     string      `env:"VEYAREADER_PORT,overwrite" yaml:"port"`
		UnixSocket               string      `env:"VEYAREADER_UNIXSOCKET" yaml:"unixSocket"`
		RawUnixSocketPermissions string      `env:"VEYAREADER_UNIXSOCKET_PERMISSIONS" yaml:"unixSocketPermissions"`
		UnixSocketPermissions    os.FileMode `yaml:"-"`
		UnixSocketUser           string      `env:"VEYAREADER_UNIXSOCKET_USER" yaml:"unixSocketUser"`
		UnixSocketGroup          string      `env:"VEYAREADER_UNIXSOCKET_GROUP" yaml:"unixSocketGroup"`
	} `yaml:"basic"`

	Upstream struct {
		RawAPIBase string  `env:"VEYAREADER_API_BASE,overwrite" yaml:"apiBase"`
		APIBase    url.URL `yaml:"-"`

		UserAgent      string        `env:"VEYAREADER_USER_AGENT,overwrite" yaml:"userAgent"`
		AcceptLanguage string        `env:"VEYAREADER_ACCEPTLANGUAGE,overwrite" yaml:"acceptLanguage"`
		Timeout        time.Duration `env:"VEYAREADER_UPSTREAM_TIMEOUT,overwrite" yaml:"timeout"`

		// Outbound request budget towards the library API.
		RateLimitRPS   float64 `env:"VEYAREADER_UPSTREAM_RPS,overwrite" yaml:"rateLimitRps"`
		RateLimitBurst int     `env:"VEYAREADER_UPSTREAM_BURST,overwrite" yaml:"rateLimitBurst"`
	} `yaml:"upstream"`

	Cache struct {
		Enabled  bool          `env:"VEYAREADER_CACHE,overwrite" yaml:"enabled"`
		Size     int           `env:"VEYAREADER_CACHE_SIZE,overwrite" yaml:"cacheSize"`
		TTL      time.Duration `env:"VEYAREADER_CACHE_TTL,overwrite" yaml:"cacheTTL"`
		Compress bool          `env:"VEYAREADER_CACHE_COMPRESS,overwrite" yaml:"compress"`
	} `yaml:"cache"`

	HTTPCache struct {
		MaxAge               time.Duration `env:"VEYAREADER_CACHE_CONTROL_MAX_AGE,overwrite" yaml:"cacheControlMaxAge"`
		StaleWhileRevalidate time.Duration `env:"VEYAREADER_CACHE_CONTROL_STALE_WHILE_REVALIDATE,overwrite" yaml:"cacheControlStaleWhileRevalidate"`
	} `yaml:"httpCache"`

	// Reader tunes how articles are normalized and paginated. These are
	// instance-wide policy knobs; per-article presentation config from the
	// API always wins over them.
	Reader struct {
		PagedBlockThreshold int      `env:"VEYAREADER_PAGED_BLOCK_THRESHOLD,overwrite" yaml:"pagedBlockThreshold"`
		PagedLayoutHints    []string `env:"VEYAREADER_PAGED_LAYOUT_HINTS,overwrite" yaml:"pagedLayoutHints"`
		TapThreshold        float64  `env:"VEYAREADER_TAP_THRESHOLD,overwrite" yaml:"tapThreshold"`
		SettleCoverage      float64  `env:"VEYAREADER_SETTLE_COVERAGE,overwrite" yaml:"settleCoverage"`
	} `yaml:"reader"`

	Response struct {
		EarlyHintsResponses bool `env:"VEYAREADER_EARLY_HINTS_RESPONSES,overwrite" yaml:"earlyHintsResponses"`
	} `yaml:"response"`

	Instance struct {
		StartingTime      string `yaml:"-"`
		FileServerCacheID string `yaml:"-"`
		RepoURL           string `env:"VEYAREADER_REPO_URL,overwrite" yaml:"repoUrl"`
	} `yaml:"instance"`

	Development struct {
		InDevelopment        bool   `env:"VEYAREADER_DEV" yaml:"inDevelopment"`
		SaveResponses        bool   `env:"VEYAREADER_SAVE_RESPONSES,overwrite" yaml:"saveResponses"`
		ResponseSaveLocation string `env:"VEYAREADER_RESPONSE_SAVE_LOCATION,overwrite" yaml:"responseSaveLocation"`
	} `yaml:"development"`

	Log struct {
		Level   string   `env:"VEYAREADER_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Outputs []string `env:"VEYAREADER_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"VEYAREADER_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`
}

// LoadConfig loads the configuration from various sources.
func (cfg *ServerConfig) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	// Check if the -config flag was explicitly set by the user.
	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	// Determine the config file path with the correct precedence:
	// 1. Command-line flag (-config)
	// 2. Environment variable (VEYAREADER_CONFIGFILE)
	// 3. Default path with fallback check
	if configFlagUserSet {
		// Command-line flag has the highest precedence.
		configFilePath = parsedConfigFlagValue
	} else if envVar := os.Getenv("VEYAREADER_CONFIGFILE"); envVar != "" {
		// Environment variable is next.
		configFilePath = envVar
	} else {
		// If neither flag nor env var was provided, use the default value
		// from the flag ("./config.yaml").
		configFilePath = parsedConfigFlagValue
		// Then, perform a fallback check for "./config.yml".
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./config.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	cfg.SetDefaults()

	cfg.Build.load()

	cfg.Instance.FileServerCacheID = idgen.Make()
	cfg.Instance.StartingTime = time.Now().UTC().Format("2006-01-02 15:04")

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	// Heuristically check for containerized environment and warn if host is not a wildcard address.
	if isContainerized() && cfg.Basic.Host != "0.0.0.0" && cfg.Basic.Host != "::" {
		log.Warn().
			Str("host", cfg.Basic.Host).
			Msg("Running in a containerized environment but host is not a wildcard address (e.g., '0.0.0.0' or '::'). This may prevent the service from being accessible outside the container.")
	}

	return nil
}

var staticSkippedPathPrefixes = []string{"/img/", "/css/", "/js/"}

// ShouldSkipServerLogging determines if a request should bypass the logging middleware.
func (cfg *ServerConfig) ShouldSkipServerLogging(path string) bool {
	for _, prefix := range staticSkippedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// isContainerized checks for common indicators of a containerized environment.
//
// This is a heuristic and may not be 100% accurate.
func isContainerized() bool {
	// Check for a Kubernetes-injected environment variable.
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true
	}

	// Check for existence of container-specific files.
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	if _, err := os.Stat("/.containerenv"); err == nil {
		return true
	}

	// Check the cgroup of the current process.
	// #nosec G304 -- We are checking for the existence and content of a well-known system file for heuristics.
	cgroup, err := os.ReadFile("/proc/self/cgroup")
	if err == nil {
		content := string(cgroup)

		// Check for keywords common in container cgroup paths.
		return strings.Contains(content, "docker") ||
			strings.Contains(content, "kubepods") ||
			strings.Contains(content, "containerd") ||
			strings.Contains(content, "lxc") ||
			strings.Contains(content, "crio") ||
			// systemd-nspawn containers
			strings.Contains(content, ".machine")
	}

	return false
}

// GetDurationEncoderOption returns a YAML encoder option that marshals
// time.Duration into a human-readable string format (e.g., "30m", "1h").
func GetDurationEncoderOption() yaml.EncodeOption {
	return yaml.CustomMarshaler[time.Duration](
		func(d time.Duration) ([]byte, error) {
			return yaml.Marshal(d.String())
		},
	)
}
