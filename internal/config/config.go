// SPDX-License-Identifier: MIT

// Package config resolves runtime settings from the process environment.
// Precedence is flags > environment > defaults; flags are applied by the
// caller on top of the Settings returned here.
package config

import (
	"time"

	"github.com/joho/godotenv"

	"github.com/pranjal2523/youtube-data-fetcher-script/internal/log"
)

// Environment variable names understood by the tool.
const (
	EnvAPIKey      = "YTFETCH_API_KEY"
	EnvDataDir     = "YTFETCH_DATA"
	EnvLogLevel    = "YTFETCH_LOG_LEVEL"
	EnvHTTPTimeout = "YTFETCH_HTTP_TIMEOUT" // seconds

	// legacyAPIKey matches the variable name used by older .env files.
	legacyAPIKey = "API_KEY"
)

const defaultHTTPTimeoutSeconds = 30

// Settings holds everything the CLI needs before a run starts. The YouTube
// API key is handed to the client adapter once at startup and is not kept
// anywhere else.
type Settings struct {
	APIKey      string
	DataDir     string
	LogLevel    string
	HTTPTimeout time.Duration
}

// Load reads a .env file if one is present in the working directory and then
// resolves all settings from the environment. A missing .env file is not an
// error; explicit environment variables win over .env entries either way.
func Load() Settings {
	logger := log.WithComponent("config")
	if err := godotenv.Load(); err == nil {
		logger.Debug().Str("path", ".env").Msg("loaded environment from .env file")
	}

	apiKey := ParseString(EnvAPIKey, "")
	if apiKey == "" {
		apiKey = ParseString(legacyAPIKey, "")
	}

	timeout := ParseInt(EnvHTTPTimeout, defaultHTTPTimeoutSeconds)
	if timeout <= 0 {
		timeout = defaultHTTPTimeoutSeconds
	}

	return Settings{
		APIKey:      apiKey,
		DataDir:     ParseString(EnvDataDir, "."),
		LogLevel:    ParseString(EnvLogLevel, "info"),
		HTTPTimeout: time.Duration(timeout) * time.Second,
	}
}
