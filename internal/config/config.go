// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// envPrefix is prepended to every environment variable name.
const envPrefix = "ICY_"

// Config is the top-level configuration container.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`
}

// Log holds logger settings.
type Log struct {
	// Level is the minimum zerolog level emitted
	// (trace, debug, info, warn, error, fatal, panic, disabled).
	// Env: ICY_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults returns the configuration used for fields no other source sets.
func Defaults() *Config {
	return &Config{
		Log: Log{Level: zerolog.InfoLevel.String()},
	}
}

// ZerologLevel returns the parsed log level. An unparsable level yields
// zerolog.InfoLevel; levels above fatal are capped at zerolog.FatalLevel.
func (l Log) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return min(level, zerolog.FatalLevel)
}

// GetConfig loads and validates the configuration, merging environment
// variables over [Defaults]. Callers that must not fail on bad ambient
// settings fall back to [Defaults] when it returns an error.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}
