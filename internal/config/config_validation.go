// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the merged [Config] can be used at startup.
//
// Levels above fatal (panic, disabled, and the empty level) are rejected:
// they would drop the fatal entry the process exits with.
func (cfg *Config) validate() error {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	if level > zerolog.FatalLevel {
		return fmt.Errorf("%w: level %q hides fatal entries", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	return nil
}
