package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty level is rejected; zerolog
// parses it as NoLevel, which would hide fatal entries.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// TestBuild_LevelsAboveFatalRejected verifies that levels which would drop
// the fatal entry are refused.
func TestBuild_LevelsAboveFatalRejected(t *testing.T) {
	for _, level := range []string{"panic", "disabled"} {
		t.Run(level, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, &Config{Log: Log{Level: level}})

			_, err := b.build()
			assert.ErrorIs(t, err, ErrInvalidLogConfigs)
		})
	}
}

// TestBuild_FatalAccepted verifies the highest allowed level.
func TestBuild_FatalAccepted(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{Log: Log{Level: "fatal"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, zerolog.FatalLevel, cfg.Log.ZerologLevel())
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierConfigWins verifies that mergo keeps the first non-zero
// value.
func TestBuild_EarlierConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{Log: Log{Level: "debug"}},
		&Config{Log: Log{Level: "error"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestBuild_InvalidLevel verifies that validation rejects unknown levels.
func TestBuild_InvalidLevel(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{Log: Log{Level: "loud"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// ── withEnv / withDefaults ────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
	assert.Same(t, b, b.withDefaults())
	assert.Len(t, b.configs, 2)
}

// TestWithEnv_ReadsEnvVars verifies that prefixed environment variables are
// picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("ICY_LOG_LEVEL", "warn")

	b := newConfigBuilder().withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "warn", b.configs[0].Log.Level)
}

// TestWithEnv_IgnoresUnprefixed verifies that the bare variable name is not
// read.
func TestWithEnv_IgnoresUnprefixed(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	b := newConfigBuilder().withEnv()

	require.Len(t, b.configs, 1)
	assert.Empty(t, b.configs[0].Log.Level)
}

// ── GetConfig ─────────────────────────────────────────────────────────────────

// TestGetConfig_Defaults verifies that an empty environment yields defaults.
func TestGetConfig_Defaults(t *testing.T) {
	t.Setenv("ICY_LOG_LEVEL", "")

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, zerolog.InfoLevel, cfg.Log.ZerologLevel())
}

// TestGetConfig_EnvOverridesDefaults verifies env precedence.
func TestGetConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("ICY_LOG_LEVEL", "debug")

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, cfg.Log.ZerologLevel())
}

// TestGetConfig_InvalidEnv verifies that a bad level fails the build.
func TestGetConfig_InvalidEnv(t *testing.T) {
	t.Setenv("ICY_LOG_LEVEL", "verbose")

	_, err := GetConfig()
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// TestLog_ZerologLevelFallback verifies the fallback for unparsable levels.
func TestLog_ZerologLevelFallback(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, Log{Level: "nonsense"}.ZerologLevel())
	assert.Equal(t, zerolog.ErrorLevel, Log{Level: "error"}.ZerologLevel())
	assert.Equal(t, zerolog.FatalLevel, Log{Level: "disabled"}.ZerologLevel())
	assert.Equal(t, zerolog.FatalLevel, Log{Level: "panic"}.ZerologLevel())
}
