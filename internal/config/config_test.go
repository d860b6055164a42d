package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.MinDelay)
	assert.Equal(t, 5*time.Second, cfg.MaxDelay)
	assert.Equal(t, "test", cfg.GuardianAPIKey)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, "output/digests", cfg.DigestDir)
	assert.Equal(t, "Europe/London", cfg.Timezone)
	assert.Equal(t, 8765, cfg.HTTPPort)
	assert.True(t, cfg.RateLimitEnabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GUARDIAN_API_KEY", "real-key")
	t.Setenv("REQUEST_TIMEOUT", "30s")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("RATELIMIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "real-key", cfg.GuardianAPIKey)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.False(t, cfg.RateLimitEnabled)
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"min_delay: 1s\nmax_delay: 3s\noutput_dir: /tmp/news\nhttp_port: 9100\n"), 0o644))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("HTTP_PORT", "9200") // env wins over file

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.MinDelay)
	assert.Equal(t, 3*time.Second, cfg.MaxDelay)
	assert.Equal(t, "/tmp/news", cfg.OutputDir)
	assert.Equal(t, 9200, cfg.HTTPPort)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent, "unset keys keep their defaults")
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "empty user agent", mutate: func(c *Config) { c.UserAgent = "" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }, wantErr: true},
		{name: "negative min delay", mutate: func(c *Config) { c.MinDelay = -time.Second }, wantErr: true},
		{name: "max below min", mutate: func(c *Config) { c.MinDelay = 5 * time.Second; c.MaxDelay = 2 * time.Second }, wantErr: true},
		{name: "port out of range", mutate: func(c *Config) { c.HTTPPort = 70000 }, wantErr: true},
		{name: "bad timezone", mutate: func(c *Config) { c.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "rate limit zero rps", mutate: func(c *Config) { c.RateLimitRPS = 0 }, wantErr: true},
		{name: "rate limit disabled ignores rps", mutate: func(c *Config) { c.RateLimitEnabled = false; c.RateLimitRPS = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "hello")
	t.Setenv("X_INT", "42")
	t.Setenv("X_INT_BAD", "not-a-number")
	t.Setenv("X_BOOL", "true")
	t.Setenv("X_BOOL_BAD", "yep")
	t.Setenv("X_DUR", "90s")
	t.Setenv("X_DUR_BAD", "soon")

	assert.Equal(t, "hello", getEnvString("X_STR", "d"))
	assert.Equal(t, "d", getEnvString("X_UNSET", "d"))
	assert.Equal(t, 42, getEnvInt("X_INT", 1))
	assert.Equal(t, 1, getEnvInt("X_INT_BAD", 1))
	assert.True(t, getEnvBool("X_BOOL", false))
	assert.False(t, getEnvBool("X_BOOL_BAD", false))
	assert.Equal(t, 90*time.Second, getEnvDuration("X_DUR", time.Second))
	assert.Equal(t, time.Second, getEnvDuration("X_DUR_BAD", time.Second))
}
