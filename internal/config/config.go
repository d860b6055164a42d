// Package config loads application configuration. Values are resolved in
// three layers: compiled-in defaults, then an optional YAML file (pointed
// at by CONFIG_FILE), then environment variable overrides. The result is
// validated before use.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults mirrored by the YAML and env layers.
const (
	DefaultUserAgent = "Mozilla/5.0 (compatible; UKNewsScraper/1.0; for personal/research use)"

	DefaultRequestTimeout = 15 * time.Second
	DefaultMinDelay       = 2 * time.Second
	DefaultMaxDelay       = 5 * time.Second

	DefaultOutputDir = "output"
	DefaultDigestDir = "output/digests"

	DefaultTimezone = "Europe/London"

	DefaultHTTPPort        = 8765
	DefaultShutdownTimeout = 10 * time.Second

	DefaultRateLimitRPS   = 1
	DefaultRateLimitBurst = 3
)

// Config holds every runtime setting of the scraper, shared by the CLI
// and the HTTP service.
type Config struct {
	// UserAgent is sent on every outbound request.
	UserAgent string `yaml:"user_agent"`

	// RequestTimeout bounds each outbound HTTP request.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MinDelay and MaxDelay bound the randomized pause taken before each
	// article is processed, keeping the scraper polite to upstream sites.
	MinDelay time.Duration `yaml:"min_delay"`
	MaxDelay time.Duration `yaml:"max_delay"`

	// Feed and API endpoints per outlet. Empty values fall back to the
	// adapter defaults.
	BBCFeedURL         string `yaml:"bbc_feed_url"`
	IndependentFeedURL string `yaml:"independent_feed_url"`
	SkyFeedURL         string `yaml:"sky_feed_url"`
	GuardianAPIURL     string `yaml:"guardian_api_url"`

	// GuardianAPIKey authenticates against the Guardian content API.
	// The API accepts "test" for unauthenticated low-volume use.
	GuardianAPIKey string `yaml:"guardian_api_key"`

	// OutputDir receives the per-run article exports, DigestDir the
	// timestamped digest archive.
	OutputDir string `yaml:"output_dir"`
	DigestDir string `yaml:"digest_dir"`

	// Timezone is the IANA zone used for session labels and filenames.
	Timezone string `yaml:"timezone"`

	// HTTP service settings.
	HTTPPort        int           `yaml:"http_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// CronSchedule, when non-empty, makes the server trigger runs on a
	// cron expression (e.g. "0 7,19 * * *") in addition to GET /run.
	CronSchedule string `yaml:"cron_schedule"`

	// Rate limiting for the HTTP service. A run takes minutes, so the
	// defaults are deliberately tight.
	RateLimitEnabled bool `yaml:"rate_limit_enabled"`
	RateLimitRPS     int  `yaml:"rate_limit_rps"`
	RateLimitBurst   int  `yaml:"rate_limit_burst"`
}

// Load resolves the configuration: defaults, then the YAML file named by
// CONFIG_FILE (if any), then environment variables. The returned config
// has been validated.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	cfg.loadEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		UserAgent:        DefaultUserAgent,
		RequestTimeout:   DefaultRequestTimeout,
		MinDelay:         DefaultMinDelay,
		MaxDelay:         DefaultMaxDelay,
		GuardianAPIKey:   "test",
		OutputDir:        DefaultOutputDir,
		DigestDir:        DefaultDigestDir,
		Timezone:         DefaultTimezone,
		HTTPPort:         DefaultHTTPPort,
		ShutdownTimeout:  DefaultShutdownTimeout,
		RateLimitEnabled: true,
		RateLimitRPS:     DefaultRateLimitRPS,
		RateLimitBurst:   DefaultRateLimitBurst,
	}
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

func (c *Config) loadEnv() {
	c.UserAgent = getEnvString("USER_AGENT", c.UserAgent)
	c.RequestTimeout = getEnvDuration("REQUEST_TIMEOUT", c.RequestTimeout)
	c.MinDelay = getEnvDuration("MIN_DELAY", c.MinDelay)
	c.MaxDelay = getEnvDuration("MAX_DELAY", c.MaxDelay)

	c.BBCFeedURL = getEnvString("BBC_FEED_URL", c.BBCFeedURL)
	c.IndependentFeedURL = getEnvString("INDEPENDENT_FEED_URL", c.IndependentFeedURL)
	c.SkyFeedURL = getEnvString("SKY_FEED_URL", c.SkyFeedURL)
	c.GuardianAPIURL = getEnvString("GUARDIAN_API_URL", c.GuardianAPIURL)
	c.GuardianAPIKey = getEnvString("GUARDIAN_API_KEY", c.GuardianAPIKey)

	c.OutputDir = getEnvString("OUTPUT_DIR", c.OutputDir)
	c.DigestDir = getEnvString("DIGEST_DIR", c.DigestDir)
	c.Timezone = getEnvString("TIMEZONE", c.Timezone)

	c.HTTPPort = getEnvInt("HTTP_PORT", c.HTTPPort)
	c.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)
	c.CronSchedule = getEnvString("CRON_SCHEDULE", c.CronSchedule)

	c.RateLimitEnabled = getEnvBool("RATELIMIT_ENABLED", c.RateLimitEnabled)
	c.RateLimitRPS = getEnvInt("RATELIMIT_RPS", c.RateLimitRPS)
	c.RateLimitBurst = getEnvInt("RATELIMIT_BURST", c.RateLimitBurst)
}

// Validate checks the configuration for values that would break a run.
func (c *Config) Validate() error {
	if c.UserAgent == "" {
		return fmt.Errorf("user agent must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", c.RequestTimeout)
	}
	if c.MinDelay < 0 {
		return fmt.Errorf("min delay must be non-negative, got %v", c.MinDelay)
	}
	if c.MaxDelay < c.MinDelay {
		return fmt.Errorf("max delay %v must not be less than min delay %v", c.MaxDelay, c.MinDelay)
	}
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("http port must be in 1-65535, got %d", c.HTTPPort)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.RateLimitEnabled && c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit rps must be positive, got %d", c.RateLimitRPS)
	}
	return nil
}

// Location resolves the configured timezone. Validate has already checked
// that the zone loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
