package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/kiesman99/imgsplit/internal/splitter"
	"github.com/kiesman99/imgsplit/pkg/imagefmt"
)

// EnvPrefix is prepended to environment variable names
const EnvPrefix = "IMGSPLIT"

// Config holds the application configuration
type Config struct {
	Split   SplitConfig   `mapstructure:"split"`
	Server  ServerConfig  `mapstructure:"server"`
	Session SessionConfig `mapstructure:"session"`
}

// SplitConfig holds the limits and encoder settings for splitting
type SplitConfig struct {
	MaxCount        int      `mapstructure:"max-count"`
	AcceptedFormats []string `mapstructure:"accepted-formats"`
	JPEGQuality     int      `mapstructure:"jpeg-quality"`
	WebPLossy       bool     `mapstructure:"webp-lossy"`
}

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Bind           string        `mapstructure:"bind"`
	Port           int           `mapstructure:"port"`
	Timeout        time.Duration `mapstructure:"timeout"`
	MaxUploadBytes int64         `mapstructure:"max-upload-bytes"`
}

// SessionConfig holds the session store settings
type SessionConfig struct {
	TTL         time.Duration `mapstructure:"ttl"`
	MaxSessions int           `mapstructure:"max-sessions"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("split.max-count", splitter.DefaultMaxCount)
	v.SetDefault("split.accepted-formats", []string{"png", "jpeg"})
	v.SetDefault("split.jpeg-quality", splitter.DefaultJPEGQuality)
	v.SetDefault("split.webp-lossy", false)

	v.SetDefault("server.bind", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.timeout", 30*time.Second)
	v.SetDefault("server.max-upload-bytes", int64(32<<20))

	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("session.max-sessions", 256)
}

// BindEnv makes every key readable from IMGSPLIT_* environment variables,
// e.g. IMGSPLIT_SPLIT_MAX_COUNT
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load unmarshals and validates the configuration held by v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with every default applied
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := Load(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Split.MaxCount < splitter.MinCount {
		return fmt.Errorf("split.max-count must be at least %d", splitter.MinCount)
	}

	if len(c.Split.AcceptedFormats) == 0 {
		return fmt.Errorf("split.accepted-formats cannot be empty")
	}

	if _, err := imagefmt.ParseList(c.Split.AcceptedFormats); err != nil {
		return fmt.Errorf("split.accepted-formats: %w", err)
	}

	if c.Split.JPEGQuality < 1 || c.Split.JPEGQuality > 100 {
		return fmt.Errorf("split.jpeg-quality must be between 1 and 100")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535")
	}

	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive")
	}

	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max-upload-bytes must be positive")
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}

	if c.Session.MaxSessions < 1 {
		return fmt.Errorf("session.max-sessions must be positive")
	}

	return nil
}

// Accepted returns the parsed accepted upload formats
func (c *Config) Accepted() []imagefmt.Format {
	formats, err := imagefmt.ParseList(c.Split.AcceptedFormats)
	if err != nil {
		return nil
	}
	return formats
}

// Splitter builds a splitter from the split settings
func (c *Config) Splitter() *splitter.Splitter {
	return splitter.New(
		splitter.Limits{MaxCount: c.Split.MaxCount},
		&splitter.Encoder{JPEGQuality: c.Split.JPEGQuality, WebPLossy: c.Split.WebPLossy},
	)
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}
