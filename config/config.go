// Package config provides configuration loading and management for semowl.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/c360studio/semowl/export"
	"github.com/c360studio/semowl/imports"
	"gopkg.in/yaml.v3"
)

// Config represents the complete semowl configuration
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Decode  DecodeConfig  `yaml:"decode"`
	Imports ImportsConfig `yaml:"imports"`
	Store   StoreConfig   `yaml:"store"`
	Output  OutputConfig  `yaml:"output"`
	Publish PublishConfig `yaml:"publish"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string `yaml:"level"`
	// Format is text or json (default: text)
	Format string `yaml:"format"`
}

// DecodeConfig configures RDF decoding
type DecodeConfig struct {
	// OntologyIRI selects the ontology when a graph holds several (empty = first)
	OntologyIRI string `yaml:"ontology_iri"`
}

// ImportsConfig configures owl:imports resolution
type ImportsConfig struct {
	// Resolve enables fetching imported ontologies
	Resolve bool `yaml:"resolve"`
	// MaxDepth limits how many import levels are followed (0 = unlimited)
	MaxDepth int `yaml:"max_depth"`
	// Concurrency is the number of imports fetched at once
	Concurrency int `yaml:"concurrency"`
	// ConnectTimeout bounds establishing a connection
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	// ReadTimeout bounds waiting for and reading a response
	ReadTimeout time.Duration `yaml:"read_timeout"`
	// RequestsPerSecond limits outgoing requests (0 = unlimited)
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	// Burst is the rate limiter burst size
	Burst int `yaml:"burst"`
	// CacheTTL is how long fetched documents stay cached
	CacheTTL time.Duration `yaml:"cache_ttl"`
	// MaxAttempts is the number of fetch attempts for transient failures
	MaxAttempts int `yaml:"max_attempts"`
	// UserAgent is sent with every request
	UserAgent string `yaml:"user_agent"`
}

// StoreConfig configures the local ontology library
type StoreConfig struct {
	// Path is the SQLite library file (empty = no library)
	Path string `yaml:"path"`
}

// OutputConfig configures export
type OutputConfig struct {
	// Format is the default export format (turtle, ntriples, jsonld, semstreams)
	Format string `yaml:"format"`
	// Profile selects which axioms are exported (asserted, imports, full)
	Profile string `yaml:"profile"`
}

// PublishConfig configures publishing reloaded ontologies to semstreams
type PublishConfig struct {
	// NATSURL is the NATS server to publish to (empty = no publishing)
	NATSURL string `yaml:"nats_url"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	fetch := imports.DefaultConfig()
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Imports: ImportsConfig{
			Resolve:           false,
			MaxDepth:          8,
			Concurrency:       4,
			ConnectTimeout:    fetch.ConnectTimeout,
			ReadTimeout:       fetch.ReadTimeout,
			RequestsPerSecond: fetch.RequestsPerSecond,
			Burst:             fetch.Burst,
			CacheTTL:          fetch.CacheTTL,
			MaxAttempts:       fetch.Retry.MaxAttempts,
			UserAgent:         fetch.UserAgent,
		},
		Output: OutputConfig{
			Format:  string(export.FormatTurtle),
			Profile: string(export.ProfileAsserted),
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be text or json")
	}
	if c.Imports.MaxDepth < 0 {
		return fmt.Errorf("imports.max_depth must not be negative")
	}
	if c.Imports.Concurrency < 1 {
		return fmt.Errorf("imports.concurrency must be at least 1")
	}
	if c.Imports.ConnectTimeout <= 0 || c.Imports.ReadTimeout <= 0 {
		return fmt.Errorf("imports timeouts must be positive")
	}
	if c.Imports.RequestsPerSecond < 0 {
		return fmt.Errorf("imports.requests_per_second must not be negative")
	}
	if c.Imports.MaxAttempts < 1 {
		return fmt.Errorf("imports.max_attempts must be at least 1")
	}
	if _, ok := export.GetFormatInfo(export.Format(c.Output.Format)); !ok {
		return fmt.Errorf("output.format %q is not supported", c.Output.Format)
	}
	if _, ok := export.Profiles[export.Profile(c.Output.Profile)]; !ok {
		return fmt.Errorf("output.profile %q is not supported", c.Output.Profile)
	}
	return nil
}

// ParseLevel converts a log level name to a slog level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level %q must be debug, info, warn or error", level)
	}
}

// FetcherConfig converts the imports section to fetcher settings
func (c ImportsConfig) FetcherConfig() imports.Config {
	cfg := imports.DefaultConfig()
	cfg.ConnectTimeout = c.ConnectTimeout
	cfg.ReadTimeout = c.ReadTimeout
	cfg.RequestsPerSecond = c.RequestsPerSecond
	cfg.Burst = c.Burst
	cfg.CacheTTL = c.CacheTTL
	cfg.Retry.MaxAttempts = c.MaxAttempts
	cfg.UserAgent = c.UserAgent
	return cfg
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}

	// Decode
	if other.Decode.OntologyIRI != "" {
		c.Decode.OntologyIRI = other.Decode.OntologyIRI
	}

	// Imports
	if other.Imports.Resolve {
		c.Imports.Resolve = true
	}
	if other.Imports.MaxDepth != 0 {
		c.Imports.MaxDepth = other.Imports.MaxDepth
	}
	if other.Imports.Concurrency != 0 {
		c.Imports.Concurrency = other.Imports.Concurrency
	}
	if other.Imports.ConnectTimeout != 0 {
		c.Imports.ConnectTimeout = other.Imports.ConnectTimeout
	}
	if other.Imports.ReadTimeout != 0 {
		c.Imports.ReadTimeout = other.Imports.ReadTimeout
	}
	if other.Imports.RequestsPerSecond != 0 {
		c.Imports.RequestsPerSecond = other.Imports.RequestsPerSecond
	}
	if other.Imports.Burst != 0 {
		c.Imports.Burst = other.Imports.Burst
	}
	if other.Imports.CacheTTL != 0 {
		c.Imports.CacheTTL = other.Imports.CacheTTL
	}
	if other.Imports.MaxAttempts != 0 {
		c.Imports.MaxAttempts = other.Imports.MaxAttempts
	}
	if other.Imports.UserAgent != "" {
		c.Imports.UserAgent = other.Imports.UserAgent
	}

	// Store
	if other.Store.Path != "" {
		c.Store.Path = other.Store.Path
	}

	// Output
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Profile != "" {
		c.Output.Profile = other.Output.Profile
	}

	// Publish
	if other.Publish.NATSURL != "" {
		c.Publish.NATSURL = other.Publish.NATSURL
	}
}
