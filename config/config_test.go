package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Log.Level)
	}
	if cfg.Output.Format != "turtle" {
		t.Errorf("expected default format turtle, got %s", cfg.Output.Format)
	}
	if cfg.Output.Profile != "asserted" {
		t.Errorf("expected default profile asserted, got %s", cfg.Output.Profile)
	}
	if cfg.Imports.Resolve {
		t.Error("expected import resolution off by default")
	}
	if cfg.Store.Path != "" {
		t.Error("expected no library by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "unknown log format",
			modify:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "negative max depth",
			modify:  func(c *Config) { c.Imports.MaxDepth = -1 },
			wantErr: true,
		},
		{
			name:    "zero concurrency",
			modify:  func(c *Config) { c.Imports.Concurrency = 0 },
			wantErr: true,
		},
		{
			name:    "zero read timeout",
			modify:  func(c *Config) { c.Imports.ReadTimeout = 0 },
			wantErr: true,
		},
		{
			name:    "zero attempts",
			modify:  func(c *Config) { c.Imports.MaxAttempts = 0 },
			wantErr: true,
		},
		{
			name:    "unsupported format",
			modify:  func(c *Config) { c.Output.Format = "rdfxml" },
			wantErr: true,
		},
		{
			name:    "unsupported profile",
			modify:  func(c *Config) { c.Output.Profile = "cco" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("trace"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
log:
  level: debug
decode:
  ontology_iri: "http://example.org/onto"
imports:
  resolve: true
  max_depth: 3
  read_timeout: 45s
  requests_per_second: 2.5
store:
  path: "/var/lib/semowl/library.db"
output:
  format: jsonld
  profile: full
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("expected log format to keep default text, got %s", cfg.Log.Format)
	}
	if cfg.Decode.OntologyIRI != "http://example.org/onto" {
		t.Errorf("expected ontology IRI, got %s", cfg.Decode.OntologyIRI)
	}
	if !cfg.Imports.Resolve || cfg.Imports.MaxDepth != 3 {
		t.Errorf("unexpected imports section %+v", cfg.Imports)
	}
	if cfg.Imports.ReadTimeout != 45*time.Second {
		t.Errorf("expected read timeout 45s, got %v", cfg.Imports.ReadTimeout)
	}
	if cfg.Imports.RequestsPerSecond != 2.5 {
		t.Errorf("expected 2.5 requests per second, got %f", cfg.Imports.RequestsPerSecond)
	}
	if cfg.Store.Path != "/var/lib/semowl/library.db" {
		t.Errorf("expected store path, got %s", cfg.Store.Path)
	}
	if cfg.Output.Format != "jsonld" || cfg.Output.Profile != "full" {
		t.Errorf("unexpected output section %+v", cfg.Output)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("log: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Log: LogConfig{
			Level: "warn",
		},
		Imports: ImportsConfig{
			Resolve:     true,
			Concurrency: 16,
		},
		Store: StoreConfig{
			Path: "/override/library.db",
		},
		Publish: PublishConfig{
			NATSURL: "nats://graph:4222",
		},
	}

	base.Merge(override)

	if base.Log.Level != "warn" {
		t.Errorf("expected log level warn, got %s", base.Log.Level)
	}
	// Format should remain from base since override didn't set it
	if base.Log.Format != "text" {
		t.Errorf("expected log format to remain default, got %s", base.Log.Format)
	}
	if !base.Imports.Resolve || base.Imports.Concurrency != 16 {
		t.Errorf("unexpected imports section %+v", base.Imports)
	}
	if base.Imports.MaxDepth != 8 {
		t.Errorf("expected max depth to remain default, got %d", base.Imports.MaxDepth)
	}
	if base.Store.Path != "/override/library.db" {
		t.Errorf("expected store path /override/library.db, got %s", base.Store.Path)
	}
	if base.Publish.NATSURL != "nats://graph:4222" {
		t.Errorf("expected NATS URL nats://graph:4222, got %s", base.Publish.NATSURL)
	}

	base.Merge(nil)
}

func TestFetcherConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Imports.ConnectTimeout = 3 * time.Second
	cfg.Imports.MaxAttempts = 5
	cfg.Imports.UserAgent = "test-agent"

	fc := cfg.Imports.FetcherConfig()
	if fc.ConnectTimeout != 3*time.Second {
		t.Errorf("expected connect timeout 3s, got %v", fc.ConnectTimeout)
	}
	if fc.Retry.MaxAttempts != 5 {
		t.Errorf("expected 5 attempts, got %d", fc.Retry.MaxAttempts)
	}
	if fc.UserAgent != "test-agent" {
		t.Errorf("expected user agent test-agent, got %s", fc.UserAgent)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Output.Format = "ntriples"
	cfg.Imports.CacheTTL = 90 * time.Minute

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Output.Format != "ntriples" {
		t.Errorf("expected format ntriples, got %s", loaded.Output.Format)
	}
	if loaded.Imports.CacheTTL != 90*time.Minute {
		t.Errorf("expected cache TTL 90m, got %v", loaded.Imports.CacheTTL)
	}
}
