package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "semowl.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/semowl"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// Environment variables read after all config files.
const (
	EnvLogLevel = "SEMOWL_LOG_LEVEL"
	EnvNATSURL  = "NATS_URL"
)

// Loader resolves the config layers of one run.
type Loader struct {
	logger *slog.Logger
	// homeDir and workDir default to the user's home and the current
	// directory when empty.
	homeDir string
	workDir string
	getenv  func(string) string
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, getenv: os.Getenv}
}

// layer is one config file in precedence order.
type layer struct {
	name     string
	path     string
	required bool
}

// Load merges, lowest first, the defaults, the user file
// (~/.config/semowl/config.yaml), the nearest semowl.yaml, the explicit file
// at path and the environment. Only the explicit file has to exist.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	for _, ly := range l.layers(path) {
		if err := l.apply(cfg, ly); err != nil {
			return nil, err
		}
	}
	cfg.Merge(l.fromEnv())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) layers(path string) []layer {
	var out []layer
	if p := l.userConfigPath(); p != "" {
		out = append(out, layer{name: "user", path: p})
	}
	if p := l.findProjectConfig(); p != "" {
		out = append(out, layer{name: "project", path: p})
	} else {
		l.logger.Debug("No project config found")
	}
	if path != "" {
		out = append(out, layer{name: "explicit", path: path, required: true})
	}
	return out
}

// apply merges one layer into cfg. Optional layers that fail to load are
// logged and skipped.
func (l *Loader) apply(cfg *Config, ly layer) error {
	loaded, err := readLayer(ly.path)
	switch {
	case err == nil:
		l.logger.Debug("Loaded config layer", slog.String("layer", ly.name), slog.String("path", ly.path))
		cfg.Merge(loaded)
		return nil
	case ly.required:
		return err
	case !errors.Is(err, fs.ErrNotExist):
		l.logger.Warn("Skipping config layer",
			slog.String("layer", ly.name),
			slog.String("path", ly.path),
			slog.String("error", err.Error()))
	}
	return nil
}

// readLayer reads a config file without filling in defaults, so that merging
// it only overrides the keys the file sets.
func readLayer(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// fromEnv returns the settings carried by environment variables.
func (l *Loader) fromEnv() *Config {
	getenv := l.getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	return &Config{
		Log:     LogConfig{Level: getenv(EnvLogLevel)},
		Publish: PublishConfig{NATSURL: getenv(EnvNATSURL)},
	}
}

// WriteUserConfig writes the defaults to the user config file unless one is
// already there. It returns the file's path and whether it was created.
func (l *Loader) WriteUserConfig() (string, bool, error) {
	path := l.userConfigPath()
	if path == "" {
		return "", false, errors.New("no home directory")
	}

	_, err := os.Stat(path)
	if err == nil {
		return path, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", false, fmt.Errorf("stat user config: %w", err)
	}

	if err := DefaultConfig().SaveToFile(path); err != nil {
		return "", false, err
	}
	l.logger.Info("Created default user config", slog.String("path", path))
	return path, true, nil
}

func (l *Loader) userConfigPath() string {
	home := l.homeDir
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig walks up from the working directory to the first
// semowl.yaml.
func (l *Loader) findProjectConfig() string {
	dir := l.workDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = cwd
	}

	for {
		candidate := filepath.Join(dir, ProjectConfigFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
