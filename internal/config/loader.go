package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "SHORTPATH_"

// ErrConfigNotFound is returned when an explicitly requested config file is missing.
var ErrConfigNotFound = errors.New("config: file not found")

// Loader assembles a Config from defaults, a YAML file and the environment.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	explicit    string
	envPrefix   string
	used        string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths replaces the list of optional files probed in order.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithConfigFile names a file that must exist (the --config flag).
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.explicit = path
	}
}

// WithEnvPrefix overrides the SHORTPATH_ environment prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// NewLoader creates a loader probing shortpath.yaml in the working directory
// and under config/.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k: koanf.New("."),
		configPaths: []string{
			"shortpath.yaml",
			"config/shortpath.yaml",
		},
		envPrefix: envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load resolves the configuration with precedence:
//  1. Defaults (lowest)
//  2. Config file (yaml)
//  3. Environment variables (highest)
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := l.loadConfigFile(); err != nil {
		return nil, err
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// File returns the config file Load read, or "" when none was found.
func (l *Loader) File() string { return l.used }

// Defaults returns the built-in configuration as a flat koanf map.
func Defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "text",

		"graph.vertices":         40,
		"graph.edge_probability": 0.1,
		"graph.seed":             1,
		"graph.min_weight":       0,
		"graph.max_weight":       20,
		"graph.max_potential":    10,

		"johnson.parallelism": 1,
		"verify.rounds":       5,
		"output.limit":        20,
	}
}

// loadConfigFile loads the explicit file (required) or the first probed path
// that exists (optional).
func (l *Loader) loadConfigFile() error {
	if l.explicit != "" {
		if _, err := os.Stat(l.explicit); err != nil {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, l.explicit)
		}
		return l.loadFile(l.explicit)
	}

	for _, path := range l.configPaths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if _, err = os.Stat(absPath); err == nil {
			return l.loadFile(absPath)
		}
	}

	return nil
}

func (l *Loader) loadFile(path string) error {
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	l.used = path

	return nil
}

// loadEnv maps SHORTPATH_GRAPH_EDGE_PROBABILITY → graph.edge_probability.
// Keys whose leaf contains an underscore are listed in envKeyMappings; all
// other underscores become dots.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey string, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if mapped, ok := envKeyMappings[key]; ok {
			return mapped, value
		}
		return strings.ReplaceAll(key, "_", "."), value
	}), nil)
}

var envKeyMappings = map[string]string{
	"graph_edge_probability": "graph.edge_probability",
	"graph_min_weight":       "graph.min_weight",
	"graph_max_weight":       "graph.max_weight",
	"graph_max_potential":    "graph.max_potential",
}
