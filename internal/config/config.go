// Package config loads the shortpath CLI configuration: built-in defaults,
// an optional YAML file and SHORTPATH_* environment overrides, in that order
// of precedence.
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration structure.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Graph   GraphConfig   `koanf:"graph"`
	Johnson JohnsonConfig `koanf:"johnson"`
	Verify  VerifyConfig  `koanf:"verify"`
	Output  OutputConfig  `koanf:"output"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // text, json, logfmt
}

// GraphConfig drives the random feasible graph generator.
type GraphConfig struct {
	Vertices        int     `koanf:"vertices"`
	EdgeProbability float64 `koanf:"edge_probability"`
	Seed            int64   `koanf:"seed"`
	MinWeight       int64   `koanf:"min_weight"`
	MaxWeight       int64   `koanf:"max_weight"`
	MaxPotential    int64   `koanf:"max_potential"`
}

// JohnsonConfig tunes the all-pairs run.
type JohnsonConfig struct {
	Parallelism int `koanf:"parallelism"`
}

// VerifyConfig tunes the cross-check command.
type VerifyConfig struct {
	Rounds int `koanf:"rounds"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Limit int `koanf:"limit"` // rows printed; 0 prints everything
}

// Validate checks the configuration and normalizes the log fields.
func (c *Config) Validate() error {
	var errs []string

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}

	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	validFormats := map[string]bool{"text": true, "json": true, "logfmt": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format must be one of: text, json, logfmt, got %s", c.Log.Format))
	}

	if c.Graph.Vertices < 1 {
		errs = append(errs, fmt.Sprintf("graph.vertices must be positive, got %d", c.Graph.Vertices))
	}
	if c.Graph.EdgeProbability < 0 || c.Graph.EdgeProbability > 1 {
		errs = append(errs, fmt.Sprintf("graph.edge_probability must be in [0,1], got %g", c.Graph.EdgeProbability))
	}
	if c.Graph.MinWeight < 0 {
		errs = append(errs, fmt.Sprintf("graph.min_weight must be non-negative, got %d", c.Graph.MinWeight))
	}
	if c.Graph.MaxWeight < c.Graph.MinWeight {
		errs = append(errs, fmt.Sprintf("graph.max_weight (%d) must be >= graph.min_weight (%d)", c.Graph.MaxWeight, c.Graph.MinWeight))
	}
	if c.Graph.MaxPotential < 0 {
		errs = append(errs, fmt.Sprintf("graph.max_potential must be non-negative, got %d", c.Graph.MaxPotential))
	}

	if c.Johnson.Parallelism < 1 {
		errs = append(errs, fmt.Sprintf("johnson.parallelism must be >= 1, got %d", c.Johnson.Parallelism))
	}
	if c.Verify.Rounds < 1 {
		errs = append(errs, fmt.Sprintf("verify.rounds must be >= 1, got %d", c.Verify.Rounds))
	}
	if c.Output.Limit < 0 {
		errs = append(errs, fmt.Sprintf("output.limit must be non-negative, got %d", c.Output.Limit))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
