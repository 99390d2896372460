// Package config resolves the BulletConfig that drives an analysis run.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables. CLI flags are applied last by the caller.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvConfigPath        = "BULLETCHECK_CONFIG"
	EnvStrictMode        = "BULLETCHECK_STRICT_MODE"
	EnvResearchCitations = "BULLETCHECK_RESEARCH_CITATIONS"
	EnvColorOutput       = "BULLETCHECK_COLOR_OUTPUT"
	EnvNoColor           = "NO_COLOR"
)

// BulletConfig is the resolved configuration for one analysis.
type BulletConfig struct {
	Validation ValidationConfig `json:"validation" yaml:"validation"`
	Display    DisplayConfig    `json:"display" yaml:"display"`
}

// ValidationConfig holds the toggles the aggregator consumes.
type ValidationConfig struct {
	// StrictMode promotes every warning to an error.
	StrictMode bool `json:"strictMode" yaml:"strictMode"`
	// EnableResearchCitations keeps research_basis on issues when true.
	EnableResearchCitations bool `json:"enableResearchCitations" yaml:"enableResearchCitations"`
}

// DisplayConfig is only read by the presentation layer.
type DisplayConfig struct {
	ColorOutput bool `json:"colorOutput" yaml:"colorOutput"`
}

// fileConfig mirrors BulletConfig with pointer fields so a YAML file can
// override individual values without resetting the rest to false.
type fileConfig struct {
	Validation struct {
		StrictMode              *bool `yaml:"strictMode"`
		EnableResearchCitations *bool `yaml:"enableResearchCitations"`
	} `yaml:"validation"`
	Display struct {
		ColorOutput *bool `yaml:"colorOutput"`
	} `yaml:"display"`
}

// Default returns the built-in configuration.
func Default() BulletConfig {
	return BulletConfig{
		Validation: ValidationConfig{
			StrictMode:              false,
			EnableResearchCitations: true,
		},
		Display: DisplayConfig{
			ColorOutput: true,
		},
	}
}

// Load resolves configuration from defaults, the YAML file at path (or the
// file named by BULLETCHECK_CONFIG when path is empty), and the environment.
// A missing file is only an error when it was requested explicitly.
func Load(path string) (BulletConfig, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
	}

	if path != "" {
		err := cfg.mergeFile(path)
		// A stale BULLETCHECK_CONFIG falls through to env + defaults.
		if err != nil && (explicit || !os.IsNotExist(err)) {
			return BulletConfig{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := cfg.mergeEnv(os.LookupEnv); err != nil {
		return BulletConfig{}, err
	}

	return cfg, nil
}

// mergeFile overlays the YAML file at path onto cfg.
func (c *BulletConfig) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	if fc.Validation.StrictMode != nil {
		c.Validation.StrictMode = *fc.Validation.StrictMode
	}
	if fc.Validation.EnableResearchCitations != nil {
		c.Validation.EnableResearchCitations = *fc.Validation.EnableResearchCitations
	}
	if fc.Display.ColorOutput != nil {
		c.Display.ColorOutput = *fc.Display.ColorOutput
	}
	return nil
}

// mergeEnv overlays environment variables onto cfg. lookup is injected so
// tests don't have to mutate the process environment.
func (c *BulletConfig) mergeEnv(lookup func(string) (string, bool)) error {
	bools := []struct {
		name   string
		target *bool
	}{
		{EnvStrictMode, &c.Validation.StrictMode},
		{EnvResearchCitations, &c.Validation.EnableResearchCitations},
		{EnvColorOutput, &c.Display.ColorOutput},
	}

	for _, b := range bools {
		raw, ok := lookup(b.name)
		if !ok || raw == "" {
			continue
		}
		v, err := cast.ToBoolE(raw)
		if err != nil {
			return fmt.Errorf("%s: expected a boolean, got %q", b.name, raw)
		}
		*b.target = v
	}

	// https://no-color.org: presence disables color regardless of value.
	if _, ok := lookup(EnvNoColor); ok {
		c.Display.ColorOutput = false
	}
	return nil
}
