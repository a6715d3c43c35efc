/*
PURPOSE:
  Defines the configuration structure and loading logic for the fitness tracker.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the sensor packages to process, the output
    directory and the report language.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Needs to support Environment variables overrides (FITNESS_...).
  - Packages can also come from a standalone YAML list or CLI args.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - A missing default config file is not an error (falls back to defaults).

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults reproduce the reference packages.

USAGE:
  cfg, err := config.Load("tracker.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/daryltucker/fitness-tracker/internal/model"
	"github.com/daryltucker/fitness-tracker/internal/output"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for the fitness tracker.
type Config struct {
	Packages []model.Package `yaml:"packages"`
	// OutputDir enables CSV/JSON result files when set.
	OutputDir  string `yaml:"output_dir"`
	OutputFile string `yaml:"output_file"` // CSV file name inside OutputDir
	JSONFile   string `yaml:"json_file"`
	Locale     string `yaml:"locale"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultPackages returns the reference sensor packages.
func DefaultPackages() []model.Package {
	return []model.Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Packages:   DefaultPackages(),
		OutputDir:  "",
		OutputFile: "workout_results.csv",
		JSONFile:   "workout_results.json",
		Locale:     output.DefaultLocale,
		LogLevel:   "info",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
// Environment overrides are applied last, then the result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		for _, name := range []string{"tracker.yaml", "fitness_tracker.yaml"} {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				break
			}
		}
	}

	if path != "" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FITNESS_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("FITNESS_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("FITNESS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks the fields that cannot be checked per package.
// Package contents are validated when they are processed.
func (c *Config) Validate() error {
	if _, err := output.LabelsFor(c.Locale); err != nil {
		return err
	}
	if _, err := output.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.OutputDir != "" && (c.OutputFile == "" || c.JSONFile == "") {
		return fmt.Errorf("output_file and json_file are required when output_dir is set")
	}
	return nil
}

// LoadPackages reads a YAML list of packages:
//
//	- code: RUN
//	  data: [15000, 1, 75]
func LoadPackages(path string) ([]model.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read packages file: %w", err)
	}
	var packages []model.Package
	if err := yaml.Unmarshal(data, &packages); err != nil {
		return nil, fmt.Errorf("failed to parse packages file %s: %w", path, err)
	}
	return packages, nil
}

// ParsePackage parses the CODE:n,n,n form, e.g. "RUN:15000,1,75".
// Only the syntax is checked here.
func ParsePackage(s string) (model.Package, error) {
	code, values, ok := strings.Cut(s, ":")
	code = strings.TrimSpace(code)
	if !ok || code == "" {
		return model.Package{}, fmt.Errorf("invalid package %q: expected CODE:n,n,...", s)
	}

	p := model.Package{Code: code}
	if strings.TrimSpace(values) == "" {
		return p, nil
	}
	for _, field := range strings.Split(values, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return model.Package{}, fmt.Errorf("invalid package %q: %w", s, err)
		}
		p.Data = append(p.Data, v)
	}
	return p, nil
}
