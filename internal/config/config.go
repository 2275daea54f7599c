// Package config holds the settings of the lazyrange command line tool.
//
// Settings are layered: Default, then an optional YAML file read by Load, then
// whatever the caller overrides from flags or the environment. Validate reports
// every problem at once instead of stopping at the first one.
package config

import (
	"math"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/charmingruby/lazyrange/transform"
)

// OutputType selects how results are printed.
type OutputType string

const (
	OutputTypeUndefined OutputType = ""
	OutputTypeText      OutputType = "text"
	OutputTypeJSON      OutputType = "json"
	OutputTypeYAML      OutputType = "yaml"
	OutputTypeTable     OutputType = "table"
)

// OutputTypes lists the supported output types.
var OutputTypes = []OutputType{OutputTypeText, OutputTypeJSON, OutputTypeYAML, OutputTypeTable}

// Config describes one invocation.
type Config struct {
	Lower  float64    `json:"lower"`
	Upper  float64    `json:"upper"`
	Map    string     `json:"map,omitempty"`
	Take   int        `json:"take,omitempty"`
	Output OutputType `json:"output,omitempty"`
}

// Default returns the settings used when nothing else is provided.
func Default() Config {
	return Config{
		Lower:  1,
		Upper:  10,
		Output: OutputTypeText,
	}
}

// Load reads path as YAML on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}

	return cfg, nil
}

// ValidationError aggregates every problem found by Validate.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "config: invalid: " + strings.Join(e.Problems, "; ")
}

// Validate checks the settings, returning a *ValidationError listing all
// problems, or nil.
func (c Config) Validate() error {
	var problems []string
	if math.IsNaN(c.Lower) {
		problems = append(problems, "lower bound is NaN")
	}
	if math.IsNaN(c.Upper) {
		problems = append(problems, "upper bound is NaN")
	}
	if c.Take < 0 {
		problems = append(problems, "take must not be negative")
	}
	if !slices.Contains(OutputTypes, c.Output) {
		problems = append(problems, "output type "+string(c.Output)+" is not supported")
	}
	if _, err := transform.Parse(c.Map); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

// Transform returns the pipeline named by Map.
func (c Config) Transform() (transform.Func, error) {
	fn, err := transform.Parse(c.Map)
	return fn, errors.Wrap(err, "config: map")
}
