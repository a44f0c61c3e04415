// Package config holds the planner's tunables.
package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits are the three configured tunables from the design: a result-size
// cap enforced by callers, and two query-string length caps the index
// emitter enforces on itself.
type Limits struct {
	MaxResultSize           int `yaml:"max_result_size"`
	MaxQueryStrLengthTypes  int `yaml:"max_query_str_length_types"`
	MaxQueryStrLengthTags   int `yaml:"max_query_str_length_tags"`
}

// DefaultLimits returns the documented defaults.
func DefaultLimits() Limits {
	return Limits{
		MaxResultSize:          150,
		MaxQueryStrLengthTypes: 512,
		MaxQueryStrLengthTags:  512,
	}
}

// Load decodes YAML from r over the defaults, so a partial document only
// overrides the fields it sets.
func Load(r io.Reader) (Limits, error) {
	limits := DefaultLimits()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&limits); err != nil && err != io.EOF {
		return Limits{}, err
	}
	return limits, nil
}

// LoadFile reads and decodes a YAML limits document from path.
func LoadFile(path string) (Limits, error) {
	f, err := os.Open(path)
	if err != nil {
		return Limits{}, err
	}
	defer f.Close()
	return Load(f)
}
