package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls a benchmark run.
type Config struct {
	// Sizes are the array lengths to measure, in order.
	Sizes []int `yaml:"sizes"`
	// Builds is the number of timed constructions per structure and size.
	Builds int `yaml:"builds"`
	// Queries is the number of timed queries per structure and size.
	Queries int `yaml:"queries"`
	// MaxValue bounds the random values: each lies in [0, MaxValue).
	MaxValue int `yaml:"max_value"`
}

// DefaultConfig returns the sizes 10 .. 10^6 with 100 builds and 10000 queries each.
func DefaultConfig() Config {
	return Config{
		Sizes:    []int{10, 100, 1000, 10000, 100000, 1000000},
		Builds:   100,
		Queries:  10000,
		MaxValue: 10000,
	}
}

// LoadConfig reads a YAML config from path. Fields missing from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("bench: decoding %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("bench: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("no sizes given")
	}
	for _, size := range c.Sizes {
		if size < 1 {
			return fmt.Errorf("size %d must be positive", size)
		}
	}
	if c.Builds < 1 {
		return fmt.Errorf("builds = %d must be positive", c.Builds)
	}
	if c.Queries < 1 {
		return fmt.Errorf("queries = %d must be positive", c.Queries)
	}
	if c.MaxValue < 1 {
		return fmt.Errorf("max_value = %d must be positive", c.MaxValue)
	}
	return nil
}
