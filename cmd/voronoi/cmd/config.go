package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the build-settings a user can park in a YAML file
// instead of repeating them on every invocation. Flags explicitly
// passed on the command line override the matching config field.
type Config struct {
	Epsilon             float64 `yaml:"epsilon"`
	MarginRatio         float64 `yaml:"margin_ratio"`
	LargestEmptyCircles bool    `yaml:"largest_empty_circles"`
	Format              string  `yaml:"format"`
}

func defaultConfig() Config {
	return Config{
		Epsilon:     1e-10,
		MarginRatio: 0.2,
		Format:      "text",
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
