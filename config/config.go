// Package config loads the CLI's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Oracle struct {
	Provider       string  `yaml:"provider"`
	Model          string  `yaml:"model"`
	APIKeyEnv      string  `yaml:"api_key_env"`
	CallsPerSecond float64 `yaml:"calls_per_second"`
	Burst          int     `yaml:"burst"`
	Retries        int     `yaml:"retries"`
}

type Search struct {
	Iterations          int     `yaml:"iterations"`
	Exploration         float64 `yaml:"exploration"`
	MaxChildren         int     `yaml:"max_children"`
	RatingScale         float64 `yaml:"rating_scale"`
	ReexpandProbability float64 `yaml:"reexpand_probability"`
	ParallelEvaluations int     `yaml:"parallel_evaluations"`
}

type Config struct {
	Oracle Oracle `yaml:"oracle"`
	Search Search `yaml:"search"`
}

func Default() Config {
	return Config{
		Oracle: Oracle{
			Provider:  "openai",
			APIKeyEnv: "OPENAI_API_KEY",
			Retries:   3,
		},
		Search: Search{
			Iterations:          8,
			Exploration:         1.414,
			MaxChildren:         3,
			RatingScale:         100,
			ParallelEvaluations: 1,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Search.Iterations < 1 {
		return fmt.Errorf("config: search.iterations must be >= 1, got %d", c.Search.Iterations)
	}
	if c.Search.RatingScale <= 0 {
		return fmt.Errorf("config: search.rating_scale must be > 0, got %v", c.Search.RatingScale)
	}
	if p := c.Search.ReexpandProbability; p < 0 || p > 1 {
		return fmt.Errorf("config: search.reexpand_probability must be in [0,1], got %v", p)
	}
	if c.Oracle.Provider != "openai" {
		return fmt.Errorf("config: unknown oracle.provider %q", c.Oracle.Provider)
	}
	return nil
}
