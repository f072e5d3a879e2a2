package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultParticles   = 30
	DefaultGenerations = 100
	DefaultC1          = 1.49445
	DefaultC2          = 1.49445
	DefaultInitW       = 0.9
	DefaultDim         = 2
)

type Config struct {
	Benchmark   string  `yaml:"benchmark"`
	Dim         int     `yaml:"dim"`
	Particles   int     `yaml:"particles"`
	Generations int     `yaml:"generations"`
	C1          float64 `yaml:"c1"`
	C2          float64 `yaml:"c2"`
	InitW       float64 `yaml:"init_w"`
	Schedule    string  `yaml:"schedule"`
	Direction   string  `yaml:"direction"`
	VMax        float64 `yaml:"v_max"`
	Seed        int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Benchmark:   "sphere",
		Dim:         DefaultDim,
		Particles:   DefaultParticles,
		Generations: DefaultGenerations,
		C1:          DefaultC1,
		C2:          DefaultC2,
		InitW:       DefaultInitW,
		Schedule:    "linearly-decreasing",
		Direction:   "minimum",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// VMaxVector expands the scalar velocity ceiling to one value per
// dimension. A non-positive ceiling disables clamping.
func (c *Config) VMaxVector(dim int) []float64 {
	if c.VMax <= 0 {
		return nil
	}
	v := make([]float64, dim)
	for i := range v {
		v[i] = c.VMax
	}
	return v
}
