package config

var Presets = map[string]map[string]*Config{
	"sphere": {
		"quick": {
			Benchmark: "sphere", Dim: 2, Particles: 20, Generations: 50,
			C1: DefaultC1, C2: DefaultC2, InitW: 0.9,
			Schedule: "linearly-decreasing", Direction: "minimum",
		},
		"thorough": {
			Benchmark: "sphere", Dim: 10, Particles: 50, Generations: 500,
			C1: DefaultC1, C2: DefaultC2, InitW: 0.9,
			Schedule: "linearly-decreasing", Direction: "minimum",
		},
	},
	"rastrigin": {
		"standard": {
			Benchmark: "rastrigin", Dim: 10, Particles: 50, Generations: 1000,
			C1: DefaultC1, C2: DefaultC2, InitW: 0.9,
			Schedule: "linearly-decreasing", Direction: "minimum",
		},
		"exploratory": {
			Benchmark: "rastrigin", Dim: 10, Particles: 100, Generations: 1000,
			C1: 2.0, C2: 2.0, InitW: 0.9,
			Schedule: "random", Direction: "minimum",
		},
	},
	"rosenbrock": {
		"standard": {
			Benchmark: "rosenbrock", Dim: 5, Particles: 50, Generations: 1000,
			C1: DefaultC1, C2: DefaultC2, InitW: 0.9,
			Schedule: "nonlinearly-decreasing", Direction: "minimum",
		},
	},
	"eggholder": {
		"standard": {
			Benchmark: "eggholder", Dim: 2, Particles: 100, Generations: 2000,
			C1: 2.0, C2: 2.0, InitW: 0.9, VMax: 64,
			Schedule: "linearly-decreasing", Direction: "minimum",
		},
	},
}

func GetPreset(benchmark, preset string) *Config {
	benchPresets, ok := Presets[benchmark]
	if !ok {
		return nil
	}
	cfg, ok := benchPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(benchmark string) []string {
	benchPresets, ok := Presets[benchmark]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(benchPresets))
	for name := range benchPresets {
		names = append(names, name)
	}
	return names
}
