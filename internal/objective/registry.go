package objective

import (
	"fmt"
	"sort"
)

// Registry maps benchmark names to constructors. Fixed-dimension
// benchmarks ignore the requested dimension.
type Registry struct {
	benchmarks map[string]func(dim int) Benchmark
}

func NewRegistry() *Registry {
	r := &Registry{benchmarks: make(map[string]func(dim int) Benchmark)}

	r.benchmarks["sphere"] = Sphere
	r.benchmarks["rastrigin"] = Rastrigin
	r.benchmarks["rosenbrock"] = Rosenbrock
	r.benchmarks["ackley"] = Ackley
	r.benchmarks["griewank"] = Griewank
	r.benchmarks["eggholder"] = func(int) Benchmark { return Eggholder() }

	return r
}

func (r *Registry) Get(name string, dim int) (Benchmark, error) {
	fn, ok := r.benchmarks[name]
	if !ok {
		return Benchmark{}, fmt.Errorf("unknown benchmark: %s", name)
	}
	if dim < 1 {
		return Benchmark{}, fmt.Errorf("benchmark dimension must be positive, got %d", dim)
	}
	return fn(dim), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.benchmarks))
	for name := range r.benchmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
