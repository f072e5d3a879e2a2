// Package objective provides benchmark optimization functions from
// http://en.wikipedia.org/wiki/Test_functions_for_optimization for
// exercising swarm drivers.
package objective

import (
	"math"

	"github.com/san-kum/swarmopt/internal/swarm"
)

// Benchmark is a named objective with its search-space bounds and known
// global optimum.
type Benchmark struct {
	Name    string
	Dim     int
	Lower   swarm.Vector
	Upper   swarm.Vector
	Fn      swarm.Objective
	Optimum float64 // fitness at the global minimum
}

// Sphere is the canonical convex bowl, sum of squares.
func Sphere(dim int) Benchmark {
	return Benchmark{
		Name:  "sphere",
		Dim:   dim,
		Lower: uniform(dim, -5.12),
		Upper: uniform(dim, 5.12),
		Fn: func(x swarm.Vector) float64 {
			sum := 0.0
			for _, v := range x {
				sum += v * v
			}
			return sum
		},
		Optimum: 0,
	}
}

// Rastrigin is highly multimodal with a regular lattice of local minima.
func Rastrigin(dim int) Benchmark {
	return Benchmark{
		Name:  "rastrigin",
		Dim:   dim,
		Lower: uniform(dim, -5.12),
		Upper: uniform(dim, 5.12),
		Fn: func(x swarm.Vector) float64 {
			sum := 10.0 * float64(len(x))
			for _, v := range x {
				sum += v*v - 10*math.Cos(2*math.Pi*v)
			}
			return sum
		},
		Optimum: 0,
	}
}

// Rosenbrock's valley: the minimum sits in a narrow parabolic trough.
func Rosenbrock(dim int) Benchmark {
	return Benchmark{
		Name:  "rosenbrock",
		Dim:   dim,
		Lower: uniform(dim, -2.048),
		Upper: uniform(dim, 2.048),
		Fn: func(x swarm.Vector) float64 {
			sum := 0.0
			for i := 0; i < len(x)-1; i++ {
				a := x[i+1] - x[i]*x[i]
				b := 1 - x[i]
				sum += 100*a*a + b*b
			}
			return sum
		},
		Optimum: 0,
	}
}

// Ackley has a nearly flat outer region and a deep central funnel.
func Ackley(dim int) Benchmark {
	return Benchmark{
		Name:  "ackley",
		Dim:   dim,
		Lower: uniform(dim, -5),
		Upper: uniform(dim, 5),
		Fn: func(x swarm.Vector) float64 {
			n := float64(len(x))
			var sq, cs float64
			for _, v := range x {
				sq += v * v
				cs += math.Cos(2 * math.Pi * v)
			}
			return -20*math.Exp(-0.2*math.Sqrt(sq/n)) - math.Exp(cs/n) + 20 + math.E
		},
		Optimum: 0,
	}
}

// Griewank couples dimensions through a product of cosines.
func Griewank(dim int) Benchmark {
	return Benchmark{
		Name:  "griewank",
		Dim:   dim,
		Lower: uniform(dim, -600),
		Upper: uniform(dim, 600),
		Fn: func(x swarm.Vector) float64 {
			sum := 0.0
			prod := 1.0
			for i, v := range x {
				sum += v * v / 4000
				prod *= math.Cos(v / math.Sqrt(float64(i+1)))
			}
			return sum - prod + 1
		},
		Optimum: 0,
	}
}

// Eggholder is a hard 2-D landscape; its minimum -959.6407 sits on the
// boundary at (512, 404.2319).
func Eggholder() Benchmark {
	return Benchmark{
		Name:  "eggholder",
		Dim:   2,
		Lower: swarm.Vector{-512, -512},
		Upper: swarm.Vector{512, 512},
		Fn: func(x swarm.Vector) float64 {
			a := x[0]
			b := x[1]
			return -(b+47)*math.Sin(math.Sqrt(math.Abs(b+a/2+47))) -
				a*math.Sin(math.Sqrt(math.Abs(a-(b+47))))
		},
		Optimum: -959.6407,
	}
}

func uniform(dim int, v float64) swarm.Vector {
	u := make(swarm.Vector, dim)
	for i := range u {
		u[i] = v
	}
	return u
}
