// Package runner drives a swarm of particles over an objective: it owns the
// global best, threads the inertia weight between generations, and records
// the convergence trace.
package runner

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/san-kum/swarmopt/internal/metrics"
	"github.com/san-kum/swarmopt/internal/objective"
	"github.com/san-kum/swarmopt/internal/swarm"
)

const defaultInitW = 0.9

// Config are the swarm-level hyperparameters for one run.
type Config struct {
	Particles   int
	Generations int

	C1 float64 // cognitive acceleration constant
	C2 float64 // social acceleration constant

	// InitW seeds the inertia weight thread; zero means 0.9.
	InitW float64

	Schedule  swarm.Schedule
	Direction swarm.Direction

	// VMax, when non-nil, is the per-dimension velocity ceiling.
	VMax swarm.Vector

	Seed int64
}

func (c Config) validate() error {
	if c.Particles <= 0 {
		return fmt.Errorf("particles must be positive, got %d", c.Particles)
	}
	if c.Generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", c.Generations)
	}
	if c.C1 <= 0 || c.C2 <= 0 {
		return fmt.Errorf("acceleration constants must be positive, got c1=%g c2=%g", c.C1, c.C2)
	}
	switch c.Direction {
	case swarm.Minimum, swarm.Maximum:
	default:
		return fmt.Errorf("unknown direction %q", c.Direction)
	}
	switch c.Schedule {
	case swarm.ScheduleConstant, swarm.ScheduleRandom, swarm.ScheduleLinear, swarm.ScheduleNonlinear:
	default:
		return fmt.Errorf("unknown inertia schedule %q", c.Schedule)
	}
	return nil
}

// Observer receives the swarm best once per generation.
type Observer interface {
	OnGeneration(gen int, best float64)
}

// Result is the outcome of one run.
type Result struct {
	BestPosition swarm.Vector
	BestFitness  float64

	// Trace is the swarm best fitness after each generation.
	Trace []float64

	Generations int
	Metrics     map[string]float64
}

type Runner struct {
	cfg       Config
	metrics   []metrics.Metric
	observers []Observer
	logger    zerolog.Logger
}

func New(cfg Config) *Runner {
	return &Runner{
		cfg:    cfg,
		logger: log.With().Str("component", "runner").Logger(),
	}
}

func (r *Runner) AddMetric(m metrics.Metric) { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer)     { r.observers = append(r.observers, o) }

// Run optimizes the benchmark. Particles update strictly sequentially; the
// global best is snapshotted before each generation so every particle in a
// generation sees the same neighborhood information, and it is refreshed
// only after all particles have advanced.
func (r *Runner) Run(ctx context.Context, bench objective.Benchmark) (*Result, error) {
	if err := r.cfg.validate(); err != nil {
		return nil, err
	}
	if bench.Fn == nil {
		return nil, fmt.Errorf("benchmark %q has no objective function", bench.Name)
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	rng := rand.New(rand.NewSource(r.cfg.Seed))

	particles, err := r.initParticles(rng, bench)
	if err != nil {
		return nil, err
	}

	// Initial evaluation at the starting positions seeds the personal and
	// global bests before the first velocity update.
	for _, p := range particles {
		p.Evaluate(bench.Fn)
		if err := p.UpdateBest(r.cfg.Direction); err != nil {
			return nil, err
		}
	}
	bestPos, bestFit := r.swarmBest(particles)

	initW := r.cfg.InitW
	if initW == 0 {
		initW = defaultInitW
	}
	// Each particle threads its own inertia weight between generations.
	weights := make([]float64, len(particles))
	for i := range weights {
		weights[i] = initW
	}

	r.logger.Info().
		Str("benchmark", bench.Name).
		Int("dim", bench.Dim).
		Int("particles", r.cfg.Particles).
		Int("generations", r.cfg.Generations).
		Str("schedule", string(r.cfg.Schedule)).
		Msg("starting run")

	result := &Result{
		Trace:   make([]float64, 0, r.cfg.Generations),
		Metrics: make(map[string]float64),
	}

	for gen := 0; gen < r.cfg.Generations; gen++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		snapshot := bestPos.Clone()

		for i, p := range particles {
			weights[i], err = p.UpdateVelocity(snapshot, swarm.VelocityParams{
				C1:       r.cfg.C1,
				C2:       r.cfg.C2,
				W:        weights[i],
				Schedule: r.cfg.Schedule,
				MaxIter:  r.cfg.Generations,
				VMax:     r.cfg.VMax,
			})
			if err != nil {
				return nil, fmt.Errorf("generation %d: %w", gen, err)
			}
			if _, err := p.Advance(bench.Lower, bench.Upper, bench.Fn, r.cfg.Direction); err != nil {
				return nil, fmt.Errorf("generation %d: %w", gen, err)
			}
		}

		bestPos, bestFit = r.swarmBest(particles)
		result.Trace = append(result.Trace, bestFit)
		result.Generations = gen + 1

		snap := metrics.Snapshot{Generation: gen, Particles: particles, BestFitness: bestFit}
		for _, m := range r.metrics {
			m.Observe(snap)
		}
		for _, o := range r.observers {
			o.OnGeneration(gen, bestFit)
		}

		r.logger.Debug().Int("generation", gen).Float64("best", bestFit).Msg("generation complete")
	}

	result.BestPosition = bestPos.Clone()
	result.BestFitness = bestFit
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	r.logger.Info().Float64("best", bestFit).Msg("run complete")
	return result, nil
}

// initParticles samples starting positions uniformly within the benchmark
// bounds and small uniform velocities scaled to the range of each
// dimension.
func (r *Runner) initParticles(rng *rand.Rand, bench objective.Benchmark) ([]*swarm.Particle, error) {
	particles := make([]*swarm.Particle, r.cfg.Particles)
	for i := range particles {
		pos := make(swarm.Vector, bench.Dim)
		vel := make(swarm.Vector, bench.Dim)
		for d := 0; d < bench.Dim; d++ {
			span := bench.Upper[d] - bench.Lower[d]
			pos[d] = bench.Lower[d] + rng.Float64()*span
			vel[d] = (rng.Float64()*2 - 1) * 0.1 * span
		}
		p, err := swarm.New(pos, vel, r.cfg.Seed+int64(i)+1)
		if err != nil {
			return nil, err
		}
		particles[i] = p
	}
	return particles, nil
}

func (r *Runner) swarmBest(particles []*swarm.Particle) (swarm.Vector, float64) {
	pos := particles[0].BestPosition
	fit := particles[0].BestFitness
	for _, p := range particles[1:] {
		if r.better(p.BestFitness, fit) {
			fit = p.BestFitness
			pos = p.BestPosition
		}
	}
	return pos, fit
}

func (r *Runner) better(a, b float64) bool {
	if r.cfg.Direction == swarm.Maximum {
		return a > b
	}
	return a < b
}
