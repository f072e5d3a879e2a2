package swarm

import (
	"fmt"
	"math/rand"
)

// Particle is one candidate solution and its update state. It is mutated in
// place every generation by its owning driver.
type Particle struct {
	Position     Vector
	Velocity     Vector
	BestPosition Vector
	Fitness      float64
	BestFitness  float64

	// Iterations is the number of completed position updates.
	Iterations int

	bestSet bool
	rng     *rand.Rand
}

// New creates a particle at the given starting position and velocity. The
// inputs are copied. The seed drives all randomness local to this particle
// (velocity draws, random inertia, random boundary correction), so runs are
// reproducible per particle.
func New(position, velocity Vector, seed int64) (*Particle, error) {
	if len(position) != len(velocity) {
		return nil, fmt.Errorf("%w: position has %d dimensions, velocity has %d",
			ErrDimensionMismatch, len(position), len(velocity))
	}
	if len(position) == 0 {
		return nil, fmt.Errorf("%w: particle must have at least one dimension", ErrConfiguration)
	}
	return &Particle{
		Position:     position.Clone(),
		Velocity:     velocity.Clone(),
		BestPosition: position.Clone(),
		rng:          rand.New(rand.NewSource(seed)),
	}, nil
}

// Dim returns the particle's dimensionality, fixed at construction.
func (p *Particle) Dim() int {
	return len(p.Position)
}

// Evaluate computes the fitness of the current position with the injected
// objective, stores it, and returns the particle for chaining.
func (p *Particle) Evaluate(fn Objective) *Particle {
	p.Fitness = fn(p.Position)
	return p
}

// UpdateBest replaces the personal best with the current position and
// fitness if the current fitness strictly improves on it under dir. The
// very first call initializes BestFitness unconditionally. BestPosition is
// copied, never aliased, so later position updates cannot rewrite history.
func (p *Particle) UpdateBest(dir Direction) error {
	if dir != Minimum && dir != Maximum {
		return fmt.Errorf("%w: unknown direction %q", ErrConfiguration, dir)
	}
	if !p.bestSet {
		p.BestFitness = p.Fitness
		p.bestSet = true
	}
	improved := false
	switch dir {
	case Minimum:
		improved = p.Fitness < p.BestFitness
	case Maximum:
		improved = p.Fitness > p.BestFitness
	}
	if improved {
		p.BestFitness = p.Fitness
		p.BestPosition = p.Position.Clone()
	}
	return nil
}

// VelocityParams are the hyperparameters for one velocity update.
type VelocityParams struct {
	C1 float64 // cognitive acceleration constant
	C2 float64 // social acceleration constant
	W  float64 // inertia weight for this generation

	// Schedule selects how the weight for the next generation is computed.
	Schedule Schedule

	// MaxIter is forwarded to the inertia recompute; required when
	// Schedule is ScheduleLinear.
	MaxIter int

	// VMax, when non-nil, is a per-dimension velocity ceiling. Components
	// above VMax[i] are clamped down to it; there is no lower clamp.
	VMax Vector
}

func (vp VelocityParams) validate(dim int) error {
	switch vp.Schedule {
	case ScheduleConstant, ScheduleRandom, ScheduleNonlinear:
	case ScheduleLinear:
		if vp.MaxIter <= 0 {
			return fmt.Errorf("%w: %s schedule requires MaxIter", ErrConfiguration, ScheduleLinear)
		}
	default:
		return fmt.Errorf("%w: unknown inertia schedule %q", ErrConfiguration, vp.Schedule)
	}
	if vp.VMax != nil && len(vp.VMax) != dim {
		return fmt.Errorf("%w: VMax has %d dimensions, particle has %d",
			ErrDimensionMismatch, len(vp.VMax), dim)
	}
	return nil
}

// UpdateVelocity computes the new velocity from the particle's personal
// best and the swarm's global best:
//
//	v[i] = w*v[i] + c1*r1[i]*(best[i]-pos[i]) + c2*r2[i]*(global[i]-pos[i])
//
// with r1, r2 drawn uniformly from [0,1) independently per dimension.
// Unclamped velocities explode for particles far from both bests, so when
// VMax is set each component is ceiling-clamped to VMax[i].
//
// It then recomputes the inertia weight for the next generation under the
// configured schedule (the just-used W serves as the previous weight) and
// returns it. The returned weight is not stored on the particle; the
// driver threads it into the next generation.
func (p *Particle) UpdateVelocity(globalBest Vector, vp VelocityParams) (float64, error) {
	if len(globalBest) != len(p.Position) {
		return 0, fmt.Errorf("%w: global best has %d dimensions, particle has %d",
			ErrDimensionMismatch, len(globalBest), len(p.Position))
	}
	if err := vp.validate(len(p.Position)); err != nil {
		return 0, err
	}

	for i := range p.Velocity {
		r1 := p.rng.Float64()
		r2 := p.rng.Float64()
		v := vp.W*p.Velocity[i] +
			vp.C1*r1*(p.BestPosition[i]-p.Position[i]) +
			vp.C2*r2*(globalBest[i]-p.Position[i])
		if vp.VMax != nil && v > vp.VMax[i] {
			v = vp.VMax[i]
		}
		p.Velocity[i] = v
	}

	return p.Inertia(InertiaParams{
		C1:       vp.C1,
		C2:       vp.C2,
		R1:       p.rng.Float64(),
		R2:       p.rng.Float64(),
		Schedule: vp.Schedule,
		MaxIter:  vp.MaxIter,
		PrevW:    &vp.W,
	})
}

// Advance runs one generation step: increment the iteration count,
// integrate position by the current velocity, correct the position with the
// reflecting boundary scheme, evaluate fitness at the corrected position,
// and update the personal best. The step has no partial-failure recovery;
// any error aborts it, and inputs are validated up front so a failed step
// leaves the particle untouched.
func (p *Particle) Advance(lower, upper Vector, fn Objective, dir Direction) (*Particle, error) {
	if dir != Minimum && dir != Maximum {
		return nil, fmt.Errorf("%w: unknown direction %q", ErrConfiguration, dir)
	}
	if err := p.checkBounds(lower, upper); err != nil {
		return nil, err
	}

	p.Iterations++

	for i := range p.Position {
		p.Position[i] += p.Velocity[i]
	}
	if err := p.EnforceBounds(lower, upper, BoundReflecting); err != nil {
		return nil, err
	}

	p.Evaluate(fn)
	if err := p.UpdateBest(dir); err != nil {
		return nil, err
	}
	return p, nil
}
