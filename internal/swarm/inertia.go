package swarm

import "fmt"

const (
	// linearStart is the weight the linearly-decreasing schedule starts
	// from at iteration zero.
	linearStart = 0.9

	// nonlinearDecay is the per-generation factor of the
	// nonlinearly-decreasing schedule.
	nonlinearDecay = 0.975

	// The random schedule samples Normal(randomMean, randomSigma); sigma
	// is small enough that the weight is not predominantly above one.
	randomMean  = 0.72
	randomSigma = 0.4
)

// MinInertia is the convergence floor for the inertia weight. Weights below
// (c1+c2)/2 - 1 produce divergent or cyclic particle trajectories.
func MinInertia(c1, c2 float64) float64 {
	return (c1+c2)/2 - 1
}

// InertiaParams are the inputs to one inertia-weight computation.
type InertiaParams struct {
	C1 float64 // cognitive acceleration constant
	C2 float64 // social acceleration constant

	// R1, R2 are uniform [0,1) draws, supplied fresh each call and used
	// by the constant schedule.
	R1 float64
	R2 float64

	Schedule Schedule

	// MaxIter is required by ScheduleLinear.
	MaxIter int

	// PrevW is the previous generation's weight, required by
	// ScheduleNonlinear.
	PrevW *float64
}

// Inertia computes the inertia weight for the particle's current iteration
// under the configured schedule, then clamps it to the MinInertia floor.
// The particle itself is read-only here; only its iteration count feeds the
// linearly-decreasing schedule.
func (p *Particle) Inertia(ip InertiaParams) (float64, error) {
	wMin := MinInertia(ip.C1, ip.C2)

	var w float64
	switch ip.Schedule {
	case ScheduleConstant:
		w = ip.C1*ip.R1 + ip.C2*ip.R2
	case ScheduleRandom:
		w = p.rng.NormFloat64()*randomSigma + randomMean
	case ScheduleLinear:
		if ip.MaxIter <= 0 {
			return 0, fmt.Errorf("%w: %s schedule requires MaxIter", ErrConfiguration, ScheduleLinear)
		}
		w = (linearStart-wMin)*float64(ip.MaxIter-p.Iterations)/float64(ip.MaxIter) + wMin
	case ScheduleNonlinear:
		if ip.PrevW == nil {
			return 0, fmt.Errorf("%w: %s schedule requires PrevW", ErrConfiguration, ScheduleNonlinear)
		}
		w = nonlinearDecay * *ip.PrevW
	default:
		return 0, fmt.Errorf("%w: unknown inertia schedule %q", ErrConfiguration, ip.Schedule)
	}

	if w < wMin {
		w = wMin
	}
	return w, nil
}
