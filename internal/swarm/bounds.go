package swarm

import "fmt"

// maxBoundPasses caps the per-dimension correction loop. A single
// reflection or redraw can land outside the opposite bound when the
// overshoot exceeds the range, so correction iterates to a fixed point;
// the cap turns a degenerate range that cannot converge into an error.
const maxBoundPasses = 100

func (p *Particle) checkBounds(lower, upper Vector) error {
	if len(lower) != len(p.Position) || len(upper) != len(p.Position) {
		return fmt.Errorf("%w: bounds have %d/%d dimensions, particle has %d",
			ErrDimensionMismatch, len(lower), len(upper), len(p.Position))
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return fmt.Errorf("%w: lower bound %g above upper bound %g in dimension %d",
				ErrConfiguration, lower[i], upper[i], i)
		}
	}
	return nil
}

// EnforceBounds corrects every out-of-bounds position component, in place
// and independently per dimension:
//
//   - BoundRandom: redraw uniformly from [lower, upper]
//   - BoundAbsorbing: clamp to the violated bound
//   - BoundReflecting: mirror the excess back across the boundary
//
// Each dimension is re-checked after correction and corrected again until
// it lies within [lower[i], upper[i]].
func (p *Particle) EnforceBounds(lower, upper Vector, scheme BoundScheme) error {
	if err := p.checkBounds(lower, upper); err != nil {
		return err
	}
	switch scheme {
	case BoundRandom, BoundAbsorbing, BoundReflecting:
	default:
		return fmt.Errorf("%w: unknown boundary scheme %q", ErrConfiguration, scheme)
	}

	for i := range p.Position {
		dim := p.Position[i]
		passes := 0
		for dim < lower[i] || dim > upper[i] {
			if passes >= maxBoundPasses {
				return fmt.Errorf("%w: boundary correction did not converge in dimension %d (range [%g, %g])",
					ErrConfiguration, i, lower[i], upper[i])
			}
			passes++

			switch scheme {
			case BoundRandom:
				dim = lower[i] + p.rng.Float64()*(upper[i]-lower[i])
			case BoundAbsorbing:
				if dim < lower[i] {
					dim = lower[i]
				} else {
					dim = upper[i]
				}
			case BoundReflecting:
				if dim < lower[i] {
					dim = 2*lower[i] - dim
				} else {
					dim = 2*upper[i] - dim
				}
			}
		}
		p.Position[i] = dim
	}
	return nil
}
