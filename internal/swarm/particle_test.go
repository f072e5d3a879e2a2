package swarm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sphere(x Vector) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func TestNew(t *testing.T) {
	p, err := New(Vector{1, 2}, Vector{0.1, 0.2}, 1)
	require.NoError(t, err)
	require.Equal(t, 2, p.Dim())
	require.Equal(t, Vector{1, 2}, p.BestPosition)
	require.Equal(t, 0, p.Iterations)
}

func TestNew_CopiesInputs(t *testing.T) {
	pos := Vector{1, 2}
	p, err := New(pos, Vector{0, 0}, 1)
	require.NoError(t, err)

	pos[0] = 99
	require.Equal(t, Vector{1, 2}, p.Position)
	require.Equal(t, Vector{1, 2}, p.BestPosition)
}

func TestNew_DimensionMismatch(t *testing.T) {
	_, err := New(Vector{1, 2}, Vector{1}, 1)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNew_Empty(t *testing.T) {
	_, err := New(Vector{}, Vector{}, 1)
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestEvaluate(t *testing.T) {
	p, err := New(Vector{3, 4}, Vector{0, 0}, 1)
	require.NoError(t, err)

	got := p.Evaluate(sphere)
	require.Same(t, p, got)
	require.InDelta(t, 25.0, p.Fitness, 1e-12)
}

func TestUpdateBest_Minimum(t *testing.T) {
	p, err := New(Vector{0}, Vector{0}, 1)
	require.NoError(t, err)

	p.Fitness = 10
	require.NoError(t, p.UpdateBest(Minimum))
	require.InDelta(t, 10.0, p.BestFitness, 1e-12)

	// Strict improvement replaces best position and fitness.
	p.Position[0] = 2
	p.Fitness = 7
	require.NoError(t, p.UpdateBest(Minimum))
	require.InDelta(t, 7.0, p.BestFitness, 1e-12)
	require.Equal(t, Vector{2}, p.BestPosition)

	// A worse fitness changes nothing.
	p.Position[0] = 5
	p.Fitness = 12
	require.NoError(t, p.UpdateBest(Minimum))
	require.InDelta(t, 7.0, p.BestFitness, 1e-12)
	require.Equal(t, Vector{2}, p.BestPosition)
}

func TestUpdateBest_Maximum(t *testing.T) {
	p, err := New(Vector{0}, Vector{0}, 1)
	require.NoError(t, err)

	p.Fitness = 1
	require.NoError(t, p.UpdateBest(Maximum))
	p.Fitness = 3
	require.NoError(t, p.UpdateBest(Maximum))
	require.InDelta(t, 3.0, p.BestFitness, 1e-12)
	p.Fitness = 2
	require.NoError(t, p.UpdateBest(Maximum))
	require.InDelta(t, 3.0, p.BestFitness, 1e-12)
}

func TestUpdateBest_FirstCallInitializes(t *testing.T) {
	p, err := New(Vector{0}, Vector{0}, 1)
	require.NoError(t, err)

	// Even a terrible first fitness becomes the best unconditionally.
	p.Fitness = 1e18
	require.NoError(t, p.UpdateBest(Minimum))
	require.InDelta(t, 1e18, p.BestFitness, 1)
}

func TestUpdateBest_NoAliasing(t *testing.T) {
	p, err := New(Vector{0, 0}, Vector{0, 0}, 1)
	require.NoError(t, err)

	p.Position[0], p.Position[1] = 1, 2
	p.Fitness = 5
	require.NoError(t, p.UpdateBest(Minimum))

	p.Position[0] = -100
	require.Equal(t, Vector{1, 2}, p.BestPosition)
}

func TestUpdateBest_UnknownDirection(t *testing.T) {
	p, err := New(Vector{0}, Vector{0}, 1)
	require.NoError(t, err)

	p.Fitness = 1
	err = p.UpdateBest(Direction("sideways"))
	require.ErrorIs(t, err, ErrConfiguration)

	// A failed call must not initialize the best.
	p.Fitness = 2
	require.NoError(t, p.UpdateBest(Minimum))
	require.InDelta(t, 2.0, p.BestFitness, 1e-12)
}

func TestUpdateVelocity_InertiaOnly(t *testing.T) {
	// With position == personal best == global best both attraction terms
	// vanish and the update reduces to v' = w*v exactly.
	p, err := New(Vector{1, 1}, Vector{2, -4}, 1)
	require.NoError(t, err)

	_, err = p.UpdateVelocity(Vector{1, 1}, VelocityParams{
		C1: 2, C2: 2, W: 0.5, Schedule: ScheduleConstant,
	})
	require.NoError(t, err)
	require.InDelta(t, 1.0, p.Velocity[0], 1e-12)
	require.InDelta(t, -2.0, p.Velocity[1], 1e-12)
}

func TestUpdateVelocity_VMaxCeiling(t *testing.T) {
	p, err := New(Vector{0, 0}, Vector{0, 0}, 1)
	require.NoError(t, err)
	p.Velocity[0], p.Velocity[1] = 100, -100

	_, err = p.UpdateVelocity(Vector{0, 0}, VelocityParams{
		C1: 0, C2: 0, W: 1, Schedule: ScheduleConstant, VMax: Vector{5, 5},
	})
	require.NoError(t, err)

	// Ceiling clamp only: the positive component is capped, the negative
	// one passes through.
	require.InDelta(t, 5.0, p.Velocity[0], 1e-12)
	require.InDelta(t, -100.0, p.Velocity[1], 1e-12)
}

func TestUpdateVelocity_ReturnsNextWeight(t *testing.T) {
	p, err := New(Vector{0}, Vector{0}, 1)
	require.NoError(t, err)

	next, err := p.UpdateVelocity(Vector{0}, VelocityParams{
		C1: 0.5, C2: 0.5, W: 0.8, Schedule: ScheduleNonlinear,
	})
	require.NoError(t, err)
	// wMin = -0.5, so the decayed weight is not clamped.
	require.InDelta(t, 0.975*0.8, next, 1e-12)
}

func TestUpdateVelocity_Errors(t *testing.T) {
	p, err := New(Vector{0, 0}, Vector{1, 1}, 1)
	require.NoError(t, err)

	_, err = p.UpdateVelocity(Vector{0}, VelocityParams{Schedule: ScheduleConstant})
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = p.UpdateVelocity(Vector{0, 0}, VelocityParams{Schedule: Schedule("bogus")})
	require.ErrorIs(t, err, ErrConfiguration)

	_, err = p.UpdateVelocity(Vector{0, 0}, VelocityParams{Schedule: ScheduleLinear})
	require.ErrorIs(t, err, ErrConfiguration)

	_, err = p.UpdateVelocity(Vector{0, 0}, VelocityParams{Schedule: ScheduleConstant, VMax: Vector{1}})
	require.ErrorIs(t, err, ErrDimensionMismatch)

	// Failed validation leaves the velocity untouched.
	require.Equal(t, Vector{1, 1}, p.Velocity)
}

func TestAdvance(t *testing.T) {
	p, err := New(Vector{1, 1}, Vector{0.5, -0.25}, 1)
	require.NoError(t, err)

	lower := Vector{-10, -10}
	upper := Vector{10, 10}

	got, err := p.Advance(lower, upper, sphere, Minimum)
	require.NoError(t, err)
	require.Same(t, p, got)

	require.Equal(t, 1, p.Iterations)
	require.Equal(t, Vector{1.5, 0.75}, p.Position)
	require.InDelta(t, sphere(p.Position), p.Fitness, 1e-12)
	require.InDelta(t, p.Fitness, p.BestFitness, 1e-12)

	_, err = p.Advance(lower, upper, sphere, Minimum)
	require.NoError(t, err)
	require.Equal(t, 2, p.Iterations)
}

func TestAdvance_KeepsPositionInBounds(t *testing.T) {
	p, err := New(Vector{9}, Vector{5}, 1)
	require.NoError(t, err)

	_, err = p.Advance(Vector{0}, Vector{10}, sphere, Minimum)
	require.NoError(t, err)
	// 9 + 5 = 14 reflects off 10 to 6.
	require.InDelta(t, 6.0, p.Position[0], 1e-12)
}

func TestAdvance_ValidationLeavesStateUntouched(t *testing.T) {
	p, err := New(Vector{1}, Vector{1}, 1)
	require.NoError(t, err)

	_, err = p.Advance(Vector{0}, Vector{10}, sphere, Direction("bogus"))
	require.ErrorIs(t, err, ErrConfiguration)

	_, err = p.Advance(Vector{5}, Vector{0}, sphere, Minimum)
	require.ErrorIs(t, err, ErrConfiguration)

	require.Equal(t, 0, p.Iterations)
	require.Equal(t, Vector{1}, p.Position)
}

func TestAdvance_Reproducible(t *testing.T) {
	run := func() Vector {
		p, err := New(Vector{3, -2}, Vector{0.1, 0.1}, 42)
		require.NoError(t, err)

		lower := Vector{-5, -5}
		upper := Vector{5, 5}
		w := 0.9
		for i := 0; i < 20; i++ {
			w, err = p.UpdateVelocity(Vector{0, 0}, VelocityParams{
				C1: 1.5, C2: 1.5, W: w, Schedule: ScheduleNonlinear,
			})
			require.NoError(t, err)
			_, err = p.Advance(lower, upper, sphere, Minimum)
			require.NoError(t, err)
		}
		return p.BestPosition
	}

	require.Equal(t, run(), run())
}
