package swarm

// Vector is an ordered sequence of real coordinates. It is used for
// positions, velocities and per-dimension bounds.
type Vector []float64

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// Objective evaluates a candidate position and returns its fitness. It is
// supplied by the caller, must not mutate its argument, and may be
// deterministic or stochastic at the caller's discretion.
type Objective func(x Vector) float64

// Schedule selects how the inertia weight is computed each generation.
type Schedule string

const (
	ScheduleConstant  Schedule = "constant"
	ScheduleRandom    Schedule = "random"
	ScheduleLinear    Schedule = "linearly-decreasing"
	ScheduleNonlinear Schedule = "nonlinearly-decreasing"
)

// Direction selects whether fitness is minimized or maximized.
type Direction string

const (
	Minimum Direction = "minimum"
	Maximum Direction = "maximum"
)

// BoundScheme selects how out-of-bounds position components are corrected.
type BoundScheme string

const (
	BoundRandom     BoundScheme = "random"
	BoundAbsorbing  BoundScheme = "absorbing"
	BoundReflecting BoundScheme = "reflecting"
)
