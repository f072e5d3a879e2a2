// Package swarm provides the per-particle core of particle swarm
// optimization (PSO).
//
// The package defines the fundamental type for continuous-space PSO:
//
//   - [Particle]: candidate solution with position, velocity and
//     personal-best tracking
//   - [Vector]: position/velocity/bound vector
//   - [Objective]: injected fitness function
//
// A swarm driver calls, once per generation and in order:
//
//	w, err := p.UpdateVelocity(globalBest, params) // velocity + next inertia weight
//	_, err = p.Advance(lower, upper, fn, swarm.Minimum)
//
// The driver owns the swarm-level state (global best position, the inertia
// weight threaded between generations); a Particle owns only its own state.
//
// # Thread Safety
//
// Particle instances are NOT thread-safe. A driver may update particles in
// parallel only if each particle is touched by exactly one worker at a time
// and the global-best position is snapshotted before dispatch.
package swarm
