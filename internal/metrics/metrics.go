// Package metrics provides per-generation observers for swarm runs.
package metrics

import (
	"math"

	"github.com/san-kum/swarmopt/internal/swarm"
)

// Snapshot is the swarm state handed to metrics once per generation.
type Snapshot struct {
	Generation  int
	Particles   []*swarm.Particle
	BestFitness float64
}

type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}

// Diversity measures the mean distance of particles from the swarm
// centroid. It collapses toward zero as the swarm converges.
type Diversity struct {
	name string
	last float64
}

func NewDiversity() *Diversity {
	return &Diversity{name: "diversity"}
}

func (d *Diversity) Name() string {
	return d.name
}

func (d *Diversity) Observe(s Snapshot) {
	if len(s.Particles) == 0 {
		return
	}
	dim := s.Particles[0].Dim()
	centroid := make(swarm.Vector, dim)
	for _, p := range s.Particles {
		for i, v := range p.Position {
			centroid[i] += v
		}
	}
	for i := range centroid {
		centroid[i] /= float64(len(s.Particles))
	}

	total := 0.0
	for _, p := range s.Particles {
		sq := 0.0
		for i, v := range p.Position {
			diff := v - centroid[i]
			sq += diff * diff
		}
		total += math.Sqrt(sq)
	}
	d.last = total / float64(len(s.Particles))
}

func (d *Diversity) Value() float64 {
	return d.last
}

func (d *Diversity) Reset() {
	d.last = 0
}

// Stagnation counts consecutive generations without improvement of the
// swarm best fitness.
type Stagnation struct {
	name    string
	started bool
	best    float64
	streak  int
}

func NewStagnation() *Stagnation {
	return &Stagnation{name: "stagnation"}
}

func (s *Stagnation) Name() string {
	return s.name
}

func (s *Stagnation) Observe(snap Snapshot) {
	if !s.started || snap.BestFitness != s.best {
		s.best = snap.BestFitness
		s.started = true
		s.streak = 0
		return
	}
	s.streak++
}

func (s *Stagnation) Value() float64 {
	return float64(s.streak)
}

func (s *Stagnation) Reset() {
	s.started = false
	s.best = 0
	s.streak = 0
}

// Evaluations counts objective evaluations across the run.
type Evaluations struct {
	name  string
	count int
}

func NewEvaluations() *Evaluations {
	return &Evaluations{name: "evaluations"}
}

func (e *Evaluations) Name() string {
	return e.name
}

func (e *Evaluations) Observe(s Snapshot) {
	e.count += len(s.Particles)
}

func (e *Evaluations) Value() float64 {
	return float64(e.count)
}

func (e *Evaluations) Reset() {
	e.count = 0
}
