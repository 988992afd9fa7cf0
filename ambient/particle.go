package ambient

import (
	"time"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
)

// DefaultMaxParticles bounds the particle engine on constrained hardware
const DefaultMaxParticles = 8

// Particle is one decorative element with physics and a finite life
type Particle interface {
	// Move advances the particle's position for its age
	Move(elapsed time.Duration)
	// Render draws the particle; off-screen positions draw nothing
	Render(d display.Display, elapsed time.Duration) error
	// Dead reports whether the particle should be removed: lifetime
	// exceeded or left the visible range of a width x height display
	Dead(elapsed time.Duration, width, height int) bool
}

type activeParticle struct {
	p       Particle
	spawned time.Time
}

// ParticleEngine holds up to maxParticles live particles
type ParticleEngine struct {
	maxParticles int
	clock        core.Clock

	particles []activeParticle
}

// NewParticleEngine creates an engine with the given capacity
func NewParticleEngine(maxParticles int, clock core.Clock) *ParticleEngine {
	if maxParticles <= 0 {
		maxParticles = DefaultMaxParticles
	}
	if clock == nil {
		clock = core.NewSystemClock()
	}
	return &ParticleEngine{
		maxParticles: maxParticles,
		clock:        clock,
	}
}

// Add spawns a particle, returning false at capacity
func (e *ParticleEngine) Add(p Particle) bool {
	if len(e.particles) >= e.maxParticles {
		return false
	}
	e.particles = append(e.particles, activeParticle{p: p, spawned: e.clock.Now()})
	return true
}

// Update moves, renders and reaps every particle
func (e *ParticleEngine) Update(d display.Display) error {
	now := e.clock.Now()
	w, h := d.Width(), d.Height()

	for i := len(e.particles) - 1; i >= 0; i-- {
		a := e.particles[i]
		elapsed := now.Sub(a.spawned)

		if a.p.Dead(elapsed, w, h) {
			e.particles = append(e.particles[:i], e.particles[i+1:]...)
			continue
		}

		a.p.Move(elapsed)
		if err := a.p.Render(d, elapsed); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes all particles
func (e *ParticleEngine) Clear() {
	e.particles = e.particles[:0]
}

// Count returns the number of live particles
func (e *ParticleEngine) Count() int {
	return len(e.particles)
}

// Cap returns the particle capacity
func (e *ParticleEngine) Cap() int {
	return e.maxParticles
}
