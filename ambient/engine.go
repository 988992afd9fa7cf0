// Package ambient layers always-on decoration over whatever the queue
// currently shows. It is independent of queue priority: a second,
// capacity-bounded scheduler with no notion of a current item.
// Both engines silently reject additions past capacity to bound memory
// and CPU on constrained hardware.
package ambient

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
)

const (
	DefaultMaxEffects = 2
	DefaultTargetFPS  = 5
)

// Effect is one ambient decoration, updated once per engine frame
type Effect interface {
	// Update draws the effect for the given age
	Update(d display.Display, elapsed time.Duration) error
	// Duration is the effect's lifetime; zero means indefinite
	Duration() time.Duration
}

type activeEffect struct {
	fx      Effect
	started time.Time
}

// EffectsEngine runs up to maxEffects concurrent ambient effects at a
// capped frame rate
type EffectsEngine struct {
	maxEffects int
	frameDur   time.Duration
	clock      core.Clock
	log        *slog.Logger

	active    []activeEffect
	lastFrame time.Time
}

// NewEffectsEngine creates an engine with the given capacity and frame cap
func NewEffectsEngine(maxEffects, targetFPS int, clock core.Clock, logger *slog.Logger) *EffectsEngine {
	if maxEffects <= 0 {
		maxEffects = DefaultMaxEffects
	}
	if targetFPS <= 0 {
		targetFPS = DefaultTargetFPS
	}
	if clock == nil {
		clock = core.NewSystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EffectsEngine{
		maxEffects: maxEffects,
		frameDur:   time.Second / time.Duration(targetFPS),
		clock:      clock,
		log:        logger,
	}
}

// Add activates an effect, returning false at capacity
func (e *EffectsEngine) Add(fx Effect) bool {
	if len(e.active) >= e.maxEffects {
		return false
	}
	e.active = append(e.active, activeEffect{fx: fx, started: e.clock.Now()})
	return true
}

// Update advances all active effects by one frame
// Skipped entirely when called faster than the target frame rate. Expired
// and failing effects are removed.
func (e *EffectsEngine) Update(d display.Display) {
	now := e.clock.Now()
	if now.Sub(e.lastFrame) < e.frameDur {
		return
	}
	e.lastFrame = now

	for i := len(e.active) - 1; i >= 0; i-- {
		a := e.active[i]
		elapsed := now.Sub(a.started)

		if dur := a.fx.Duration(); dur > 0 && elapsed > dur {
			e.remove(i)
			continue
		}

		if err := a.fx.Update(d, elapsed); err != nil {
			e.log.Error("ambient effect failed", "error", err)
			e.remove(i)
		}
	}
}

// remove drops the effect at index i
func (e *EffectsEngine) remove(i int) {
	e.active = append(e.active[:i], e.active[i+1:]...)
}

// Clear removes all active effects
func (e *EffectsEngine) Clear() {
	e.active = e.active[:0]
}

// Count returns the number of active effects
func (e *EffectsEngine) Count() int {
	return len(e.active)
}
