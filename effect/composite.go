package effect

import (
	"time"

	"github.com/lixenwraith/marquee/display"
)

// CompositeMode selects how member effects combine
type CompositeMode int

const (
	// ModeSequence chains members; the first listed member runs outermost
	ModeSequence CompositeMode = iota
	// ModeParallel is a declared intent only: the composite applies just
	// its first member. True concurrent composition is not implemented.
	ModeParallel
)

// Composite combines multiple effects into one
type Composite struct {
	Effects []Effect
	Mode    CompositeMode
}

// NewComposite creates a composite over the given members
func NewComposite(mode CompositeMode, effects ...Effect) *Composite {
	return &Composite{Effects: effects, Mode: mode}
}

// TotalDuration sums member durations in sequence mode and takes the
// maximum in parallel mode
func (e *Composite) TotalDuration() time.Duration {
	var total time.Duration
	for _, m := range e.Effects {
		d := m.TotalDuration()
		if e.Mode == ModeSequence {
			total += d
		} else if d > total {
			total = d
		}
	}
	return total
}

// Apply runs the members per the composite mode
func (e *Composite) Apply(d display.Display, render RenderFunc) error {
	if len(e.Effects) == 0 {
		return render()
	}

	if e.Mode == ModeParallel {
		return e.Effects[0].Apply(d, render)
	}

	// Chain so that the first listed member wraps the rest
	chained := render
	for i := len(e.Effects) - 1; i >= 0; i-- {
		inner := chained
		m := e.Effects[i]
		chained = func() error {
			return m.Apply(d, inner)
		}
	}
	return chained()
}
