// Package effect layers timed visual transformations onto a render
// operation without the content knowing about them. An effect wraps a
// render func and may invoke it zero or more times, interleaving display
// mutations and timed suspensions.
package effect

import (
	"time"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
)

// RenderFunc performs one base render pass
type RenderFunc func() error

// Effect wraps a render operation to add a timed visual transformation
// Any transient state an effect needs is scoped to one Apply invocation
type Effect interface {
	Apply(d display.Display, render RenderFunc) error
	// TotalDuration is the time the effect adds to rendering
	TotalDuration() time.Duration
}

// Direction selects the axis and sense of a directional effect
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Horizontal reports whether the direction runs along the x axis
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Compose folds an ordered effect list into one render func
// The first effect in the list is innermost, closest to the unmodified
// content; the last controls the overall timing envelope. An empty list
// returns base unchanged.
func Compose(d display.Display, base RenderFunc, effects []Effect) RenderFunc {
	render := base
	for _, e := range effects {
		inner := render
		eff := e
		render = func() error {
			return eff.Apply(d, inner)
		}
	}
	return render
}

// sleep suspends between animation frames
// A nil clock falls back to the system clock
func sleep(c core.Clock, d time.Duration) {
	if d <= 0 {
		return
	}
	if c == nil {
		c = core.NewSystemClock()
	}
	c.Sleep(d)
}

// clipOf returns the clip capability if the display has one
func clipOf(d display.Display) (display.Clippable, bool) {
	c, ok := d.(display.Clippable)
	return c, ok
}

// offsetOf returns the offset capability if the display has one
func offsetOf(d display.Display) (display.Offsettable, bool) {
	o, ok := d.(display.Offsettable)
	return o, ok
}
