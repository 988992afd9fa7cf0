package effect

import (
	"time"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
)

// maxSlideSteps caps re-renders per slide for constrained hardware
const maxSlideSteps = 32

// SlideIn moves content in from off-screen along one axis
// Requires an Offsettable display for actual motion; otherwise the content
// renders in place each step
type SlideIn struct {
	Duration  time.Duration
	Direction Direction
	Clock     core.Clock
}

// NewSlideIn creates a slide-in from the given direction
func NewSlideIn(duration time.Duration, dir Direction) *SlideIn {
	return &SlideIn{Duration: duration, Direction: dir}
}

// TotalDuration returns the slide time
func (e *SlideIn) TotalDuration() time.Duration { return e.Duration }

// Apply re-renders the content at discrete offsets until it reaches its
// resting position
func (e *SlideIn) Apply(d display.Display, render RenderFunc) error {
	distance := d.Height()
	if e.Direction.Horizontal() {
		distance = d.Width()
	}

	steps := distance
	if steps > maxSlideSteps {
		steps = maxSlideSteps
	}
	if steps <= 0 {
		if err := render(); err != nil {
			return err
		}
		return d.Show()
	}
	stepDur := e.Duration / time.Duration(steps)
	off, canOffset := offsetOf(d)

	for step := 0; step <= steps; step++ {
		progress := float64(step) / float64(steps)
		dx, dy := e.offsetAt(distance, progress)

		d.Clear()
		if canOffset {
			off.SetRenderOffset(dx, dy)
		}
		err := render()
		if canOffset {
			off.SetRenderOffset(0, 0)
		}
		if err != nil {
			return err
		}
		if err := d.Show(); err != nil {
			return err
		}
		if step < steps {
			sleep(e.Clock, stepDur)
		}
	}
	return nil
}

// offsetAt computes the render offset for the given progress
func (e *SlideIn) offsetAt(distance int, progress float64) (int, int) {
	moved := int(float64(distance) * progress)
	switch e.Direction {
	case DirLeft:
		// Enter from the right edge, settle leftward
		return distance - moved, 0
	case DirRight:
		return -distance + moved, 0
	case DirUp:
		return 0, distance - moved
	case DirDown:
		return 0, -distance + moved
	}
	return 0, 0
}
