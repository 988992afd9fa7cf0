package effect

import (
	"time"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
)

// Wipe reveals content through a rectangular clip growing from one edge
// Without a Clippable display it degrades to unclipped full-frame renders
type Wipe struct {
	Duration  time.Duration
	Direction Direction
	Clock     core.Clock
}

// NewWipe creates a wipe toward the given direction
func NewWipe(duration time.Duration, dir Direction) *Wipe {
	return &Wipe{Duration: duration, Direction: dir}
}

// TotalDuration returns the wipe time
func (e *Wipe) TotalDuration() time.Duration { return e.Duration }

// Apply grows the clip one pixel row or column per step to full coverage
func (e *Wipe) Apply(d display.Display, render RenderFunc) error {
	width, height := d.Width(), d.Height()

	steps := height
	if e.Direction.Horizontal() {
		steps = width
	}
	if steps <= 0 {
		if err := render(); err != nil {
			return err
		}
		return d.Show()
	}
	stepDur := e.Duration / time.Duration(steps)
	clip, canClip := clipOf(d)

	for step := 0; step <= steps; step++ {
		progress := float64(step) / float64(steps)
		area := edgeClip(width, height, e.Direction, progress)

		d.Clear()
		if canClip {
			clip.SetClipArea(area)
		}
		err := render()
		if canClip {
			clip.ClearClipArea()
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

// edgeClip computes the visible rectangle growing from one edge
// The direction names the edge the wipe moves toward
func edgeClip(width, height int, dir Direction, progress float64) core.Rect {
	switch dir {
	case DirRight:
		w := int(float64(width) * progress)
		return core.Rect{X0: 0, Y0: 0, X1: w, Y1: height}
	case DirLeft:
		w := int(float64(width) * progress)
		return core.Rect{X0: width - w, Y0: 0, X1: width, Y1: height}
	case DirDown:
		h := int(float64(height) * progress)
		return core.Rect{X0: 0, Y0: 0, X1: width, Y1: h}
	case DirUp:
		h := int(float64(height) * progress)
		return core.Rect{X0: 0, Y0: height - h, X1: width, Y1: height}
	}
	return core.Rect{X0: 0, Y0: 0, X1: width, Y1: height}
}
