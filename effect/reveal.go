package effect

import (
	"time"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
)

// Reveal unveils content from one edge and holds it on screen afterward
// Total duration is the reveal time plus the end pause
type Reveal struct {
	Duration   time.Duration
	Direction  Direction
	Steps      int // 0 selects one step per pixel along the axis
	PauseAtEnd time.Duration
	Clock      core.Clock
}

// NewReveal creates a reveal toward the given direction
func NewReveal(duration time.Duration, dir Direction, pauseAtEnd time.Duration) *Reveal {
	return &Reveal{Duration: duration, Direction: dir, PauseAtEnd: pauseAtEnd}
}

// TotalDuration returns reveal time plus end pause
func (e *Reveal) TotalDuration() time.Duration {
	return e.Duration + e.PauseAtEnd
}

// Apply grows the clip from one edge over Steps increments, then holds
func (e *Reveal) Apply(d display.Display, render RenderFunc) error {
	width, height := d.Width(), d.Height()

	steps := e.Steps
	if steps <= 0 {
		steps = height
		if e.Direction.Horizontal() {
			steps = width
		}
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

	sleep(e.Clock, e.PauseAtEnd)
	return nil
}

// CenterMode selects how RevealCenter grows the visible area
type CenterMode int

const (
	// CenterExpand grows a rectangle outward from center
	CenterExpand CenterMode = iota
	// CenterIris grows a circle, approximated by its bounding square on
	// displays without circular clipping
	CenterIris
)

// RevealCenter unveils content outward from the display center
type RevealCenter struct {
	Duration   time.Duration
	Mode       CenterMode
	PauseAtEnd time.Duration
	Clock      core.Clock
}

// NewRevealCenter creates a center reveal
func NewRevealCenter(duration time.Duration, mode CenterMode, pauseAtEnd time.Duration) *RevealCenter {
	return &RevealCenter{Duration: duration, Mode: mode, PauseAtEnd: pauseAtEnd}
}

// TotalDuration returns reveal time plus end pause
func (e *RevealCenter) TotalDuration() time.Duration {
	return e.Duration + e.PauseAtEnd
}

// Apply grows the clip from center one pixel of radius per step
func (e *RevealCenter) Apply(d display.Display, render RenderFunc) error {
	width, height := d.Width(), d.Height()
	cx, cy := width/2, height/2

	// Radius reaching the farthest edge covers the whole display
	steps := max(max(cx, width-cx), max(cy, height-cy))
	if steps <= 0 {
		if err := render(); err != nil {
			return err
		}
		return d.Show()
	}
	stepDur := e.Duration / time.Duration(steps)
	clip, canClip := clipOf(d)

	for radius := 0; radius <= steps; radius++ {
		area := core.Rect{
			X0: max(0, cx-radius),
			Y0: max(0, cy-radius),
			X1: min(width, cx+radius),
			Y1: min(height, cy+radius),
		}

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
		if radius < steps {
			sleep(e.Clock, stepDur)
		}
	}

	sleep(e.Clock, e.PauseAtEnd)
	return nil
}
