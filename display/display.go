// Package display defines the capability consumed by the scheduling core
// and provides an in-memory frame buffer plus a tcell terminal simulator.
package display

import (
	"time"

	"github.com/lixenwraith/marquee/core"
)

// Display is the narrow surface the scheduler drives
// Implementations are not safe for concurrent use; one render owns the
// display at a time
type Display interface {
	Width() int
	Height() int

	Clear()
	Show() error

	SetPixel(x, y int, c core.Color)
	DrawText(text string, x, y int, c core.Color)
	// ScrollText animates text across the display, blocking between frames
	// speed is the delay per pixel of travel
	ScrollText(text string, y int, c core.Color, speed time.Duration) error

	Brightness() float64
	SetBrightness(v float64)
}

// Clippable is optionally implemented by displays that support a clip
// rectangle; effects degrade to unclipped full-frame rendering if absent
type Clippable interface {
	SetClipArea(r core.Rect)
	ClearClipArea()
}

// Offsettable is optionally implemented by displays that support a render
// offset; slide effects degrade to direct rendering if absent
type Offsettable interface {
	SetRenderOffset(dx, dy int)
}
