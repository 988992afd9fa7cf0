package strategy

import (
	"time"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
)

// Built-in strategy names
const (
	StaticTextName    = "static_text"
	ScrollingTextName = "scrolling_text"
)

// Recognized data keys: "text", "x", "y", "color", "speed"
const (
	defaultTextY      = 10
	defaultScrollStep = 50 * time.Millisecond

	// pixelsPerChar feeds the scroll duration estimate
	pixelsPerChar = 6
	// scrollTail keeps the display occupied briefly after the text exits
	scrollTail = 2 * time.Second
)

// StaticText draws text at a fixed position with no intrinsic duration
type StaticText struct{}

// Render draws the text once
func (s *StaticText) Render(d display.Display, data Data) error {
	text := data.Text("text", "")
	x := data.Int("x", 0)
	y := data.Int("y", defaultTextY)
	color := data.Color("color", core.ColorWhite)

	d.DrawText(text, x, y, color)
	return nil
}

// Validate requires a text field
func (s *StaticText) Validate(data Data) bool {
	_, ok := data["text"].(string)
	return ok
}

// RenderDuration has no recommendation; the queue default applies
func (s *StaticText) RenderDuration(data Data) (time.Duration, bool) {
	return 0, false
}

// ScrollingText scrolls text across the display
type ScrollingText struct{}

// Render drives the display's scroll animation to completion
func (s *ScrollingText) Render(d display.Display, data Data) error {
	text := data.Text("text", "")
	y := data.Int("y", defaultTextY)
	color := data.Color("color", core.ColorWhite)
	speed := data.Duration("speed", defaultScrollStep)

	return d.ScrollText(text, y, color, speed)
}

// Validate requires a text field
func (s *ScrollingText) Validate(data Data) bool {
	_, ok := data["text"].(string)
	return ok
}

// RenderDuration estimates text length at 6 pixels per character times the
// per-pixel delay, plus a fixed tail
func (s *ScrollingText) RenderDuration(data Data) (time.Duration, bool) {
	text := data.Text("text", "")
	speed := data.Duration("speed", defaultScrollStep)
	est := time.Duration(len([]rune(text))*pixelsPerChar)*speed + scrollTail
	return est, true
}
