package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/marquee/core"
)

// Terminal renders the frame buffer onto a tcell screen, one buffer pixel
// per terminal cell. Pixels draw as a shaded block; text glyphs draw as
// their rune. Brightness scales colors at output time.
type Terminal struct {
	*FrameBuffer
	screen tcell.Screen
	// originX, originY position the matrix inside the terminal window
	originX, originY int
	// flushedBrightness is the level the last flush painted with
	flushedBrightness float64
}

// NewTerminal creates a terminal-backed display of the given pixel size
// The screen must already be initialized
func NewTerminal(screen tcell.Screen, width, height int, clock core.Clock) *Terminal {
	t := &Terminal{
		FrameBuffer: NewFrameBuffer(width, height, clock),
		screen:      screen,
	}
	t.flushedBrightness = t.brightness
	t.centerOnScreen()
	t.FrameBuffer.present = t.flush
	return t
}

// centerOnScreen recomputes the matrix origin for the current window size
func (t *Terminal) centerOnScreen() {
	sw, sh := t.screen.Size()
	t.originX = (sw - t.width) / 2
	t.originY = (sh - t.height) / 2
	if t.originX < 0 {
		t.originX = 0
	}
	if t.originY < 0 {
		t.originY = 0
	}
}

// flush pushes dirty cells to the screen
// A brightness change since the last flush repaints every lit cell, since
// brightness applies at output time and leaves buffer contents untouched
func (t *Terminal) flush() error {
	dirty := t.takeDirty()
	if t.brightness != t.flushedBrightness {
		t.flushedBrightness = t.brightness
		for y := 0; y < t.height; y++ {
			for x := 0; x < t.width; x++ {
				if t.cells[y][x] != (Cell{}) {
					dirty[core.Point{X: x, Y: y}] = true
				}
			}
		}
	}
	for p := range dirty {
		cell := t.cells[p.Y][p.X]
		scaled := cell.Color.Scale(t.brightness)
		color := tcell.NewRGBColor(int32(scaled.R()), int32(scaled.G()), int32(scaled.B()))

		r := cell.Glyph
		if r == 0 {
			r = '█'
		}
		if cell.Color == core.ColorBlack && cell.Glyph == 0 {
			r = ' '
		}
		style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(color)
		t.screen.SetContent(t.originX+p.X, t.originY+p.Y, r, nil, style)
	}
	t.screen.Show()
	return nil
}

// Sync redraws the whole matrix, used after a terminal resize
func (t *Terminal) Sync() {
	t.centerOnScreen()
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			t.dirty[core.Point{X: x, Y: y}] = true
		}
	}
	t.screen.Sync()
	_ = t.flush()
}
