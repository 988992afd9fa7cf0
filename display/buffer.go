package display

import (
	"time"

	"github.com/lixenwraith/marquee/core"
)

// Cell is one pixel of the frame buffer
// Glyph is non-zero when text was drawn over the pixel
type Cell struct {
	Color core.Color
	Glyph rune
}

// FrameBuffer is an in-memory Display with clip, offset and brightness
// support. It backs the terminal simulator and is used directly in tests.
type FrameBuffer struct {
	width  int
	height int
	cells  [][]Cell
	dirty  map[core.Point]bool

	brightness float64
	clip       core.Rect
	clipped    bool
	offX, offY int

	clock  core.Clock
	frames int

	// present pushes the committed frame to a backend, if any
	present func() error
}

// NewFrameBuffer creates a cleared buffer with the given dimensions
func NewFrameBuffer(width, height int, clock core.Clock) *FrameBuffer {
	if clock == nil {
		clock = core.NewSystemClock()
	}
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &FrameBuffer{
		width:      width,
		height:     height,
		cells:      cells,
		dirty:      make(map[core.Point]bool),
		brightness: 1.0,
		clock:      clock,
	}
}

// Width returns the buffer width in pixels
func (b *FrameBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels
func (b *FrameBuffer) Height() int { return b.height }

// Clear resets every cell to black and marks the frame dirty
func (b *FrameBuffer) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] != (Cell{}) {
				b.cells[y][x] = Cell{}
				b.dirty[core.Point{X: x, Y: y}] = true
			}
		}
	}
}

// Show commits the current frame and pushes it to the backend, if one is
// attached
func (b *FrameBuffer) Show() error {
	b.frames++
	if b.present != nil {
		return b.present()
	}
	return nil
}

// Frames returns the number of committed frames
func (b *FrameBuffer) Frames() int { return b.frames }

// SetPixel writes one pixel, honoring the render offset and clip rectangle
func (b *FrameBuffer) SetPixel(x, y int, c core.Color) {
	b.put(x, y, Cell{Color: c})
}

// DrawText places text starting at (x, y), one glyph per pixel column
// Glyph rasterization is the backend's concern; the buffer tracks the
// rune and color per cell
func (b *FrameBuffer) DrawText(text string, x, y int, c core.Color) {
	col := x
	for _, r := range text {
		b.put(col, y, Cell{Color: c, Glyph: r})
		col++
	}
}

// ScrollText moves text in from the right edge until it exits on the left,
// sleeping speed per pixel of travel
func (b *FrameBuffer) ScrollText(text string, y int, c core.Color, speed time.Duration) error {
	runes := []rune(text)
	steps := b.width + len(runes)
	for step := 0; step <= steps; step++ {
		b.Clear()
		b.DrawText(text, b.width-step, y, c)
		if err := b.Show(); err != nil {
			return err
		}
		if step < steps {
			b.clock.Sleep(speed)
		}
	}
	return nil
}

// Brightness returns the current brightness in [0, 1]
func (b *FrameBuffer) Brightness() float64 { return b.brightness }

// SetBrightness clamps and stores the brightness
// Applied at output time; buffer contents keep their true colors
func (b *FrameBuffer) SetBrightness(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	b.brightness = v
}

// SetClipArea restricts subsequent writes to r
func (b *FrameBuffer) SetClipArea(r core.Rect) {
	b.clip = r.Intersect(core.NewRect(0, 0, b.width, b.height))
	b.clipped = true
}

// ClearClipArea removes the clip rectangle
func (b *FrameBuffer) ClearClipArea() {
	b.clipped = false
	b.clip = core.Rect{}
}

// SetRenderOffset shifts subsequent writes by (dx, dy)
func (b *FrameBuffer) SetRenderOffset(dx, dy int) {
	b.offX = dx
	b.offY = dy
}

// Cell returns the buffer contents at (x, y)
func (b *FrameBuffer) Cell(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.cells[y][x]
}

// put applies offset and clip, then writes the cell if in bounds
func (b *FrameBuffer) put(x, y int, c Cell) {
	x += b.offX
	y += b.offY
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	if b.clipped && !b.clip.Contains(x, y) {
		return
	}
	if b.cells[y][x] != c {
		b.cells[y][x] = c
		b.dirty[core.Point{X: x, Y: y}] = true
	}
}

// takeDirty returns and resets the dirty set
func (b *FrameBuffer) takeDirty() map[core.Point]bool {
	d := b.dirty
	b.dirty = make(map[core.Point]bool)
	return d
}
