package ambient

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
)

// RainbowCycle walks a hue sweep across a few pixels per frame
// Throttled internally so a fast engine frame rate stays cheap
type RainbowCycle struct {
	Speed    float64
	Lifetime time.Duration

	lastUpdate time.Duration
}

// Duration returns the effect lifetime
func (r *RainbowCycle) Duration() time.Duration { return r.Lifetime }

// Update recolors four pixels along a scan pattern
func (r *RainbowCycle) Update(d display.Display, elapsed time.Duration) error {
	if elapsed-r.lastUpdate < 200*time.Millisecond {
		return nil
	}
	r.lastUpdate = elapsed

	speed := r.Speed
	if speed == 0 {
		speed = 1
	}
	offset := elapsed.Seconds() * speed * 0.1
	color := core.RainbowColor(0, offset)

	w, h := d.Width(), d.Height()
	if w == 0 || h == 0 {
		return nil
	}
	total := w * h
	frameOffset := int(elapsed.Seconds()*10) % total
	for i := 0; i < 4; i++ {
		idx := (frameOffset + i) % total
		d.SetPixel(idx%w, idx/w, color)
	}
	return nil
}

// Sparkle spawns short-lived white glints at random positions
type Sparkle struct {
	// Intensity caps simultaneous sparkles; clamped to 5
	Intensity int
	Lifetime  time.Duration

	positions []core.Point
	born      []time.Duration
	lastSpawn time.Duration
}

// Duration returns the effect lifetime
func (s *Sparkle) Duration() time.Duration { return s.Lifetime }

// Update spawns at most one sparkle per 300ms and fades existing ones
// over a one second life
func (s *Sparkle) Update(d display.Display, elapsed time.Duration) error {
	limit := s.Intensity
	if limit <= 0 {
		limit = 3
	}
	if limit > 5 {
		limit = 5
	}

	if elapsed-s.lastSpawn > 300*time.Millisecond && len(s.positions) < limit {
		s.positions = append(s.positions, core.Point{
			X: rand.Intn(d.Width()),
			Y: rand.Intn(d.Height()),
		})
		s.born = append(s.born, elapsed)
		s.lastSpawn = elapsed
	}

	for i := len(s.positions) - 1; i >= 0; i-- {
		life := elapsed - s.born[i]
		if life > time.Second {
			s.positions = append(s.positions[:i], s.positions[i+1:]...)
			s.born = append(s.born[:i], s.born[i+1:]...)
			continue
		}
		brightness := 1.0 - life.Seconds()
		v := uint8(brightness * 255)
		d.SetPixel(s.positions[i].X, s.positions[i].Y, core.RGB(v, v, v))
	}
	return nil
}

// EdgeGlow pulses the display border with a sine-driven intensity
type EdgeGlow struct {
	Color    core.Color
	Lifetime time.Duration

	lastUpdate time.Duration
}

// Duration returns the effect lifetime
func (e *EdgeGlow) Duration() time.Duration { return e.Lifetime }

// Update redraws every other border pixel at the current glow level
func (e *EdgeGlow) Update(d display.Display, elapsed time.Duration) error {
	if elapsed-e.lastUpdate < 100*time.Millisecond {
		return nil
	}
	e.lastUpdate = elapsed

	color := e.Color
	if color == 0 {
		color = 0x00FFFF
	}
	intensity := (math.Sin(elapsed.Seconds()*3) + 1) * 0.5
	glow := color.Scale(intensity)

	w, h := d.Width(), d.Height()
	for x := 0; x < w; x += 2 {
		d.SetPixel(x, 0, glow)
		d.SetPixel(x, h-1, glow)
	}
	for y := 0; y < h; y += 2 {
		d.SetPixel(0, y, glow)
		d.SetPixel(w-1, y, glow)
	}
	return nil
}

// CornerFlash blinks the four display corners on a fixed period
type CornerFlash struct {
	Color    core.Color
	FlashFor time.Duration
	Interval time.Duration
	Lifetime time.Duration
}

// Duration returns the effect lifetime
func (c *CornerFlash) Duration() time.Duration { return c.Lifetime }

// Update lights the corners during the flash portion of each interval
func (c *CornerFlash) Update(d display.Display, elapsed time.Duration) error {
	interval := c.Interval
	if interval <= 0 {
		interval = time.Second
	}
	flashFor := c.FlashFor
	if flashFor <= 0 {
		flashFor = 200 * time.Millisecond
	}
	color := c.Color
	if color == 0 {
		color = core.ColorWhite
	}

	if elapsed%interval < flashFor {
		w, h := d.Width(), d.Height()
		d.SetPixel(0, 0, color)
		d.SetPixel(w-1, 0, color)
		d.SetPixel(0, h-1, color)
		d.SetPixel(w-1, h-1, color)
	}
	return nil
}

// BreathePulse drives display brightness with a slow sine wave
type BreathePulse struct {
	Speed         float64
	MinBrightness float64
	MaxBrightness float64
	Lifetime      time.Duration
}

// Duration returns the effect lifetime
func (b *BreathePulse) Duration() time.Duration { return b.Lifetime }

// Update maps the sine phase onto the configured brightness range
func (b *BreathePulse) Update(d display.Display, elapsed time.Duration) error {
	speed := b.Speed
	if speed == 0 {
		speed = 1
	}
	maxB := b.MaxBrightness
	if maxB == 0 {
		maxB = 1
	}

	wave := math.Sin(elapsed.Seconds() * speed * 2 * math.Pi) // -1..1
	span := maxB - b.MinBrightness
	d.SetBrightness(b.MinBrightness + (wave+1)*0.5*span)
	return nil
}
