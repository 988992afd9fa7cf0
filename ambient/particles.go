package ambient

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
)

// lifeRatio maps particle age to [0, 1]
func lifeRatio(elapsed, lifetime time.Duration) float64 {
	if lifetime <= 0 {
		return 1
	}
	r := elapsed.Seconds() / lifetime.Seconds()
	if r > 1 {
		return 1
	}
	return r
}

// Spark is a stationary glint: quick ramp to peak brightness at 20% of
// its life, then a slow fade
type Spark struct {
	X, Y     int
	Color    core.Color
	Lifetime time.Duration
}

// NewSpark creates a white spark
func NewSpark(x, y int, lifetime time.Duration) *Spark {
	return &Spark{X: x, Y: y, Color: core.ColorWhite, Lifetime: lifetime}
}

// Move does nothing; sparks stay put
func (p *Spark) Move(elapsed time.Duration) {}

// Render draws the spark at its age-scaled brightness
func (p *Spark) Render(d display.Display, elapsed time.Duration) error {
	if p.X < 0 || p.X >= d.Width() || p.Y < 0 || p.Y >= d.Height() {
		return nil
	}

	ratio := lifeRatio(elapsed, p.Lifetime)
	var brightness float64
	if ratio < 0.2 {
		brightness = ratio / 0.2
	} else {
		brightness = 1.0 - (ratio-0.2)/0.8
	}
	d.SetPixel(p.X, p.Y, p.Color.Scale(brightness))
	return nil
}

// Dead removes the spark when its lifetime passes
func (p *Spark) Dead(elapsed time.Duration, width, height int) bool {
	return elapsed > p.Lifetime
}

// RainDrop falls straight down
type RainDrop struct {
	X        int
	StartY   float64
	Speed    float64 // pixels per second
	Color    core.Color
	Lifetime time.Duration

	y float64
}

// NewRainDrop creates a blue drop falling from (x, y)
func NewRainDrop(x, y int, speed float64, lifetime time.Duration) *RainDrop {
	return &RainDrop{X: x, StartY: float64(y), Speed: speed, Color: 0x0080FF, Lifetime: lifetime, y: float64(y)}
}

// Move advances the fall
func (p *RainDrop) Move(elapsed time.Duration) {
	p.y = p.StartY + p.Speed*elapsed.Seconds()
}

// Render draws the drop if on screen
func (p *RainDrop) Render(d display.Display, elapsed time.Duration) error {
	y := int(p.y)
	if p.X < 0 || p.X >= d.Width() || y < 0 || y >= d.Height() {
		return nil
	}
	d.SetPixel(p.X, y, p.Color)
	return nil
}

// Dead removes the drop below the bottom edge or past its lifetime
func (p *RainDrop) Dead(elapsed time.Duration, width, height int) bool {
	return int(p.y) >= height || elapsed > p.Lifetime
}

// emberRamp runs red through yellow as the ember ages
var emberRamp = []core.Color{0xFF0000, 0xFF3300, 0xFF6600, 0xFF9900, 0xFFCC00, 0xFFFF00}

// Ember rises with sideways drift, cooling from red to yellow as it fades
type Ember struct {
	StartX, StartY float64
	Speed          float64 // rise speed, pixels per second
	Drift          float64 // horizontal drift, pixels per second
	Lifetime       time.Duration

	x, y      float64
	driftSign float64
}

// NewEmber creates an ember rising from (x, y) with a random drift side
func NewEmber(x, y int, speed, drift float64, lifetime time.Duration) *Ember {
	sign := 1.0
	if rand.Float64() < 0.5 {
		sign = -1.0
	}
	return &Ember{
		StartX: float64(x), StartY: float64(y),
		Speed: speed, Drift: drift, Lifetime: lifetime,
		x: float64(x), y: float64(y), driftSign: sign,
	}
}

// Move rises and drifts sideways
func (p *Ember) Move(elapsed time.Duration) {
	t := elapsed.Seconds()
	p.y = p.StartY - p.Speed*t
	p.x = p.StartX + p.Drift*t*p.driftSign
}

// Render draws the ember with its age-selected color, fading out
func (p *Ember) Render(d display.Display, elapsed time.Duration) error {
	x, y := int(p.x), int(p.y)
	if x < 0 || x >= d.Width() || y < 0 || y >= d.Height() {
		return nil
	}

	ratio := lifeRatio(elapsed, p.Lifetime)
	idx := int(ratio * float64(len(emberRamp)-1))
	if idx >= len(emberRamp) {
		idx = len(emberRamp) - 1
	}
	d.SetPixel(x, y, emberRamp[idx].Scale(1.0-ratio))
	return nil
}

// Dead removes the ember above the top edge or past its lifetime
func (p *Ember) Dead(elapsed time.Duration, width, height int) bool {
	return int(p.y) < 0 || elapsed > p.Lifetime
}

// Snowflake falls gently with a sinusoidal sway
type Snowflake struct {
	StartX, StartY float64
	Speed          float64 // fall speed, pixels per second
	Sway           float64 // sway amplitude in pixels
	Lifetime       time.Duration

	x, y      float64
	swayPhase float64
}

// NewSnowflake creates a flake falling from (x, y) with a random sway phase
func NewSnowflake(x, y int, speed, sway float64, lifetime time.Duration) *Snowflake {
	return &Snowflake{
		StartX: float64(x), StartY: float64(y),
		Speed: speed, Sway: sway, Lifetime: lifetime,
		x: float64(x), y: float64(y),
		swayPhase: rand.Float64() * 2 * math.Pi,
	}
}

// Move falls and sways side to side
func (p *Snowflake) Move(elapsed time.Duration) {
	t := elapsed.Seconds()
	p.y = p.StartY + p.Speed*t
	p.x = p.StartX + p.Sway*math.Sin(t*2+p.swayPhase)
}

// Render draws the flake if on screen
func (p *Snowflake) Render(d display.Display, elapsed time.Duration) error {
	x, y := int(p.x), int(p.y)
	if x < 0 || x >= d.Width() || y < 0 || y >= d.Height() {
		return nil
	}
	d.SetPixel(x, y, core.ColorWhite)
	return nil
}

// Dead removes the flake below the bottom edge or past its lifetime
func (p *Snowflake) Dead(elapsed time.Duration, width, height int) bool {
	return int(p.y) >= height || elapsed > p.Lifetime
}
