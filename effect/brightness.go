package effect

import (
	"time"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
)

const fadeSteps = 20

// FadeIn ramps brightness from zero to the display's original level
// The content renders once at zero brightness, then each ramp step redraws
type FadeIn struct {
	Duration time.Duration
	Clock    core.Clock
}

// NewFadeIn creates a fade-in over the given duration
func NewFadeIn(duration time.Duration) *FadeIn {
	return &FadeIn{Duration: duration}
}

// TotalDuration returns the fade time
func (e *FadeIn) TotalDuration() time.Duration { return e.Duration }

// Apply renders at zero brightness and ramps up in 20 equal steps
func (e *FadeIn) Apply(d display.Display, render RenderFunc) error {
	original := d.Brightness()
	defer d.SetBrightness(original)

	d.SetBrightness(0)
	if err := render(); err != nil {
		return err
	}
	if err := d.Show(); err != nil {
		return err
	}

	stepDur := e.Duration / fadeSteps
	for step := 0; step <= fadeSteps; step++ {
		progress := float64(step) / fadeSteps
		d.SetBrightness(progress * original)
		if err := d.Show(); err != nil {
			return err
		}
		if step < fadeSteps {
			sleep(e.Clock, stepDur)
		}
	}
	return nil
}

// Pulse oscillates brightness between two bounds for a number of full
// cycles, then restores the original level. The content renders once
// before the oscillation starts.
type Pulse struct {
	Duration      time.Duration
	Pulses        int
	MinBrightness float64
	MaxBrightness float64
	Clock         core.Clock
}

// NewPulse creates a pulse effect with the given cycle count and bounds
func NewPulse(duration time.Duration, pulses int, minB, maxB float64) *Pulse {
	return &Pulse{
		Duration:      duration,
		Pulses:        pulses,
		MinBrightness: minB,
		MaxBrightness: maxB,
	}
}

// TotalDuration returns the pulse time
func (e *Pulse) TotalDuration() time.Duration { return e.Duration }

// Apply runs a triangle wave over brightness, 20 steps per half-cycle
func (e *Pulse) Apply(d display.Display, render RenderFunc) error {
	original := d.Brightness()
	defer d.SetBrightness(original)

	if err := render(); err != nil {
		return err
	}

	const stepsPerHalf = 20
	totalSteps := e.Pulses * stepsPerHalf * 2
	if totalSteps <= 0 {
		return d.Show()
	}
	stepDur := e.Duration / time.Duration(totalSteps)
	span := e.MaxBrightness - e.MinBrightness

	for step := 0; step <= totalSteps; step++ {
		phase := float64(step%(stepsPerHalf*2)) / stepsPerHalf // 0..2
		if phase > 1 {
			phase = 2 - phase
		}
		d.SetBrightness(e.MinBrightness + phase*span)
		if err := d.Show(); err != nil {
			return err
		}
		if step < totalSteps {
			sleep(e.Clock, stepDur)
		}
	}
	return nil
}

// Flash alternates bright and dim renders, ending bright
type Flash struct {
	Duration        time.Duration
	Flashes         int
	FlashBrightness float64
	Clock           core.Clock
}

// NewFlash creates a flash effect
func NewFlash(duration time.Duration, flashes int, flashBrightness float64) *Flash {
	return &Flash{
		Duration:        duration,
		Flashes:         flashes,
		FlashBrightness: flashBrightness,
	}
}

// TotalDuration returns the flash time
func (e *Flash) TotalDuration() time.Duration { return e.Duration }

// Apply alternates Flashes bright/dim periods, then restores brightness
// and leaves a final full render on the display
func (e *Flash) Apply(d display.Display, render RenderFunc) error {
	original := d.Brightness()
	if e.Flashes <= 0 {
		if err := render(); err != nil {
			return err
		}
		return d.Show()
	}

	// Each flash has an on and an off period
	flashDur := e.Duration / time.Duration(e.Flashes*2)

	for i := 0; i < e.Flashes; i++ {
		d.SetBrightness(e.FlashBrightness)
		if err := render(); err != nil {
			d.SetBrightness(original)
			return err
		}
		if err := d.Show(); err != nil {
			d.SetBrightness(original)
			return err
		}
		sleep(e.Clock, flashDur)

		d.SetBrightness(original * 0.1)
		if err := d.Show(); err != nil {
			d.SetBrightness(original)
			return err
		}
		if i < e.Flashes-1 {
			sleep(e.Clock, flashDur)
		}
	}

	d.SetBrightness(original)
	if err := render(); err != nil {
		return err
	}
	return d.Show()
}
