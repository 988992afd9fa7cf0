package main

import (
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

// chimer plays the alert chime; silent when the speaker failed to open
type chimer struct {
	ready bool
}

func newChimer(logger *slog.Logger) *chimer {
	c := &chimer{}
	err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10))
	if err != nil {
		// Non-fatal, the demo can run without sound
		logger.Warn("audio initialization failed", "error", err)
		return c
	}
	c.ready = true
	return c
}

func (c *chimer) chime() {
	if !c.ready {
		return
	}
	sine, err := generators.SineTone(chimeSampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(chimeSampleRate.N(80*time.Millisecond), sine))
}
