package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/marquee/ambient"
	"github.com/lixenwraith/marquee/config"
	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
	"github.com/lixenwraith/marquee/effect"
	"github.com/lixenwraith/marquee/manager"
	"github.com/lixenwraith/marquee/status"
	"github.com/lixenwraith/marquee/strategy"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the terminal matrix demo",
	Long: `Render a simulated LED matrix in the terminal and drive it with
scheduled content, transition effects and ambient animation.

Key bindings:
  a           Queue an alert
  s           Toggle snowfall
  k           Toggle sparkles
  c           Clear the queue
  q, Esc      Quit`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	clock := core.NewSystemClock()
	term := display.NewTerminal(screen, cfg.Display.Width, cfg.Display.Height, clock)
	term.SetBrightness(cfg.Display.Brightness)

	stats := status.NewRegistry()
	mgr := manager.New(term, manager.Options{
		MaxItems:        cfg.Queue.MaxItems,
		DefaultDuration: cfg.DefaultDurationDuration(),
		ProcessInterval: cfg.ProcessIntervalDuration(),
		Stats:           stats,
		Logger:          logger,
	})

	audio := newChimer(logger)

	sparkles := ambient.NewEffectsEngine(cfg.Ambient.MaxEffects, cfg.Ambient.TargetFPS, clock, logger)
	snow := ambient.NewParticleEngine(cfg.Particle.MaxParticles, clock)
	snowing := false

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Live reload keeps the tick interval current while the demo runs
	watcher := config.NewWatcher(globalOpts.configPath, logger, func(c *config.Config) {
		mgr.SetProcessInterval(c.ProcessIntervalDuration())
	})
	go func() { _ = watcher.Run(ctx) }()

	seedContent(mgr)
	mgr.Start()
	defer mgr.Stop()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(mgr.ProcessInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				term.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
					return nil
				case ev.Rune() == 'a':
					mgr.ShowAlert("ALERT")
					audio.chime()
				case ev.Rune() == 's':
					snowing = !snowing
					if !snowing {
						snow.Clear()
					}
				case ev.Rune() == 'k':
					if sparkles.Count() > 0 {
						sparkles.Clear()
					} else {
						sparkles.Add(&ambient.Sparkle{Intensity: 3, Lifetime: time.Hour})
					}
				case ev.Rune() == 'c':
					mgr.ClearQueue()
				}
			}

		case <-ticker.C:
			mgr.ProcessQueue()
			if mgr.QueueDepth() == 0 && mgr.CurrentItem() == nil {
				sparkles.Update(term)
				if snowing {
					spawnSnow(snow, term.Width())
					if err := snow.Update(term); err != nil {
						logger.Warn("particle update failed", "error", err)
					}
				}
				if err := term.Show(); err != nil {
					logger.Warn("ambient frame failed", "error", err)
				}
			}
		}
	}
}

// seedContent queues the opening demo sequence.
func seedContent(mgr *manager.Manager) {
	mgr.ShowScrollingText("marquee demo", core.PriorityNormal)
	mgr.AddItem(strategy.StaticTextName,
		strategy.Data{"text": "HI", "color": core.RGB(0, 255, 128)},
		core.PriorityNormal, 4*time.Second,
		&effect.FadeIn{Duration: time.Second})
	mgr.AddItem(strategy.StaticTextName,
		strategy.Data{"text": "GO", "color": core.RGB(255, 200, 0)},
		core.PriorityNormal, 4*time.Second,
		&effect.Wipe{Duration: time.Second, Direction: effect.DirRight})
}

// spawnSnow tops the particle engine up to its configured capacity.
func spawnSnow(eng *ambient.ParticleEngine, width int) {
	if width == 0 {
		return
	}
	for eng.Count() < eng.Cap() {
		flake := ambient.NewSnowflake(rand.Intn(width), 0,
			2+rand.Float64()*2, 1.5, 20*time.Second)
		if !eng.Add(flake) {
			return
		}
	}
}
