// Package manager orchestrates periodic queue processing against a
// display, collects statistics and exposes convenience scheduling calls
// for the hosting application.
package manager

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
	"github.com/lixenwraith/marquee/effect"
	"github.com/lixenwraith/marquee/queue"
	"github.com/lixenwraith/marquee/status"
	"github.com/lixenwraith/marquee/strategy"
)

const (
	DefaultProcessInterval = 100 * time.Millisecond
	MinProcessInterval     = 10 * time.Millisecond
)

// ErrNotRunning reports a blocking call against a stopped manager
var ErrNotRunning = errors.New("display manager not running")

// Options configures a Manager; zero values select defaults
type Options struct {
	MaxItems        int
	DefaultDuration time.Duration
	ProcessInterval time.Duration
	Registry        *strategy.Registry
	Stats           *status.Registry
	Clock           core.Clock
	Logger          *slog.Logger
}

// Manager drives the display queue from a single scheduling task
// All methods must be called from that task; counters are atomics only so
// other tasks may read statistics
type Manager struct {
	display display.Display
	queue   *queue.Queue
	clock   core.Clock
	log     *slog.Logger
	stats   *status.Registry

	interval    time.Duration
	lastProcess time.Time
	running     atomic.Bool
	uptimeStart time.Time

	statRenderTotal *status.AtomicFloat
	statRenderAvg   *status.AtomicFloat
	statRenders     *atomic.Int64
	statErrors      *atomic.Int64
}

// New creates a manager for the given display
func New(d display.Display, opts Options) *Manager {
	if opts.Registry == nil {
		opts.Registry = strategy.NewDefaultRegistry()
	}
	if opts.Stats == nil {
		opts.Stats = status.NewRegistry()
	}
	if opts.Clock == nil {
		opts.Clock = core.NewSystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ProcessInterval <= 0 {
		opts.ProcessInterval = DefaultProcessInterval
	}
	if opts.ProcessInterval < MinProcessInterval {
		opts.ProcessInterval = MinProcessInterval
	}

	q := queue.New(opts.Registry, opts.Stats, queue.Options{
		MaxItems:        opts.MaxItems,
		DefaultDuration: opts.DefaultDuration,
		Clock:           opts.Clock,
		Logger:          opts.Logger,
	})

	return &Manager{
		display:         d,
		queue:           q,
		clock:           opts.Clock,
		log:             opts.Logger,
		stats:           opts.Stats,
		interval:        opts.ProcessInterval,
		statRenderTotal: opts.Stats.Floats.Get("manager.render_time_total"),
		statRenderAvg:   opts.Stats.Floats.Get("manager.render_time_avg"),
		statRenders:     opts.Stats.Ints.Get("manager.renders_completed"),
		statErrors:      opts.Stats.Ints.Get("queue.render_errors"),
	}
}

// Queue returns the underlying display queue
func (m *Manager) Queue() *queue.Queue {
	return m.queue
}

// Start marks the manager running and resets the uptime origin
func (m *Manager) Start() {
	if m.running.CompareAndSwap(false, true) {
		m.uptimeStart = m.clock.Now()
		m.log.Info("display manager started",
			"width", m.display.Width(),
			"height", m.display.Height(),
			"interval", m.interval)
	}
}

// Stop halts processing and blanks the display
func (m *Manager) Stop() {
	if m.running.CompareAndSwap(true, false) {
		m.display.Clear()
		if err := m.display.Show(); err != nil {
			m.log.Error("display blank failed", "error", err)
		}
		m.log.Info("display manager stopped")
	}
}

// ProcessQueue runs one tick if the process interval has elapsed
// Returns true while the manager is running; errors never halt processing
func (m *Manager) ProcessQueue() bool {
	if !m.running.Load() {
		return false
	}

	now := m.clock.Now()
	if now.Sub(m.lastProcess) < m.interval {
		return true
	}
	m.lastProcess = now

	renderStart := m.clock.Now()
	if m.queue.ProcessNext(m.display) {
		renderTime := m.clock.Now().Sub(renderStart).Seconds()
		m.statRenderTotal.Add(renderTime)
		renders := m.statRenders.Add(1)
		m.statRenderAvg.Store(m.statRenderTotal.Load() / float64(renders))
	}

	if err := m.display.Show(); err != nil {
		m.log.Error("display show failed", "error", err)
		m.statErrors.Add(1)
	}
	return true
}

// Run ticks the manager until the context is canceled
func (m *Manager) Run(ctx context.Context) error {
	m.Start()
	defer m.Stop()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.ProcessQueue()
		}
	}
}

// AddItem builds and admits an item in one call
func (m *Manager) AddItem(strategyName string, data strategy.Data, priority core.Priority,
	duration time.Duration, effects ...effect.Effect) bool {
	item := queue.NewItem(strategyName, data, priority, m.clock)
	if duration > 0 {
		item.WithDuration(duration)
	}
	item.WithEffect(effects...)
	return m.queue.Add(item)
}

// AddDisplayItem admits a pre-built item
func (m *Manager) AddDisplayItem(item *queue.Item) bool {
	return m.queue.Add(item)
}

// ShowText schedules static text
func (m *Manager) ShowText(text string, duration time.Duration, priority core.Priority) bool {
	return m.AddItem(strategy.StaticTextName, strategy.Data{"text": text}, priority, duration)
}

// ShowScrollingText schedules scrolling text with its recommended duration
func (m *Manager) ShowScrollingText(text string, priority core.Priority) bool {
	return m.AddItem(strategy.ScrollingTextName, strategy.Data{"text": text}, priority, 0)
}

// ShowAlert schedules a red high-priority message
func (m *Manager) ShowAlert(message string) bool {
	data := strategy.Data{"text": message, "color": core.ColorRed}
	return m.AddItem(strategy.StaticTextName, data, core.PriorityHigh, 3*time.Second)
}

// ShowSequence schedules items one at a time, waiting for each to leave
// the display before admitting the next
// Items the queue rejects are skipped. Fails fast with ErrNotRunning
// rather than spinning against a stopped manager.
func (m *Manager) ShowSequence(ctx context.Context, items []*queue.Item) error {
	for _, item := range items {
		if !m.running.Load() {
			return ErrNotRunning
		}
		if !m.queue.Add(item) {
			continue
		}
		for m.queue.Current() != nil || m.queue.Depth() > 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !m.ProcessQueue() {
				return ErrNotRunning
			}
			m.clock.Sleep(m.interval)
		}
	}
	return nil
}

// ClearQueue drops all pending and current items
func (m *Manager) ClearQueue() {
	m.queue.Clear()
}

// QueueDepth returns the number of pending items
func (m *Manager) QueueDepth() int {
	return m.queue.Depth()
}

// CurrentItem returns the item on display, or nil
func (m *Manager) CurrentItem() *queue.Item {
	return m.queue.Current()
}

// ProcessInterval returns the current tick spacing
func (m *Manager) ProcessInterval() time.Duration {
	return m.interval
}

// SetProcessInterval adjusts tick spacing, floored at 10ms
func (m *Manager) SetProcessInterval(interval time.Duration) {
	if interval < MinProcessInterval {
		interval = MinProcessInterval
	}
	m.interval = interval
}
