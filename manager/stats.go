package manager

import (
	"time"
)

// QueueStats is a point-in-time snapshot of queue counters
type QueueStats struct {
	ItemsProcessed int64
	ItemsExpired   int64
	ItemsDropped   int64
	QueueDepthMax  int64
	Depth          int
	CurrentItem    string
}

// Stats is a point-in-time snapshot of manager and queue statistics
type Stats struct {
	RenderTimeTotal   time.Duration
	RenderTimeAvg     time.Duration
	RendersCompleted  int64
	ErrorsEncountered int64
	Uptime            time.Duration
	Running           bool
	ProcessInterval   time.Duration

	DisplayWidth  int
	DisplayHeight int

	Queue QueueStats
}

// Statistics snapshots all counters
func (m *Manager) Statistics() Stats {
	current := ""
	if item := m.queue.Current(); item != nil {
		current = item.Strategy
	}

	var uptime time.Duration
	if m.running.Load() {
		uptime = m.clock.Now().Sub(m.uptimeStart)
	}

	return Stats{
		RenderTimeTotal:   time.Duration(m.statRenderTotal.Load() * float64(time.Second)),
		RenderTimeAvg:     time.Duration(m.statRenderAvg.Load() * float64(time.Second)),
		RendersCompleted:  m.statRenders.Load(),
		ErrorsEncountered: m.statErrors.Load(),
		Uptime:            uptime,
		Running:           m.running.Load(),
		ProcessInterval:   m.interval,
		DisplayWidth:      m.display.Width(),
		DisplayHeight:     m.display.Height(),
		Queue: QueueStats{
			ItemsProcessed: m.stats.Ints.Get("queue.items_processed").Load(),
			ItemsExpired:   m.stats.Ints.Get("queue.items_expired").Load(),
			ItemsDropped:   m.stats.Ints.Get("queue.items_dropped").Load(),
			QueueDepthMax:  m.stats.Ints.Get("queue.depth_max").Load(),
			Depth:          m.queue.Depth(),
			CurrentItem:    current,
		},
	}
}
