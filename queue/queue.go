package queue

import (
	"container/heap"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
	"github.com/lixenwraith/marquee/effect"
	"github.com/lixenwraith/marquee/status"
	"github.com/lixenwraith/marquee/strategy"
)

const (
	DefaultMaxItems = 100
	DefaultDuration = 5 * time.Second
)

// Options configures a Queue; zero values select defaults
type Options struct {
	MaxItems        int
	DefaultDuration time.Duration
	Clock           core.Clock
	Logger          *slog.Logger
}

// Queue is the priority-ordered admission/continuation/eviction engine
// It resolves strategies, wraps them with item effects and executes the
// render. Not safe for concurrent use; one scheduling task drives it.
type Queue struct {
	maxItems        int
	defaultDuration time.Duration
	registry        *strategy.Registry
	clock           core.Clock
	log             *slog.Logger

	pending itemHeap
	seq     uint64

	current   *Item
	startedAt time.Time

	statProcessed *atomic.Int64
	statExpired   *atomic.Int64
	statDropped   *atomic.Int64
	statDepthMax  *atomic.Int64
	statErrors    *atomic.Int64
}

// New creates a queue rendering through the given strategy registry
// Counters register into stats under the "queue." prefix
func New(registry *strategy.Registry, stats *status.Registry, opts Options) *Queue {
	if registry == nil {
		registry = strategy.NewDefaultRegistry()
	}
	if stats == nil {
		stats = status.NewRegistry()
	}
	if opts.MaxItems <= 0 {
		opts.MaxItems = DefaultMaxItems
	}
	if opts.DefaultDuration <= 0 {
		opts.DefaultDuration = DefaultDuration
	}
	if opts.Clock == nil {
		opts.Clock = core.NewSystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Queue{
		maxItems:        opts.MaxItems,
		defaultDuration: opts.DefaultDuration,
		registry:        registry,
		clock:           opts.Clock,
		log:             opts.Logger,
		statProcessed:   stats.Ints.Get("queue.items_processed"),
		statExpired:     stats.Ints.Get("queue.items_expired"),
		statDropped:     stats.Ints.Get("queue.items_dropped"),
		statDepthMax:    stats.Ints.Get("queue.depth_max"),
		statErrors:      stats.Ints.Get("queue.render_errors"),
	}
}

// Registry returns the strategy registry the queue renders through
func (q *Queue) Registry() *strategy.Registry {
	return q.registry
}

// Add admits an item, reporting rejection as false, never as an error
// Rejection reasons: already expired, strategy validation failure, or a
// lost eviction contest at capacity
func (q *Queue) Add(item *Item) bool {
	if item.Expired(q.clock.Now()) {
		q.statExpired.Add(1)
		return false
	}

	// Validation is advisory: an unregistered name admits and fails at
	// render time instead
	if s, err := q.registry.Resolve(item.Strategy); err == nil {
		if !s.Validate(item.Data) {
			return false
		}
	}

	if len(q.pending) >= q.maxItems {
		if !q.evictFor(item) {
			q.statDropped.Add(1)
			return false
		}
	}

	q.seq++
	item.seq = q.seq
	heap.Push(&q.pending, item)

	if depth := int64(len(q.pending)); depth > q.statDepthMax.Load() {
		q.statDepthMax.Store(depth)
	}
	return true
}

// evictFor removes the weakest pending item if the newcomer outranks it
// The weakest item has the lowest priority, ties broken by latest creation
func (q *Queue) evictFor(newItem *Item) bool {
	if len(q.pending) == 0 {
		return true
	}

	weakest := 0
	for i := 1; i < len(q.pending); i++ {
		if q.weaker(q.pending[i], q.pending[weakest]) {
			weakest = i
		}
	}

	if newItem.Priority > q.pending[weakest].Priority {
		heap.Remove(&q.pending, weakest)
		return true
	}
	return false
}

// weaker orders eviction candidates: lower priority first, then later
// creation time
func (q *Queue) weaker(a, b *Item) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// ProcessNext advances the queue by one tick
// Returns true while something is on display. A failing item is logged,
// discarded and the next pending item is tried on the same call; one
// corrupt item never stalls the queue.
func (q *Queue) ProcessNext(d display.Display) bool {
	q.purgeExpired()

	now := q.clock.Now()
	if q.current != nil && q.shouldContinue(now) {
		return true
	}

	for {
		item := q.popLive()
		if item == nil {
			q.current = nil
			q.startedAt = time.Time{}
			return false
		}

		q.current = item
		q.startedAt = q.clock.Now()

		if err := q.render(d, item); err != nil {
			q.log.Error("display item render failed",
				"strategy", item.Strategy,
				"priority", item.Priority.String(),
				"error", err)
			q.statErrors.Add(1)
			q.current = nil
			q.startedAt = time.Time{}
			continue
		}

		q.statProcessed.Add(1)
		return true
	}
}

// render resolves the item's strategy, folds its effects around the base
// render and executes the result
func (q *Queue) render(d display.Display, item *Item) error {
	s, err := q.registry.Resolve(item.Strategy)
	if err != nil {
		return err
	}

	base := func() error {
		return s.Render(d, item.Data)
	}
	return effect.Compose(d, base, item.Effects)()
}

// shouldContinue reports whether the current item's continuation window
// is still open at now
func (q *Queue) shouldContinue(now time.Time) bool {
	if q.current == nil || q.startedAt.IsZero() {
		return false
	}
	if q.current.Expired(now) {
		return false
	}
	return now.Sub(q.startedAt) < q.effectiveDuration(q.current)
}

// effectiveDuration resolves item duration, then the strategy
// recommendation, then the queue default
func (q *Queue) effectiveDuration(item *Item) time.Duration {
	if item.Duration > 0 {
		return item.Duration
	}
	if s, err := q.registry.Resolve(item.Strategy); err == nil {
		if dur, ok := s.RenderDuration(item.Data); ok {
			return dur
		}
	}
	return q.defaultDuration
}

// popLive pops pending items in priority order, discarding expired ones
func (q *Queue) popLive() *Item {
	now := q.clock.Now()
	for len(q.pending) > 0 {
		item := heap.Pop(&q.pending).(*Item)
		if item.Expired(now) {
			q.statExpired.Add(1)
			continue
		}
		return item
	}
	return nil
}

// purgeExpired drops every expired pending item
func (q *Queue) purgeExpired() {
	now := q.clock.Now()
	kept := q.pending[:0]
	removed := 0
	for _, item := range q.pending {
		if item.Expired(now) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	if removed > 0 {
		q.pending = kept
		heap.Init(&q.pending)
		q.statExpired.Add(int64(removed))
	}
}

// Clear drops all pending items and the current item state
func (q *Queue) Clear() {
	q.pending = q.pending[:0]
	q.current = nil
	q.startedAt = time.Time{}
}

// Depth returns the number of pending items
func (q *Queue) Depth() int {
	return len(q.pending)
}

// Current returns the item on display, or nil
func (q *Queue) Current() *Item {
	return q.current
}

// ItemsByPriority returns pending items in the given tier
func (q *Queue) ItemsByPriority(p core.Priority) []*Item {
	var out []*Item
	for _, item := range q.pending {
		if item.Priority == p {
			out = append(out, item)
		}
	}
	return out
}

// RemoveByMeta drops pending items whose metadata matches, returning the
// count removed
func (q *Queue) RemoveByMeta(key string, value any) int {
	kept := q.pending[:0]
	removed := 0
	for _, item := range q.pending {
		if v, ok := item.Meta(key); ok && v == value {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	if removed > 0 {
		q.pending = kept
		heap.Init(&q.pending)
	}
	return removed
}
