// Package queue arbitrates which single content item a display shows:
// priority-ordered admission, eviction under capacity pressure, and
// continuation windows for the current item.
package queue

import (
	"time"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/effect"
	"github.com/lixenwraith/marquee/strategy"
)

// Item is one schedulable content unit plus its scheduling metadata
// The queue owns the item once admitted; callers must not mutate it after
// a successful Add
type Item struct {
	Strategy string
	Data     strategy.Data
	Priority core.Priority
	// Duration overrides the strategy recommendation and queue default
	// when positive
	Duration time.Duration
	// ExpiresAt drops the item once passed; zero means no expiration
	ExpiresAt time.Time
	Effects   []effect.Effect

	// CreatedAt is stamped at construction and never changes
	CreatedAt time.Time

	meta map[string]any
	// seq breaks creation-time ties so heap ordering is strict
	seq uint64
}

// NewItem creates an item for the named strategy
func NewItem(strategyName string, data strategy.Data, priority core.Priority, clock core.Clock) *Item {
	if clock == nil {
		clock = core.NewSystemClock()
	}
	return &Item{
		Strategy:  strategyName,
		Data:      data,
		Priority:  priority,
		CreatedAt: clock.Now(),
	}
}

// WithDuration sets the display duration, chainable
func (it *Item) WithDuration(d time.Duration) *Item {
	it.Duration = d
	return it
}

// WithExpiry sets an absolute expiration, chainable
func (it *Item) WithExpiry(t time.Time) *Item {
	it.ExpiresAt = t
	return it
}

// WithEffect appends effects in application order: the first added runs
// innermost, the last added controls the overall timing envelope
func (it *Item) WithEffect(effects ...effect.Effect) *Item {
	it.Effects = append(it.Effects, effects...)
	return it
}

// WithMeta attaches caller metadata, chainable
func (it *Item) WithMeta(key string, value any) *Item {
	if it.meta == nil {
		it.meta = make(map[string]any)
	}
	it.meta[key] = value
	return it
}

// Meta returns caller metadata for key
func (it *Item) Meta(key string) (any, bool) {
	v, ok := it.meta[key]
	return v, ok
}

// Expired reports whether the item's expiration has passed at now
func (it *Item) Expired(now time.Time) bool {
	return !it.ExpiresAt.IsZero() && now.After(it.ExpiresAt)
}

// Before orders items for scheduling: higher priority first, then earlier
// creation, then admission order
func (it *Item) Before(other *Item) bool {
	if it.Priority != other.Priority {
		return it.Priority > other.Priority
	}
	if !it.CreatedAt.Equal(other.CreatedAt) {
		return it.CreatedAt.Before(other.CreatedAt)
	}
	return it.seq < other.seq
}

// itemHeap is a max-heap over scheduling order
type itemHeap []*Item

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return h[i].Before(h[j]) }
func (h itemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x any)         { *h = append(*h, x.(*Item)) }
func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}
