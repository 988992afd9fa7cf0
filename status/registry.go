// Package status holds the scheduler's metrics: lock-free atomic counters
// registered by name. The queue and manager cache pointers at construction
// and write directly during ticks.
package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 with atomic load/store semantics
type AtomicFloat struct {
	bits atomic.Uint64
}

// Load returns the current value
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Store sets the value
func (f *AtomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Add increments the value
// Single-writer counters only; concurrent adders may lose updates
func (f *AtomicFloat) Add(v float64) {
	f.Store(f.Load() + v)
}

// Registry is the central metrics facade
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Snapshot copies every metric into plain maps for reporting
func (r *Registry) Snapshot() (ints map[string]int64, floats map[string]float64) {
	ints = make(map[string]int64, r.Ints.Count())
	floats = make(map[string]float64, r.Floats.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		ints[key] = ptr.Load()
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		floats[key] = ptr.Load()
	})
	return ints, floats
}
