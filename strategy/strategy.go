// Package strategy maps content names to stateless renderers.
// A strategy turns an opaque data map into display output and may
// recommend how long the result should stay visible.
package strategy

import (
	"time"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
)

// Data is the opaque payload a strategy renders
type Data map[string]any

// Strategy renders one kind of content
// Implementations are stateless per registration and identified only by
// their registered name
type Strategy interface {
	// Render draws the content; it may block across animation frames
	Render(d display.Display, data Data) error
	// Validate reports whether the data is renderable by this strategy
	Validate(data Data) bool
	// RenderDuration recommends a display duration for this data
	// ok is false when the strategy has no recommendation
	RenderDuration(data Data) (dur time.Duration, ok bool)
}

// Text returns a string field or fallback
func (d Data) Text(key, fallback string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return fallback
}

// Int returns an integer field or fallback
func (d Data) Int(key string, fallback int) int {
	switch v := d[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return fallback
}

// Float returns a float field or fallback
func (d Data) Float(key string, fallback float64) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return fallback
}

// Color returns a color field or fallback
func (d Data) Color(key string, fallback core.Color) core.Color {
	switch v := d[key].(type) {
	case core.Color:
		return v
	case uint32:
		return core.Color(v)
	case int:
		return core.Color(v)
	}
	return fallback
}

// Duration returns a duration field or fallback
func (d Data) Duration(key string, fallback time.Duration) time.Duration {
	switch v := d[key].(type) {
	case time.Duration:
		return v
	case float64:
		return time.Duration(v * float64(time.Second))
	}
	return fallback
}
