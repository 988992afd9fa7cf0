package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
)

func testDisplay(w, h int) (*display.FrameBuffer, *core.MockClock) {
	clock := core.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return display.NewFrameBuffer(w, h, clock), clock
}

func TestStaticTextRender(t *testing.T) {
	d, _ := testDisplay(16, 16)
	s := &StaticText{}

	err := s.Render(d, Data{"text": "OK", "x": 2, "y": 3, "color": core.ColorGreen})
	require.NoError(t, err)

	assert.Equal(t, 'O', d.Cell(2, 3).Glyph)
	assert.Equal(t, 'K', d.Cell(3, 3).Glyph)
	assert.Equal(t, core.ColorGreen, d.Cell(2, 3).Color)
}

func TestStaticTextDefaults(t *testing.T) {
	d, _ := testDisplay(16, 16)
	s := &StaticText{}

	require.NoError(t, s.Render(d, Data{"text": "A"}))
	assert.Equal(t, 'A', d.Cell(0, 10).Glyph)
	assert.Equal(t, core.ColorWhite, d.Cell(0, 10).Color)
}

func TestStaticTextValidate(t *testing.T) {
	s := &StaticText{}
	assert.True(t, s.Validate(Data{"text": "x"}))
	assert.False(t, s.Validate(Data{}))
	assert.False(t, s.Validate(Data{"text": 42}))
}

func TestStaticTextNoDurationRecommendation(t *testing.T) {
	s := &StaticText{}
	_, ok := s.RenderDuration(Data{"text": "x"})
	assert.False(t, ok)
}

func TestScrollingTextRenderCompletes(t *testing.T) {
	d, clock := testDisplay(10, 16)
	s := &ScrollingText{}

	err := s.Render(d, Data{"text": "abc", "speed": 10 * time.Millisecond})
	require.NoError(t, err)

	// The scroll ran to completion, consuming one delay per pixel of travel
	assert.Equal(t, time.Duration(10+3)*10*time.Millisecond, clock.Slept())
}

func TestScrollingTextDuration(t *testing.T) {
	s := &ScrollingText{}

	tests := []struct {
		name string
		data Data
		want time.Duration
	}{
		{
			"Default speed",
			Data{"text": "abcd"},
			time.Duration(4*6)*50*time.Millisecond + 2*time.Second,
		},
		{
			"Custom speed",
			Data{"text": "ab", "speed": 100 * time.Millisecond},
			time.Duration(2*6)*100*time.Millisecond + 2*time.Second,
		},
		{
			"Empty text leaves the tail",
			Data{"text": ""},
			2 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dur, ok := s.RenderDuration(tt.data)
			assert.True(t, ok)
			assert.Equal(t, tt.want, dur)
		})
	}
}

func TestScrollingTextValidate(t *testing.T) {
	s := &ScrollingText{}
	assert.True(t, s.Validate(Data{"text": "x"}))
	assert.False(t, s.Validate(Data{"speed": time.Second}))
}
