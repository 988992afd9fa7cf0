package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	r.Register("custom", func() Strategy { return &StaticText{} })

	s, err := r.Resolve("custom")
	require.NoError(t, err)
	assert.NotNil(t, s)

	assert.True(t, r.Has("custom"))
	assert.False(t, r.Has("missing"))
}

func TestRegistryResolveUnknown(t *testing.T) {
	r := NewRegistry()

	s, err := r.Resolve("nope")
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestRegistryReplaceRegistration(t *testing.T) {
	r := NewRegistry()
	r.Register("name", func() Strategy { return &StaticText{} })
	r.Register("name", func() Strategy { return &ScrollingText{} })

	s, err := r.Resolve("name")
	require.NoError(t, err)
	_, ok := s.(*ScrollingText)
	assert.True(t, ok)
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("zebra", func() Strategy { return &StaticText{} })
	r.Register("alpha", func() Strategy { return &StaticText{} })

	assert.Equal(t, []string{"alpha", "zebra"}, r.Names())
}

func TestDefaultRegistryBuiltins(t *testing.T) {
	r := NewDefaultRegistry()
	assert.True(t, r.Has(StaticTextName))
	assert.True(t, r.Has(ScrollingTextName))
}

func TestDataAccessors(t *testing.T) {
	d := Data{
		"text":  "hello",
		"x":     5,
		"ratio": 0.5,
		"speed": 100 * time.Millisecond,
	}

	assert.Equal(t, "hello", d.Text("text", ""))
	assert.Equal(t, "fb", d.Text("missing", "fb"))
	assert.Equal(t, 5, d.Int("x", 0))
	assert.Equal(t, 9, d.Int("missing", 9))
	assert.Equal(t, 0.5, d.Float("ratio", 0))
	assert.Equal(t, 100*time.Millisecond, d.Duration("speed", 0))
	assert.Equal(t, time.Second, d.Duration("missing", time.Second))

	// Numeric cross-typing
	assert.Equal(t, 3, Data{"n": 3.0}.Int("n", 0))
	assert.Equal(t, 5.0, d.Float("x", 0))
	assert.Equal(t, 1500*time.Millisecond, Data{"t": 1.5}.Duration("t", 0))
}
