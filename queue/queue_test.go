package queue

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/display"
	"github.com/lixenwraith/marquee/effect"
	"github.com/lixenwraith/marquee/status"
	"github.com/lixenwraith/marquee/strategy"
)

// fakeStrategy renders nothing and exposes full control to the tests
type fakeStrategy struct {
	renderErr error
	rejectAll bool
	dur       time.Duration
	hasDur    bool
	renders   int
}

func (s *fakeStrategy) Render(d display.Display, data strategy.Data) error {
	s.renders++
	return s.renderErr
}

func (s *fakeStrategy) Validate(data strategy.Data) bool {
	return !s.rejectAll
}

func (s *fakeStrategy) RenderDuration(data strategy.Data) (time.Duration, bool) {
	return s.dur, s.hasDur
}

type fixture struct {
	q     *Queue
	clock *core.MockClock
	d     *display.FrameBuffer
	stats *status.Registry
	fake  *fakeStrategy
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	clock := core.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	opts.Clock = clock

	fake := &fakeStrategy{}
	reg := strategy.NewRegistry()
	reg.Register("fake", func() strategy.Strategy { return fake })

	stats := status.NewRegistry()
	return &fixture{
		q:     New(reg, stats, opts),
		clock: clock,
		d:     display.NewFrameBuffer(16, 16, clock),
		stats: stats,
		fake:  fake,
	}
}

func (f *fixture) item(priority core.Priority) *Item {
	return NewItem("fake", strategy.Data{}, priority, f.clock)
}

func (f *fixture) counter(name string) int64 {
	return f.stats.Ints.Get(name).Load()
}

func TestProcessNextPriorityOrder(t *testing.T) {
	f := newFixture(t, Options{DefaultDuration: time.Second})

	low := f.item(core.PriorityLow).WithMeta("id", "low")
	high := f.item(core.PriorityHigh).WithMeta("id", "high")
	normal := f.item(core.PriorityNormal).WithMeta("id", "normal")

	require.True(t, f.q.Add(low))
	require.True(t, f.q.Add(high))
	require.True(t, f.q.Add(normal))

	var order []string
	for i := 0; i < 3; i++ {
		require.True(t, f.q.ProcessNext(f.d))
		id, _ := f.q.Current().Meta("id")
		order = append(order, id.(string))
		f.clock.Advance(2 * time.Second)
	}

	assert.Equal(t, []string{"high", "normal", "low"}, order)
	assert.Equal(t, int64(3), f.counter("queue.items_processed"))
}

func TestProcessNextFIFOWithinPriority(t *testing.T) {
	f := newFixture(t, Options{DefaultDuration: time.Second})

	// Identical creation times fall back to admission order
	first := f.item(core.PriorityNormal).WithMeta("id", "first")
	second := f.item(core.PriorityNormal).WithMeta("id", "second")
	require.True(t, f.q.Add(first))
	require.True(t, f.q.Add(second))

	require.True(t, f.q.ProcessNext(f.d))
	id, _ := f.q.Current().Meta("id")
	assert.Equal(t, "first", id)
}

func TestProcessNextEmptyQueue(t *testing.T) {
	f := newFixture(t, Options{})
	assert.False(t, f.q.ProcessNext(f.d))
	assert.Nil(t, f.q.Current())
}

func TestContinuationWindow(t *testing.T) {
	f := newFixture(t, Options{})

	item := f.item(core.PriorityNormal).WithDuration(2 * time.Second)
	next := f.item(core.PriorityNormal).WithMeta("id", "next")
	require.True(t, f.q.Add(item))
	require.True(t, f.q.Add(next))

	require.True(t, f.q.ProcessNext(f.d))
	assert.Same(t, item, f.q.Current())
	assert.Equal(t, 1, f.fake.renders)

	// Still inside the window: no re-render, same item
	f.clock.Advance(1 * time.Second)
	require.True(t, f.q.ProcessNext(f.d))
	assert.Same(t, item, f.q.Current())
	assert.Equal(t, 1, f.fake.renders)

	f.clock.Advance(900 * time.Millisecond)
	require.True(t, f.q.ProcessNext(f.d))
	assert.Same(t, item, f.q.Current())

	// Window closed: the next item takes over
	f.clock.Advance(200 * time.Millisecond)
	require.True(t, f.q.ProcessNext(f.d))
	assert.Same(t, next, f.q.Current())
	assert.Equal(t, 2, f.fake.renders)
}

func TestEffectiveDurationPrecedence(t *testing.T) {
	f := newFixture(t, Options{DefaultDuration: 5 * time.Second})

	// Strategy recommendation applies when the item has no duration
	f.fake.dur = 3 * time.Second
	f.fake.hasDur = true
	item := f.item(core.PriorityNormal)
	assert.Equal(t, 3*time.Second, f.q.effectiveDuration(item))

	// Item duration overrides the recommendation
	item.WithDuration(time.Second)
	assert.Equal(t, time.Second, f.q.effectiveDuration(item))

	// Queue default is the last resort
	f.fake.hasDur = false
	plain := f.item(core.PriorityNormal)
	assert.Equal(t, 5*time.Second, f.q.effectiveDuration(plain))
}

func TestAddRejectsExpiredItem(t *testing.T) {
	f := newFixture(t, Options{})

	item := f.item(core.PriorityNormal).WithExpiry(f.clock.Now().Add(-time.Second))
	assert.False(t, f.q.Add(item))
	assert.Equal(t, int64(1), f.counter("queue.items_expired"))
}

func TestAddRejectsInvalidData(t *testing.T) {
	f := newFixture(t, Options{})
	f.fake.rejectAll = true

	assert.False(t, f.q.Add(f.item(core.PriorityNormal)))
	assert.Equal(t, 0, f.q.Depth())
}

func TestAddAdmitsUnknownStrategy(t *testing.T) {
	f := newFixture(t, Options{})

	// Validation is advisory; failure surfaces at render time
	item := NewItem("no_such_strategy", strategy.Data{}, core.PriorityNormal, f.clock)
	assert.True(t, f.q.Add(item))

	assert.False(t, f.q.ProcessNext(f.d))
	assert.Equal(t, int64(1), f.counter("queue.render_errors"))
	assert.Nil(t, f.q.Current())
}

func TestRenderFailureFallsThrough(t *testing.T) {
	f := newFixture(t, Options{})

	bad := NewItem("no_such_strategy", strategy.Data{}, core.PriorityHigh, f.clock)
	good := f.item(core.PriorityNormal)
	require.True(t, f.q.Add(bad))
	require.True(t, f.q.Add(good))

	// The corrupt item is discarded and the next one renders on the
	// same call
	require.True(t, f.q.ProcessNext(f.d))
	assert.Same(t, good, f.q.Current())
	assert.Equal(t, int64(1), f.counter("queue.render_errors"))
	assert.Equal(t, int64(1), f.counter("queue.items_processed"))
}

func TestRenderErrorFromStrategy(t *testing.T) {
	f := newFixture(t, Options{})
	f.fake.renderErr = errors.New("hardware fault")

	require.True(t, f.q.Add(f.item(core.PriorityNormal)))
	assert.False(t, f.q.ProcessNext(f.d))
	assert.Equal(t, int64(1), f.counter("queue.render_errors"))
	assert.Equal(t, int64(0), f.counter("queue.items_processed"))
}

func TestEvictionAtCapacity(t *testing.T) {
	f := newFixture(t, Options{MaxItems: 2})

	a := f.item(core.PriorityLow).WithMeta("id", "a")
	f.clock.Advance(time.Second)
	b := f.item(core.PriorityLow).WithMeta("id", "b")
	require.True(t, f.q.Add(a))
	require.True(t, f.q.Add(b))

	// Equal priority never evicts
	c := f.item(core.PriorityLow)
	assert.False(t, f.q.Add(c))
	assert.Equal(t, int64(1), f.counter("queue.items_dropped"))

	// Strictly higher priority evicts the weakest: lowest priority,
	// latest creation
	d := f.item(core.PriorityNormal).WithMeta("id", "d")
	assert.True(t, f.q.Add(d))
	assert.Equal(t, 2, f.q.Depth())

	var ids []string
	for f.q.ProcessNext(f.d) {
		id, _ := f.q.Current().Meta("id")
		ids = append(ids, id.(string))
		f.clock.Advance(10 * time.Second)
	}
	assert.Equal(t, []string{"d", "a"}, ids)
}

func TestPendingExpiryPurged(t *testing.T) {
	f := newFixture(t, Options{})

	stale := f.item(core.PriorityHigh).WithExpiry(f.clock.Now().Add(time.Second))
	live := f.item(core.PriorityLow).WithMeta("id", "live")
	require.True(t, f.q.Add(stale))
	require.True(t, f.q.Add(live))

	f.clock.Advance(2 * time.Second)
	require.True(t, f.q.ProcessNext(f.d))

	id, _ := f.q.Current().Meta("id")
	assert.Equal(t, "live", id)
	assert.Equal(t, int64(1), f.counter("queue.items_expired"))
}

func TestCurrentItemExpiryEndsContinuation(t *testing.T) {
	f := newFixture(t, Options{})

	item := f.item(core.PriorityNormal).
		WithDuration(time.Minute).
		WithExpiry(f.clock.Now().Add(2 * time.Second))
	require.True(t, f.q.Add(item))
	require.True(t, f.q.ProcessNext(f.d))

	// Expiration cuts the window short even mid-duration
	f.clock.Advance(3 * time.Second)
	assert.False(t, f.q.ProcessNext(f.d))
	assert.Nil(t, f.q.Current())
}

func TestEffectsWrapRender(t *testing.T) {
	f := newFixture(t, Options{})

	var trace []string
	item := f.item(core.PriorityNormal).WithEffect(
		&orderEffect{name: "e1", trace: &trace},
		&orderEffect{name: "e2", trace: &trace},
	)
	require.True(t, f.q.Add(item))
	require.True(t, f.q.ProcessNext(f.d))

	// First added runs innermost
	assert.Equal(t, []string{"e2", "e1"}, trace)
	assert.Equal(t, 1, f.fake.renders)
}

// orderEffect records invocation order before delegating
type orderEffect struct {
	name  string
	trace *[]string
}

func (e *orderEffect) TotalDuration() time.Duration { return 0 }

func (e *orderEffect) Apply(d display.Display, render effect.RenderFunc) error {
	*e.trace = append(*e.trace, e.name)
	return render()
}

func TestClear(t *testing.T) {
	f := newFixture(t, Options{})

	require.True(t, f.q.Add(f.item(core.PriorityNormal)))
	require.True(t, f.q.Add(f.item(core.PriorityNormal)))
	require.True(t, f.q.ProcessNext(f.d))

	f.q.Clear()
	assert.Equal(t, 0, f.q.Depth())
	assert.Nil(t, f.q.Current())
	assert.False(t, f.q.ProcessNext(f.d))
}

func TestItemsByPriority(t *testing.T) {
	f := newFixture(t, Options{})

	require.True(t, f.q.Add(f.item(core.PriorityLow)))
	require.True(t, f.q.Add(f.item(core.PriorityHigh)))
	require.True(t, f.q.Add(f.item(core.PriorityHigh)))

	assert.Len(t, f.q.ItemsByPriority(core.PriorityHigh), 2)
	assert.Len(t, f.q.ItemsByPriority(core.PriorityLow), 1)
	assert.Empty(t, f.q.ItemsByPriority(core.PriorityUrgent))
}

func TestRemoveByMeta(t *testing.T) {
	f := newFixture(t, Options{})

	require.True(t, f.q.Add(f.item(core.PriorityNormal).WithMeta("source", "sensor")))
	require.True(t, f.q.Add(f.item(core.PriorityNormal).WithMeta("source", "sensor")))
	require.True(t, f.q.Add(f.item(core.PriorityNormal).WithMeta("source", "user")))

	assert.Equal(t, 2, f.q.RemoveByMeta("source", "sensor"))
	assert.Equal(t, 1, f.q.Depth())
	assert.Equal(t, 0, f.q.RemoveByMeta("source", "sensor"))
}

func TestDepthMaxTracked(t *testing.T) {
	f := newFixture(t, Options{})

	for i := 0; i < 5; i++ {
		require.True(t, f.q.Add(f.item(core.PriorityNormal)))
	}
	require.True(t, f.q.ProcessNext(f.d))
	assert.Equal(t, int64(5), f.counter("queue.depth_max"))
}
