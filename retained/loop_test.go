package retained

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/stickyscroll/render"
)

func TestLoopRendersOnlyWhenDirty(t *testing.T) {
	clock := newFakeClock()
	s := newTestSticky(t, clock)
	s.SetContent(Container(block(200, 50, "sticky-nonconstant"), block(250, 1000, "")))
	s.Layout(300, 400)

	var seen []uint64
	loop := NewLoop(s.ScrollView, LoopConfig{OnFrame: func(f *Frame) { seen = append(seen, f.Number) }})
	assert.Equal(t, time.Second/60, loop.FrameInterval())

	first := loop.Tick()
	assert.True(t, first.Rendered)
	assert.True(t, first.FullDamage)

	idle := loop.Tick()
	assert.False(t, idle.Rendered)
	assert.Empty(t, idle.Commands.Commands)

	// Pinning a non-constant view schedules redraws of its rectangle.
	s.ScrollTo(250)
	loop.Tick()

	clock.Advance(16 * time.Millisecond)
	tick := loop.Tick()
	assert.Equal(t, 1, tick.TasksRun)
	require.True(t, tick.Rendered)
	assert.False(t, tick.FullDamage)
	assert.Equal(t, []render.Rect{{Left: 0, Top: 250, Right: 300, Bottom: 300}}, tick.Damage)

	stats := loop.Stats()
	assert.Equal(t, uint64(4), stats.Frames)
	assert.Equal(t, uint64(3), stats.Rendered)
	assert.Equal(t, []uint64{1, 2, 3, 4}, seen)
}

func TestLoopRunStopsWithContext(t *testing.T) {
	s := NewScrollView(nil)
	loop := NewLoop(s, LoopConfig{TargetFPS: 1000})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := loop.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, loop.Stats().Frames)
}
