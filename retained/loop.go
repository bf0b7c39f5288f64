package retained

import (
	"context"
	"time"

	"github.com/agiangrant/stickyscroll/render"
)

// LoopConfig configures the frame loop.
type LoopConfig struct {
	// TargetFPS is the desired frames per second (default: 60).
	TargetFPS int

	// OnFrame is called after every tick, rendered or not.
	OnFrame func(*Frame)
}

// DefaultLoopConfig returns sensible defaults.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{TargetFPS: 60}
}

// Frame describes one loop iteration.
type Frame struct {
	// Number is the monotonically increasing frame counter.
	Number uint64

	// Time is the task-queue clock at the start of the frame.
	Time time.Time

	// TasksRun is the number of queued callbacks run before drawing.
	TasksRun int

	// Damage is what was dirty before drawing. FullDamage means the whole view.
	Damage     []render.Rect
	FullDamage bool

	// Rendered reports whether Commands holds a new frame.
	Rendered bool
	Commands render.CommandList
}

// LoopStats contains loop counters.
type LoopStats struct {
	Frames   uint64
	Rendered uint64
	TasksRun uint64
}

// Loop drives a scroll view: each tick runs the view's due tasks and, if
// anything is dirty afterwards, renders a frame. Ticks happen on the
// caller's goroutine.
type Loop struct {
	view   *ScrollView
	config LoopConfig
	stats  LoopStats
}

// NewLoop creates a loop for view.
func NewLoop(view *ScrollView, config LoopConfig) *Loop {
	if config.TargetFPS <= 0 {
		config.TargetFPS = 60
	}
	return &Loop{view: view, config: config}
}

// FrameInterval returns the time between ticks at the target rate.
func (l *Loop) FrameInterval() time.Duration {
	return time.Second / time.Duration(l.config.TargetFPS)
}

// Tick runs one frame.
func (l *Loop) Tick() *Frame {
	tasks := l.view.tasks
	l.stats.Frames++
	f := &Frame{
		Number: l.stats.Frames,
		Time:   tasks.now(),
	}

	f.TasksRun = tasks.RunDue()
	l.stats.TasksRun += uint64(f.TasksRun)

	if l.view.damage.IsDirty() {
		f.Damage, f.FullDamage = l.view.damage.Damage()
		f.Commands = l.view.Render()
		f.Rendered = true
		l.stats.Rendered++
	}

	if l.config.OnFrame != nil {
		l.config.OnFrame(f)
	}
	return f
}

// Run ticks at the target rate until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Tick()
		}
	}
}

// Stats returns the loop counters.
func (l *Loop) Stats() LoopStats {
	return l.stats
}
