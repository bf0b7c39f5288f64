package retained

import (
	"cmp"
	"slices"
	"time"
)

// ============================================================================
// Task Queue
// ============================================================================

// Task is a callback scheduled on a TaskQueue.
type Task struct {
	queue     *TaskQueue
	seq       uint64
	due       time.Time
	fn        func()
	cancelled bool
	done      bool
}

// Cancel removes the task from its queue. Returns true if the task was still
// pending; cancelling a task that already ran or was cancelled is a no-op.
func (t *Task) Cancel() bool {
	if t == nil || t.cancelled || t.done {
		return false
	}
	t.cancelled = true
	t.queue.remove(t)
	t.queue.cancelled++
	return true
}

// Pending reports whether the task is still waiting to run.
func (t *Task) Pending() bool {
	return t != nil && !t.cancelled && !t.done
}

// Due returns the time the task becomes runnable.
func (t *Task) Due() time.Time {
	return t.due
}

// TaskQueueConfig configures a TaskQueue.
type TaskQueueConfig struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// TaskQueue is a single-threaded queue of delayed callbacks. The host loop
// calls RunDue once per frame (or whenever NextDue says something is
// runnable); callbacks run on the caller's goroutine.
type TaskQueue struct {
	now       func() time.Time
	tasks     []*Task
	seq       uint64
	ran       uint64
	cancelled uint64
}

// NewTaskQueue creates an empty queue.
func NewTaskQueue(config TaskQueueConfig) *TaskQueue {
	now := config.Now
	if now == nil {
		now = time.Now
	}
	return &TaskQueue{now: now}
}

// Post schedules fn to run after delay. A zero delay runs on the next
// RunDue pass.
func (q *TaskQueue) Post(fn func(), delay time.Duration) *Task {
	if delay < 0 {
		delay = 0
	}
	q.seq++
	t := &Task{
		queue: q,
		seq:   q.seq,
		due:   q.now().Add(delay),
		fn:    fn,
	}
	q.tasks = append(q.tasks, t)
	return t
}

// RunDue runs every task whose due time has passed, in due order (post order
// on ties). Tasks posted by a running callback wait for the next pass.
// Returns the number of callbacks run.
func (q *TaskQueue) RunDue() int {
	now := q.now()

	var due []*Task
	for _, t := range q.tasks {
		if !t.due.After(now) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return 0
	}
	slices.SortFunc(due, func(a, b *Task) int {
		if c := a.due.Compare(b.due); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	for _, t := range due {
		q.remove(t)
	}

	ran := 0
	for _, t := range due {
		// An earlier callback in this pass may have cancelled it.
		if t.cancelled {
			continue
		}
		t.done = true
		q.ran++
		ran++
		if t.fn != nil {
			t.fn()
		}
	}
	return ran
}

// NextDue returns the earliest due time among pending tasks.
func (q *TaskQueue) NextDue() (time.Time, bool) {
	if len(q.tasks) == 0 {
		return time.Time{}, false
	}
	next := q.tasks[0].due
	for _, t := range q.tasks[1:] {
		if t.due.Before(next) {
			next = t.due
		}
	}
	return next, true
}

// Pending returns the number of tasks waiting to run.
func (q *TaskQueue) Pending() int {
	return len(q.tasks)
}

// Ran returns the total number of callbacks run.
func (q *TaskQueue) Ran() uint64 {
	return q.ran
}

// Cancelled returns the total number of tasks cancelled while pending.
func (q *TaskQueue) Cancelled() uint64 {
	return q.cancelled
}

func (q *TaskQueue) remove(t *Task) {
	for i, p := range q.tasks {
		if p == t {
			q.tasks = append(q.tasks[:i], q.tasks[i+1:]...)
			return
		}
	}
}
