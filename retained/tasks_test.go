package retained

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskQueueRunsDueTasksInOrder(t *testing.T) {
	clock := newFakeClock()
	q := NewTaskQueue(TaskQueueConfig{Now: clock.Now})

	var order []string
	q.Post(func() { order = append(order, "late") }, 30*time.Millisecond)
	q.Post(func() { order = append(order, "a") }, 10*time.Millisecond)
	q.Post(func() { order = append(order, "b") }, 10*time.Millisecond)
	q.Post(func() { order = append(order, "now") }, 0)

	assert.Equal(t, 1, q.RunDue())
	assert.Equal(t, []string{"now"}, order)

	clock.Advance(time.Second)
	assert.Equal(t, 3, q.RunDue())
	assert.Equal(t, []string{"now", "a", "b", "late"}, order)
	assert.Equal(t, 0, q.Pending())
	assert.Equal(t, uint64(4), q.Ran())
}

func TestTaskQueueSameDueRunsInPostOrder(t *testing.T) {
	clock := newFakeClock()
	q := NewTaskQueue(TaskQueueConfig{Now: clock.Now})

	var got, want []int
	for i := 0; i < 50; i++ {
		i := i
		want = append(want, i)
		q.Post(func() { got = append(got, i) }, 5*time.Millisecond)
	}

	clock.Advance(5 * time.Millisecond)
	assert.Equal(t, 50, q.RunDue())
	assert.Equal(t, want, got)
}

func TestTaskQueueCancel(t *testing.T) {
	clock := newFakeClock()
	q := NewTaskQueue(TaskQueueConfig{Now: clock.Now})

	ran := false
	task := q.Post(func() { ran = true }, 0)
	assert.True(t, task.Pending())
	assert.True(t, task.Cancel())
	assert.False(t, task.Cancel(), "second cancel is a no-op")
	assert.False(t, task.Pending())

	assert.Equal(t, 0, q.RunDue())
	assert.False(t, ran)
	assert.Equal(t, uint64(1), q.Cancelled())

	done := q.Post(func() {}, 0)
	q.RunDue()
	assert.False(t, done.Cancel(), "cancelling a finished task is a no-op")
	assert.Equal(t, uint64(1), q.Cancelled())

	var nilTask *Task
	assert.False(t, nilTask.Cancel())
}

func TestTaskQueuePostedDuringRunWaitsForNextPass(t *testing.T) {
	clock := newFakeClock()
	q := NewTaskQueue(TaskQueueConfig{Now: clock.Now})

	count := 0
	var tick func()
	tick = func() {
		count++
		q.Post(tick, 0)
	}
	q.Post(tick, 0)

	assert.Equal(t, 1, q.RunDue())
	assert.Equal(t, 1, q.RunDue())
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, q.Pending())
}

func TestTaskQueueCancelDuringPass(t *testing.T) {
	clock := newFakeClock()
	q := NewTaskQueue(TaskQueueConfig{Now: clock.Now})

	var second *Task
	secondRan := false
	q.Post(func() { second.Cancel() }, 0)
	second = q.Post(func() { secondRan = true }, 0)

	assert.Equal(t, 1, q.RunDue())
	assert.False(t, secondRan)
}

func TestTaskQueueNextDue(t *testing.T) {
	clock := newFakeClock()
	q := NewTaskQueue(TaskQueueConfig{Now: clock.Now})

	_, ok := q.NextDue()
	assert.False(t, ok)

	q.Post(func() {}, 50*time.Millisecond)
	early := q.Post(func() {}, 5*time.Millisecond)
	next, ok := q.NextDue()
	require.True(t, ok)
	assert.Equal(t, early.Due(), next)

	q.Post(func() {}, -time.Second)
	next, _ = q.NextDue()
	assert.Equal(t, clock.Now(), next, "negative delays run on the next pass")
}
