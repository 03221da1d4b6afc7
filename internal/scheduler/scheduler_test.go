package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual_AfterFunc(t *testing.T) {
	m := NewManual()
	var fired []string

	m.AfterFunc(2*time.Second, func() { fired = append(fired, "second") })
	m.AfterFunc(time.Second, func() { fired = append(fired, "first") })

	m.Advance(500 * time.Millisecond)
	assert.Empty(t, fired)
	assert.Equal(t, 2, m.Pending())

	m.Advance(2 * time.Second)
	assert.Equal(t, []string{"first", "second"}, fired)
	assert.Equal(t, 0, m.Pending())
}

func TestManual_Stop(t *testing.T) {
	m := NewManual()
	fired := false

	task := m.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, task.Stop())
	assert.False(t, task.Stop())

	m.Advance(time.Minute)
	assert.False(t, fired)
}

func TestManual_StopAfterFire(t *testing.T) {
	m := NewManual()
	task := m.AfterFunc(time.Second, func() {})

	m.Advance(time.Second)

	assert.False(t, task.Stop())
}

func TestManual_Restart(t *testing.T) {
	m := NewManual()
	count := 0

	task := m.AfterFunc(time.Second, func() { count++ })

	m.Advance(800 * time.Millisecond)
	task.Restart()
	m.Advance(800 * time.Millisecond)
	assert.Equal(t, 0, count, "restart resets the delay")

	m.Advance(200 * time.Millisecond)
	assert.Equal(t, 1, count)

	task.Restart()
	m.Advance(time.Second)
	assert.Equal(t, 2, count, "restart re-arms a fired task")
}

func TestManual_CallbackMayReschedule(t *testing.T) {
	m := NewManual()
	count := 0

	var task Task
	task = m.AfterFunc(time.Second, func() {
		count++
		if count < 3 {
			task.Restart()
		}
	})

	for i := 0; i < 5; i++ {
		m.Advance(time.Second)
	}
	assert.Equal(t, 3, count)
}

func TestReal_AfterFunc(t *testing.T) {
	var fired atomic.Bool
	done := make(chan struct{})

	Real().AfterFunc(time.Millisecond, func() {
		fired.Store(true)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not fire")
	}
	assert.True(t, fired.Load())
}

func TestReal_Stop(t *testing.T) {
	var fired atomic.Bool

	task := Real().AfterFunc(time.Hour, func() { fired.Store(true) })

	assert.True(t, task.Stop())
	assert.False(t, fired.Load())
}
