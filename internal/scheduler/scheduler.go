// Package scheduler provides cancellable, restartable deferred callbacks.
//
// Tasks only drive presentation state (processing delays, row highlights);
// nothing in the register depends on wall-clock timing for correctness.
package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Task is a scheduled callback.
type Task interface {
	// Stop cancels the task. It returns false if the task already fired or was stopped.
	Stop() bool
	// Restart re-arms the task with its original delay, resetting any pending run.
	Restart()
}

// Scheduler runs fn once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
}

// Real returns a Scheduler backed by time.AfterFunc.
func Real() Scheduler {
	return realScheduler{}
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Task {
	return &realTask{timer: time.AfterFunc(d, fn), delay: d}
}

type realTask struct {
	timer *time.Timer
	delay time.Duration
}

func (t *realTask) Stop() bool {
	return t.timer.Stop()
}

func (t *realTask) Restart() {
	t.timer.Stop()
	t.timer.Reset(t.delay)
}

// Manual is a deterministic Scheduler driven by Advance. Callbacks run
// synchronously on the goroutine calling Advance, outside the scheduler lock.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks map[*manualTask]struct{}
}

// NewManual returns a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{tasks: make(map[*manualTask]struct{})}
}

// AfterFunc schedules fn to run once Advance has moved time past d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTask{owner: m, delay: d, fn: fn}
	m.arm(t)
	return t
}

// arm must be called with m.mu held.
func (m *Manual) arm(t *manualTask) {
	m.seq++
	t.due = m.now + t.delay
	t.seq = m.seq
	m.tasks[t] = struct{}{}
}

// Advance moves time forward by d and runs every task that became due, in due order.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	var due []*manualTask
	for t := range m.tasks {
		if t.due <= m.now {
			due = append(due, t)
			delete(m.tasks, t)
		}
	}
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].seq < due[j].seq
		}
		return due[i].due < due[j].due
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of armed tasks.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

type manualTask struct {
	owner *Manual
	delay time.Duration
	due   time.Duration
	seq   int
	fn    func()
}

func (t *manualTask) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	if _, ok := t.owner.tasks[t]; !ok {
		return false
	}
	delete(t.owner.tasks, t)
	return true
}

func (t *manualTask) Restart() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	delete(t.owner.tasks, t)
	t.owner.arm(t)
}
