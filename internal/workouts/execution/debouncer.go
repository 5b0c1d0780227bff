package execution

import (
	"sort"
	"sync"
	"time"
)

type pendingTask struct {
	timer *time.Timer
	fn    func()
}

// Debouncer keeps at most one pending task per key. Scheduling a key again
// replaces its task and restarts the quiet period.
type Debouncer struct {
	mu      sync.Mutex
	pending map[string]*pendingTask
	stopped bool
}

func NewDebouncer() *Debouncer {
	return &Debouncer{
		pending: map[string]*pendingTask{},
	}
}

func (d *Debouncer) Schedule(key string, delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if prev, ok := d.pending[key]; ok {
		prev.timer.Stop()
	}

	task := &pendingTask{fn: fn}
	task.timer = time.AfterFunc(delay, func() {
		d.fire(key, task)
	})
	d.pending[key] = task
}

func (d *Debouncer) fire(key string, task *pendingTask) {
	d.mu.Lock()
	if d.pending[key] != task {
		// flushed, cancelled or replaced meanwhile
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.mu.Unlock()

	task.fn()
}

// take removes the pending task for key, nil if there is none.
func (d *Debouncer) take(key string) *pendingTask {
	task, ok := d.pending[key]
	if !ok {
		return nil
	}
	task.timer.Stop()
	delete(d.pending, key)
	return task
}

// Flush runs the pending task for key right away, on the calling goroutine.
func (d *Debouncer) Flush(key string) bool {
	d.mu.Lock()
	task := d.take(key)
	d.mu.Unlock()

	if task == nil {
		return false
	}
	task.fn()
	return true
}

// FlushAll runs every pending task on the calling goroutine, in key order.
func (d *Debouncer) FlushAll() int {
	d.mu.Lock()
	keys := make([]string, 0, len(d.pending))
	for key := range d.pending {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	tasks := make([]*pendingTask, 0, len(keys))
	for _, key := range keys {
		tasks = append(tasks, d.take(key))
	}
	d.mu.Unlock()

	for _, task := range tasks {
		task.fn()
	}
	return len(tasks)
}

func (d *Debouncer) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.take(key) != nil
}

func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}

func (d *Debouncer) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Stop cancels everything pending. Later Schedule calls are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for key := range d.pending {
		d.take(key)
	}
}
