package dom

// TaskHandle identifies a scheduled frame task. The zero handle is never
// issued.
type TaskHandle int64

type frameTask struct {
	handle   TaskHandle
	fn       func()
	canceled bool
}

// Schedule queues fn to run on the next Flush. The returned handle cancels it.
// Tasks run in FIFO order; a task scheduled while a flush is in progress runs
// on the following flush.
func (d *Document) Schedule(fn func()) TaskHandle {
	d.lastTask++
	t := &frameTask{handle: d.lastTask, fn: fn}
	d.tasks = append(d.tasks, t)
	return t.handle
}

// Cancel drops a pending task. Canceling an already-run or unknown handle is a
// no-op. Cancellation is honored even mid-flush for tasks not yet executed.
func (d *Document) Cancel(h TaskHandle) {
	for _, t := range d.tasks {
		if t.handle == h {
			t.canceled = true
			return
		}
	}
	for _, t := range d.running {
		if t.handle == h {
			t.canceled = true
			return
		}
	}
}

// Flush runs one frame boundary: every task scheduled before the call, in
// order, skipping canceled entries.
func (d *Document) Flush() {
	if len(d.tasks) == 0 {
		return
	}
	d.running = d.tasks
	d.tasks = nil
	for _, t := range d.running {
		if !t.canceled {
			t.fn()
		}
	}
	d.running = nil
}

// PendingTasks reports how many uncanceled tasks await the next flush.
func (d *Document) PendingTasks() int {
	n := 0
	for _, t := range d.tasks {
		if !t.canceled {
			n++
		}
	}
	return n
}
