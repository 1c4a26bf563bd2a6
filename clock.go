package ggbench

import "time"

// Clock reports monotonic time in microseconds.
type Clock interface {
	Now() int64
}

type systemClock struct {
	origin time.Time
}

// SystemClock returns a Clock measuring microseconds since its creation.
func SystemClock() Clock {
	return &systemClock{origin: time.Now()}
}

func (c *systemClock) Now() int64 {
	return time.Since(c.origin).Microseconds()
}

// flushTimer fires at most once per interval. The remainder of an elapsed
// period is carried over so the cadence does not drift with frame timing.
type flushTimer struct {
	interval int64
	last     int64
	started  bool
}

func newFlushTimer(interval int64) flushTimer {
	return flushTimer{interval: interval}
}

// due reports whether more than one interval has elapsed since the last
// fire. The first call only arms the timer.
func (t *flushTimer) due(now int64) bool {
	if !t.started {
		t.last = now
		t.started = true
		return false
	}
	return now-t.last > t.interval
}

// fire marks the timer as fired at now.
func (t *flushTimer) fire(now int64) {
	elapsed := now - t.last
	t.last = now - elapsed%t.interval
}

func (t *flushTimer) reset() {
	t.started = false
	t.last = 0
}
