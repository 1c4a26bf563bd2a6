package ggbench

// Reporter forwards PerfData to a host callback at most once per
// FlushInterval, so that a slow host boundary is not flooded at frame rate.
type Reporter struct {
	timer flushTimer
	fn    func(PerfData)
}

// NewReporter creates a reporter calling fn. A nil fn disables reporting.
func NewReporter(fn func(PerfData)) *Reporter {
	return &Reporter{
		timer: newFlushTimer(FlushInterval),
		fn:    fn,
	}
}

// Update offers the latest data at time now (µs) and reports whether it
// was forwarded. The first call only starts the cadence.
func (r *Reporter) Update(now int64, data PerfData) bool {
	if r == nil || r.fn == nil || !r.timer.due(now) {
		return false
	}
	r.fn(data)
	r.timer.fire(now)
	return true
}
