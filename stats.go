package ggbench

// StatsWindowSize is the number of recent frames kept for FPS and draw
// time statistics.
const StatsWindowSize = 60

// StatsWindow keeps two rolling FIFO windows of recent frames: frame
// timestamps for FPS and per-frame draw durations for average latency.
// All times are in microseconds.
type StatsWindow struct {
	timestamps []int64
	drawTimes  []int64
}

// NewStatsWindow creates an empty window.
func NewStatsWindow() *StatsWindow {
	return &StatsWindow{
		timestamps: make([]int64, 0, StatsWindowSize+1),
		drawTimes:  make([]int64, 0, StatsWindowSize+1),
	}
}

// RecordFrame appends a frame finished at now that took drawTime to draw.
func (w *StatsWindow) RecordFrame(now, drawTime int64) {
	w.timestamps = pushCapped(w.timestamps, now)
	w.drawTimes = pushCapped(w.drawTimes, drawTime)
}

func pushCapped(s []int64, v int64) []int64 {
	s = append(s, v)
	if len(s) > StatsWindowSize {
		n := copy(s, s[len(s)-StatsWindowSize:])
		s = s[:n]
	}
	return s
}

// CurrentFPS returns the frame rate over the window, or 0 until the
// window is full.
func (w *StatsWindow) CurrentFPS() float64 {
	n := len(w.timestamps)
	if n < StatsWindowSize {
		return 0
	}
	span := w.timestamps[n-1] - w.timestamps[0]
	if span <= 0 {
		return 0
	}
	return float64(n-1) * 1_000_000 / float64(span)
}

// AverageDrawTime returns the mean draw time of the window, or 0 if empty.
func (w *StatsWindow) AverageDrawTime() int64 {
	if len(w.drawTimes) == 0 {
		return 0
	}
	var total int64
	for _, d := range w.drawTimes {
		total += d
	}
	return total / int64(len(w.drawTimes))
}

// LastDrawTime returns the most recent draw time, or 0 if empty.
func (w *StatsWindow) LastDrawTime() int64 {
	if len(w.drawTimes) == 0 {
		return 0
	}
	return w.drawTimes[len(w.drawTimes)-1]
}

// IsFirstFrame reports whether no frame has been recorded since the last
// reset.
func (w *StatsWindow) IsFirstFrame() bool {
	return len(w.timestamps) == 0
}

// Len returns the number of frames currently in the window.
func (w *StatsWindow) Len() int {
	return len(w.timestamps)
}

// Reset clears both windows.
func (w *StatsWindow) Reset() {
	w.timestamps = w.timestamps[:0]
	w.drawTimes = w.drawTimes[:0]
}
