package space

import "time"

// FrameScheduler is the host's frame-callback facility. Schedule arranges for
// fn to be invoked once with the current loop time, and returns a handle that
// can cancel that pending invocation. The loop reschedules itself from inside
// each frame, so a scheduler only ever has one callback outstanding per space.
type FrameScheduler interface {
	Schedule(fn func(now float64)) FrameHandle
}

// FrameHandle cancels a pending frame callback. Cancel after the callback has
// fired is a no-op.
type FrameHandle interface {
	Cancel()
}

// TickerScheduler drives frames from the wall clock at a fixed interval.
// Reported times are milliseconds elapsed since the first Schedule call.
// All Schedule calls are expected to come from the frame path itself, so the
// scheduler needs no locking.
type TickerScheduler struct {
	interval time.Duration
	epoch    time.Time
}

// NewTickerScheduler creates a scheduler firing every interval. An interval
// of zero or less defaults to 60 frames per second.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &TickerScheduler{interval: interval}
}

// Schedule arms a one-shot timer for the next frame.
func (ts *TickerScheduler) Schedule(fn func(now float64)) FrameHandle {
	if ts.epoch.IsZero() {
		ts.epoch = time.Now()
	}
	t := time.AfterFunc(ts.interval, func() {
		fn(float64(time.Since(ts.epoch)) / float64(time.Millisecond))
	})
	return timerHandle{t}
}

type timerHandle struct {
	t *time.Timer
}

func (h timerHandle) Cancel() {
	h.t.Stop()
}
