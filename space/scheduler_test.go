package space_test

import (
	"testing"
	"time"

	"github.com/plus3/framespace/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerScheduler(t *testing.T) {
	t.Run("fires with elapsed milliseconds", func(t *testing.T) {
		ts := space.NewTickerScheduler(time.Millisecond)

		fired := make(chan float64, 1)
		ts.Schedule(func(now float64) {
			fired <- now
		})

		select {
		case now := <-fired:
			assert.Greater(t, now, 0.0)
			assert.Less(t, now, 1000.0)
		case <-time.After(100 * time.Millisecond):
			t.Fatal("frame callback never fired")
		}
	})

	t.Run("cancel stops a pending callback", func(t *testing.T) {
		ts := space.NewTickerScheduler(10 * time.Millisecond)

		fired := make(chan struct{}, 1)
		handle := ts.Schedule(func(now float64) {
			fired <- struct{}{}
		})
		handle.Cancel()

		select {
		case <-fired:
			t.Fatal("cancelled callback still fired")
		case <-time.After(50 * time.Millisecond):
		}
	})
}

func TestSchedulerDrivenLoop(t *testing.T) {
	ts := space.NewTickerScheduler(time.Millisecond)
	sp := space.New().BindScheduler(ts)

	frames := make(chan float64, 64)
	sp.Add(space.AnimateFunc(func(now, ft float64, s *space.Space) error {
		select {
		case frames <- now:
		default:
		}
		if now > 10 {
			s.Stop(0)
		}
		return nil
	}))

	require.NoError(t, sp.Play(0))

	deadline := time.After(time.Second)
	count := 0
	for {
		select {
		case <-frames:
			count++
			if count >= 3 {
				return
			}
		case <-deadline:
			t.Fatalf("self-perpetuating loop produced only %d frames", count)
		}
	}
}
