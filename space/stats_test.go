package space_test

import (
	"testing"
	"time"

	"github.com/plus3/framespace/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slowPlayer struct {
	delay time.Duration
}

func (p *slowPlayer) Animate(t, ft float64, s *space.Space) error {
	time.Sleep(p.delay)
	return nil
}

func TestStats(t *testing.T) {
	sp := space.New()
	sp.Add(&slowPlayer{delay: time.Millisecond})
	sp.Add(space.AnimateFunc(func(time, ft float64, s *space.Space) error {
		return nil
	}))
	sp.Add(&layoutAware{}) // no Animate capability

	for i := 0; i < 3; i++ {
		require.NoError(t, sp.Play(float64(i)*16))
	}

	stats := sp.Stats()
	assert.Equal(t, 3, stats.PlayerCount)
	assert.Equal(t, int64(3), stats.TotalFrames)
	require.Len(t, stats.Players, 3)

	slow := stats.Players[0]
	assert.Equal(t, "slowPlayer", slow.Name)
	assert.Equal(t, int64(3), slow.ExecutionCount)
	assert.GreaterOrEqual(t, slow.MinDuration, time.Millisecond)
	assert.GreaterOrEqual(t, slow.MaxDuration, slow.MinDuration)
	assert.GreaterOrEqual(t, slow.AvgDuration, slow.MinDuration)
	assert.GreaterOrEqual(t, slow.TotalDuration, 3*time.Millisecond)

	fn := stats.Players[1]
	assert.Equal(t, "AnimateFunc", fn.Name)
	assert.Equal(t, int64(3), fn.ExecutionCount)

	// A player without an Animate capability never executes.
	idle := stats.Players[2]
	assert.Equal(t, int64(0), idle.ExecutionCount)
}

func TestStatsOrderFollowsRegistry(t *testing.T) {
	sp := space.New()
	a := sp.Add(&slowPlayer{})
	sp.Add(&recorder{})
	sp.Remove(a)
	sp.Add(&layoutAware{})

	stats := sp.Stats()
	require.Len(t, stats.Players, 2)
	assert.Equal(t, "recorder", stats.Players[0].Name)
	assert.Equal(t, "layoutAware", stats.Players[1].Name)
}
