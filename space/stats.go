package space

import "time"

// SpaceStats provides statistics about loop execution.
type SpaceStats struct {
	PlayerCount int
	TotalFrames int64
	Players     []PlayerStats
}

// PlayerStats provides animate-callback statistics for a single player.
type PlayerStats struct {
	Id             PlayerId
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

func (st *playerStatsInternal) record(d time.Duration) {
	st.executionCount++
	st.lastDuration = d
	st.totalDuration += d
	if d < st.minDuration {
		st.minDuration = d
	}
	if d > st.maxDuration {
		st.maxDuration = d
	}
}

// Stats returns a snapshot of per-player execution statistics, in registry
// insertion order.
func (s *Space) Stats() *SpaceStats {
	stats := &SpaceStats{
		PlayerCount: s.players.len(),
		TotalFrames: s.totalFrames,
		Players:     make([]PlayerStats, 0, s.players.len()),
	}

	for _, id := range s.players.snapshot(nil) {
		slot := s.players.resolve(id)
		if slot == nil {
			continue
		}
		internal := &slot.stats

		avg := time.Duration(0)
		if internal.executionCount > 0 {
			avg = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Players = append(stats.Players, PlayerStats{
			Id:             id,
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avg,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		})
	}
	return stats
}
