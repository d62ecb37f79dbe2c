package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/framespace/space"
)

// churner is a synthetic player: it burns a randomized amount of CPU per
// frame and occasionally swaps itself for a fresh player to keep the
// registry's free list and generations busy.
type churner struct {
	id        space.PlayerId
	work      int
	churnRate float64
	sink      float64
}

func (c *churner) Animate(now, ft float64, s *space.Space) error {
	for i := 0; i < c.work; i++ {
		c.sink += float64(i) * 1.000001
	}
	if c.churnRate > 0 && rand.Float64() < c.churnRate {
		s.Remove(c.id)
		next := &churner{work: c.work, churnRate: c.churnRate}
		next.id = s.Add(next)
	}
	return nil
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	playerCount := flag.Int("players", 1000, "The number of players to register.")
	workUnits := flag.Int("work", 100, "Upper bound of busy-work iterations per player per frame.")
	churn := flag.Float64("churn", 0.001, "Per-frame probability of a player replacing itself.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting frame-loop stress test...")

	sp := space.New()
	sp.Resize(space.Pt{X: 1920, Y: 1080}, nil)
	sp.Refresh(false)

	log.Printf("Registering %d players...\n", *playerCount)
	for i := 0; i < *playerCount; i++ {
		c := &churner{
			work:      rand.Intn(*workUnits) + 1,
			churnRate: *churn,
		}
		c.id = sp.Add(c)
	}
	log.Println("Registration complete.")

	report := &Report{
		Duration:       *duration,
		Players:        *playerCount,
		WorkUnits:      *workUnits,
		ChurnRate:      *churn,
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running loop for %s...\n", *duration)

	startTime := time.Now()
	deadline := startTime.Add(*duration)
	var totalFrames int64

	for time.Now().Before(deadline) {
		now := float64(time.Since(startTime)) / float64(time.Millisecond)

		frameStart := time.Now()
		if err := sp.Play(now); err != nil {
			log.Fatalf("Frame failed: %v", err)
		}
		report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
		totalFrames++
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.FinalStats = sp.Stats()

	log.Println("Loop finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
