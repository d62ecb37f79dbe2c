package main

import (
	"io"
	"runtime"
	"sort"
	"text/template"
	"time"

	"github.com/plus3/framespace/space"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Players   int
	WorkUnits int
	ChurnRate float64

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	FrameTime      Stats
	FinalStats     *space.SpaceStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P50     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := make([]time.Duration, len(s.Samples))
	copy(sorted, s.Samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.P50 = sorted[len(sorted)/2]
	s.P99 = sorted[len(sorted)*99/100]

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}
	s.Avg = total / time.Duration(len(sorted))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Frame-Loop Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Players:** {{.Players}}
- **Work Units (max per frame):** {{.WorkUnits}}
- **Churn Rate:** {{.ChurnRate}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Registered Players at End:** {{.FinalStats.PlayerCount}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
  - **P50:** {{.FrameTime.P50}}
  - **P99:** {{.FrameTime.P99}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
