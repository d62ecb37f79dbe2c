package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/framespace/space"
)

// LoopStats is a player that renders a frame-timing window for its space.
// Register it like any other player:
//
//	sp.Add(debugui.NewLoopStats(120))
type LoopStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewLoopStats creates a stats window keeping historyFrames of frame-delta
// history for the plot.
func NewLoopStats(historyFrames int) *LoopStats {
	if historyFrames <= 0 {
		historyFrames = 120
	}
	return &LoopStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Animate implements space.Animator by rendering the stats window.
func (ls *LoopStats) Animate(now, ft float64, s *space.Space) error {
	ls.frameHistory[ls.frameIndex] = float32(ft)
	ls.frameIndex = (ls.frameIndex + 1) % ls.historyFrames

	if !imgui.BeginV("Loop Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	stats := s.Stats()

	imgui.Text(fmt.Sprintf("Players: %d", stats.PlayerCount))
	imgui.Text(fmt.Sprintf("Frames: %d", stats.TotalFrames))
	imgui.Text(fmt.Sprintf("Clock: %.0f ms", s.Time()))

	var avg float32
	for _, d := range ls.frameHistory {
		avg += d
	}
	avg /= float32(ls.historyFrames)
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Delta: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Delta Graph (ms)")
	imgui.PlotLinesFloatPtr("##framedelta", &ls.frameHistory[0], int32(len(ls.frameHistory)))

	if imgui.TreeNodeStr("Player Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PlayerTimings", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Player")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, p := range stats.Players {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(p.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", p.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(p.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(p.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
	return nil
}
