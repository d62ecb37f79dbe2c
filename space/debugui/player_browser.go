package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/framespace/space"
)

// PlayerBrowser is a player that renders the registry contents and loop
// controls for its space. Remove buttons take effect on the next frame
// because the loop iterates a snapshot taken at frame start.
type PlayerBrowser struct {
	selfId space.PlayerId
}

// NewPlayerBrowser creates the browser window player.
func NewPlayerBrowser() *PlayerBrowser {
	return &PlayerBrowser{}
}

// Animate implements space.Animator by rendering the browser window.
func (pb *PlayerBrowser) Animate(now, ft float64, s *space.Space) error {
	if !imgui.BeginV("Players", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	if s.Paused() {
		if imgui.Button("Resume") {
			s.Resume()
		}
	} else {
		if imgui.Button("Pause") {
			s.Pause()
		}
	}
	imgui.SameLine()
	if imgui.Button("Stop") {
		s.Stop(0)
	}

	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("Registry", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Id")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("")
		imgui.TableHeadersRow()

		for _, p := range s.Stats().Players {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d/%d", p.Id.Generation(), p.Id.Slot()))
			imgui.TableNextColumn()
			imgui.Text(p.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", p.ExecutionCount))
			imgui.TableNextColumn()
			if p.Id != pb.selfId {
				if imgui.Button(fmt.Sprintf("Remove##%d", uint64(p.Id))) {
					s.Remove(p.Id)
				}
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return nil
}

// Bind records the browser's own id so it does not offer to remove itself.
func (pb *PlayerBrowser) Bind(id space.PlayerId) *PlayerBrowser {
	pb.selfId = id
	return pb
}
