// Package debugui provides Dear ImGui inspection windows for a running
// Space: a loop-stats panel with a frame-time plot and per-player timings,
// and a player browser with loop controls. Windows are themselves players,
// so they render through the same frame loop they inspect.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// InputCapture reports whether Dear ImGui currently wants the mouse or
// keyboard. Surface bindings should skip action dispatch while ImGui is
// capturing, or clicks leak through the debug windows into players.
type InputCapture struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Capture reads the current ImGui capture state.
func Capture() InputCapture {
	io := imgui.CurrentIO()
	return InputCapture{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}
