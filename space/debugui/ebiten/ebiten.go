// Package ebiten glues the Dear ImGui Ebiten backend to the debugui windows,
// for spaces whose surface is an Ebiten canvas.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// Backend wraps the Ebiten-specific Dear ImGui backend. Call BeginFrame
// before the space plays its frame, EndFrame after, and Draw from the host's
// Draw callback to composite the ImGui overlay onto the screen.
type Backend struct {
	*ebitenbackend.EbitenBackend
}
