package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/framespace/space"
	"github.com/plus3/framespace/space/debugui"
	debugui_ebiten "github.com/plus3/framespace/space/debugui/ebiten"
)

// Game drives a space from Ebiten and overlays the debugui windows.
type Game struct {
	space   *space.Space
	backend debugui_ebiten.Backend
	time    float64
}

func (g *Game) Update() error {
	g.backend.BeginFrame()

	g.time += 1000.0 / 60.0
	err := g.space.Play(g.time)

	g.backend.EndFrame()
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Game content would be drawn here, below the overlay.
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("Space Debug UI", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	sp := space.New()
	sp.Resize(space.Pt{X: 1280, Y: 720}, nil)

	sp.Add(debugui.NewLoopStats(120))
	browser := debugui.NewPlayerBrowser()
	browser.Bind(sp.Add(browser))

	game := &Game{
		space:   sp,
		backend: debugui_ebiten.Backend{EbitenBackend: backend},
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
