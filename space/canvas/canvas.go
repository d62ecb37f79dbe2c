// Package canvas binds a Space to an Ebiten window. The Canvas is the
// concrete drawing surface: it clears the screen between frames, exposes a
// Form with drawing primitives for players, and translates Ebiten's mouse
// state into pointer updates and action dispatches on the space.
package canvas

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/framespace/space"
)

// Canvas implements space.Surface and ebiten.Game. Ebiten drives the frames,
// so the bound space runs host-driven; Play is called once per Draw with
// milliseconds since the first frame.
type Canvas struct {
	space *space.Space
	form  *Form

	title      string
	background color.Color

	width  int
	height int

	epoch   time.Time
	started bool

	mouseDown bool
	lastX     int
	lastY     int

	err error
}

// New creates a canvas of the given pixel size and wires it to sp: the
// canvas becomes sp's surface and sp's bound is initialized immediately, so
// players registered afterwards see the layout at Add time.
func New(sp *space.Space, title string, width, height int) *Canvas {
	c := &Canvas{
		space:      sp,
		form:       &Form{},
		title:      title,
		background: color.Black,
		width:      width,
		height:     height,
	}
	sp.BindSurface(c)
	sp.Resize(space.Pt{X: float64(width), Y: float64(height)}, nil)
	return c
}

// Background sets the color used when the space clears the canvas.
func (c *Canvas) Background(clr color.Color) *Canvas {
	c.background = clr
	return c
}

// Space returns the bound space.
func (c *Canvas) Space() *space.Space {
	return c.space
}

// Resize implements space.Surface. The actual backing store is the screen
// image Ebiten hands to Draw, so only the requested size is recorded here.
func (c *Canvas) Resize(size space.Pt, ev space.Event) {
	c.width = int(size.X)
	c.height = int(size.Y)
}

// Clear implements space.Surface by filling the current screen with the
// background color. Outside a frame there is no screen and Clear is a no-op.
func (c *Canvas) Clear() {
	if c.form.screen != nil {
		c.form.screen.Fill(c.background)
	}
}

// Form implements space.Surface.
func (c *Canvas) Form() space.Form {
	return c.form
}

// Update implements ebiten.Game: it feeds mouse state to the space and
// surfaces any frame error from the previous Draw, which stops ebiten.RunGame.
func (c *Canvas) Update() error {
	if c.err != nil {
		return c.err
	}

	x, y := ebiten.CursorPosition()
	c.space.SetPointer(space.Pt{X: float64(x), Y: float64(y)})

	fx, fy := float64(x), float64(y)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		c.mouseDown = true
		c.space.DispatchAction("down", fx, fy, nil)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		c.mouseDown = false
		c.space.DispatchAction("up", fx, fy, nil)
	case x != c.lastX || y != c.lastY:
		if c.mouseDown {
			c.space.DispatchAction("drag", fx, fy, nil)
		} else {
			c.space.DispatchAction("move", fx, fy, nil)
		}
	}
	c.lastX, c.lastY = x, y
	return nil
}

// Draw implements ebiten.Game by playing one frame of the space with the
// screen attached to the form.
func (c *Canvas) Draw(screen *ebiten.Image) {
	if !c.started {
		c.started = true
		c.epoch = time.Now()
	}
	c.form.screen = screen

	now := float64(time.Since(c.epoch)) / float64(time.Millisecond)
	if err := c.space.Play(now); err != nil {
		c.err = err
	}
	c.form.screen = nil
}

// Layout implements ebiten.Game and propagates window size changes to the
// space, which in turn notifies every player with a Resize capability.
func (c *Canvas) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != c.width || outsideHeight != c.height {
		c.space.Resize(space.Pt{X: float64(outsideWidth), Y: float64(outsideHeight)}, nil)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the window closes or a player fails.
func (c *Canvas) Run() error {
	ebiten.SetWindowSize(c.width, c.height)
	ebiten.SetWindowTitle(c.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(c); err != nil {
		return err
	}
	return c.err
}
