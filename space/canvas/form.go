package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/framespace/space"
)

// Form is the canvas's drawing-primitive handle. Players fetch it from the
// space inside a frame:
//
//	form := s.Form().(*canvas.Form)
//	form.Circle(s.Center(), 10, color.White)
//
// Outside a frame the form has no screen and every primitive is a no-op.
type Form struct {
	screen *ebiten.Image
}

// Line draws a 1px line from a to b.
func (f *Form) Line(a, b space.Pt, clr color.Color) {
	if f.screen == nil {
		return
	}
	vector.StrokeLine(f.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, true)
}

// Rect fills the given bound.
func (f *Form) Rect(b space.Bound, clr color.Color) {
	if f.screen == nil {
		return
	}
	vector.DrawFilledRect(f.screen, float32(b.Origin.X), float32(b.Origin.Y),
		float32(b.Size.X), float32(b.Size.Y), clr, true)
}

// StrokeRect outlines the given bound.
func (f *Form) StrokeRect(b space.Bound, strokeWidth float64, clr color.Color) {
	if f.screen == nil {
		return
	}
	vector.StrokeRect(f.screen, float32(b.Origin.X), float32(b.Origin.Y),
		float32(b.Size.X), float32(b.Size.Y), float32(strokeWidth), clr, true)
}

// Circle fills a circle centered at p.
func (f *Form) Circle(p space.Pt, radius float64, clr color.Color) {
	if f.screen == nil {
		return
	}
	vector.DrawFilledCircle(f.screen, float32(p.X), float32(p.Y), float32(radius), clr, true)
}

// StrokeCircle outlines a circle centered at p.
func (f *Form) StrokeCircle(p space.Pt, radius, strokeWidth float64, clr color.Color) {
	if f.screen == nil {
		return
	}
	vector.StrokeCircle(f.screen, float32(p.X), float32(p.Y), float32(radius), float32(strokeWidth), clr, true)
}

// Point draws a 2x2 pixel dot at p.
func (f *Form) Point(p space.Pt, clr color.Color) {
	if f.screen == nil {
		return
	}
	vector.DrawFilledRect(f.screen, float32(p.X)-1, float32(p.Y)-1, 2, 2, clr, true)
}

// Text prints str at p with the debug font.
func (f *Form) Text(str string, p space.Pt) {
	if f.screen == nil {
		return
	}
	ebitenutil.DebugPrintAt(f.screen, str, int(p.X), int(p.Y))
}

// Screen exposes the raw frame image for players that draw with Ebiten
// directly. Nil outside a frame.
func (f *Form) Screen() *ebiten.Image {
	return f.screen
}
