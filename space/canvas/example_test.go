package canvas_test

import (
	"image/color"
	"log"

	"github.com/plus3/framespace/space"
	"github.com/plus3/framespace/space/canvas"
)

// pulse draws a circle that breathes with the loop clock and follows the
// pointer while the mouse is down.
type pulse struct {
	center  space.Pt
	dragged bool
}

func (p *pulse) Start(bound space.Bound, s *space.Space) {
	p.center = bound.Center()
}

func (p *pulse) Animate(now, ft float64, s *space.Space) error {
	form := s.Form().(*canvas.Form)
	radius := 20 + 10*float64(int(now/500)%2)
	form.Circle(p.center, radius, color.White)
	return nil
}

func (p *pulse) Action(kind string, x, y float64, ev space.Event) {
	switch kind {
	case "down":
		p.dragged = true
	case "up":
		p.dragged = false
	case "drag":
		if p.dragged {
			p.center = space.Pt{X: x, Y: y}
		}
	}
}

func Example() {
	sp := space.New()
	c := canvas.New(sp, "pulse", 800, 600).Background(color.RGBA{R: 20, G: 20, B: 30, A: 255})

	sp.Add(&pulse{})

	if err := c.Run(); err != nil {
		log.Fatal(err)
	}
}
