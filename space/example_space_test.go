package space_test

import (
	"fmt"

	"github.com/plus3/framespace/space"
)

// ExampleSpace demonstrates a host-driven frame loop. The host supplies the
// timestamps, the space does the timing bookkeeping and fans each frame out
// to every registered player in insertion order.
func ExampleSpace() {
	sp := space.New()
	sp.Resize(space.Pt{X: 400, Y: 300}, nil)

	sp.Add(space.AnimateFunc(func(now, ft float64, s *space.Space) error {
		fmt.Printf("t=%.0f dt=%.0f center=(%.0f, %.0f)\n", now, ft, s.Center().X, s.Center().Y)
		return nil
	}))

	for _, now := range []float64{0, 16, 32} {
		if err := sp.Play(now); err != nil {
			panic(err)
		}
	}

	// Output:
	// t=0 dt=0 center=(200, 150)
	// t=16 dt=16 center=(200, 150)
	// t=32 dt=32 center=(200, 150)
}

// ExampleSpace_PlayOnce demonstrates a loop that stops on its own once the
// loop clock passes the armed threshold.
func ExampleSpace_PlayOnce() {
	sp := space.New()

	sp.Add(space.AnimateFunc(func(now, ft float64, s *space.Space) error {
		fmt.Printf("frame at %.0f\n", now)
		return nil
	}))

	if err := sp.PlayOnce(100); err != nil {
		panic(err)
	}
	for _, now := range []float64{50, 120, 200} {
		if err := sp.Play(now); err != nil {
			panic(err)
		}
	}

	// Output:
	// frame at 0
	// frame at 50
	// frame at 120
}

type orbiter struct {
	angle float64
}

func (o *orbiter) Animate(now, ft float64, s *space.Space) error {
	o.angle += ft * 0.001
	return nil
}

func (o *orbiter) Resize(size space.Pt, ev space.Event) {
	fmt.Printf("orbiter sees %gx%g\n", size.X, size.Y)
}

// ExampleSpace_Add demonstrates capability discovery: a full player object
// and a bare function can both be registered, and a player with a Resize
// capability added after the bound is initialized is told the current size
// right away.
func ExampleSpace_Add() {
	sp := space.New()
	sp.Resize(space.Pt{X: 640, Y: 480}, nil)

	id := sp.Add(&orbiter{})
	sp.Add(space.AnimateFunc(func(now, ft float64, s *space.Space) error {
		return nil
	}))

	fmt.Println("players:", sp.PlayerCount())
	sp.Remove(id)
	sp.Remove(id) // idempotent
	fmt.Println("players:", sp.PlayerCount())

	// Output:
	// orbiter sees 640x480
	// players: 2
	// players: 1
}
