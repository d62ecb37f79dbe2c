package space_test

import (
	"fmt"
	"testing"

	"github.com/plus3/framespace/space"
)

func BenchmarkPlay(b *testing.B) {
	counts := []int{1, 10, 100, 1000}

	for _, n := range counts {
		b.Run(fmt.Sprintf("%dplayers", n), func(b *testing.B) {
			sp := space.New()
			for i := 0; i < n; i++ {
				sp.Add(space.AnimateFunc(func(now, ft float64, s *space.Space) error {
					return nil
				}))
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := sp.Play(float64(i) * 16); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAddRemove(b *testing.B) {
	sp := space.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := sp.Add(space.AnimateFunc(func(now, ft float64, s *space.Space) error {
			return nil
		}))
		sp.Remove(id)
	}
}
