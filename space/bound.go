package space

import "math"

// Pt is a 2D point or vector. It is a value type, so every accessor that
// hands one out hands out an independent copy.
type Pt struct {
	X, Y float64
}

// Add returns p + q.
func (p Pt) Add(q Pt) Pt {
	return Pt{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Pt) Sub(q Pt) Pt {
	return Pt{p.X - q.X, p.Y - q.Y}
}

// Scale returns p with both components multiplied by f.
func (p Pt) Scale(f float64) Pt {
	return Pt{p.X * f, p.Y * f}
}

// Mag returns the magnitude of p treated as a vector.
func (p Pt) Mag() float64 {
	return math.Hypot(p.X, p.Y)
}

// Bound is an axis-aligned rectangle with an origin and a size.
// Size components are never negative.
type Bound struct {
	Origin Pt
	Size   Pt
}

// NewBound creates a bound at the zero origin with the given size.
// Negative size components are clamped to zero.
func NewBound(size Pt) Bound {
	return Bound{Size: clampSize(size)}
}

// Width returns the horizontal extent of the bound.
func (b Bound) Width() float64 {
	return b.Size.X
}

// Height returns the vertical extent of the bound.
func (b Bound) Height() float64 {
	return b.Size.Y
}

// Center returns the midpoint of the bound relative to its origin.
func (b Bound) Center() Pt {
	return b.Origin.Add(b.Size.Scale(0.5))
}

// Contains reports whether p lies inside the bound.
func (b Bound) Contains(p Pt) bool {
	return p.X >= b.Origin.X && p.X < b.Origin.X+b.Size.X &&
		p.Y >= b.Origin.Y && p.Y < b.Origin.Y+b.Size.Y
}

func clampSize(size Pt) Pt {
	return Pt{math.Max(size.X, 0), math.Max(size.Y, 0)}
}
