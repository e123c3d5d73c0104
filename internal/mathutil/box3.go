package mathutil

import "math"

// Box3 is an axis-aligned bounding box. The zero-extent empty state has
// Min at +inf and Max at -inf so that ExpandByPoint works without a
// separate "first point" branch.
type Box3 struct {
	Min Vec3
	Max Vec3
}

// EmptyBox3 returns a box containing no points.
func EmptyBox3() Box3 {
	inf := math.Inf(1)
	return Box3{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box3) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// ExpandByPoint grows the box to contain p.
func (b Box3) ExpandByPoint(p Vec3) Box3 {
	return Box3{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Center returns the midpoint of the box. Undefined for empty boxes.
func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// MaxSpan returns the largest extent across the three axes, clamped to a
// small positive floor so callers can divide by it.
func (b Box3) MaxSpan() float64 {
	s := b.Size()
	span := math.Max(s[0], math.Max(s[1], s[2]))
	if span < 1e-3 {
		return 1e-3
	}
	return span
}
