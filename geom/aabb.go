package geom

import "math"

// AABB is an axis-aligned rectangle given by its min and max corners.
type AABB struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// NewAABB returns the bounds (minX, minY)-(maxX, maxY).
func NewAABB(minX, minY, maxX, maxY float32) AABB {
	return AABB{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Width returns MaxX - MinX.
func (b AABB) Width() float32 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b AABB) Height() float32 { return b.MaxY - b.MinY }

// Center returns the midpoint of b.
func (b AABB) Center() Vec2D {
	return Vec2D{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// IsEmpty reports whether b has no area.
func (b AABB) IsEmpty() bool {
	return !(b.Width() > 0 && b.Height() > 0)
}

// Contains reports whether p lies inside b, edges included.
func (b AABB) Contains(p Vec2D) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Expand grows b to include p.
func (b AABB) Expand(p Vec2D) AABB {
	return AABB{
		MinX: min(b.MinX, p.X),
		MinY: min(b.MinY, p.Y),
		MaxX: max(b.MaxX, p.X),
		MaxY: max(b.MaxY, p.Y),
	}
}

// Union returns the smallest bounds containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return b.Expand(Vec2D{X: o.MinX, Y: o.MinY}).Expand(Vec2D{X: o.MaxX, Y: o.MaxY})
}

// EmptyAABB returns inverted bounds that any Expand call replaces.
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{MinX: inf, MinY: inf, MaxX: -inf, MaxY: -inf}
}

// Transform returns the bounds of b's four corners mapped through m.
func (b AABB) Transform(m Mat2D) AABB {
	out := EmptyAABB()
	for _, p := range [4]Vec2D{
		{b.MinX, b.MinY}, {b.MaxX, b.MinY},
		{b.MaxX, b.MaxY}, {b.MinX, b.MaxY},
	} {
		out = out.Expand(m.TransformPoint(p))
	}
	return out
}
