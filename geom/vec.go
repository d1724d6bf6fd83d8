package geom

import "math"

// Vec2D is a point or displacement in artboard or viewport space.
type Vec2D struct {
	X, Y float32
}

// V is a convenience constructor for Vec2D.
func V(x, y float32) Vec2D {
	return Vec2D{X: x, Y: y}
}

// Add returns v + w.
func (v Vec2D) Add(w Vec2D) Vec2D {
	return Vec2D{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2D) Sub(w Vec2D) Vec2D {
	return Vec2D{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vec2D) Scale(s float32) Vec2D {
	return Vec2D{X: v.X * s, Y: v.Y * s}
}

// Lerp interpolates between v and w.
func (v Vec2D) Lerp(w Vec2D, t float32) Vec2D {
	return Vec2D{X: v.X + (w.X-v.X)*t, Y: v.Y + (w.Y-v.Y)*t}
}

// Length returns the euclidean length of v.
func (v Vec2D) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}
