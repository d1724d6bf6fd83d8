package engine

import (
	"fmt"

	"github.com/gogpu/animbridge/geom"
)

// PathVerb is one path command. The numeric values are part of the
// command table.
type PathVerb uint8

const (
	VerbMove  PathVerb = 0
	VerbLine  PathVerb = 1
	VerbCubic PathVerb = 4
	VerbClose PathVerb = 5
)

// String returns the verb name.
func (v PathVerb) String() string {
	switch v {
	case VerbMove:
		return "move"
	case VerbLine:
		return "line"
	case VerbCubic:
		return "cubic"
	case VerbClose:
		return "close"
	default:
		return fmt.Sprintf("PathVerb(%d)", v)
	}
}

// PointCount returns how many points a verb carries.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMove, VerbLine:
		return 1
	case VerbCubic:
		return 3
	default:
		return 0
	}
}

// RawPath is the engine's own path storage: a verb list and the points
// those verbs consume, in order.
type RawPath struct {
	verbs  []PathVerb
	points []geom.Vec2D
}

// MoveTo starts a new contour.
func (p *RawPath) MoveTo(x, y float32) {
	p.verbs = append(p.verbs, VerbMove)
	p.points = append(p.points, geom.V(x, y))
}

// LineTo adds a line from the current point.
func (p *RawPath) LineTo(x, y float32) {
	p.verbs = append(p.verbs, VerbLine)
	p.points = append(p.points, geom.V(x, y))
}

// CubicTo adds a cubic bezier from the current point.
func (p *RawPath) CubicTo(ox, oy, ix, iy, x, y float32) {
	p.verbs = append(p.verbs, VerbCubic)
	p.points = append(p.points, geom.V(ox, oy), geom.V(ix, iy), geom.V(x, y))
}

// Close closes the current contour.
func (p *RawPath) Close() {
	p.verbs = append(p.verbs, VerbClose)
}

// Rewind clears the path and keeps its storage.
func (p *RawPath) Rewind() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
}

// VerbCount returns the number of verbs in the path.
func (p *RawPath) VerbCount() int { return len(p.verbs) }

// IsEmpty reports whether the path has no verbs.
func (p *RawPath) IsEmpty() bool { return len(p.verbs) == 0 }

// Bounds returns the bounds of all points, control points included.
func (p *RawPath) Bounds() geom.AABB {
	b := geom.EmptyAABB()
	for _, pt := range p.points {
		b = b.Expand(pt)
	}
	return b
}

// Iter returns a cursor positioned at the first verb. The cursor
// borrows p; mutating p while the cursor is in use is not allowed.
func (p *RawPath) Iter() PathIter {
	return PathIter{path: p}
}

// AddRect appends a closed axis-aligned rectangle.
func (p *RawPath) AddRect(x, y, w, h float32) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// circleConstant places cubic control points for a quarter ellipse.
const circleConstant = 0.5522847498

// AddOval appends a closed ellipse inscribed in the given rectangle.
func (p *RawPath) AddOval(x, y, w, h float32) {
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	ox, oy := rx*circleConstant, ry*circleConstant

	p.MoveTo(cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.Close()
}

// PathIter is a pull cursor over a RawPath. Each call to Next yields
// the current verb with its points and moves to the following verb.
type PathIter struct {
	path *RawPath
	verb int
	pt   int
}

// Next returns the current verb and its points, then advances. The
// returned slice aliases the path's storage and is only valid until the
// path is next modified. Next must not be called more than VerbCount
// times; ok is false if it is.
func (it *PathIter) Next() (verb PathVerb, pts []geom.Vec2D, ok bool) {
	if it.path == nil || it.verb >= len(it.path.verbs) {
		return 0, nil, false
	}
	verb = it.path.verbs[it.verb]
	n := verb.PointCount()
	pts = it.path.points[it.pt : it.pt+n : it.pt+n]
	it.verb++
	it.pt += n
	return verb, pts, true
}

// Remaining returns how many verbs are left.
func (it *PathIter) Remaining() int {
	if it.path == nil {
		return 0
	}
	return len(it.path.verbs) - it.verb
}
