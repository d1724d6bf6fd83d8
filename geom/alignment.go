package geom

// Fit selects how content bounds are scaled into a frame.
// Only Contain is supported.
type Fit uint8

const (
	// FitContain scales uniformly so the whole content fits the frame.
	FitContain Fit = iota
)

// Alignment positions scaled content inside the frame. X and Y range
// from -1 (left/top) to 1 (right/bottom); 0 centers.
type Alignment struct {
	X, Y float32
}

// Common alignments.
var (
	AlignCenter      = Alignment{0, 0}
	AlignTopLeft     = Alignment{-1, -1}
	AlignBottomRight = Alignment{1, 1}
)

// ComputeAlignment returns the transform that places content bounds
// inside frame bounds using fit and alignment. Empty content yields the
// identity.
func ComputeAlignment(fit Fit, align Alignment, frame, content AABB) Mat2D {
	cw, ch := content.Width(), content.Height()
	if cw <= 0 || ch <= 0 {
		return Identity()
	}

	var scale float32
	switch fit {
	case FitContain:
		scale = min(frame.Width()/cw, frame.Height()/ch)
	default:
		scale = 1
	}

	// Move content so alignment point sits at origin, scale, then move to
	// the matching alignment point in the frame.
	contentX := content.MinX + cw*(align.X+1)/2
	contentY := content.MinY + ch*(align.Y+1)/2
	frameX := frame.MinX + frame.Width()*(align.X+1)/2
	frameY := frame.MinY + frame.Height()*(align.Y+1)/2

	m := Translate(frameX, frameY)
	m = m.Multiply(Scale(scale, scale))
	m = m.Multiply(Translate(-contentX, -contentY))
	return m
}

// ViewTransforms returns the contain/center transform that maps content
// into a width x height viewport anchored at the origin, together with
// its inverse. The inverse is the identity when the forward transform is
// not invertible.
func ViewTransforms(width, height uint32, content AABB) (view, inverse Mat2D) {
	frame := NewAABB(0, 0, float32(width), float32(height))
	view = ComputeAlignment(FitContain, AlignCenter, frame, content)
	inverse, _ = view.Invert()
	return view, inverse
}
