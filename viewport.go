package animbridge

import "github.com/gogpu/animbridge/geom"

// Viewport is the pixel area a scene is drawn into. It remembers the
// inverse view transform computed by the last AdvanceAndMaybeDraw so
// that pointer coordinates can be mapped back into artboard space.
//
// The zero Viewport has no size and maps pointers unchanged.
type Viewport struct {
	width, height uint32
	inverse       geom.Mat2D
	hasInverse    bool
}

// NewViewport returns a width x height viewport.
func NewViewport(width, height uint32) *Viewport {
	return &Viewport{width: width, height: height}
}

// Width returns the viewport width in pixels.
func (v *Viewport) Width() uint32 { return v.width }

// Height returns the viewport height in pixels.
func (v *Viewport) Height() uint32 { return v.height }

// Resize changes the viewport size. The inverse transform is refreshed
// by the next AdvanceAndMaybeDraw.
func (v *Viewport) Resize(width, height uint32) {
	v.width = width
	v.height = height
}

// InverseViewTransform returns the mapping from viewport space to
// artboard space, or the identity before the first draw.
func (v *Viewport) InverseViewTransform() geom.Mat2D {
	if v == nil || !v.hasInverse {
		return geom.Identity()
	}
	return v.inverse
}

// ToArtboard maps a viewport point into artboard space. A nil viewport
// returns the point unchanged.
func (v *Viewport) ToArtboard(x, y float32) geom.Vec2D {
	return v.InverseViewTransform().TransformPoint(geom.V(x, y))
}

// update computes the transforms for a, stores the inverse and returns
// the forward view transform.
func (v *Viewport) update(a *Artboard) geom.Mat2D {
	if v == nil {
		return geom.Identity()
	}
	view, inverse := a.Transforms(v.width, v.height)
	v.inverse = inverse
	v.hasInverse = true
	return view
}
