package animbridge_test

import (
	"testing"
	"time"

	"github.com/gogpu/animbridge"
	"github.com/gogpu/animbridge/backend/record"
	"github.com/gogpu/animbridge/geom"
)

func TestViewportBeforeDraw(t *testing.T) {
	var nilVP *animbridge.Viewport
	if p := nilVP.ToArtboard(3, 4); p != geom.V(3, 4) {
		t.Errorf("nil ToArtboard(3, 4) = %v, want (3, 4)", p)
	}

	vp := animbridge.NewViewport(640, 480)
	if vp.Width() != 640 || vp.Height() != 480 {
		t.Errorf("size = %dx%d, want 640x480", vp.Width(), vp.Height())
	}
	if got := vp.InverseViewTransform(); got != geom.Identity() {
		t.Errorf("InverseViewTransform() = %+v before draw, want identity", got)
	}
}

func TestViewportResize(t *testing.T) {
	f, _ := importTestDoc(t)
	box := artboard(t, f, animbridge.ByDefault())
	la, _ := box.LinearAnimation(animbridge.ByName("spin"))
	defer la.Release()

	tests := []struct {
		width, height uint32
		in, want      geom.Vec2D
	}{
		// 100x100 artboard centered in 200x100.
		{200, 100, geom.V(100, 50), geom.V(50, 50)},
		// Scaled up by 2 and centered vertically.
		{200, 400, geom.V(100, 200), geom.V(50, 50)},
		{200, 400, geom.V(0, 100), geom.V(0, 0)},
		// Scaled down by 2.
		{50, 50, geom.V(25, 25), geom.V(50, 50)},
	}
	vp := animbridge.NewViewport(1, 1)
	for _, tt := range tests {
		vp.Resize(tt.width, tt.height)
		la.AdvanceAndMaybeDraw(record.NewCanvas(), 10*time.Millisecond, vp)
		if got := vp.ToArtboard(tt.in.X, tt.in.Y); got != tt.want {
			t.Errorf("%dx%d: ToArtboard(%v) = %v, want %v", tt.width, tt.height, tt.in, got, tt.want)
		}
	}
}

func TestArtboardTransforms(t *testing.T) {
	f, _ := importTestDoc(t)
	box := artboard(t, f, animbridge.ByDefault())

	view, inverse := box.Transforms(200, 100)
	if got := view.TransformPoint(geom.V(0, 0)); got != geom.V(50, 0) {
		t.Errorf("view(0, 0) = %v, want (50, 0)", got)
	}
	if got := inverse.TransformPoint(geom.V(150, 100)); got != geom.V(100, 100) {
		t.Errorf("inverse(150, 100) = %v, want (100, 100)", got)
	}
}
