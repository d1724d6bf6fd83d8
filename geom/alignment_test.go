package geom

import "testing"

func TestViewTransformsContainCenter(t *testing.T) {
	view, inverse := ViewTransforms(200, 100, NewAABB(0, 0, 100, 100))

	want := Mat2D{A: 1, C: 50, E: 1}
	if !approxMat(view, want) {
		t.Fatalf("view = %+v, want %+v", view, want)
	}

	for _, p := range []Vec2D{{0, 0}, {100, 100}, {37.5, 12.25}, {-40, 250}} {
		back := inverse.TransformPoint(view.TransformPoint(p))
		if !approx(back.X, p.X) || !approx(back.Y, p.Y) {
			t.Errorf("inverse(view(%v)) = %v", p, back)
		}
	}
}

func TestViewTransformsWidthLimited(t *testing.T) {
	view, _ := ViewTransforms(100, 400, NewAABB(0, 0, 200, 100))
	// scale 0.5, content is 100x50, centered vertically in 400.
	want := Mat2D{A: 0.5, E: 0.5, F: 175}
	if !approxMat(view, want) {
		t.Errorf("view = %+v, want %+v", view, want)
	}
}

func TestViewTransformsOffsetBounds(t *testing.T) {
	view, _ := ViewTransforms(100, 100, NewAABB(-50, -50, 50, 50))
	if got := view.TransformPoint(V(0, 0)); !approx(got.X, 50) || !approx(got.Y, 50) {
		t.Errorf("content center maps to %v, want {50 50}", got)
	}
}

func TestViewTransformsDegenerate(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint32
		bounds        AABB
	}{
		{"zero area bounds", 100, 100, NewAABB(10, 10, 10, 10)},
		{"zero viewport", 0, 0, NewAABB(0, 0, 100, 100)},
		{"zero width viewport", 0, 50, NewAABB(0, 0, 100, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, inverse := ViewTransforms(tt.width, tt.height, tt.bounds)
			if !inverse.IsIdentity() {
				t.Errorf("inverse = %+v, want identity", inverse)
			}
		})
	}
}

func TestViewTransformsDeterministic(t *testing.T) {
	b := NewAABB(3, 7, 211, 95)
	v1, i1 := ViewTransforms(640, 480, b)
	v2, i2 := ViewTransforms(640, 480, b)
	if v1 != v2 || i1 != i2 {
		t.Error("ViewTransforms() is not deterministic")
	}
}

func TestComputeAlignmentTopLeft(t *testing.T) {
	m := ComputeAlignment(FitContain, AlignTopLeft, NewAABB(0, 0, 200, 100), NewAABB(0, 0, 100, 100))
	if got := m.TransformPoint(V(0, 0)); got != V(0, 0) {
		t.Errorf("top-left maps to %v, want origin", got)
	}
}
