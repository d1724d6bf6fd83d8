package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

func rect(b *Backend, x0, y0, x1, y1 float32) *path {
	p := b.NewPath()
	b.PathMoveTo(p, x0, y0)
	b.PathLineTo(p, x1, y0)
	b.PathLineTo(p, x1, y1)
	b.PathLineTo(p, x0, y1)
	b.PathClose(p)
	return p.(*path)
}

func isColor(c color.Color, want color.RGBA) bool {
	r, g, b, a := c.RGBA()
	near := func(got uint32, want uint8) bool {
		return math.Abs(float64(got>>8)-float64(want)) <= 2
	}
	return near(r, want.R) && near(g, want.G) && near(b, want.B) && near(a, want.A)
}

func TestTriangleMapping(t *testing.T) {
	src := [3]geom.Vec2D{geom.V(0, 0), geom.V(10, 0), geom.V(0, 10)}
	dst := [3]geom.Vec2D{geom.V(5, 5), geom.V(25, 5), geom.V(5, 15)}

	m, ok := triangleMapping(src, dst)
	if !ok {
		t.Fatal("triangleMapping() ok = false, want true")
	}
	for i := range src {
		got := m.TransformPoint(src[i])
		if math.Abs(float64(got.X-dst[i].X)) > 1e-4 || math.Abs(float64(got.Y-dst[i].Y)) > 1e-4 {
			t.Errorf("vertex %d: got %v, want %v", i, got, dst[i])
		}
	}
}

func TestTriangleMappingDegenerate(t *testing.T) {
	src := [3]geom.Vec2D{geom.V(0, 0), geom.V(1, 1), geom.V(2, 2)}
	dst := [3]geom.Vec2D{geom.V(0, 0), geom.V(1, 0), geom.V(0, 1)}
	if _, ok := triangleMapping(src, dst); ok {
		t.Error("triangleMapping() on collinear source ok = true, want false")
	}
}

func TestConversions(t *testing.T) {
	if got := toFillRule(engine.FillEvenOdd); got != gg.FillRuleEvenOdd {
		t.Errorf("toFillRule(EvenOdd) = %v, want %v", got, gg.FillRuleEvenOdd)
	}
	if got := toLineCap(engine.CapSquare); got != gg.LineCapSquare {
		t.Errorf("toLineCap(Square) = %v, want %v", got, gg.LineCapSquare)
	}
	if got := toLineJoin(engine.JoinBevel); got != gg.LineJoinBevel {
		t.Errorf("toLineJoin(Bevel) = %v, want %v", got, gg.LineJoinBevel)
	}

	tests := []struct {
		in   engine.BlendMode
		want gg.BlendMode
	}{
		{engine.BlendSrcOver, gg.BlendNormal},
		{engine.BlendMultiply, gg.BlendMultiply},
		{engine.BlendScreen, gg.BlendScreen},
		{engine.BlendOverlay, gg.BlendOverlay},
		{engine.BlendHue, gg.BlendNormal},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := toBlendMode(tt.in); got != tt.want {
				t.Errorf("toBlendMode(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	m := toMatrix(geom.Mat2D{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6})
	if m != (gg.Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}) {
		t.Errorf("toMatrix() = %v", m)
	}
}

func TestDrawPathFill(t *testing.T) {
	b := New()
	c := NewCanvas(20, 20)
	defer c.Close()

	p := rect(b, 5, 5, 15, 15)
	paint := b.NewPaint()
	b.SetPaintColor(paint, engine.ARGB(0xff, 0xff, 0, 0))
	b.DrawPath(c, p, paint)

	img := c.Context().Image()
	red := color.RGBA{R: 0xff, A: 0xff}
	if got := img.At(10, 10); !isColor(got, red) {
		t.Errorf("pixel (10,10) = %v, want %v", got, red)
	}
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
		t.Errorf("pixel (1,1) alpha = %d, want 0", a)
	}
}

func TestTransformAndRestore(t *testing.T) {
	b := New()
	c := NewCanvas(40, 40)
	defer c.Close()

	paint := b.NewPaint()
	b.SetPaintColor(paint, engine.ARGB(0xff, 0, 0, 0xff))

	b.Save(c)
	b.Transform(c, geom.Translate(20, 20))
	b.DrawPath(c, rect(b, 0, 0, 10, 10), paint)
	b.Restore(c)
	b.DrawPath(c, rect(b, 0, 0, 10, 10), paint)

	img := c.Context().Image()
	blue := color.RGBA{B: 0xff, A: 0xff}
	for _, pt := range []image.Point{{5, 5}, {25, 25}} {
		if got := img.At(pt.X, pt.Y); !isColor(got, blue) {
			t.Errorf("pixel %v = %v, want %v", pt, got, blue)
		}
	}
	if _, _, _, a := img.At(15, 15).RGBA(); a != 0 {
		t.Errorf("pixel (15,15) alpha = %d, want 0", a)
	}
}

func TestRestoreWithoutSave(t *testing.T) {
	c := NewCanvas(4, 4)
	defer c.Close()
	New().Restore(c)
	if c.depth != 0 {
		t.Errorf("depth = %d, want 0", c.depth)
	}
}

func TestExtendPath(t *testing.T) {
	b := New()
	dst := b.NewPath()
	b.ExtendPath(dst, rect(b, 0, 0, 1, 1), geom.Translate(3, 4))
	b.ExtendPath(dst, rect(b, 0, 0, 1, 1), geom.Identity())

	p := dst.(*path).p
	wantVerbs := []gg.PathVerb{
		gg.MoveTo, gg.LineTo, gg.LineTo, gg.LineTo, gg.Close,
		gg.MoveTo, gg.LineTo, gg.LineTo, gg.LineTo, gg.Close,
	}
	if got := p.Verbs(); !slices.Equal(got, wantVerbs) {
		t.Fatalf("Verbs() = %v, want %v", got, wantVerbs)
	}
	coords := p.Coords()
	if coords[0] != 3 || coords[1] != 4 {
		t.Errorf("first MoveTo = (%v,%v), want (3,4)", coords[0], coords[1])
	}
	if coords[8] != 0 || coords[9] != 0 {
		t.Errorf("second MoveTo = (%v,%v), want (0,0)", coords[8], coords[9])
	}
}

func TestDrawPathBlendMode(t *testing.T) {
	yellow := engine.ARGB(0xff, 0xff, 0xff, 0)
	cyan := engine.ARGB(0xff, 0, 0xff, 0xff)

	tests := []struct {
		name  string
		blend engine.BlendMode
		want  color.RGBA
	}{
		{"srcOver", engine.BlendSrcOver, color.RGBA{G: 0xff, B: 0xff, A: 0xff}},
		{"multiply", engine.BlendMultiply, color.RGBA{G: 0xff, A: 0xff}},
		{"screen", engine.BlendScreen, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			c := NewCanvas(20, 20)
			defer c.Close()
			c.Clear(yellow)

			paint := b.NewPaint()
			b.SetPaintColor(paint, cyan)
			b.SetPaintBlendMode(paint, tt.blend)
			b.DrawPath(c, rect(b, 5, 5, 15, 15), paint)

			img := c.Context().Image()
			if got := img.At(10, 10); !isColor(got, tt.want) {
				t.Errorf("pixel (10,10) = %v, want %v", got, tt.want)
			}
			outside := color.RGBA{R: 0xff, G: 0xff, A: 0xff}
			if got := img.At(1, 1); !isColor(got, outside) {
				t.Errorf("pixel (1,1) = %v, want %v", got, outside)
			}
		})
	}
}

func TestDecodeImage(t *testing.T) {
	b := New()
	if h := b.DecodeImage([]byte("not an image")); h != nil {
		t.Errorf("DecodeImage(garbage) = %v, want nil", h)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatal(err)
	}
	h := b.DecodeImage(buf.Bytes())
	if h == nil {
		t.Fatal("DecodeImage(png) = nil")
	}
	img := h.(*rasterImage)
	if img.width != 3 || img.height != 2 {
		t.Errorf("size = %dx%d, want 3x2", img.width, img.height)
	}
}
