package engine

import (
	"testing"

	"github.com/gogpu/animbridge/geom"
)

func TestPathIterVisitsEveryVerbOnce(t *testing.T) {
	var p RawPath
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.CubicTo(10, 5, 5, 10, 0, 10)
	p.Close()
	p.MoveTo(20, 20)
	p.LineTo(30, 30)

	wantVerbs := []PathVerb{VerbMove, VerbLine, VerbCubic, VerbClose, VerbMove, VerbLine}
	wantPts := [][]geom.Vec2D{
		{{X: 0, Y: 0}},
		{{X: 10, Y: 0}},
		{{X: 10, Y: 5}, {X: 5, Y: 10}, {X: 0, Y: 10}},
		nil,
		{{X: 20, Y: 20}},
		{{X: 30, Y: 30}},
	}

	it := p.Iter()
	if it.Remaining() != len(wantVerbs) {
		t.Fatalf("Remaining() = %d, want %d", it.Remaining(), len(wantVerbs))
	}
	for i := range p.VerbCount() {
		verb, pts, ok := it.Next()
		if !ok {
			t.Fatalf("Next() #%d ok = false", i)
		}
		if verb != wantVerbs[i] {
			t.Errorf("Next() #%d verb = %v, want %v", i, verb, wantVerbs[i])
		}
		if len(pts) != len(wantPts[i]) {
			t.Fatalf("Next() #%d len(pts) = %d, want %d", i, len(pts), len(wantPts[i]))
		}
		for j := range pts {
			if pts[j] != wantPts[i][j] {
				t.Errorf("Next() #%d pts[%d] = %v, want %v", i, j, pts[j], wantPts[i][j])
			}
		}
	}
	if it.Remaining() != 0 {
		t.Errorf("Remaining() after full walk = %d, want 0", it.Remaining())
	}
}

func TestPathIterBorrowsStorage(t *testing.T) {
	var p RawPath
	p.MoveTo(1, 2)
	it := p.Iter()
	_, pts, _ := it.Next()
	if &pts[0] != &p.points[0] {
		t.Error("Next() copied points instead of borrowing them")
	}
}

func TestRawPathRewind(t *testing.T) {
	var p RawPath
	p.AddRect(0, 0, 4, 4)
	if p.VerbCount() != 5 {
		t.Fatalf("AddRect() verbs = %d, want 5", p.VerbCount())
	}
	p.Rewind()
	if !p.IsEmpty() {
		t.Error("Rewind() left verbs behind")
	}
}

func TestRawPathOvalBounds(t *testing.T) {
	var p RawPath
	p.AddOval(0, 0, 20, 10)
	b := p.Bounds()
	if b.MinX != 0 || b.MinY != 0 || b.MaxX != 20 || b.MaxY != 10 {
		t.Errorf("Bounds() = %+v, want 0,0,20,10", b)
	}
}

func TestColorIntChannels(t *testing.T) {
	c := ARGB(0x80, 0x11, 0x22, 0x33)
	if c != 0x80112233 {
		t.Fatalf("ARGB() = %#x", uint32(c))
	}
	if c.A() != 0x80 || c.R() != 0x11 || c.G() != 0x22 || c.B() != 0x33 {
		t.Errorf("channels = %x %x %x %x", c.A(), c.R(), c.G(), c.B())
	}
	if got := ARGB(0xff, 1, 2, 3).WithOpacity(0.5); got.A() != 0x80 || got&0xffffff != 0x010203 {
		t.Errorf("WithOpacity(0.5) = %#x", uint32(got))
	}
}

func TestBlendModeNames(t *testing.T) {
	for m, name := range blendNames {
		got, ok := ParseBlendMode(name)
		if !ok || got != m {
			t.Errorf("ParseBlendMode(%q) = %v, %v", name, got, ok)
		}
	}
	if BlendSrcOver != 3 || BlendMultiply != 24 || BlendLuminosity != 28 {
		t.Error("blend mode values changed")
	}
}
