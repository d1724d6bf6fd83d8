package animbridge

import (
	"testing"

	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

func testPath() *engine.RawPath {
	var p engine.RawPath
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.CubicTo(5, 6, 7, 8, 9, 10)
	p.Close()
	return &p
}

func TestCommandsNext(t *testing.T) {
	cmds := newCommands(testPath())
	if got := cmds.Count(); got != 4 {
		t.Fatalf("Count() = %d, want 4", got)
	}

	want := []struct {
		verb engine.PathVerb
		pts  []geom.Vec2D
	}{
		{engine.VerbMove, []geom.Vec2D{{X: 1, Y: 2}}},
		{engine.VerbLine, []geom.Vec2D{{X: 3, Y: 4}}},
		{engine.VerbCubic, []geom.Vec2D{{X: 5, Y: 6}, {X: 7, Y: 8}, {X: 9, Y: 10}}},
		{engine.VerbClose, nil},
	}
	for i, w := range want {
		verb, pts := cmds.Next()
		if verb != w.verb {
			t.Errorf("Next() #%d verb = %v, want %v", i, verb, w.verb)
		}
		if len(pts) != len(w.pts) {
			t.Errorf("Next() #%d got %d points, want %d", i, len(pts), len(w.pts))
			continue
		}
		for j := range pts {
			if pts[j] != w.pts[j] {
				t.Errorf("Next() #%d point %d = %v, want %v", i, j, pts[j], w.pts[j])
			}
		}
	}
}

func TestCommandsAll(t *testing.T) {
	cmds := newCommands(testPath())
	var verbs []engine.PathVerb
	for verb, pts := range cmds.All() {
		if len(pts) != verb.PointCount() {
			t.Errorf("%v carries %d points, want %d", verb, len(pts), verb.PointCount())
		}
		verbs = append(verbs, verb)
	}
	want := []engine.PathVerb{engine.VerbMove, engine.VerbLine, engine.VerbCubic, engine.VerbClose}
	if len(verbs) != len(want) {
		t.Fatalf("All() yielded %d verbs, want %d", len(verbs), len(want))
	}
	for i := range want {
		if verbs[i] != want[i] {
			t.Errorf("verb %d = %v, want %v", i, verbs[i], want[i])
		}
	}
}

func TestCommandsAllAfterNext(t *testing.T) {
	cmds := newCommands(testPath())
	cmds.Next()
	n := 0
	for range cmds.All() {
		n++
	}
	if n != 3 {
		t.Errorf("All() after one Next yielded %d verbs, want 3", n)
	}
}

func TestCommandsEmptyPath(t *testing.T) {
	cmds := newCommands(&engine.RawPath{})
	if got := cmds.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
	for range cmds.All() {
		t.Fatal("All() yielded a verb for an empty path")
	}
}
