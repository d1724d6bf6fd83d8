package animbridge

import (
	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

// fakeBackend counts live handles and records renderer calls by name.
// Tests in this package cannot import backend/record, which imports
// this package.
type fakeBackend struct {
	live     int
	releases int
	verbs    []engine.PathVerb
	calls    []string
}

type fakeHandle struct{ released bool }

func newFakeBackend() *fakeBackend { return &fakeBackend{} }

func (b *fakeBackend) alloc() *fakeHandle {
	b.live++
	return &fakeHandle{}
}

func (b *fakeBackend) free(h any) {
	fh := h.(*fakeHandle)
	if !fh.released {
		fh.released = true
		b.live--
	}
	b.releases++
}

func (b *fakeBackend) NewBuffer(engine.BufferType, engine.BufferFlags, int) BufferHandle {
	return b.alloc()
}
func (b *fakeBackend) MapBuffer(BufferHandle) []byte { return nil }
func (b *fakeBackend) UnmapBuffer(BufferHandle)      {}
func (b *fakeBackend) ReleaseBuffer(h BufferHandle)  { b.free(h) }
func (b *fakeBackend) NewPath() PathHandle           { return b.alloc() }

func (b *fakeBackend) NewPathFromCommands(cmds *Commands, _ engine.FillRule) PathHandle {
	for verb := range cmds.All() {
		b.verbs = append(b.verbs, verb)
	}
	return b.alloc()
}

func (b *fakeBackend) ReleasePath(h PathHandle)                        { b.free(h) }
func (b *fakeBackend) ResetPath(PathHandle)                            {}
func (b *fakeBackend) ExtendPath(_, _ PathHandle, _ geom.Mat2D)        { b.calls = append(b.calls, "extend") }
func (b *fakeBackend) SetPathFillRule(PathHandle, engine.FillRule)     {}
func (b *fakeBackend) PathMoveTo(PathHandle, float32, float32)         {}
func (b *fakeBackend) PathLineTo(PathHandle, float32, float32)         {}
func (b *fakeBackend) PathClose(PathHandle)                            {}
func (b *fakeBackend) NewPaint() PaintHandle                           { return b.alloc() }
func (b *fakeBackend) ReleasePaint(h PaintHandle)                      { b.free(h) }
func (b *fakeBackend) SetPaintStyle(PaintHandle, engine.PaintStyle)    {}
func (b *fakeBackend) SetPaintColor(PaintHandle, engine.ColorInt)      {}
func (b *fakeBackend) SetPaintThickness(PaintHandle, float32)          {}
func (b *fakeBackend) SetPaintJoin(PaintHandle, engine.StrokeJoin)     {}
func (b *fakeBackend) SetPaintCap(PaintHandle, engine.StrokeCap)       {}
func (b *fakeBackend) SetPaintBlendMode(PaintHandle, engine.BlendMode) {}
func (b *fakeBackend) InvalidatePaintStroke(PaintHandle)               {}
func (b *fakeBackend) ReleaseGradient(h GradientHandle)                { b.free(h) }
func (b *fakeBackend) ReleaseImage(h ImageHandle)                      { b.free(h) }
func (b *fakeBackend) Save(RendererHandle)                             { b.calls = append(b.calls, "save") }
func (b *fakeBackend) Restore(RendererHandle)                          { b.calls = append(b.calls, "restore") }
func (b *fakeBackend) SetClip(RendererHandle, PathHandle)              { b.calls = append(b.calls, "clip") }
func (b *fakeBackend) DrawPath(RendererHandle, PathHandle, PaintHandle) {
	b.calls = append(b.calls, "drawPath")
}

func (b *fakeBackend) PathCubicTo(PathHandle, float32, float32, float32, float32, float32, float32) {}

func (b *fakeBackend) SetPaintGradient(_ PaintHandle, g GradientHandle) {
	if g == nil {
		b.calls = append(b.calls, "unbindGradient")
		return
	}
	b.calls = append(b.calls, "bindGradient")
}

func (b *fakeBackend) NewLinearGradient(float32, float32, float32, float32, []engine.ColorInt, []float32) GradientHandle {
	return b.alloc()
}

func (b *fakeBackend) NewRadialGradient(float32, float32, float32, []engine.ColorInt, []float32) GradientHandle {
	return b.alloc()
}

func (b *fakeBackend) DecodeImage(data []byte) ImageHandle {
	if len(data) == 0 {
		return nil
	}
	return b.alloc()
}

func (b *fakeBackend) Transform(RendererHandle, geom.Mat2D) {
	b.calls = append(b.calls, "transform")
}

func (b *fakeBackend) DrawImage(RendererHandle, ImageHandle, engine.BlendMode, float32) {
	b.calls = append(b.calls, "drawImage")
}

func (b *fakeBackend) DrawImageMesh(RendererHandle, ImageHandle, BufferHandle, BufferHandle, BufferHandle, engine.BlendMode, float32) {
	b.calls = append(b.calls, "drawImageMesh")
}

// fakeChild is a component with a fixed core type.
type fakeChild struct {
	typ  uint16
	name string
	b    bool
	n    float32
	s    string
}

func (c *fakeChild) CoreType() uint16 { return c.typ }
func (c *fakeChild) Name() string     { return c.name }

type fakeBool struct{ *fakeChild }

func (p fakeBool) PropertyValue() bool { return p.b }

type fakeNumber struct{ *fakeChild }

func (p fakeNumber) PropertyValue() float32 { return p.n }

type fakeString struct{ *fakeChild }

func (p fakeString) PropertyValue() string { return p.s }

type fakeEvent struct {
	name     string
	children []engine.Component
}

func (e *fakeEvent) CoreType() uint16             { return engine.TypeEvent }
func (e *fakeEvent) Name() string                 { return e.name }
func (e *fakeEvent) Children() []engine.Component { return e.children }
