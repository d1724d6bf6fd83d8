package animbridge

import (
	"slices"
	"testing"

	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

func TestRefsReleaseOnce(t *testing.T) {
	n := 0
	r := newRefs(func() { n++ })
	r.Ref()
	r.Unref()
	if n != 0 {
		t.Fatalf("released after first Unref with two owners")
	}
	r.Unref()
	if n != 1 {
		t.Fatalf("release ran %d times after last Unref, want 1", n)
	}
}

func TestFactoryPrimitivesReleaseHandles(t *testing.T) {
	b := newFakeBackend()
	f := NewFactory(b)

	prims := []engine.RefCounted{
		f.MakeRenderBuffer(engine.BufferVertex, engine.BufferFlagsNone, 16),
		f.MakeEmptyRenderPath(),
		f.MakeRenderPath(testPath(), engine.FillNonZero),
		f.MakeRenderPaint(),
		f.MakeLinearGradient(0, 0, 1, 1, []engine.ColorInt{0xFF000000, 0xFFFFFFFF}, []float32{0, 1}),
		f.MakeRadialGradient(0, 0, 1, []engine.ColorInt{0xFF000000, 0xFFFFFFFF}, []float32{0, 1}),
		f.DecodeImage([]byte{1}),
	}
	if f.Live() != len(prims) || b.live != len(prims) {
		t.Fatalf("Live() = %d, backend live = %d, want %d", f.Live(), b.live, len(prims))
	}

	for _, p := range prims {
		p.Ref()
		p.Unref()
		p.Unref()
	}
	if f.Live() != 0 {
		t.Errorf("Live() = %d after release, want 0", f.Live())
	}
	if b.live != 0 || b.releases != len(prims) {
		t.Errorf("backend live = %d, releases = %d, want 0, %d", b.live, b.releases, len(prims))
	}
}

func TestFactoryStreamsPathVerbs(t *testing.T) {
	b := newFakeBackend()
	f := NewFactory(b)
	p := f.MakeRenderPath(testPath(), engine.FillEvenOdd)
	defer p.Unref()

	want := []engine.PathVerb{engine.VerbMove, engine.VerbLine, engine.VerbCubic, engine.VerbClose}
	if !slices.Equal(b.verbs, want) {
		t.Errorf("streamed verbs = %v, want %v", b.verbs, want)
	}
}

func TestFactoryFailedDecodeIsNil(t *testing.T) {
	f := NewFactory(newFakeBackend())
	if img := f.DecodeImage(nil); img != nil {
		t.Errorf("DecodeImage(nil) = %v, want nil", img)
	}
	if f.Live() != 0 {
		t.Errorf("Live() = %d, want 0", f.Live())
	}
}

type foreignPath struct{ engine.RenderPath }

type foreignShader struct{}

func (foreignShader) Ref()   {}
func (foreignShader) Unref() {}

func TestAddRenderPathIgnoresForeignPaths(t *testing.T) {
	b := newFakeBackend()
	f := NewFactory(b)
	dst := f.MakeEmptyRenderPath()
	src := f.MakeEmptyRenderPath()
	defer dst.Unref()
	defer src.Unref()

	dst.AddRenderPath(foreignPath{}, geom.Identity())
	dst.AddRenderPath(src, geom.Identity())
	if want := []string{"extend"}; !slices.Equal(b.calls, want) {
		t.Errorf("calls = %v, want %v", b.calls, want)
	}
}

func TestPaintShaderBinding(t *testing.T) {
	b := newFakeBackend()
	f := NewFactory(b)
	paint := f.MakeRenderPaint()
	shader := f.MakeLinearGradient(0, 0, 1, 0, []engine.ColorInt{0xFF000000, 0xFFFFFFFF}, []float32{0, 1})

	paint.Shader(shader)
	// The paint does not own the shader: the engine's reference is the
	// last one.
	shader.Unref()
	paint.Shader(nil)
	paint.Shader(foreignShader{})
	paint.Unref()

	want := []string{"bindGradient", "unbindGradient", "unbindGradient"}
	if !slices.Equal(b.calls, want) {
		t.Errorf("calls = %v, want %v", b.calls, want)
	}
	if b.live != 0 {
		t.Errorf("backend live = %d, want 0", b.live)
	}
}

func TestRendererSkipsForeignPrimitives(t *testing.T) {
	b := newFakeBackend()
	f := NewFactory(b)
	path := f.MakeEmptyRenderPath()
	paint := f.MakeRenderPaint()
	defer path.Unref()
	defer paint.Unref()

	r := rendererAdapter{backend: b}
	r.Save()
	r.Transform(geom.Identity())
	r.ClipPath(foreignPath{})
	r.ClipPath(path)
	r.DrawPath(foreignPath{}, paint)
	r.DrawPath(path, paint)
	r.DrawImage(nil, engine.BlendSrcOver, 1)
	r.Restore()

	want := []string{"save", "transform", "clip", "drawPath", "restore"}
	if !slices.Equal(b.calls, want) {
		t.Errorf("calls = %v, want %v", b.calls, want)
	}
}

func TestPrimitiveKindString(t *testing.T) {
	tests := []struct {
		kind primitiveKind
		want string
	}{
		{kindBuffer, "buffer"},
		{kindPath, "path"},
		{kindPaint, "paint"},
		{kindGradient, "gradient"},
		{kindImage, "image"},
		{numKinds, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
