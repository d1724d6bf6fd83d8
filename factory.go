package animbridge

import (
	"log/slog"

	"github.com/gogpu/animbridge/engine"
)

// Factory implements engine.Factory on top of a Backend. Every primitive
// it returns wraps a backend handle that is released exactly once, when
// the primitive's last reference is dropped.
//
// A Factory created by Import lives exactly as long as its File and is
// released with it. It must outlive every primitive it created.
type Factory struct {
	backend  Backend
	log      *slog.Logger
	live     [numKinds]int
	released bool
}

var _ engine.Factory = (*Factory)(nil)

// NewFactory returns a factory forwarding to b. Import creates one per
// file; engines under test can use one directly.
func NewFactory(b Backend) *Factory {
	return newFactory(b, Logger())
}

func newFactory(b Backend, log *slog.Logger) *Factory {
	return &Factory{backend: b, log: log}
}

// Backend returns the command table the factory forwards to.
func (f *Factory) Backend() Backend { return f.backend }

// Live returns the number of primitives created by f that still hold a
// backend handle.
func (f *Factory) Live() int {
	n := 0
	for _, c := range f.live {
		n += c
	}
	return n
}

// track records a new live primitive and returns the release callback
// that frees its handle and untracks it.
func (f *Factory) track(kind primitiveKind, free func()) func() {
	f.live[kind]++
	return func() {
		free()
		f.live[kind]--
	}
}

// release ends the factory's life. Primitives still alive at this point
// are an ownership bug in the caller or the engine.
func (f *Factory) release() {
	if f.released {
		return
	}
	f.released = true
	if n := f.Live(); n > 0 {
		attrs := []any{slog.Int("live", n)}
		for k := range numKinds {
			if f.live[k] > 0 {
				attrs = append(attrs, slog.Int(k.String(), f.live[k]))
			}
		}
		f.log.Warn("animbridge: factory released with live primitives", attrs...)
	}
}

// MakeRenderBuffer implements engine.Factory.
func (f *Factory) MakeRenderBuffer(t engine.BufferType, flags engine.BufferFlags, sizeInBytes int) engine.RenderBuffer {
	h := f.backend.NewBuffer(t, flags, sizeInBytes)
	if h == nil {
		f.log.Debug("animbridge: buffer allocation failed", "type", t, "size", sizeInBytes)
		return nil
	}
	return newBufferAdapter(f, h, t, flags, sizeInBytes)
}

// MakeLinearGradient implements engine.Factory.
func (f *Factory) MakeLinearGradient(sx, sy, ex, ey float32, colors []engine.ColorInt, stops []float32) engine.RenderShader {
	h := f.backend.NewLinearGradient(sx, sy, ex, ey, colors, stops)
	if h == nil {
		return nil
	}
	return newShaderAdapter(f, h)
}

// MakeRadialGradient implements engine.Factory.
func (f *Factory) MakeRadialGradient(cx, cy, radius float32, colors []engine.ColorInt, stops []float32) engine.RenderShader {
	h := f.backend.NewRadialGradient(cx, cy, radius, colors, stops)
	if h == nil {
		return nil
	}
	return newShaderAdapter(f, h)
}

// MakeRenderPath implements engine.Factory. The raw path is streamed to
// the backend through a Commands cursor.
func (f *Factory) MakeRenderPath(raw *engine.RawPath, rule engine.FillRule) engine.RenderPath {
	cmds := newCommands(raw)
	h := f.backend.NewPathFromCommands(&cmds, rule)
	if h == nil {
		return nil
	}
	return newPathAdapter(f, h)
}

// MakeEmptyRenderPath implements engine.Factory.
func (f *Factory) MakeEmptyRenderPath() engine.RenderPath {
	h := f.backend.NewPath()
	if h == nil {
		return nil
	}
	return newPathAdapter(f, h)
}

// MakeRenderPaint implements engine.Factory.
func (f *Factory) MakeRenderPaint() engine.RenderPaint {
	h := f.backend.NewPaint()
	if h == nil {
		return nil
	}
	return newPaintAdapter(f, h)
}

// DecodeImage implements engine.Factory. A backend decode failure is
// reported as a nil image.
func (f *Factory) DecodeImage(encoded []byte) engine.RenderImage {
	h := f.backend.DecodeImage(encoded)
	if h == nil {
		f.log.Debug("animbridge: image decode failed", "bytes", len(encoded))
		return nil
	}
	return newImageAdapter(f, h)
}
