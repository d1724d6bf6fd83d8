package animbridge

import "github.com/gogpu/animbridge/engine"

// paintAdapter forwards paint state to the backend. It does not retain
// the shaders bound to it: binding copies whatever the backend needs,
// and each shader adapter releases its own handle.
type paintAdapter struct {
	refs
	backend Backend
	handle  PaintHandle
}

var _ engine.RenderPaint = (*paintAdapter)(nil)

func newPaintAdapter(f *Factory, h PaintHandle) *paintAdapter {
	p := &paintAdapter{backend: f.backend, handle: h}
	p.refs = newRefs(f.track(kindPaint, func() { f.backend.ReleasePaint(h) }))
	return p
}

func (p *paintAdapter) Style(s engine.PaintStyle)    { p.backend.SetPaintStyle(p.handle, s) }
func (p *paintAdapter) Color(c engine.ColorInt)      { p.backend.SetPaintColor(p.handle, c) }
func (p *paintAdapter) Thickness(w float32)          { p.backend.SetPaintThickness(p.handle, w) }
func (p *paintAdapter) Join(j engine.StrokeJoin)     { p.backend.SetPaintJoin(p.handle, j) }
func (p *paintAdapter) Cap(c engine.StrokeCap)       { p.backend.SetPaintCap(p.handle, c) }
func (p *paintAdapter) BlendMode(m engine.BlendMode) { p.backend.SetPaintBlendMode(p.handle, m) }
func (p *paintAdapter) InvalidateStroke()            { p.backend.InvalidatePaintStroke(p.handle) }

// Shader binds s. A nil shader, or one from outside the bridge, clears
// the binding.
func (p *paintAdapter) Shader(s engine.RenderShader) {
	var h GradientHandle
	if sh, ok := s.(*shaderAdapter); ok && sh != nil {
		h = sh.handle
	}
	p.backend.SetPaintGradient(p.handle, h)
}
