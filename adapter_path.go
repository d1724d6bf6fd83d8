package animbridge

import (
	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

type pathAdapter struct {
	refs
	backend Backend
	handle  PathHandle
}

var _ engine.RenderPath = (*pathAdapter)(nil)

func newPathAdapter(f *Factory, h PathHandle) *pathAdapter {
	p := &pathAdapter{backend: f.backend, handle: h}
	p.refs = newRefs(f.track(kindPath, func() { f.backend.ReleasePath(h) }))
	return p
}

func (p *pathAdapter) Rewind() { p.backend.ResetPath(p.handle) }

// AddRenderPath appends other. Paths that were not created by a bridge
// factory are ignored.
func (p *pathAdapter) AddRenderPath(other engine.RenderPath, m geom.Mat2D) {
	src, ok := other.(*pathAdapter)
	if !ok {
		return
	}
	p.backend.ExtendPath(p.handle, src.handle, m)
}

func (p *pathAdapter) FillRule(rule engine.FillRule) { p.backend.SetPathFillRule(p.handle, rule) }
func (p *pathAdapter) MoveTo(x, y float32)           { p.backend.PathMoveTo(p.handle, x, y) }
func (p *pathAdapter) LineTo(x, y float32)           { p.backend.PathLineTo(p.handle, x, y) }
func (p *pathAdapter) Close()                        { p.backend.PathClose(p.handle) }

func (p *pathAdapter) CubicTo(ox, oy, ix, iy, x, y float32) {
	p.backend.PathCubicTo(p.handle, ox, oy, ix, iy, x, y)
}
