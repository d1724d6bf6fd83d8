package animbridge

import (
	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

// rendererAdapter wraps a backend draw target for the duration of a
// single draw call. Primitives that did not come from a bridge factory
// are skipped.
type rendererAdapter struct {
	backend Backend
	handle  RendererHandle
}

var _ engine.Renderer = rendererAdapter{}

func (r rendererAdapter) Save()                  { r.backend.Save(r.handle) }
func (r rendererAdapter) Restore()               { r.backend.Restore(r.handle) }
func (r rendererAdapter) Transform(m geom.Mat2D) { r.backend.Transform(r.handle, m) }

func (r rendererAdapter) ClipPath(p engine.RenderPath) {
	if path, ok := p.(*pathAdapter); ok {
		r.backend.SetClip(r.handle, path.handle)
	}
}

func (r rendererAdapter) DrawPath(p engine.RenderPath, paint engine.RenderPaint) {
	path, ok := p.(*pathAdapter)
	if !ok {
		return
	}
	pt, ok := paint.(*paintAdapter)
	if !ok {
		return
	}
	r.backend.DrawPath(r.handle, path.handle, pt.handle)
}

func (r rendererAdapter) DrawImage(img engine.RenderImage, blend engine.BlendMode, opacity float32) {
	if im, ok := img.(*imageAdapter); ok {
		r.backend.DrawImage(r.handle, im.handle, blend, opacity)
	}
}

func (r rendererAdapter) DrawImageMesh(img engine.RenderImage, vertices, uvs, indices engine.RenderBuffer, blend engine.BlendMode, opacity float32) {
	im, ok := img.(*imageAdapter)
	if !ok {
		return
	}
	v, ok1 := vertices.(*bufferAdapter)
	uv, ok2 := uvs.(*bufferAdapter)
	idx, ok3 := indices.(*bufferAdapter)
	if !ok1 || !ok2 || !ok3 {
		return
	}
	r.backend.DrawImageMesh(r.handle, im.handle, v.handle, uv.handle, idx.handle, blend, opacity)
}
