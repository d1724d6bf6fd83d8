package record

import (
	"github.com/gogpu/animbridge"
	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

// Canvas is the renderer handle of the recording backend. It collects
// the commands of one or more frames.
type Canvas struct {
	commands []Command
	stack    []geom.Mat2D
	ctm      geom.Mat2D
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{ctm: geom.Identity()}
}

// Commands returns the recorded commands.
func (c *Canvas) Commands() []Command { return c.commands }

// Depth returns the current save depth.
func (c *Canvas) Depth() int { return len(c.stack) }

// Reset drops recorded commands and state.
func (c *Canvas) Reset() {
	c.commands = c.commands[:0]
	c.stack = c.stack[:0]
	c.ctm = geom.Identity()
}

// Count returns how many recorded commands have type t.
func (c *Canvas) Count(t CommandType) int {
	n := 0
	for _, cmd := range c.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Draws returns the recorded DrawPath commands.
func (c *Canvas) Draws() []DrawPath {
	var out []DrawPath
	for _, cmd := range c.commands {
		if d, ok := cmd.(DrawPath); ok {
			out = append(out, d)
		}
	}
	return out
}

func canvas(h animbridge.RendererHandle) *Canvas { return h.(*Canvas) }

// Save implements animbridge.Backend.
func (b *Backend) Save(r animbridge.RendererHandle) {
	c := canvas(r)
	c.stack = append(c.stack, c.ctm)
	c.commands = append(c.commands, Save{})
}

// Restore implements animbridge.Backend.
func (b *Backend) Restore(r animbridge.RendererHandle) {
	c := canvas(r)
	c.commands = append(c.commands, Restore{})
	if len(c.stack) == 0 {
		b.fault("restore without save")
		return
	}
	c.ctm = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Transform implements animbridge.Backend.
func (b *Backend) Transform(r animbridge.RendererHandle, m geom.Mat2D) {
	c := canvas(r)
	c.ctm = c.ctm.Multiply(m)
	c.commands = append(c.commands, Transform{Matrix: m})
}

// SetClip implements animbridge.Backend.
func (b *Backend) SetClip(r animbridge.RendererHandle, p animbridge.PathHandle) {
	path := p.(*Path)
	b.use(KindPath, &path.resource)
	c := canvas(r)
	c.commands = append(c.commands, Clip{Path: path.snapshot()})
}

// DrawPath implements animbridge.Backend.
func (b *Backend) DrawPath(r animbridge.RendererHandle, p animbridge.PathHandle, paint animbridge.PaintHandle) {
	path, pt := p.(*Path), paint.(*Paint)
	b.use(KindPath, &path.resource)
	b.use(KindPaint, &pt.resource)
	c := canvas(r)
	c.commands = append(c.commands, DrawPath{Path: path.snapshot(), Paint: *pt, CTM: c.ctm})
}

// DrawImage implements animbridge.Backend.
func (b *Backend) DrawImage(r animbridge.RendererHandle, img animbridge.ImageHandle, blend engine.BlendMode, opacity float32) {
	im := img.(*Image)
	b.use(KindImage, &im.resource)
	c := canvas(r)
	c.commands = append(c.commands, DrawImage{Image: im, Blend: blend, Opacity: opacity, CTM: c.ctm})
}

// DrawImageMesh implements animbridge.Backend.
func (b *Backend) DrawImageMesh(r animbridge.RendererHandle, img animbridge.ImageHandle, vertices, uvs, indices animbridge.BufferHandle, blend engine.BlendMode, opacity float32) {
	im := img.(*Image)
	v, uv, idx := vertices.(*Buffer), uvs.(*Buffer), indices.(*Buffer)
	for _, buf := range []*Buffer{v, uv, idx} {
		b.use(KindBuffer, &buf.resource)
		if buf.mapped {
			b.fault("draw with mapped buffer", "id", buf.id)
		}
	}
	c := canvas(r)
	c.commands = append(c.commands, DrawImageMesh{
		Image:    im,
		Vertices: v.Vertices(),
		UVs:      uv.Vertices(),
		Indices:  idx.Indices(),
		Blend:    blend,
		Opacity:  opacity,
		CTM:      c.ctm,
	})
}
