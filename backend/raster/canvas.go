package raster

import (
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/animbridge"
	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

// Canvas is the raster renderer handle: a gg.Context plus the save
// depth, which is tracked so that an unbalanced Restore is reported
// instead of silently ignored.
type Canvas struct {
	ctx   *gg.Context
	depth int
}

// NewCanvas returns a transparent width x height canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{ctx: gg.NewContext(width, height)}
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.ctx }

// Clear fills the canvas with a solid color.
func (c *Canvas) Clear(col engine.ColorInt) { c.ctx.ClearWithColor(toRGBA(col, 1)) }

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.ctx.EncodePNG(w) }

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error { return c.ctx.SavePNG(path) }

// Close releases the gg context.
func (c *Canvas) Close() error { return c.ctx.Close() }

func canvas(h animbridge.RendererHandle) *Canvas { return h.(*Canvas) }

// Save implements animbridge.Backend.
func (b *Backend) Save(r animbridge.RendererHandle) {
	c := canvas(r)
	c.depth++
	c.ctx.Push()
}

// Restore implements animbridge.Backend.
func (b *Backend) Restore(r animbridge.RendererHandle) {
	c := canvas(r)
	if c.depth == 0 {
		animbridge.Logger().Warn("raster: restore without save")
		return
	}
	c.depth--
	c.ctx.Pop()
}

// Transform implements animbridge.Backend.
func (b *Backend) Transform(r animbridge.RendererHandle, m geom.Mat2D) {
	canvas(r).ctx.Transform(toMatrix(m))
}

// SetClip implements animbridge.Backend. The clip is intersected with
// the current one and lasts until the enclosing Restore.
func (b *Backend) SetClip(r animbridge.RendererHandle, p animbridge.PathHandle) {
	c := canvas(r)
	path := p.(*path)
	c.ctx.ClearPath()
	c.ctx.SetFillRule(toFillRule(path.rule))
	replay(c.ctx, path.p)
	c.ctx.Clip()
}

// DrawPath implements animbridge.Backend. A paint blend mode other
// than src-over composites the shape through a gg layer.
func (b *Backend) DrawPath(r animbridge.RendererHandle, p animbridge.PathHandle, pt animbridge.PaintHandle) {
	c := canvas(r)
	path, paint := p.(*path), pt.(*paint)

	if paint.blend != engine.BlendSrcOver {
		c.ctx.PushLayer(toBlendMode(paint.blend), 1)
		defer c.ctx.PopLayer()
	}

	c.ctx.ClearPath()
	replay(c.ctx, path.p)

	brush := paint.brush(c.ctx.GetTransform())
	if paint.style == engine.PaintStroke {
		c.ctx.SetStrokeBrush(brush)
		c.ctx.SetLineWidth(float64(paint.thickness))
		c.ctx.SetLineCap(toLineCap(paint.cap))
		c.ctx.SetLineJoin(toLineJoin(paint.join))
		_ = c.ctx.Stroke()
		return
	}
	c.ctx.SetFillBrush(brush)
	c.ctx.SetFillRule(toFillRule(path.rule))
	_ = c.ctx.Fill()
}

// DrawImage implements animbridge.Backend. The image is drawn with its
// top-left corner at the origin of the current transform.
func (b *Backend) DrawImage(r animbridge.RendererHandle, img animbridge.ImageHandle, blend engine.BlendMode, opacity float32) {
	im := img.(*rasterImage)
	canvas(r).ctx.DrawImageEx(im.buf, gg.DrawImageOptions{
		Interpolation: gg.InterpBilinear,
		Opacity:       float64(opacity),
		BlendMode:     toBlendMode(blend),
	})
}

// DrawImageMesh implements animbridge.Backend. Each triangle is drawn
// as the image clipped to the triangle and mapped by the affine
// transform taking its uv corners to its vertices.
func (b *Backend) DrawImageMesh(r animbridge.RendererHandle, img animbridge.ImageHandle, vertices, uvs, indices animbridge.BufferHandle, blend engine.BlendMode, opacity float32) {
	c := canvas(r)
	im := img.(*rasterImage)
	pos := engine.DecodeVertices(vertices.(*buffer).data)
	tex := engine.DecodeVertices(uvs.(*buffer).data)
	idx := engine.DecodeIndices(indices.(*buffer).data)

	size := geom.V(float32(im.width), float32(im.height))
	opts := gg.DrawImageOptions{
		Interpolation: gg.InterpBilinear,
		Opacity:       float64(opacity),
		BlendMode:     toBlendMode(blend),
	}
	for t := 0; t+2 < len(idx); t += 3 {
		i0, i1, i2 := int(idx[t]), int(idx[t+1]), int(idx[t+2])
		if i0 >= len(pos) || i1 >= len(pos) || i2 >= len(pos) ||
			i0 >= len(tex) || i1 >= len(tex) || i2 >= len(tex) {
			continue
		}
		m, ok := triangleMapping(
			[3]geom.Vec2D{scale(tex[i0], size), scale(tex[i1], size), scale(tex[i2], size)},
			[3]geom.Vec2D{pos[i0], pos[i1], pos[i2]},
		)
		if !ok {
			continue
		}

		c.ctx.Push()
		c.ctx.ClearPath()
		c.ctx.MoveTo(float64(pos[i0].X), float64(pos[i0].Y))
		c.ctx.LineTo(float64(pos[i1].X), float64(pos[i1].Y))
		c.ctx.LineTo(float64(pos[i2].X), float64(pos[i2].Y))
		c.ctx.ClosePath()
		c.ctx.Clip()
		c.ctx.Transform(toMatrix(m))
		c.ctx.DrawImageEx(im.buf, opts)
		c.ctx.Pop()
	}
}

func scale(uv, size geom.Vec2D) geom.Vec2D {
	return geom.V(uv.X*size.X, uv.Y*size.Y)
}

// triangleMapping returns the affine transform taking src[i] to dst[i].
func triangleMapping(src, dst [3]geom.Vec2D) (geom.Mat2D, bool) {
	basis := func(p [3]geom.Vec2D) geom.Mat2D {
		return geom.Mat2D{
			A: p[1].X - p[0].X, B: p[2].X - p[0].X, C: p[0].X,
			D: p[1].Y - p[0].Y, E: p[2].Y - p[0].Y, F: p[0].Y,
		}
	}
	inv, ok := basis(src).Invert()
	if !ok {
		return geom.Identity(), false
	}
	return basis(dst).Multiply(inv), true
}

// replay adds p's verbs to the context's current path. The context
// applies its current transform to every point.
func replay(ctx *gg.Context, p *gg.Path) {
	p.Iterate(func(verb gg.PathVerb, c []float64) {
		switch verb {
		case gg.MoveTo:
			ctx.MoveTo(c[0], c[1])
		case gg.LineTo:
			ctx.LineTo(c[0], c[1])
		case gg.QuadTo:
			ctx.QuadraticTo(c[0], c[1], c[2], c[3])
		case gg.CubicTo:
			ctx.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
		case gg.Close:
			ctx.ClosePath()
		}
	})
}

// brush builds the gg brush for p. Gradient geometry is given in path
// space and is mapped to device space with ctm.
func (p *paint) brush(ctm gg.Matrix) gg.Brush {
	g := p.gradient
	if g == nil {
		return gg.Solid(toRGBA(p.color, 1))
	}
	// Paint alpha modulates gradient colors.
	alpha := float64(p.color.A()) / 255

	start := ctm.TransformPoint(gg.Pt(float64(g.start.X), float64(g.start.Y)))
	if g.radial {
		det := math.Abs(ctm.A*ctm.E - ctm.B*ctm.D)
		radius := float64(g.radius) * math.Sqrt(det)
		rg := gg.NewRadialGradientBrush(start.X, start.Y, 0, radius)
		for i, c := range g.colors {
			rg.AddColorStop(stopAt(g.stops, i), toRGBA(c, alpha))
		}
		return rg
	}
	end := ctm.TransformPoint(gg.Pt(float64(g.end.X), float64(g.end.Y)))
	lg := gg.NewLinearGradientBrush(start.X, start.Y, end.X, end.Y)
	for i, c := range g.colors {
		lg.AddColorStop(stopAt(g.stops, i), toRGBA(c, alpha))
	}
	return lg
}

func stopAt(stops []float32, i int) float64 {
	if i < len(stops) {
		return float64(stops[i])
	}
	return 1
}
