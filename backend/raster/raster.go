package raster

import (
	"bytes"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"github.com/gogpu/gg"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/animbridge"
	"github.com/gogpu/animbridge/backend"
	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

func init() {
	backend.Register(backend.Raster, func() animbridge.Backend { return New() })
}

// Backend rasterizes through gg. It holds no state of its own; every
// resource lives in its handle.
type Backend struct{}

var (
	_ animbridge.Backend   = (*Backend)(nil)
	_ animbridge.Versioned = (*Backend)(nil)
)

// New returns a raster backend.
func New() *Backend { return &Backend{} }

// CommandTableVersion implements animbridge.Versioned.
func (b *Backend) CommandTableVersion() uint32 { return animbridge.CommandTableVersion }

type buffer struct {
	data []byte
}

type path struct {
	p    *gg.Path
	rule engine.FillRule
}

type gradient struct {
	radial bool
	start  geom.Vec2D
	end    geom.Vec2D
	radius float32
	colors []engine.ColorInt
	stops  []float32
}

type paint struct {
	style     engine.PaintStyle
	color     engine.ColorInt
	thickness float32
	join      engine.StrokeJoin
	cap       engine.StrokeCap
	blend     engine.BlendMode
	gradient  *gradient
}

type rasterImage struct {
	buf           *gg.ImageBuf
	width, height int
}

// NewBuffer implements animbridge.Backend.
func (b *Backend) NewBuffer(_ engine.BufferType, _ engine.BufferFlags, size int) animbridge.BufferHandle {
	if size < 0 {
		return nil
	}
	return &buffer{data: make([]byte, size)}
}

// MapBuffer implements animbridge.Backend.
func (b *Backend) MapBuffer(h animbridge.BufferHandle) []byte { return h.(*buffer).data }

// UnmapBuffer implements animbridge.Backend.
func (b *Backend) UnmapBuffer(animbridge.BufferHandle) {}

// ReleaseBuffer implements animbridge.Backend.
func (b *Backend) ReleaseBuffer(h animbridge.BufferHandle) { h.(*buffer).data = nil }

// NewPath implements animbridge.Backend.
func (b *Backend) NewPath() animbridge.PathHandle {
	return &path{p: gg.NewPath()}
}

// NewPathFromCommands implements animbridge.Backend.
func (b *Backend) NewPathFromCommands(cmds *animbridge.Commands, rule engine.FillRule) animbridge.PathHandle {
	p := &path{p: gg.NewPath(), rule: rule}
	for range cmds.Count() {
		verb, pts := cmds.Next()
		switch verb {
		case engine.VerbMove:
			p.p.MoveTo(float64(pts[0].X), float64(pts[0].Y))
		case engine.VerbLine:
			p.p.LineTo(float64(pts[0].X), float64(pts[0].Y))
		case engine.VerbCubic:
			p.p.CubicTo(
				float64(pts[0].X), float64(pts[0].Y),
				float64(pts[1].X), float64(pts[1].Y),
				float64(pts[2].X), float64(pts[2].Y))
		case engine.VerbClose:
			p.p.Close()
		}
	}
	return p
}

// ReleasePath implements animbridge.Backend.
func (b *Backend) ReleasePath(h animbridge.PathHandle) { h.(*path).p = nil }

// ResetPath implements animbridge.Backend.
func (b *Backend) ResetPath(h animbridge.PathHandle) { h.(*path).p.Clear() }

// ExtendPath implements animbridge.Backend.
func (b *Backend) ExtendPath(dst, src animbridge.PathHandle, m geom.Mat2D) {
	dst.(*path).p.Append(src.(*path).p.Transform(toMatrix(m)))
}

// SetPathFillRule implements animbridge.Backend.
func (b *Backend) SetPathFillRule(h animbridge.PathHandle, rule engine.FillRule) {
	h.(*path).rule = rule
}

// PathMoveTo implements animbridge.Backend.
func (b *Backend) PathMoveTo(h animbridge.PathHandle, x, y float32) {
	h.(*path).p.MoveTo(float64(x), float64(y))
}

// PathLineTo implements animbridge.Backend.
func (b *Backend) PathLineTo(h animbridge.PathHandle, x, y float32) {
	h.(*path).p.LineTo(float64(x), float64(y))
}

// PathCubicTo implements animbridge.Backend.
func (b *Backend) PathCubicTo(h animbridge.PathHandle, ox, oy, ix, iy, x, y float32) {
	h.(*path).p.CubicTo(float64(ox), float64(oy), float64(ix), float64(iy), float64(x), float64(y))
}

// PathClose implements animbridge.Backend.
func (b *Backend) PathClose(h animbridge.PathHandle) { h.(*path).p.Close() }

// NewPaint implements animbridge.Backend.
func (b *Backend) NewPaint() animbridge.PaintHandle {
	return &paint{
		style:     engine.PaintFill,
		color:     engine.ARGB(0xff, 0, 0, 0),
		thickness: 1,
		blend:     engine.BlendSrcOver,
	}
}

// ReleasePaint implements animbridge.Backend.
func (b *Backend) ReleasePaint(h animbridge.PaintHandle) { h.(*paint).gradient = nil }

// SetPaintStyle implements animbridge.Backend.
func (b *Backend) SetPaintStyle(h animbridge.PaintHandle, s engine.PaintStyle) { h.(*paint).style = s }

// SetPaintColor implements animbridge.Backend.
func (b *Backend) SetPaintColor(h animbridge.PaintHandle, c engine.ColorInt) { h.(*paint).color = c }

// SetPaintThickness implements animbridge.Backend.
func (b *Backend) SetPaintThickness(h animbridge.PaintHandle, w float32) { h.(*paint).thickness = w }

// SetPaintJoin implements animbridge.Backend.
func (b *Backend) SetPaintJoin(h animbridge.PaintHandle, j engine.StrokeJoin) { h.(*paint).join = j }

// SetPaintCap implements animbridge.Backend.
func (b *Backend) SetPaintCap(h animbridge.PaintHandle, c engine.StrokeCap) { h.(*paint).cap = c }

// SetPaintBlendMode implements animbridge.Backend.
func (b *Backend) SetPaintBlendMode(h animbridge.PaintHandle, m engine.BlendMode) {
	h.(*paint).blend = m
}

// SetPaintGradient implements animbridge.Backend. Gradients are
// immutable, so the paint shares the definition.
func (b *Backend) SetPaintGradient(h animbridge.PaintHandle, g animbridge.GradientHandle) {
	p := h.(*paint)
	if g == nil {
		p.gradient = nil
		return
	}
	p.gradient = g.(*gradient)
}

// InvalidatePaintStroke implements animbridge.Backend. Strokes are
// computed per draw, so there is nothing cached.
func (b *Backend) InvalidatePaintStroke(animbridge.PaintHandle) {}

// NewLinearGradient implements animbridge.Backend.
func (b *Backend) NewLinearGradient(sx, sy, ex, ey float32, colors []engine.ColorInt, stops []float32) animbridge.GradientHandle {
	return &gradient{
		start:  geom.V(sx, sy),
		end:    geom.V(ex, ey),
		colors: append([]engine.ColorInt(nil), colors...),
		stops:  append([]float32(nil), stops...),
	}
}

// NewRadialGradient implements animbridge.Backend.
func (b *Backend) NewRadialGradient(cx, cy, radius float32, colors []engine.ColorInt, stops []float32) animbridge.GradientHandle {
	return &gradient{
		radial: true,
		start:  geom.V(cx, cy),
		radius: radius,
		colors: append([]engine.ColorInt(nil), colors...),
		stops:  append([]float32(nil), stops...),
	}
}

// ReleaseGradient implements animbridge.Backend. Paints bound to the
// gradient keep the definition alive.
func (b *Backend) ReleaseGradient(animbridge.GradientHandle) {}

// DecodeImage implements animbridge.Backend.
func (b *Backend) DecodeImage(data []byte) animbridge.ImageHandle {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		animbridge.Logger().Debug("raster: image decode failed", "err", err)
		return nil
	}
	bounds := img.Bounds()
	return &rasterImage{
		buf:    gg.ImageBufFromImage(img),
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
}

// ReleaseImage implements animbridge.Backend.
func (b *Backend) ReleaseImage(h animbridge.ImageHandle) { h.(*rasterImage).buf = nil }
