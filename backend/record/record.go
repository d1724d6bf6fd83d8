package record

import (
	"bytes"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"log/slog"

	"github.com/gogpu/animbridge"
	"github.com/gogpu/animbridge/backend"
	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

func init() {
	backend.Register(backend.Record, func() animbridge.Backend { return New() })
}

// Backend records resources and draw calls. It is not safe for
// concurrent use.
type Backend struct {
	nextID uint64
	live   [numKinds]int
	total  [numKinds]int
	faults []string
	log    *slog.Logger
}

var (
	_ animbridge.Backend   = (*Backend)(nil)
	_ animbridge.Versioned = (*Backend)(nil)
)

// New returns an empty recording backend.
func New() *Backend {
	return &Backend{log: animbridge.Logger()}
}

// CommandTableVersion implements animbridge.Versioned.
func (b *Backend) CommandTableVersion() uint32 { return animbridge.CommandTableVersion }

// Live returns the number of live resources of kind k.
func (b *Backend) Live(k Kind) int { return b.live[k] }

// LiveTotal returns the number of live resources of every kind.
func (b *Backend) LiveTotal() int {
	n := 0
	for _, c := range b.live {
		n += c
	}
	return n
}

// Created returns how many resources of kind k were ever created.
func (b *Backend) Created(k Kind) int { return b.total[k] }

// Faults returns the contract violations observed so far.
func (b *Backend) Faults() []string { return b.faults }

func (b *Backend) fault(msg string, args ...any) {
	b.faults = append(b.faults, msg)
	b.log.Warn("record: "+msg, args...)
}

func (b *Backend) alloc(k Kind) resource {
	b.nextID++
	b.live[k]++
	b.total[k]++
	return resource{id: b.nextID}
}

func (b *Backend) free(k Kind, r *resource) {
	if r.released {
		b.fault("double release", "kind", k, "id", r.id)
		return
	}
	r.released = true
	b.live[k]--
}

func (b *Backend) use(k Kind, r *resource) {
	if r.released {
		b.fault("use after release", "kind", k, "id", r.id)
	}
}

// --------------------------------------------------------------------------
// Buffers
// --------------------------------------------------------------------------

// NewBuffer implements animbridge.Backend.
func (b *Backend) NewBuffer(t engine.BufferType, flags engine.BufferFlags, size int) animbridge.BufferHandle {
	if size < 0 {
		return nil
	}
	return &Buffer{resource: b.alloc(KindBuffer), Type: t, Flags: flags, Data: make([]byte, size)}
}

// MapBuffer implements animbridge.Backend.
func (b *Backend) MapBuffer(h animbridge.BufferHandle) []byte {
	buf := h.(*Buffer)
	b.use(KindBuffer, &buf.resource)
	if buf.mapped {
		b.fault("buffer mapped twice", "id", buf.id)
	}
	buf.mapped = true
	buf.Maps++
	return buf.Data
}

// UnmapBuffer implements animbridge.Backend.
func (b *Backend) UnmapBuffer(h animbridge.BufferHandle) {
	buf := h.(*Buffer)
	if !buf.mapped {
		b.fault("unmap without map", "id", buf.id)
	}
	buf.mapped = false
}

// ReleaseBuffer implements animbridge.Backend.
func (b *Backend) ReleaseBuffer(h animbridge.BufferHandle) {
	b.free(KindBuffer, &h.(*Buffer).resource)
}

// --------------------------------------------------------------------------
// Paths
// --------------------------------------------------------------------------

// NewPath implements animbridge.Backend.
func (b *Backend) NewPath() animbridge.PathHandle {
	return &Path{resource: b.alloc(KindPath)}
}

// NewPathFromCommands implements animbridge.Backend.
func (b *Backend) NewPathFromCommands(cmds *animbridge.Commands, rule engine.FillRule) animbridge.PathHandle {
	p := &Path{resource: b.alloc(KindPath), FillRule: rule}
	for range cmds.Count() {
		verb, pts := cmds.Next()
		p.add(verb, pts...)
	}
	return p
}

// ReleasePath implements animbridge.Backend.
func (b *Backend) ReleasePath(h animbridge.PathHandle) {
	b.free(KindPath, &h.(*Path).resource)
}

// ResetPath implements animbridge.Backend.
func (b *Backend) ResetPath(h animbridge.PathHandle) {
	p := h.(*Path)
	b.use(KindPath, &p.resource)
	p.reset()
}

// ExtendPath implements animbridge.Backend.
func (b *Backend) ExtendPath(dst, src animbridge.PathHandle, m geom.Mat2D) {
	d, s := dst.(*Path), src.(*Path)
	b.use(KindPath, &d.resource)
	b.use(KindPath, &s.resource)
	// src may be dst.
	verbs := append([]engine.PathVerb(nil), s.Verbs...)
	pts := make([]geom.Vec2D, len(s.Points))
	for i, pt := range s.Points {
		pts[i] = m.TransformPoint(pt)
	}
	d.Verbs = append(d.Verbs, verbs...)
	d.Points = append(d.Points, pts...)
}

// SetPathFillRule implements animbridge.Backend.
func (b *Backend) SetPathFillRule(h animbridge.PathHandle, rule engine.FillRule) {
	h.(*Path).FillRule = rule
}

// PathMoveTo implements animbridge.Backend.
func (b *Backend) PathMoveTo(h animbridge.PathHandle, x, y float32) {
	h.(*Path).add(engine.VerbMove, geom.V(x, y))
}

// PathLineTo implements animbridge.Backend.
func (b *Backend) PathLineTo(h animbridge.PathHandle, x, y float32) {
	h.(*Path).add(engine.VerbLine, geom.V(x, y))
}

// PathCubicTo implements animbridge.Backend.
func (b *Backend) PathCubicTo(h animbridge.PathHandle, ox, oy, ix, iy, x, y float32) {
	h.(*Path).add(engine.VerbCubic, geom.V(ox, oy), geom.V(ix, iy), geom.V(x, y))
}

// PathClose implements animbridge.Backend.
func (b *Backend) PathClose(h animbridge.PathHandle) {
	h.(*Path).add(engine.VerbClose)
}

// --------------------------------------------------------------------------
// Paints and gradients
// --------------------------------------------------------------------------

// NewPaint implements animbridge.Backend.
func (b *Backend) NewPaint() animbridge.PaintHandle {
	return &Paint{
		resource:  b.alloc(KindPaint),
		Style:     engine.PaintFill,
		Color:     engine.ARGB(0xff, 0, 0, 0),
		Thickness: 1,
		Blend:     engine.BlendSrcOver,
	}
}

// ReleasePaint implements animbridge.Backend.
func (b *Backend) ReleasePaint(h animbridge.PaintHandle) {
	b.free(KindPaint, &h.(*Paint).resource)
}

// SetPaintStyle implements animbridge.Backend.
func (b *Backend) SetPaintStyle(h animbridge.PaintHandle, s engine.PaintStyle) {
	h.(*Paint).Style = s
}

// SetPaintColor implements animbridge.Backend.
func (b *Backend) SetPaintColor(h animbridge.PaintHandle, c engine.ColorInt) {
	h.(*Paint).Color = c
}

// SetPaintThickness implements animbridge.Backend.
func (b *Backend) SetPaintThickness(h animbridge.PaintHandle, w float32) {
	h.(*Paint).Thickness = w
}

// SetPaintJoin implements animbridge.Backend.
func (b *Backend) SetPaintJoin(h animbridge.PaintHandle, j engine.StrokeJoin) {
	h.(*Paint).Join = j
}

// SetPaintCap implements animbridge.Backend.
func (b *Backend) SetPaintCap(h animbridge.PaintHandle, c engine.StrokeCap) {
	h.(*Paint).Cap = c
}

// SetPaintBlendMode implements animbridge.Backend.
func (b *Backend) SetPaintBlendMode(h animbridge.PaintHandle, m engine.BlendMode) {
	h.(*Paint).Blend = m
}

// SetPaintGradient implements animbridge.Backend. The gradient is
// copied so the binding survives the gradient handle's release.
func (b *Backend) SetPaintGradient(h animbridge.PaintHandle, g animbridge.GradientHandle) {
	p := h.(*Paint)
	if g == nil {
		p.Gradient = nil
		return
	}
	src := g.(*Gradient)
	b.use(KindGradient, &src.resource)
	cp := *src
	cp.Colors = append([]engine.ColorInt(nil), src.Colors...)
	cp.Stops = append([]float32(nil), src.Stops...)
	p.Gradient = &cp
}

// InvalidatePaintStroke implements animbridge.Backend.
func (b *Backend) InvalidatePaintStroke(h animbridge.PaintHandle) {
	h.(*Paint).StrokeInvalidations++
}

// NewLinearGradient implements animbridge.Backend.
func (b *Backend) NewLinearGradient(sx, sy, ex, ey float32, colors []engine.ColorInt, stops []float32) animbridge.GradientHandle {
	return &Gradient{
		resource: b.alloc(KindGradient),
		Kind:     GradientLinear,
		Start:    geom.V(sx, sy),
		End:      geom.V(ex, ey),
		Colors:   append([]engine.ColorInt(nil), colors...),
		Stops:    append([]float32(nil), stops...),
	}
}

// NewRadialGradient implements animbridge.Backend.
func (b *Backend) NewRadialGradient(cx, cy, radius float32, colors []engine.ColorInt, stops []float32) animbridge.GradientHandle {
	return &Gradient{
		resource: b.alloc(KindGradient),
		Kind:     GradientRadial,
		Start:    geom.V(cx, cy),
		Radius:   radius,
		Colors:   append([]engine.ColorInt(nil), colors...),
		Stops:    append([]float32(nil), stops...),
	}
}

// ReleaseGradient implements animbridge.Backend.
func (b *Backend) ReleaseGradient(h animbridge.GradientHandle) {
	b.free(KindGradient, &h.(*Gradient).resource)
}

// --------------------------------------------------------------------------
// Images
// --------------------------------------------------------------------------

// DecodeImage implements animbridge.Backend. Only the image header is
// decoded; bytes in an unknown format yield nil.
func (b *Backend) DecodeImage(data []byte) animbridge.ImageHandle {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return &Image{resource: b.alloc(KindImage), Format: format, Width: cfg.Width, Height: cfg.Height}
}

// ReleaseImage implements animbridge.Backend.
func (b *Backend) ReleaseImage(h animbridge.ImageHandle) {
	b.free(KindImage, &h.(*Image).resource)
}
