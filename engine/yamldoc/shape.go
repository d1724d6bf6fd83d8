package yamldoc

import (
	"math"

	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

// shape is the live state of one shape definition inside an artboard
// instance.
type shape struct {
	def   *shapeDef
	props [numProps]float32
	world geom.Mat2D
	// bounds is the local-space hit area.
	bounds geom.AABB

	path  engine.RenderPath
	sized bool // path is rebuilt from width and height

	fill        engine.RenderPaint
	fillColor   engine.ColorInt
	fillShader  engine.RenderShader
	stroke      engine.RenderPaint
	strokeColor engine.ColorInt
	blend       engine.BlendMode

	clip  *shape
	image engine.RenderImage
	mesh  *mesh

	geometryDirty  bool
	transformDirty bool
}

type mesh struct {
	vertices, uvs, indices engine.RenderBuffer
}

func newShape(f *file, def *shapeDef) *shape {
	s := &shape{def: def, transformDirty: true}
	s.props[propX] = def.X
	s.props[propY] = def.Y
	s.props[propRotation] = def.Rotation
	s.props[propScaleX] = valueOr(def.ScaleX, 1)
	s.props[propScaleY] = valueOr(def.ScaleY, 1)
	s.props[propOpacity] = valueOr(def.Opacity, 1)
	s.props[propWidth] = def.Width
	s.props[propHeight] = def.Height
	s.blend, _ = parseBlend(def.Blend)

	if def.Kind == kindImage {
		if img := f.images[def.Image]; img != nil {
			img.Ref()
			s.image = img
		}
		s.bounds = geom.NewAABB(0, 0, def.Width, def.Height)
		if def.Mesh != nil {
			s.mesh = newMesh(f.factory, def.Mesh)
			s.bounds = geom.EmptyAABB()
			for _, v := range def.Mesh.Vertices {
				s.bounds = s.bounds.Expand(geom.V(v[0], v[1]))
			}
		}
		return s
	}

	rule, _ := parseFillRule(def.FillRule)
	s.path, s.bounds = buildPath(f.factory, def, rule)
	s.sized = (def.Kind == kindRect || def.Kind == kindEllipse) && len(def.Children) == 0
	s.buildPaints(f.factory)
	return s
}

func valueOr(v *float32, def float32) float32 {
	if v == nil {
		return def
	}
	return *v
}

func (s *shape) buildPaints(factory engine.Factory) {
	if fd := s.def.Fill; fd != nil {
		s.fill = factory.MakeRenderPaint()
		if s.fill != nil {
			s.fill.Style(engine.PaintFill)
			s.fill.BlendMode(s.blend)
			s.fillColor = engine.ARGB(0xff, 0, 0, 0)
			switch {
			case fd.Color != nil:
				s.fillColor = engine.ColorInt(*fd.Color)
			case fd.Linear != nil:
				colors, stops := splitStops(fd.Linear.Stops)
				s.fillShader = factory.MakeLinearGradient(
					fd.Linear.From[0], fd.Linear.From[1], fd.Linear.To[0], fd.Linear.To[1], colors, stops)
			case fd.Radial != nil:
				colors, stops := splitStops(fd.Radial.Stops)
				s.fillShader = factory.MakeRadialGradient(
					fd.Radial.Center[0], fd.Radial.Center[1], fd.Radial.Radius, colors, stops)
			}
			if s.fillShader != nil {
				s.fill.Shader(s.fillShader)
			}
		}
	}

	if sd := s.def.Stroke; sd != nil {
		s.stroke = factory.MakeRenderPaint()
		if s.stroke != nil {
			join, _ := parseJoin(sd.Join)
			lineCap, _ := parseCap(sd.Cap)
			s.stroke.Style(engine.PaintStroke)
			s.stroke.Thickness(sd.Thickness)
			s.stroke.Join(join)
			s.stroke.Cap(lineCap)
			s.stroke.BlendMode(s.blend)
			s.strokeColor = engine.ColorInt(sd.Color)
		}
	}
}

func splitStops(defs []stopDef) ([]engine.ColorInt, []float32) {
	colors := make([]engine.ColorInt, len(defs))
	stops := make([]float32, len(defs))
	for i, d := range defs {
		colors[i] = engine.ColorInt(d.Color)
		stops[i] = d.Offset
	}
	return colors, stops
}

// buildPath creates the render path for def along with its local
// bounds. Rect and ellipse shapes without children get an empty path
// filled by appending verbs so that it can be rewound on resize.
func buildPath(factory engine.Factory, def *shapeDef, rule engine.FillRule) (engine.RenderPath, geom.AABB) {
	own := geometry(def, def.Width, def.Height)
	bounds := own.Bounds()

	if len(def.Children) == 0 {
		if def.Kind == kindRect || def.Kind == kindEllipse {
			p := factory.MakeEmptyRenderPath()
			if p != nil {
				p.FillRule(rule)
				emit(p, own)
			}
			return p, bounds
		}
		return factory.MakeRenderPath(own, rule), bounds
	}

	p := factory.MakeEmptyRenderPath()
	if p == nil {
		return nil, bounds
	}
	p.FillRule(rule)
	if !own.IsEmpty() {
		if part := factory.MakeRenderPath(own, rule); part != nil {
			p.AddRenderPath(part, geom.Identity())
			part.Unref()
		}
	}
	for i := range def.Children {
		c := &def.Children[i]
		raw := geometry(c, c.Width, c.Height)
		m := localTransform(c.X, c.Y, c.Rotation, valueOr(c.ScaleX, 1), valueOr(c.ScaleY, 1))
		if b := raw.Bounds(); !b.IsEmpty() {
			bounds = bounds.Union(b.Transform(m))
		}
		part := factory.MakeRenderPath(raw, rule)
		if part == nil {
			continue
		}
		p.AddRenderPath(part, m)
		part.Unref()
	}
	return p, bounds
}

// geometry returns the raw outline of def at the given size. Rects
// and ellipses are centered on the shape origin.
func geometry(def *shapeDef, w, h float32) *engine.RawPath {
	raw := &engine.RawPath{}
	switch def.Kind {
	case kindRect:
		raw.AddRect(-w/2, -h/2, w, h)
	case kindEllipse:
		raw.AddOval(-w/2, -h/2, w, h)
	default:
		for _, c := range def.Commands {
			a := c.Args
			switch c.Verb {
			case engine.VerbMove:
				raw.MoveTo(a[0], a[1])
			case engine.VerbLine:
				raw.LineTo(a[0], a[1])
			case engine.VerbCubic:
				raw.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
			case engine.VerbClose:
				raw.Close()
			}
		}
	}
	return raw
}

// emit appends raw's verbs to p.
func emit(p engine.RenderPath, raw *engine.RawPath) {
	it := raw.Iter()
	for {
		verb, pts, ok := it.Next()
		if !ok {
			return
		}
		switch verb {
		case engine.VerbMove:
			p.MoveTo(pts[0].X, pts[0].Y)
		case engine.VerbLine:
			p.LineTo(pts[0].X, pts[0].Y)
		case engine.VerbCubic:
			p.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case engine.VerbClose:
			p.Close()
		}
	}
}

func localTransform(x, y, rotationDeg, sx, sy float32) geom.Mat2D {
	rad := rotationDeg * math.Pi / 180
	return geom.Translate(x, y).Multiply(geom.Rotate(rad)).Multiply(geom.Scale(sx, sy))
}

func newMesh(factory engine.Factory, def *meshDef) *mesh {
	pairs := func(vs [][2]float32) []byte {
		out := make([]byte, 0, len(vs)*engine.VertexSize)
		for _, v := range vs {
			out = engine.AppendVertex(out, geom.V(v[0], v[1]))
		}
		return out
	}
	indices := make([]byte, 0, len(def.Indices)*engine.IndexSize)
	for _, i := range def.Indices {
		indices = engine.AppendIndex(indices, i)
	}

	m := &mesh{
		vertices: upload(factory, engine.BufferVertex, pairs(def.Vertices)),
		uvs:      upload(factory, engine.BufferVertex, pairs(def.UVs)),
		indices:  upload(factory, engine.BufferIndex, indices),
	}
	if m.vertices == nil || m.uvs == nil || m.indices == nil {
		m.release()
		return nil
	}
	return m
}

// upload creates a buffer written once right after creation.
func upload(factory engine.Factory, t engine.BufferType, data []byte) engine.RenderBuffer {
	b := factory.MakeRenderBuffer(t, engine.BufferMappedOnceAtInitialization, len(data))
	if b == nil {
		return nil
	}
	copy(b.Map(), data)
	b.Unmap()
	return b
}

func (m *mesh) release() {
	for _, b := range []engine.RenderBuffer{m.vertices, m.uvs, m.indices} {
		if b != nil {
			b.Unref()
		}
	}
}

func (s *shape) set(p property, v float32) {
	if s.props[p] == v {
		return
	}
	s.props[p] = v
	switch p {
	case propWidth, propHeight:
		s.geometryDirty = s.sized
	case propOpacity:
	default:
		s.transformDirty = true
	}
}

// update refreshes world transform and geometry. It reports whether
// anything changed.
func (s *shape) update() bool {
	changed := false
	if s.transformDirty {
		p := &s.props
		s.world = localTransform(p[propX], p[propY], p[propRotation], p[propScaleX], p[propScaleY])
		s.transformDirty = false
		changed = true
	}
	if s.geometryDirty {
		raw := geometry(s.def, s.props[propWidth], s.props[propHeight])
		s.bounds = raw.Bounds()
		if s.path != nil {
			s.path.Rewind()
			emit(s.path, raw)
		}
		if s.stroke != nil {
			s.stroke.InvalidateStroke()
		}
		s.geometryDirty = false
		changed = true
	}
	return changed
}

// hit reports whether p, in artboard space, falls inside the shape.
func (s *shape) hit(p geom.Vec2D) bool {
	inv, ok := s.world.Invert()
	if !ok {
		return false
	}
	return s.bounds.Contains(inv.TransformPoint(p))
}

func (s *shape) draw(r engine.Renderer) {
	opacity := s.props[propOpacity]
	if opacity <= 0 {
		return
	}

	r.Save()
	if s.clip != nil && s.clip.path != nil {
		r.Transform(s.clip.world)
		r.ClipPath(s.clip.path)
		inv, _ := s.clip.world.Invert()
		r.Transform(inv.Multiply(s.world))
	} else {
		r.Transform(s.world)
	}

	switch {
	case s.image != nil && s.mesh != nil:
		r.DrawImageMesh(s.image, s.mesh.vertices, s.mesh.uvs, s.mesh.indices, s.blend, opacity)
	case s.image != nil:
		r.DrawImage(s.image, s.blend, opacity)
	case s.path != nil:
		if s.fill != nil {
			s.fill.Color(s.fillColor.WithOpacity(opacity))
			r.DrawPath(s.path, s.fill)
		}
		if s.stroke != nil {
			s.stroke.Color(s.strokeColor.WithOpacity(opacity))
			r.DrawPath(s.path, s.stroke)
		}
	}
	r.Restore()
}

func (s *shape) release() {
	if s.path != nil {
		s.path.Unref()
	}
	if s.fill != nil {
		s.fill.Unref()
	}
	if s.fillShader != nil {
		s.fillShader.Unref()
	}
	if s.stroke != nil {
		s.stroke.Unref()
	}
	if s.image != nil {
		s.image.Unref()
	}
	if s.mesh != nil {
		s.mesh.release()
	}
	*s = shape{def: s.def}
}
