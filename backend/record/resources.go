package record

import (
	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

// Kind is a resource kind tracked by the backend.
type Kind uint8

const (
	KindBuffer Kind = iota
	KindPath
	KindPaint
	KindGradient
	KindImage
	numKinds
)

var kindNames = [...]string{
	KindBuffer:   "buffer",
	KindPath:     "path",
	KindPaint:    "paint",
	KindGradient: "gradient",
	KindImage:    "image",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// resource is embedded in every handle the backend hands out.
type resource struct {
	id       uint64
	released bool
}

// ID returns the allocation sequence number, unique per backend.
func (r *resource) ID() uint64 { return r.id }

// Buffer is a recorded buffer handle.
type Buffer struct {
	resource
	Type   engine.BufferType
	Flags  engine.BufferFlags
	Data   []byte
	mapped bool
	// Maps counts MapBuffer calls.
	Maps int
}

// Vertices decodes the buffer as mesh vertices or uvs.
func (b *Buffer) Vertices() []geom.Vec2D { return engine.DecodeVertices(b.Data) }

// Indices decodes the buffer as mesh triangle indices.
func (b *Buffer) Indices() []uint16 { return engine.DecodeIndices(b.Data) }

// Path is recorded path geometry. As a handle it is mutable; the copies
// stored in commands are snapshots.
type Path struct {
	resource
	Verbs    []engine.PathVerb
	Points   []geom.Vec2D
	FillRule engine.FillRule
}

func (p *Path) snapshot() Path {
	return Path{
		resource: p.resource,
		Verbs:    append([]engine.PathVerb(nil), p.Verbs...),
		Points:   append([]geom.Vec2D(nil), p.Points...),
		FillRule: p.FillRule,
	}
}

func (p *Path) reset() {
	p.Verbs = p.Verbs[:0]
	p.Points = p.Points[:0]
}

func (p *Path) add(verb engine.PathVerb, pts ...geom.Vec2D) {
	p.Verbs = append(p.Verbs, verb)
	p.Points = append(p.Points, pts...)
}

// Bounds returns the bounds of every point in the path.
func (p *Path) Bounds() geom.AABB {
	b := geom.EmptyAABB()
	for _, pt := range p.Points {
		b = b.Expand(pt)
	}
	return b
}

// GradientKind distinguishes linear and radial gradients.
type GradientKind uint8

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// Gradient is a recorded gradient. For linear gradients Start and End
// are the end points; for radial gradients Start is the center and
// Radius is set.
type Gradient struct {
	resource
	Kind   GradientKind
	Start  geom.Vec2D
	End    geom.Vec2D
	Radius float32
	Colors []engine.ColorInt
	Stops  []float32
}

// Paint is recorded paint state. Gradient is a copy taken when the
// gradient was bound, so it stays valid after the gradient handle is
// released.
type Paint struct {
	resource
	Style     engine.PaintStyle
	Color     engine.ColorInt
	Thickness float32
	Join      engine.StrokeJoin
	Cap       engine.StrokeCap
	Blend     engine.BlendMode
	Gradient  *Gradient
	// StrokeInvalidations counts InvalidatePaintStroke calls.
	StrokeInvalidations int
}

// Image is a recorded image.
type Image struct {
	resource
	Format        string
	Width, Height int
}
