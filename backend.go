package animbridge

import (
	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

// CommandTableVersion is the version of the Backend method set. Backends
// that implement Versioned are rejected by Import when they declare a
// different version.
const CommandTableVersion uint32 = 1

// Opaque backend handles. The bridge never looks inside a handle; it
// only passes it back to the Backend that created it. A nil handle means
// the backend could not create the resource.
type (
	BufferHandle   any
	PathHandle     any
	PaintHandle    any
	GradientHandle any
	ImageHandle    any
	// RendererHandle is the backend's draw target for one frame.
	RendererHandle any
)

// Backend is the renderer command table. A render backend implements it
// once; the bridge adapts it to the engine's primitive interfaces.
//
// Ownership: every New*/Decode* method returns a handle owned by the
// bridge, which later passes it to the matching Release* method exactly
// once. The bridge guarantees it never uses a handle after releasing it.
//
// Preconditions the bridge does not check:
//   - a buffer has at most one active mapping
//   - gradient stops are non-decreasing in [0,1]
//   - ExtendPath receives two paths from this backend
//   - Save and Restore balance within one frame
//
// Methods are called from the goroutine that owns the File.
type Backend interface {
	// NewBuffer allocates sizeInBytes bytes of vertex or index data.
	NewBuffer(t engine.BufferType, flags engine.BufferFlags, sizeInBytes int) BufferHandle
	// MapBuffer returns writable memory for the buffer's contents.
	MapBuffer(b BufferHandle) []byte
	UnmapBuffer(b BufferHandle)
	ReleaseBuffer(b BufferHandle)

	// NewPath returns an empty non-zero path.
	NewPath() PathHandle
	// NewPathFromCommands builds a path by pulling every verb from cmds.
	// The backend must call cmds.Next exactly cmds.Count() times and must
	// not retain cmds or the point slices it yields.
	NewPathFromCommands(cmds *Commands, rule engine.FillRule) PathHandle
	ReleasePath(p PathHandle)
	ResetPath(p PathHandle)
	// ExtendPath appends a copy of src, transformed by m, to dst.
	ExtendPath(dst, src PathHandle, m geom.Mat2D)
	SetPathFillRule(p PathHandle, rule engine.FillRule)
	PathMoveTo(p PathHandle, x, y float32)
	PathLineTo(p PathHandle, x, y float32)
	PathCubicTo(p PathHandle, ox, oy, ix, iy, x, y float32)
	PathClose(p PathHandle)

	// NewPaint returns a solid black fill paint.
	NewPaint() PaintHandle
	ReleasePaint(p PaintHandle)
	SetPaintStyle(p PaintHandle, style engine.PaintStyle)
	SetPaintColor(p PaintHandle, c engine.ColorInt)
	SetPaintThickness(p PaintHandle, w float32)
	SetPaintJoin(p PaintHandle, j engine.StrokeJoin)
	SetPaintCap(p PaintHandle, c engine.StrokeCap)
	SetPaintBlendMode(p PaintHandle, m engine.BlendMode)
	// SetPaintGradient binds g, replacing any previous binding. A nil g
	// removes the binding. The backend must not rely on g staying alive
	// after ReleaseGradient.
	SetPaintGradient(p PaintHandle, g GradientHandle)
	InvalidatePaintStroke(p PaintHandle)

	// NewLinearGradient and NewRadialGradient read colors and stops only
	// during the call.
	NewLinearGradient(sx, sy, ex, ey float32, colors []engine.ColorInt, stops []float32) GradientHandle
	NewRadialGradient(cx, cy, radius float32, colors []engine.ColorInt, stops []float32) GradientHandle
	ReleaseGradient(g GradientHandle)

	// DecodeImage returns nil if data cannot be decoded.
	DecodeImage(data []byte) ImageHandle
	ReleaseImage(img ImageHandle)

	Save(r RendererHandle)
	Restore(r RendererHandle)
	// Transform concatenates m onto the transform of the current save
	// frame. The coefficients are row-major.
	Transform(r RendererHandle, m geom.Mat2D)
	SetClip(r RendererHandle, p PathHandle)
	DrawPath(r RendererHandle, p PathHandle, paint PaintHandle)
	DrawImage(r RendererHandle, img ImageHandle, blend engine.BlendMode, opacity float32)
	DrawImageMesh(r RendererHandle, img ImageHandle, vertices, uvs, indices BufferHandle, blend engine.BlendMode, opacity float32)
}

// Versioned is implemented by backends that declare the command table
// version they were written against.
type Versioned interface {
	CommandTableVersion() uint32
}
