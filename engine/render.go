package engine

import "github.com/gogpu/animbridge/geom"

// RefCounted is implemented by every render primitive.
type RefCounted interface {
	// Ref adds an owner.
	Ref()
	// Unref drops an owner. The last Unref releases the primitive.
	Unref()
}

// RenderBuffer is a block of vertex or index data owned by the backend.
// At most one mapping may be active at a time.
type RenderBuffer interface {
	RefCounted
	Type() BufferType
	Flags() BufferFlags
	SizeInBytes() int
	// Map returns writable backend memory of SizeInBytes bytes.
	Map() []byte
	// Unmap ends the mapping started by Map.
	Unmap()
}

// RenderShader is an immutable gradient.
type RenderShader interface {
	RefCounted
}

// RenderImage is an immutable decoded image.
type RenderImage interface {
	RefCounted
}

// RenderPath is mutable backend path geometry.
type RenderPath interface {
	RefCounted
	// Rewind removes all geometry.
	Rewind()
	// AddRenderPath appends a copy of other transformed by m. Both paths
	// must come from the same factory.
	AddRenderPath(other RenderPath, m geom.Mat2D)
	FillRule(rule FillRule)
	MoveTo(x, y float32)
	LineTo(x, y float32)
	CubicTo(ox, oy, ix, iy, x, y float32)
	Close()
}

// RenderPaint describes how a path is filled or stroked.
type RenderPaint interface {
	RefCounted
	Style(style PaintStyle)
	Color(c ColorInt)
	Thickness(w float32)
	Join(j StrokeJoin)
	Cap(c StrokeCap)
	BlendMode(m BlendMode)
	// Shader binds a gradient; nil removes the binding.
	Shader(s RenderShader)
	// InvalidateStroke marks cached stroke geometry dirty.
	InvalidateStroke()
}

// Renderer receives the draw calls of one frame. Save and Restore must
// balance within a frame.
type Renderer interface {
	Save()
	Restore()
	// Transform concatenates m onto the current transform of the
	// current save frame.
	Transform(m geom.Mat2D)
	ClipPath(p RenderPath)
	DrawPath(p RenderPath, paint RenderPaint)
	DrawImage(img RenderImage, blend BlendMode, opacity float32)
	DrawImageMesh(img RenderImage, vertices, uvs, indices RenderBuffer, blend BlendMode, opacity float32)
}

// Factory creates render primitives. An engine receives one Factory at
// import time and uses it for every primitive it ever creates.
type Factory interface {
	MakeRenderBuffer(t BufferType, flags BufferFlags, sizeInBytes int) RenderBuffer
	// MakeLinearGradient builds a gradient from parallel colors and stops.
	// Stops are non-decreasing in [0,1].
	MakeLinearGradient(sx, sy, ex, ey float32, colors []ColorInt, stops []float32) RenderShader
	MakeRadialGradient(cx, cy, radius float32, colors []ColorInt, stops []float32) RenderShader
	// MakeRenderPath builds a path from raw geometry. The factory reads
	// raw only during the call.
	MakeRenderPath(raw *RawPath, rule FillRule) RenderPath
	MakeEmptyRenderPath() RenderPath
	MakeRenderPaint() RenderPaint
	// DecodeImage returns nil when the bytes cannot be decoded.
	DecodeImage(encoded []byte) RenderImage
}
