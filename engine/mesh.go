package engine

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/animbridge/geom"
)

// Mesh buffer layout. Vertex and uv buffers hold little-endian float32
// (x, y) pairs; index buffers hold little-endian uint16 triangle
// indices. A trailing partial element is ignored.
const (
	VertexSize = 8
	IndexSize  = 2
)

// AppendVertex appends v to a vertex or uv buffer.
func AppendVertex(dst []byte, v geom.Vec2D) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.X))
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.Y))
}

// AppendIndex appends i to an index buffer.
func AppendIndex(dst []byte, i uint16) []byte {
	return binary.LittleEndian.AppendUint16(dst, i)
}

// DecodeVertices decodes a vertex or uv buffer.
func DecodeVertices(data []byte) []geom.Vec2D {
	pts := make([]geom.Vec2D, len(data)/VertexSize)
	for i := range pts {
		off := i * VertexSize
		pts[i] = geom.V(
			math.Float32frombits(binary.LittleEndian.Uint32(data[off:])),
			math.Float32frombits(binary.LittleEndian.Uint32(data[off+4:])),
		)
	}
	return pts
}

// DecodeIndices decodes an index buffer.
func DecodeIndices(data []byte) []uint16 {
	idx := make([]uint16, len(data)/IndexSize)
	for i := range idx {
		idx[i] = binary.LittleEndian.Uint16(data[i*IndexSize:])
	}
	return idx
}
