package engine

import (
	"testing"

	"github.com/gogpu/animbridge/geom"
)

func TestMeshBufferLayout(t *testing.T) {
	var verts []byte
	verts = AppendVertex(verts, geom.V(1, 2))
	verts = AppendVertex(verts, geom.V(-0.5, 3))
	if len(verts) != 2*VertexSize {
		t.Fatalf("len(vertices) = %d, want %d", len(verts), 2*VertexSize)
	}
	if want := []byte{0, 0, 0x80, 0x3f, 0, 0, 0, 0x40}; string(verts[:8]) != string(want) {
		t.Errorf("first vertex bytes = %v, want %v", verts[:8], want)
	}

	got := DecodeVertices(append(verts, 0xff)) // trailing partial vertex
	if len(got) != 2 || got[0] != geom.V(1, 2) || got[1] != geom.V(-0.5, 3) {
		t.Errorf("DecodeVertices() = %v, want [(1,2) (-0.5,3)]", got)
	}

	var idx []byte
	for _, i := range []uint16{1, 2, 513} {
		idx = AppendIndex(idx, i)
	}
	gotIdx := DecodeIndices(append(idx, 7))
	if len(gotIdx) != 3 || gotIdx[0] != 1 || gotIdx[1] != 2 || gotIdx[2] != 513 {
		t.Errorf("DecodeIndices() = %v, want [1 2 513]", gotIdx)
	}
}

func TestMeshBufferEmpty(t *testing.T) {
	if got := DecodeVertices(nil); len(got) != 0 {
		t.Errorf("DecodeVertices(nil) = %v, want empty", got)
	}
	if got := DecodeIndices([]byte{1}); len(got) != 0 {
		t.Errorf("DecodeIndices(1 byte) = %v, want empty", got)
	}
}
