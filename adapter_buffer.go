package animbridge

import "github.com/gogpu/animbridge/engine"

type bufferAdapter struct {
	refs
	backend Backend
	handle  BufferHandle
	typ     engine.BufferType
	flags   engine.BufferFlags
	size    int
}

var _ engine.RenderBuffer = (*bufferAdapter)(nil)

func newBufferAdapter(f *Factory, h BufferHandle, t engine.BufferType, flags engine.BufferFlags, size int) *bufferAdapter {
	b := &bufferAdapter{backend: f.backend, handle: h, typ: t, flags: flags, size: size}
	b.refs = newRefs(f.track(kindBuffer, func() { f.backend.ReleaseBuffer(h) }))
	return b
}

func (b *bufferAdapter) Type() engine.BufferType   { return b.typ }
func (b *bufferAdapter) Flags() engine.BufferFlags { return b.flags }
func (b *bufferAdapter) SizeInBytes() int          { return b.size }

func (b *bufferAdapter) Map() []byte { return b.backend.MapBuffer(b.handle) }
func (b *bufferAdapter) Unmap()      { b.backend.UnmapBuffer(b.handle) }
