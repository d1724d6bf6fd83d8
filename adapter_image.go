package animbridge

import "github.com/gogpu/animbridge/engine"

type imageAdapter struct {
	refs
	handle ImageHandle
}

var _ engine.RenderImage = (*imageAdapter)(nil)

func newImageAdapter(f *Factory, h ImageHandle) *imageAdapter {
	img := &imageAdapter{handle: h}
	img.refs = newRefs(f.track(kindImage, func() { f.backend.ReleaseImage(h) }))
	return img
}
