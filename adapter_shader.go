package animbridge

import "github.com/gogpu/animbridge/engine"

type shaderAdapter struct {
	refs
	handle GradientHandle
}

var _ engine.RenderShader = (*shaderAdapter)(nil)

func newShaderAdapter(f *Factory, h GradientHandle) *shaderAdapter {
	s := &shaderAdapter{handle: h}
	s.refs = newRefs(f.track(kindGradient, func() { f.backend.ReleaseGradient(h) }))
	return s
}
