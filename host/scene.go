package host

import (
	"time"
	"unicode/utf8"

	"github.com/gogpu/animbridge"
	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/internal/slab"
)

func (h *Host) scene(sh Handle) (animbridge.Scene, bool) {
	s, ok := h.scenes.Get(slab.Handle(sh))
	if !ok {
		h.log.Debug("host: stale scene handle", "handle", uint64(sh))
	}
	return s, ok
}

func (h *Host) stateMachine(sh Handle) (*animbridge.StateMachine, bool) {
	s, ok := h.scene(sh)
	if !ok {
		return nil, false
	}
	sm, ok := s.(*animbridge.StateMachine)
	return sm, ok
}

// SceneRelease frees a linear animation or state machine.
func (h *Host) SceneRelease(sh Handle) {
	if s, ok := h.scenes.Remove(slab.Handle(sh)); ok {
		s.Release()
	}
}

// SceneName returns the scene name.
func (h *Host) SceneName(sh Handle) string {
	if s, ok := h.scene(sh); ok {
		return s.Name()
	}
	return ""
}

// SceneWidth returns the width of the scene's artboard.
func (h *Host) SceneWidth(sh Handle) float32 {
	if s, ok := h.scene(sh); ok {
		return s.Width()
	}
	return 0
}

// SceneHeight returns the height of the scene's artboard.
func (h *Host) SceneHeight(sh Handle) float32 {
	if s, ok := h.scene(sh); ok {
		return s.Height()
	}
	return 0
}

// SceneLoop returns the scene's loop mode.
func (h *Host) SceneLoop(sh Handle) engine.Loop {
	if s, ok := h.scene(sh); ok {
		return s.Loop()
	}
	return engine.LoopOneShot
}

// SceneIsTranslucent reports whether the scene may leave pixels
// uncovered.
func (h *Host) SceneIsTranslucent(sh Handle) bool {
	if s, ok := h.scene(sh); ok {
		return s.IsTranslucent()
	}
	return false
}

// SceneDurationSeconds returns the scene duration, or -1 for scenes
// without one.
func (h *Host) SceneDurationSeconds(sh Handle) float32 {
	s, ok := h.scene(sh)
	if !ok {
		return -1
	}
	d, ok := s.Duration()
	if !ok {
		return -1
	}
	return float32(d.Seconds())
}

// SceneAdvance advances the scene and reports whether playback is still
// active.
func (h *Host) SceneAdvance(sh Handle, elapsed time.Duration) bool {
	if s, ok := h.scene(sh); ok {
		return s.AdvanceAndApply(elapsed)
	}
	return false
}

// SceneDraw draws the scene to renderer through backend, which must be
// the backend the scene's file was imported with.
func (h *Host) SceneDraw(sh Handle, renderer animbridge.RendererHandle, backend animbridge.Backend) {
	if s, ok := h.scene(sh); ok {
		s.DrawWith(backend, renderer)
	}
}

// SceneAdvanceAndMaybeDraw advances the scene and draws it fitted into
// vp while playback is active.
func (h *Host) SceneAdvanceAndMaybeDraw(sh Handle, renderer animbridge.RendererHandle, elapsed time.Duration, vp *animbridge.Viewport) bool {
	if s, ok := h.scene(sh); ok {
		return s.AdvanceAndMaybeDraw(renderer, elapsed, vp)
	}
	return false
}

// ScenePointerDown forwards a pointer press in viewport coordinates.
func (h *Host) ScenePointerDown(sh Handle, x, y float32, vp *animbridge.Viewport) {
	if s, ok := h.scene(sh); ok {
		s.PointerDown(x, y, vp)
	}
}

// ScenePointerMove forwards a pointer move in viewport coordinates.
func (h *Host) ScenePointerMove(sh Handle, x, y float32, vp *animbridge.Viewport) {
	if s, ok := h.scene(sh); ok {
		s.PointerMove(x, y, vp)
	}
}

// ScenePointerUp forwards a pointer release in viewport coordinates.
func (h *Host) ScenePointerUp(sh Handle, x, y float32, vp *animbridge.Viewport) {
	if s, ok := h.scene(sh); ok {
		s.PointerUp(x, y, vp)
	}
}

// InputCount returns the number of inputs of a state machine. Linear
// animations have none.
func (h *Host) InputCount(sh Handle) int {
	if sm, ok := h.stateMachine(sh); ok {
		return sm.InputCount()
	}
	return 0
}

// Input returns the name and kind of the input at index.
func (h *Host) Input(sh Handle, index int) (string, engine.InputKind, bool) {
	sm, ok := h.stateMachine(sh)
	if !ok {
		return "", 0, false
	}
	in, ok := sm.Input(index)
	if !ok {
		return "", 0, false
	}
	switch in.(type) {
	case *animbridge.BoolInput:
		return in.Name(), engine.InputBool, true
	case *animbridge.NumberInput:
		return in.Name(), engine.InputNumber, true
	default:
		return in.Name(), engine.InputTrigger, true
	}
}

// BoolValue returns the value of the boolean input called name.
func (h *Host) BoolValue(sh Handle, name []byte) (bool, bool) {
	sm, ok := h.stateMachine(sh)
	if !ok || !utf8.Valid(name) {
		return false, false
	}
	in, ok := sm.Bool(string(name))
	if !ok {
		return false, false
	}
	return in.Value(), true
}

// NumberValue returns the value of the number input called name.
func (h *Host) NumberValue(sh Handle, name []byte) (float32, bool) {
	sm, ok := h.stateMachine(sh)
	if !ok || !utf8.Valid(name) {
		return 0, false
	}
	in, ok := sm.Number(string(name))
	if !ok {
		return 0, false
	}
	return in.Value(), true
}

// SetBool sets the boolean input called name and reports whether it
// exists.
func (h *Host) SetBool(sh Handle, name []byte, v bool) bool {
	sm, ok := h.stateMachine(sh)
	if !ok || !utf8.Valid(name) {
		return false
	}
	in, ok := sm.Bool(string(name))
	if ok {
		in.SetValue(v)
	}
	return ok
}

// SetNumber sets the number input called name and reports whether it
// exists.
func (h *Host) SetNumber(sh Handle, name []byte, v float32) bool {
	sm, ok := h.stateMachine(sh)
	if !ok || !utf8.Valid(name) {
		return false
	}
	in, ok := sm.Number(string(name))
	if ok {
		in.SetValue(v)
	}
	return ok
}

// FireTrigger fires the trigger input called name and reports whether it
// exists.
func (h *Host) FireTrigger(sh Handle, name []byte) bool {
	sm, ok := h.stateMachine(sh)
	if !ok || !utf8.Valid(name) {
		return false
	}
	in, ok := sm.Trigger(string(name))
	if ok {
		in.Fire()
	}
	return ok
}

// EventCount returns the number of events reported by the scene's most
// recent advance. The next advance replaces them.
func (h *Host) EventCount(sh Handle) int {
	if sm, ok := h.stateMachine(sh); ok {
		return sm.EventCount()
	}
	return 0
}

// Event returns the event at index and its delay in seconds.
func (h *Host) Event(sh Handle, index int) (animbridge.Event, float32, bool) {
	sm, ok := h.stateMachine(sh)
	if !ok {
		return animbridge.Event{}, 0, false
	}
	ev, delay, ok := sm.Event(index)
	if !ok {
		return animbridge.Event{}, 0, false
	}
	return ev, float32(delay.Seconds()), true
}

// EventProperties streams the custom properties of the event at index
// to sink and reports whether the event exists.
func (h *Host) EventProperties(sh Handle, index int, sink animbridge.PropertySink) bool {
	ev, _, ok := h.Event(sh, index)
	if ok {
		ev.MarshalProperties(sink)
	}
	return ok
}
