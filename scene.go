package animbridge

import (
	"time"

	"github.com/gogpu/animbridge/engine"
)

// Scene is the advance/draw surface shared by LinearAnimation and
// StateMachine.
//
// A scene is driven by alternating AdvanceAndApply and Draw. Drawing
// before the first advance is allowed and shows the initial pose.
// Pointer events are applied to the engine immediately and take effect
// on the next advance.
type Scene interface {
	Name() string
	Width() float32
	Height() float32
	Loop() engine.Loop
	IsTranslucent() bool
	// Duration is false for scenes without a fixed length, such as state
	// machines.
	Duration() (time.Duration, bool)

	// AdvanceAndApply moves the scene forward and reports whether
	// playback is still active. Calling it after playback ended is legal.
	AdvanceAndApply(elapsed time.Duration) bool
	// Draw draws with the backend the file was imported with.
	Draw(r RendererHandle)
	// DrawWith draws with an explicit backend, which must be the one the
	// file was imported with or share its handle types.
	DrawWith(b Backend, r RendererHandle)
	// AdvanceAndMaybeDraw advances and, while playback is active, draws
	// the scene fitted into vp. It stores the inverse view transform in
	// vp for later pointer events. A nil vp draws in artboard space.
	AdvanceAndMaybeDraw(r RendererHandle, elapsed time.Duration, vp *Viewport) bool

	// Pointer coordinates are in viewport space and are mapped through
	// vp's inverse view transform. A nil vp passes them through.
	PointerDown(x, y float32, vp *Viewport)
	PointerMove(x, y float32, vp *Viewport)
	PointerUp(x, y float32, vp *Viewport)

	// Artboard returns the artboard the scene animates.
	Artboard() *Artboard
	// Release frees the scene. It does not release the artboard.
	Release()
}

// sceneBase implements Scene over any engine scene.
type sceneBase struct {
	artboard *Artboard
	raw      engine.Scene
}

func (s *sceneBase) Artboard() *Artboard                    { return s.artboard }
func (s *sceneBase) Name() string                           { return s.raw.Name() }
func (s *sceneBase) Width() float32                         { return s.raw.Width() }
func (s *sceneBase) Height() float32                        { return s.raw.Height() }
func (s *sceneBase) Loop() engine.Loop                      { return s.raw.Loop() }
func (s *sceneBase) IsTranslucent() bool                    { return s.raw.IsTranslucent() }
func (s *sceneBase) Release()                               { s.raw.Release() }
func (s *sceneBase) Draw(r RendererHandle)                  { s.DrawWith(s.artboard.file.factory.backend, r) }
func (s *sceneBase) PointerDown(x, y float32, vp *Viewport) { s.raw.PointerDown(vp.ToArtboard(x, y)) }
func (s *sceneBase) PointerMove(x, y float32, vp *Viewport) { s.raw.PointerMove(vp.ToArtboard(x, y)) }
func (s *sceneBase) PointerUp(x, y float32, vp *Viewport)   { s.raw.PointerUp(vp.ToArtboard(x, y)) }

func (s *sceneBase) Duration() (time.Duration, bool) {
	d := s.raw.DurationSeconds()
	if d < 0 {
		return 0, false
	}
	return seconds(d), true
}

func (s *sceneBase) AdvanceAndApply(elapsed time.Duration) bool {
	return s.raw.AdvanceAndApply(float32(elapsed.Seconds()))
}

func (s *sceneBase) DrawWith(b Backend, r RendererHandle) {
	s.raw.Draw(rendererAdapter{backend: b, handle: r})
}

func (s *sceneBase) AdvanceAndMaybeDraw(r RendererHandle, elapsed time.Duration, vp *Viewport) bool {
	view := vp.update(s.artboard)
	if !s.AdvanceAndApply(elapsed) {
		return false
	}

	renderer := rendererAdapter{backend: s.artboard.file.factory.backend, handle: r}
	renderer.Save()
	renderer.Transform(view)
	s.raw.Draw(renderer)
	renderer.Restore()
	return true
}

// seconds converts engine seconds to a Duration.
func seconds(s float32) time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}
