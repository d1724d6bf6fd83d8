package animbridge

import (
	"iter"
	"time"

	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

// Artboard is a live instance of one artboard in a File. The file must
// stay alive while the artboard is in use.
type Artboard struct {
	file *File
	raw  engine.ArtboardInstance
}

func newArtboard(f *File, raw engine.ArtboardInstance) *Artboard {
	raw.Advance(0)
	return &Artboard{file: f, raw: raw}
}

// File returns the file the artboard was instantiated from.
func (a *Artboard) File() *File { return a.file }

// Name returns the artboard name.
func (a *Artboard) Name() string { return a.raw.Name() }

// Bounds returns the artboard's intrinsic bounds.
func (a *Artboard) Bounds() geom.AABB { return a.raw.Bounds() }

// Transforms returns the contain/center transform from artboard space to
// a width x height viewport, and its inverse.
func (a *Artboard) Transforms(width, height uint32) (view, inverse geom.Mat2D) {
	return geom.ViewTransforms(width, height, a.raw.Bounds())
}

// Advance updates the artboard's layout without running any animation.
func (a *Artboard) Advance(elapsed time.Duration) bool {
	return a.raw.Advance(float32(elapsed.Seconds()))
}

// Draw draws the artboard's current pose to r.
func (a *Artboard) Draw(r RendererHandle) {
	a.raw.Draw(rendererAdapter{backend: a.file.factory.backend, handle: r})
}

// AnimationCount returns the number of linear animations.
func (a *Artboard) AnimationCount() int { return a.raw.AnimationCount() }

// StateMachineCount returns the number of state machines.
func (a *Artboard) StateMachineCount() int { return a.raw.StateMachineCount() }

// LinearAnimation instantiates a linear animation. The default selector
// picks the first animation.
func (a *Artboard) LinearAnimation(sel Selector) (*LinearAnimation, bool) {
	var raw engine.LinearAnimationInstance
	switch sel.kind {
	case selectIndex:
		if sel.index >= 0 && sel.index < a.raw.AnimationCount() {
			raw = a.raw.AnimationAt(sel.index)
		}
	case selectName:
		raw = a.raw.AnimationNamed(sel.name)
	default:
		if a.raw.AnimationCount() > 0 {
			raw = a.raw.AnimationAt(0)
		}
	}
	if raw == nil {
		a.file.log.Debug("animbridge: linear animation not found", "artboard", a.Name(), "selector", sel)
		return nil, false
	}
	return newLinearAnimation(a, raw), true
}

// StateMachine instantiates a state machine. The default selector picks
// the artboard's designated default state machine; when there is none
// it picks the first state machine; when there are none it selects
// nothing.
func (a *Artboard) StateMachine(sel Selector) (*StateMachine, bool) {
	var raw engine.StateMachineInstance
	switch sel.kind {
	case selectIndex:
		if sel.index >= 0 && sel.index < a.raw.StateMachineCount() {
			raw = a.raw.StateMachineAt(sel.index)
		}
	case selectName:
		raw = a.raw.StateMachineNamed(sel.name)
	default:
		if raw = a.raw.DefaultStateMachine(); raw == nil && a.raw.StateMachineCount() > 0 {
			raw = a.raw.StateMachineAt(0)
		}
	}
	if raw == nil {
		a.file.log.Debug("animbridge: state machine not found", "artboard", a.Name(), "selector", sel)
		return nil, false
	}
	return newStateMachine(a, raw), true
}

// Scene instantiates a scene: a state machine if sel selects one,
// otherwise a linear animation selected the same way.
func (a *Artboard) Scene(sel Selector) (Scene, bool) {
	if sm, ok := a.StateMachine(sel); ok {
		return sm, true
	}
	if la, ok := a.LinearAnimation(sel); ok {
		return la, true
	}
	return nil, false
}

// ComponentCount returns the number of components in the artboard.
func (a *Artboard) ComponentCount() int { return a.raw.ComponentCount() }

// Component returns the component at index.
func (a *Artboard) Component(index int) (Component, bool) {
	if index < 0 || index >= a.raw.ComponentCount() {
		return Component{}, false
	}
	c := a.raw.ComponentAt(index)
	if c == nil {
		return Component{}, false
	}
	return Component{raw: c}, true
}

// Components yields every component in order.
func (a *Artboard) Components() iter.Seq[Component] {
	return func(yield func(Component) bool) {
		for i := range a.raw.ComponentCount() {
			c, ok := a.Component(i)
			if ok && !yield(c) {
				return
			}
		}
	}
}

// TextRun returns the first text value run called name.
func (a *Artboard) TextRun(name string) (*TextRun, bool) {
	for c := range a.Components() {
		if c.Name() != name {
			continue
		}
		if run, ok := c.TextRun(); ok {
			return run, true
		}
	}
	return nil, false
}

// Release frees the artboard. Scenes instantiated from it must be
// released first.
func (a *Artboard) Release() { a.raw.Release() }

// Component is a read-only view of one object in an artboard. It is
// valid while the artboard is alive.
type Component struct {
	raw engine.Component
}

// TypeID returns the component's core type key.
func (c Component) TypeID() uint16 { return c.raw.CoreType() }

// Name returns the component name, which may be empty.
func (c Component) Name() string { return c.raw.Name() }

// TextRun returns the component as a text value run.
func (c Component) TextRun() (*TextRun, bool) {
	if c.raw.CoreType() != engine.TypeTextValueRun {
		return nil, false
	}
	run, ok := c.raw.(engine.TextValueRun)
	if !ok {
		return nil, false
	}
	return &TextRun{raw: run}, true
}

// TextRun is editable text inside an artboard.
type TextRun struct {
	raw engine.TextValueRun
}

// Name returns the run's name.
func (t *TextRun) Name() string { return t.raw.Name() }

// Text returns the current text.
func (t *TextRun) Text() string { return t.raw.Text() }

// SetText replaces the text. The change is visible after the next
// advance.
func (t *TextRun) SetText(s string) { t.raw.SetText(s) }
