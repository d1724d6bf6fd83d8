package yamldoc

import (
	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

// artboard is a live instance of an artboard definition. Every
// instance owns its shapes and their render primitives.
type artboard struct {
	file   *file
	def    *artboardDef
	shapes map[string]*shape
	order  []*shape
	texts  []*textRun
	// events holds the event definitions of each state machine, in
	// definition order.
	events     []map[string]*event
	components []engine.Component

	frame      engine.RenderPath
	background engine.RenderPaint
}

var _ engine.ArtboardInstance = (*artboard)(nil)

func newArtboard(f *file, def *artboardDef) *artboard {
	a := &artboard{
		file:   f,
		def:    def,
		shapes: make(map[string]*shape, len(def.Shapes)),
	}
	a.components = append(a.components, &artboardComponent{name: def.Name})

	for i := range def.Shapes {
		s := newShape(f, &def.Shapes[i])
		a.shapes[s.def.Name] = s
		a.order = append(a.order, s)
		a.components = append(a.components, s)
	}
	for _, s := range a.order {
		if s.def.Clip != "" {
			s.clip = a.shapes[s.def.Clip]
		}
	}

	for _, t := range def.Texts {
		run := &textRun{name: t.Name, text: t.Text}
		a.texts = append(a.texts, run)
		a.components = append(a.components, run)
	}

	for i := range def.StateMachines {
		byName := make(map[string]*event)
		for j := range def.StateMachines[i].Events {
			e := newEvent(&def.StateMachines[i].Events[j])
			byName[e.name] = e
			a.components = append(a.components, e)
			a.components = append(a.components, e.properties...)
		}
		a.events = append(a.events, byName)
	}

	if def.Clip || def.Background != nil {
		raw := &engine.RawPath{}
		raw.AddRect(0, 0, def.Width, def.Height)
		a.frame = f.factory.MakeRenderPath(raw, engine.FillNonZero)
	}
	if def.Background != nil && a.frame != nil {
		a.background = f.factory.MakeRenderPaint()
		if a.background != nil {
			a.background.Style(engine.PaintFill)
			a.background.Color(engine.ColorInt(*def.Background))
		}
	}
	return a
}

func (a *artboard) Name() string { return a.def.Name }

func (a *artboard) Bounds() geom.AABB {
	return geom.NewAABB(0, 0, a.def.Width, a.def.Height)
}

func (a *artboard) isTranslucent() bool {
	return a.def.Background == nil || engine.ColorInt(*a.def.Background).A() < 0xff
}

// Advance brings world transforms and geometry up to date.
func (a *artboard) Advance(float32) bool {
	changed := false
	for _, s := range a.order {
		if s.update() {
			changed = true
		}
	}
	return changed
}

func (a *artboard) Draw(r engine.Renderer) {
	r.Save()
	if a.def.Clip && a.frame != nil {
		r.ClipPath(a.frame)
	}
	if a.background != nil {
		r.DrawPath(a.frame, a.background)
	}
	for _, s := range a.order {
		s.draw(r)
	}
	r.Restore()
}

func (a *artboard) AnimationCount() int { return len(a.def.Animations) }

func (a *artboard) AnimationAt(index int) engine.LinearAnimationInstance {
	if index < 0 || index >= len(a.def.Animations) {
		return nil
	}
	return newLinearAnimation(a, &a.def.Animations[index])
}

func (a *artboard) AnimationNamed(name string) engine.LinearAnimationInstance {
	if def := a.animationDef(name); def != nil {
		return newLinearAnimation(a, def)
	}
	return nil
}

func (a *artboard) animationDef(name string) *animationDef {
	for i := range a.def.Animations {
		if a.def.Animations[i].Name == name {
			return &a.def.Animations[i]
		}
	}
	return nil
}

func (a *artboard) StateMachineCount() int { return len(a.def.StateMachines) }

func (a *artboard) StateMachineAt(index int) engine.StateMachineInstance {
	if index < 0 || index >= len(a.def.StateMachines) {
		return nil
	}
	return newStateMachine(a, &a.def.StateMachines[index])
}

func (a *artboard) StateMachineNamed(name string) engine.StateMachineInstance {
	for i := range a.def.StateMachines {
		if a.def.StateMachines[i].Name == name {
			return newStateMachine(a, &a.def.StateMachines[i])
		}
	}
	return nil
}

func (a *artboard) DefaultStateMachine() engine.StateMachineInstance {
	if a.def.DefaultStateMachine == "" {
		return nil
	}
	return a.StateMachineNamed(a.def.DefaultStateMachine)
}

// eventsOf returns the events defined by sm.
func (a *artboard) eventsOf(sm *stateMachineDef) map[string]*event {
	for i := range a.def.StateMachines {
		if &a.def.StateMachines[i] == sm {
			return a.events[i]
		}
	}
	return nil
}

func (a *artboard) ComponentCount() int { return len(a.components) }

func (a *artboard) ComponentAt(index int) engine.Component {
	if index < 0 || index >= len(a.components) {
		return nil
	}
	return a.components[index]
}

func (a *artboard) Release() {
	for _, s := range a.order {
		s.release()
	}
	if a.frame != nil {
		a.frame.Unref()
		a.frame = nil
	}
	if a.background != nil {
		a.background.Unref()
		a.background = nil
	}
}
