package yamldoc

import (
	"errors"
	"fmt"

	"github.com/gogpu/animbridge/engine"
)

// validate checks every reference and enum in the document so that
// instantiation can assume a consistent document.
func (d *document) validate() error {
	images := make(map[string]bool, len(d.Images))
	for _, img := range d.Images {
		if img.Name == "" {
			return errors.New("yamldoc: image without a name")
		}
		if images[img.Name] {
			return fmt.Errorf("yamldoc: duplicate image %q", img.Name)
		}
		images[img.Name] = true
	}

	artboards := make(map[string]bool, len(d.Artboards))
	for i := range d.Artboards {
		ab := &d.Artboards[i]
		if ab.Name == "" {
			return fmt.Errorf("yamldoc: artboard %d has no name", i)
		}
		if artboards[ab.Name] {
			return fmt.Errorf("yamldoc: duplicate artboard %q", ab.Name)
		}
		artboards[ab.Name] = true
		if err := ab.validate(images); err != nil {
			return fmt.Errorf("yamldoc: artboard %q: %w", ab.Name, err)
		}
	}
	if d.DefaultArtboard != "" && !artboards[d.DefaultArtboard] {
		return fmt.Errorf("yamldoc: default artboard %q not found", d.DefaultArtboard)
	}
	return nil
}

func (ab *artboardDef) validate(images map[string]bool) error {
	if ab.Width < 0 || ab.Height < 0 {
		return fmt.Errorf("negative size %gx%g", ab.Width, ab.Height)
	}

	shapes := make(map[string]bool, len(ab.Shapes))
	for i := range ab.Shapes {
		s := &ab.Shapes[i]
		if s.Name == "" {
			return fmt.Errorf("shape %d has no name", i)
		}
		if shapes[s.Name] {
			return fmt.Errorf("duplicate shape %q", s.Name)
		}
		shapes[s.Name] = true
	}
	for i := range ab.Shapes {
		s := &ab.Shapes[i]
		if err := s.validate(shapes, images); err != nil {
			return fmt.Errorf("shape %q: %w", s.Name, err)
		}
	}

	texts := make(map[string]bool, len(ab.Texts))
	for _, t := range ab.Texts {
		if t.Name == "" || texts[t.Name] {
			return fmt.Errorf("text run %q: missing or duplicate name", t.Name)
		}
		texts[t.Name] = true
	}

	animations := make(map[string]bool, len(ab.Animations))
	for i := range ab.Animations {
		a := &ab.Animations[i]
		if a.Name == "" || animations[a.Name] {
			return fmt.Errorf("animation %q: missing or duplicate name", a.Name)
		}
		animations[a.Name] = true
		if err := a.validate(shapes); err != nil {
			return fmt.Errorf("animation %q: %w", a.Name, err)
		}
	}

	machines := make(map[string]bool, len(ab.StateMachines))
	for i := range ab.StateMachines {
		sm := &ab.StateMachines[i]
		if sm.Name == "" || machines[sm.Name] {
			return fmt.Errorf("state machine %q: missing or duplicate name", sm.Name)
		}
		machines[sm.Name] = true
		if err := sm.validate(shapes, animations); err != nil {
			return fmt.Errorf("state machine %q: %w", sm.Name, err)
		}
	}
	if ab.DefaultStateMachine != "" && !machines[ab.DefaultStateMachine] {
		return fmt.Errorf("default state machine %q not found", ab.DefaultStateMachine)
	}
	return nil
}

func (s *shapeDef) validate(shapes, images map[string]bool) error {
	if err := s.validateGeometry(); err != nil {
		return err
	}
	for i := range s.Children {
		c := &s.Children[i]
		if c.Kind == kindImage || c.Image != "" || len(c.Children) > 0 {
			return fmt.Errorf("child %d: children hold plain geometry only", i)
		}
		if err := c.validateGeometry(); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	if _, err := parseFillRule(s.FillRule); err != nil {
		return err
	}
	if _, err := parseBlend(s.Blend); err != nil {
		return err
	}
	if s.Opacity != nil && (*s.Opacity < 0 || *s.Opacity > 1) {
		return fmt.Errorf("opacity %g outside [0,1]", *s.Opacity)
	}
	if s.Clip != "" && (s.Clip == s.Name || !shapes[s.Clip]) {
		return fmt.Errorf("clip shape %q not found", s.Clip)
	}
	if s.Fill != nil {
		if err := s.Fill.validate(); err != nil {
			return err
		}
	}
	if s.Stroke != nil {
		if _, err := parseJoin(s.Stroke.Join); err != nil {
			return err
		}
		if _, err := parseCap(s.Stroke.Cap); err != nil {
			return err
		}
		if s.Stroke.Thickness < 0 {
			return fmt.Errorf("negative stroke thickness %g", s.Stroke.Thickness)
		}
	}

	if s.Kind == kindImage {
		if !images[s.Image] {
			return fmt.Errorf("image %q not found", s.Image)
		}
		if s.Mesh != nil {
			return s.Mesh.validate()
		}
		return nil
	}
	if s.Image != "" || s.Mesh != nil {
		return fmt.Errorf("image and mesh need kind %q", kindImage)
	}
	return nil
}

const (
	kindPath    = "path"
	kindRect    = "rect"
	kindEllipse = "ellipse"
	kindImage   = "image"
)

func (s *shapeDef) validateGeometry() error {
	switch s.Kind {
	case "", kindPath:
		if len(s.Commands) > 0 && s.Commands[0].Verb != engine.VerbMove {
			return errors.New("path must start with move")
		}
	case kindRect, kindEllipse:
		if len(s.Commands) > 0 {
			return fmt.Errorf("%s takes width and height, not commands", s.Kind)
		}
		if s.Width < 0 || s.Height < 0 {
			return fmt.Errorf("negative size %gx%g", s.Width, s.Height)
		}
	case kindImage:
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}
	return nil
}

func (f *fillDef) validate() error {
	set := 0
	for _, ok := range []bool{f.Color != nil, f.Linear != nil, f.Radial != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return errors.New("fill needs exactly one of color, linear or radial")
	}
	switch {
	case f.Linear != nil:
		return validateStops(f.Linear.Stops)
	case f.Radial != nil:
		if f.Radial.Radius < 0 {
			return fmt.Errorf("negative gradient radius %g", f.Radial.Radius)
		}
		return validateStops(f.Radial.Stops)
	}
	return nil
}

func validateStops(stops []stopDef) error {
	if len(stops) == 0 {
		return errors.New("gradient without stops")
	}
	prev := float32(0)
	for _, s := range stops {
		if s.Offset < prev || s.Offset > 1 {
			return fmt.Errorf("gradient stop %g out of order or outside [0,1]", s.Offset)
		}
		prev = s.Offset
	}
	return nil
}

func (m *meshDef) validate() error {
	if len(m.Vertices) != len(m.UVs) {
		return fmt.Errorf("mesh has %d vertices but %d uvs", len(m.Vertices), len(m.UVs))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh index count %d is not a multiple of 3", len(m.Indices))
	}
	for _, i := range m.Indices {
		if int(i) >= len(m.Vertices) {
			return fmt.Errorf("mesh index %d out of range", i)
		}
	}
	return nil
}

func (a *animationDef) validate(shapes map[string]bool) error {
	if a.Duration < 0 {
		return fmt.Errorf("negative duration %g", a.Duration)
	}
	if _, err := parseLoop(a.Loop); err != nil {
		return err
	}
	for _, k := range a.Keys {
		if !shapes[k.Shape] {
			return fmt.Errorf("key shape %q not found", k.Shape)
		}
		if _, err := parseProperty(k.Property); err != nil {
			return err
		}
		if len(k.Frames) == 0 {
			return fmt.Errorf("key %s.%s has no frames", k.Shape, k.Property)
		}
		prev := float32(0)
		for _, f := range k.Frames {
			if f.Time < prev {
				return fmt.Errorf("key %s.%s: frames out of order", k.Shape, k.Property)
			}
			prev = f.Time
			if _, err := parseEase(f.Ease); err != nil {
				return err
			}
		}
	}
	for _, e := range a.Events {
		if e.Name == "" || e.Time < 0 || e.Time > a.Duration {
			return fmt.Errorf("timeline event %q at %g is outside the animation", e.Name, e.Time)
		}
	}
	return nil
}

func (sm *stateMachineDef) validate(shapes, animations map[string]bool) error {
	inputs := make(map[string]engine.InputKind, len(sm.Inputs))
	for _, in := range sm.Inputs {
		kind, err := parseInputKind(in.Type)
		if err != nil {
			return err
		}
		if in.Name == "" {
			return errors.New("input without a name")
		}
		if _, dup := inputs[in.Name]; dup {
			return fmt.Errorf("duplicate input %q", in.Name)
		}
		inputs[in.Name] = kind
		if err := validateValue(kind, in.Value); err != nil {
			return fmt.Errorf("input %q: %w", in.Name, err)
		}
	}

	events := make(map[string]bool, len(sm.Events))
	for _, e := range sm.Events {
		if e.Name == "" || events[e.Name] {
			return fmt.Errorf("event %q: missing or duplicate name", e.Name)
		}
		events[e.Name] = true
		for _, p := range e.Properties {
			if err := p.validate(); err != nil {
				return fmt.Errorf("event %q: %w", e.Name, err)
			}
		}
	}

	states := make(map[string]bool, len(sm.States))
	for _, s := range sm.States {
		if s.Name == "" || s.Name == anyState || states[s.Name] {
			return fmt.Errorf("state %q: missing, reserved or duplicate name", s.Name)
		}
		states[s.Name] = true
		if s.Animation != "" && !animations[s.Animation] {
			return fmt.Errorf("state %q: animation %q not found", s.Name, s.Animation)
		}
		for _, e := range s.Events {
			if !events[e] {
				return fmt.Errorf("state %q: event %q not found", s.Name, e)
			}
		}
	}
	if !states[sm.Initial] {
		return fmt.Errorf("initial state %q not found", sm.Initial)
	}

	for _, t := range sm.Transitions {
		if (t.From != anyState && !states[t.From]) || !states[t.To] {
			return fmt.Errorf("transition %s -> %s: state not found", t.From, t.To)
		}
		for _, c := range t.Conditions {
			kind, ok := inputs[c.Input]
			if !ok {
				return fmt.Errorf("transition %s -> %s: input %q not found", t.From, t.To, c.Input)
			}
			if _, err := parseOp(kind, c.Op); err != nil {
				return fmt.Errorf("transition %s -> %s: %w", t.From, t.To, err)
			}
			if err := validateValue(kind, c.Value); err != nil {
				return fmt.Errorf("transition %s -> %s: %w", t.From, t.To, err)
			}
		}
	}

	for _, l := range sm.Listeners {
		if !shapes[l.Shape] {
			return fmt.Errorf("listener shape %q not found", l.Shape)
		}
		if _, err := parseAction(l.Action); err != nil {
			return err
		}
		if l.Input == "" && l.Event == "" {
			return fmt.Errorf("listener on %q has no effect", l.Shape)
		}
		if l.Input != "" {
			kind, ok := inputs[l.Input]
			if !ok {
				return fmt.Errorf("listener input %q not found", l.Input)
			}
			toggles := kind == engine.InputBool && l.Value == toggle
			if err := validateValue(kind, l.Value); err != nil && !toggles {
				return fmt.Errorf("listener input %q: %w", l.Input, err)
			}
		}
		if l.Event != "" && !events[l.Event] {
			return fmt.Errorf("listener event %q not found", l.Event)
		}
	}
	return nil
}

// toggle as a listener value flips a bool input.
const toggle = "toggle"

func validateValue(kind engine.InputKind, v string) error {
	var err error
	switch kind {
	case engine.InputBool:
		_, err = parseBool(v)
	case engine.InputNumber:
		_, err = parseNumber(v)
	case engine.InputTrigger:
		if v != "" {
			err = fmt.Errorf("trigger takes no value, got %q", v)
		}
	}
	return err
}

func (p *propertyDef) validate() error {
	if p.Name == "" {
		return errors.New("property without a name")
	}
	var err error
	switch p.Type {
	case "bool":
		_, err = parseBool(p.Value)
	case "number":
		_, err = parseNumber(p.Value)
	case "string":
	default:
		err = fmt.Errorf("unknown property type %q", p.Type)
	}
	if err != nil {
		return fmt.Errorf("property %q: %w", p.Name, err)
	}
	return nil
}
