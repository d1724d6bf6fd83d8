package yamldoc

import (
	"fmt"

	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

type input struct {
	name string
	kind engine.InputKind
}

func (in *input) Name() string           { return in.name }
func (in *input) Kind() engine.InputKind { return in.kind }

type boolInput struct {
	input
	value bool
}

func (in *boolInput) Value() bool     { return in.value }
func (in *boolInput) SetValue(v bool) { in.value = v }

type numberInput struct {
	input
	value float32
}

func (in *numberInput) Value() float32     { return in.value }
func (in *numberInput) SetValue(v float32) { in.value = v }

type triggerInput struct {
	input
	fired bool
}

func (in *triggerInput) Fire() { in.fired = true }

// compareOp is a condition operator.
type compareOp uint8

const (
	opEqual compareOp = iota
	opNotEqual
	opLess
	opLessEqual
	opGreater
	opGreaterEqual
)

func parseOp(kind engine.InputKind, s string) (compareOp, error) {
	ops := map[string]compareOp{
		"": opEqual, "==": opEqual, "!=": opNotEqual,
		"<": opLess, "<=": opLessEqual, ">": opGreater, ">=": opGreaterEqual,
	}
	op, ok := ops[s]
	if !ok {
		return 0, fmt.Errorf("unknown operator %q", s)
	}
	switch kind {
	case engine.InputBool:
		if op != opEqual && op != opNotEqual {
			return 0, fmt.Errorf("operator %q does not apply to bool inputs", s)
		}
	case engine.InputTrigger:
		if s != "" {
			return 0, fmt.Errorf("trigger conditions take no operator, got %q", s)
		}
	}
	return op, nil
}

type condition struct {
	input   engine.Input
	op      compareOp
	boolean bool
	number  float32
}

func (c *condition) holds() bool {
	switch in := c.input.(type) {
	case *boolInput:
		return (in.value == c.boolean) == (c.op == opEqual)
	case *numberInput:
		v := in.value
		switch c.op {
		case opEqual:
			return v == c.number
		case opNotEqual:
			return v != c.number
		case opLess:
			return v < c.number
		case opLessEqual:
			return v <= c.number
		case opGreater:
			return v > c.number
		case opGreaterEqual:
			return v >= c.number
		}
	case *triggerInput:
		return in.fired
	}
	return false
}

type state struct {
	def  *stateDef
	anim *linearAnimation
}

type transition struct {
	from       *state // nil matches any state
	to         *state
	conditions []condition
}

type listener struct {
	shape  *shape
	action pointerAction
	input  engine.Input
	value  string
	event  *event
}

// stateMachine drives one artboard instance from inputs and pointer
// events. It runs a single layer: one current state whose animation
// plays while the state is active.
type stateMachine struct {
	artboard    *artboard
	def         *stateMachineDef
	inputs      []engine.Input
	states      map[string]*state
	initial     *state
	current     *state
	transitions []transition
	listeners   []listener
	events      map[string]*event

	started  bool
	pending  []*event
	reported []engine.EventReport
}

var _ engine.StateMachineInstance = (*stateMachine)(nil)

func newStateMachine(a *artboard, def *stateMachineDef) *stateMachine {
	sm := &stateMachine{
		artboard: a,
		def:      def,
		states:   make(map[string]*state, len(def.States)),
		events:   a.eventsOf(def),
	}

	byName := make(map[string]engine.Input, len(def.Inputs))
	for _, d := range def.Inputs {
		kind, _ := parseInputKind(d.Type)
		base := input{name: d.Name, kind: kind}
		var in engine.Input
		switch kind {
		case engine.InputBool:
			v, _ := parseBool(d.Value)
			in = &boolInput{input: base, value: v}
		case engine.InputNumber:
			v, _ := parseNumber(d.Value)
			in = &numberInput{input: base, value: v}
		default:
			in = &triggerInput{input: base}
		}
		sm.inputs = append(sm.inputs, in)
		byName[d.Name] = in
	}

	for i := range def.States {
		d := &def.States[i]
		s := &state{def: d}
		if d.Animation != "" {
			s.anim = newLinearAnimation(a, a.animationDef(d.Animation))
		}
		sm.states[d.Name] = s
	}
	sm.initial = sm.states[def.Initial]

	for _, d := range def.Transitions {
		t := transition{to: sm.states[d.To]}
		if d.From != anyState {
			t.from = sm.states[d.From]
		}
		for _, cd := range d.Conditions {
			in := byName[cd.Input]
			op, _ := parseOp(in.Kind(), cd.Op)
			c := condition{input: in, op: op}
			c.boolean, _ = parseBool(cd.Value)
			c.number, _ = parseNumber(cd.Value)
			t.conditions = append(t.conditions, c)
		}
		sm.transitions = append(sm.transitions, t)
	}

	for _, d := range def.Listeners {
		action, _ := parseAction(d.Action)
		l := listener{shape: a.shapes[d.Shape], action: action, value: d.Value}
		if d.Input != "" {
			l.input = byName[d.Input]
		}
		if d.Event != "" {
			l.event = sm.events[d.Event]
		}
		sm.listeners = append(sm.listeners, l)
	}
	return sm
}

func (sm *stateMachine) Name() string             { return sm.def.Name }
func (sm *stateMachine) Width() float32           { return sm.artboard.def.Width }
func (sm *stateMachine) Height() float32          { return sm.artboard.def.Height }
func (sm *stateMachine) Loop() engine.Loop        { return engine.LoopOneShot }
func (sm *stateMachine) IsTranslucent() bool      { return sm.artboard.isTranslucent() }
func (sm *stateMachine) DurationSeconds() float32 { return -1 }
func (sm *stateMachine) Draw(r engine.Renderer)   { sm.artboard.Draw(r) }
func (sm *stateMachine) InputCount() int          { return len(sm.inputs) }
func (sm *stateMachine) ReportedEventCount() int  { return len(sm.reported) }

func (sm *stateMachine) InputAt(index int) engine.Input {
	if index < 0 || index >= len(sm.inputs) {
		return nil
	}
	return sm.inputs[index]
}

func (sm *stateMachine) find(name string) engine.Input {
	for _, in := range sm.inputs {
		if in.Name() == name {
			return in
		}
	}
	return nil
}

func (sm *stateMachine) GetBool(name string) engine.BoolInput {
	if in, ok := sm.find(name).(*boolInput); ok {
		return in
	}
	return nil
}

func (sm *stateMachine) GetNumber(name string) engine.NumberInput {
	if in, ok := sm.find(name).(*numberInput); ok {
		return in
	}
	return nil
}

func (sm *stateMachine) GetTrigger(name string) engine.TriggerInput {
	if in, ok := sm.find(name).(*triggerInput); ok {
		return in
	}
	return nil
}

func (sm *stateMachine) ReportedEventAt(index int) engine.EventReport {
	if index < 0 || index >= len(sm.reported) {
		return engine.EventReport{}
	}
	return sm.reported[index]
}

// AdvanceAndApply runs one step: reported events are cleared, the
// initial state is entered on the first step, transitions are
// evaluated once and triggers consumed, then the current state's
// animation advances. It reports whether anything is still changing.
func (sm *stateMachine) AdvanceAndApply(elapsedSeconds float32) bool {
	sm.reported = sm.reported[:0]
	for _, e := range sm.pending {
		sm.report(e, 0)
	}
	sm.pending = sm.pending[:0]

	changed := false
	if !sm.started {
		sm.started = true
		sm.enter(sm.initial, elapsedSeconds)
		changed = true
	}

	for i := range sm.transitions {
		t := &sm.transitions[i]
		if t.to == sm.current || (t.from != nil && t.from != sm.current) || !t.allow() {
			continue
		}
		sm.enter(t.to, elapsedSeconds)
		changed = true
		break
	}
	for _, in := range sm.inputs {
		if trig, ok := in.(*triggerInput); ok {
			trig.fired = false
		}
	}

	if anim := sm.current.anim; anim != nil {
		if anim.Advance(elapsedSeconds) {
			changed = true
		}
		anim.Apply(1)
		for _, f := range anim.fired {
			// Timeline events this machine does not define are ignored.
			if e := sm.events[f.name]; e != nil {
				sm.report(e, f.delay)
			}
		}
	}

	if sm.artboard.Advance(elapsedSeconds) {
		changed = true
	}
	return changed
}

func (t *transition) allow() bool {
	for i := range t.conditions {
		if !t.conditions[i].holds() {
			return false
		}
	}
	return true
}

func (sm *stateMachine) enter(s *state, elapsedSeconds float32) {
	sm.current = s
	if s.anim != nil {
		s.anim.reset()
	}
	for _, name := range s.def.Events {
		sm.report(sm.events[name], elapsedSeconds)
	}
}

func (sm *stateMachine) report(e *event, delay float32) {
	if e == nil {
		return
	}
	sm.reported = append(sm.reported, engine.EventReport{Event: e, SecondsDelay: delay})
}

func (sm *stateMachine) PointerDown(p geom.Vec2D) { sm.pointer(pointerDown, p) }
func (sm *stateMachine) PointerMove(p geom.Vec2D) { sm.pointer(pointerMove, p) }
func (sm *stateMachine) PointerUp(p geom.Vec2D)   { sm.pointer(pointerUp, p) }

// pointer applies the effects of every listener for action whose shape
// contains p. Listener events are reported by the next advance.
func (sm *stateMachine) pointer(action pointerAction, p geom.Vec2D) {
	for i := range sm.listeners {
		l := &sm.listeners[i]
		if l.action != action || !l.shape.hit(p) {
			continue
		}
		switch in := l.input.(type) {
		case *boolInput:
			if l.value == toggle {
				in.value = !in.value
			} else {
				in.value, _ = parseBool(l.value)
			}
		case *numberInput:
			in.value, _ = parseNumber(l.value)
		case *triggerInput:
			in.fired = true
		}
		if l.event != nil {
			sm.pending = append(sm.pending, l.event)
		}
	}
}

func (sm *stateMachine) Release() {
	for _, s := range sm.states {
		if s.anim != nil {
			s.anim.Release()
		}
	}
	sm.reported = nil
	sm.pending = nil
}
