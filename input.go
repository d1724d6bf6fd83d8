package animbridge

import "github.com/gogpu/animbridge/engine"

// Input is a state machine input: *BoolInput, *NumberInput or
// *TriggerInput. Inputs are views into the state machine and are valid
// while it is alive. They are not released on their own.
type Input interface {
	Name() string
	isInput()
}

func wrapInput(raw engine.Input) (Input, bool) {
	if raw == nil {
		return nil, false
	}
	switch raw.Kind() {
	case engine.InputBool:
		if in, ok := raw.(engine.BoolInput); ok {
			return &BoolInput{raw: in}, true
		}
	case engine.InputNumber:
		if in, ok := raw.(engine.NumberInput); ok {
			return &NumberInput{raw: in}, true
		}
	case engine.InputTrigger:
		if in, ok := raw.(engine.TriggerInput); ok {
			return &TriggerInput{raw: in}, true
		}
	}
	return nil, false
}

// BoolInput is a boolean input.
type BoolInput struct{ raw engine.BoolInput }

func (*BoolInput) isInput()          {}
func (b *BoolInput) Name() string    { return b.raw.Name() }
func (b *BoolInput) Value() bool     { return b.raw.Value() }
func (b *BoolInput) SetValue(v bool) { b.raw.SetValue(v) }

// NumberInput is a numeric input.
type NumberInput struct{ raw engine.NumberInput }

func (*NumberInput) isInput()             {}
func (n *NumberInput) Name() string       { return n.raw.Name() }
func (n *NumberInput) Value() float32     { return n.raw.Value() }
func (n *NumberInput) SetValue(v float32) { n.raw.SetValue(v) }

// TriggerInput is a one-shot input. Firing it affects the next advance
// only.
type TriggerInput struct{ raw engine.TriggerInput }

func (*TriggerInput) isInput()       {}
func (t *TriggerInput) Name() string { return t.raw.Name() }
func (t *TriggerInput) Fire()        { t.raw.Fire() }
