package animbridge

import (
	"iter"
	"time"

	"github.com/gogpu/animbridge/engine"
)

// StateMachine drives an artboard from inputs and pointer events and
// reports events.
//
// The event list is replaced by every advance. Events that were not read
// before the next AdvanceAndApply are lost.
type StateMachine struct {
	sceneBase
	sm engine.StateMachineInstance
}

var _ Scene = (*StateMachine)(nil)

func newStateMachine(a *Artboard, raw engine.StateMachineInstance) *StateMachine {
	return &StateMachine{sceneBase: sceneBase{artboard: a, raw: raw}, sm: raw}
}

// InputCount returns the number of inputs.
func (s *StateMachine) InputCount() int { return s.sm.InputCount() }

// Input returns the input at index.
func (s *StateMachine) Input(index int) (Input, bool) {
	if index < 0 || index >= s.sm.InputCount() {
		return nil, false
	}
	return wrapInput(s.sm.InputAt(index))
}

// Inputs yields every input in index order.
func (s *StateMachine) Inputs() iter.Seq[Input] {
	return func(yield func(Input) bool) {
		for i := range s.sm.InputCount() {
			in, ok := s.Input(i)
			if ok && !yield(in) {
				return
			}
		}
	}
}

// Bool returns the boolean input called name.
func (s *StateMachine) Bool(name string) (*BoolInput, bool) {
	raw := s.sm.GetBool(name)
	if raw == nil {
		return nil, false
	}
	return &BoolInput{raw: raw}, true
}

// Number returns the number input called name.
func (s *StateMachine) Number(name string) (*NumberInput, bool) {
	raw := s.sm.GetNumber(name)
	if raw == nil {
		return nil, false
	}
	return &NumberInput{raw: raw}, true
}

// Trigger returns the trigger input called name.
func (s *StateMachine) Trigger(name string) (*TriggerInput, bool) {
	raw := s.sm.GetTrigger(name)
	if raw == nil {
		return nil, false
	}
	return &TriggerInput{raw: raw}, true
}

// EventCount returns the number of events reported by the most recent
// advance.
func (s *StateMachine) EventCount() int { return s.sm.ReportedEventCount() }

// Event returns the event at index and how long before the end of the
// most recent advance it fired.
func (s *StateMachine) Event(index int) (Event, time.Duration, bool) {
	if index < 0 || index >= s.sm.ReportedEventCount() {
		return Event{}, 0, false
	}
	report := s.sm.ReportedEventAt(index)
	if report.Event == nil {
		return Event{}, 0, false
	}
	return Event{raw: report.Event}, seconds(report.SecondsDelay), true
}

// Events yields the events reported by the most recent advance.
func (s *StateMachine) Events() iter.Seq2[Event, time.Duration] {
	return func(yield func(Event, time.Duration) bool) {
		for i := range s.sm.ReportedEventCount() {
			ev, delay, ok := s.Event(i)
			if ok && !yield(ev, delay) {
				return
			}
		}
	}
}
