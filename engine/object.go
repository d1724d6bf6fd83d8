package engine

import "github.com/gogpu/animbridge/geom"

// Core type keys reported by Component.CoreType.
const (
	TypeArtboard              uint16 = 1
	TypeShape                 uint16 = 3
	TypeImage                 uint16 = 100
	TypeCustomPropertyNumber  uint16 = 127
	TypeEvent                 uint16 = 128
	TypeCustomPropertyBoolean uint16 = 129
	TypeCustomPropertyString  uint16 = 130
	TypeTextValueRun          uint16 = 135
)

// Importer parses file bytes into a File using the given factory.
// On any result other than ImportSuccess the returned File is nil.
type Importer interface {
	Import(data []byte, factory Factory) (File, ImportResult)
}

// File is a parsed, immutable animation file.
type File interface {
	ArtboardCount() int
	// ArtboardAt instantiates the artboard at index, or returns nil.
	ArtboardAt(index int) ArtboardInstance
	// ArtboardNamed instantiates the artboard called name, or returns nil.
	ArtboardNamed(name string) ArtboardInstance
	// ArtboardDefault instantiates the engine's default artboard, or
	// returns nil when there is none.
	ArtboardDefault() ArtboardInstance
	// Release drops every primitive the file holds.
	Release()
}

// Component is any named object inside an artboard.
type Component interface {
	CoreType() uint16
	Name() string
}

// TextValueRun is a component holding editable text.
type TextValueRun interface {
	Component
	Text() string
	SetText(text string)
}

// ArtboardInstance is a live instantiation of one artboard.
type ArtboardInstance interface {
	Name() string
	Bounds() geom.AABB
	// Advance updates layout and world transforms. It reports whether
	// anything changed.
	Advance(elapsedSeconds float32) bool
	Draw(r Renderer)

	AnimationCount() int
	AnimationAt(index int) LinearAnimationInstance
	AnimationNamed(name string) LinearAnimationInstance
	StateMachineCount() int
	StateMachineAt(index int) StateMachineInstance
	StateMachineNamed(name string) StateMachineInstance
	// DefaultStateMachine instantiates the designated default state
	// machine, or returns nil when none is designated.
	DefaultStateMachine() StateMachineInstance

	ComponentCount() int
	ComponentAt(index int) Component

	// Release drops every primitive the instance holds.
	Release()
}

// Scene is the surface shared by linear animations and state machines.
type Scene interface {
	Name() string
	Width() float32
	Height() float32
	Loop() Loop
	IsTranslucent() bool
	// DurationSeconds is negative for scenes without a fixed duration.
	DurationSeconds() float32
	// AdvanceAndApply moves time forward, applies the result to the
	// artboard and reports whether playback is still active.
	AdvanceAndApply(elapsedSeconds float32) bool
	Draw(r Renderer)
	PointerDown(p geom.Vec2D)
	PointerMove(p geom.Vec2D)
	PointerUp(p geom.Vec2D)
	// Release drops the scene's own state. The artboard is not released.
	Release()
}

// LinearAnimationInstance plays one timeline.
type LinearAnimationInstance interface {
	Scene
	Time() float32
	SetTime(seconds float32)
	// Direction is 1 when playing forwards and -1 when playing backwards.
	Direction() int
	SetDirection(dir int)
	// Advance moves time without applying it.
	Advance(elapsedSeconds float32) bool
	Apply(mix float32)
	DidLoop() bool
	SetLoop(l Loop)
	KeepGoing() bool
}

// InputKind is the type of a state machine input.
type InputKind uint8

const (
	InputBool InputKind = iota
	InputNumber
	InputTrigger
)

// Input is a named state machine input.
type Input interface {
	Name() string
	Kind() InputKind
}

// BoolInput is a boolean input.
type BoolInput interface {
	Input
	Value() bool
	SetValue(v bool)
}

// NumberInput is a numeric input.
type NumberInput interface {
	Input
	Value() float32
	SetValue(v float32)
}

// TriggerInput is a one-shot input consumed by the next advance.
type TriggerInput interface {
	Input
	Fire()
}

// Event is an event definition. Its children include custom properties.
type Event interface {
	Component
	Children() []Component
}

// CustomPropertyBoolean is a boolean custom property.
type CustomPropertyBoolean interface {
	Component
	PropertyValue() bool
}

// CustomPropertyNumber is a numeric custom property.
type CustomPropertyNumber interface {
	Component
	PropertyValue() float32
}

// CustomPropertyString is a text custom property.
type CustomPropertyString interface {
	Component
	PropertyValue() string
}

// EventReport is an event reported during the most recent advance.
type EventReport struct {
	Event Event
	// SecondsDelay is how far before the end of the advance the event
	// fired.
	SecondsDelay float32
}

// StateMachineInstance drives an artboard from inputs and pointer
// events.
type StateMachineInstance interface {
	Scene
	InputCount() int
	// InputAt returns nil when index is out of range.
	InputAt(index int) Input
	GetBool(name string) BoolInput
	GetNumber(name string) NumberInput
	GetTrigger(name string) TriggerInput
	// ReportedEventCount is the number of events reported by the most
	// recent advance.
	ReportedEventCount() int
	ReportedEventAt(index int) EventReport
}
