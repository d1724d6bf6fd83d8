package animbridge

import "fmt"

type selectorKind uint8

const (
	selectDefault selectorKind = iota
	selectIndex
	selectName
)

// Selector picks one artboard, animation or state machine: the default
// one, the one at an index, or the one with a name.
//
// The zero Selector selects the default.
type Selector struct {
	kind  selectorKind
	index int
	name  string
}

// ByDefault selects the default object. For artboards the engine
// decides. For state machines and scenes it is the artboard's designated
// default state machine, else its first state machine. For linear
// animations it is the first animation.
func ByDefault() Selector { return Selector{kind: selectDefault} }

// ByIndex selects by position. Out-of-range indices select nothing.
func ByIndex(i int) Selector { return Selector{kind: selectIndex, index: i} }

// ByName selects by exact name.
func ByName(name string) Selector { return Selector{kind: selectName, name: name} }

func (s Selector) String() string {
	switch s.kind {
	case selectIndex:
		return fmt.Sprintf("index %d", s.index)
	case selectName:
		return fmt.Sprintf("name %q", s.name)
	default:
		return "default"
	}
}
