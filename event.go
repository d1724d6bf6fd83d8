package animbridge

import (
	"unicode/utf8"
	"unsafe"

	"github.com/gogpu/animbridge/engine"
)

// Event is a view of an event reported by a state machine. It is valid
// while the state machine is alive.
type Event struct {
	raw engine.Event
}

// Name returns the event name.
func (e Event) Name() string { return e.raw.Name() }

// Properties reads the event's custom properties into a new map. The
// event's children are walked on every call.
func (e Event) Properties() *PropertyMap {
	m := &PropertyMap{}
	e.MarshalProperties(m)
	return m
}

// MarshalProperties streams the event's custom properties to sink in
// child order. Entries whose name or string value is not valid UTF-8
// are skipped.
func (e Event) MarshalProperties(sink PropertySink) {
	for _, child := range e.raw.Children() {
		if child == nil {
			continue
		}
		name := borrow(child.Name())
		if !utf8.Valid(name) {
			continue
		}
		switch child.CoreType() {
		case engine.TypeCustomPropertyBoolean:
			if p, ok := child.(engine.CustomPropertyBoolean); ok {
				sink.InsertBool(name, p.PropertyValue())
			}
		case engine.TypeCustomPropertyNumber:
			if p, ok := child.(engine.CustomPropertyNumber); ok {
				sink.InsertNumber(name, p.PropertyValue())
			}
		case engine.TypeCustomPropertyString:
			if p, ok := child.(engine.CustomPropertyString); ok {
				v := borrow(p.PropertyValue())
				if utf8.Valid(v) {
					sink.InsertString(name, v)
				}
			}
		}
	}
}

// borrow exposes the bytes of s without copying. The result must not
// be modified.
func borrow(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
