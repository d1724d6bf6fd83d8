package animbridge

import (
	"iter"
	"slices"
	"strings"
)

// Property is a custom property value: BoolProperty, NumberProperty or
// StringProperty.
type Property interface {
	isProperty()
}

// BoolProperty is a boolean custom property.
type BoolProperty bool

// NumberProperty is a numeric custom property.
type NumberProperty float32

// StringProperty is a text custom property.
type StringProperty string

func (BoolProperty) isProperty()   {}
func (NumberProperty) isProperty() {}
func (StringProperty) isProperty() {}

// PropertySink receives custom properties as they are read from an
// event. Name and string values borrow engine storage and are only valid
// during the call; sinks copy what they keep.
type PropertySink interface {
	InsertBool(name []byte, v bool)
	InsertNumber(name []byte, v float32)
	InsertString(name, v []byte)
}

type propertyEntry struct {
	name  string
	value Property
}

// PropertyMap is a set of custom properties ordered by name. Inserting
// an existing name replaces its value. The zero value is empty and ready
// to use.
type PropertyMap struct {
	entries []propertyEntry
}

var _ PropertySink = (*PropertyMap)(nil)

func (m *PropertyMap) search(name string) (int, bool) {
	return slices.BinarySearchFunc(m.entries, name, func(e propertyEntry, name string) int {
		return strings.Compare(e.name, name)
	})
}

// Len returns the number of properties.
func (m *PropertyMap) Len() int { return len(m.entries) }

// Get returns the property called name.
func (m *PropertyMap) Get(name string) (Property, bool) {
	i, ok := m.search(name)
	if !ok {
		return nil, false
	}
	return m.entries[i].value, true
}

// Set stores v under name.
func (m *PropertyMap) Set(name string, v Property) {
	i, ok := m.search(name)
	if ok {
		m.entries[i].value = v
		return
	}
	m.entries = slices.Insert(m.entries, i, propertyEntry{name: name, value: v})
}

// Keys returns the property names in order.
func (m *PropertyMap) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.name
	}
	return keys
}

// All yields every property in name order.
func (m *PropertyMap) All() iter.Seq2[string, Property] {
	return func(yield func(string, Property) bool) {
		for _, e := range m.entries {
			if !yield(e.name, e.value) {
				return
			}
		}
	}
}

// InsertBool implements PropertySink.
func (m *PropertyMap) InsertBool(name []byte, v bool) {
	m.Set(string(name), BoolProperty(v))
}

// InsertNumber implements PropertySink.
func (m *PropertyMap) InsertNumber(name []byte, v float32) {
	m.Set(string(name), NumberProperty(v))
}

// InsertString implements PropertySink.
func (m *PropertyMap) InsertString(name, v []byte) {
	m.Set(string(name), StringProperty(v))
}
