package yamldoc

import (
	"github.com/gogpu/animbridge/engine"
)

type artboardComponent struct{ name string }

func (c *artboardComponent) CoreType() uint16 { return engine.TypeArtboard }
func (c *artboardComponent) Name() string     { return c.name }

func (s *shape) CoreType() uint16 {
	if s.def.Kind == kindImage {
		return engine.TypeImage
	}
	return engine.TypeShape
}

func (s *shape) Name() string { return s.def.Name }

type textRun struct {
	name string
	text string
}

var _ engine.TextValueRun = (*textRun)(nil)

func (t *textRun) CoreType() uint16    { return engine.TypeTextValueRun }
func (t *textRun) Name() string        { return t.name }
func (t *textRun) Text() string        { return t.text }
func (t *textRun) SetText(text string) { t.text = text }

type event struct {
	name       string
	properties []engine.Component
}

var _ engine.Event = (*event)(nil)

func newEvent(def *eventDef) *event {
	e := &event{name: def.Name}
	for _, p := range def.Properties {
		switch p.Type {
		case "bool":
			v, _ := parseBool(p.Value)
			e.properties = append(e.properties, &boolProperty{name: p.Name, value: v})
		case "number":
			v, _ := parseNumber(p.Value)
			e.properties = append(e.properties, &numberProperty{name: p.Name, value: v})
		case "string":
			e.properties = append(e.properties, &stringProperty{name: p.Name, value: p.Value})
		}
	}
	return e
}

func (e *event) CoreType() uint16             { return engine.TypeEvent }
func (e *event) Name() string                 { return e.name }
func (e *event) Children() []engine.Component { return e.properties }

type boolProperty struct {
	name  string
	value bool
}

func (p *boolProperty) CoreType() uint16    { return engine.TypeCustomPropertyBoolean }
func (p *boolProperty) Name() string        { return p.name }
func (p *boolProperty) PropertyValue() bool { return p.value }

type numberProperty struct {
	name  string
	value float32
}

func (p *numberProperty) CoreType() uint16       { return engine.TypeCustomPropertyNumber }
func (p *numberProperty) Name() string           { return p.name }
func (p *numberProperty) PropertyValue() float32 { return p.value }

type stringProperty struct {
	name  string
	value string
}

func (p *stringProperty) CoreType() uint16      { return engine.TypeCustomPropertyString }
func (p *stringProperty) Name() string          { return p.name }
func (p *stringProperty) PropertyValue() string { return p.value }
