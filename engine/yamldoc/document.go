package yamldoc

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/animbridge/engine"
)

// document is the top level of a scene document.
type document struct {
	Version         string        `yaml:"version"`
	DefaultArtboard string        `yaml:"defaultArtboard,omitempty"`
	Images          []imageDef    `yaml:"images,omitempty"`
	Artboards       []artboardDef `yaml:"artboards"`
}

type imageDef struct {
	Name string `yaml:"name"`
	// Data is the base64 encoded image file.
	Data string `yaml:"data"`
}

type artboardDef struct {
	Name                string            `yaml:"name"`
	Width               float32           `yaml:"width"`
	Height              float32           `yaml:"height"`
	Clip                bool              `yaml:"clip,omitempty"`
	Background          *colorValue       `yaml:"background,omitempty"`
	DefaultStateMachine string            `yaml:"defaultStateMachine,omitempty"`
	Shapes              []shapeDef        `yaml:"shapes,omitempty"`
	Texts               []textDef         `yaml:"texts,omitempty"`
	Animations          []animationDef    `yaml:"animations,omitempty"`
	StateMachines       []stateMachineDef `yaml:"stateMachines,omitempty"`
}

type shapeDef struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind,omitempty"`
	Commands []command  `yaml:"commands,omitempty"`
	Width    float32    `yaml:"width,omitempty"`
	Height   float32    `yaml:"height,omitempty"`
	X        float32    `yaml:"x,omitempty"`
	Y        float32    `yaml:"y,omitempty"`
	Rotation float32    `yaml:"rotation,omitempty"`
	ScaleX   *float32   `yaml:"scaleX,omitempty"`
	ScaleY   *float32   `yaml:"scaleY,omitempty"`
	Opacity  *float32   `yaml:"opacity,omitempty"`
	FillRule string     `yaml:"fillRule,omitempty"`
	Fill     *fillDef   `yaml:"fill,omitempty"`
	Stroke   *strokeDef `yaml:"stroke,omitempty"`
	Blend    string     `yaml:"blend,omitempty"`
	Clip     string     `yaml:"clip,omitempty"`
	Children []shapeDef `yaml:"children,omitempty"`
	Image    string     `yaml:"image,omitempty"`
	Mesh     *meshDef   `yaml:"mesh,omitempty"`
}

type fillDef struct {
	Color  *colorValue `yaml:"color,omitempty"`
	Linear *linearDef  `yaml:"linear,omitempty"`
	Radial *radialDef  `yaml:"radial,omitempty"`
}

type linearDef struct {
	From  [2]float32 `yaml:"from"`
	To    [2]float32 `yaml:"to"`
	Stops []stopDef  `yaml:"stops"`
}

type radialDef struct {
	Center [2]float32 `yaml:"center"`
	Radius float32    `yaml:"radius"`
	Stops  []stopDef  `yaml:"stops"`
}

type stopDef struct {
	Offset float32    `yaml:"offset"`
	Color  colorValue `yaml:"color"`
}

type strokeDef struct {
	Color     colorValue `yaml:"color"`
	Thickness float32    `yaml:"thickness"`
	Join      string     `yaml:"join,omitempty"`
	Cap       string     `yaml:"cap,omitempty"`
}

type meshDef struct {
	Vertices [][2]float32 `yaml:"vertices"`
	UVs      [][2]float32 `yaml:"uvs"`
	Indices  []uint16     `yaml:"indices"`
}

type textDef struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

type animationDef struct {
	Name     string             `yaml:"name"`
	Duration float32            `yaml:"duration"`
	Loop     string             `yaml:"loop,omitempty"`
	Keys     []keyDef           `yaml:"keys,omitempty"`
	Events   []timelineEventDef `yaml:"events,omitempty"`
}

type keyDef struct {
	Shape    string     `yaml:"shape"`
	Property string     `yaml:"property"`
	Frames   []frameDef `yaml:"frames"`
}

type frameDef struct {
	Time  float32 `yaml:"time"`
	Value float32 `yaml:"value"`
	// Ease shapes the segment from this frame to the next.
	Ease string `yaml:"ease,omitempty"`
}

type timelineEventDef struct {
	Time float32 `yaml:"time"`
	Name string  `yaml:"name"`
}

type stateMachineDef struct {
	Name        string          `yaml:"name"`
	Inputs      []inputDef      `yaml:"inputs,omitempty"`
	States      []stateDef      `yaml:"states"`
	Initial     string          `yaml:"initial"`
	Transitions []transitionDef `yaml:"transitions,omitempty"`
	Listeners   []listenerDef   `yaml:"listeners,omitempty"`
	Events      []eventDef      `yaml:"events,omitempty"`
}

type inputDef struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value string `yaml:"value,omitempty"`
}

type stateDef struct {
	Name      string   `yaml:"name"`
	Animation string   `yaml:"animation,omitempty"`
	Events    []string `yaml:"events,omitempty"`
}

// anyState as a transition source matches every state.
const anyState = "*"

type transitionDef struct {
	From       string         `yaml:"from"`
	To         string         `yaml:"to"`
	Conditions []conditionDef `yaml:"conditions,omitempty"`
}

type conditionDef struct {
	Input string `yaml:"input"`
	Op    string `yaml:"op,omitempty"`
	Value string `yaml:"value,omitempty"`
}

type listenerDef struct {
	Shape  string `yaml:"shape"`
	Action string `yaml:"action"`
	Input  string `yaml:"input,omitempty"`
	Value  string `yaml:"value,omitempty"`
	Event  string `yaml:"event,omitempty"`
}

type eventDef struct {
	Name       string        `yaml:"name"`
	Properties []propertyDef `yaml:"properties,omitempty"`
}

type propertyDef struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

// command is one path command written as [verb, x, y, ...].
type command struct {
	Verb engine.PathVerb
	Args []float32
}

var verbNames = map[string]engine.PathVerb{
	"move":  engine.VerbMove,
	"line":  engine.VerbLine,
	"cubic": engine.VerbCubic,
	"close": engine.VerbClose,
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *command) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		return fmt.Errorf("line %d: path command must be a non-empty sequence", node.Line)
	}
	verb, ok := verbNames[node.Content[0].Value]
	if !ok {
		return fmt.Errorf("line %d: unknown path verb %q", node.Line, node.Content[0].Value)
	}
	args := make([]float32, 0, len(node.Content)-1)
	for _, n := range node.Content[1:] {
		var v float32
		if err := n.Decode(&v); err != nil {
			return err
		}
		args = append(args, v)
	}
	if want := verb.PointCount() * 2; len(args) != want {
		return fmt.Errorf("line %d: %s takes %d numbers, got %d", node.Line, verb, want, len(args))
	}
	c.Verb, c.Args = verb, args
	return nil
}

// colorValue is a color written as #RRGGBB or #AARRGGBB.
type colorValue engine.ColorInt

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *colorValue) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := parseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = colorValue(v)
	return nil
}

func parseColor(s string) (engine.ColorInt, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return 0, fmt.Errorf("color %q: want #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v |= 0xff000000
	}
	return engine.ColorInt(v), nil
}
