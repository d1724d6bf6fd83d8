package yamldoc

import (
	"fmt"
	"strconv"

	"github.com/tanema/gween/ease"

	"github.com/gogpu/animbridge/engine"
)

func parseFillRule(s string) (engine.FillRule, error) {
	switch s {
	case "", "nonZero":
		return engine.FillNonZero, nil
	case "evenOdd":
		return engine.FillEvenOdd, nil
	}
	return 0, fmt.Errorf("unknown fill rule %q", s)
}

func parseJoin(s string) (engine.StrokeJoin, error) {
	switch s {
	case "", "miter":
		return engine.JoinMiter, nil
	case "round":
		return engine.JoinRound, nil
	case "bevel":
		return engine.JoinBevel, nil
	}
	return 0, fmt.Errorf("unknown stroke join %q", s)
}

func parseCap(s string) (engine.StrokeCap, error) {
	switch s {
	case "", "butt":
		return engine.CapButt, nil
	case "round":
		return engine.CapRound, nil
	case "square":
		return engine.CapSquare, nil
	}
	return 0, fmt.Errorf("unknown stroke cap %q", s)
}

func parseBlend(s string) (engine.BlendMode, error) {
	if s == "" {
		return engine.BlendSrcOver, nil
	}
	m, ok := engine.ParseBlendMode(s)
	if !ok {
		return 0, fmt.Errorf("unknown blend mode %q", s)
	}
	return m, nil
}

func parseLoop(s string) (engine.Loop, error) {
	switch s {
	case "", "oneShot":
		return engine.LoopOneShot, nil
	case "loop":
		return engine.LoopLoop, nil
	case "pingPong":
		return engine.LoopPingPong, nil
	}
	return 0, fmt.Errorf("unknown loop mode %q", s)
}

// hold keeps the start value for the whole segment.
func hold(_, b, _, _ float32) float32 { return b }

var easings = map[string]ease.TweenFunc{
	"":           ease.Linear,
	"linear":     ease.Linear,
	"hold":       hold,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outBounce":  ease.OutBounce,
	"outElastic": ease.OutElastic,
}

func parseEase(s string) (ease.TweenFunc, error) {
	fn, ok := easings[s]
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", s)
	}
	return fn, nil
}

// property is an animatable shape property.
type property uint8

const (
	propX property = iota
	propY
	propRotation
	propScaleX
	propScaleY
	propOpacity
	propWidth
	propHeight
	numProps
)

var propertyNames = map[string]property{
	"x":        propX,
	"y":        propY,
	"rotation": propRotation,
	"scaleX":   propScaleX,
	"scaleY":   propScaleY,
	"opacity":  propOpacity,
	"width":    propWidth,
	"height":   propHeight,
}

func parseProperty(s string) (property, error) {
	p, ok := propertyNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown property %q", s)
	}
	return p, nil
}

func parseInputKind(s string) (engine.InputKind, error) {
	switch s {
	case "bool":
		return engine.InputBool, nil
	case "number":
		return engine.InputNumber, nil
	case "trigger":
		return engine.InputTrigger, nil
	}
	return 0, fmt.Errorf("unknown input type %q", s)
}

func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

func parseNumber(s string) (float32, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

// pointerAction is the pointer event a listener reacts to.
type pointerAction uint8

const (
	pointerDown pointerAction = iota
	pointerUp
	pointerMove
)

func parseAction(s string) (pointerAction, error) {
	switch s {
	case "down":
		return pointerDown, nil
	case "up":
		return pointerUp, nil
	case "move":
		return pointerMove, nil
	}
	return 0, fmt.Errorf("unknown pointer action %q", s)
}
