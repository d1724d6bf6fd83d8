package engine

import "fmt"

// BufferType selects what a RenderBuffer holds.
type BufferType uint8

const (
	BufferIndex BufferType = iota
	BufferVertex
)

// String returns the buffer type name.
func (t BufferType) String() string {
	switch t {
	case BufferIndex:
		return "index"
	case BufferVertex:
		return "vertex"
	default:
		return fmt.Sprintf("BufferType(%d)", t)
	}
}

// BufferFlags are usage hints for a RenderBuffer.
type BufferFlags uint32

const (
	BufferFlagsNone BufferFlags = 0
	// BufferMappedOnceAtInitialization marks buffers whose contents are
	// written once right after creation and never remapped.
	BufferMappedOnceAtInitialization BufferFlags = 1 << 0
)

// FillRule selects how path interiors are determined.
type FillRule uint8

const (
	FillNonZero FillRule = iota
	FillEvenOdd
)

// String returns the fill rule name.
func (r FillRule) String() string {
	switch r {
	case FillNonZero:
		return "nonZero"
	case FillEvenOdd:
		return "evenOdd"
	default:
		return fmt.Sprintf("FillRule(%d)", r)
	}
}

// PaintStyle selects whether a paint strokes or fills.
type PaintStyle uint8

const (
	PaintStroke PaintStyle = iota
	PaintFill
)

// StrokeJoin is the shape used at stroke corners.
type StrokeJoin uint8

const (
	JoinMiter StrokeJoin = iota
	JoinRound
	JoinBevel
)

// StrokeCap is the shape used at open stroke ends.
type StrokeCap uint8

const (
	CapButt StrokeCap = iota
	CapRound
	CapSquare
)

// BlendMode is a compositing operator. The numeric values are part of
// the command table and must not change.
type BlendMode uint8

const (
	BlendSrcOver    BlendMode = 3
	BlendScreen     BlendMode = 14
	BlendOverlay    BlendMode = 15
	BlendDarken     BlendMode = 16
	BlendLighten    BlendMode = 17
	BlendColorDodge BlendMode = 18
	BlendColorBurn  BlendMode = 19
	BlendHardLight  BlendMode = 20
	BlendSoftLight  BlendMode = 21
	BlendDifference BlendMode = 22
	BlendExclusion  BlendMode = 23
	BlendMultiply   BlendMode = 24
	BlendHue        BlendMode = 25
	BlendSaturation BlendMode = 26
	BlendColor      BlendMode = 27
	BlendLuminosity BlendMode = 28
)

var blendNames = map[BlendMode]string{
	BlendSrcOver:    "srcOver",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendColorDodge: "colorDodge",
	BlendColorBurn:  "colorBurn",
	BlendHardLight:  "hardLight",
	BlendSoftLight:  "softLight",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
	BlendMultiply:   "multiply",
	BlendHue:        "hue",
	BlendSaturation: "saturation",
	BlendColor:      "color",
	BlendLuminosity: "luminosity",
}

// String returns the blend mode name.
func (m BlendMode) String() string {
	if s, ok := blendNames[m]; ok {
		return s
	}
	return fmt.Sprintf("BlendMode(%d)", m)
}

// ParseBlendMode looks up a blend mode by the name String returns.
func ParseBlendMode(s string) (BlendMode, bool) {
	for m, name := range blendNames {
		if name == s {
			return m, true
		}
	}
	return 0, false
}

// ColorInt is a packed 0xAARRGGBB color.
type ColorInt uint32

// ARGB packs four 8-bit channels.
func ARGB(a, r, g, b uint8) ColorInt {
	return ColorInt(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha channel.
func (c ColorInt) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c ColorInt) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c ColorInt) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c ColorInt) B() uint8 { return uint8(c) }

// WithOpacity returns c with its alpha multiplied by opacity in [0,1].
func (c ColorInt) WithOpacity(opacity float32) ColorInt {
	opacity = max(0, min(1, opacity))
	a := uint8(float32(c.A())*opacity + 0.5)
	return c&0x00ffffff | ColorInt(a)<<24
}

// Loop is the playback mode of a linear animation.
type Loop uint8

const (
	LoopOneShot Loop = iota
	LoopLoop
	LoopPingPong
)

// String returns the loop mode name.
func (l Loop) String() string {
	switch l {
	case LoopOneShot:
		return "oneShot"
	case LoopLoop:
		return "loop"
	case LoopPingPong:
		return "pingPong"
	default:
		return fmt.Sprintf("Loop(%d)", l)
	}
}

// ImportResult is the outcome of parsing a file.
type ImportResult uint8

const (
	ImportSuccess ImportResult = iota
	ImportUnsupportedVersion
	ImportMalformed
)

// String returns the import result name.
func (r ImportResult) String() string {
	switch r {
	case ImportSuccess:
		return "success"
	case ImportUnsupportedVersion:
		return "unsupported version"
	case ImportMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("ImportResult(%d)", r)
	}
}
