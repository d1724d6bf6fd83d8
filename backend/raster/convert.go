package raster

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

func toMatrix(m geom.Mat2D) gg.Matrix {
	return gg.Matrix{
		A: float64(m.A), B: float64(m.B), C: float64(m.C),
		D: float64(m.D), E: float64(m.E), F: float64(m.F),
	}
}

func toRGBA(c engine.ColorInt, alpha float64) gg.RGBA {
	return gg.RGBA2(
		float64(c.R())/255,
		float64(c.G())/255,
		float64(c.B())/255,
		float64(c.A())/255*alpha,
	)
}

func toFillRule(r engine.FillRule) gg.FillRule {
	if r == engine.FillEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}

func toLineCap(c engine.StrokeCap) gg.LineCap {
	switch c {
	case engine.CapRound:
		return gg.LineCapRound
	case engine.CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func toLineJoin(j engine.StrokeJoin) gg.LineJoin {
	switch j {
	case engine.JoinRound:
		return gg.LineJoinRound
	case engine.JoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

// toBlendMode maps the blend modes gg can composite images with. The
// rest fall back to normal blending.
func toBlendMode(m engine.BlendMode) gg.BlendMode {
	switch m {
	case engine.BlendMultiply:
		return gg.BlendMultiply
	case engine.BlendScreen:
		return gg.BlendScreen
	case engine.BlendOverlay:
		return gg.BlendOverlay
	default:
		return gg.BlendNormal
	}
}
