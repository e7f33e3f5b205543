// SPDX-License-Identifier: Unlicense OR MIT

package gl33

import (
	"gioui.org/shader"

	"github.com/sdleffler/luminance"
	"github.com/sdleffler/luminance/internal/gl"
)

func glBlendEquation(eq luminance.BlendEquation) gl.Enum {
	switch eq {
	case luminance.BlendAdd:
		return gl.FUNC_ADD
	case luminance.BlendSubtract:
		return gl.FUNC_SUBTRACT
	case luminance.BlendReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case luminance.BlendMin:
		return gl.MIN
	case luminance.BlendMax:
		return gl.MAX
	default:
		panic("unsupported blend equation")
	}
}

func glBlendFactor(f luminance.BlendFactor) gl.Enum {
	switch f {
	case luminance.BlendZero:
		return gl.ZERO
	case luminance.BlendOne:
		return gl.ONE
	case luminance.BlendSrcColor:
		return gl.SRC_COLOR
	case luminance.BlendOneMinusSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case luminance.BlendSrcAlpha:
		return gl.SRC_ALPHA
	case luminance.BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case luminance.BlendDstColor:
		return gl.DST_COLOR
	case luminance.BlendOneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case luminance.BlendDstAlpha:
		return gl.DST_ALPHA
	case luminance.BlendOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	case luminance.BlendSrcAlphaSaturate:
		return gl.SRC_ALPHA_SATURATE
	default:
		panic("unsupported blend factor")
	}
}

func glComparison(cmp luminance.Comparison) gl.Enum {
	switch cmp {
	case luminance.CmpNever:
		return gl.NEVER
	case luminance.CmpAlways:
		return gl.ALWAYS
	case luminance.CmpEqual:
		return gl.EQUAL
	case luminance.CmpNotEqual:
		return gl.NOTEQUAL
	case luminance.CmpLess:
		return gl.LESS
	case luminance.CmpLessOrEqual:
		return gl.LEQUAL
	case luminance.CmpGreater:
		return gl.GREATER
	case luminance.CmpGreaterOrEqual:
		return gl.GEQUAL
	default:
		panic("unsupported depth comparison")
	}
}

func glCullingOrder(order luminance.FaceCullingOrder) gl.Enum {
	switch order {
	case luminance.OrderCCW:
		return gl.CCW
	case luminance.OrderCW:
		return gl.CW
	default:
		panic("unsupported face culling order")
	}
}

func glCullingMode(mode luminance.FaceCullingMode) gl.Enum {
	switch mode {
	case luminance.CullBack:
		return gl.BACK
	case luminance.CullFront:
		return gl.FRONT
	case luminance.CullFrontAndBack:
		return gl.FRONT_AND_BACK
	default:
		panic("unsupported face culling mode")
	}
}

func glMode(mode luminance.Mode) gl.Enum {
	switch mode {
	case luminance.ModePoint:
		return gl.POINTS
	case luminance.ModeLine:
		return gl.LINES
	case luminance.ModeLineStrip:
		return gl.LINE_STRIP
	case luminance.ModeTriangle:
		return gl.TRIANGLES
	case luminance.ModeTriangleStrip:
		return gl.TRIANGLE_STRIP
	case luminance.ModeTriangleFan:
		return gl.TRIANGLE_FAN
	default:
		panic("unsupported primitive mode")
	}
}

func glDataType(t shader.DataType) gl.Enum {
	switch t {
	case shader.DataTypeFloat:
		return gl.FLOAT
	case shader.DataTypeShort:
		return gl.SHORT
	default:
		panic("unsupported data type")
	}
}
