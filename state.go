// SPDX-License-Identifier: Unlicense OR MIT

package luminance

// Mode is the primitive connection mode of a vertex set.
type Mode uint8

const (
	ModePoint Mode = iota
	ModeLine
	ModeLineStrip
	ModeTriangle
	ModeTriangleStrip
	ModeTriangleFan
)

// Comparison is a depth test comparison function.
type Comparison uint8

const (
	CmpNever Comparison = iota
	CmpAlways
	CmpEqual
	CmpNotEqual
	CmpLess
	CmpLessOrEqual
	CmpGreater
	CmpGreaterOrEqual
)

// BlendEquation selects how source and destination fragments are combined
// when blending is enabled.
type BlendEquation uint8

const (
	BlendAdd BlendEquation = iota
	BlendSubtract
	BlendReverseSubtract
	BlendMin
	BlendMax
)

// BlendFactor scales the source or destination term of the blend equation.
type BlendFactor uint8

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstColor
	BlendOneMinusDstColor
	BlendDstAlpha
	BlendOneMinusDstAlpha
	BlendSrcAlphaSaturate
)

// FaceCullingOrder is the winding considered front-facing.
type FaceCullingOrder uint8

const (
	OrderCCW FaceCullingOrder = iota
	OrderCW
)

// FaceCullingMode selects which faces get culled.
type FaceCullingMode uint8

const (
	CullBack FaceCullingMode = iota
	CullFront
	CullFrontAndBack
)

type Blend struct {
	Enable               bool
	Equation             BlendEquation
	SrcFactor, DstFactor BlendFactor
}

type DepthTest struct {
	Enable     bool
	Comparison Comparison
}

type FaceCulling struct {
	Enable bool
	Order  FaceCullingOrder
	Mode   FaceCullingMode
}

// RenderState is the per-batch render configuration committed by a render
// gate before its draw calls execute.
type RenderState struct {
	Blend     Blend
	Depth     DepthTest
	DepthMask bool
	Culling   FaceCulling
}

// DefaultRenderState returns the render state used by most opaque passes:
// no blending, depth test Less with writes enabled, no face culling.
func DefaultRenderState() RenderState {
	return RenderState{
		Depth:     DepthTest{Enable: true, Comparison: CmpLess},
		DepthMask: true,
	}
}

// Viewport is a window-space rectangle, origin in the lower left corner
// as in OpenGL.
type Viewport struct {
	X, Y          int32
	Width, Height int32
}

// PipelineState configures the frame entry transition: the clear color and
// behavior, the viewport and the sRGB conversion flag committed when a
// pipeline is opened against a target.
type PipelineState struct {
	ClearColor [4]float32
	// SkipClear leaves the target contents in place instead of clearing.
	SkipClear bool
	// Viewport overrides the whole-target viewport when non-nil.
	Viewport *Viewport
	SRGB     bool
}
