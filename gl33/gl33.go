// SPDX-License-Identifier: Unlicense OR MIT

// Package gl33 is the OpenGL 3.3 backend. A Context owns the graphics
// state cache; every resource handle shares it, and the pipeline gates
// commit rendering state through it so redundant driver calls are elided.
package gl33

import (
	"sync/atomic"

	"github.com/sdleffler/luminance"
	"github.com/sdleffler/luminance/internal/gl"
)

// Only one live state cache may mirror the driver at a time. Two caches
// would both believe they own the same underlying state and desynchronize
// each other. The guard is process-wide rather than thread-local: a GL
// context is current on a single OS thread, which callers pin with
// runtime.LockOSThread.
var live atomic.Bool

// Context owns the graphics state cache for one driver context. All
// resource handles created from it share the cache by reference; none of
// them own it.
type Context struct {
	funcs gl.Functions
	state *glState

	// current is the program activated by the innermost shading gate,
	// used to validate vertex layouts at draw time.
	current *Program
}

// New acquires the state cache guard and builds the cache by querying the
// driver's current settings, so the cache starts truthful rather than
// assuming defaults. It fails with luminance.ErrUnavailableStateCache
// while another Context is live, and with a luminance.StateQueryError if
// any driver query returns a value the cache cannot interpret.
func New(funcs gl.Functions) (*Context, error) {
	if !live.CompareAndSwap(false, true) {
		return nil, luminance.ErrUnavailableStateCache
	}
	state, err := newGLState(funcs)
	if err != nil {
		live.Store(false)
		return nil, err
	}
	luminance.Logger().Info("gl33: graphics state acquired")
	return &Context{funcs: funcs, state: state}, nil
}

// Release drops the state cache and frees the guard so a new Context can
// be constructed. The Context must not be used afterwards.
func (c *Context) Release() {
	if c.state == nil {
		return
	}
	c.state = nil
	live.Store(false)
	luminance.Logger().Info("gl33: graphics state released")
}

func (c *Context) SetViewport(v luminance.Viewport) {
	c.state.setViewport(c.funcs, [4]int32{v.X, v.Y, v.Width, v.Height})
}

func (c *Context) SetClearColor(color [4]float32) {
	c.state.setClearColor(c.funcs, color)
}

func (c *Context) SetBlendingState(enabled bool) {
	c.state.set(c.funcs, gl.BLEND, enabled)
}

func (c *Context) SetBlendingEquation(eq luminance.BlendEquation) {
	c.state.setBlendEquation(c.funcs, glBlendEquation(eq))
}

func (c *Context) SetBlendingFunc(src, dst luminance.BlendFactor) {
	c.state.setBlendFunc(c.funcs, glBlendFactor(src), glBlendFactor(dst))
}

func (c *Context) SetDepthTest(enabled bool) {
	c.state.set(c.funcs, gl.DEPTH_TEST, enabled)
}

func (c *Context) SetDepthTestComparison(cmp luminance.Comparison) {
	c.state.setDepthComparison(c.funcs, glComparison(cmp))
}

func (c *Context) SetDepthMask(mask bool) {
	c.state.setDepthMask(c.funcs, mask)
}

func (c *Context) SetFaceCullingState(enabled bool) {
	c.state.set(c.funcs, gl.CULL_FACE, enabled)
}

func (c *Context) SetFaceCullingOrder(order luminance.FaceCullingOrder) {
	c.state.setFaceCullingOrder(c.funcs, glCullingOrder(order))
}

func (c *Context) SetFaceCullingMode(mode luminance.FaceCullingMode) {
	c.state.setFaceCullingMode(c.funcs, glCullingMode(mode))
}

func (c *Context) SetVertexRestart(enabled bool) {
	c.state.set(c.funcs, gl.PRIMITIVE_RESTART, enabled)
}

func (c *Context) EnableSRGBFramebuffer(enabled bool) {
	c.state.set(c.funcs, gl.FRAMEBUFFER_SRGB, enabled)
}

// Invalidate marks every cached setting unknown, forcing each next set to
// reach the driver. Used after an external party touched the context
// behind the cache's back.
func (c *Context) Invalidate() {
	c.InvalidateViewport()
	c.InvalidateClearColor()
	c.InvalidateBlending()
	c.InvalidateDepthTest()
	c.InvalidateFaceCulling()
	c.InvalidateVertexRestart()
	c.InvalidateTextureBindings()
	c.InvalidateBufferBindings()
	c.InvalidateVertexArray()
	c.InvalidateProgram()
	c.InvalidateFramebuffer()
	c.InvalidateSRGBFramebuffer()
}

func (c *Context) InvalidateViewport()   { c.state.viewport.invalidate() }
func (c *Context) InvalidateClearColor() { c.state.clearColor.invalidate() }

func (c *Context) InvalidateBlending() {
	c.state.blend.invalidate()
	c.state.blendEq.invalidate()
	c.state.blendFunc.invalidate()
}

func (c *Context) InvalidateDepthTest() {
	c.state.depthTest.invalidate()
	c.state.depthCmp.invalidate()
	c.state.depthMask.invalidate()
}

func (c *Context) InvalidateFaceCulling() {
	c.state.cullFace.invalidate()
	c.state.cullOrder.invalidate()
	c.state.cullMode.invalidate()
}

func (c *Context) InvalidateVertexRestart() {
	c.state.restart.invalidate()
	c.state.restartIndex.invalidate()
}

func (c *Context) InvalidateTextureBindings() {
	c.state.activeUnit.invalidate()
	for i := range c.state.boundTextures {
		c.state.boundTextures[i].invalidate()
	}
}

func (c *Context) InvalidateBufferBindings() {
	c.state.arrayBuf.invalidate()
	c.state.elemBuf.invalidate()
	for i := range c.state.bufferBases {
		c.state.bufferBases[i].invalidate()
	}
}

func (c *Context) InvalidateVertexArray()     { c.state.vertArray.invalidate() }
func (c *Context) InvalidateProgram()         { c.state.prog.invalidate() }
func (c *Context) InvalidateFramebuffer()     { c.state.drawFBO.invalidate() }
func (c *Context) InvalidateSRGBFramebuffer() { c.state.srgb.invalidate() }
