// SPDX-License-Identifier: Unlicense OR MIT

package gl33

import (
	"github.com/sdleffler/luminance"
	"github.com/sdleffler/luminance/internal/gl"
)

// Framebuffer is a render target: either an offscreen color texture with
// an optional depth attachment, or the window back buffer.
type Framebuffer struct {
	ctx      *Context
	obj      gl.Framebuffer
	width    int
	height   int
	color    *Texture
	depthBuf gl.Renderbuffer
	hasDepth bool
	back     bool
}

// BackBuffer wraps the window-system framebuffer. It owns no driver
// objects and must not be released.
func BackBuffer(ctx *Context, width, height int) *Framebuffer {
	return &Framebuffer{ctx: ctx, width: width, height: height, back: true}
}

// NewFramebuffer builds an offscreen target with a color texture sized
// and formatted per desc and, when withDepth is set, a depth
// renderbuffer. A target that fails its completeness check is torn down
// before the error is returned.
func NewFramebuffer(ctx *Context, desc TextureDesc, withDepth bool) (*Framebuffer, error) {
	color, err := NewTexture(ctx, desc)
	if err != nil {
		return nil, err
	}
	f := ctx.funcs
	obj := f.CreateFramebuffer()
	if !obj.Valid() {
		color.Release()
		return nil, luminance.ResourceError{Kind: "framebuffer"}
	}
	fb := &Framebuffer{ctx: ctx, obj: obj, width: desc.Width, height: desc.Height, color: color}
	ctx.state.bindDrawFramebuffer(f, obj)
	f.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, color.obj, 0)
	if withDepth {
		depth := f.CreateRenderbuffer()
		f.BindRenderbuffer(gl.RENDERBUFFER, depth)
		f.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT32F, desc.Width, desc.Height)
		f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, depth)
		fb.depthBuf = depth
		fb.hasDepth = true
	}
	if st := f.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		fb.Release()
		return nil, luminance.IncompleteFramebuffer{Status: uint32(st)}
	}
	luminance.Logger().Debug("gl33: framebuffer created", "id", obj.V,
		"width", desc.Width, "height", desc.Height, "depth", withDepth)
	return fb, nil
}

// Size returns the target dimensions.
func (fb *Framebuffer) Size() (width, height int) {
	return fb.width, fb.height
}

// ColorTexture returns the color attachment, or nil for the back buffer.
func (fb *Framebuffer) ColorTexture() *Texture {
	return fb.color
}

// Release tears down the framebuffer, its depth storage and its color
// texture. Releasing the back buffer is a programming bug.
func (fb *Framebuffer) Release() {
	if fb.back {
		panic("gl33: back buffer cannot be released")
	}
	if !fb.obj.Valid() {
		return
	}
	fb.ctx.state.forgetFramebuffer(fb.obj)
	fb.ctx.funcs.DeleteFramebuffer(fb.obj)
	fb.obj = gl.Framebuffer{}
	if fb.hasDepth {
		fb.ctx.funcs.DeleteRenderbuffer(fb.depthBuf)
		fb.hasDepth = false
	}
	if fb.color != nil {
		fb.color.Release()
	}
	luminance.Logger().Debug("gl33: framebuffer released")
}
