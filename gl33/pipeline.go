// SPDX-License-Identifier: Unlicense OR MIT

package gl33

import (
	"github.com/sdleffler/luminance"
	"github.com/sdleffler/luminance/internal/gl"
)

// Pipeline is the top-level gate, opened once per target per frame. It
// hands out bound-resource tokens whose slots are reclaimed when the
// pipeline scope ends.
type Pipeline struct {
	ctx    *Context
	tokens []releasable
}

type releasable interface{ Release() }

// ShadingGate activates shader programs inside an open pipeline.
type ShadingGate struct {
	ctx *Context
}

// RenderGate commits per-batch render state inside an active program.
type RenderGate struct {
	ctx *Context
}

// TessGate issues draw commands against vertex sets.
type TessGate struct {
	ctx *Context
}

// Pipeline opens a render pipeline against target: it commits the
// framebuffer binding, viewport, clear color and sRGB flag through the
// state cache, clears the target unless configured otherwise, and runs fn
// with the pipeline and its shading gate. Every bound-resource token
// still live when fn returns is released. Errors from fn propagate
// unchanged; the cache only ever reflects committed driver calls, so a
// failed frame can simply be retried.
func (c *Context) Pipeline(target *Framebuffer, st luminance.PipelineState, fn func(*Pipeline, ShadingGate) error) error {
	s, f := c.state, c.funcs
	s.bindDrawFramebuffer(f, target.obj)
	vp := st.Viewport
	if vp == nil {
		vp = &luminance.Viewport{Width: int32(target.width), Height: int32(target.height)}
	}
	s.setViewport(f, [4]int32{vp.X, vp.Y, vp.Width, vp.Height})
	s.setClearColor(f, st.ClearColor)
	s.set(f, gl.FRAMEBUFFER_SRGB, st.SRGB)
	if !st.SkipClear {
		f.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	}
	p := &Pipeline{ctx: c}
	defer p.releaseTokens()
	return fn(p, ShadingGate{ctx: c})
}

func (p *Pipeline) releaseTokens() {
	for _, t := range p.tokens {
		t.Release()
	}
	p.tokens = nil
}

// BoundTexture reserves a texture unit for the lifetime of the pipeline
// scope that created it. Its unit number is what gets uploaded to sampler
// uniforms.
type BoundTexture struct {
	ctx  *Context
	unit uint32
	live bool
}

// Unit returns the reserved texture unit.
func (bt *BoundTexture) Unit() int32 { return int32(bt.unit) }

// Release returns the unit to the free list. No driver unbind is issued;
// the next assignment of the unit overwrites it lazily. Release is
// idempotent and also runs automatically when the pipeline scope ends.
func (bt *BoundTexture) Release() {
	if !bt.live {
		return
	}
	bt.live = false
	bt.ctx.state.units.release(bt.unit)
}

// BoundBuffer reserves a uniform-buffer binding point, released like a
// BoundTexture.
type BoundBuffer struct {
	ctx     *Context
	binding uint32
	live    bool
}

// Binding returns the reserved binding point.
func (bb *BoundBuffer) Binding() uint32 { return bb.binding }

func (bb *BoundBuffer) Release() {
	if !bb.live {
		return
	}
	bb.live = false
	bb.ctx.state.bufBindings.release(bb.binding)
}

// BindTexture reserves a unit, issues the cached bind of t at that unit
// and returns the token. Binding cannot fail at this layer; hardware unit
// exhaustion surfaces from the driver when the unit is actually used.
func (p *Pipeline) BindTexture(t *Texture) *BoundTexture {
	unit := p.ctx.state.units.acquire()
	p.ctx.state.bindTextureAt(p.ctx.funcs, gl.TEXTURE_2D, t.obj, unit)
	bt := &BoundTexture{ctx: p.ctx, unit: unit, live: true}
	p.tokens = append(p.tokens, bt)
	return bt
}

// BindBuffer reserves a uniform-buffer binding point and issues the
// cached bind of b at it.
func (p *Pipeline) BindBuffer(b *Buffer) *BoundBuffer {
	binding := p.ctx.state.bufBindings.acquire()
	p.ctx.state.bindBufferBase(p.ctx.funcs, b.obj, binding)
	bb := &BoundBuffer{ctx: p.ctx, binding: binding, live: true}
	p.tokens = append(p.tokens, bb)
	return bb
}

// Shade activates prog through the cache (a no-op if already active) and
// runs fn with the program's uniform interface and a render gate.
func (sg ShadingGate) Shade(prog *Program, fn func(ProgramInterface, RenderGate) error) error {
	c := sg.ctx
	c.state.useProgram(c.funcs, prog.obj)
	prev := c.current
	c.current = prog
	defer func() { c.current = prev }()
	return fn(ProgramInterface{ctx: c, prog: prog}, RenderGate{ctx: c})
}

// ProgramInterface sets uniforms on the program activated by the
// enclosing shading gate.
type ProgramInterface struct {
	ctx  *Context
	prog *Program
}

// Uniform resolves a uniform declared at program construction. Setting an
// undeclared or inactive uniform is a silent no-op; inactivity was
// already reported as a construction warning.
func (pi ProgramInterface) Uniform(name string) Uniform {
	loc, ok := pi.prog.unifs[name]
	if !ok {
		loc = gl.Uniform{V: -1}
	}
	return Uniform{ctx: pi.ctx, loc: loc}
}

// SetBlock binds a uniform block to the binding point reserved by bb.
func (pi ProgramInterface) SetBlock(name string, bb *BoundBuffer) {
	idx := pi.ctx.funcs.GetUniformBlockIndex(pi.prog.obj, name)
	if idx == gl.INVALID_INDEX {
		return
	}
	pi.ctx.funcs.UniformBlockBinding(pi.prog.obj, idx, uint(bb.Binding()))
}

// Uniform is a resolved uniform location. Setters on an inactive
// location are no-ops.
type Uniform struct {
	ctx *Context
	loc gl.Uniform
}

func (u Uniform) SetInt(v int32) {
	if u.loc.Valid() {
		u.ctx.funcs.Uniform1i(u.loc, int(v))
	}
}

func (u Uniform) SetFloat(v float32) {
	if u.loc.Valid() {
		u.ctx.funcs.Uniform1f(u.loc, v)
	}
}

func (u Uniform) SetVec2(v [2]float32) {
	if u.loc.Valid() {
		u.ctx.funcs.Uniform2f(u.loc, v[0], v[1])
	}
}

func (u Uniform) SetVec3(v [3]float32) {
	if u.loc.Valid() {
		u.ctx.funcs.Uniform3f(u.loc, v[0], v[1], v[2])
	}
}

func (u Uniform) SetVec4(v [4]float32) {
	if u.loc.Valid() {
		u.ctx.funcs.Uniform4f(u.loc, v[0], v[1], v[2], v[3])
	}
}

func (u Uniform) SetMat4(v [16]float32) {
	if u.loc.Valid() {
		u.ctx.funcs.UniformMatrix4fv(u.loc, v)
	}
}

// SetTexture uploads the token's unit number as a sampler value.
func (u Uniform) SetTexture(bt *BoundTexture) {
	u.SetInt(bt.Unit())
}

// Render commits the batch render state through the cache and runs fn
// with a tessellation gate. Blend equation and factors are only committed
// while blending is enabled, and culling order and mode while culling is
// enabled; disabled state leaves the previous values cached.
func (rg RenderGate) Render(rs luminance.RenderState, fn func(TessGate) error) error {
	c := rg.ctx
	s, f := c.state, c.funcs
	s.set(f, gl.BLEND, rs.Blend.Enable)
	if rs.Blend.Enable {
		s.setBlendEquation(f, glBlendEquation(rs.Blend.Equation))
		s.setBlendFunc(f, glBlendFactor(rs.Blend.SrcFactor), glBlendFactor(rs.Blend.DstFactor))
	}
	s.set(f, gl.DEPTH_TEST, rs.Depth.Enable)
	if rs.Depth.Enable {
		s.setDepthComparison(f, glComparison(rs.Depth.Comparison))
	}
	s.setDepthMask(f, rs.DepthMask)
	s.set(f, gl.CULL_FACE, rs.Culling.Enable)
	if rs.Culling.Enable {
		s.setFaceCullingOrder(f, glCullingOrder(rs.Culling.Order))
		s.setFaceCullingMode(f, glCullingMode(rs.Culling.Mode))
	}
	return fn(TessGate{ctx: c})
}

// TessView restricts a draw to a vertex range or overrides the instance
// count. The zero value draws the whole vertex set.
type TessView struct {
	Start     int
	Count     int
	Instances int
}

// Render draws the whole vertex set.
func (tg TessGate) Render(t *Tess) error {
	return tg.RenderView(t, TessView{})
}

// RenderView validates the vertex set against the active program's
// declared inputs, commits vertex-restart state, binds the vertex array
// through the cache and issues the draw call, selecting the indexed and
// instanced variants from the vertex set's composition.
func (tg TessGate) RenderView(t *Tess, view TessView) error {
	c := tg.ctx
	if err := matchLayout(c.current, t); err != nil {
		return err
	}
	s, f := c.state, c.funcs
	s.set(f, gl.PRIMITIVE_RESTART, t.restart)
	if t.restart {
		s.setVertexRestartIndex(f, ^uint32(0))
	}
	s.bindVertexArray(f, t.vao, false)

	instances := view.Instances
	if instances < 1 {
		instances = t.instances
	}
	start := view.Start
	mode := glMode(t.mode)
	if t.indices.Valid() {
		count := view.Count
		if count == 0 {
			count = t.indexLen - start
		}
		// Offsets are in bytes; indices are 32 bit.
		if instances > 1 {
			f.DrawElementsInstanced(mode, count, gl.UNSIGNED_INT, start*4, instances)
		} else {
			f.DrawElements(mode, count, gl.UNSIGNED_INT, start*4)
		}
		return nil
	}
	count := view.Count
	if count == 0 {
		count = t.vertices - start
	}
	if instances > 1 {
		f.DrawArraysInstanced(mode, start, count, instances)
	} else {
		f.DrawArrays(mode, start, count)
	}
	return nil
}

// matchLayout checks that the attributes captured by the vertex set line
// up, index by index, with the inputs the active program declared.
func matchLayout(prog *Program, t *Tess) error {
	if prog == nil {
		return nil
	}
	if len(prog.inputs) != len(t.attribs) {
		return luminance.ErrVertexLayoutMismatch
	}
	for i, inp := range prog.inputs {
		attr := t.attribs[i]
		if inp.Type != attr.Type || inp.Size != attr.Size {
			return luminance.ErrVertexLayoutMismatch
		}
	}
	return nil
}
