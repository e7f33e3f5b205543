// SPDX-License-Identifier: Unlicense OR MIT

package gl33

import (
	"github.com/sdleffler/luminance"
	"github.com/sdleffler/luminance/internal/gl"
)

// cached is one state cache entry. An unknown entry forces the next set
// to issue the driver call.
type cached[T comparable] struct {
	v     T
	known bool
}

// update stores v and reports whether the driver call must be issued.
func (c *cached[T]) update(v T) bool {
	if c.known && c.v == v {
		return false
	}
	c.v, c.known = v, true
	return true
}

func (c *cached[T]) invalidate() { c.known = false }

func (c *cached[T]) is(v T) bool { return c.known && c.v == v }

// slotPool hands out reusable slot numbers, preferring released ones over
// minting new values.
type slotPool struct {
	free []uint32
	next uint32
}

func (p *slotPool) acquire() uint32 {
	if n := len(p.free); n > 0 {
		s := p.free[n-1]
		p.free = p.free[:n-1]
		return s
	}
	s := p.next
	p.next++
	return s
}

func (p *slotPool) release(s uint32) {
	p.free = append(p.free, s)
}

type texBinding struct {
	target gl.Enum
	tex    gl.Texture
}

// glState mirrors the last known value of every cacheable driver setting.
// It is mutated only through its own setters, which compare against the
// mirror before issuing the driver call; for any sequence of sets, the
// number of driver calls equals the number of value changes.
type glState struct {
	viewport   cached[[4]int32]
	clearColor cached[[4]float32]

	blend     cached[bool]
	blendEq   cached[gl.Enum]
	blendFunc cached[[2]gl.Enum]

	depthTest cached[bool]
	depthCmp  cached[gl.Enum]
	depthMask cached[bool]

	cullFace  cached[bool]
	cullOrder cached[gl.Enum]
	cullMode  cached[gl.Enum]

	restart      cached[bool]
	restartIndex cached[uint32]

	activeUnit    cached[uint32]
	boundTextures []cached[texBinding]
	bufferBases   []cached[gl.Buffer]

	arrayBuf  cached[gl.Buffer]
	elemBuf   cached[gl.Buffer]
	vertArray cached[gl.VertexArray]
	prog      cached[gl.Program]
	drawFBO   cached[gl.Framebuffer]
	srgb      cached[bool]

	units       slotPool
	bufBindings slotPool
}

// newGLState queries the driver for the current value of every cacheable
// setting so the cache starts truthful. An unrecognized value fails the
// whole construction; the cache is never left partially initialized.
func newGLState(f gl.Functions) (*glState, error) {
	s := new(glState)

	vp := f.GetInteger4(gl.VIEWPORT)
	s.viewport.update([4]int32{int32(vp[0]), int32(vp[1]), int32(vp[2]), int32(vp[3])})
	s.clearColor.update(f.GetFloat4(gl.COLOR_CLEAR_VALUE))

	s.blend.update(f.IsEnabled(gl.BLEND))
	eq := f.GetInteger(gl.BLEND_EQUATION_RGB)
	if !recognizedBlendEq(eq) {
		return nil, luminance.StateQueryError{Setting: "blending equation", Value: eq}
	}
	s.blendEq.update(gl.Enum(eq))
	src := f.GetInteger(gl.BLEND_SRC_RGB)
	dst := f.GetInteger(gl.BLEND_DST_RGB)
	if !recognizedBlendFactor(src) {
		return nil, luminance.StateQueryError{Setting: "blending source factor", Value: src}
	}
	if !recognizedBlendFactor(dst) {
		return nil, luminance.StateQueryError{Setting: "blending destination factor", Value: dst}
	}
	s.blendFunc.update([2]gl.Enum{gl.Enum(src), gl.Enum(dst)})

	s.depthTest.update(f.IsEnabled(gl.DEPTH_TEST))
	cmp := f.GetInteger(gl.DEPTH_FUNC)
	if !recognizedComparison(cmp) {
		return nil, luminance.StateQueryError{Setting: "depth comparison", Value: cmp}
	}
	s.depthCmp.update(gl.Enum(cmp))
	s.depthMask.update(f.GetInteger(gl.DEPTH_WRITEMASK) != gl.FALSE)

	s.cullFace.update(f.IsEnabled(gl.CULL_FACE))
	order := f.GetInteger(gl.FRONT_FACE)
	if order != gl.CW && order != gl.CCW {
		return nil, luminance.StateQueryError{Setting: "face culling order", Value: order}
	}
	s.cullOrder.update(gl.Enum(order))
	mode := f.GetInteger(gl.CULL_FACE_MODE)
	if mode != gl.FRONT && mode != gl.BACK && mode != gl.FRONT_AND_BACK {
		return nil, luminance.StateQueryError{Setting: "face culling mode", Value: mode}
	}
	s.cullMode.update(gl.Enum(mode))

	s.restart.update(f.IsEnabled(gl.PRIMITIVE_RESTART))
	s.restartIndex.update(uint32(f.GetInteger(gl.PRIMITIVE_RESTART_INDEX)))

	unit := f.GetInteger(gl.ACTIVE_TEXTURE)
	if unit < gl.TEXTURE0 {
		return nil, luminance.StateQueryError{Setting: "active texture unit", Value: unit}
	}
	s.activeUnit.update(uint32(unit - gl.TEXTURE0))

	s.bufferBases = make([]cached[gl.Buffer], f.GetInteger(gl.MAX_UNIFORM_BUFFER_BINDINGS))
	for i := range s.bufferBases {
		s.bufferBases[i].update(gl.Buffer(f.GetBindingi(gl.UNIFORM_BUFFER_BINDING, i)))
	}

	s.arrayBuf.update(gl.Buffer(f.GetBinding(gl.ARRAY_BUFFER_BINDING)))
	s.elemBuf.update(gl.Buffer(f.GetBinding(gl.ELEMENT_ARRAY_BUFFER_BINDING)))
	s.vertArray.update(gl.VertexArray(f.GetBinding(gl.VERTEX_ARRAY_BINDING)))
	s.prog.update(gl.Program(f.GetBinding(gl.CURRENT_PROGRAM)))
	s.drawFBO.update(gl.Framebuffer(f.GetBinding(gl.FRAMEBUFFER_BINDING)))
	s.srgb.update(f.IsEnabled(gl.FRAMEBUFFER_SRGB))

	return s, nil
}

func (s *glState) setViewport(f gl.Functions, v [4]int32) {
	if s.viewport.update(v) {
		f.Viewport(int(v[0]), int(v[1]), int(v[2]), int(v[3]))
	}
}

func (s *glState) setClearColor(f gl.Functions, c [4]float32) {
	if s.clearColor.update(c) {
		f.ClearColor(c[0], c[1], c[2], c[3])
	}
}

func (s *glState) set(f gl.Functions, target gl.Enum, enable bool) {
	var c *cached[bool]
	switch target {
	case gl.BLEND:
		c = &s.blend
	case gl.DEPTH_TEST:
		c = &s.depthTest
	case gl.CULL_FACE:
		c = &s.cullFace
	case gl.PRIMITIVE_RESTART:
		c = &s.restart
	case gl.FRAMEBUFFER_SRGB:
		c = &s.srgb
	default:
		panic("unknown enable")
	}
	if !c.update(enable) {
		return
	}
	if enable {
		f.Enable(target)
	} else {
		f.Disable(target)
	}
}

func (s *glState) setBlendEquation(f gl.Functions, eq gl.Enum) {
	if s.blendEq.update(eq) {
		f.BlendEquation(eq)
	}
}

func (s *glState) setBlendFunc(f gl.Functions, src, dst gl.Enum) {
	if s.blendFunc.update([2]gl.Enum{src, dst}) {
		f.BlendFunc(src, dst)
	}
}

func (s *glState) setDepthComparison(f gl.Functions, cmp gl.Enum) {
	if s.depthCmp.update(cmp) {
		f.DepthFunc(cmp)
	}
}

func (s *glState) setDepthMask(f gl.Functions, mask bool) {
	if s.depthMask.update(mask) {
		f.DepthMask(mask)
	}
}

func (s *glState) setFaceCullingOrder(f gl.Functions, order gl.Enum) {
	if s.cullOrder.update(order) {
		f.FrontFace(order)
	}
}

func (s *glState) setFaceCullingMode(f gl.Functions, mode gl.Enum) {
	if s.cullMode.update(mode) {
		f.CullFace(mode)
	}
}

func (s *glState) setVertexRestartIndex(f gl.Functions, index uint32) {
	if s.restartIndex.update(index) {
		f.PrimitiveRestartIndex(index)
	}
}

func (s *glState) setTextureUnit(f gl.Functions, unit uint32) {
	if s.activeUnit.update(unit) {
		f.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
	}
}

// bindTextureAt binds tex at the given unit. The unit is part of the
// cache key: the same texture may validly occupy several units at once.
// The per-unit vector grows to at least unit+1 entries and never shrinks.
func (s *glState) bindTextureAt(f gl.Functions, target gl.Enum, tex gl.Texture, unit uint32) {
	for uint32(len(s.boundTextures)) <= unit {
		s.boundTextures = append(s.boundTextures, cached[texBinding]{})
	}
	if s.boundTextures[unit].is(texBinding{target, tex}) {
		return
	}
	s.setTextureUnit(f, unit)
	s.boundTextures[unit].update(texBinding{target, tex})
	f.BindTexture(target, tex)
}

// bindBufferBase binds buf at the given uniform-buffer binding point,
// growing the tracking vector with the same policy as bindTextureAt.
func (s *glState) bindBufferBase(f gl.Functions, buf gl.Buffer, binding uint32) {
	for uint32(len(s.bufferBases)) <= binding {
		s.bufferBases = append(s.bufferBases, cached[gl.Buffer]{})
	}
	if s.bufferBases[binding].update(buf) {
		f.BindBufferBase(gl.UNIFORM_BUFFER, int(binding), buf)
	}
}

// bindArrayBuffer issues the bind through the cache; force bypasses the
// redundancy check for callers that need the driver-side binding settled
// regardless of what the cache believes, such as attribute pointer setup
// captured into a vertex array.
func (s *glState) bindArrayBuffer(f gl.Functions, buf gl.Buffer, force bool) {
	if s.arrayBuf.update(buf) || force {
		f.BindBuffer(gl.ARRAY_BUFFER, buf)
	}
}

func (s *glState) bindElementBuffer(f gl.Functions, buf gl.Buffer) {
	if s.elemBuf.update(buf) {
		f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf)
	}
}

func (s *glState) bindVertexArray(f gl.Functions, a gl.VertexArray, force bool) {
	if s.vertArray.update(a) || force {
		f.BindVertexArray(a)
		// Binding a vertex array swaps the element buffer binding out
		// from under the cache.
		s.elemBuf.invalidate()
	}
}

func (s *glState) useProgram(f gl.Functions, p gl.Program) {
	if s.prog.update(p) {
		f.UseProgram(p)
	}
}

func (s *glState) bindDrawFramebuffer(f gl.Functions, fbo gl.Framebuffer) {
	if s.drawFBO.update(fbo) {
		f.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	}
}

// forgetBuffer clears every cache entry referencing the identifier of a
// buffer about to be deleted. The driver may recycle the identifier; a
// stale entry would make a future bind of the recycled name look
// redundant.
func (s *glState) forgetBuffer(b gl.Buffer) {
	if s.arrayBuf.is(b) {
		s.arrayBuf.invalidate()
	}
	if s.elemBuf.is(b) {
		s.elemBuf.invalidate()
	}
	for i := range s.bufferBases {
		if s.bufferBases[i].is(b) {
			s.bufferBases[i].invalidate()
		}
	}
}

func (s *glState) forgetTexture(t gl.Texture) {
	for i := range s.boundTextures {
		if e := &s.boundTextures[i]; e.known && e.v.tex.Equal(t) {
			e.invalidate()
		}
	}
}

func (s *glState) forgetProgram(p gl.Program) {
	if s.prog.is(p) {
		s.prog.invalidate()
	}
}

func (s *glState) forgetVertexArray(a gl.VertexArray) {
	if s.vertArray.is(a) {
		s.vertArray.invalidate()
	}
}

func (s *glState) forgetFramebuffer(fbo gl.Framebuffer) {
	if s.drawFBO.is(fbo) {
		s.drawFBO.invalidate()
	}
}

func recognizedBlendEq(v int) bool {
	switch gl.Enum(v) {
	case gl.FUNC_ADD, gl.FUNC_SUBTRACT, gl.FUNC_REVERSE_SUBTRACT, gl.MIN, gl.MAX:
		return true
	}
	return false
}

func recognizedBlendFactor(v int) bool {
	switch gl.Enum(v) {
	case gl.ZERO, gl.ONE,
		gl.SRC_COLOR, gl.ONE_MINUS_SRC_COLOR,
		gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA,
		gl.DST_COLOR, gl.ONE_MINUS_DST_COLOR,
		gl.DST_ALPHA, gl.ONE_MINUS_DST_ALPHA,
		gl.SRC_ALPHA_SATURATE:
		return true
	}
	return false
}

func recognizedComparison(v int) bool {
	switch gl.Enum(v) {
	case gl.NEVER, gl.ALWAYS, gl.EQUAL, gl.NOTEQUAL,
		gl.LESS, gl.LEQUAL, gl.GREATER, gl.GEQUAL:
		return true
	}
	return false
}
