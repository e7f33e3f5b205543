// SPDX-License-Identifier: Unlicense OR MIT

// Package gltest provides a recording gl.Functions implementation. It
// mirrors enough driver-side state to answer the queries the state cache
// issues at construction, and appends every state-changing, resource and
// draw call to a trace that tests assert against.
package gltest

import (
	"fmt"
	"strings"

	"github.com/sdleffler/luminance/internal/gl"
)

type driverState struct {
	viewport   [4]int
	clearColor [4]float32

	blend, depthTest, cullFace, restart, srgb bool

	blendEq, blendSrc, blendDst gl.Enum
	depthFunc                   gl.Enum
	frontFace, cullMode         gl.Enum
	depthMask                   bool
	restartIndex                uint32

	activeUnit int
	textures   map[int]uint
	arrayBuf   uint
	elemBuf    uint
	vertArray  uint
	drawFBO    uint
	program    uint
	renderBuf  uint
	unifBufs   map[int]uint
}

// Recorder implements gl.Functions against an in-memory driver mirror.
// The zero value is not usable; use New.
type Recorder struct {
	trace []string

	// FailCompile and FailLink force the next shader compile or program
	// link to report failure.
	FailCompile bool
	FailLink    bool
	// FailCreate names a resource kind ("buffer", "texture", "shader",
	// "program", ...) whose next Create call returns an invalid handle.
	FailCreate string
	// Errors is a FIFO of codes served by GetError; once drained, GetError
	// reports NO_ERROR.
	Errors []gl.Enum
	// FramebufferStatus is what CheckFramebufferStatus reports.
	FramebufferStatus gl.Enum
	// Inactive marks uniform and attribute names the linker "optimized
	// out": lookups for them return an invalid location.
	Inactive map[string]bool

	overrides map[gl.Enum]int

	nextID map[string]uint
	unifs  map[uint]map[string]int
	state  driverState
}

// New returns a Recorder whose mirror holds the OpenGL 3.3 default state.
func New() *Recorder {
	return &Recorder{
		FramebufferStatus: gl.FRAMEBUFFER_COMPLETE,
		Inactive:          make(map[string]bool),
		overrides:         make(map[gl.Enum]int),
		nextID:            make(map[string]uint),
		unifs:             make(map[uint]map[string]int),
		state: driverState{
			blendEq:   gl.FUNC_ADD,
			blendSrc:  gl.ONE,
			blendDst:  gl.ZERO,
			depthFunc: gl.LESS,
			frontFace: gl.CCW,
			cullMode:  gl.BACK,
			depthMask: true,
			textures:  make(map[int]uint),
			unifBufs:  make(map[int]uint),
		},
	}
}

// Corrupt makes GetInteger report v for pname, regardless of the mirror.
// Used to exercise unrecognized-enum handling in the state query.
func (r *Recorder) Corrupt(pname gl.Enum, v int) {
	r.overrides[pname] = v
}

// Trace returns a copy of the recorded calls.
func (r *Recorder) Trace() []string {
	return append([]string(nil), r.trace...)
}

// TakeTrace returns the recorded calls and clears the trace without
// touching the driver mirror.
func (r *Recorder) TakeTrace() []string {
	t := r.trace
	r.trace = nil
	return t
}

// Count returns how many recorded calls have the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.trace {
		if fn, _, _ := strings.Cut(c, "("); fn == name {
			n++
		}
	}
	return n
}

func (r *Recorder) record(format string, args ...any) {
	r.trace = append(r.trace, fmt.Sprintf(format, args...))
}

func (r *Recorder) create(kind string) uint {
	if r.FailCreate == kind {
		r.FailCreate = ""
		return 0
	}
	r.nextID[kind]++
	return r.nextID[kind]
}

func onoff(cap gl.Enum, b *driverState) *bool {
	switch cap {
	case gl.BLEND:
		return &b.blend
	case gl.DEPTH_TEST:
		return &b.depthTest
	case gl.CULL_FACE:
		return &b.cullFace
	case gl.PRIMITIVE_RESTART:
		return &b.restart
	case gl.FRAMEBUFFER_SRGB:
		return &b.srgb
	default:
		panic(fmt.Sprintf("gltest: unknown capability %#x", uint(cap)))
	}
}

func (r *Recorder) Enable(cap gl.Enum) {
	r.record("Enable(%#x)", uint(cap))
	*onoff(cap, &r.state) = true
}

func (r *Recorder) Disable(cap gl.Enum) {
	r.record("Disable(%#x)", uint(cap))
	*onoff(cap, &r.state) = false
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
	r.state.viewport = [4]int{x, y, width, height}
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor(%g, %g, %g, %g)", red, green, blue, alpha)
	r.state.clearColor = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear(mask gl.Enum) {
	r.record("Clear(%#x)", uint(mask))
}

func (r *Recorder) BlendEquation(mode gl.Enum) {
	r.record("BlendEquation(%#x)", uint(mode))
	r.state.blendEq = mode
}

func (r *Recorder) BlendFunc(sfactor, dfactor gl.Enum) {
	r.record("BlendFunc(%#x, %#x)", uint(sfactor), uint(dfactor))
	r.state.blendSrc, r.state.blendDst = sfactor, dfactor
}

func (r *Recorder) DepthFunc(fn gl.Enum) {
	r.record("DepthFunc(%#x)", uint(fn))
	r.state.depthFunc = fn
}

func (r *Recorder) DepthMask(mask bool) {
	r.record("DepthMask(%v)", mask)
	r.state.depthMask = mask
}

func (r *Recorder) CullFace(mode gl.Enum) {
	r.record("CullFace(%#x)", uint(mode))
	r.state.cullMode = mode
}

func (r *Recorder) FrontFace(dir gl.Enum) {
	r.record("FrontFace(%#x)", uint(dir))
	r.state.frontFace = dir
}

func (r *Recorder) PrimitiveRestartIndex(index uint32) {
	r.record("PrimitiveRestartIndex(%#x)", index)
	r.state.restartIndex = index
}

func (r *Recorder) ActiveTexture(unit gl.Enum) {
	r.record("ActiveTexture(%d)", uint(unit-gl.TEXTURE0))
	r.state.activeUnit = int(unit - gl.TEXTURE0)
}

func (r *Recorder) BindTexture(target gl.Enum, t gl.Texture) {
	r.record("BindTexture(%#x, %d)", uint(target), t.V)
	r.state.textures[r.state.activeUnit] = t.V
}

func (r *Recorder) BindBuffer(target gl.Enum, b gl.Buffer) {
	r.record("BindBuffer(%#x, %d)", uint(target), b.V)
	switch target {
	case gl.ARRAY_BUFFER:
		r.state.arrayBuf = b.V
	case gl.ELEMENT_ARRAY_BUFFER:
		r.state.elemBuf = b.V
	}
}

func (r *Recorder) BindBufferBase(target gl.Enum, index int, b gl.Buffer) {
	r.record("BindBufferBase(%#x, %d, %d)", uint(target), index, b.V)
	r.state.unifBufs[index] = b.V
}

func (r *Recorder) BindVertexArray(a gl.VertexArray) {
	r.record("BindVertexArray(%d)", a.V)
	r.state.vertArray = a.V
}

func (r *Recorder) BindFramebuffer(target gl.Enum, f gl.Framebuffer) {
	r.record("BindFramebuffer(%#x, %d)", uint(target), f.V)
	r.state.drawFBO = f.V
}

func (r *Recorder) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	r.record("BindRenderbuffer(%#x, %d)", uint(target), rb.V)
	r.state.renderBuf = rb.V
}

func (r *Recorder) UseProgram(p gl.Program) {
	r.record("UseProgram(%d)", p.V)
	r.state.program = p.V
}

func (r *Recorder) CreateBuffer() gl.Buffer { return gl.Buffer{V: r.create("buffer")} }

func (r *Recorder) DeleteBuffer(b gl.Buffer) { r.record("DeleteBuffer(%d)", b.V) }

func (r *Recorder) BufferData(target gl.Enum, size int, usage gl.Enum) {
	r.record("BufferData(%#x, %d, %#x)", uint(target), size, uint(usage))
}

func (r *Recorder) BufferSubData(target gl.Enum, offset int, data []byte) {
	r.record("BufferSubData(%#x, %d, %d)", uint(target), offset, len(data))
}

func (r *Recorder) CreateTexture() gl.Texture { return gl.Texture{V: r.create("texture")} }

func (r *Recorder) DeleteTexture(t gl.Texture) { r.record("DeleteTexture(%d)", t.V) }

func (r *Recorder) TexStorage2D(target gl.Enum, levels int, internalFormat gl.Enum, width, height int) {
	r.record("TexStorage2D(%#x, %d, %#x, %d, %d)", uint(target), levels, uint(internalFormat), width, height)
}

func (r *Recorder) TexSubImage2D(target gl.Enum, level, x, y, width, height int, format, typ gl.Enum, data []byte) {
	r.record("TexSubImage2D(%#x, %d, %d, %d, %d, %d)", uint(target), level, x, y, width, height)
}

func (r *Recorder) TexParameteri(target, pname gl.Enum, param int) {
	r.record("TexParameteri(%#x, %#x, %#x)", uint(target), uint(pname), param)
}

func (r *Recorder) GenerateMipmap(target gl.Enum) {
	r.record("GenerateMipmap(%#x)", uint(target))
}

func (r *Recorder) CreateVertexArray() gl.VertexArray {
	return gl.VertexArray{V: r.create("vertexArray")}
}

func (r *Recorder) DeleteVertexArray(a gl.VertexArray) { r.record("DeleteVertexArray(%d)", a.V) }

func (r *Recorder) EnableVertexAttribArray(a gl.Attrib) {
	r.record("EnableVertexAttribArray(%d)", int(a))
}

func (r *Recorder) VertexAttribPointer(a gl.Attrib, size int, typ gl.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer(%d, %d, %#x, %v, %d, %d)", int(a), size, uint(typ), normalized, stride, offset)
}

func (r *Recorder) VertexAttribDivisor(a gl.Attrib, divisor int) {
	r.record("VertexAttribDivisor(%d, %d)", int(a), divisor)
}

func (r *Recorder) CreateFramebuffer() gl.Framebuffer {
	return gl.Framebuffer{V: r.create("framebuffer")}
}

func (r *Recorder) DeleteFramebuffer(f gl.Framebuffer) { r.record("DeleteFramebuffer(%d)", f.V) }

func (r *Recorder) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	r.record("FramebufferTexture2D(%#x, %#x, %d)", uint(target), uint(attachment), t.V)
}

func (r *Recorder) CreateRenderbuffer() gl.Renderbuffer {
	return gl.Renderbuffer{V: r.create("renderbuffer")}
}

func (r *Recorder) DeleteRenderbuffer(rb gl.Renderbuffer) { r.record("DeleteRenderbuffer(%d)", rb.V) }

func (r *Recorder) RenderbufferStorage(target, internalFormat gl.Enum, width, height int) {
	r.record("RenderbufferStorage(%#x, %#x, %d, %d)", uint(target), uint(internalFormat), width, height)
}

func (r *Recorder) FramebufferRenderbuffer(target, attachment, renderbufferTarget gl.Enum, rb gl.Renderbuffer) {
	r.record("FramebufferRenderbuffer(%#x, %#x, %d)", uint(target), uint(attachment), rb.V)
}

func (r *Recorder) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	return r.FramebufferStatus
}

func (r *Recorder) CreateShader(typ gl.Enum) gl.Shader { return gl.Shader{V: r.create("shader")} }

func (r *Recorder) DeleteShader(s gl.Shader) { r.record("DeleteShader(%d)", s.V) }

func (r *Recorder) ShaderSource(s gl.Shader, src string) {}

func (r *Recorder) CompileShader(s gl.Shader) { r.record("CompileShader(%d)", s.V) }

func (r *Recorder) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS {
		if r.FailCompile {
			return gl.FALSE
		}
		return gl.TRUE
	}
	return 0
}

func (r *Recorder) GetShaderInfoLog(s gl.Shader) string { return "forced compile failure" }

func (r *Recorder) CreateProgram() gl.Program { return gl.Program{V: r.create("program")} }

func (r *Recorder) DeleteProgram(p gl.Program) { r.record("DeleteProgram(%d)", p.V) }

func (r *Recorder) AttachShader(p gl.Program, s gl.Shader) {
	r.record("AttachShader(%d, %d)", p.V, s.V)
}

func (r *Recorder) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	r.record("BindAttribLocation(%d, %d, %q)", p.V, int(a), name)
}

func (r *Recorder) LinkProgram(p gl.Program) { r.record("LinkProgram(%d)", p.V) }

func (r *Recorder) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS {
		if r.FailLink {
			return gl.FALSE
		}
		return gl.TRUE
	}
	return 0
}

func (r *Recorder) GetProgramInfoLog(p gl.Program) string { return "forced link failure" }

func (r *Recorder) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	if r.Inactive[name] {
		return gl.Uniform{V: -1}
	}
	locs := r.unifs[p.V]
	if locs == nil {
		locs = make(map[string]int)
		r.unifs[p.V] = locs
	}
	if _, ok := locs[name]; !ok {
		locs[name] = len(locs)
	}
	return gl.Uniform{V: locs[name]}
}

func (r *Recorder) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	if r.Inactive[name] {
		return gl.Attrib(-1)
	}
	return gl.Attrib(0)
}

func (r *Recorder) GetUniformBlockIndex(p gl.Program, name string) uint {
	if r.Inactive[name] {
		return gl.INVALID_INDEX
	}
	locs := r.unifs[p.V]
	if locs == nil {
		locs = make(map[string]int)
		r.unifs[p.V] = locs
	}
	if _, ok := locs[name]; !ok {
		locs[name] = len(locs)
	}
	return uint(locs[name])
}

func (r *Recorder) UniformBlockBinding(p gl.Program, index, binding uint) {
	r.record("UniformBlockBinding(%d, %d, %d)", p.V, index, binding)
}

func (r *Recorder) Uniform1i(dst gl.Uniform, v int) {
	r.record("Uniform1i(%d, %d)", dst.V, v)
}

func (r *Recorder) Uniform1f(dst gl.Uniform, v float32) {
	r.record("Uniform1f(%d, %g)", dst.V, v)
}

func (r *Recorder) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	r.record("Uniform2f(%d, %g, %g)", dst.V, v0, v1)
}

func (r *Recorder) Uniform3f(dst gl.Uniform, v0, v1, v2 float32) {
	r.record("Uniform3f(%d, %g, %g, %g)", dst.V, v0, v1, v2)
}

func (r *Recorder) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	r.record("Uniform4f(%d, %g, %g, %g, %g)", dst.V, v0, v1, v2, v3)
}

func (r *Recorder) UniformMatrix4fv(dst gl.Uniform, values [16]float32) {
	r.record("UniformMatrix4fv(%d)", dst.V)
}

func (r *Recorder) DrawArrays(mode gl.Enum, first, count int) {
	r.record("DrawArrays(%#x, %d, %d)", uint(mode), first, count)
}

func (r *Recorder) DrawArraysInstanced(mode gl.Enum, first, count, instances int) {
	r.record("DrawArraysInstanced(%#x, %d, %d, %d)", uint(mode), first, count, instances)
}

func (r *Recorder) DrawElements(mode gl.Enum, count int, typ gl.Enum, offset int) {
	r.record("DrawElements(%#x, %d, %#x, %d)", uint(mode), count, uint(typ), offset)
}

func (r *Recorder) DrawElementsInstanced(mode gl.Enum, count int, typ gl.Enum, offset, instances int) {
	r.record("DrawElementsInstanced(%#x, %d, %#x, %d, %d)", uint(mode), count, uint(typ), offset, instances)
}

func (r *Recorder) GetError() gl.Enum {
	if len(r.Errors) == 0 {
		return gl.NO_ERROR
	}
	err := r.Errors[0]
	r.Errors = r.Errors[1:]
	return err
}

func (r *Recorder) IsEnabled(cap gl.Enum) bool {
	return *onoff(cap, &r.state)
}

func (r *Recorder) GetInteger(pname gl.Enum) int {
	if v, ok := r.overrides[pname]; ok {
		return v
	}
	switch pname {
	case gl.ACTIVE_TEXTURE:
		return gl.TEXTURE0 + r.state.activeUnit
	case gl.BLEND_EQUATION_RGB:
		return int(r.state.blendEq)
	case gl.BLEND_SRC_RGB:
		return int(r.state.blendSrc)
	case gl.BLEND_DST_RGB:
		return int(r.state.blendDst)
	case gl.DEPTH_FUNC:
		return int(r.state.depthFunc)
	case gl.DEPTH_WRITEMASK:
		if r.state.depthMask {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.CULL_FACE_MODE:
		return int(r.state.cullMode)
	case gl.FRONT_FACE:
		return int(r.state.frontFace)
	case gl.PRIMITIVE_RESTART_INDEX:
		return int(r.state.restartIndex)
	case gl.MAX_UNIFORM_BUFFER_BINDINGS:
		// The GL 3.3 minimum.
		return 36
	default:
		panic(fmt.Sprintf("gltest: unknown integer query %#x", uint(pname)))
	}
}

func (r *Recorder) GetInteger4(pname gl.Enum) [4]int {
	if pname != gl.VIEWPORT {
		panic(fmt.Sprintf("gltest: unknown integer4 query %#x", uint(pname)))
	}
	return r.state.viewport
}

func (r *Recorder) GetFloat4(pname gl.Enum) [4]float32 {
	if pname != gl.COLOR_CLEAR_VALUE {
		panic(fmt.Sprintf("gltest: unknown float4 query %#x", uint(pname)))
	}
	return r.state.clearColor
}

func (r *Recorder) GetBinding(pname gl.Enum) gl.Object {
	switch pname {
	case gl.CURRENT_PROGRAM:
		return gl.Object{V: r.state.program}
	case gl.ARRAY_BUFFER_BINDING:
		return gl.Object{V: r.state.arrayBuf}
	case gl.ELEMENT_ARRAY_BUFFER_BINDING:
		return gl.Object{V: r.state.elemBuf}
	case gl.VERTEX_ARRAY_BINDING:
		return gl.Object{V: r.state.vertArray}
	case gl.FRAMEBUFFER_BINDING:
		return gl.Object{V: r.state.drawFBO}
	case gl.TEXTURE_BINDING_2D:
		return gl.Object{V: r.state.textures[r.state.activeUnit]}
	default:
		panic(fmt.Sprintf("gltest: unknown binding query %#x", uint(pname)))
	}
}

func (r *Recorder) GetBindingi(pname gl.Enum, idx int) gl.Object {
	if pname != gl.UNIFORM_BUFFER_BINDING {
		panic(fmt.Sprintf("gltest: unknown indexed binding query %#x", uint(pname)))
	}
	return gl.Object{V: r.state.unifBufs[idx]}
}
