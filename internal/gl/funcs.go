// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Functions is the set of driver entry points the state cache and the
// resource handles issue calls through. It is an interface rather than a
// binding table so that tests can substitute a recording implementation
// and assert on the exact call trace.
type Functions interface {
	// Capability toggles and fixed-function state.
	Enable(cap Enum)
	Disable(cap Enum)
	Viewport(x, y, width, height int)
	ClearColor(red, green, blue, alpha float32)
	Clear(mask Enum)
	BlendEquation(mode Enum)
	BlendFunc(sfactor, dfactor Enum)
	DepthFunc(fn Enum)
	DepthMask(mask bool)
	CullFace(mode Enum)
	FrontFace(dir Enum)
	PrimitiveRestartIndex(index uint32)

	// Bindings.
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	BindBuffer(target Enum, b Buffer)
	BindBufferBase(target Enum, index int, b Buffer)
	BindVertexArray(a VertexArray)
	BindFramebuffer(target Enum, f Framebuffer)
	BindRenderbuffer(target Enum, r Renderbuffer)
	UseProgram(p Program)

	// Buffers.
	CreateBuffer() Buffer
	DeleteBuffer(b Buffer)
	BufferData(target Enum, size int, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)

	// Textures.
	CreateTexture() Texture
	DeleteTexture(t Texture)
	TexStorage2D(target Enum, levels int, internalFormat Enum, width, height int)
	TexSubImage2D(target Enum, level, x, y, width, height int, format, typ Enum, data []byte)
	TexParameteri(target, pname Enum, param int)
	GenerateMipmap(target Enum)

	// Vertex arrays and attributes.
	CreateVertexArray() VertexArray
	DeleteVertexArray(a VertexArray)
	EnableVertexAttribArray(a Attrib)
	VertexAttribPointer(a Attrib, size int, typ Enum, normalized bool, stride, offset int)
	VertexAttribDivisor(a Attrib, divisor int)

	// Framebuffers.
	CreateFramebuffer() Framebuffer
	DeleteFramebuffer(f Framebuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	CreateRenderbuffer() Renderbuffer
	DeleteRenderbuffer(r Renderbuffer)
	RenderbufferStorage(target, internalFormat Enum, width, height int)
	FramebufferRenderbuffer(target, attachment, renderbufferTarget Enum, r Renderbuffer)
	CheckFramebufferStatus(target Enum) Enum

	// Shaders and programs.
	CreateShader(typ Enum) Shader
	DeleteShader(s Shader)
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	CreateProgram() Program
	DeleteProgram(p Program)
	AttachShader(p Program, s Shader)
	BindAttribLocation(p Program, a Attrib, name string)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetUniformLocation(p Program, name string) Uniform
	GetAttribLocation(p Program, name string) Attrib
	GetUniformBlockIndex(p Program, name string) uint
	UniformBlockBinding(p Program, index, binding uint)

	// Uniforms.
	Uniform1i(dst Uniform, v int)
	Uniform1f(dst Uniform, v float32)
	Uniform2f(dst Uniform, v0, v1 float32)
	Uniform3f(dst Uniform, v0, v1, v2 float32)
	Uniform4f(dst Uniform, v0, v1, v2, v3 float32)
	UniformMatrix4fv(dst Uniform, values [16]float32)

	// Draw commands.
	DrawArrays(mode Enum, first, count int)
	DrawArraysInstanced(mode Enum, first, count, instances int)
	DrawElements(mode Enum, count int, typ Enum, offset int)
	DrawElementsInstanced(mode Enum, count int, typ Enum, offset, instances int)

	// Queries.
	GetError() Enum
	IsEnabled(cap Enum) bool
	GetInteger(pname Enum) int
	GetInteger4(pname Enum) [4]int
	GetFloat4(pname Enum) [4]float32
	GetBinding(pname Enum) Object
	GetBindingi(pname Enum, idx int) Object
}
