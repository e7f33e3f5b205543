// SPDX-License-Identifier: Unlicense OR MIT

package gl33

import (
	"gioui.org/shader"

	"github.com/sdleffler/luminance"
	"github.com/sdleffler/luminance/internal/gl"
)

// Program is a linked shader program together with the vertex inputs it
// declares and the uniform locations resolved at link time.
type Program struct {
	ctx    *Context
	obj    gl.Program
	inputs []shader.InputLocation
	unifs  map[string]gl.Uniform
}

// NewProgram compiles and links a vertex/fragment pair. Vertex inputs are
// bound to the locations they declare; uniforms lists the names the host
// intends to set. Inactive uniforms or inputs (misspelled, or optimized
// out by the shader compiler) do not fail construction; they are returned
// as warnings alongside the program so the caller decides their severity.
func NewProgram(ctx *Context, vertexSrc, fragmentSrc string, inputs []shader.InputLocation, uniforms []string) (*Program, []luminance.ProgramWarning, error) {
	// Locations need not be contiguous; unnamed slots are skipped when the
	// bindings are issued.
	maxLoc := 0
	for _, inp := range inputs {
		if inp.Location+1 > maxLoc {
			maxLoc = inp.Location + 1
		}
	}
	attr := make([]string, maxLoc)
	for _, inp := range inputs {
		attr[inp.Location] = inp.Name
	}
	obj, err := gl.CreateProgram(ctx.funcs, vertexSrc, fragmentSrc, attr)
	if err != nil {
		return nil, nil, err
	}
	p := &Program{
		ctx:    ctx,
		obj:    obj,
		inputs: inputs,
		unifs:  make(map[string]gl.Uniform, len(uniforms)),
	}
	var warnings []luminance.ProgramWarning
	for _, name := range uniforms {
		loc := ctx.funcs.GetUniformLocation(obj, name)
		p.unifs[name] = loc
		if !loc.Valid() {
			warnings = append(warnings, luminance.ProgramWarning{Kind: luminance.WarnInactiveUniform, Name: name})
		}
	}
	for _, inp := range inputs {
		if ctx.funcs.GetAttribLocation(obj, inp.Name) < 0 {
			warnings = append(warnings, luminance.ProgramWarning{Kind: luminance.WarnInactiveAttribute, Name: inp.Name})
		}
	}
	for _, w := range warnings {
		luminance.Logger().Warn("gl33: " + w.String())
	}
	luminance.Logger().Debug("gl33: program linked", "id", obj.V, "warnings", len(warnings))
	return p, warnings, nil
}

// Release forgets the cached program binding if it references this
// program, then deletes the driver object.
func (p *Program) Release() {
	if !p.obj.Valid() {
		return
	}
	p.ctx.state.forgetProgram(p.obj)
	p.ctx.funcs.DeleteProgram(p.obj)
	luminance.Logger().Debug("gl33: program released", "id", p.obj.V)
	p.obj = gl.Program{}
}
