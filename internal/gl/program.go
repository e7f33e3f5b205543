// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"strings"

	"github.com/sdleffler/luminance"
)

// CreateProgram compiles and links a vertex/fragment program, binding
// each non-empty attribute name to its index in attribs. On failure no
// driver object is left behind.
func CreateProgram(f Functions, vsrc, fsrc string, attribs []string) (Program, error) {
	vs, err := createShader(f, VERTEX_SHADER, vsrc)
	if err != nil {
		return Program{}, err
	}
	defer f.DeleteShader(vs)
	fs, err := createShader(f, FRAGMENT_SHADER, fsrc)
	if err != nil {
		return Program{}, err
	}
	defer f.DeleteShader(fs)
	prog := f.CreateProgram()
	if !prog.Valid() {
		return Program{}, luminance.ResourceError{Kind: "program"}
	}
	f.AttachShader(prog, vs)
	f.AttachShader(prog, fs)
	for idx, name := range attribs {
		if name == "" {
			continue
		}
		f.BindAttribLocation(prog, Attrib(idx), name)
	}
	f.LinkProgram(prog)
	if f.GetProgrami(prog, LINK_STATUS) == FALSE {
		log := f.GetProgramInfoLog(prog)
		f.DeleteProgram(prog)
		return Program{}, luminance.LinkError{Log: strings.TrimSpace(log)}
	}
	return prog, nil
}

func createShader(f Functions, typ Enum, src string) (Shader, error) {
	sh := f.CreateShader(typ)
	if !sh.Valid() {
		return Shader{}, luminance.ResourceError{Kind: "shader"}
	}
	f.ShaderSource(sh, src)
	f.CompileShader(sh)
	if f.GetShaderi(sh, COMPILE_STATUS) == FALSE {
		log := f.GetShaderInfoLog(sh)
		f.DeleteShader(sh)
		stage := "vertex"
		if typ == FRAGMENT_SHADER {
			stage = "fragment"
		}
		return Shader{}, luminance.ShaderError{Stage: stage, Log: strings.TrimSpace(log)}
	}
	return sh, nil
}
