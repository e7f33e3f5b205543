// SPDX-License-Identifier: Unlicense OR MIT

package gl33

import (
	"testing"

	"gioui.org/shader"
	"github.com/stretchr/testify/require"

	"github.com/sdleffler/luminance"
	"github.com/sdleffler/luminance/internal/gltest"
)

const (
	vertSrc = `#version 330 core
in vec2 pos;
void main() { gl_Position = vec4(pos, 0.0, 1.0); }`
	fragSrc = `#version 330 core
out vec4 fragColor;
void main() { fragColor = vec4(1.0); }`
)

func newTestContext(t *testing.T) (*Context, *gltest.Recorder) {
	t.Helper()
	rec := gltest.New()
	ctx, err := New(rec)
	require.NoError(t, err)
	t.Cleanup(ctx.Release)
	return ctx, rec
}

func posLayout() luminance.VertexLayout {
	return luminance.VertexLayout{
		Inputs: []luminance.InputDesc{{Type: shader.DataTypeFloat, Size: 2, Offset: 0}},
		Stride: 8,
	}
}

func posProgram(t *testing.T, ctx *Context) *Program {
	t.Helper()
	inputs := []shader.InputLocation{{Name: "pos", Location: 0, Type: shader.DataTypeFloat, Size: 2}}
	prog, _, err := NewProgram(ctx, vertSrc, fragSrc, inputs, nil)
	require.NoError(t, err)
	t.Cleanup(prog.Release)
	return prog
}

func posTess(t *testing.T, ctx *Context, desc TessDesc) *Tess {
	t.Helper()
	buf, err := NewBufferFrom(ctx, []float32{-1, -1, 1, -1, -1, 1, 1, 1})
	require.NoError(t, err)
	t.Cleanup(buf.Release)
	desc.Vertices = []VertexBuffer{{Buffer: buf, Layout: posLayout()}}
	tess, err := NewTess(ctx, desc)
	require.NoError(t, err)
	t.Cleanup(tess.Release)
	return tess
}

// draw runs one full pipeline frame over a single draw of tess.
func draw(t *testing.T, ctx *Context, prog *Program, tess *Tess, rs luminance.RenderState, view TessView) error {
	t.Helper()
	target := BackBuffer(ctx, 800, 600)
	return ctx.Pipeline(target, luminance.PipelineState{}, func(p *Pipeline, sg ShadingGate) error {
		return sg.Shade(prog, func(pi ProgramInterface, rg RenderGate) error {
			return rg.Render(rs, func(tg TessGate) error {
				return tg.RenderView(tess, view)
			})
		})
	})
}
