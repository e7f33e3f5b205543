// SPDX-License-Identifier: Unlicense OR MIT

package gl33

import (
	"testing"

	"gioui.org/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdleffler/luminance"
	"github.com/sdleffler/luminance/internal/gl"
)

func TestNewProgram(t *testing.T) {
	ctx, rec := newTestContext(t)

	inputs := []shader.InputLocation{{Name: "pos", Location: 0, Type: shader.DataTypeFloat, Size: 2}}
	prog, warnings, err := NewProgram(ctx, vertSrc, fragSrc, inputs, []string{"transform"})
	require.NoError(t, err)
	defer prog.Release()

	assert.Empty(t, warnings)
	trace := rec.Trace()
	assert.Contains(t, trace, `BindAttribLocation(1, 0, "pos")`)
	assert.Contains(t, trace, "LinkProgram(1)")
	// Shaders are detached from the driver once the program holds them.
	assert.Equal(t, 2, rec.Count("DeleteShader"))
}

func TestSparseAttribLocations(t *testing.T) {
	ctx, rec := newTestContext(t)

	// A shader may declare its only input at a location above zero.
	inputs := []shader.InputLocation{{Name: "pos", Location: 2, Type: shader.DataTypeFloat, Size: 2}}
	prog, _, err := NewProgram(ctx, vertSrc, fragSrc, inputs, nil)
	require.NoError(t, err)
	defer prog.Release()

	assert.Equal(t, []string{`BindAttribLocation(1, 2, "pos")`},
		filterCalls(rec.Trace(), "BindAttribLocation"))
}

func TestInactiveUniformWarning(t *testing.T) {
	ctx, rec := newTestContext(t)
	rec.Inactive["missing"] = true

	prog, warnings, err := NewProgram(ctx, vertSrc, fragSrc, nil, []string{"color", "missing"})
	require.NoError(t, err, "inactive uniforms warn, they do not fail")
	defer prog.Release()

	require.Len(t, warnings, 1)
	assert.Equal(t, luminance.WarnInactiveUniform, warnings[0].Kind)
	assert.Equal(t, "missing", warnings[0].Name)

	// Setting the inactive uniform is a silent no-op; the active one goes
	// through.
	rec.TakeTrace()
	target := BackBuffer(ctx, 800, 600)
	err = ctx.Pipeline(target, luminance.PipelineState{}, func(p *Pipeline, sg ShadingGate) error {
		return sg.Shade(prog, func(pi ProgramInterface, rg RenderGate) error {
			pi.Uniform("missing").SetInt(1)
			pi.Uniform("undeclared").SetInt(2)
			pi.Uniform("color").SetFloat(0.5)
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Count("Uniform1i"))
	assert.Equal(t, 1, rec.Count("Uniform1f"))
}

func TestInactiveAttributeWarning(t *testing.T) {
	ctx, rec := newTestContext(t)
	rec.Inactive["unused"] = true

	inputs := []shader.InputLocation{
		{Name: "pos", Location: 0, Type: shader.DataTypeFloat, Size: 2},
		{Name: "unused", Location: 1, Type: shader.DataTypeFloat, Size: 4},
	}
	_, warnings, err := NewProgram(ctx, vertSrc, fragSrc, inputs, nil)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, luminance.WarnInactiveAttribute, warnings[0].Kind)
	assert.Equal(t, "unused", warnings[0].Name)
}

func TestShaderCompileError(t *testing.T) {
	ctx, rec := newTestContext(t)
	rec.FailCompile = true

	_, _, err := NewProgram(ctx, "broken", fragSrc, nil, nil)
	var serr luminance.ShaderError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "vertex", serr.Stage)
	assert.NotEmpty(t, serr.Log)
	assert.Equal(t, 1, rec.Count("DeleteShader"), "failed shader must not leak")
}

func TestProgramLinkError(t *testing.T) {
	ctx, rec := newTestContext(t)
	rec.FailLink = true

	_, _, err := NewProgram(ctx, vertSrc, fragSrc, nil, nil)
	var lerr luminance.LinkError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 1, rec.Count("DeleteProgram"), "failed program must not leak")
	assert.Equal(t, 2, rec.Count("DeleteShader"))
}

func TestProgramReleaseForgetsBinding(t *testing.T) {
	ctx, rec := newTestContext(t)

	prog := posProgram(t, ctx)
	obj := prog.obj
	ctx.state.useProgram(rec, obj)
	require.Equal(t, 1, rec.Count("UseProgram"))

	prog.Release()
	// Activating the recycled identifier must reach the driver again.
	ctx.state.useProgram(rec, gl.Program{V: obj.V})
	assert.Equal(t, 2, rec.Count("UseProgram"))
}
