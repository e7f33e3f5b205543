// SPDX-License-Identifier: Unlicense OR MIT

package gl33

import (
	"strings"
	"testing"

	"gioui.org/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdleffler/luminance"
)

func TestTessDerivesVertexCount(t *testing.T) {
	ctx, _ := newTestContext(t)

	// 8 floats of vec2 is 4 vertices.
	tess := posTess(t, ctx, TessDesc{Mode: luminance.ModeTriangleStrip})
	assert.Equal(t, 4, tess.vertices)
}

func TestTessVertexCountDisagreement(t *testing.T) {
	ctx, _ := newTestContext(t)

	four, err := NewBufferFrom(ctx, make([]float32, 8))
	require.NoError(t, err)
	defer four.Release()
	three, err := NewBufferFrom(ctx, make([]float32, 6))
	require.NoError(t, err)
	defer three.Release()

	_, err = NewTess(ctx, TessDesc{
		Mode: luminance.ModeTriangle,
		Vertices: []VertexBuffer{
			{Buffer: four, Layout: posLayout()},
			{Buffer: three, Layout: posLayout()},
		},
	})
	var terr luminance.TessError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "vertex buffers disagree on vertex count", terr.Reason)
}

func TestTessAttributelessNeedsCount(t *testing.T) {
	ctx, rec := newTestContext(t)

	_, err := NewTess(ctx, TessDesc{Mode: luminance.ModeTriangle})
	var terr luminance.TessError
	require.ErrorAs(t, err, &terr)

	tess, err := NewTess(ctx, TessDesc{Mode: luminance.ModeTriangle, VertexCount: 3})
	require.NoError(t, err)
	defer tess.Release()

	prog := posProgram(t, ctx)
	// An attributeless vertex set has no attributes to match against the
	// program inputs, so the draw is rejected at the layout check.
	err = draw(t, ctx, prog, tess, luminance.DefaultRenderState(), TessView{})
	assert.ErrorIs(t, err, luminance.ErrVertexLayoutMismatch)
	assert.Equal(t, 0, rec.Count("DrawArrays"))
}

func TestTessLayoutStrideValidation(t *testing.T) {
	ctx, _ := newTestContext(t)

	buf, err := NewBufferFrom(ctx, make([]float32, 8))
	require.NoError(t, err)
	defer buf.Release()

	_, err = NewTess(ctx, TessDesc{
		Mode: luminance.ModeTriangle,
		Vertices: []VertexBuffer{{
			Buffer: buf,
			Layout: luminance.VertexLayout{
				Inputs: []luminance.InputDesc{{Type: shader.DataTypeFloat, Size: 2, Offset: 4}},
				Stride: 8,
			},
		}},
	})
	var terr luminance.TessError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "attribute exceeds layout stride", terr.Reason)
}

func TestTessAttributeSetup(t *testing.T) {
	ctx, rec := newTestContext(t)

	verts, err := NewBufferFrom(ctx, make([]float32, 8))
	require.NoError(t, err)
	defer verts.Release()
	offsets, err := NewBufferFrom(ctx, make([]float32, 6))
	require.NoError(t, err)
	defer offsets.Release()
	rec.TakeTrace()

	tess, err := NewTess(ctx, TessDesc{
		Mode: luminance.ModeTriangleStrip,
		Vertices: []VertexBuffer{
			{Buffer: verts, Layout: posLayout()},
			{Buffer: offsets, Layout: posLayout(), PerInstance: true},
		},
		InstanceCount: 3,
	})
	require.NoError(t, err)
	defer tess.Release()

	trace := rec.Trace()
	assert.Contains(t, trace, "VertexAttribPointer(0, 2, 0x1406, false, 8, 0)")
	assert.Contains(t, trace, "VertexAttribPointer(1, 2, 0x1406, false, 8, 0)")
	assert.Equal(t, []string{"VertexAttribDivisor(1, 1)"}, filterCalls(trace, "VertexAttribDivisor"))
}

func TestIndexedDraw(t *testing.T) {
	ctx, rec := newTestContext(t)

	tess := posTess(t, ctx, TessDesc{
		Mode:    luminance.ModeTriangle,
		Indices: []uint32{0, 1, 2, 2, 3, 0},
	})
	prog := posProgram(t, ctx)
	rec.TakeTrace()

	require.NoError(t, draw(t, ctx, prog, tess, luminance.DefaultRenderState(), TessView{}))
	assert.Contains(t, rec.Trace(), "DrawElements(0x4, 6, 0x1405, 0)")
}

func TestIndexedDrawView(t *testing.T) {
	ctx, rec := newTestContext(t)

	tess := posTess(t, ctx, TessDesc{
		Mode:    luminance.ModeTriangle,
		Indices: []uint32{0, 1, 2, 2, 3, 0},
	})
	prog := posProgram(t, ctx)
	rec.TakeTrace()

	// Index offsets are in bytes, 4 per 32-bit index.
	require.NoError(t, draw(t, ctx, prog, tess, luminance.DefaultRenderState(), TessView{Start: 3, Count: 3}))
	assert.Contains(t, rec.Trace(), "DrawElements(0x4, 3, 0x1405, 12)")
}

func TestInstancedDraw(t *testing.T) {
	ctx, rec := newTestContext(t)

	tess := posTess(t, ctx, TessDesc{Mode: luminance.ModeTriangleStrip, InstanceCount: 3})
	prog := posProgram(t, ctx)
	rec.TakeTrace()

	require.NoError(t, draw(t, ctx, prog, tess, luminance.DefaultRenderState(), TessView{}))
	assert.Contains(t, rec.Trace(), "DrawArraysInstanced(0x5, 0, 4, 3)")
}

func TestDrawView(t *testing.T) {
	ctx, rec := newTestContext(t)

	tess := posTess(t, ctx, TessDesc{Mode: luminance.ModeTriangleStrip})
	prog := posProgram(t, ctx)
	rec.TakeTrace()

	require.NoError(t, draw(t, ctx, prog, tess, luminance.DefaultRenderState(), TessView{Start: 1, Count: 2}))
	assert.Contains(t, rec.Trace(), "DrawArrays(0x5, 1, 2)")
}

func TestPrimitiveRestart(t *testing.T) {
	ctx, rec := newTestContext(t)

	tess := posTess(t, ctx, TessDesc{
		Mode:             luminance.ModeTriangleStrip,
		Indices:          []uint32{0, 1, ^uint32(0), 2, 3},
		PrimitiveRestart: true,
	})
	prog := posProgram(t, ctx)
	rec.TakeTrace()

	require.NoError(t, draw(t, ctx, prog, tess, luminance.DefaultRenderState(), TessView{}))
	trace := rec.Trace()
	assert.Contains(t, trace, "Enable(0x8f9d)")
	assert.Contains(t, trace, "PrimitiveRestartIndex(0xffffffff)")

	// The second draw finds the restart state already committed.
	rec.TakeTrace()
	require.NoError(t, draw(t, ctx, prog, tess, luminance.DefaultRenderState(), TessView{}))
	trace = rec.Trace()
	assert.NotContains(t, trace, "Enable(0x8f9d)")
	assert.NotContains(t, trace, "PrimitiveRestartIndex(0xffffffff)")
}

func TestLayoutMismatchRejected(t *testing.T) {
	ctx, rec := newTestContext(t)

	tess := posTess(t, ctx, TessDesc{Mode: luminance.ModeTriangleStrip})
	inputs := []shader.InputLocation{{Name: "pos", Location: 0, Type: shader.DataTypeFloat, Size: 3}}
	prog, _, err := NewProgram(ctx, vertSrc, fragSrc, inputs, nil)
	require.NoError(t, err)
	defer prog.Release()
	rec.TakeTrace()

	err = draw(t, ctx, prog, tess, luminance.DefaultRenderState(), TessView{})
	assert.ErrorIs(t, err, luminance.ErrVertexLayoutMismatch)
	assert.Equal(t, 0, rec.Count("DrawArrays"), "mismatched draw must not reach the driver")
}

func TestTessReleaseDropsIndexStorage(t *testing.T) {
	ctx, rec := newTestContext(t)

	buf, err := NewBufferFrom(ctx, make([]float32, 8))
	require.NoError(t, err)
	defer buf.Release()
	tess, err := NewTess(ctx, TessDesc{
		Mode:     luminance.ModeTriangle,
		Vertices: []VertexBuffer{{Buffer: buf, Layout: posLayout()}},
		Indices:  []uint32{0, 1, 2},
	})
	require.NoError(t, err)
	rec.TakeTrace()

	tess.Release()
	tess.Release()
	assert.Equal(t, 1, rec.Count("DeleteBuffer"))
	assert.Equal(t, 1, rec.Count("DeleteVertexArray"))
}

func filterCalls(trace []string, name string) []string {
	var out []string
	for _, c := range trace {
		if strings.HasPrefix(c, name+"(") {
			out = append(out, c)
		}
	}
	return out
}
