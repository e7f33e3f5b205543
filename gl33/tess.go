// SPDX-License-Identifier: Unlicense OR MIT

package gl33

import (
	"github.com/sdleffler/luminance"
	"github.com/sdleffler/luminance/internal/byteslice"
	"github.com/sdleffler/luminance/internal/gl"
)

// VertexBuffer pairs a buffer with the layout of the attributes stored in
// it. PerInstance marks the attributes as advancing per instance rather
// than per vertex.
type VertexBuffer struct {
	Buffer      *Buffer
	Layout      luminance.VertexLayout
	PerInstance bool
}

// TessDesc is the complete configuration of a vertex set, validated in
// one pass by NewTess. Deinterleaved storage is expressed as several
// single-attribute buffers; interleaved storage as one buffer with a
// multi-input layout.
type TessDesc struct {
	Mode luminance.Mode
	// Vertices may be empty for attributeless rendering, in which case
	// VertexCount must be set.
	Vertices []VertexBuffer
	Indices  []uint32
	// VertexCount overrides the count derived from the vertex buffers.
	VertexCount int
	// InstanceCount below two draws a single instance.
	InstanceCount    int
	PrimitiveRestart bool
}

// Tess is a vertex set: driver-side vertices, optional indices and the
// primitive mode connecting them.
type Tess struct {
	ctx *Context
	vao gl.VertexArray

	mode      luminance.Mode
	attribs   []luminance.InputDesc
	vertices  int
	instances int
	indices   gl.Buffer
	indexLen  int
	restart   bool
}

// NewTess validates desc and builds the vertex array. The attribute
// locations are assigned consecutively across the vertex buffers, in
// order.
func NewTess(ctx *Context, desc TessDesc) (*Tess, error) {
	vertices := desc.VertexCount
	for _, vb := range desc.Vertices {
		if vb.Buffer == nil || len(vb.Layout.Inputs) == 0 {
			return nil, luminance.TessError{Reason: "vertex buffer without layout"}
		}
		if err := vb.Layout.Validate(); err != nil {
			return nil, luminance.TessError{Reason: "attribute exceeds layout stride"}
		}
		if vb.PerInstance {
			continue
		}
		n := vb.Buffer.Len() / vb.Layout.Stride
		if vertices == 0 {
			vertices = n
		} else if n != vertices {
			return nil, luminance.TessError{Reason: "vertex buffers disagree on vertex count"}
		}
	}
	if vertices == 0 && len(desc.Indices) == 0 {
		return nil, luminance.TessError{Reason: "no vertex storage and no vertex count"}
	}
	instances := desc.InstanceCount
	if instances < 1 {
		instances = 1
	}

	f := ctx.funcs
	vao := f.CreateVertexArray()
	if !vao.Valid() {
		return nil, luminance.ResourceError{Kind: "vertex array"}
	}
	t := &Tess{
		ctx:       ctx,
		vao:       vao,
		mode:      desc.Mode,
		vertices:  vertices,
		instances: instances,
		restart:   desc.PrimitiveRestart,
	}
	// Attribute pointer setup is captured into the vertex array, so both
	// binds must really reach the driver.
	ctx.state.bindVertexArray(f, vao, true)
	loc := gl.Attrib(0)
	for _, vb := range desc.Vertices {
		ctx.state.bindArrayBuffer(f, vb.Buffer.obj, true)
		for _, inp := range vb.Layout.Inputs {
			f.EnableVertexAttribArray(loc)
			f.VertexAttribPointer(loc, inp.Size, glDataType(inp.Type), false, vb.Layout.Stride, inp.Offset)
			if vb.PerInstance {
				f.VertexAttribDivisor(loc, 1)
			}
			t.attribs = append(t.attribs, inp)
			loc++
		}
	}
	if len(desc.Indices) > 0 {
		idx := f.CreateBuffer()
		if !idx.Valid() {
			t.Release()
			return nil, luminance.ResourceError{Kind: "buffer"}
		}
		raw := byteslice.Of(desc.Indices)
		// Bound while the vertex array is current, so the association is
		// captured by the vertex array.
		ctx.state.bindElementBuffer(f, idx)
		f.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(raw), gl.STATIC_DRAW)
		f.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, raw)
		t.indices = idx
		t.indexLen = len(desc.Indices)
	}
	luminance.Logger().Debug("gl33: tess created", "vao", vao.V,
		"vertices", vertices, "indices", t.indexLen, "instances", instances)
	return t, nil
}

// Release drops the vertex array and the index storage it owns. Vertex
// buffers remain owned by the caller.
func (t *Tess) Release() {
	if !t.vao.Valid() {
		return
	}
	if t.indices.Valid() {
		t.ctx.state.forgetBuffer(t.indices)
		t.ctx.funcs.DeleteBuffer(t.indices)
		t.indices = gl.Buffer{}
	}
	t.ctx.state.forgetVertexArray(t.vao)
	t.ctx.funcs.DeleteVertexArray(t.vao)
	luminance.Logger().Debug("gl33: tess released", "vao", t.vao.V)
	t.vao = gl.VertexArray{}
}
