// SPDX-License-Identifier: Unlicense OR MIT

package gl33

import (
	"github.com/sdleffler/luminance"
	"github.com/sdleffler/luminance/internal/byteslice"
	"github.com/sdleffler/luminance/internal/gl"
)

// Buffer is a handle to driver-side buffer storage. It shares the state
// cache with every other handle created from the same Context.
type Buffer struct {
	ctx  *Context
	obj  gl.Buffer
	size int
}

// NewBuffer creates a buffer with size bytes of zeroed storage.
func NewBuffer(ctx *Context, size int) (*Buffer, error) {
	obj := ctx.funcs.CreateBuffer()
	if !obj.Valid() {
		return nil, luminance.ResourceError{Kind: "buffer"}
	}
	buf := &Buffer{ctx: ctx, obj: obj, size: size}
	ctx.state.bindArrayBuffer(ctx.funcs, obj, false)
	ctx.funcs.BufferData(gl.ARRAY_BUFFER, size, gl.DYNAMIC_DRAW)
	luminance.Logger().Debug("gl33: buffer created", "id", obj.V, "size", size)
	return buf, nil
}

// NewBufferFrom creates a buffer initialized with the contents of data.
func NewBufferFrom[T any](ctx *Context, data []T) (*Buffer, error) {
	raw := byteslice.Of(data)
	buf, err := NewBuffer(ctx, len(raw))
	if err != nil {
		return nil, err
	}
	if err := buf.Upload(0, raw); err != nil {
		buf.Release()
		return nil, err
	}
	return buf, nil
}

// Len returns the buffer size in bytes.
func (b *Buffer) Len() int { return b.size }

// Upload writes data at the given byte offset. The cached array-buffer
// bind is used, so repeated writes to an already bound buffer skip the
// rebind.
func (b *Buffer) Upload(offset int, data []byte) error {
	if offset < 0 || offset+len(data) > b.size {
		return luminance.ErrBufferOverflow
	}
	b.ctx.state.bindArrayBuffer(b.ctx.funcs, b.obj, false)
	b.ctx.funcs.BufferSubData(gl.ARRAY_BUFFER, offset, data)
	return nil
}

// Release tells the cache to forget every binding referencing this
// buffer, then deletes the driver object. The order matters: done the
// other way around, a recycled identifier would look already bound.
func (b *Buffer) Release() {
	if !b.obj.Valid() {
		return
	}
	b.ctx.state.forgetBuffer(b.obj)
	b.ctx.funcs.DeleteBuffer(b.obj)
	luminance.Logger().Debug("gl33: buffer released", "id", b.obj.V)
	b.obj = gl.Buffer{}
}
