// SPDX-License-Identifier: Unlicense OR MIT

package gl33

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdleffler/luminance"
)

func TestNewBufferFrom(t *testing.T) {
	ctx, rec := newTestContext(t)

	buf, err := NewBufferFrom(ctx, []float32{1, 2, 3, 4})
	require.NoError(t, err)
	defer buf.Release()

	assert.Equal(t, 16, buf.Len())
	assert.Equal(t, []string{
		"BindBuffer(0x8892, 1)",
		"BufferData(0x8892, 16, 0x88e8)",
		"BufferSubData(0x8892, 0, 16)",
	}, rec.Trace())
}

func TestBufferUploadBounds(t *testing.T) {
	ctx, rec := newTestContext(t)

	buf, err := NewBuffer(ctx, 16)
	require.NoError(t, err)
	defer buf.Release()
	rec.TakeTrace()

	assert.ErrorIs(t, buf.Upload(12, make([]byte, 8)), luminance.ErrBufferOverflow)
	assert.ErrorIs(t, buf.Upload(-1, make([]byte, 4)), luminance.ErrBufferOverflow)
	assert.Empty(t, rec.Trace(), "rejected uploads must not touch the driver")

	assert.NoError(t, buf.Upload(12, make([]byte, 4)))
	assert.Equal(t, 1, rec.Count("BufferSubData"))
}

func TestBufferUploadUsesCachedBind(t *testing.T) {
	ctx, rec := newTestContext(t)

	buf, err := NewBuffer(ctx, 32)
	require.NoError(t, err)
	defer buf.Release()
	rec.TakeTrace()

	require.NoError(t, buf.Upload(0, make([]byte, 16)))
	require.NoError(t, buf.Upload(16, make([]byte, 16)))
	assert.Equal(t, 0, rec.Count("BindBuffer"), "buffer is already bound from creation")
	assert.Equal(t, 2, rec.Count("BufferSubData"))
}

func TestBufferCreateFailure(t *testing.T) {
	ctx, rec := newTestContext(t)
	rec.FailCreate = "buffer"

	_, err := NewBuffer(ctx, 16)
	var rerr luminance.ResourceError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "buffer", rerr.Kind)
}

func TestBufferReleaseIdempotent(t *testing.T) {
	ctx, rec := newTestContext(t)

	buf, err := NewBuffer(ctx, 16)
	require.NoError(t, err)
	buf.Release()
	buf.Release()
	assert.Equal(t, 1, rec.Count("DeleteBuffer"))
}
