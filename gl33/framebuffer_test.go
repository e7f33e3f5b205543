// SPDX-License-Identifier: Unlicense OR MIT

package gl33

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdleffler/luminance"
)

func TestNewFramebuffer(t *testing.T) {
	ctx, rec := newTestContext(t)

	fb, err := NewFramebuffer(ctx, TextureDesc{Width: 128, Height: 128, Format: luminance.RGBA8}, true)
	require.NoError(t, err)
	defer fb.Release()

	w, h := fb.Size()
	assert.Equal(t, 128, w)
	assert.Equal(t, 128, h)
	assert.NotNil(t, fb.ColorTexture())

	trace := rec.Trace()
	assert.Contains(t, trace, "FramebufferTexture2D(0x8d40, 0x8ce0, 1)")
	assert.Contains(t, trace, "RenderbufferStorage(0x8d41, 0x8cac, 128, 128)")
	assert.Contains(t, trace, "FramebufferRenderbuffer(0x8d40, 0x8d00, 1)")
}

func TestIncompleteFramebuffer(t *testing.T) {
	ctx, rec := newTestContext(t)
	rec.FramebufferStatus = 0x8cd6

	_, err := NewFramebuffer(ctx, TextureDesc{Width: 16, Height: 16, Format: luminance.RGBA8}, true)
	var ferr luminance.IncompleteFramebuffer
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, uint32(0x8cd6), ferr.Status)

	// The whole attachment chain is torn down.
	assert.Equal(t, 1, rec.Count("DeleteFramebuffer"))
	assert.Equal(t, 1, rec.Count("DeleteRenderbuffer"))
	assert.Equal(t, 1, rec.Count("DeleteTexture"))
}

func TestBackBufferRelease(t *testing.T) {
	ctx, _ := newTestContext(t)

	assert.Panics(t, func() { BackBuffer(ctx, 800, 600).Release() })
}

func TestPipelineTargetsOffscreen(t *testing.T) {
	ctx, rec := newTestContext(t)

	fb, err := NewFramebuffer(ctx, TextureDesc{Width: 64, Height: 32, Format: luminance.RGBA8}, false)
	require.NoError(t, err)
	defer fb.Release()
	rec.TakeTrace()

	err = ctx.Pipeline(fb, luminance.PipelineState{}, func(p *Pipeline, sg ShadingGate) error {
		return nil
	})
	require.NoError(t, err)
	// The framebuffer bind is cached from construction; only the viewport
	// and clear reach the driver.
	trace := rec.Trace()
	assert.NotContains(t, trace, "BindFramebuffer(0x8d40, 1)")
	assert.Contains(t, trace, "Viewport(0, 0, 64, 32)")
	assert.Contains(t, trace, "Clear(0x4100)")
}

func TestFramebufferReleaseForgetsBinding(t *testing.T) {
	ctx, rec := newTestContext(t)

	fb, err := NewFramebuffer(ctx, TextureDesc{Width: 64, Height: 64, Format: luminance.RGBA8}, false)
	require.NoError(t, err)
	rec.TakeTrace()

	fb.Release()
	// The cache no longer claims the deleted name is bound; returning to
	// the back buffer must issue the bind.
	ctx.Pipeline(BackBuffer(ctx, 800, 600), luminance.PipelineState{SkipClear: true}, func(p *Pipeline, sg ShadingGate) error {
		return nil
	})
	assert.Contains(t, rec.Trace(), "BindFramebuffer(0x8d40, 0)")
}
