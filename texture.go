// SPDX-License-Identifier: Unlicense OR MIT

package luminance

// PixelFormat tags the texel encoding of a texture's storage. The
// numeric codecs themselves live in the backends.
type PixelFormat uint8

const (
	RGBA8 PixelFormat = iota
	SRGBA8
	R32F
	RGBA32F
)

// Wrap is a texture coordinate wrapping mode.
type Wrap uint8

const (
	ClampToEdge Wrap = iota
	Repeat
	MirroredRepeat
)

// Filter is a texture sampling filter.
type Filter uint8

const (
	Nearest Filter = iota
	Linear
	LinearMipmapLinear
)

// Sampler configures how a texture is sampled. The zero value is
// clamp-to-edge, nearest filtering.
type Sampler struct {
	WrapS, WrapT         Wrap
	MinFilter, MagFilter Filter
}
