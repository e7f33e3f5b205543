// SPDX-License-Identifier: Unlicense OR MIT

package gl33

import (
	"fmt"

	"github.com/sdleffler/luminance"
	"github.com/sdleffler/luminance/internal/gl"
)

// texTriple holds the driver-side encodings for a pixel format.
type texTriple struct {
	internalFormat gl.Enum
	format         gl.Enum
	typ            gl.Enum
	texelSize      int
}

func tripleFor(f luminance.PixelFormat) texTriple {
	switch f {
	case luminance.RGBA8:
		return texTriple{gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE, 4}
	case luminance.SRGBA8:
		return texTriple{gl.SRGB8_ALPHA8, gl.RGBA, gl.UNSIGNED_BYTE, 4}
	case luminance.R32F:
		return texTriple{gl.R32F, gl.RED, gl.FLOAT, 4}
	case luminance.RGBA32F:
		return texTriple{gl.RGBA32F, gl.RGBA, gl.FLOAT, 16}
	default:
		panic("unsupported pixel format")
	}
}

// TextureDesc configures texture storage: immutable after construction.
type TextureDesc struct {
	Width, Height int
	// Mipmaps is the storage level count; zero means one level.
	Mipmaps int
	Format  luminance.PixelFormat
	Sampler luminance.Sampler
}

// Texture is a handle to immutable driver-side texture storage.
type Texture struct {
	ctx    *Context
	obj    gl.Texture
	desc   TextureDesc
	triple texTriple
}

// NewTexture allocates texture storage per desc. If storage configuration
// fails after the identifier was created, the identifier is released
// before the error is returned; no partial resource is left behind.
func NewTexture(ctx *Context, desc TextureDesc) (*Texture, error) {
	glErr(ctx.funcs)
	obj := ctx.funcs.CreateTexture()
	if !obj.Valid() {
		return nil, luminance.ResourceError{Kind: "texture"}
	}
	if desc.Mipmaps == 0 {
		desc.Mipmaps = 1
	}
	t := &Texture{ctx: ctx, obj: obj, desc: desc, triple: tripleFor(desc.Format)}
	f := ctx.funcs
	var err error
	ctx.withTextureBound(obj, func() {
		f.TexStorage2D(gl.TEXTURE_2D, desc.Mipmaps, t.triple.internalFormat, desc.Width, desc.Height)
		f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(desc.Sampler.WrapS))
		f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(desc.Sampler.WrapT))
		f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(desc.Sampler.MinFilter))
		f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(desc.Sampler.MagFilter))
		err = glErr(f)
	})
	if err != nil {
		t.Release()
		return nil, err
	}
	luminance.Logger().Debug("gl33: texture created", "id", obj.V,
		"width", desc.Width, "height", desc.Height, "levels", desc.Mipmaps)
	return t, nil
}

// Size returns the level zero dimensions.
func (t *Texture) Size() (width, height int) {
	return t.desc.Width, t.desc.Height
}

// Upload writes pixels into the rectangle at (x, y). The bind goes
// through the cache so repeated uploads to an already bound texture avoid
// redundant rebinding, and it targets a unit no bound-texture token
// holds, so a mid-pipeline upload cannot evict a reserved unit.
func (t *Texture) Upload(x, y, width, height int, pixels []byte) error {
	if x < 0 || y < 0 || x+width > t.desc.Width || y+height > t.desc.Height {
		return luminance.ErrUploadOverflow
	}
	if len(pixels) < width*height*t.triple.texelSize {
		return luminance.ErrUploadOverflow
	}
	t.ctx.withTextureBound(t.obj, func() {
		t.ctx.funcs.TexSubImage2D(gl.TEXTURE_2D, 0, x, y, width, height, t.triple.format, t.triple.typ, pixels)
	})
	return nil
}

// GenerateMipmaps fills every storage level below zero from its parent.
func (t *Texture) GenerateMipmaps() {
	t.ctx.withTextureBound(t.obj, func() {
		t.ctx.funcs.GenerateMipmap(gl.TEXTURE_2D)
	})
}

// withTextureBound binds tex at a unit no live token reserves, runs fn
// and returns the unit to the pool. The binding stays cached, so a later
// mutation finding the texture still bound at that unit skips the rebind.
func (c *Context) withTextureBound(tex gl.Texture, fn func()) {
	unit := c.state.units.acquire()
	c.state.bindTextureAt(c.funcs, gl.TEXTURE_2D, tex, unit)
	fn()
	c.state.units.release(unit)
}

// Release forgets the cache entries referencing this texture, then
// deletes the driver object.
func (t *Texture) Release() {
	if !t.obj.Valid() {
		return
	}
	t.ctx.state.forgetTexture(t.obj)
	t.ctx.funcs.DeleteTexture(t.obj)
	luminance.Logger().Debug("gl33: texture released", "id", t.obj.V)
	t.obj = gl.Texture{}
}

func glWrap(w luminance.Wrap) int {
	switch w {
	case luminance.ClampToEdge:
		return gl.CLAMP_TO_EDGE
	case luminance.Repeat:
		return gl.REPEAT
	case luminance.MirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		panic("unsupported wrap mode")
	}
}

func glFilter(fi luminance.Filter) int {
	switch fi {
	case luminance.Nearest:
		return gl.NEAREST
	case luminance.Linear:
		return gl.LINEAR
	case luminance.LinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	default:
		panic("unsupported filter")
	}
}

func glErr(f gl.Functions) error {
	if st := f.GetError(); st != gl.NO_ERROR {
		return fmt.Errorf("gl33: glGetError: %#x", uint(st))
	}
	return nil
}
