// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Attrib int
	Enum   uint
)

const (
	ACTIVE_TEXTURE               = 0x84E0
	ALWAYS                       = 0x0207
	ARRAY_BUFFER                 = 0x8892
	ARRAY_BUFFER_BINDING         = 0x8894
	BACK                         = 0x0405
	BLEND                        = 0xbe2
	BLEND_DST_ALPHA              = 0x80CA
	BLEND_DST_RGB                = 0x80C8
	BLEND_EQUATION_RGB           = 0x8009
	BLEND_SRC_ALPHA              = 0x80CB
	BLEND_SRC_RGB                = 0x80C9
	CCW                          = 0x0901
	CLAMP_TO_EDGE                = 0x812f
	COLOR_ATTACHMENT0            = 0x8ce0
	COLOR_BUFFER_BIT             = 0x4000
	COLOR_CLEAR_VALUE            = 0x0C22
	COMPILE_STATUS               = 0x8b81
	CULL_FACE                    = 0x0B44
	CULL_FACE_MODE               = 0x0B45
	CURRENT_PROGRAM              = 0x8B8D
	CW                           = 0x0900
	DEPTH_ATTACHMENT             = 0x8d00
	DEPTH_BUFFER_BIT             = 0x100
	DEPTH_COMPONENT24            = 0x81A6
	DEPTH_COMPONENT32F           = 0x8CAC
	DEPTH_FUNC                   = 0x0B74
	DEPTH_TEST                   = 0xb71
	DEPTH_WRITEMASK              = 0x0B72
	DRAW_FRAMEBUFFER             = 0x8CA9
	DST_ALPHA                    = 0x0304
	DST_COLOR                    = 0x0306
	DYNAMIC_DRAW                 = 0x88E8
	ELEMENT_ARRAY_BUFFER         = 0x8893
	ELEMENT_ARRAY_BUFFER_BINDING = 0x8895
	EQUAL                        = 0x0202
	FALSE                        = 0
	FLOAT                        = 0x1406
	FRAGMENT_SHADER              = 0x8b30
	FRAMEBUFFER                  = 0x8d40
	FRAMEBUFFER_BINDING          = 0x8ca6
	FRAMEBUFFER_COMPLETE         = 0x8cd5
	FRAMEBUFFER_SRGB             = 0x8db9
	FRONT                        = 0x0404
	FRONT_AND_BACK               = 0x0408
	FRONT_FACE                   = 0x0B46
	FUNC_ADD                     = 0x8006
	FUNC_REVERSE_SUBTRACT        = 0x800B
	FUNC_SUBTRACT                = 0x800A
	GEQUAL                       = 0x0206
	GREATER                      = 0x0204
	INFO_LOG_LENGTH              = 0x8B84
	INVALID_ENUM                 = 0x0500
	INVALID_INDEX                = ^uint(0)
	INVALID_OPERATION            = 0x0502
	INVALID_VALUE                = 0x0501
	LEQUAL                       = 0x0203
	LESS                         = 0x0201
	LINEAR                       = 0x2601
	LINEAR_MIPMAP_LINEAR         = 0x2703
	LINES                        = 0x1
	LINE_LOOP                    = 0x2
	LINE_STRIP                   = 0x3
	LINK_STATUS                  = 0x8b82
	MAX                          = 0x8008
	MAX_UNIFORM_BUFFER_BINDINGS  = 0x8A2F
	MIN                          = 0x8007
	MIRRORED_REPEAT              = 0x8370
	NEAREST                      = 0x2600
	NEVER                        = 0x0200
	NOTEQUAL                     = 0x0205
	NO_ERROR                     = 0x0
	ONE                          = 0x1
	ONE_MINUS_DST_ALPHA          = 0x0305
	ONE_MINUS_DST_COLOR          = 0x0307
	ONE_MINUS_SRC_ALPHA          = 0x0303
	ONE_MINUS_SRC_COLOR          = 0x0301
	POINTS                       = 0x0
	PRIMITIVE_RESTART            = 0x8F9D
	PRIMITIVE_RESTART_INDEX      = 0x8F9E
	R32F                         = 0x822E
	RED                          = 0x1903
	RENDERBUFFER                 = 0x8d41
	RENDERBUFFER_BINDING         = 0x8ca7
	REPEAT                       = 0x2901
	RGBA                         = 0x1908
	RGBA32F                      = 0x8814
	RGBA8                        = 0x8058
	SHORT                        = 0x1402
	SRC_ALPHA                    = 0x0302
	SRC_ALPHA_SATURATE           = 0x0308
	SRC_COLOR                    = 0x0300
	SRGB8_ALPHA8                 = 0x8c43
	STATIC_DRAW                  = 0x88e4
	TEXTURE0                     = 0x84c0
	TEXTURE_2D                   = 0xde1
	TEXTURE_BINDING_2D           = 0x8069
	TEXTURE_MAG_FILTER           = 0x2800
	TEXTURE_MIN_FILTER           = 0x2801
	TEXTURE_WRAP_S               = 0x2802
	TEXTURE_WRAP_T               = 0x2803
	TRIANGLES                    = 0x4
	TRIANGLE_FAN                 = 0x6
	TRIANGLE_STRIP               = 0x5
	TRUE                         = 1
	UNIFORM_BUFFER               = 0x8A11
	UNIFORM_BUFFER_BINDING       = 0x8A28
	UNSIGNED_BYTE                = 0x1401
	UNSIGNED_INT                 = 0x1405
	UNSIGNED_SHORT               = 0x1403
	VERTEX_ARRAY_BINDING         = 0x85B5
	VERTEX_SHADER                = 0x8b31
	VIEWPORT                     = 0x0BA2
	ZERO                         = 0x0
)
