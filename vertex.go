// SPDX-License-Identifier: Unlicense OR MIT

package luminance

import "gioui.org/shader"

// InputDesc describes a vertex attribute as laid out in a buffer.
type InputDesc struct {
	Type shader.DataType
	Size int

	// Offset is the attribute offset in bytes from the start of a vertex.
	Offset int
}

// VertexLayout describes how vertex attributes are laid out in a buffer.
// Inputs are matched positionally against the attribute locations a
// program declares.
type VertexLayout struct {
	Inputs []InputDesc
	Stride int
}

// Validate reports whether every input fits within the layout stride.
func (l VertexLayout) Validate() error {
	for _, inp := range l.Inputs {
		end := inp.Offset + inp.Size*DataTypeSize(inp.Type)
		if end > l.Stride {
			return ErrVertexLayoutMismatch
		}
	}
	return nil
}

// DataTypeSize returns the size in bytes of a single attribute component.
// It panics on encodings no backend supports; such a value reaching the
// attribute pointer setup is a programming bug, not a runtime condition.
func DataTypeSize(t shader.DataType) int {
	switch t {
	case shader.DataTypeFloat:
		return 4
	case shader.DataTypeShort:
		return 2
	default:
		panic("unsupported data type")
	}
}
