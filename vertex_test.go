// SPDX-License-Identifier: Unlicense OR MIT

package luminance

import (
	"testing"

	"gioui.org/shader"
	"github.com/stretchr/testify/assert"
)

func TestVertexLayoutValidate(t *testing.T) {
	ok := VertexLayout{
		Inputs: []InputDesc{
			{Type: shader.DataTypeFloat, Size: 2, Offset: 0},
			{Type: shader.DataTypeFloat, Size: 4, Offset: 8},
		},
		Stride: 24,
	}
	assert.NoError(t, ok.Validate())

	overflow := VertexLayout{
		Inputs: []InputDesc{{Type: shader.DataTypeFloat, Size: 2, Offset: 4}},
		Stride: 8,
	}
	assert.ErrorIs(t, overflow.Validate(), ErrVertexLayoutMismatch)
}

func TestDataTypeSize(t *testing.T) {
	assert.Equal(t, 4, DataTypeSize(shader.DataTypeFloat))
	assert.Equal(t, 2, DataTypeSize(shader.DataTypeShort))
	assert.Panics(t, func() { DataTypeSize(shader.DataType(99)) })
}
