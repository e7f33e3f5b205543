// SPDX-License-Identifier: Unlicense OR MIT

package byteslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	assert.Nil(t, Of([]float32(nil)))
	assert.Len(t, Of([]float32{1, 2, 3}), 12)
	assert.Len(t, Of([]uint16{1, 2, 3}), 6)

	// The view aliases the source storage.
	src := []uint32{0xdeadbeef}
	raw := Of(src)
	raw[0], raw[1], raw[2], raw[3] = 0, 0, 0, 0
	assert.Equal(t, uint32(0), src[0])
}
