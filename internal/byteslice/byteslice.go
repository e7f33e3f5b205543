// SPDX-License-Identifier: Unlicense OR MIT

// Package byteslice provides byte views of typed slices for buffer
// uploads.
package byteslice

import "unsafe"

// Of returns a byte slice aliasing the storage of s.
func Of[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	sz := unsafe.Sizeof(s[0])
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), uintptr(len(s))*sz)
}
