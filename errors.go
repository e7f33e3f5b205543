// SPDX-License-Identifier: Unlicense OR MIT

package luminance

import (
	"errors"
	"fmt"
)

// ErrUnavailableStateCache means a live graphics state cache already
// exists. At most one cache may mirror the driver at a time; a second one
// would desynchronize both.
var ErrUnavailableStateCache = errors.New("luminance: graphics state cache already acquired")

// ErrVertexLayoutMismatch means the vertex layout bound for a draw does
// not match the attributes the active program declares.
var ErrVertexLayoutMismatch = errors.New("luminance: vertex layout does not match program inputs")

// ErrBufferOverflow means a buffer write extends past the buffer storage.
var ErrBufferOverflow = errors.New("luminance: write exceeds buffer size")

// ErrUploadOverflow means a pixel upload extends past the texture storage.
var ErrUploadOverflow = errors.New("luminance: pixel upload exceeds texture storage")

// StateQueryError reports that the initial driver state query returned a
// value the cache cannot interpret. The cache is never left partially
// initialized; the named setting identifies the unreadable query.
type StateQueryError struct {
	Setting string
	Value   int
}

func (e StateQueryError) Error() string {
	return fmt.Sprintf("luminance: unrecognized driver value %#x for %s", e.Value, e.Setting)
}

// ShaderError reports a shader stage compilation failure.
type ShaderError struct {
	Stage string
	Log   string
}

func (e ShaderError) Error() string {
	return fmt.Sprintf("luminance: %s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError reports a program link failure.
type LinkError struct {
	Log string
}

func (e LinkError) Error() string {
	return "luminance: program link failed: " + e.Log
}

// ResourceError reports that the driver refused to allocate an identifier
// for a resource kind.
type ResourceError struct {
	Kind string
}

func (e ResourceError) Error() string {
	return "luminance: cannot create " + e.Kind
}

// IncompleteFramebuffer reports a framebuffer that failed its completeness
// check, with the raw driver status.
type IncompleteFramebuffer struct {
	Status uint32
}

func (e IncompleteFramebuffer) Error() string {
	return fmt.Sprintf("luminance: incomplete framebuffer, status = %#x", e.Status)
}

// TessError reports an invalid vertex set configuration.
type TessError struct {
	Reason string
}

func (e TessError) Error() string {
	return "luminance: invalid tessellation: " + e.Reason
}

// WarningKind classifies non-fatal program construction findings.
type WarningKind uint8

const (
	// WarnInactiveUniform is a uniform declared by the host but absent or
	// optimized out of the linked program.
	WarnInactiveUniform WarningKind = iota
	// WarnInactiveAttribute is a vertex input declared by the host but
	// unused by the linked program.
	WarnInactiveAttribute
)

// ProgramWarning is collected during program construction and returned
// alongside the successfully built program, never silently dropped. The
// caller decides whether to treat it as fatal.
type ProgramWarning struct {
	Kind WarningKind
	Name string
}

func (w ProgramWarning) String() string {
	switch w.Kind {
	case WarnInactiveUniform:
		return "inactive uniform " + w.Name
	case WarnInactiveAttribute:
		return "inactive attribute " + w.Name
	default:
		return "unknown warning " + w.Name
	}
}
