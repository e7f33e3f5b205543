// SPDX-License-Identifier: Unlicense OR MIT

// Package luminance provides the backend-independent vocabulary for a
// type-safe, state-cached abstraction over real-time graphics APIs.
//
// The package defines primitive modes, render-state and pipeline-state
// configuration, vertex layout descriptors and the error taxonomy shared
// by backends. The OpenGL 3.3 backend lives in the gl33 package; it is
// organized as a strict gate protocol:
//
//	Context.Pipeline → ShadingGate.Shade → RenderGate.Render → TessGate.Render
//
// Each gate commits one layer of driver state through a graphics state
// cache before allowing the next layer to proceed. The cache mirrors the
// driver's last known settings so that redundant state changes never reach
// the driver.
package luminance
