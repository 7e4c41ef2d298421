// SPDX-License-Identifier: EPL-2.0

// Package render draws the visual half of the preview: a Ken Burns
// pan-and-zoom over the uploaded image, a darkening overlay, the
// brand-colored headline and script captions, all keyed to elapsed
// audio time.
//
// Frame math is pure and separately testable (ComputeFrame, Progress,
// CaptionChunks); the Renderer composites a Frame onto its canvas; the
// Clock turns wall time into frame callbacks. The playback manager
// owns the wiring between them.
package render
