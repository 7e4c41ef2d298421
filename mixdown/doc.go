// SPDX-License-Identifier: EPL-2.0

// Package mixdown renders the voice and music buffers into a single
// downloadable WAV file.
//
// The render is offline and deterministic: a fixed stereo 44.1 kHz
// output whose length is governed entirely by the voice track. Music is
// looped or truncated to match and scaled by the shared gain value,
// the same scalar the live playback session uses.
//
//	res, err := mixdown.Render(ctx, voice, music, 0.3)
//	if err != nil {
//	    // always surfaced, never swallowed
//	}
//	name := res.Filename(time.Now()) // "ad-spot-<millis>.wav"
//
// The context is the await point for the non-real-time pass; cancel it
// to abort a long render.
package mixdown
