// SPDX-License-Identifier: EPL-2.0

package mixdown

import "errors"

var (
	// ErrNoVoiceTrack reports a mixdown attempt without a voice buffer.
	ErrNoVoiceTrack = errors.New("mixdown requires a voice track")

	// ErrMixdownFailed wraps render or encode failures. These are always
	// surfaced to the caller, never swallowed.
	ErrMixdownFailed = errors.New("mixdown failed")
)
