// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrMalformedAudioData reports raw PCM input that cannot yield a buffer.
	ErrMalformedAudioData = errors.New("malformed audio data: empty input")
	// ErrUnsupportedAudioFormat reports encoded bytes no registered decoder accepts.
	ErrUnsupportedAudioFormat = errors.New("unsupported audio format")

	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
)
