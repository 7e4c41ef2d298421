// SPDX-License-Identifier: EPL-2.0

// Package formats dispatches encoded audio bytes to the right decoder.
//
// User-supplied music arrives as an opaque byte blob; Detect sniffs the
// container magic and Decode runs the matching decoder from the
// registry. Decode failures are reported as
// audio.ErrUnsupportedAudioFormat so callers can surface one
// user-facing message regardless of which codec rejected the bytes.
package formats

import (
	"bytes"
	"fmt"

	"github.com/jesusdc750-hub/Spot-Marker-IA/audio"
	"github.com/jesusdc750-hub/Spot-Marker-IA/formats/aiff"
	"github.com/jesusdc750-hub/Spot-Marker-IA/formats/mp3"
	"github.com/jesusdc750-hub/Spot-Marker-IA/formats/vorbis"
	"github.com/jesusdc750-hub/Spot-Marker-IA/formats/wav"
)

var registry = func() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}()

// Detect returns the registry key for the container the bytes look
// like, or "" when nothing matches.
func Detect(b []byte) string {
	switch {
	case len(b) >= 12 && bytes.Equal(b[0:4], []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WAVE")):
		return "wav"
	case len(b) >= 4 && bytes.Equal(b[0:4], []byte("OggS")):
		return "ogg"
	case len(b) >= 12 && bytes.Equal(b[0:4], []byte("FORM")) &&
		(bytes.Equal(b[8:12], []byte("AIFF")) || bytes.Equal(b[8:12], []byte("AIFC"))):
		return "aiff"
	case len(b) >= 3 && bytes.Equal(b[0:3], []byte("ID3")):
		return "mp3"
	case len(b) >= 2 && b[0] == 0xFF && b[1]&0xE0 == 0xE0:
		// Bare MPEG frame sync, no ID3 header.
		return "mp3"
	default:
		return ""
	}
}

// Decode sniffs b and decodes it into a Source at its native sample
// rate and channel count.
func Decode(b []byte) (audio.Source, error) {
	key := Detect(b)
	if key == "" {
		return nil, audio.ErrUnsupportedAudioFormat
	}

	dec, ok := registry.Get(key)
	if !ok {
		return nil, audio.ErrUnsupportedAudioFormat
	}

	src, err := dec.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", audio.ErrUnsupportedAudioFormat, err)
	}
	return src, nil
}
