// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio via github.com/hajimehoshi/go-mp3.
//
// The decoder always reports two channels at the stream's native
// sample rate and produces normalized float32 samples:
//
//	source, err := mp3.Decoder{}.Decode(bytes.NewReader(data))
package mp3
