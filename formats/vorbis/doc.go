// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio via
// github.com/jfreymuth/oggvorbis.
//
// The underlying reader already yields interleaved float32 samples, so
// this package is a thin adapter to the audio.Source interface:
//
//	source, err := vorbis.Decoder{}.Decode(bytes.NewReader(data))
package vorbis
