// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio via github.com/go-audio/aiff.
//
// Only 16-bit PCM files are accepted. The decoder adapts the go-audio
// int buffer API to the audio.Source interface:
//
//	source, err := aiff.Decoder{}.Decode(bytes.NewReader(data))
package aiff
