// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and encoding.
//
// Decoding is backed by github.com/go-audio/wav, so chunked files with
// extra metadata chunks are handled correctly. The decoder returns an
// audio.Source of normalized float32 samples:
//
//	decoder := wav.Decoder{}
//	source, err := decoder.Decode(bytes.NewReader(data))
//
// Encoding writes the minimal canonical container (RIFF header, fmt
// chunk, data chunk) with interleaved 16-bit PCM frames:
//
//	err := wav.WritePCM16(w, 44100, 2, interleaved)
//
// WriteWAV16 is a mono convenience over WritePCM16.
package wav
