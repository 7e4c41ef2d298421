// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio primitives shared by the
// preview and mixdown paths.
//
// # SampleBuffer
//
// A SampleBuffer is fully decoded audio held in memory: one normalized
// float32 slice per channel plus a sample rate. Buffers are created
// once per source and replaced wholesale when a source regenerates:
//
//	voice, err := audio.FromRawPCM16(raw, audio.DefaultVoiceRate)
//	dur := voice.Duration()
//
// # Source interface
//
// The Source interface is a stream of interleaved float32 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders and processors implement Source so they can be chained.
// NewBufferSource adapts a SampleBuffer back into a Source, and
// Collect drains any Source into a SampleBuffer.
//
// # Processing
//
// Resampler converts between sample rates with cubic interpolation;
// ChannelMixer adapts the channel count (mono spread, downmix
// averaging). A typical playback pipeline:
//
//	src := audio.NewBufferSource(voice)
//	stereo := audio.NewChannelMixer(src, 2)
//	engineRate := audio.NewResampler(stereo, 44100)
package audio
