// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"io"
	"time"
)

// DefaultVoiceRate is the sample rate of raw speech-synthesis PCM.
const DefaultVoiceRate = 24000

// SampleBuffer holds fully decoded audio in memory: one []float32 per
// channel, normalized to [-1, 1], plus the sample rate. Buffers are
// treated as immutable; a regenerated source replaces the buffer
// wholesale rather than mutating it.
type SampleBuffer struct {
	data [][]float32
	rate int
}

// NewSampleBuffer wraps per-channel sample data at the given rate.
// The slices are retained, not copied.
func NewSampleBuffer(data [][]float32, rate int) *SampleBuffer {
	return &SampleBuffer{data: data, rate: rate}
}

func (b *SampleBuffer) Channels() int   { return len(b.data) }
func (b *SampleBuffer) SampleRate() int { return b.rate }

// Frames returns the per-channel sample count.
func (b *SampleBuffer) Frames() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data[0])
}

// Duration derived from frame count and sample rate.
func (b *SampleBuffer) Duration() time.Duration {
	if b.rate <= 0 {
		return 0
	}
	return time.Duration(int64(b.Frames()) * int64(time.Second) / int64(b.rate))
}

// Seconds is Duration as a float, convenient for progress math.
func (b *SampleBuffer) Seconds() float64 {
	if b.rate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.rate)
}

// Channel returns the backing slice for one channel. Callers must copy
// before modifying.
func (b *SampleBuffer) Channel(ch int) []float32 { return b.data[ch] }

func (b *SampleBuffer) Sample(ch, i int) float32 { return b.data[ch][i] }

// FromRawPCM16 interprets raw bytes as contiguous little-endian signed
// 16-bit mono samples at rate Hz. A trailing odd byte is discarded, so
// an input of 2k+1 bytes yields exactly k samples. Only a zero-length
// input fails, with ErrMalformedAudioData; a one-byte input yields a
// legitimate empty buffer.
func FromRawPCM16(raw []byte, rate int) (*SampleBuffer, error) {
	if len(raw) == 0 {
		return nil, ErrMalformedAudioData
	}

	frames := len(raw) / 2
	samples := make([]float32, frames)
	for i := range frames {
		v := int16(binary.LittleEndian.Uint16(raw[2*i : 2*i+2]))
		samples[i] = float32(v) / 32768.0
	}

	return &SampleBuffer{data: [][]float32{samples}, rate: rate}, nil
}

// Collect drains src into a SampleBuffer, deinterleaving as it goes.
func Collect(src Source) (*SampleBuffer, error) {
	channels := src.Channels()
	if channels < 1 {
		channels = 1
	}

	data := make([][]float32, channels)
	buf := make([]float32, 4096*channels)

	for {
		n, err := src.ReadSamples(buf)
		frames := n / channels
		for f := range frames {
			for c := range channels {
				data[c] = append(data[c], buf[f*channels+c])
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
	}

	for c := range channels {
		if data[c] == nil {
			data[c] = []float32{}
		}
	}

	return &SampleBuffer{data: data, rate: src.SampleRate()}, nil
}

// bufferSource streams a SampleBuffer back out as an interleaved Source.
type bufferSource struct {
	buf *SampleBuffer
	pos int // frame position
}

// NewBufferSource adapts buf to the Source interface so buffers can be
// fed through the resampling/mixing pipeline.
func NewBufferSource(buf *SampleBuffer) Source {
	return &bufferSource{buf: buf}
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate() }
func (s *bufferSource) Channels() int   { return s.buf.Channels() }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.Channels()
	if channels == 0 {
		return 0, io.EOF
	}
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / channels
	remaining := s.buf.Frames() - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}
	if frames > remaining {
		frames = remaining
	}

	for f := range frames {
		for c := range channels {
			dst[f*channels+c] = s.buf.Sample(c, s.pos+f)
		}
	}
	s.pos += frames

	if s.pos >= s.buf.Frames() {
		return frames * channels, io.EOF
	}
	return frames * channels, nil
}
