// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"io"

	"github.com/jesusdc750-hub/Spot-Marker-IA/audio"
	"github.com/jesusdc750-hub/Spot-Marker-IA/utils"
)

// trackReader streams a pre-rendered interleaved float32 track as
// 16-bit LE PCM, the format the engine players consume.
//
// A looping reader restarts at sample 0 on exhaustion and never
// returns io.EOF; a non-looping one drains once. Gain, when set, is
// loaded once per Read call, so level changes land on block
// boundaries.
type trackReader struct {
	samples []float32
	pos     int
	loop    bool
	gain    *Gain
	scratch []float32
}

func (r *trackReader) Read(p []byte) (int, error) {
	if len(r.samples) == 0 {
		return 0, io.EOF
	}

	g := float32(1)
	if r.gain != nil {
		g = float32(r.gain.Level())
	}

	want := len(p) / 2
	written := 0
	for written < want {
		if r.pos >= len(r.samples) {
			if !r.loop {
				break
			}
			r.pos = 0
		}

		run := want - written
		if avail := len(r.samples) - r.pos; run > avail {
			run = avail
		}

		chunk := r.samples[r.pos : r.pos+run]
		if g != 1 {
			if cap(r.scratch) < run {
				r.scratch = make([]float32, run)
			}
			scaled := r.scratch[:run]
			for i, v := range chunk {
				scaled[i] = v * g
			}
			chunk = scaled
		}
		utils.PutPCM16LE(p[written*2:], chunk)

		r.pos += run
		written += run
	}

	if written == 0 {
		return 0, io.EOF
	}
	return written * 2, nil
}

// renderTrack converts buf to interleaved samples at the engine
// format, resampling and remixing channels as needed.
func renderTrack(buf *audio.SampleBuffer, rate, channels int) ([]float32, error) {
	var src audio.Source = audio.NewBufferSource(buf)
	if buf.Channels() != channels {
		src = audio.NewChannelMixer(src, channels)
	}
	if buf.SampleRate() != rate {
		src = audio.NewResampler(src, rate)
	}
	defer src.Close()

	var all []float32
	block := make([]float32, 4096*channels)
	for {
		n, err := src.ReadSamples(block)
		all = append(all, block[:n]...)
		if err == io.EOF || (err == nil && n == 0) {
			return all, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
