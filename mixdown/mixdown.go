// SPDX-License-Identifier: EPL-2.0

package mixdown

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jesusdc750-hub/Spot-Marker-IA/audio"
	"github.com/jesusdc750-hub/Spot-Marker-IA/formats/wav"
	"github.com/jesusdc750-hub/Spot-Marker-IA/utils"
)

const (
	// SampleRate of every mixdown, regardless of source rates.
	SampleRate = 44100
	// Channels is always stereo.
	Channels = 2
)

// Result is a finished mixdown: a complete WAV byte container plus the
// format facts a caller needs to offer it as a download. Ownership
// passes to the caller; the renderer keeps no reference.
type Result struct {
	Data       []byte
	SampleRate int
	Channels   int
	Frames     int
}

// ContentType for serving the container.
func (r *Result) ContentType() string { return "audio/wav" }

// Filename returns a timestamped download name.
func (r *Result) Filename(t time.Time) string {
	return fmt.Sprintf("ad-spot-%d.wav", t.UnixMilli())
}

// Render mixes voice and optional music into a stereo 44.1 kHz WAV.
//
// Output length is ceil(voiceDuration * 44100) frames: the voice track
// alone governs duration. Voice is summed into both channels at full
// scale from frame 0; music, when present, is looped or truncated to
// cover the whole length, scaled by gain and summed on top. The mix is
// additive; no normalization or clip prevention before quantization.
//
// Rendering is a single non-real-time pass; ctx cancellation aborts it.
func Render(ctx context.Context, voice, music *audio.SampleBuffer, gain float64) (*Result, error) {
	if voice == nil {
		return nil, ErrNoVoiceTrack
	}

	frames := int(math.Ceil(voice.Seconds() * SampleRate))
	out := make([]float32, frames*Channels)

	if err := sumTrack(ctx, out, voice, 1.0); err != nil {
		return nil, fmt.Errorf("%w: rendering voice: %w", ErrMixdownFailed, err)
	}

	if music != nil && music.Frames() > 0 {
		loop, err := collectStereo(ctx, music)
		if err != nil {
			return nil, fmt.Errorf("%w: rendering music: %w", ErrMixdownFailed, err)
		}
		loopFrames := len(loop) / Channels
		if loopFrames > 0 {
			g := float32(gain)
			for f := range frames {
				src := (f % loopFrames) * Channels
				out[f*Channels] += loop[src] * g
				out[f*Channels+1] += loop[src+1] * g
			}
		}
	}

	pcm := make([]int16, len(out))
	for i, s := range out {
		pcm[i] = utils.Float32ToInt16(s)
	}

	var buf bytes.Buffer
	if err := wav.WritePCM16(&buf, SampleRate, Channels, pcm); err != nil {
		return nil, fmt.Errorf("%w: encoding wav: %w", ErrMixdownFailed, err)
	}

	return &Result{
		Data:       buf.Bytes(),
		SampleRate: SampleRate,
		Channels:   Channels,
		Frames:     frames,
	}, nil
}

// pipeline adapts buf to a stereo Source at the mixdown rate.
func pipeline(buf *audio.SampleBuffer) audio.Source {
	var src audio.Source = audio.NewBufferSource(buf)
	if buf.Channels() != Channels {
		src = audio.NewChannelMixer(src, Channels)
	}
	if buf.SampleRate() != SampleRate {
		src = audio.NewResampler(src, SampleRate)
	}
	return src
}

// sumTrack streams buf through the stereo pipeline and adds it into
// out, scaled by gain. Frames past len(out) are dropped.
func sumTrack(ctx context.Context, out []float32, buf *audio.SampleBuffer, gain float32) error {
	src := pipeline(buf)
	defer src.Close()

	block := make([]float32, 4096*Channels)
	pos := 0

	for pos < len(out) {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := src.ReadSamples(block)
		for i := 0; i < n && pos+i < len(out); i++ {
			out[pos+i] += block[i] * gain
		}
		pos += n

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
	}
	return nil
}

// collectStereo drains buf through the stereo pipeline into a single
// interleaved slice, used as the music loop body.
func collectStereo(ctx context.Context, buf *audio.SampleBuffer) ([]float32, error) {
	src := pipeline(buf)
	defer src.Close()

	var all []float32
	block := make([]float32, 4096*Channels)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := src.ReadSamples(block)
		all = append(all, block[:n]...)

		if err == io.EOF {
			return all, nil
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return all, nil
		}
	}
}
