// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/jesusdc750-hub/Spot-Marker-IA/utils"
)

// Resampler streams from src to a target sample rate using Catmull-Rom
// cubic interpolation over a four-frame window. Channel count is
// preserved. A one-pole low-pass is applied when downsampling to tame
// aliasing.
type Resampler struct {
	src      Source
	ratio    float64 // source frames consumed per output frame
	dstRate  int
	channels int

	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2
	window [4][]float32
	have   [4]bool
	primed bool

	pos    float64 // fractional position between window[1] and window[2]
	srcBuf []float32
	eof    bool

	filter      []float32
	useFilter   bool
	filterAlpha float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		ratio:    ratio,
		dstRate:  dstRate,
		channels: channels,
		srcBuf:   make([]float32, channels),
		filter:   make([]float32, channels),
	}

	// Downsampling needs the low-pass; upsampling does not.
	if ratio > 1.0 {
		r.useFilter = true
		r.filterAlpha = 0.5
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// advance shifts the window left by one frame and pulls the next source
// frame into window[3].
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.have[0], r.have[1], r.have[2] = r.have[1], r.have[2], r.have[3]

	n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
	if n > 0 {
		copy(r.window[3], r.srcBuf[:n])
		r.have[3] = true
		if r.useFilter {
			for c := range r.channels {
				r.window[3][c] = r.filterAlpha*r.window[3][c] + (1-r.filterAlpha)*r.filter[c]
				r.filter[c] = r.window[3][c]
			}
		}
	} else {
		r.have[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.have[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// prime fills the initial four-frame window, duplicating the last valid
// frame when the source is shorter than the window.
func (r *Resampler) prime() error {
	for i := range 4 {
		n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
		if n > 0 {
			copy(r.window[i], r.srcBuf[:n])
			r.have[i] = true
			if i == 0 && r.useFilter {
				copy(r.filter, r.srcBuf[:n])
			}
		}
		if err == io.EOF {
			r.eof = true
			if i == 0 {
				return io.EOF
			}
			for j := i; j < 4; j++ {
				copy(r.window[j], r.window[i-1])
				r.have[j] = true
			}
			break
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	r.primed = true
	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.have[1] || !r.have[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		for c := range r.channels {
			y0 := r.window[1][c]
			if r.have[0] {
				y0 = r.window[0][c]
			}
			y3 := r.window[2][c]
			if r.have[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(
				y0, r.window[1][c], r.window[2][c], y3, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
