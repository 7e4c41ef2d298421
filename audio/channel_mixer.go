// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelMixer adapts a Source to a target channel count. Downmixing
// averages the source channels; mono input spread to stereo duplicates
// the single channel into both outputs.
type ChannelMixer struct {
	src      Source
	channels int
	tmp      []float32
}

// NewChannelMixer wraps src so it reads back with the given channel
// count (1 or 2).
func NewChannelMixer(src Source, channels int) *ChannelMixer {
	return &ChannelMixer{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 4096),
	}
}

func (m *ChannelMixer) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMixer) Channels() int   { return m.channels }
func (m *ChannelMixer) BufSize() int    { return m.src.BufSize() }

func (m *ChannelMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	srcCh := m.src.Channels()
	if srcCh == m.channels {
		return m.src.ReadSamples(dst)
	}
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / m.channels
	needed := frames * srcCh

	// Grow tmp if needed; never shrink to avoid thrashing.
	if cap(m.tmp) < needed {
		newCap := needed
		if newCap < 8192 {
			newCap = 8192
		}
		m.tmp = make([]float32, newCap)
	}
	m.tmp = m.tmp[:needed]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	got := n / srcCh

	switch {
	case m.channels == 2 && srcCh == 1:
		// Mono spread: same signal in both channels.
		for f := range got {
			dst[f*2] = m.tmp[f]
			dst[f*2+1] = m.tmp[f]
		}
	case m.channels == 2:
		// More than two channels: average everything into a center
		// signal and present it on both outputs.
		inv := float32(1.0) / float32(srcCh)
		for f := range got {
			sum := float32(0)
			base := f * srcCh
			for c := range srcCh {
				sum += m.tmp[base+c]
			}
			dst[f*2] = sum * inv
			dst[f*2+1] = sum * inv
		}
	case srcCh == 2:
		// Stereo to mono, the common downmix.
		for f := range got {
			dst[f] = (m.tmp[f*2] + m.tmp[f*2+1]) * 0.5
		}
	default:
		inv := float32(1.0) / float32(srcCh)
		for f := range got {
			sum := float32(0)
			base := f * srcCh
			for c := range srcCh {
				sum += m.tmp[base+c]
			}
			dst[f] = sum * inv
		}
	}

	return got * m.channels, err
}
