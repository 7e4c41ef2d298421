// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"
)

func TestChannelMixer_Passthrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 2, 100, 0.5)
	mixer := NewChannelMixer(src, 2)

	if mixer.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", mixer.Channels())
	}

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}
	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestChannelMixer_MonoToStereo(t *testing.T) {
	t.Parallel()

	src := newMockSource(24000, 1, 100, func(sample, channel int) float32 {
		return float32(sample) / 100.0
	})
	mixer := NewChannelMixer(src, 2)

	buf := make([]float32, 20)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 20 {
		t.Fatalf("ReadSamples() n = %d, want 20", n)
	}

	// The mono signal lands identically in both channels.
	for f := range 10 {
		want := float32(f) / 100.0
		if buf[f*2] != want || buf[f*2+1] != want {
			t.Errorf("frame %d = (%v, %v), want both %v", f, buf[f*2], buf[f*2+1], want)
		}
	}
}

func TestChannelMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 100, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.4
		}
		return 0.6
	})
	mixer := NewChannelMixer(src, 1)

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	for i := range n {
		if math.Abs(float64(buf[i]-0.5)) > 0.001 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestChannelMixer_QuadToStereo(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 4, 100, func(sample, channel int) float32 {
		return float32(channel) / 10.0 // 0.0, 0.1, 0.2, 0.3
	})
	mixer := NewChannelMixer(src, 2)

	buf := make([]float32, 8)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	// Average 0.15 on both channels.
	for i := range n {
		if math.Abs(float64(buf[i]-0.15)) > 0.001 {
			t.Errorf("buf[%d] = %v, want 0.15", i, buf[i])
		}
	}
}

func TestChannelMixer_EOF(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 5)
	mixer := NewChannelMixer(src, 2)

	buf := make([]float32, 20)
	n, err := mixer.ReadSamples(buf)
	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}
