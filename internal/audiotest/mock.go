// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides shared test doubles: generated audio
// sources and a mock playback engine.
package audiotest

import (
	"errors"
	"io"
	"math"
	"sync"

	"github.com/jesusdc750-hub/Spot-Marker-IA/playback"
)

// MockSource generates audio data for tests. It implements the
// audio.Source interface without importing it, to stay usable from any
// package.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample, channel int) float32
}

// NewMockSource creates a source producing totalSamples samples per
// channel from the waveform function.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource generates all zeros.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(_, _ int) float32 {
		return 0
	})
}

// NewSineSource generates a sine wave at the given frequency.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource generates a constant value on every channel.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(_, _ int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if avail := m.totalSamples - m.generated; frames > avail {
		frames = avail
	}

	for frame := range frames {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}
	m.generated += frames

	return frames * m.channels, nil
}

// MockContext implements playback.Context, recording every player it
// hands out so tests can inspect and drive them.
type MockContext struct {
	rate     int
	channels int

	mu      sync.Mutex
	players []*MockPlayer
	resumed int
}

// NewMockContext creates a context reporting the given output format.
func NewMockContext(rate, channels int) *MockContext {
	return &MockContext{rate: rate, channels: channels}
}

func (c *MockContext) NewPlayer(r io.Reader) playback.Player {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := &MockPlayer{reader: r}
	c.players = append(c.players, p)
	return p
}

func (c *MockContext) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resumed++
	return nil
}

func (c *MockContext) SampleRate() int   { return c.rate }
func (c *MockContext) ChannelCount() int { return c.channels }

// Players returns every player created so far, in creation order.
func (c *MockContext) Players() []*MockPlayer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*MockPlayer(nil), c.players...)
}

// Resumed reports how many times the context was resumed.
func (c *MockContext) Resumed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resumed
}

// MockPlayer implements playback.Player. Tests drive its lifecycle:
// Finish simulates the stream running out, ReadBlock pulls rendered
// bytes from the player's reader.
type MockPlayer struct {
	mu       sync.Mutex
	reader   io.Reader
	playing  bool
	closed   bool
	finished bool
}

func (p *MockPlayer) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.playing = true
	}
}

func (p *MockPlayer) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing && !p.finished && !p.closed
}

// Close marks the player closed. A second Close returns an error, the
// way a real device handle would.
func (p *MockPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errors.New("player already closed")
	}
	p.closed = true
	p.playing = false
	return nil
}

// Finish simulates the player draining its stream.
func (p *MockPlayer) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finished = true
}

// Closed reports whether Close has been called.
func (p *MockPlayer) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// ReadBlock pulls up to n bytes from the player's stream, the way the
// device would when rendering a block.
func (p *MockPlayer) ReadBlock(n int) ([]byte, error) {
	p.mu.Lock()
	r := p.reader
	p.mu.Unlock()

	buf := make([]byte, n)
	m, err := r.Read(buf)
	return buf[:m], err
}
