// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"io"

	"github.com/hajimehoshi/oto/v2"
)

// DefaultSampleRate is the engine output rate.
const DefaultSampleRate = 44100

// engineChannels is the engine output channel count (stereo).
const engineChannels = 2

// Context abstracts the platform audio engine so sessions can run
// against a mock in tests.
type Context interface {
	// NewPlayer creates a player that consumes 16-bit LE PCM from r.
	NewPlayer(r io.Reader) Player
	// Resume wakes a suspended engine. Called before each session start.
	Resume() error

	SampleRate() int
	ChannelCount() int
}

// Player is one live audio source. Volume is not part of the surface;
// the music gain is applied while rendering the PCM stream, so live
// and offline paths share one scaling point.
type Player interface {
	Play()
	IsPlaying() bool
	Close() error
}

// Engine owns the playback context. The underlying platform allows a
// single context per process, so the application constructs one Engine
// at startup and injects it wherever playback is needed.
type Engine struct {
	ctx Context
}

// NewEngine opens the platform audio device at the default stereo
// 44.1 kHz format.
func NewEngine() (*Engine, error) {
	octx, ready, err := oto.NewContext(DefaultSampleRate, engineChannels, 2)
	if err != nil {
		return nil, fmt.Errorf("opening audio context: %w", err)
	}

	return &Engine{ctx: &otoContext{
		ctx:      octx,
		ready:    ready,
		rate:     DefaultSampleRate,
		channels: engineChannels,
	}}, nil
}

// NewEngineWithContext wraps an existing context (mock or custom).
func NewEngineWithContext(ctx Context) *Engine {
	return &Engine{ctx: ctx}
}

func (e *Engine) SampleRate() int   { return e.ctx.SampleRate() }
func (e *Engine) ChannelCount() int { return e.ctx.ChannelCount() }

// Resume wakes the engine if the platform suspended it while idle.
func (e *Engine) Resume() error {
	return e.ctx.Resume()
}

// otoContext adapts *oto.Context to the Context interface.
type otoContext struct {
	ctx      *oto.Context
	ready    chan struct{}
	rate     int
	channels int
}

func (c *otoContext) NewPlayer(r io.Reader) Player {
	return c.ctx.NewPlayer(r)
}

func (c *otoContext) Resume() error {
	// The device may still be warming up from NewContext; playback
	// would start on its own, but waiting here keeps start timing and
	// the animation clock aligned.
	select {
	case <-c.ready:
	default:
	}
	return c.ctx.Resume()
}

func (c *otoContext) SampleRate() int   { return c.rate }
func (c *otoContext) ChannelCount() int { return c.channels }
