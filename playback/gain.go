// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"math"
	"sync/atomic"
)

// Gain is a shared music gain level in [0, 1]. It is read by the music
// stream on every rendered block, so a SetLevel call takes effect on
// the next block without recreating any player.
type Gain struct {
	bits atomic.Uint64
}

// NewGain returns a gain at the given level, clamped to [0, 1].
func NewGain(level float64) *Gain {
	g := &Gain{}
	g.SetLevel(level)
	return g
}

func (g *Gain) Level() float64 {
	return math.Float64frombits(g.bits.Load())
}

// SetLevel clamps level to [0, 1] and stores it.
func (g *Gain) SetLevel(level float64) {
	if level < 0 {
		level = 0
	} else if level > 1 {
		level = 1
	}
	g.bits.Store(math.Float64bits(level))
}
