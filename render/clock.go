// SPDX-License-Identifier: EPL-2.0

package render

import (
	"sync"
	"time"
)

// DefaultFPS is the preview frame rate.
const DefaultFPS = 30

// Clock drives the animation frame loop. Elapsed time is always
// measured from the timestamp captured at start, never accumulated
// from tick deltas, so a stalled tick cannot drift the animation away
// from the audio.
type Clock struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// StartClock begins a frame loop at fps frames per second. The frame
// callback receives the elapsed seconds since the clock started; it is
// invoked once immediately with zero, then from a single goroutine on
// every tick.
func StartClock(fps int, frame func(elapsed float64)) *Clock {
	if fps <= 0 {
		fps = DefaultFPS
	}
	c := &Clock{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	start := time.Now()
	frame(0)

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()
		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
			}
			// Re-check so a tick racing Stop cannot slip a frame out.
			select {
			case <-c.stop:
				return
			default:
			}
			frame(time.Since(start).Seconds())
		}
	}()

	return c
}

// Stop cancels the loop and waits for it to exit. After Stop returns
// the frame callback will not run again. Stop is idempotent.
func (c *Clock) Stop() {
	c.once.Do(func() { close(c.stop) })
	<-c.done
}
