// SPDX-License-Identifier: EPL-2.0

package render

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStartClock_FiresFrames(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var elapsed []float64

	c := StartClock(100, func(e float64) {
		mu.Lock()
		elapsed = append(elapsed, e)
		mu.Unlock()
	})

	time.Sleep(100 * time.Millisecond)
	c.Stop()

	mu.Lock()
	defer mu.Unlock()

	if len(elapsed) < 2 {
		t.Fatalf("got %d frames, want at least 2", len(elapsed))
	}
	if elapsed[0] != 0 {
		t.Errorf("first frame elapsed = %v, want 0", elapsed[0])
	}
	for i := 1; i < len(elapsed); i++ {
		if elapsed[i] < elapsed[i-1] {
			t.Fatalf("elapsed went backwards: %v after %v", elapsed[i], elapsed[i-1])
		}
	}
}

func TestClock_StopIsIdempotentAndFinal(t *testing.T) {
	t.Parallel()

	var frames atomic.Int64
	c := StartClock(200, func(float64) { frames.Add(1) })

	time.Sleep(50 * time.Millisecond)
	c.Stop()
	c.Stop()

	after := frames.Load()
	time.Sleep(50 * time.Millisecond)
	if got := frames.Load(); got != after {
		t.Errorf("frames fired after Stop: %d then %d", after, got)
	}
}

func TestStartClock_ZeroFPSUsesDefault(t *testing.T) {
	t.Parallel()

	c := StartClock(0, func(float64) {})
	c.Stop()
}
