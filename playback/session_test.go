// SPDX-License-Identifier: EPL-2.0

package playback_test

import (
	"encoding/binary"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/jesusdc750-hub/Spot-Marker-IA/audio"
	"github.com/jesusdc750-hub/Spot-Marker-IA/internal/audiotest"
	"github.com/jesusdc750-hub/Spot-Marker-IA/playback"
)

// stubPresenter records draw activity and toggles readiness.
type stubPresenter struct {
	mu     sync.Mutex
	ready  bool
	draws  int
	resets int
}

func (p *stubPresenter) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

func (p *stubPresenter) DrawFrame(elapsed, duration float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draws++
}

func (p *stubPresenter) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resets++
}

func (p *stubPresenter) counts() (draws, resets int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.draws, p.resets
}

func constantBuffer(t *testing.T, channels, frames, rate int, value float32) *audio.SampleBuffer {
	t.Helper()
	buf, err := audio.Collect(audiotest.NewConstantSource(rate, channels, frames, value))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	return buf
}

func newTestManager() (*playback.Manager, *audiotest.MockContext, *stubPresenter) {
	ctx := audiotest.NewMockContext(44100, 2)
	pres := &stubPresenter{ready: true}
	m := playback.NewManager(playback.NewEngineWithContext(ctx), pres, 60)
	return m, ctx, pres
}

func TestPlay_SilentNoOpWithoutVoice(t *testing.T) {
	t.Parallel()

	m, ctx, _ := newTestManager()
	m.Play()

	if m.Playing() {
		t.Error("Playing() = true without a voice track")
	}
	if got := len(ctx.Players()); got != 0 {
		t.Errorf("created %d players, want 0", got)
	}
}

func TestPlay_SilentNoOpWithoutImage(t *testing.T) {
	t.Parallel()

	m, ctx, pres := newTestManager()
	pres.ready = false
	m.SetVoice(constantBuffer(t, 1, 4410, 44100, 0.2))

	m.Play()

	if m.Playing() {
		t.Error("Playing() = true without a ready presenter")
	}
	if got := len(ctx.Players()); got != 0 {
		t.Errorf("created %d players, want 0", got)
	}
}

func TestPlay_StartsVoiceAndMusicTogether(t *testing.T) {
	t.Parallel()

	m, ctx, pres := newTestManager()
	m.SetVoice(constantBuffer(t, 1, 44100, 44100, 0.2))
	m.SetMusic(constantBuffer(t, 2, 4410, 44100, 0.4))

	m.Play()
	defer m.Stop()

	if !m.Playing() {
		t.Fatal("Playing() = false after Play")
	}
	players := ctx.Players()
	if len(players) != 2 {
		t.Fatalf("created %d players, want 2 (voice, music)", len(players))
	}
	for i, p := range players {
		if !p.IsPlaying() {
			t.Errorf("player %d not playing", i)
		}
	}
	if draws, _ := pres.counts(); draws == 0 {
		t.Error("no frame drawn at session start")
	}
}

func TestPlay_VoiceOnlyWithoutMusic(t *testing.T) {
	t.Parallel()

	m, ctx, _ := newTestManager()
	m.SetVoice(constantBuffer(t, 1, 4410, 44100, 0.2))

	m.Play()
	defer m.Stop()

	if got := len(ctx.Players()); got != 1 {
		t.Errorf("created %d players, want 1", got)
	}
}

func TestStop_IdempotentAndSafeWhileIdle(t *testing.T) {
	t.Parallel()

	m, ctx, pres := newTestManager()

	// Stop with no session is a safe no-op that still parks the
	// presenter on the first frame.
	m.Stop()
	if _, resets := pres.counts(); resets != 1 {
		t.Errorf("resets = %d, want 1", resets)
	}

	m.SetVoice(constantBuffer(t, 1, 44100, 44100, 0.2))
	m.Play()
	m.Stop()
	m.Stop()

	if m.Playing() {
		t.Error("Playing() = true after Stop")
	}
	for i, p := range ctx.Players() {
		if !p.Closed() {
			t.Errorf("player %d not closed after Stop", i)
		}
	}
}

func TestStop_NoFramesAfterReturn(t *testing.T) {
	t.Parallel()

	m, _, pres := newTestManager()
	m.SetVoice(constantBuffer(t, 1, 44100, 44100, 0.2))

	m.Play()
	time.Sleep(50 * time.Millisecond)
	m.Stop()

	draws, _ := pres.counts()
	time.Sleep(60 * time.Millisecond)
	if after, _ := pres.counts(); after != draws {
		t.Errorf("frames drawn after Stop: %d then %d", draws, after)
	}
}

func TestAutoStopWhenVoiceEnds(t *testing.T) {
	t.Parallel()

	m, ctx, _ := newTestManager()
	m.SetVoice(constantBuffer(t, 1, 44100, 44100, 0.2))
	m.SetMusic(constantBuffer(t, 2, 44100*10, 44100, 0.4))

	m.Play()
	players := ctx.Players()
	if len(players) != 2 {
		t.Fatalf("created %d players, want 2", len(players))
	}

	// The looping music player never drains on its own; finishing the
	// voice player alone must tear the whole session down.
	players[0].Finish()

	deadline := time.After(2 * time.Second)
	for m.Playing() {
		select {
		case <-deadline:
			t.Fatal("session still running after voice finished")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if !players[1].Closed() {
		t.Error("music player left open after auto-stop")
	}
}

func TestPlay_RestartsFromBeginning(t *testing.T) {
	t.Parallel()

	m, ctx, _ := newTestManager()
	m.SetVoice(constantBuffer(t, 1, 44100, 44100, 0.2))

	m.Play()
	m.Play()
	defer m.Stop()

	players := ctx.Players()
	if len(players) != 2 {
		t.Fatalf("created %d players, want 2 across two Plays", len(players))
	}
	if !players[0].Closed() {
		t.Error("first session's player not closed by restart")
	}
	if !players[1].IsPlaying() {
		t.Error("second session's player not playing")
	}
}

func TestSetVoice_StopsRunningSession(t *testing.T) {
	t.Parallel()

	m, ctx, _ := newTestManager()
	m.SetVoice(constantBuffer(t, 1, 44100, 44100, 0.2))
	m.Play()

	m.SetVoice(constantBuffer(t, 1, 22050, 44100, 0.3))

	if m.Playing() {
		t.Error("Playing() = true after buffer replacement")
	}
	if !ctx.Players()[0].Closed() {
		t.Error("old session's player not closed")
	}
}

func TestSetGain_LiveOnNextBlock(t *testing.T) {
	t.Parallel()

	m, ctx, _ := newTestManager()
	m.SetVoice(constantBuffer(t, 1, 44100, 44100, 0.2))
	m.SetMusic(constantBuffer(t, 2, 4410, 44100, 0.5))
	m.SetGain(1.0)

	m.Play()
	defer m.Stop()

	players := ctx.Players()
	if len(players) != 2 {
		t.Fatalf("created %d players, want 2", len(players))
	}
	music := players[1]

	block, err := music.ReadBlock(512)
	if err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}
	loud := int16(binary.LittleEndian.Uint16(block[:2]))

	m.SetGain(0.5)
	block, err = music.ReadBlock(512)
	if err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}
	soft := int16(binary.LittleEndian.Uint16(block[:2]))

	if soft >= loud || soft == 0 {
		t.Errorf("gain change not applied: loud=%d soft=%d", loud, soft)
	}
	if got := float64(loud) / float64(soft); got < 1.9 || got > 2.1 {
		t.Errorf("loud/soft ratio = %v, want about 2", got)
	}

	// The voice stream ignores the music gain entirely.
	voiceBlock, err := players[0].ReadBlock(512)
	if err != nil && err != io.EOF {
		t.Fatalf("voice ReadBlock() error = %v", err)
	}
	if v := int16(binary.LittleEndian.Uint16(voiceBlock[:2])); v == 0 {
		t.Error("voice silent, expected full-scale samples")
	}
}

func TestGain_Clamped(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestManager()

	m.SetGain(1.7)
	if got := m.Gain(); got != 1 {
		t.Errorf("Gain() = %v, want 1", got)
	}
	m.SetGain(-0.2)
	if got := m.Gain(); got != 0 {
		t.Errorf("Gain() = %v, want 0", got)
	}
}

func TestMusicReaderLoops(t *testing.T) {
	t.Parallel()

	m, ctx, _ := newTestManager()
	m.SetVoice(constantBuffer(t, 1, 44100, 44100, 0.2))
	// 10 ms of music against a 1 s voice track.
	m.SetMusic(constantBuffer(t, 2, 441, 44100, 0.5))
	m.SetGain(1.0)

	m.Play()
	defer m.Stop()

	music := ctx.Players()[1]

	// Pull well past the loop length; a non-looping reader would hit
	// EOF after 441*2 samples.
	total := 0
	for total < 441*2*2*3 {
		block, err := music.ReadBlock(1024)
		if err != nil {
			t.Fatalf("music stream ended after %d bytes: %v", total, err)
		}
		total += len(block)
	}
}
