// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"sync"
	"time"

	"github.com/jesusdc750-hub/Spot-Marker-IA/audio"
	"github.com/jesusdc750-hub/Spot-Marker-IA/render"
)

// DefaultGain is the initial music gain level.
const DefaultGain = 0.3

// voicePollInterval is how often the end-of-voice watcher checks the
// voice player.
const voicePollInterval = 25 * time.Millisecond

// Presenter is the visual half of a session. The manager drives it
// from the animation clock while audio plays and parks it on the first
// frame when idle.
type Presenter interface {
	// Ready reports whether the presenter has an image to draw.
	Ready() bool
	// DrawFrame renders the frame for the given elapsed time against
	// the voice duration, both in seconds.
	DrawFrame(elapsed, duration float64)
	// Reset redraws the initial frame.
	Reset()
}

// Manager runs preview sessions against a playback engine. It holds
// the loaded voice and music buffers and is either idle or running
// exactly one session; starting a new session or replacing a buffer
// tears the current one down first.
//
// All methods are safe for concurrent use.
type Manager struct {
	engine    *Engine
	presenter Presenter
	gain      *Gain
	fps       int

	mu    sync.Mutex
	voice *audio.SampleBuffer
	music *audio.SampleBuffer
	sess  *session
}

// session is one live playback run: its players, its animation clock
// and a done channel that releases the end-of-voice watcher.
type session struct {
	voicePlayer Player
	musicPlayer Player
	clock       *render.Clock
	done        chan struct{}
}

// NewManager creates an idle manager drawing on presenter at fps
// frames per second. The gain starts at DefaultGain.
func NewManager(engine *Engine, presenter Presenter, fps int) *Manager {
	if fps <= 0 {
		fps = render.DefaultFPS
	}
	return &Manager{
		engine:    engine,
		presenter: presenter,
		gain:      NewGain(DefaultGain),
		fps:       fps,
	}
}

// SetVoice replaces the voice track. Any running session stops first;
// the next Play uses the new buffer. A nil buffer clears the track.
func (m *Manager) SetVoice(buf *audio.SampleBuffer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
	m.voice = buf
}

// SetMusic replaces the music bed, stopping any running session. A nil
// buffer clears it; playback then runs voice-only.
func (m *Manager) SetMusic(buf *audio.SampleBuffer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
	m.music = buf
}

// SetGain adjusts the music level, clamped to [0, 1]. A running
// session picks the new level up on its next audio block; the voice
// track is never affected.
func (m *Manager) SetGain(level float64) {
	m.gain.SetLevel(level)
}

// Gain returns the current music gain level.
func (m *Manager) Gain() float64 {
	return m.gain.Level()
}

// Playing reports whether a session is currently running.
func (m *Manager) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess != nil
}

// Play starts a synchronized session: voice and music players and the
// animation clock all begin from offset zero together.
//
// Without a voice buffer, or with a presenter that has no image yet,
// Play is a silent no-op. If a session is already running it is
// stopped and a fresh one starts from the beginning.
func (m *Manager) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.voice == nil || !m.presenter.Ready() {
		return
	}
	m.stopLocked()

	// Errors here mean the platform refused to wake; the players below
	// will simply stay silent, matching an unavailable device.
	_ = m.engine.Resume()

	rate := m.engine.SampleRate()
	channels := m.engine.ChannelCount()

	voicePCM, err := renderTrack(m.voice, rate, channels)
	if err != nil {
		return
	}
	var musicPCM []float32
	if m.music != nil && m.music.Frames() > 0 {
		if musicPCM, err = renderTrack(m.music, rate, channels); err != nil {
			return
		}
	}

	s := &session{done: make(chan struct{})}
	s.voicePlayer = m.engine.ctx.NewPlayer(&trackReader{samples: voicePCM})
	if len(musicPCM) > 0 {
		s.musicPlayer = m.engine.ctx.NewPlayer(&trackReader{
			samples: musicPCM,
			loop:    true,
			gain:    m.gain,
		})
	}

	duration := m.voice.Seconds()
	s.clock = render.StartClock(m.fps, func(elapsed float64) {
		m.presenter.DrawFrame(elapsed, duration)
	})

	s.voicePlayer.Play()
	if s.musicPlayer != nil {
		s.musicPlayer.Play()
	}
	m.sess = s

	go m.watchVoice(s)
}

// Stop tears the current session down: players closed, clock joined,
// presenter reset to the first frame. It is idempotent, safe to call
// while idle, and swallows teardown errors. No frame is drawn after
// Stop returns.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
}

func (m *Manager) stopLocked() {
	s := m.sess
	if s == nil {
		m.presenter.Reset()
		return
	}
	m.sess = nil
	close(s.done)

	s.clock.Stop()
	_ = s.voicePlayer.Close()
	if s.musicPlayer != nil {
		_ = s.musicPlayer.Close()
	}
	m.presenter.Reset()
}

// watchVoice stops the session once the voice player drains. Music
// length never extends a session; the looping bed would play forever
// otherwise.
func (m *Manager) watchVoice(s *session) {
	for {
		select {
		case <-s.done:
			return
		case <-time.After(voicePollInterval):
		}
		if !s.voicePlayer.IsPlaying() {
			break
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == s {
		m.stopLocked()
	}
}
