// SPDX-License-Identifier: EPL-2.0

// Package playback runs the live preview: a voice track, an optional
// looping music bed and a frame presenter, all started together and
// torn down together.
//
// The Engine wraps the single platform audio context and is injected
// into a Manager, so multiple managers can share one device and tests
// can swap in a mock Context. The Manager is a two-state machine, idle
// or playing; pausing is not a third state, stopping and replaying
// from the start is the whole model.
//
//	engine, err := playback.NewEngine()
//	m := playback.NewManager(engine, renderer, 30)
//	m.SetVoice(voice)
//	m.Play()
//
// Music gain is live: SetGain on a running session changes the bed
// level on the next audio block without touching the voice player.
package playback
