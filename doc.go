// SPDX-License-Identifier: EPL-2.0

// Package spotmarker turns an image, a script and synthesized speech
// into a finished audio ad spot with a synchronized visual preview.
//
// The pipeline has three halves:
//
//   - audio and formats hold the decoded tracks: raw synthesis PCM
//     becomes the voice buffer, an uploaded WAV/MP3/Ogg/AIFF file
//     becomes the looping music bed.
//   - playback and render run the live preview: a Ken Burns animation
//     over the image, captions following the script, voice and music
//     playing together with an adjustable music gain.
//   - mixdown renders the same mix offline into a stereo 44.1 kHz WAV
//     for download.
//
// # Quick Start
//
//	voice, err := spotmarker.VoiceFromPCM(ttsBytes)
//	if err != nil {
//	    // empty synthesis output
//	}
//	music, err := spotmarker.DecodeMusicFile(uploadBytes)
//	if err != nil {
//	    // unsupported or corrupt file; keep the previous track
//	}
//
//	res, err := spotmarker.ExportWAV(ctx, voice, music, 0.3)
//	// res.Data is a complete WAV container
//
// For the live preview, wire a playback.Manager to a render.Renderer;
// see those packages.
package spotmarker
