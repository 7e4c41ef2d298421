// SPDX-License-Identifier: EPL-2.0

package spotmarker

import (
	"context"
	"fmt"

	"github.com/jesusdc750-hub/Spot-Marker-IA/audio"
	"github.com/jesusdc750-hub/Spot-Marker-IA/formats"
	"github.com/jesusdc750-hub/Spot-Marker-IA/mixdown"
)

// VoiceFromPCM builds the narration buffer from the raw 16-bit LE PCM
// the speech synthesizer emits, mono at 24 kHz. A trailing odd byte is
// dropped; empty input is an error.
func VoiceFromPCM(raw []byte) (*audio.SampleBuffer, error) {
	return audio.FromRawPCM16(raw, audio.DefaultVoiceRate)
}

// DecodeMusicFile decodes an uploaded music file into a buffer. The
// container is sniffed from the bytes; WAV, MP3, Ogg Vorbis and AIFF
// are accepted. On failure nothing is partially decoded, the caller's
// current music track stays as it was.
func DecodeMusicFile(data []byte) (*audio.SampleBuffer, error) {
	src, err := formats.Decode(data)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	buf, err := audio.Collect(src)
	if err != nil {
		return nil, fmt.Errorf("decoding music: %w", err)
	}
	return buf, nil
}

// ExportWAV mixes voice and optional music into the downloadable
// stereo 44.1 kHz WAV. Gain scales the music bed only.
func ExportWAV(ctx context.Context, voice, music *audio.SampleBuffer, gain float64) (*mixdown.Result, error) {
	return mixdown.Render(ctx, voice, music, gain)
}
