// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jesusdc750-hub/Spot-Marker-IA/audio"
	"github.com/jesusdc750-hub/Spot-Marker-IA/formats/wav"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"wav", append([]byte("RIFF\x24\x00\x00\x00WAVE"), make([]byte, 8)...), "wav"},
		{"ogg", []byte("OggS\x00rest-of-page"), "ogg"},
		{"aiff", []byte("FORM\x00\x00\x00\x10AIFFCOMM"), "aiff"},
		{"aifc", []byte("FORM\x00\x00\x00\x10AIFCCOMM"), "aiff"},
		{"mp3 id3", []byte("ID3\x04\x00\x00\x00\x00\x00\x00"), "mp3"},
		{"mp3 frame sync", []byte{0xFF, 0xFB, 0x90, 0x00}, "mp3"},
		{"unknown", []byte("definitely nothing"), ""},
		{"empty", nil, ""},
		{"riff but not wave", []byte("RIFF\x24\x00\x00\x00AVI LIST"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Detect(tt.in); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode_Wav(t *testing.T) {
	t.Parallel()

	var file bytes.Buffer
	if err := wav.WritePCM16(&file, 44100, 2, []int16{1, 2, 3, 4}); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	src, err := Decode(file.Bytes())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestDecode_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("random junk that is no audio"))
	if !errors.Is(err, audio.ErrUnsupportedAudioFormat) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedAudioFormat", err)
	}
}

func TestDecode_CorruptDetectedFormat(t *testing.T) {
	t.Parallel()

	// Looks like Ogg but the page is truncated garbage.
	_, err := Decode([]byte("OggS but nothing valid follows"))
	if !errors.Is(err, audio.ErrUnsupportedAudioFormat) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedAudioFormat", err)
	}
}
