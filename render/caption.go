// SPDX-License-Identifier: EPL-2.0

package render

import "strings"

// captionChunkWords is how many script words each caption shows.
const captionChunkWords = 8

// TextMeasurer reports rendered text width in pixels. The renderer's
// font face provides it; tests substitute a fixed-width fake.
type TextMeasurer interface {
	MeasureTextWidth(text string) float64
}

// CaptionChunks splits a script into caption-sized word groups. The
// last chunk may be shorter; an empty or whitespace-only script yields
// nil.
func CaptionChunks(script string) []string {
	words := strings.Fields(script)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(words)+captionChunkWords-1)/captionChunkWords)
	for i := 0; i < len(words); i += captionChunkWords {
		end := min(i+captionChunkWords, len(words))
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

// ActiveChunk selects the caption for progress p. Chunk switching is
// uniform over the spot; p = 1 still shows the last chunk.
func ActiveChunk(chunks []string, p float64) string {
	if len(chunks) == 0 {
		return ""
	}
	idx := int(p * float64(len(chunks)))
	if idx >= len(chunks) {
		idx = len(chunks) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return chunks[idx]
}

// WrapText greedily breaks text into lines no wider than maxWidth. A
// single word wider than maxWidth gets its own overflowing line rather
// than being split.
func WrapText(m TextMeasurer, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if m.MeasureTextWidth(candidate) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
