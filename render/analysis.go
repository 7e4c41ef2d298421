// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image/color"
	"strings"
)

// headlineMaxLen is the display cutoff for headlines; longer ones are
// truncated with an ellipsis.
const headlineMaxLen = 30

// AnalysisResult carries the creative metadata extracted from an
// uploaded image. Only Headline and BrandColors affect rendering; the
// rest is informational.
type AnalysisResult struct {
	Headline         string
	BrandColors      []string
	Mood             string
	DetectedProducts []string
}

// DisplayHeadline returns the headline capped at 30 characters, with
// an ellipsis when truncated. The cap counts runes, so multi-byte
// headlines are never cut mid-character.
func (a *AnalysisResult) DisplayHeadline() string {
	r := []rune(a.Headline)
	if len(r) <= headlineMaxLen {
		return a.Headline
	}
	return string(r[:headlineMaxLen]) + "..."
}

// PrimaryColor returns the first parseable brand color, or white when
// none parses. Malformed entries are skipped, never an error.
func (a *AnalysisResult) PrimaryColor() color.RGBA {
	for _, s := range a.BrandColors {
		if c, ok := parseHexColor(s); ok {
			return c
		}
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

// parseHexColor accepts "#rgb" and "#rrggbb", case-insensitive.
func parseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, false
	}
	s = s[1:]

	var vals [3]uint8
	switch len(s) {
	case 3:
		for i := range 3 {
			v, ok := hexNibble(s[i])
			if !ok {
				return color.RGBA{}, false
			}
			vals[i] = v<<4 | v
		}
	case 6:
		for i := range 3 {
			hi, ok1 := hexNibble(s[i*2])
			lo, ok2 := hexNibble(s[i*2+1])
			if !ok1 || !ok2 {
				return color.RGBA{}, false
			}
			vals[i] = hi<<4 | lo
		}
	default:
		return color.RGBA{}, false
	}

	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: 0xff}, true
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
