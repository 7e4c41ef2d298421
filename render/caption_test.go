// SPDX-License-Identifier: EPL-2.0

package render

import (
	"reflect"
	"strings"
	"testing"
)

// fixedMeasurer charges ten pixels per character.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureTextWidth(text string) float64 {
	return float64(len(text)) * 10
}

func TestCaptionChunks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script string
		want   []string
	}{
		{
			"sixteen words split evenly",
			"a b c d e f g h i j k l m n o p",
			[]string{"a b c d e f g h", "i j k l m n o p"},
		},
		{
			"short tail chunk",
			"one two three four five six seven eight nine",
			[]string{"one two three four five six seven eight", "nine"},
		},
		{"single word", "hello", []string{"hello"}},
		{"collapses whitespace", "  a   b\tc\n", []string{"a b c"}},
		{"empty", "", nil},
		{"whitespace only", "   \n\t ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CaptionChunks(tt.script); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CaptionChunks(%q) = %v, want %v", tt.script, got, tt.want)
			}
		})
	}
}

func TestActiveChunk(t *testing.T) {
	t.Parallel()

	chunks := CaptionChunks("a b c d e f g h i j k l m n o p")

	tests := []struct {
		p    float64
		want string
	}{
		{0, "a b c d e f g h"},
		{0.49, "a b c d e f g h"},
		{0.5, "i j k l m n o p"},
		{0.6, "i j k l m n o p"},
		{1, "i j k l m n o p"},
	}

	for _, tt := range tests {
		if got := ActiveChunk(chunks, tt.p); got != tt.want {
			t.Errorf("ActiveChunk(p=%v) = %q, want %q", tt.p, got, tt.want)
		}
	}

	if got := ActiveChunk(nil, 0.5); got != "" {
		t.Errorf("ActiveChunk(nil) = %q, want empty", got)
	}
}

func TestWrapText(t *testing.T) {
	t.Parallel()

	m := fixedMeasurer{}

	got := WrapText(m, "alpha beta gamma delta", 120)
	want := []string{"alpha beta", "gamma delta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WrapText = %v, want %v", got, want)
	}

	// A word wider than the limit still lands on its own line.
	long := strings.Repeat("x", 30)
	got = WrapText(m, "short "+long, 120)
	if len(got) != 2 || got[1] != long {
		t.Errorf("WrapText with oversized word = %v", got)
	}

	if got := WrapText(m, "", 120); got != nil {
		t.Errorf("WrapText(empty) = %v, want nil", got)
	}
}
