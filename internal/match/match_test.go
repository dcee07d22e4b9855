package match

import (
	"strings"
	"testing"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "single line with newline",
			input: "a\n",
			want:  []string{"a\n"},
		},
		{
			name:  "single line without newline",
			input: "a",
			want:  []string{"a"},
		},
		{
			name:  "multiple lines",
			input: "a\nb\nc\n",
			want:  []string{"a\n", "b\n", "c\n"},
		},
		{
			name:  "trailing partial line",
			input: "a\nb",
			want:  []string{"a\n", "b"},
		},
		{
			name:  "crlf terminators kept",
			input: "a\r\nb\r\n",
			want:  []string{"a\r\n", "b\r\n"},
		},
		{
			name:  "blank lines preserved",
			input: "a\n\nb\n",
			want:  []string{"a\n", "\n", "b\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Lines(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Lines(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
			// Splitting must be lossless
			if joined := strings.Join(got, ""); joined != tt.input {
				t.Errorf("join(Lines(%q)) = %q, round trip broken", tt.input, joined)
			}
		})
	}
}

func TestLongestCommonBlock(t *testing.T) {
	tests := []struct {
		name   string
		ref    []string
		target []string
		want   Span
	}{
		{
			name:   "both empty",
			ref:    nil,
			target: nil,
			want:   Span{},
		},
		{
			name:   "empty target",
			ref:    []string{"a\n"},
			target: nil,
			want:   Span{},
		},
		{
			name:   "no common line",
			ref:    []string{"a\n", "b\n"},
			target: []string{"c\n", "d\n"},
			want:   Span{},
		},
		{
			name:   "identical sequences",
			ref:    []string{"a\n", "b\n", "c\n"},
			target: []string{"a\n", "b\n", "c\n"},
			want:   Span{RefStart: 0, TargetStart: 0, Length: 3},
		},
		{
			name:   "block in the middle",
			ref:    []string{"x\n", "a\n", "b\n", "y\n"},
			target: []string{"a\n", "b\n"},
			want:   Span{RefStart: 1, TargetStart: 0, Length: 2},
		},
		{
			name:   "longest of several blocks wins",
			ref:    []string{"a\n", "x\n", "a\n", "b\n", "c\n"},
			target: []string{"a\n", "b\n", "c\n"},
			want:   Span{RefStart: 2, TargetStart: 0, Length: 3},
		},
		{
			name:   "tie goes to lowest reference index",
			ref:    []string{"a\n", "x\n", "a\n"},
			target: []string{"a\n"},
			want:   Span{RefStart: 0, TargetStart: 0, Length: 1},
		},
		{
			name:   "tie at same reference index goes to lowest target index",
			ref:    []string{"a\n"},
			target: []string{"a\n", "x\n", "a\n"},
			want:   Span{RefStart: 0, TargetStart: 0, Length: 1},
		},
		{
			name:   "terminators matter",
			ref:    []string{"a\r\n"},
			target: []string{"a\n"},
			want:   Span{},
		},
		{
			name:   "single common line among noise",
			ref:    []string{"p\n", "q\n", "b\n", "r\n"},
			target: []string{"z\n", "b\n"},
			want:   Span{RefStart: 2, TargetStart: 1, Length: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LongestCommonBlock(tt.ref, tt.target)
			if got != tt.want {
				t.Errorf("LongestCommonBlock() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLongestCommonBlockIsPure(t *testing.T) {
	ref := []string{"a\n", "b\n", "c\n"}
	target := []string{"b\n", "c\n"}

	first := LongestCommonBlock(ref, target)
	second := LongestCommonBlock(ref, target)
	if first != second {
		t.Errorf("repeated calls differ: %+v then %+v", first, second)
	}
	if ref[0] != "a\n" || target[0] != "b\n" {
		t.Error("inputs were mutated")
	}
}
