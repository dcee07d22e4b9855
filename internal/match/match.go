// Package match locates the longest contiguous block of identical lines
// shared by two line sequences. The edit diagnostics use it to point at
// the region of a file that most closely resembles the text a caller
// asked to replace.
//
// Matching is purely line-based: two lines are equal only if they are
// byte-for-byte identical, terminators included. There is no
// normalisation here - whitespace and line-ending heuristics live in the
// edit package, on top of the span this package reports.
package match

import "strings"

// Span describes a run of identical lines shared by two sequences:
// Length lines starting at RefStart in the reference sequence and at
// TargetStart in the target sequence. A Length of 0 means no line is
// common to both.
type Span struct {
	RefStart    int
	TargetStart int
	Length      int
}

// Lines splits s into lines keeping each line's terminator attached, so
// strings.Join(lines, "") reconstructs s exactly. An empty string yields
// nil; a string without a trailing newline keeps its final partial line.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	// SplitAfter leaves a trailing empty element when s ends with "\n"
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// LongestCommonBlock returns the longest run of identical lines appearing
// contiguously in both ref and target. Ties are broken towards the lowest
// RefStart, then the lowest TargetStart, which keeps diagnostics
// deterministic across runs.
//
// Classic longest-common-substring dynamic programme over line tokens,
// O(len(ref)*len(target)) time and O(len(target)) space. Inputs are
// single files, so the quadratic bound is fine.
func LongestCommonBlock(ref, target []string) Span {
	if len(ref) == 0 || len(target) == 0 {
		return Span{}
	}

	best := Span{}
	prev := make([]int, len(target))
	cur := make([]int, len(target))

	for i := range ref {
		for j := range target {
			if ref[i] != target[j] {
				cur[j] = 0
				continue
			}
			if j == 0 {
				cur[j] = 1
			} else {
				cur[j] = prev[j-1] + 1
			}
			// Strict > keeps the earliest span on ties: equal-length
			// runs found later end (and therefore start) later.
			if cur[j] > best.Length {
				best = Span{
					RefStart:    i - cur[j] + 1,
					TargetStart: j - cur[j] + 1,
					Length:      cur[j],
				}
			}
		}
		prev, cur = cur, prev
	}

	return best
}
