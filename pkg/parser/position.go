package parser

import "sort"

// Position is a zero-based line/column location in source text.
type Position struct {
	Line   int
	Column int
}

// Span is a half-open character interval [Start, End) with resolved
// line/column positions for both endpoints.
type Span struct {
	Start    int
	End      int
	StartPos Position
	EndPos   Position
}

// LineIndex resolves absolute text offsets to line/column positions.
// Line starts are collected in a single linear scan; each lookup is a
// binary search over the line-start table.
type LineIndex struct {
	starts []int
	length int
}

// NewLineIndex builds the line-start table for text. Offset 0 is always a
// line start; every offset immediately following a line feed is another.
func NewLineIndex(text string) *LineIndex {
	starts := make([]int, 1, 64)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts, length: len(text)}
}

// Position resolves an absolute offset to a zero-based line/column pair.
// Offsets are clamped to [0, len(text)]; offsets past the end of the text
// resolve to the last line.
func (ix *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > ix.length {
		offset = ix.length
	}
	// First line whose start is greater than offset, minus one.
	line := sort.Search(len(ix.starts), func(i int) bool { return ix.starts[i] > offset }) - 1
	return Position{Line: line, Column: offset - ix.starts[line]}
}

// Offset converts a one-based line/column pair, as reported by the YAML
// tokenizer, back to an absolute offset. Out-of-range lines clamp to the
// first or last line; the result is clamped to [0, len(text)].
func (ix *LineIndex) Offset(line, column int) int {
	idx := line - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ix.starts) {
		idx = len(ix.starts) - 1
	}
	off := ix.starts[idx] + column - 1
	if off < 0 {
		off = 0
	}
	if off > ix.length {
		off = ix.length
	}
	return off
}

// Span resolves a half-open offset interval into a Span with positions.
// Both endpoints are clamped to [0, len(text)].
func (ix *LineIndex) Span(start, end int) Span {
	if start < 0 {
		start = 0
	}
	if start > ix.length {
		start = ix.length
	}
	if end < start {
		end = start
	}
	if end > ix.length {
		end = ix.length
	}
	return Span{
		Start:    start,
		End:      end,
		StartPos: ix.Position(start),
		EndPos:   ix.Position(end),
	}
}

// LineCount returns the number of lines in the indexed text. Empty text
// still counts as a single line.
func (ix *LineIndex) LineCount() int {
	return len(ix.starts)
}
