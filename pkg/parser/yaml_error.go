package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// goccy parse errors lead with a "[line:column] message" header; the
// annotated source snippet follows on later lines.
var bracketErrPattern = regexp.MustCompile(`^\[(\d+):(\d+)\]\s*(.+)$`)

// yaml.v3-style errors read "yaml: line N: message".
var lineErrPattern = regexp.MustCompile(`yaml: line (\d+): (.+)`)

// extractSyntaxError pulls a position out of a YAML parse error. baseLine
// shifts the reported line when the error came from a document chunk. When
// no position can be recovered the error anchors to the document start.
func extractSyntaxError(err error, ix *LineIndex, baseLine int) SyntaxError {
	msg := err.Error()
	firstLine := msg
	if idx := strings.IndexByte(msg, '\n'); idx >= 0 {
		firstLine = msg[:idx]
	}

	if m := bracketErrPattern.FindStringSubmatch(firstLine); m != nil {
		line, _ := strconv.Atoi(m[1])
		column, _ := strconv.Atoi(m[2])
		start := ix.Offset(line+baseLine, column)
		return SyntaxError{Message: m[3], Span: ix.Span(start, start)}
	}

	if m := lineErrPattern.FindStringSubmatch(firstLine); m != nil {
		line, _ := strconv.Atoi(m[1])
		start := ix.Offset(line+baseLine, 1)
		return SyntaxError{Message: m[2], Span: ix.Span(start, start)}
	}

	return SyntaxError{Message: firstLine, Span: ix.Span(0, 0)}
}
