// Package lint runs the flow validation engine: a fixed battery of
// structural and heuristic checks over the command sequences of a parsed
// flow file, each finding mapped back to an exact source range.
package lint

import (
	"fmt"

	"github.com/flowlint/flowlint/pkg/parser"
)

// Severity separates structural problems from heuristic ones.
type Severity int

const (
	// SeverityError marks a command Maestro cannot execute as written.
	SeverityError Severity = iota
	// SeverityWarning marks a legal but suspicious pattern.
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one reported finding. Message embeds the command name (if
// any) and the 1-based line number; consumers display it verbatim and rely
// on that prefix for navigation. Line always equals Range.StartPos.Line+1.
type Diagnostic struct {
	Severity Severity
	Message  string
	Range    parser.Span
	// Command is the command keyword the finding is about, "" for
	// document-level findings such as syntax errors.
	Command string
	Line    int
}

// builder formats rule findings into diagnostics, resolving spans against
// the document's line index and degrading to the document start when a
// finding carries no position.
type builder struct {
	ix *parser.LineIndex
}

// fromSpan builds a diagnostic anchored at span. The span is re-clamped
// through the line index so stale offsets cannot escape the text bounds.
func (b *builder) fromSpan(sev Severity, command string, span parser.Span, template string) Diagnostic {
	span = b.ix.Span(span.Start, span.End)
	line := span.StartPos.Line + 1
	var message string
	if command != "" {
		message = fmt.Sprintf("%s at line %d: %s", command, line, template)
	} else {
		message = fmt.Sprintf("Line %d: %s", line, template)
	}
	return Diagnostic{
		Severity: sev,
		Message:  message,
		Range:    span,
		Command:  command,
		Line:     line,
	}
}

// fromNode anchors a diagnostic at a node's span; a nil node means the
// document start.
func (b *builder) fromNode(sev Severity, command string, node parser.Node, template string) Diagnostic {
	if node == nil {
		return b.fromSpan(sev, command, b.ix.Span(0, 0), template)
	}
	return b.fromSpan(sev, command, node.Span(), template)
}

// syntax wraps one low-level parse failure as an error diagnostic.
func (b *builder) syntax(se parser.SyntaxError) Diagnostic {
	return b.fromSpan(SeverityError, "", se.Span, "YAML syntax error: "+se.Message)
}
