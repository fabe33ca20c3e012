// Package flow models Maestro flow files as ordered command sequences and
// extracts them from parsed YAML documents.
package flow

import "github.com/flowlint/flowlint/pkg/parser"

// Command is one step of a flow: a keyword name plus optional arguments.
// Commands are immutable once built; rules only read them.
type Command struct {
	Name     string
	NameSpan parser.Span
	// Value holds the command's argument node, nil when the command was
	// written as a bare scalar list item.
	Value parser.Node
}

// HasValue reports whether the command carries explicit arguments.
func (c Command) HasValue() bool { return c.Value != nil }

// ValueSpan returns the span of the argument node. Falls back to the name
// span for commands without arguments.
func (c Command) ValueSpan() parser.Span {
	if c.Value != nil {
		return c.Value.Span()
	}
	return c.NameSpan
}

// Sequence is an ordered, independently rule-checkable list of commands.
// A flow yields several: the top-level list plus every nested commands
// block. Sequences are siblings; adjacency never spans two of them.
type Sequence struct {
	Commands []Command
}
