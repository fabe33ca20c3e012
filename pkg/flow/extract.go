package flow

import (
	"strings"

	"github.com/flowlint/flowlint/pkg/parser"
)

// maxNestingDepth bounds the recursive descent into nested commands
// blocks. Well-formed flows nest a handful of levels at most; the bound
// only guards against pathological self-referencing input.
const maxNestingDepth = 100

// ExtractCommands turns one YAML sequence into an ordered command list.
// Items are normalized per shape: a scalar item is a bare command name, a
// mapping item contributes only its first key/value pair. Blank scalars,
// empty mappings, non-scalar keys and any other item shape are skipped;
// malformed content is the rule set's concern, not the extractor's.
func ExtractCommands(seq *parser.Sequence) []Command {
	var commands []Command
	for _, item := range seq.Items {
		switch n := item.(type) {
		case *parser.Scalar:
			name := strings.TrimSpace(n.Value)
			if name == "" {
				continue
			}
			commands = append(commands, Command{Name: name, NameSpan: n.Span()})
		case *parser.Mapping:
			if len(n.Pairs) == 0 {
				continue
			}
			first := n.Pairs[0]
			if !first.Key.IsString() || first.Key.Value == "" {
				continue
			}
			commands = append(commands, Command{
				Name:     first.Key.Value,
				NameSpan: first.Key.Span(),
				Value:    first.Value,
			})
		}
	}
	return commands
}

// CollectSequences discovers every rule-checkable sequence across the
// parsed documents: each document's top-level list, plus every non-empty
// sequence found under a key literally named "commands" anywhere below it.
// Nested sequences are appended as independent siblings in depth-first
// document order; they are never spliced into their parent.
func CollectSequences(docs []*parser.Document) []Sequence {
	var out []Sequence

	var fromMapping func(m *parser.Mapping, depth int)
	var fromItems func(s *parser.Sequence, depth int)

	fromMapping = func(m *parser.Mapping, depth int) {
		if depth > maxNestingDepth {
			return
		}
		for _, p := range m.Pairs {
			if p.Key.Value == "commands" {
				if seq, ok := p.Value.(*parser.Sequence); ok && len(seq.Items) > 0 {
					out = append(out, Sequence{Commands: ExtractCommands(seq)})
					fromItems(seq, depth+1)
				}
			}
			if nested, ok := p.Value.(*parser.Mapping); ok {
				fromMapping(nested, depth+1)
			}
		}
	}

	// Command list items carry their nested blocks inside argument
	// mappings, e.g. a conditional's branch commands.
	fromItems = func(s *parser.Sequence, depth int) {
		if depth > maxNestingDepth {
			return
		}
		for _, item := range s.Items {
			if m, ok := item.(*parser.Mapping); ok {
				fromMapping(m, depth+1)
			}
		}
	}

	for _, doc := range docs {
		switch root := doc.Root.(type) {
		case *parser.Sequence:
			out = append(out, Sequence{Commands: ExtractCommands(root)})
			fromItems(root, 0)
		case *parser.Mapping:
			fromMapping(root, 0)
		}
	}
	return out
}
