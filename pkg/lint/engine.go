package lint

import (
	"strings"

	"github.com/flowlint/flowlint/pkg/flow"
	"github.com/flowlint/flowlint/pkg/parser"
)

// Validate runs one full validation pass over a flow document and returns
// every finding in deterministic order: syntax errors first, then
// per-command findings (sequence order, command order, fixed rule order),
// then per-sequence findings.
//
// fileLocation is the document's on-disk path; pass "" for unsaved
// buffers, which silently disables the runFlow target-existence check.
// A run is a pure function of text (and, for runFlow, the file system);
// no state survives between calls.
func Validate(text string, fileLocation string) []Diagnostic {
	if strings.TrimSpace(text) == "" {
		b := &builder{ix: parser.NewLineIndex(text)}
		return []Diagnostic{b.fromNode(SeverityError, "", nil,
			"flow is empty. Add at least one command, e.g. '- launchApp'.")}
	}

	result := parser.Parse(text)
	b := &builder{ix: result.Index}

	var diags []Diagnostic
	for _, se := range result.Errors {
		diags = append(diags, b.syntax(se))
	}

	sequences := flow.CollectSequences(result.Documents)
	if len(sequences) == 0 {
		return append(diags, b.fromNode(SeverityError, "", nil,
			"no commands found in flow. Add a command list, e.g. '- launchApp'."))
	}

	rc := &ruleContext{b: b, filePath: fileLocation}
	for _, seq := range sequences {
		for _, cmd := range seq.Commands {
			for _, rule := range commandRules {
				diags = append(diags, rule(cmd, rc)...)
			}
		}
	}
	for _, seq := range sequences {
		sc := &sequenceContext{handled: make(map[int]bool)}
		for _, rule := range sequenceRules {
			diags = append(diags, rule(seq, sc, rc)...)
		}
	}
	return diags
}
