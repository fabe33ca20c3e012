package lint

import (
	"fmt"

	"github.com/flowlint/flowlint/pkg/flow"
)

// sequenceContext is the auxiliary state shared by the two assertVisible
// rules. Its scope is exactly one sequence's rule pass; it never leaks
// across sequences or runs.
type sequenceContext struct {
	// handled marks assertVisible indexes already reported by the
	// tapOn-adjacency rule so the prior-navigation rule skips them.
	handled map[int]bool
}

// sequenceRule checks a whole sequence. All sequence rules are heuristic
// and emit warnings.
type sequenceRule func(seq flow.Sequence, sc *sequenceContext, rc *ruleContext) []Diagnostic

// sequenceRules run per sequence in this fixed order; the adjacency rule
// must precede the prior-navigation rule because of the handled markers.
var sequenceRules = []sequenceRule{
	checkAssertAfterTap,
	checkAssertWithoutNavigation,
	checkDuplicateAdjacent,
}

func checkAssertAfterTap(seq flow.Sequence, sc *sequenceContext, rc *ruleContext) []Diagnostic {
	var diags []Diagnostic
	for i := 0; i+1 < len(seq.Commands); i++ {
		if seq.Commands[i].Name != "tapOn" || seq.Commands[i+1].Name != "assertVisible" {
			continue
		}
		sc.handled[i+1] = true
		diags = append(diags, rc.b.fromSpan(SeverityWarning, "assertVisible", seq.Commands[i+1].NameSpan,
			"assertVisible immediately after tapOn is often redundant; the tap already located the element. Assert the post-tap state instead."))
	}
	return diags
}

func checkAssertWithoutNavigation(seq flow.Sequence, sc *sequenceContext, rc *ruleContext) []Diagnostic {
	var diags []Diagnostic
	for i, cmd := range seq.Commands {
		if cmd.Name != "assertVisible" || sc.handled[i] {
			continue
		}
		preceded := false
		for j := i - 1; j >= 0; j-- {
			if flow.IsNavigationOrWait(seq.Commands[j].Name) {
				preceded = true
				break
			}
		}
		if !preceded {
			diags = append(diags, rc.b.fromSpan(SeverityWarning, cmd.Name, cmd.NameSpan,
				"assertVisible without a prior navigation or wait; the screen may not be ready yet. Add a navigation step or a wait command before asserting."))
		}
	}
	return diags
}

func checkDuplicateAdjacent(seq flow.Sequence, sc *sequenceContext, rc *ruleContext) []Diagnostic {
	var diags []Diagnostic
	for i := 0; i+1 < len(seq.Commands); i++ {
		if seq.Commands[i].Name != seq.Commands[i+1].Name {
			continue
		}
		next := seq.Commands[i+1]
		diags = append(diags, rc.b.fromSpan(SeverityWarning, next.Name, next.NameSpan,
			fmt.Sprintf("duplicate sequential action %q. Repeated identical commands are often an authoring mistake; remove one or separate them with an assertion.", next.Name)))
	}
	return diags
}
