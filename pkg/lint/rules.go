package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flowlint/flowlint/pkg/flow"
	"github.com/flowlint/flowlint/pkg/parser"
)

// ruleContext carries the per-run collaborators rules need. filePath is
// the flow's on-disk location; it is empty for unsaved buffers, which
// disables the runFlow target-existence check.
type ruleContext struct {
	b        *builder
	filePath string
}

// commandRule checks one command in isolation. Rules are total: every
// value shape they can receive produces either no finding or a
// diagnostic, never a panic or error.
type commandRule func(cmd flow.Command, rc *ruleContext) []Diagnostic

// commandRules run for every command of every sequence, in this fixed
// order so diagnostic output is deterministic.
var commandRules = []commandRule{
	checkTapOnSelector,
	checkInputTextValue,
	checkConditionalCommands,
	checkRunFlowTarget,
	checkUnknownCommand,
	checkTakeScreenshotName,
}

// selectorKeys are the mapping keys that identify a UI element.
var selectorKeys = []string{"text", "id", "accessibilityLabel"}

// report emits one finding anchored at the command's name.
func report(rc *ruleContext, sev Severity, cmd flow.Command, template string) []Diagnostic {
	return []Diagnostic{rc.b.fromSpan(sev, cmd.Name, cmd.NameSpan, template)}
}

func checkTapOnSelector(cmd flow.Command, rc *ruleContext) []Diagnostic {
	if cmd.Name != "tapOn" {
		return nil
	}
	if !cmd.HasValue() {
		return report(rc, SeverityError, cmd,
			"tapOn has no selector. Give it text, or a mapping with text, id or accessibilityLabel.")
	}
	switch v := cmd.Value.(type) {
	case *parser.Scalar:
		if v.IsString() && strings.TrimSpace(v.Value) != "" {
			return nil
		}
		return report(rc, SeverityError, cmd,
			"tapOn selector must be non-empty text, e.g. '- tapOn: Login'.")
	case *parser.Mapping:
		for _, key := range selectorKeys {
			if val, ok := v.Get(key); ok {
				if s, isScalar := val.(*parser.Scalar); isScalar && s.IsString() && strings.TrimSpace(s.Value) != "" {
					return nil
				}
			}
		}
		return report(rc, SeverityError, cmd,
			"tapOn selector mapping needs a non-empty text, id or accessibilityLabel entry.")
	default:
		return report(rc, SeverityError, cmd,
			"tapOn selector has an unsupported shape. Use text or a selector mapping.")
	}
}

func checkInputTextValue(cmd flow.Command, rc *ruleContext) []Diagnostic {
	if cmd.Name != "inputText" {
		return nil
	}
	if !cmd.HasValue() {
		return report(rc, SeverityError, cmd,
			"inputText requires a value, e.g. '- inputText: hello' or a mapping with a text entry.")
	}
	switch v := cmd.Value.(type) {
	case *parser.Scalar:
		if v.IsString() {
			return nil
		}
		return report(rc, SeverityError, cmd,
			fmt.Sprintf("inputText value must be a string, got %q. Quote the value to make it text.", v.Value))
	case *parser.Mapping:
		if val, ok := v.Get("text"); ok {
			if s, isScalar := val.(*parser.Scalar); isScalar && s.IsString() {
				return nil
			}
		}
		return report(rc, SeverityError, cmd,
			"inputText mapping must contain a string text entry.")
	default:
		return report(rc, SeverityError, cmd,
			"inputText value has an unsupported shape. Use a string or a mapping with a text entry.")
	}
}

func checkConditionalCommands(cmd flow.Command, rc *ruleContext) []Diagnostic {
	if cmd.Name != "conditional" {
		return nil
	}
	if m, ok := cmd.Value.(*parser.Mapping); ok {
		if val, found := m.Get("commands"); found {
			if seq, isSeq := val.(*parser.Sequence); isSeq && len(seq.Items) > 0 {
				return nil
			}
		}
	}
	return report(rc, SeverityError, cmd,
		"conditional requires a commands block with at least one command.")
}

func checkRunFlowTarget(cmd flow.Command, rc *ruleContext) []Diagnostic {
	if cmd.Name != "runFlow" || rc.filePath == "" {
		return nil
	}

	var target string
	switch v := cmd.Value.(type) {
	case *parser.Scalar:
		if v.IsString() {
			target = strings.TrimSpace(v.Value)
		}
	case *parser.Mapping:
		if val, ok := v.Get("flow"); ok {
			if s, isScalar := val.(*parser.Scalar); isScalar && s.IsString() {
				target = strings.TrimSpace(s.Value)
			}
		}
	}
	if target == "" {
		return nil
	}
	// Paths built from variables can only be resolved at runtime.
	if strings.Contains(target, "${") {
		return nil
	}

	resolved := target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(rc.filePath), resolved)
	}
	if _, err := os.Stat(resolved); err != nil {
		return report(rc, SeverityError, cmd,
			fmt.Sprintf("target flow file %q does not exist. Check the path relative to this flow.", target))
	}
	return nil
}

func checkUnknownCommand(cmd flow.Command, rc *ruleContext) []Diagnostic {
	if flow.IsKnownCommand(cmd.Name) {
		return nil
	}
	template := fmt.Sprintf("unknown command %q.", cmd.Name)
	if closest := flow.ClosestCommand(cmd.Name); closest != "" {
		template += fmt.Sprintf(" Did you mean %q?", closest)
	} else {
		template += " See the supported command list."
	}
	return report(rc, SeverityError, cmd, template)
}

func checkTakeScreenshotName(cmd flow.Command, rc *ruleContext) []Diagnostic {
	if cmd.Name != "takeScreenshot" {
		return nil
	}
	if !cmd.HasValue() {
		return report(rc, SeverityWarning, cmd,
			"takeScreenshot without a name. Name screenshots so test artifacts stay identifiable.")
	}
	switch v := cmd.Value.(type) {
	case *parser.Scalar:
		if v.IsString() && strings.TrimSpace(v.Value) != "" {
			return nil
		}
	case *parser.Mapping:
		if val, ok := v.Get("name"); ok {
			if s, isScalar := val.(*parser.Scalar); isScalar && s.IsString() && strings.TrimSpace(s.Value) != "" {
				return nil
			}
		}
	}
	return report(rc, SeverityWarning, cmd,
		"takeScreenshot name must be non-empty text, e.g. '- takeScreenshot: checkout-page'.")
}
