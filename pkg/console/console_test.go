package console

import (
	"strings"
	"testing"
)

func TestFormatFinding(t *testing.T) {
	out := FormatFinding(Finding{
		File:    "flows/login.yaml",
		Line:    3,
		Column:  3,
		Level:   "error",
		Message: "tapOn at line 3: tapOn has no selector.",
		Context: "- tapOn",
	})

	if !strings.Contains(out, "flows/login.yaml:3:3:") {
		t.Errorf("output %q missing IDE-parseable location", out)
	}
	if !strings.Contains(out, "error:") {
		t.Errorf("output %q missing level", out)
	}
	if !strings.Contains(out, "- tapOn") {
		t.Errorf("output %q missing source context", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("output %q missing caret", out)
	}
}

func TestFormatFindingWithoutContext(t *testing.T) {
	out := FormatFinding(Finding{
		Line:    1,
		Column:  1,
		Level:   "warning",
		Message: "Line 1: flow is empty.",
	})
	if strings.Contains(out, "^") {
		t.Errorf("output %q should have no caret without context", out)
	}
	if !strings.Contains(out, "warning:") {
		t.Errorf("output %q missing level", out)
	}
}

func TestFormatSummary(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    string
	}{
		{name: "clean", summary: Summary{Files: 2}, want: "2 file(s) checked: 0 error(s), 0 warning(s)"},
		{name: "with errors", summary: Summary{Files: 1, Errors: 3, Warnings: 1}, want: "1 file(s) checked: 3 error(s), 1 warning(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSummary(tt.summary); !strings.Contains(got, tt.want) {
				t.Errorf("FormatSummary = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"File", "Errors"},
		[][]string{{"login.yaml", "2"}, {"checkout.yaml", "0"}},
	)

	for _, want := range []string{"File", "Errors", "login.yaml", "checkout.yaml"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 4 {
		t.Errorf("table has %d lines, want 4 (header, separator, two rows)", lines)
	}
}

func TestToRelativePath(t *testing.T) {
	if got := ToRelativePath("already/relative.yaml"); got != "already/relative.yaml" {
		t.Errorf("relative path changed: %q", got)
	}
}
