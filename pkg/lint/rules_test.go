package lint

import (
	"strings"
	"testing"
)

func TestTapOnSelectorShapes(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "no value", text: "- tapOn\n", wantErr: true},
		{name: "non-blank text", text: "- tapOn: Login\n", wantErr: false},
		{name: "blank text", text: "- tapOn: \"   \"\n", wantErr: true},
		{name: "numeric selector", text: "- tapOn: 42\n", wantErr: true},
		{name: "boolean selector", text: "- tapOn: true\n", wantErr: true},
		{name: "mapping with text", text: "- tapOn:\n    text: Login\n", wantErr: false},
		{name: "mapping with id", text: "- tapOn:\n    id: submit-button\n", wantErr: false},
		{name: "mapping with accessibilityLabel", text: "- tapOn:\n    accessibilityLabel: Submit\n", wantErr: false},
		{name: "mapping with blank text", text: "- tapOn:\n    text: \"\"\n", wantErr: true},
		{name: "mapping without selector keys", text: "- tapOn:\n    index: 2\n", wantErr: true},
		{name: "sequence value", text: "- tapOn:\n    - a\n    - b\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Validate(tt.text, "")
			matches := containing(diags, "selector")
			if tt.wantErr && len(matches) != 1 {
				t.Errorf("expected one selector error, got %v", diags)
			}
			if !tt.wantErr && len(matches) != 0 {
				t.Errorf("expected no selector error, got %v", matches)
			}
		})
	}
}

func TestInputTextValueShapes(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "no value", text: "- inputText\n", wantErr: true},
		{name: "plain string", text: "- inputText: hello\n", wantErr: false},
		{name: "empty string accepted", text: "- inputText: \"\"\n", wantErr: false},
		{name: "number rejected", text: "- inputText: 42\n", wantErr: true},
		{name: "boolean rejected", text: "- inputText: true\n", wantErr: true},
		{name: "mapping with text", text: "- inputText:\n    text: hello\n", wantErr: false},
		{name: "mapping with numeric text", text: "- inputText:\n    text: 42\n", wantErr: true},
		{name: "mapping without text", text: "- inputText:\n    value: hello\n", wantErr: true},
		{name: "sequence value", text: "- inputText:\n    - a\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Validate(tt.text, "")
			matches := containing(diags, "inputText")
			hasErr := false
			for _, d := range matches {
				if d.Severity == SeverityError {
					hasErr = true
				}
			}
			if hasErr != tt.wantErr {
				t.Errorf("wantErr=%v, diagnostics: %v", tt.wantErr, diags)
			}
		})
	}
}

func TestConditionalRequiresCommands(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "no value", text: "- conditional\n", wantErr: true},
		{name: "scalar value", text: "- conditional: visible\n", wantErr: true},
		{name: "mapping without commands", text: "- conditional:\n    condition: visible\n", wantErr: true},
		{name: "empty commands", text: "- conditional:\n    commands: []\n", wantErr: true},
		{name: "commands is a mapping", text: "- conditional:\n    commands:\n      tapOn: a\n", wantErr: true},
		{name: "non-empty commands", text: "- conditional:\n    commands:\n      - launchApp\n", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Validate(tt.text, "")
			matches := containing(diags, "conditional requires")
			if tt.wantErr && len(matches) != 1 {
				t.Errorf("expected one conditional error, got %v", diags)
			}
			if !tt.wantErr && len(matches) != 0 {
				t.Errorf("expected no conditional error, got %v", matches)
			}
		})
	}
}

func TestTakeScreenshotName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantWarn bool
	}{
		{name: "no value", text: "- takeScreenshot\n", wantWarn: true},
		{name: "named", text: "- takeScreenshot: checkout\n", wantWarn: false},
		{name: "blank name", text: "- takeScreenshot: \" \"\n", wantWarn: true},
		{name: "mapping with name", text: "- takeScreenshot:\n    name: checkout\n", wantWarn: false},
		{name: "mapping without name", text: "- takeScreenshot:\n    path: /tmp\n", wantWarn: true},
		{name: "numeric name", text: "- takeScreenshot: 7\n", wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Validate(tt.text, "")
			matches := containing(diags, "takeScreenshot")
			var warns int
			for _, d := range matches {
				if d.Severity != SeverityWarning {
					t.Errorf("takeScreenshot findings must be warnings, got %v", d)
				}
				warns++
			}
			if tt.wantWarn && warns != 1 {
				t.Errorf("expected one warning, got %v", diags)
			}
			if !tt.wantWarn && warns != 0 {
				t.Errorf("expected no warning, got %v", matches)
			}
		})
	}
}

func TestDiagnosticMessagePrefix(t *testing.T) {
	diags := Validate("- tapOn\n", "")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	if !strings.HasPrefix(diags[0].Message, "tapOn at line 1: ") {
		t.Errorf("message %q should start with the command/line prefix", diags[0].Message)
	}

	diags = Validate("", "")
	if !strings.HasPrefix(diags[0].Message, "Line 1: ") {
		t.Errorf("document-level message %q should start with the line prefix", diags[0].Message)
	}
}
