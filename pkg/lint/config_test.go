package lint

import (
	"strings"
	"testing"
)

func TestValidateConfigAcceptsTypicalConfig(t *testing.T) {
	text := `appId: com.example.app
name: Login flow
tags:
  - smoke
  - login
env:
  USERNAME: demo
---
- launchApp
`
	if diags := ValidateConfig(text); len(diags) != 0 {
		t.Errorf("valid config produced diagnostics: %v", diags)
	}
}

func TestValidateConfigRejectsWrongTypes(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "appId not a string", text: "appId: [a, b]\n---\n- launchApp\n"},
		{name: "tags not an array", text: "appId: x\ntags: smoke\n---\n- launchApp\n"},
		{name: "empty appId", text: "appId: \"\"\n---\n- launchApp\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := ValidateConfig(tt.text)
			if len(diags) != 1 {
				t.Fatalf("expected one config warning, got %v", diags)
			}
			d := diags[0]
			if d.Severity != SeverityWarning {
				t.Errorf("severity = %v, want warning", d.Severity)
			}
			if !strings.Contains(d.Message, "configuration") {
				t.Errorf("message %q should mention the configuration", d.Message)
			}
			if d.Line != d.Range.StartPos.Line+1 {
				t.Errorf("line %d != range line %d + 1", d.Line, d.Range.StartPos.Line)
			}
		})
	}
}

func TestValidateConfigToleratesUnknownKeys(t *testing.T) {
	text := "appId: x\ncustomKey: whatever\n---\n- launchApp\n"
	if diags := ValidateConfig(text); len(diags) != 0 {
		t.Errorf("unknown config keys should be tolerated, got %v", diags)
	}
}

func TestValidateConfigSkipsNonMappingFirstDocument(t *testing.T) {
	if diags := ValidateConfig("- launchApp\n"); len(diags) != 0 {
		t.Errorf("list-rooted documents have no config to validate, got %v", diags)
	}
	if diags := ValidateConfig(""); len(diags) != 0 {
		t.Errorf("empty input has no config, got %v", diags)
	}
}
