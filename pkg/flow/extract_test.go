package flow

import (
	"testing"

	"github.com/flowlint/flowlint/pkg/parser"
)

func parseFlow(t *testing.T, text string) []*parser.Document {
	t.Helper()
	result := parser.Parse(text)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected syntax errors: %v", result.Errors)
	}
	return result.Documents
}

func TestExtractCommands(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantNames []string
	}{
		{
			name:      "bare scalar items",
			text:      "- launchApp\n- back\n",
			wantNames: []string{"launchApp", "back"},
		},
		{
			name:      "mapping items use first key",
			text:      "- tapOn: Login\n- inputText: hello\n",
			wantNames: []string{"tapOn", "inputText"},
		},
		{
			name:      "blank scalar items are skipped",
			text:      "- launchApp\n- \"  \"\n- back\n",
			wantNames: []string{"launchApp", "back"},
		},
		{
			name:      "mixed shapes keep document order",
			text:      "- launchApp\n- tapOn:\n    id: submit\n- hideKeyboard\n",
			wantNames: []string{"launchApp", "tapOn", "hideKeyboard"},
		},
		{
			name:      "nested sequence items are skipped",
			text:      "- launchApp\n- [not, a, command]\n- back\n",
			wantNames: []string{"launchApp", "back"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := parseFlow(t, tt.text)
			seq, ok := docs[0].Root.(*parser.Sequence)
			if !ok {
				t.Fatalf("expected sequence root, got %T", docs[0].Root)
			}
			commands := ExtractCommands(seq)
			if len(commands) != len(tt.wantNames) {
				t.Fatalf("extracted %d commands, want %d", len(commands), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if commands[i].Name != want {
					t.Errorf("command %d = %q, want %q", i, commands[i].Name, want)
				}
			}
		})
	}
}

func TestExtractCommandValues(t *testing.T) {
	docs := parseFlow(t, "- launchApp\n- tapOn: Login\n")
	commands := ExtractCommands(docs[0].Root.(*parser.Sequence))

	if commands[0].HasValue() {
		t.Error("bare launchApp should have no value")
	}
	if !commands[1].HasValue() {
		t.Fatal("tapOn with argument should have a value")
	}
	scalar, ok := commands[1].Value.(*parser.Scalar)
	if !ok || scalar.Value != "Login" {
		t.Errorf("tapOn value = %v, want scalar Login", commands[1].Value)
	}
	if commands[1].ValueSpan().StartPos.Line != 1 {
		t.Errorf("tapOn value span on line %d, want 1", commands[1].ValueSpan().StartPos.Line)
	}
}

func TestCollectSequencesTopLevel(t *testing.T) {
	docs := parseFlow(t, "appId: com.example.app\n---\n- launchApp\n- tapOn: Login\n")
	sequences := CollectSequences(docs)

	if len(sequences) != 1 {
		t.Fatalf("expected 1 sequence, got %d", len(sequences))
	}
	if len(sequences[0].Commands) != 2 {
		t.Errorf("expected 2 commands, got %d", len(sequences[0].Commands))
	}
}

func TestCollectSequencesNestedBlocks(t *testing.T) {
	text := `- launchApp
- conditional:
    condition: visible
    commands:
      - tapOn: OK
      - repeat:
          times: 3
          commands:
            - scroll
`
	docs := parseFlow(t, text)
	sequences := CollectSequences(docs)

	if len(sequences) != 3 {
		t.Fatalf("expected 3 sequences (top, conditional, repeat), got %d", len(sequences))
	}
	if len(sequences[0].Commands) != 2 {
		t.Errorf("top-level sequence has %d commands, want 2", len(sequences[0].Commands))
	}
	if len(sequences[1].Commands) != 2 || sequences[1].Commands[0].Name != "tapOn" {
		t.Errorf("conditional block = %+v, want tapOn then repeat", sequences[1].Commands)
	}
	if len(sequences[2].Commands) != 1 || sequences[2].Commands[0].Name != "scroll" {
		t.Errorf("repeat block = %+v, want single scroll", sequences[2].Commands)
	}
}

func TestCollectSequencesEmptyNestedBlockIgnored(t *testing.T) {
	text := "- conditional:\n    commands: []\n"
	docs := parseFlow(t, text)
	sequences := CollectSequences(docs)

	if len(sequences) != 1 {
		t.Errorf("empty commands block should not become a sequence, got %d sequences", len(sequences))
	}
}

func TestCollectSequencesMappingRoot(t *testing.T) {
	// A commands block buried under mapping values is still discovered.
	text := "setup:\n  before:\n    commands:\n      - launchApp\n"
	docs := parseFlow(t, text)
	sequences := CollectSequences(docs)

	if len(sequences) != 1 {
		t.Fatalf("expected 1 sequence from nested mapping, got %d", len(sequences))
	}
	if sequences[0].Commands[0].Name != "launchApp" {
		t.Errorf("nested command = %q, want launchApp", sequences[0].Commands[0].Name)
	}
}

func TestCollectSequencesNoCommands(t *testing.T) {
	docs := parseFlow(t, "appId: com.example.app\n")
	if sequences := CollectSequences(docs); len(sequences) != 0 {
		t.Errorf("config-only document produced %d sequences, want 0", len(sequences))
	}
}
