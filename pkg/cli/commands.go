package cli

import (
	"fmt"

	"github.com/flowlint/flowlint/pkg/console"
	"github.com/flowlint/flowlint/pkg/flow"
)

// Package-level version information, set by the entry point.
var version = "dev"

// SetVersionInfo records the build version for the version command.
func SetVersionInfo(v string) {
	version = v
}

// Version returns the recorded build version.
func Version() string {
	return version
}

// ListCommands prints the supported command vocabulary, optionally with
// the one-line docs entry for each command.
func ListCommands(verbose bool) {
	if !verbose {
		for _, name := range flow.KnownCommands {
			fmt.Println(name)
		}
		return
	}
	rows := make([][]string, 0, len(flow.KnownCommands))
	for _, name := range flow.KnownCommands {
		rows = append(rows, []string{name, flow.Docs(name)})
	}
	fmt.Println(console.RenderTable([]string{"Command", "Description"}, rows))
}

// ShowDocs prints the docs entry for one command. Unknown names get the
// same closest-match suggestion the lint engine gives.
func ShowDocs(name string) error {
	if doc := flow.Docs(name); doc != "" {
		fmt.Printf("%s\n  %s\n", name, doc)
		return nil
	}
	if closest := flow.ClosestCommand(name); closest != "" {
		return fmt.Errorf("unknown command %q. Did you mean %q?", name, closest)
	}
	return fmt.Errorf("unknown command %q", name)
}
