package flow

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed data/docs.yaml
var docsYAML []byte

// commandDocs is decoded once at startup; the asset ships with the binary
// and a decode failure is a build defect, hence the panic.
var commandDocs = func() map[string]string {
	docs := make(map[string]string)
	if err := yaml.Unmarshal(docsYAML, &docs); err != nil {
		panic("flow: invalid embedded docs asset: " + err.Error())
	}
	return docs
}()

// Docs returns the one-line usage note for a command name, or "" when the
// command has none. This is the hover/help text source for editor
// integrations and the docs CLI verb.
func Docs(name string) string {
	return commandDocs[name]
}
