package lint

import (
	_ "embed"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/flowlint/flowlint/pkg/parser"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/flow_config_schema.json
var flowConfigSchema string

// ValidateConfig checks the flow's configuration document (the mapping
// before the first document separator, carrying appId, name, tags, env)
// against the embedded schema. Findings are warnings: a malformed config
// does not stop the flow from running, it degrades it. Files without a
// mapping-rooted first document yield no findings.
func ValidateConfig(text string) []Diagnostic {
	result := parser.Parse(text)
	if len(result.Documents) == 0 {
		return nil
	}
	config, ok := result.Documents[0].Root.(*parser.Mapping)
	if !ok {
		return nil
	}

	schema, err := compileConfigSchema()
	if err != nil {
		// The schema ships with the binary; failing to compile it is a
		// build defect, not a user problem. Surface nothing.
		return nil
	}

	normalized, err := normalizeForSchema(nodeToAny(config))
	if err != nil {
		return nil
	}
	if err := schema.Validate(normalized); err != nil {
		b := &builder{ix: result.Index}
		message := strings.ReplaceAll(err.Error(), "\n", "; ")
		return []Diagnostic{b.fromNode(SeverityWarning, "", config,
			"flow configuration is invalid: "+message)}
	}
	return nil
}

func compileConfigSchema() (*jsonschema.Schema, error) {
	var schemaDoc any
	if err := json.Unmarshal([]byte(flowConfigSchema), &schemaDoc); err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	schemaURL := "https://flowlint.dev/flow_config_schema.json"
	if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

// normalizeForSchema round-trips a value through JSON so the validator
// sees the exact types it expects.
func normalizeForSchema(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

// nodeToAny converts a parsed node into plain Go values for schema
// validation. Duplicate mapping keys keep the last occurrence.
func nodeToAny(n parser.Node) any {
	switch v := n.(type) {
	case *parser.Scalar:
		switch v.Kind {
		case parser.IntScalar:
			if i, err := strconv.ParseInt(v.Value, 10, 64); err == nil {
				return i
			}
			return v.Value
		case parser.FloatScalar:
			if f, err := strconv.ParseFloat(v.Value, 64); err == nil {
				return f
			}
			return v.Value
		case parser.BoolScalar:
			return v.Value == "true"
		case parser.NullScalar:
			return nil
		default:
			return v.Value
		}
	case *parser.Mapping:
		out := make(map[string]any, len(v.Pairs))
		for _, p := range v.Pairs {
			out[p.Key.Value] = nodeToAny(p.Value)
		}
		return out
	case *parser.Sequence:
		out := make([]any, 0, len(v.Items))
		for _, item := range v.Items {
			if item != nil {
				out = append(out, nodeToAny(item))
			}
		}
		return out
	default:
		return nil
	}
}
