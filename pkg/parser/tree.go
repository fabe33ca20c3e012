package parser

import (
	"strings"

	"github.com/goccy/go-yaml/ast"
	goyaml "github.com/goccy/go-yaml/parser"
)

// Node is one structural YAML node with a resolved source span. The set of
// implementations is closed: Scalar, Mapping and Sequence cover every shape
// the lint rules inspect.
type Node interface {
	Span() Span
}

// ScalarKind discriminates the YAML scalar types the rules care about.
// Only string scalars are accepted where commands expect text values.
type ScalarKind int

const (
	StringScalar ScalarKind = iota
	IntScalar
	FloatScalar
	BoolScalar
	NullScalar
)

// Scalar is a leaf node. Value holds the resolved scalar text regardless of
// kind, so callers can report non-string values verbatim.
type Scalar struct {
	Kind  ScalarKind
	Value string
	span  Span
}

func (s *Scalar) Span() Span { return s.span }

// IsString reports whether the scalar is a YAML string.
func (s *Scalar) IsString() bool { return s.Kind == StringScalar }

// Pair is one key/value entry of a Mapping. Keys are always scalars; pairs
// with non-scalar keys are dropped during conversion.
type Pair struct {
	Key   *Scalar
	Value Node
}

// Mapping preserves pair order as written in the source. Rule semantics
// depend on it: a command mapping is identified by its first pair.
type Mapping struct {
	Pairs []Pair
	span  Span
}

func (m *Mapping) Span() Span { return m.span }

// Get returns the value for key, or (nil, false) when absent.
func (m *Mapping) Get(key string) (Node, bool) {
	for _, p := range m.Pairs {
		if p.Key.Value == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Sequence is an ordered list of nodes. Items that converted to no
// supported shape are held as nil entries so positions stay aligned.
type Sequence struct {
	Items []Node
	span  Span
}

func (s *Sequence) Span() Span { return s.span }

// Document is one parsed YAML document. Root is nil for an empty document;
// only sequence and mapping roots are inspected by the extractor.
type Document struct {
	Root Node
}

// SyntaxError is one low-level YAML parse failure with a best-effort
// source position. Position falls back to the document start when the
// parser reported none.
type SyntaxError struct {
	Message string
	Span    Span
}

// ParseResult carries everything one parse of the raw text produced.
type ParseResult struct {
	Documents []*Document
	Errors    []SyntaxError
	Index     *LineIndex
}

// Parse splits text into YAML documents and converts each into the closed
// node model. Parsing is resilient document-by-document: when the text as a
// whole fails to parse, it is re-parsed one document chunk at a time so a
// malformed document yields a syntax error without discarding its
// well-formed siblings.
func Parse(text string) *ParseResult {
	ix := NewLineIndex(text)
	result := &ParseResult{Index: ix}

	file, err := goyaml.ParseBytes([]byte(text), 0)
	if err == nil {
		for _, doc := range file.Docs {
			result.Documents = append(result.Documents, &Document{Root: convertNode(doc.Body, ix, 0)})
		}
		return result
	}

	for _, chunk := range splitDocuments(text) {
		chunkFile, chunkErr := goyaml.ParseBytes([]byte(chunk.text), 0)
		if chunkErr != nil {
			result.Errors = append(result.Errors, extractSyntaxError(chunkErr, ix, chunk.baseLine))
			continue
		}
		for _, doc := range chunkFile.Docs {
			result.Documents = append(result.Documents, &Document{Root: convertNode(doc.Body, ix, chunk.baseLine)})
		}
	}
	return result
}

// documentChunk is one raw document slice of the input, with the count of
// full lines preceding it so positions can be mapped back to the whole text.
type documentChunk struct {
	text     string
	baseLine int
}

// splitDocuments cuts text at document markers ("---" lines). The marker
// line stays with the document it opens.
func splitDocuments(text string) []documentChunk {
	lines := strings.Split(text, "\n")
	var chunks []documentChunk
	start := 0
	for i, line := range lines {
		trimmed := strings.TrimRight(line, " \t\r")
		if i > start && (trimmed == "---" || strings.HasPrefix(trimmed, "--- ")) {
			chunks = append(chunks, documentChunk{
				text:     strings.Join(lines[start:i], "\n"),
				baseLine: start,
			})
			start = i
		}
	}
	chunks = append(chunks, documentChunk{
		text:     strings.Join(lines[start:], "\n"),
		baseLine: start,
	})
	return chunks
}

// convertNode maps a goccy AST node into the closed node model. baseLine
// shifts tokenizer line numbers when the node came from a document chunk.
// Unsupported shapes convert to nil; downstream consumers skip them.
func convertNode(n ast.Node, ix *LineIndex, baseLine int) Node {
	if n == nil {
		return nil
	}
	switch v := n.(type) {
	case *ast.StringNode:
		return &Scalar{Kind: StringScalar, Value: v.Value, span: tokenSpan(n, ix, baseLine, len(v.Value))}
	case *ast.LiteralNode:
		value := ""
		if v.Value != nil {
			value = v.Value.Value
		}
		return &Scalar{Kind: StringScalar, Value: value, span: tokenSpan(n, ix, baseLine, len(value))}
	case *ast.IntegerNode:
		return scalarFromToken(n, IntScalar, ix, baseLine)
	case *ast.FloatNode:
		return scalarFromToken(n, FloatScalar, ix, baseLine)
	case *ast.BoolNode:
		return scalarFromToken(n, BoolScalar, ix, baseLine)
	case *ast.NullNode:
		return scalarFromToken(n, NullScalar, ix, baseLine)
	case *ast.InfinityNode:
		return scalarFromToken(n, FloatScalar, ix, baseLine)
	case *ast.NanNode:
		return scalarFromToken(n, FloatScalar, ix, baseLine)
	case *ast.MappingNode:
		m := &Mapping{}
		for _, pair := range v.Values {
			appendPair(m, pair, ix, baseLine)
		}
		m.span = containerSpan(n, ix, baseLine, mappingChildSpans(m))
		return m
	case *ast.MappingValueNode:
		// A single key/value pair at the root parses as a bare
		// MappingValueNode rather than a MappingNode.
		m := &Mapping{}
		appendPair(m, v, ix, baseLine)
		m.span = containerSpan(n, ix, baseLine, mappingChildSpans(m))
		return m
	case *ast.SequenceNode:
		s := &Sequence{}
		for _, item := range v.Values {
			s.Items = append(s.Items, convertNode(item, ix, baseLine))
		}
		s.span = containerSpan(n, ix, baseLine, sequenceChildSpans(s))
		return s
	case *ast.AnchorNode:
		return convertNode(v.Value, ix, baseLine)
	case *ast.TagNode:
		return convertNode(v.Value, ix, baseLine)
	case *ast.AliasNode:
		// Aliases are not resolved; surface the alias name as a string
		// so rules can still report on the command.
		return scalarFromToken(n, StringScalar, ix, baseLine)
	default:
		return nil
	}
}

// appendPair converts one AST mapping pair, dropping pairs whose key is not
// a scalar.
func appendPair(m *Mapping, pair *ast.MappingValueNode, ix *LineIndex, baseLine int) {
	if pair == nil || pair.Key == nil {
		return
	}
	key, ok := convertNode(pair.Key, ix, baseLine).(*Scalar)
	if !ok {
		return
	}
	m.Pairs = append(m.Pairs, Pair{Key: key, Value: convertNode(pair.Value, ix, baseLine)})
}

// tokenSpan derives a node's span from its token position and value length.
func tokenSpan(n ast.Node, ix *LineIndex, baseLine, valueLen int) Span {
	tok := n.GetToken()
	if tok == nil {
		return ix.Span(0, 0)
	}
	start := ix.Offset(tok.Position.Line+baseLine, tok.Position.Column)
	return ix.Span(start, start+valueLen)
}

func scalarFromToken(n ast.Node, kind ScalarKind, ix *LineIndex, baseLine int) *Scalar {
	value := ""
	if tok := n.GetToken(); tok != nil {
		value = tok.Value
	}
	return &Scalar{Kind: kind, Value: value, span: tokenSpan(n, ix, baseLine, len(value))}
}

// containerSpan spans a collection node from its first child to its last,
// falling back to the container's own token when it has no children.
func containerSpan(n ast.Node, ix *LineIndex, baseLine int, children []Span) Span {
	if len(children) == 0 {
		return tokenSpan(n, ix, baseLine, 0)
	}
	start := children[0].Start
	end := children[0].End
	for _, c := range children[1:] {
		if c.Start < start {
			start = c.Start
		}
		if c.End > end {
			end = c.End
		}
	}
	return ix.Span(start, end)
}

func mappingChildSpans(m *Mapping) []Span {
	var spans []Span
	for _, p := range m.Pairs {
		spans = append(spans, p.Key.Span())
		if p.Value != nil {
			spans = append(spans, p.Value.Span())
		}
	}
	return spans
}

func sequenceChildSpans(s *Sequence) []Span {
	var spans []Span
	for _, item := range s.Items {
		if item != nil {
			spans = append(spans, item.Span())
		}
	}
	return spans
}
