package tools

import (
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/empiricalrun/flashimpact/internal/types"
)

// SitterExtractor is the tree-sitter backed alternative to the lexical
// scan. It honors the same contract (name -> span, last wins) but takes
// block boundaries from a real parse tree, so braces inside strings and
// comments cannot distort spans.
type SitterExtractor struct {
	tsLanguage *sitter.Language
	jsLanguage *sitter.Language
	tsParser   *sitter.Parser
	jsParser   *sitter.Parser
}

func NewSitterExtractor() (*SitterExtractor, error) {
	tsLang := sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	jsLang := sitter.NewLanguage(tree_sitter_javascript.Language())

	tsParser := sitter.NewParser()
	if err := tsParser.SetLanguage(tsLang); err != nil {
		return nil, fmt.Errorf("failed to set typescript language: %w", err)
	}

	jsParser := sitter.NewParser()
	if err := jsParser.SetLanguage(jsLang); err != nil {
		return nil, fmt.Errorf("failed to set javascript language: %w", err)
	}

	return &SitterExtractor{
		tsLanguage: tsLang,
		jsLanguage: jsLang,
		tsParser:   tsParser,
		jsParser:   jsParser,
	}, nil
}

func (e *SitterExtractor) Name() string {
	return "sitter"
}

const sitterTestQuery = `
(call_expression
	function: (identifier) @callee
	arguments: (arguments . (string) @title)) @block
`

const sitterFunctionQuery = `
(function_declaration name: (identifier) @name) @block
(variable_declarator
	name: (identifier) @name
	value: (arrow_function)) @block
(variable_declarator
	name: (identifier) @name
	value: (function_expression)) @block
`

func (e *SitterExtractor) Extract(filePath, content string, kind types.BlockKind) map[string]types.LineSpan {
	blocks := make(map[string]types.LineSpan)
	if content == "" {
		return blocks
	}

	parser, language := e.tsParser, e.tsLanguage
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".js", ".jsx", ".mjs", ".cjs":
		parser, language = e.jsParser, e.jsLanguage
	}

	src := []byte(content)
	tree := parser.Parse(src, nil)
	if tree == nil {
		return blocks
	}
	defer tree.Close()

	queryText := sitterTestQuery
	if kind == types.BlockFunction {
		queryText = sitterFunctionQuery
	}

	q, err := sitter.NewQuery(language, queryText)
	if err != nil {
		return blocks
	}
	defer q.Close()

	captureNames := q.CaptureNames()
	qc := sitter.NewQueryCursor()
	matches := qc.Matches(q, tree.RootNode(), src)

	for {
		m := matches.Next()
		if m == nil {
			break
		}

		var name, callee string
		var span types.LineSpan

		for _, c := range m.Captures {
			node := c.Node
			switch captureNames[c.Index] {
			case "block":
				span = types.LineSpan{
					Start: int(node.StartPosition().Row) + 1,
					End:   int(node.EndPosition().Row) + 1,
				}
			case "callee":
				callee = node.Utf8Text(src)
			case "title":
				name = stripQuotes(node.Utf8Text(src))
			case "name":
				name = node.Utf8Text(src)
			}
		}

		if kind == types.BlockTest && callee != "test" && callee != "it" {
			continue
		}
		if kind == types.BlockFunction && jsKeywords[strings.ToLower(name)] {
			continue
		}
		if name == "" || span.Start == 0 {
			continue
		}

		blocks[name] = span
	}

	return blocks
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"' || first == '`') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
