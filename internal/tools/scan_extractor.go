package tools

import (
	"regexp"
	"strings"

	"github.com/empiricalrun/flashimpact/internal/types"
)

// ScanExtractor recovers blocks by lexical scanning: regex anchors for the
// block head plus a per-line brace-balance walk for the extent. It is an
// approximation, not a tokenizer; braces inside strings, comments or regex
// literals are counted like any other and can distort span boundaries.
type ScanExtractor struct{}

func NewScanExtractor() *ScanExtractor {
	return &ScanExtractor{}
}

func (e *ScanExtractor) Name() string {
	return "scan"
}

// Test anchors: test('name', ...) and it('name', ...). The name is the
// quoted literal's contents up to the first closing quote of either kind.
var testPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\btest\(['"](.+?)['"]`),
	regexp.MustCompile(`\bit\(['"](.+?)['"]`),
}

// Function anchors: declarations, arrow-function bindings and
// function-expression bindings, each with optional export/async qualifiers.
var functionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:export\s+)?(?:async\s+)?function\s+(\w+)`),
	regexp.MustCompile(`(?:export\s+)?const\s+(\w+)\s*=\s*(?:async\s+)?\([^)]*\)\s*=>`),
	regexp.MustCompile(`(?:export\s+)?const\s+(\w+)\s*=\s*(?:async\s+)?function\b`),
}

// jsKeywords are identifiers that must never be reported as function
// blocks; control-flow and declaration keywords match the function anchor
// patterns in degenerate inputs.
var jsKeywords = map[string]bool{
	"if": true, "else": true, "for": true, "while": true, "do": true,
	"switch": true, "case": true, "default": true, "break": true,
	"continue": true, "return": true, "function": true, "class": true,
	"interface": true, "extends": true, "implements": true, "import": true,
	"export": true, "from": true, "as": true, "const": true, "let": true,
	"var": true, "typeof": true, "instanceof": true, "new": true,
	"delete": true, "void": true, "this": true, "super": true, "try": true,
	"catch": true, "finally": true, "throw": true, "debugger": true,
	"with": true, "yield": true, "await": true, "async": true,
	"static": true, "public": true, "private": true, "protected": true,
	"readonly": true, "abstract": true, "enum": true, "type": true,
	"namespace": true, "module": true, "require": true, "true": true,
	"false": true, "null": true, "undefined": true, "nan": true,
	"infinity": true,
}

func (e *ScanExtractor) Extract(_, content string, kind types.BlockKind) map[string]types.LineSpan {
	blocks := make(map[string]types.LineSpan)
	if content == "" {
		return blocks
	}

	patterns := testPatterns
	if kind == types.BlockFunction {
		patterns = functionPatterns
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lineNum := i + 1
		for _, pattern := range patterns {
			match := pattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			name := match[1]
			if name == "" {
				continue
			}
			if kind == types.BlockFunction && jsKeywords[strings.ToLower(name)] {
				continue
			}
			blocks[name] = types.LineSpan{
				Start: lineNum,
				End:   blockEnd(lines, lineNum),
			}
		}
	}

	return blocks
}

// blockEnd scans forward from the anchor line, accumulating the brace
// balance per physical line. The block opens once the balance first goes
// positive and ends on the first line where it returns to exactly zero.
// Without a closing boundary the block runs to the last line.
func blockEnd(lines []string, start int) int {
	balance := 0
	open := false

	for i := start - 1; i < len(lines); i++ {
		balance += strings.Count(lines[i], "{") - strings.Count(lines[i], "}")

		if balance > 0 {
			open = true
		} else if open && balance == 0 {
			return i + 1
		}
	}

	return len(lines)
}
