package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empiricalrun/flashimpact/internal/types"
)

func TestSitterExtractorTests(t *testing.T) {
	e, err := NewSitterExtractor()
	require.NoError(t, err)

	content := `import { test, expect } from '@playwright/test';

test('login works', async ({ page }) => {
  await page.goto('/login');
  await expect(page).toHaveURL('/home');
});

it("logout works", () => {
  doLogout();
});
`

	blocks := e.Extract("auth.spec.ts", content, types.BlockTest)

	assert.Equal(t, map[string]types.LineSpan{
		"login works":  {Start: 3, End: 6},
		"logout works": {Start: 8, End: 10},
	}, blocks)
}

func TestSitterExtractorIgnoresOtherCallees(t *testing.T) {
	e, err := NewSitterExtractor()
	require.NoError(t, err)

	content := `describe('suite', () => {});
greatest('value');
`

	assert.Empty(t, e.Extract("x.spec.ts", content, types.BlockTest))
}

func TestSitterExtractorFunctions(t *testing.T) {
	e, err := NewSitterExtractor()
	require.NoError(t, err)

	content := `export async function computeTotal(x: number) {
  if (x > 0) {
    return x * 2;
  }
  return 0;
}

const formatLabel = (label: string) => {
  return label.trim();
};

export const legacyHandler = async function () {
  return null;
};
`

	blocks := e.Extract("helpers.ts", content, types.BlockFunction)

	assert.Equal(t, map[string]types.LineSpan{
		"computeTotal":  {Start: 1, End: 6},
		"formatLabel":   {Start: 8, End: 10},
		"legacyHandler": {Start: 12, End: 14},
	}, blocks)
}

func TestSitterExtractorJavaScriptGrammar(t *testing.T) {
	e, err := NewSitterExtractor()
	require.NoError(t, err)

	content := `function legacySetup(config) {
  return config;
}
`

	blocks := e.Extract("setup.js", content, types.BlockFunction)

	assert.Equal(t, map[string]types.LineSpan{
		"legacySetup": {Start: 1, End: 3},
	}, blocks)
}

func TestSitterExtractorEmptyContent(t *testing.T) {
	e, err := NewSitterExtractor()
	require.NoError(t, err)

	assert.Empty(t, e.Extract("a.spec.ts", "", types.BlockTest))
	assert.Empty(t, e.Extract("a.ts", "", types.BlockFunction))
}

func TestSitterExtractorBracesInStringsDoNotDistortSpans(t *testing.T) {
	e, err := NewSitterExtractor()
	require.NoError(t, err)

	// The stray closing brace inside the string literal would close the
	// block early under the lexical scan; the parse tree is immune.
	content := `test('brace soup', async () => {
  await fill('}');
  await submit();
});
`

	blocks := e.Extract("soup.spec.ts", content, types.BlockTest)

	assert.Equal(t, map[string]types.LineSpan{
		"brace soup": {Start: 1, End: 4},
	}, blocks)
}
