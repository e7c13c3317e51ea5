package analyzer

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/empiricalrun/flashimpact/internal/git"
	"github.com/empiricalrun/flashimpact/internal/tools"
	"github.com/empiricalrun/flashimpact/internal/types"
)

// Correlator finds tests that lexically invoke changed helper functions.
type Correlator struct {
	client          git.Client
	extractor       tools.Extractor
	testFilePattern string
}

func NewCorrelator(client git.Client, extractor tools.Extractor, testFilePattern string) *Correlator {
	return &Correlator{
		client:          client,
		extractor:       extractor,
		testFilePattern: testFilePattern,
	}
}

// Correlate scans the test corpus at HEAD for invocations of any of the
// changed functions from one helper file. Matching is two-stage: a cheap
// whole-file word-boundary check rejects files that never mention any of
// the names, then each recovered test block is sliced out and probed for
// "name(" or "name." occurrences. A test invoking several changed
// functions yields one record per function; deduplication is the
// aggregator's job, not ours.
func (c *Correlator) Correlate(helperPath string, functions []string) ([]types.TestImpact, error) {
	if len(functions) == 0 {
		return nil, nil
	}

	mentionPatterns := make(map[string]*regexp.Regexp, len(functions))
	invokePatterns := make(map[string]*regexp.Regexp, len(functions))
	for _, fn := range functions {
		quoted := regexp.QuoteMeta(fn)
		mentionPatterns[fn] = regexp.MustCompile(`\b` + quoted + `\b`)
		invokePatterns[fn] = regexp.MustCompile(`\b` + quoted + `\s*(?:\(|\.)`)
	}

	testFiles, err := c.client.TestFiles(c.testFilePattern)
	if err != nil {
		return nil, err
	}

	var impacts []types.TestImpact

	for _, testFile := range testFiles {
		content, err := c.client.FileContent("HEAD", testFile)
		if err != nil && !errors.Is(err, git.ErrNotExist) {
			continue
		}
		if content == "" {
			continue
		}

		content = strings.ReplaceAll(content, "\r\n", "\n")
		content = strings.ReplaceAll(content, "\r", "\n")

		if !mentionsAny(content, functions, mentionPatterns) {
			continue
		}

		testBlocks := c.extractor.Extract(testFile, content, types.BlockTest)
		if len(testBlocks) == 0 {
			continue
		}

		lines := strings.Split(content, "\n")
		for testName, span := range testBlocks {
			block := sliceSpan(lines, span)
			for _, fn := range functions {
				if invokePatterns[fn].MatchString(block) {
					impacts = append(impacts, types.TestImpact{
						TestName:         strings.TrimSpace(testName),
						FilePath:         testFile,
						ChangeType:       types.ChangeModified,
						ImpactedByHelper: helperPath + ":" + fn,
					})
				}
			}
		}
	}

	sort.Slice(impacts, func(i, j int) bool {
		if impacts[i].FilePath != impacts[j].FilePath {
			return impacts[i].FilePath < impacts[j].FilePath
		}
		if impacts[i].TestName != impacts[j].TestName {
			return impacts[i].TestName < impacts[j].TestName
		}
		return impacts[i].ImpactedByHelper < impacts[j].ImpactedByHelper
	})
	return impacts, nil
}

func mentionsAny(content string, functions []string, patterns map[string]*regexp.Regexp) bool {
	for _, fn := range functions {
		if patterns[fn].MatchString(content) {
			return true
		}
	}
	return false
}

func sliceSpan(lines []string, span types.LineSpan) string {
	start := span.Start - 1
	end := span.End
	if start < 0 {
		start = 0
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start >= end {
		return ""
	}
	return strings.Join(lines[start:end], "\n")
}
