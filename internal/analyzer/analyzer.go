package analyzer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/empiricalrun/flashimpact/internal/git"
	"github.com/empiricalrun/flashimpact/internal/tools"
	"github.com/empiricalrun/flashimpact/internal/types"
	"github.com/empiricalrun/flashimpact/internal/utils"
	"github.com/empiricalrun/flashimpact/pkg/config"
)

// Analyzer drives the per-commit impact analysis: it walks the commit's
// changed files, classifies direct test changes, correlates helper changes
// to tests, and merges the results.
type Analyzer struct {
	client     git.Client
	extractor  tools.Extractor
	correlator *Correlator
	cfg        *config.Config

	Verbose bool
	Out     io.Writer
}

func New(client git.Client, extractor tools.Extractor, cfg *config.Config) *Analyzer {
	return &Analyzer{
		client:     client,
		extractor:  extractor,
		correlator: NewCorrelator(client, extractor, cfg.TestFileGlob()),
		cfg:        cfg,
		Out:        os.Stdout,
	}
}

// AnalyzeCommit produces the deduplicated impact list for one commit.
// Per-file failures degrade to empty content and skip that file's
// contribution; only the initial changed-file listing is allowed to fail
// the run.
func (a *Analyzer) AnalyzeCommit(commit string) ([]types.TestImpact, error) {
	changedFiles, err := a.client.ChangedFiles(commit)
	if err != nil {
		return nil, fmt.Errorf("failed to list changed files for %s: %w", commit, err)
	}

	var testFiles, helperFiles []types.FileChange
	for _, fc := range changedFiles {
		switch {
		case strings.HasSuffix(fc.Path, a.cfg.TestFileSuffix):
			testFiles = append(testFiles, fc)
		case a.isHelperFile(fc.Path):
			helperFiles = append(helperFiles, fc)
		}
	}

	a.logf("Total files changed: %d (%d test, %d helper)\n", len(changedFiles), len(testFiles), len(helperFiles))

	var direct []types.TestImpact
	for _, fc := range testFiles {
		a.logf("Analyzing test file: %s (%s)\n", fc.Path, fc.Status)
		direct = append(direct, a.analyzeTestFile(commit, fc)...)
	}

	var helper []types.TestImpact
	for _, fc := range helperFiles {
		a.logf("Analyzing helper file: %s (%s)\n", fc.Path, fc.Status)
		helper = append(helper, a.analyzeHelperFile(commit, fc)...)
	}

	return Aggregate(direct, helper), nil
}

func (a *Analyzer) analyzeTestFile(commit string, fc types.FileChange) []types.TestImpact {
	current := a.contentAt(commit, fc.Path)
	previous := a.previousContent(commit, fc.Path)
	changedLines := utils.ChangedLines(a.fileDiff(commit, fc.Path))

	currentBlocks := a.extractor.Extract(fc.Path, current, types.BlockTest)
	previousBlocks := a.extractor.Extract(fc.Path, previous, types.BlockTest)

	impacts := ClassifyTests(currentBlocks, previousBlocks, changedLines, fc.Status, fc.Path)
	if len(impacts) > 0 {
		a.logf("  Found %d impacted test(s)\n", len(impacts))
	}
	return impacts
}

func (a *Analyzer) analyzeHelperFile(commit string, fc types.FileChange) []types.TestImpact {
	var changes []types.FunctionChange

	switch fc.Status {
	case types.FileAdded:
		current := a.contentAt(commit, fc.Path)
		blocks := a.extractor.Extract(fc.Path, current, types.BlockFunction)
		changes = ClassifyFunctions(blocks, nil, nil, types.FileAdded)
	case types.FileDeleted:
		previous := a.previousContent(commit, fc.Path)
		blocks := a.extractor.Extract(fc.Path, previous, types.BlockFunction)
		changes = ClassifyFunctions(nil, blocks, nil, types.FileDeleted)
	default:
		current := a.contentAt(commit, fc.Path)
		previous := a.previousContent(commit, fc.Path)
		if current == "" || previous == "" {
			// Without both versions there is nothing to compare at
			// line level; the file contributes no helper impacts.
			return nil
		}
		changedLines := utils.ChangedLines(a.fileDiff(commit, fc.Path))
		currentBlocks := a.extractor.Extract(fc.Path, current, types.BlockFunction)
		previousBlocks := a.extractor.Extract(fc.Path, previous, types.BlockFunction)
		changes = ClassifyFunctions(currentBlocks, previousBlocks, changedLines, fc.Status)
	}

	if len(changes) == 0 {
		a.logf("  No changed functions found in %s\n", fc.Path)
		return nil
	}

	names := make([]string, 0, len(changes))
	for _, change := range changes {
		names = append(names, change.Name)
	}
	a.logf("  Changed function(s): %s\n", strings.Join(names, ", "))

	impacts, err := a.correlator.Correlate(fc.Path, names)
	if err != nil {
		a.logf("  Correlation failed for %s: %v\n", fc.Path, err)
		return nil
	}
	a.logf("  Found %d test(s) using changed functions\n", len(impacts))
	return impacts
}

// contentAt fetches file content at a revision, degrading to empty on
// absence or failure. Absence is expected (added/deleted files); other
// failures are only surfaced in verbose mode.
func (a *Analyzer) contentAt(revision, path string) string {
	content, err := a.client.FileContent(revision, path)
	if err != nil {
		if !errors.Is(err, git.ErrNotExist) {
			a.logf("  Could not read %s at %s: %v\n", path, revision, err)
		}
		return ""
	}
	return content
}

func (a *Analyzer) previousContent(commit, path string) string {
	parent, err := a.client.ParentRevision(commit)
	if err != nil {
		a.logf("  Could not resolve parent of %s: %v\n", commit, err)
		return ""
	}
	if parent == "" {
		// Root commit: there is no previous version of anything.
		return ""
	}
	return a.contentAt(parent, path)
}

func (a *Analyzer) fileDiff(commit, path string) string {
	diff, err := a.client.FileDiff(commit, path)
	if err != nil {
		a.logf("  Could not get diff for %s: %v\n", path, err)
		return ""
	}
	return diff
}

func (a *Analyzer) isHelperFile(path string) bool {
	for _, ext := range a.cfg.HelperExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func (a *Analyzer) logf(format string, args ...any) {
	if a.Verbose && a.Out != nil {
		fmt.Fprintf(a.Out, format, args...)
	}
}
