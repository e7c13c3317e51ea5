package analyzer

import (
	"fmt"

	"github.com/empiricalrun/flashimpact/internal/git"
	"github.com/empiricalrun/flashimpact/internal/types"
)

// fakeClient is an in-memory git.Client serving canned content and diffs.
type fakeClient struct {
	changed    []types.FileChange
	changedErr error
	contents   map[string]string // "revision:path" -> content
	parents    map[string]string // commit -> parent revision
	diffs      map[string]string // "commit:path" -> zero-context diff
	commitDiff string
	testFiles  []string
}

func (f *fakeClient) ChangedFiles(commit string) ([]types.FileChange, error) {
	if f.changedErr != nil {
		return nil, f.changedErr
	}
	return f.changed, nil
}

func (f *fakeClient) FileContent(revision, path string) (string, error) {
	content, ok := f.contents[revision+":"+path]
	if !ok {
		return "", fmt.Errorf("%s at %s: %w", path, revision, git.ErrNotExist)
	}
	return content, nil
}

func (f *fakeClient) ParentRevision(commit string) (string, error) {
	return f.parents[commit], nil
}

func (f *fakeClient) FileDiff(commit, path string) (string, error) {
	return f.diffs[commit+":"+path], nil
}

func (f *fakeClient) CommitDiff(commit string) (string, error) {
	return f.commitDiff, nil
}

func (f *fakeClient) TestFiles(pattern string) ([]string, error) {
	return f.testFiles, nil
}
