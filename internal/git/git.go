package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/empiricalrun/flashimpact/internal/types"
)

// ErrNotExist reports that a path does not exist at the requested revision.
// It lets callers tell "absent" apart from an unrelated command failure,
// even though both usually degrade to empty content.
var ErrNotExist = errors.New("path does not exist at revision")

// Client is the version-control surface the analyzer depends on.
// Implementations must be safe to call sequentially for one run; the
// analyzer performs no concurrent calls.
type Client interface {
	// ChangedFiles returns the name-status listing for commit^..commit.
	ChangedFiles(commit string) ([]types.FileChange, error)
	// FileContent returns the file content at a revision. A missing path
	// yields "" and an error wrapping ErrNotExist.
	FileContent(revision, path string) (string, error)
	// ParentRevision returns the first parent of a commit, or "" for a
	// root commit.
	ParentRevision(commit string) (string, error)
	// FileDiff returns the zero-context unified diff of one path between
	// a commit and its parent.
	FileDiff(commit, path string) (string, error)
	// CommitDiff returns the commit's full unified diff with context.
	CommitDiff(commit string) (string, error)
	// TestFiles lists tracked paths matching the test file pattern.
	TestFiles(pattern string) ([]string, error)
}

// CLIClient runs the git binary against a local repository.
type CLIClient struct {
	RepoPath string
}

func NewCLIClient(repoPath string) *CLIClient {
	return &CLIClient{RepoPath: repoPath}
}

func (c *CLIClient) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.RepoPath

	var stderr strings.Builder
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return string(output), nil
}

func (c *CLIClient) ChangedFiles(commit string) ([]types.FileChange, error) {
	output, err := c.run("diff", "--name-status", commit+"^.."+commit)
	if err != nil {
		return nil, err
	}
	return ParseNameStatus(output), nil
}

func (c *CLIClient) FileContent(revision, path string) (string, error) {
	cmd := exec.Command("git", "show", revision+":"+path)
	cmd.Dir = c.RepoPath

	var stderr strings.Builder
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		msg := stderr.String()
		if strings.Contains(msg, "does not exist") || strings.Contains(msg, "exists on disk, but not in") {
			return "", fmt.Errorf("%s at %s: %w", path, revision, ErrNotExist)
		}
		return "", fmt.Errorf("git show %s:%s: %w: %s", revision, path, err, strings.TrimSpace(msg))
	}
	return string(output), nil
}

func (c *CLIClient) ParentRevision(commit string) (string, error) {
	cmd := exec.Command("git", "rev-parse", commit+"^")
	cmd.Dir = c.RepoPath

	var stderr strings.Builder
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		// A root commit has no parent; rev-parse reports it as an
		// unknown revision rather than a distinct condition.
		if strings.Contains(stderr.String(), "unknown revision") {
			return "", nil
		}
		return "", fmt.Errorf("git rev-parse %s^: %w: %s", commit, err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(string(output)), nil
}

func (c *CLIClient) FileDiff(commit, path string) (string, error) {
	parent, err := c.ParentRevision(commit)
	if err != nil {
		return "", err
	}
	if parent == "" {
		// Root commit: show renders the diff against the empty tree.
		return c.run("show", "--format=", "--unified=0", commit, "--", path)
	}
	return c.run("diff", "--unified=0", parent+".."+commit, "--", path)
}

func (c *CLIClient) CommitDiff(commit string) (string, error) {
	return c.run("show", "--format=", commit)
}

func (c *CLIClient) TestFiles(pattern string) ([]string, error) {
	output, err := c.run("ls-files", "--", pattern)
	if err != nil {
		return nil, err
	}

	var files []string
	for line := range strings.SplitSeq(strings.TrimSpace(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// ParseNameStatus parses `git diff --name-status` output. Rename and copy
// entries carry a similarity score and two paths; the destination path is
// the one that exists at the commit, so that is the one analyzed.
func ParseNameStatus(output string) []types.FileChange {
	var changes []types.FileChange

	for line := range strings.SplitSeq(strings.TrimSpace(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}

		changes = append(changes, types.FileChange{
			Status: statusFromLetter(fields[0]),
			Path:   fields[len(fields)-1],
		})
	}
	return changes
}

func statusFromLetter(status string) types.FileStatus {
	switch {
	case strings.HasPrefix(status, "A"):
		return types.FileAdded
	case strings.HasPrefix(status, "D"):
		return types.FileDeleted
	default:
		// M, R<score>, C<score>, T and anything else are treated as
		// modifications of the destination path.
		return types.FileModified
	}
}
