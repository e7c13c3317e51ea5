package git

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Acquire resolves the repository to analyze. If localPath points at an
// existing directory it is used directly and cleanup is a no-op; otherwise
// repoURL is cloned into a temporary directory that cleanup removes.
func Acquire(localPath, repoURL string) (string, func(), error) {
	if localPath != "" {
		if _, err := os.Stat(localPath); err == nil {
			return localPath, func() {}, nil
		}
	}

	tempDir, err := os.MkdirTemp("", "flash-tests-")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	cmd := exec.Command("git", "clone", repoURL, tempDir)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.RemoveAll(tempDir)
		return "", nil, fmt.Errorf("failed to clone %s: %w: %s", repoURL, err, strings.TrimSpace(stderr.String()))
	}

	cleanup := func() { os.RemoveAll(tempDir) }
	return tempDir, cleanup, nil
}
