package utils

import (
	"strings"

	"github.com/sourcegraph/go-diff/diff"

	"github.com/empiricalrun/flashimpact/internal/types"
)

// CommitStats derives per-file addition/deletion counts from a commit's
// full unified diff. A diff that fails to parse yields no stats; the impact
// analysis itself does not depend on them.
func CommitStats(commitDiff string) []types.FileChangeStat {
	if strings.TrimSpace(commitDiff) == "" {
		return nil
	}

	fileDiffs, err := diff.NewMultiFileDiffReader(strings.NewReader(commitDiff)).ReadAllFiles()
	if err != nil {
		return nil
	}

	var stats []types.FileChangeStat
	for _, fd := range fileDiffs {
		s := fd.Stat()
		stats = append(stats, types.FileChangeStat{
			Path:      statPath(fd),
			Additions: int(s.Added + s.Changed),
			Deletions: int(s.Deleted + s.Changed),
		})
	}
	return stats
}

func statPath(fd *diff.FileDiff) string {
	if fd.NewName == "" || fd.NewName == "/dev/null" {
		return strings.TrimPrefix(fd.OrigName, "a/")
	}
	return strings.TrimPrefix(fd.NewName, "b/")
}
