package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// Matches hunk headers like @@ -12,3 +14,6 @@ with optional counts.
var hunkHeaderPattern = regexp.MustCompile(`@@ -\d+(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// ChangedLines maps a zero-context unified diff for one file to the set of
// line numbers touched in the new version of that file. Added lines are
// recorded at their new position. A deleted line has no position in the new
// file, so it is attributed to the line immediately preceding the deletion
// point; a deletion at the very start of the file therefore records the
// sentinel 0, which can never fall inside a real span. Hunk headers that do
// not parse are skipped and leave the cursor where it was.
func ChangedLines(diff string) map[int]bool {
	changed := make(map[int]bool)
	cursor := 0

	for line := range strings.SplitSeq(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "@@"):
			if m := hunkHeaderPattern.FindStringSubmatch(line); m != nil {
				cursor, _ = strconv.Atoi(m[1])
			}
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			// File headers are not content; the cursor does not move.
		case strings.HasPrefix(line, "+"):
			changed[cursor] = true
			cursor++
		case strings.HasPrefix(line, "-"):
			changed[cursor-1] = true
		default:
			cursor++
		}
	}

	return changed
}
