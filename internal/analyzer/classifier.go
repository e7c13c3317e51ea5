package analyzer

import (
	"sort"

	"github.com/empiricalrun/flashimpact/internal/types"
)

// ClassifyTests turns the block maps of both file versions plus the
// changed-line set into per-test impact records for one directly changed
// test file.
//
// Policy by file status: an added file reports every current test as Added;
// a deleted file reports every previous test as Removed. For a modified
// file, names only in the current version are Added, names only in the
// previous version are Removed, and names in both are Modified iff at
// least one changed line falls inside the current span. A block that moved
// without content edits inside its new span produces no impact.
func ClassifyTests(current, previous map[string]types.LineSpan, changedLines map[int]bool, status types.FileStatus, filePath string) []types.TestImpact {
	var impacts []types.TestImpact

	switch status {
	case types.FileAdded:
		for name := range current {
			impacts = append(impacts, types.TestImpact{
				TestName:   name,
				FilePath:   filePath,
				ChangeType: types.ChangeAdded,
			})
		}
	case types.FileDeleted:
		for name := range previous {
			impacts = append(impacts, types.TestImpact{
				TestName:   name,
				FilePath:   filePath,
				ChangeType: types.ChangeRemoved,
			})
		}
	default:
		for name := range current {
			if _, ok := previous[name]; !ok {
				impacts = append(impacts, types.TestImpact{
					TestName:   name,
					FilePath:   filePath,
					ChangeType: types.ChangeAdded,
				})
			}
		}
		for name := range previous {
			if _, ok := current[name]; !ok {
				impacts = append(impacts, types.TestImpact{
					TestName:   name,
					FilePath:   filePath,
					ChangeType: types.ChangeRemoved,
				})
			}
		}
		for name, span := range current {
			if _, ok := previous[name]; !ok {
				continue
			}
			// Only the current span matters for the overlap test.
			lines := intersectingLines(span, changedLines)
			if len(lines) > 0 {
				impacts = append(impacts, types.TestImpact{
					TestName:     name,
					FilePath:     filePath,
					ChangeType:   types.ChangeModified,
					LinesChanged: lines,
				})
			}
		}
	}

	sort.Slice(impacts, func(i, j int) bool {
		return impacts[i].TestName < impacts[j].TestName
	})
	return impacts
}

// ClassifyFunctions is the function-kind variant: same status policy, but
// the output is a flat list of changed helper functions for the usage
// correlator. Every record counts as "changed" downstream regardless of
// its change type.
func ClassifyFunctions(current, previous map[string]types.LineSpan, changedLines map[int]bool, status types.FileStatus) []types.FunctionChange {
	var changes []types.FunctionChange

	switch status {
	case types.FileAdded:
		for name := range current {
			changes = append(changes, types.FunctionChange{Name: name, ChangeType: types.ChangeAdded})
		}
	case types.FileDeleted:
		for name := range previous {
			changes = append(changes, types.FunctionChange{Name: name, ChangeType: types.ChangeRemoved})
		}
	default:
		for name := range current {
			if _, ok := previous[name]; !ok {
				changes = append(changes, types.FunctionChange{Name: name, ChangeType: types.ChangeAdded})
			}
		}
		for name := range previous {
			if _, ok := current[name]; !ok {
				changes = append(changes, types.FunctionChange{Name: name, ChangeType: types.ChangeRemoved})
			}
		}
		for name, span := range current {
			if _, ok := previous[name]; !ok {
				continue
			}
			if len(intersectingLines(span, changedLines)) > 0 {
				changes = append(changes, types.FunctionChange{Name: name, ChangeType: types.ChangeModified})
			}
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Name < changes[j].Name
	})
	return changes
}

func intersectingLines(span types.LineSpan, changedLines map[int]bool) []int {
	var lines []int
	for line := range changedLines {
		if span.Contains(line) {
			lines = append(lines, line)
		}
	}
	sort.Ints(lines)
	return lines
}
