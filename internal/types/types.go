package types

// ChangeType classifies how a block (test or function) changed in a commit.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeRemoved  ChangeType = "removed"
)

// FileStatus is the per-file status from a name-status diff.
type FileStatus string

const (
	FileAdded    FileStatus = "A"
	FileModified FileStatus = "M"
	FileDeleted  FileStatus = "D"
)

// FileChange is one entry of a commit's name-status listing.
type FileChange struct {
	Status FileStatus
	Path   string
}

// LineSpan is the inclusive 1-indexed line range a named block occupies
// in one version of a file.
type LineSpan struct {
	Start int
	End   int
}

// Contains reports whether the given line falls inside the span.
func (s LineSpan) Contains(line int) bool {
	return line >= s.Start && line <= s.End
}

// BlockKind selects what the block extractor anchors on.
type BlockKind int

const (
	// BlockTest anchors on test("name", ...) / it("name", ...) invocations.
	BlockTest BlockKind = iota
	// BlockFunction anchors on function declarations and bound
	// arrow/function-expression identifiers.
	BlockFunction
)

// TestImpact is the sole output record of an analysis run.
// ImpactedByHelper is set only for helper-induced impacts, in the form
// "helper/path.ts:functionName"; it is never set for direct impacts.
type TestImpact struct {
	TestName         string     `json:"test_name"`
	FilePath         string     `json:"file_path"`
	ChangeType       ChangeType `json:"change_type"`
	LinesChanged     []int      `json:"lines_changed,omitempty"`
	ImpactedByHelper string     `json:"impacted_by_helper,omitempty"`
}

// Key is the presentation-uniqueness key for deduplication.
func (t TestImpact) Key() string {
	return t.FilePath + ":" + t.TestName
}

// FunctionChange records a helper function classified as changed in a commit.
type FunctionChange struct {
	Name       string
	ChangeType ChangeType
}

// FileChangeStat is the per-file change footprint of a commit, derived from
// the full unified diff.
type FileChangeStat struct {
	Path      string `json:"path"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}
