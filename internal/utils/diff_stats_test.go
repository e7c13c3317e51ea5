package utils

import (
	"reflect"
	"testing"

	"github.com/empiricalrun/flashimpact/internal/types"
)

func TestCommitStats(t *testing.T) {
	commitDiff := `diff --git a/utils/helpers.ts b/utils/helpers.ts
index 83db48f..f735c20 100644
--- a/utils/helpers.ts
+++ b/utils/helpers.ts
@@ -1,3 +1,5 @@
 export function computeTotal(x: number) {
+  const base = 2;
+  const extra = 1;
   return x;
 }
diff --git a/tests/old.spec.ts b/tests/old.spec.ts
deleted file mode 100644
index 1234567..0000000
--- a/tests/old.spec.ts
+++ /dev/null
@@ -1,2 +0,0 @@
-test('old', async () => {
-});
`

	got := CommitStats(commitDiff)
	want := []types.FileChangeStat{
		{Path: "utils/helpers.ts", Additions: 2, Deletions: 0},
		{Path: "tests/old.spec.ts", Additions: 0, Deletions: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CommitStats() = %v; want %v", got, want)
	}
}

func TestCommitStatsEmptyAndMalformed(t *testing.T) {
	if got := CommitStats(""); got != nil {
		t.Errorf("CommitStats(empty) = %v; want nil", got)
	}
	if got := CommitStats("not a diff at all"); got != nil {
		t.Errorf("CommitStats(garbage) = %v; want nil", got)
	}
}
