package utils

import (
	"reflect"
	"testing"
)

func TestChangedLinesAddition(t *testing.T) {
	diff := `@@ -1,3 +1,4 @@
 context
+added line`

	// The context line advances the cursor from 1 to 2, so the added line
	// lands on line 2 of the new file.
	got := ChangedLines(diff)
	want := map[int]bool{2: true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChangedLines() = %v; want %v", got, want)
	}
}

func TestChangedLinesPureDeletion(t *testing.T) {
	diff := `@@ -5,2 +5,1 @@
-removed line`

	// A deletion is attributed to the line preceding it in the new file.
	got := ChangedLines(diff)
	want := map[int]bool{4: true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChangedLines() = %v; want %v", got, want)
	}
}

func TestChangedLinesDeletionAtFileStart(t *testing.T) {
	diff := `@@ -1,1 +1,0 @@
-first line`

	// Deleting the very first line yields the 0 sentinel, which no real
	// span can contain.
	got := ChangedLines(diff)
	want := map[int]bool{0: true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChangedLines() = %v; want %v", got, want)
	}
}

func TestChangedLinesMixedHunks(t *testing.T) {
	diff := `diff --git a/file.ts b/file.ts
index 83db48f..f735c20 100644
--- a/file.ts
+++ b/file.ts
@@ -1,0 +2,2 @@
+line two
+line three
@@ -10,1 +12,1 @@
-old
+new`

	got := ChangedLines(diff)
	want := map[int]bool{2: true, 3: true, 11: true, 12: true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChangedLines() = %v; want %v", got, want)
	}
}

func TestChangedLinesHeadersDoNotMoveCursor(t *testing.T) {
	diff := `--- a/file.ts
+++ b/file.ts
@@ -1,1 +1,1 @@
-old
+new`

	got := ChangedLines(diff)
	want := map[int]bool{0: true, 1: true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChangedLines() = %v; want %v", got, want)
	}
}

func TestChangedLinesMalformedHunkHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[int]bool
	}{
		{
			name:  "empty diff",
			input: "",
			want:  map[int]bool{},
		},
		{
			name: "unparsable header leaves cursor unchanged",
			input: `@@ -3,1 +3,1 @@
+valid
@@ garbage @@
+after garbage`,
			// The garbage header neither resets nor advances the cursor,
			// so the following addition lands right after the first one.
			want: map[int]bool{3: true, 4: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ChangedLines(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ChangedLines(%q) = %v; want %v", tc.input, got, tc.want)
			}
		})
	}
}
