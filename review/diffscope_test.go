/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

import (
	"strings"
	"testing"
)

const testDiff = `diff --git a/widget.go b/widget.go
index 83db48f..bf269f4 100644
--- a/widget.go
+++ b/widget.go
@@ -10,3 +10,4 @@ func widget() {
 	a
-	b
+	c
+	d
 	e
`

func TestDiffScopeContains(t *testing.T) {
	scope, err := NewDiffScope(testDiff)
	if err != nil {
		t.Fatalf("NewDiffScope: %v", err)
	}

	tests := []struct {
		path string
		line int
		side string
		want bool
	}{
		{"widget.go", 11, SideRight, true},  // added line
		{"widget.go", 12, SideRight, true},  // added line
		{"widget.go", 10, "", true},         // context line, default side
		{"widget.go", 11, SideLeft, true},   // removed line
		{"widget.go", 99, SideRight, false}, // outside the hunk
		{"widget.go", 99, SideLeft, false},
		{"other.go", 11, SideRight, false}, // untouched file
	}
	for _, tt := range tests {
		if got := scope.Contains(tt.path, tt.line, tt.side); got != tt.want {
			t.Errorf("Contains(%q, %d, %q) = %v, want %v", tt.path, tt.line, tt.side, got, tt.want)
		}
	}
}

func TestDiffScopeCheck(t *testing.T) {
	scope, err := NewDiffScope(testDiff)
	if err != nil {
		t.Fatalf("NewDiffScope: %v", err)
	}

	warnings := scope.Check([]InlineCommentDraft{
		{Path: "widget.go", Line: 11, Body: "fine"},
		{Path: "widget.go", Line: 99, Body: "off the map"},
		{Path: "widget.go", Line: 13, StartLine: 2, Body: "range start off the map"},
	})

	if len(warnings) != 2 {
		t.Fatalf("Check returned %d warnings, want 2: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "line 99") {
		t.Errorf("warning[0] = %q, want it to name line 99", warnings[0])
	}
	if !strings.Contains(warnings[1], "start line 2") {
		t.Errorf("warning[1] = %q, want it to name start line 2", warnings[1])
	}
}

func TestDiffScopeEmptyDiff(t *testing.T) {
	scope, err := NewDiffScope("")
	if err != nil {
		t.Fatalf("NewDiffScope: %v", err)
	}
	if scope.Contains("a.go", 1, SideRight) {
		t.Error("empty diff should contain nothing")
	}
}
