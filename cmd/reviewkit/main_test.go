/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"strings"
	"testing"

	"chainguard.dev/reviewkit/review"
	"github.com/google/go-cmp/cmp"
)

func TestRootCmdWiring(t *testing.T) {
	root := rootCmd(config{GhBinary: "gh"})

	want := []string{"snapshot", "comments", "submit", "review", "skills"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}

	for _, flag := range []string{"repo", "json"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("root command missing persistent flag %q", flag)
		}
	}
}

func TestReadDrafts(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		stdin   string
		want    []review.InlineCommentDraft
		wantErr bool
	}{{
		name: "no path",
		path: "",
		want: nil,
	}, {
		name:  "stdin array",
		path:  "-",
		stdin: `[{"path": "pkg/foo.go", "line": 42, "body": "nit"}]`,
		want: []review.InlineCommentDraft{{
			Path: "pkg/foo.go",
			Line: 42,
			Body: "nit",
		}},
	}, {
		name:  "range comment",
		path:  "-",
		stdin: `[{"path": "pkg/foo.go", "line": 10, "startLine": 5, "side": "RIGHT", "body": "b"}]`,
		want: []review.InlineCommentDraft{{
			Path:      "pkg/foo.go",
			Line:      10,
			StartLine: 5,
			Side:      "RIGHT",
			Body:      "b",
		}},
	}, {
		name:    "unknown field rejected",
		path:    "-",
		stdin:   `[{"path": "pkg/foo.go", "line": 1, "body": "b", "position": 3}]`,
		wantErr: true,
	}, {
		name:    "not an array",
		path:    "-",
		stdin:   `{"path": "pkg/foo.go"}`,
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readDrafts(tt.path, strings.NewReader(tt.stdin))
			if tt.wantErr {
				if err == nil {
					t.Fatal("readDrafts() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("readDrafts() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("readDrafts() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"one line", "one line"},
		{"first\nsecond", "first"},
		{"  padded  \nrest", "padded"},
		{strings.Repeat("x", 100), strings.Repeat("x", 69) + "..."},
		{"", ""},
	}
	for _, tt := range tests {
		if got := firstLine(tt.in); got != tt.want {
			t.Errorf("firstLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
