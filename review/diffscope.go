/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

import (
	"fmt"

	"github.com/waigani/diffparser"
)

// DiffScope indexes which file lines a unified diff actually touches, per
// side. It backs the advisory warnings on dry-run previews; the forge's own
// validation stays authoritative for real submissions.
type DiffScope struct {
	right map[string]map[int]bool
	left  map[string]map[int]bool
}

// NewDiffScope parses a unified diff into a line index.
func NewDiffScope(diff string) (*DiffScope, error) {
	parsed, err := diffparser.Parse(diff)
	if err != nil {
		return nil, fmt.Errorf("parsing diff: %w", err)
	}

	scope := &DiffScope{
		right: make(map[string]map[int]bool),
		left:  make(map[string]map[int]bool),
	}
	for _, file := range parsed.Files {
		for _, hunk := range file.Hunks {
			for _, line := range hunk.NewRange.Lines {
				scope.add(scope.right, file.NewName, line.Number)
			}
			for _, line := range hunk.OrigRange.Lines {
				scope.add(scope.left, file.OrigName, line.Number)
			}
		}
	}
	return scope, nil
}

func (s *DiffScope) add(side map[string]map[int]bool, path string, line int) {
	if path == "" || line < 1 {
		return
	}
	if side[path] == nil {
		side[path] = make(map[int]bool)
	}
	side[path][line] = true
}

// Contains reports whether the diff shows the given line. An empty side means
// RIGHT, matching the forge default for unset comment sides.
func (s *DiffScope) Contains(path string, line int, side string) bool {
	if side == SideLeft {
		return s.left[path][line]
	}
	return s.right[path][line]
}

// Check returns one warning per draft anchor that falls outside the diff.
// An empty result means every anchor was found. An unset startSide inherits
// the comment's side, mirroring the forge's defaulting.
func (s *DiffScope) Check(drafts []InlineCommentDraft) []string {
	var warnings []string
	for _, d := range drafts {
		if !s.Contains(d.Path, d.Line, d.Side) {
			warnings = append(warnings, fmt.Sprintf(
				"%s line %d (%s) is not part of the diff; submission would be rejected",
				d.Path, d.Line, sideOrDefault(d.Side)))
		}
		startSide := d.StartSide
		if startSide == "" {
			startSide = d.Side
		}
		if d.StartLine > 0 && !s.Contains(d.Path, d.StartLine, startSide) {
			warnings = append(warnings, fmt.Sprintf(
				"%s start line %d (%s) is not part of the diff; submission would be rejected",
				d.Path, d.StartLine, sideOrDefault(startSide)))
		}
	}
	return warnings
}

func sideOrDefault(side string) string {
	if side == "" {
		return SideRight
	}
	return side
}
