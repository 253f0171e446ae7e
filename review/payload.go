/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

import (
	"fmt"
	"strings"
)

// Disposition is the overall verdict attached to a review submission.
type Disposition string

const (
	DispositionComment        Disposition = "COMMENT"
	DispositionApprove        Disposition = "APPROVE"
	DispositionRequestChanges Disposition = "REQUEST_CHANGES"
)

// ParseDisposition canonicalizes a disposition string, case-insensitively.
func ParseDisposition(s string) (Disposition, error) {
	switch d := Disposition(strings.ToUpper(strings.TrimSpace(s))); d {
	case DispositionComment, DispositionApprove, DispositionRequestChanges:
		return d, nil
	default:
		return "", fmt.Errorf("invalid disposition %q: expected COMMENT, APPROVE, or REQUEST_CHANGES", s)
	}
}

// Diff sides as the forge names them: LEFT is the old version (deletions),
// RIGHT is the new version (additions).
const (
	SideLeft  = "LEFT"
	SideRight = "RIGHT"
)

// InlineCommentDraft is a caller-supplied inline comment. Side defaults to
// the new version when empty. A range comment sets StartLine (and optionally
// StartSide); StartLine <= Line is not checked here, the forge rejects the
// whole submission when a range is inverted.
type InlineCommentDraft struct {
	Path      string `json:"path"`
	Line      int    `json:"line"`
	Side      string `json:"side,omitempty"`
	StartLine int    `json:"startLine,omitempty"`
	StartSide string `json:"startSide,omitempty"`
	Body      string `json:"body"`
}

// ValidateDraft checks the locally checkable constraints of a draft.
func ValidateDraft(d InlineCommentDraft) error {
	switch {
	case d.Path == "":
		return fmt.Errorf("inline comment is missing a path")
	case d.Body == "":
		return fmt.Errorf("inline comment on %s is missing a body", d.Path)
	case d.Line < 1:
		return fmt.Errorf("inline comment on %s has line %d: lines are 1-based", d.Path, d.Line)
	case d.StartLine < 0:
		return fmt.Errorf("inline comment on %s has negative startLine %d", d.Path, d.StartLine)
	case d.StartSide != "" && d.StartLine == 0:
		return fmt.Errorf("inline comment on %s sets startSide without startLine", d.Path)
	}
	for _, side := range []string{d.Side, d.StartSide} {
		if side != "" && side != SideLeft && side != SideRight {
			return fmt.Errorf("inline comment on %s has side %q: expected LEFT or RIGHT", d.Path, side)
		}
	}
	return nil
}

// SubmissionComment is the wire form of one inline comment. Optional fields
// carry omitempty so an unset value is genuinely absent from the payload:
// the forge treats absent and null differently for the range fields.
type SubmissionComment struct {
	Path      string `json:"path"`
	Line      int    `json:"line"`
	Side      string `json:"side,omitempty"`
	StartLine int    `json:"start_line,omitempty"`
	StartSide string `json:"start_side,omitempty"`
	Body      string `json:"body"`
}

// ReviewSubmission is the review creation payload. CommitID must be the PR
// head SHA at submission time; it is left empty in dry-run previews, where
// nothing is fetched. With zero inline comments the comments field is omitted
// entirely, never sent as an empty array.
type ReviewSubmission struct {
	CommitID string              `json:"commit_id"`
	Body     string              `json:"body"`
	Event    Disposition         `json:"event"`
	Comments []SubmissionComment `json:"comments,omitempty"`
}

// BuildSubmission maps drafts onto the wire payload. Pure; the same builder
// feeds both dry-run previews and real submissions so the two are isomorphic
// by construction.
func BuildSubmission(commitID, body string, disposition Disposition, drafts []InlineCommentDraft) ReviewSubmission {
	sub := ReviewSubmission{
		CommitID: commitID,
		Body:     body,
		Event:    disposition,
	}
	for _, d := range drafts {
		sub.Comments = append(sub.Comments, SubmissionComment{
			Path:      d.Path,
			Line:      d.Line,
			Side:      d.Side,
			StartLine: d.StartLine,
			StartSide: d.StartSide,
			Body:      d.Body,
		})
	}
	return sub
}

// DryRunPreview is the structural echo of a would-be submission.
type DryRunPreview struct {
	DryRun       bool             `json:"dryRun"`
	PR           string           `json:"pr"`
	CommentCount int              `json:"commentCount"`
	Submission   ReviewSubmission `json:"submission"`
	Warnings     []string         `json:"warnings,omitempty"`
}

// NewDryRunPreview wraps a built submission with its permalink and comment
// count.
func NewDryRunPreview(ref PrRef, sub ReviewSubmission) DryRunPreview {
	return DryRunPreview{
		DryRun:       true,
		PR:           ref.Permalink(),
		CommentCount: len(sub.Comments),
		Submission:   sub,
	}
}

// SubmissionResult confirms an accepted review.
type SubmissionResult struct {
	Success      bool   `json:"success"`
	PR           string `json:"pr"`
	CommentCount int    `json:"commentCount"`
	ReviewID     int64  `json:"reviewId,omitempty"`
	State        string `json:"state,omitempty"`
	URL          string `json:"url,omitempty"`
}
