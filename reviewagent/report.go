/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reviewagent

import (
	"chainguard.dev/reviewkit/review"
)

// Report is the structured outcome of a review run. The agent returns it
// through the submit_result tool after submitting (or previewing) the
// review with submit_pr_review.
type Report struct {
	_ struct{} `submitresult:"name=submit_result,description=Report the outcome of the finished review.,success=Review report recorded.,payload=report,payloaddescription=The completed review report"`

	// Disposition is the verdict the review was filed with.
	Disposition string `json:"disposition" jsonschema:"required,enum=COMMENT,enum=APPROVE,enum=REQUEST_CHANGES,description=The verdict the review was filed with"`

	// Summary is the top-level review body that was posted.
	Summary string `json:"summary" jsonschema:"required,description=The top-level review body"`

	// Comments are the inline comments included in the review.
	Comments []review.InlineCommentDraft `json:"comments,omitempty" jsonschema:"description=The inline comments included in the review"`

	// Submitted reports whether a review was actually posted. False for
	// dry runs and for reviews the forge rejected.
	Submitted bool `json:"submitted" jsonschema:"description=Whether the review was actually posted rather than previewed"`

	// ReviewURL links to the posted review when one exists.
	ReviewURL string `json:"reviewUrl,omitempty" jsonschema:"description=Link to the posted review when one exists"`

	// Warnings surfaces anything the operator should know, such as
	// comments the diff scope check flagged during a dry run.
	Warnings []string `json:"warnings,omitempty" jsonschema:"description=Anything the operator should know about the run"`
}
