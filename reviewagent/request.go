/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reviewagent

import (
	"chainguard.dev/reviewkit/agents/promptbuilder"
)

// Request describes the pull request to review. It binds into the user
// prompt as a YAML block under the review_request token.
type Request struct {
	// Repository optionally pins "owner/repo" when PullRequest is a bare
	// number. Empty means the ambient repository.
	Repository string `json:"repository,omitempty" yaml:"repository,omitempty"`

	// PullRequest identifies the PR, as a number or a full URL.
	PullRequest string `json:"pullRequest" yaml:"pullRequest"`

	// Round counts repeated reviews of the same PR, starting at 1.
	Round int `json:"round,omitempty" yaml:"round,omitempty"`

	// DryRun previews the submission instead of posting it.
	DryRun bool `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`

	// Instructions carries optional operator guidance, such as areas to
	// focus on or known follow-up work to ignore.
	Instructions string `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// Bind implements promptbuilder.Bindable.
func (r *Request) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	return p.BindYAML("review_request", r)
}
