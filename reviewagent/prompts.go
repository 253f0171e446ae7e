/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reviewagent

import (
	"fmt"

	"chainguard.dev/reviewkit/agents/promptbuilder"
	"chainguard.dev/reviewkit/skills"
)

const systemTemplate = `{{persona}}

# Review skills

{{skills}}

# Operating rules

- Fetch the PR snapshot and the existing discussion before forming an opinion.
- Anchor every inline comment to a line that appears in the diff.
- Preview the submission with dry_run set to true and resolve any warnings
  before submitting for real.
- When the request marks the run as a dry run, never submit for real.
- Finish by calling submit_result with your report. The report must match
  what you actually submitted or previewed.`

const userTemplate = `Review the pull request described below.

{{review_request}}`

// systemPrompt assembles the system instructions from the embedded persona
// and skill documents.
func systemPrompt() (*promptbuilder.Prompt, error) {
	persona, err := skills.Persona()
	if err != nil {
		return nil, fmt.Errorf("loading persona: %w", err)
	}
	all, err := skills.All()
	if err != nil {
		return nil, fmt.Errorf("loading skills: %w", err)
	}

	p, err := promptbuilder.NewPrompt(systemTemplate)
	if err != nil {
		return nil, err
	}
	p, err = p.BindTrustedString("persona", persona)
	if err != nil {
		return nil, err
	}
	return p.BindTrustedString("skills", skills.PromptSection(all))
}

// userPrompt returns the request template. The review_request token is
// bound by Request.Bind at execution time.
func userPrompt() *promptbuilder.Prompt {
	return promptbuilder.MustNewPrompt(userTemplate)
}
