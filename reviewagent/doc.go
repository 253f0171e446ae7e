/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package reviewagent runs an LLM-driven pull request review.
//
// The package has two layers. The generic layer (Agent, Config, New)
// dispatches to the Claude or Gemini executor based on the model name
// prefix, so the same configuration runs against either provider. The
// review layer (Reviewer, Request, Report) wires that machinery to the
// PR tools: the persona and skill documents become the system prompt,
// the request binds into the user prompt as YAML, and the agent reports
// back through the submit_result tool with a typed Report.
package reviewagent
