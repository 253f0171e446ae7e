/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reviewagent

import (
	"chainguard.dev/reviewkit/agents/metrics"
	"chainguard.dev/reviewkit/agents/promptbuilder"
	"chainguard.dev/reviewkit/agents/toolcall"
)

// Config defines the configuration for an agent instance.
//   - Resp is the structured response type returned by the agent.
//   - CB is the type providing all tool callbacks.
type Config[Resp, CB any] struct {
	// SystemInstructions is the system prompt that defines the agent's
	// role and behavior. Optional.
	SystemInstructions *promptbuilder.Prompt

	// UserPrompt is the template for formatting the request.
	// The Req type is bound to this template via its Bind method.
	UserPrompt *promptbuilder.Prompt

	// Tools provides all tool definitions for this agent. Compose
	// providers by wrapping, e.g. prtools.NewProvider over
	// toolcall.NewEmptyToolsProvider.
	Tools toolcall.ToolProvider[Resp, CB]

	// Enricher adds contextual labels (repository, review round) to the
	// token and tool-call metrics. Optional.
	Enricher metrics.AttributeEnricher
}
