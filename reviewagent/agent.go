/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reviewagent

import (
	"context"
	"fmt"
	"strings"

	"chainguard.dev/reviewkit/agents/promptbuilder"
)

// Agent is a configured agent bound to one model provider.
//   - Req must implement promptbuilder.Bindable.
//   - Resp is the structured response type.
//   - CB is the type providing all tool callbacks.
type Agent[Req promptbuilder.Bindable, Resp, CB any] interface {
	// Execute runs the agent with the given request and tool callbacks.
	Execute(ctx context.Context, request Req, callbacks CB) (Resp, error)
}

// New creates an agent for the given model. The model name prefix selects
// the provider implementation:
//   - gemini-* models use Google's Generative AI SDK
//   - claude-* models use Anthropic's SDK via Vertex AI
func New[Req promptbuilder.Bindable, Resp, CB any](
	ctx context.Context,
	projectID, region, model string,
	config Config[Resp, CB],
) (Agent[Req, Resp, CB], error) {
	switch m := strings.ToLower(model); {
	case strings.HasPrefix(m, "gemini-"):
		return newGoogleAgent[Req, Resp, CB](ctx, projectID, region, model, config)
	case strings.HasPrefix(m, "claude-"):
		return newClaudeAgent[Req, Resp, CB](ctx, projectID, region, model, config)
	default:
		return nil, fmt.Errorf("unsupported model: %s (expected gemini-* or claude-*)", model)
	}
}
