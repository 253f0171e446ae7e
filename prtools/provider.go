/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prtools

import (
	"context"
	"maps"

	"chainguard.dev/reviewkit/agents/toolcall"
	"chainguard.dev/reviewkit/review"
)

// PRTools wraps a base tools type and adds the PR review callbacks.
type PRTools[T any] struct {
	base T
	Callbacks
}

// NewPRTools creates a PRTools wrapping the given base tools.
func NewPRTools[T any](base T, cb Callbacks) PRTools[T] {
	return PRTools[T]{base: base, Callbacks: cb}
}

type prToolsProvider[Resp, T any] struct {
	baseProvider toolcall.ToolProvider[Resp, T]
}

var _ toolcall.ToolProvider[any, PRTools[toolcall.EmptyTools]] = (*prToolsProvider[any, toolcall.EmptyTools])(nil)

// NewProvider layers the PR review tools (fetch_pr_snapshot,
// fetch_pr_comments, submit_pr_review) on top of the base provider's tools.
func NewProvider[Resp, T any](base toolcall.ToolProvider[Resp, T]) toolcall.ToolProvider[Resp, PRTools[T]] {
	return prToolsProvider[Resp, T]{baseProvider: base}
}

func (p prToolsProvider[Resp, T]) Tools(cb PRTools[T]) map[string]toolcall.Tool[Resp] {
	tools := p.baseProvider.Tools(cb.base)
	maps.Copy(tools, map[string]toolcall.Tool[Resp]{
		"fetch_pr_snapshot": snapshotTool[Resp](cb.Callbacks),
		"fetch_pr_comments": commentsTool[Resp](cb.Callbacks),
		"submit_pr_review":  submitTool[Resp](cb.Callbacks),
	})
	return tools
}

// resolveRef parses the reference and fills ambient context. The returned
// map is a tool error response when resolution fails.
func resolveRef(ctx context.Context, cb Callbacks, ref, repoHint string) (review.PrRef, map[string]any) {
	parsed, err := review.ParseRef(ref, repoHint)
	if err != nil {
		return review.PrRef{}, errorMap(err)
	}
	resolved, err := review.ResolveAmbient(ctx, parsed, cb.AmbientRepo())
	if err != nil {
		return review.PrRef{}, errorMap(err)
	}
	return resolved, nil
}

// errorMap shapes a failure into the structured error object tools return:
// an error message plus kind and, when available, a remediation hint.
func errorMap(err error) map[string]any {
	fields := map[string]any{
		"kind": string(review.KindOf(err)),
	}
	if hint := review.HintOf(err); hint != "" {
		fields["hint"] = hint
	}
	return toolcall.ErrorWithContext(err, fields)
}
