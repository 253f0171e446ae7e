/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prtools

import (
	"context"

	"chainguard.dev/reviewkit/agents/agenttrace"
	"chainguard.dev/reviewkit/agents/toolcall"
	"chainguard.dev/reviewkit/review"
	"github.com/chainguard-dev/clog"
)

func snapshotTool[Resp any](cb Callbacks) toolcall.Tool[Resp] {
	return toolcall.Tool[Resp]{
		Def: toolcall.Definition{
			Name:        "fetch_pr_snapshot",
			Description: "Fetch the full state of a pull request: metadata, size stats, changed files, commit messages, and the unified diff.",
			Parameters: []toolcall.Parameter{
				{Name: "reasoning", Type: "string", Description: "Explain why you need this snapshot.", Required: true},
				{Name: "pr", Type: "string", Description: "The pull request: a number or a full PR URL.", Required: true},
				{Name: "repo", Type: "string", Description: "Repository hint as owner/repo, when the pr argument is a bare number."},
			},
		},
		Handler: func(ctx context.Context, call toolcall.ToolCall, trace *agenttrace.Trace[Resp], _ *Resp) map[string]any {
			log := clog.FromContext(ctx)

			reasoning, errResp := toolcall.Param[string](call, trace, "reasoning")
			if errResp != nil {
				return errResp
			}
			log.With("reasoning", reasoning).Info("Tool call reasoning")

			pr, errResp := toolcall.Param[string](call, trace, "pr")
			if errResp != nil {
				return errResp
			}
			repoHint, errResp := toolcall.OptionalParam(call, "repo", "")
			if errResp != nil {
				return errResp
			}

			ref, errResp := resolveRef(ctx, cb, pr, repoHint)
			if errResp != nil {
				return errResp
			}

			tc := trace.StartToolCall(call.ID, call.Name, map[string]any{"pr": ref.Slug()})

			snapshot, err := review.FetchSnapshot(ctx, snapshotSource{cb: cb}, ref)
			if err != nil {
				log.With("pr", ref.Slug()).With("error", err).Error("Failed to fetch PR snapshot")
				result := errorMap(err)
				tc.Complete(result, err)
				return result
			}

			result := map[string]any{
				"pr":       ref.Permalink(),
				"snapshot": snapshot,
			}
			tc.Complete(map[string]any{
				"pr":           ref.Slug(),
				"sizeCategory": snapshot.SizeCategory,
				"changedFiles": snapshot.ChangedFiles,
			}, nil)
			return result
		},
	}
}
