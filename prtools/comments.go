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
	"golang.org/x/sync/errgroup"
)

func commentsTool[Resp any](cb Callbacks) toolcall.Tool[Resp] {
	return toolcall.Tool[Resp]{
		Def: toolcall.Definition{
			Name:        "fetch_pr_comments",
			Description: "Fetch the existing feedback on a pull request: reviews, issue comments, inline review comments grouped into threads and indexed by file.",
			Parameters: []toolcall.Parameter{
				{Name: "reasoning", Type: "string", Description: "Explain why you need the existing comments.", Required: true},
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

			// Three independent reads; the first failure cancels the rest
			// and the whole call fails. Never a partial bundle.
			var (
				reviews        []review.Review
				issueComments  []review.IssueComment
				reviewComments []review.ReviewComment
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				reviews, err = cb.Reviews(gctx, ref)
				return err
			})
			g.Go(func() error {
				var err error
				issueComments, err = cb.IssueComments(gctx, ref)
				return err
			})
			g.Go(func() error {
				var err error
				reviewComments, err = cb.ReviewComments(gctx, ref)
				return err
			})
			if err := g.Wait(); err != nil {
				log.With("pr", ref.Slug()).With("error", err).Error("Failed to fetch PR comments")
				result := errorMap(err)
				tc.Complete(result, err)
				return result
			}

			bundle := review.BuildCommentsBundle(reviews, issueComments, reviewComments)

			result := map[string]any{
				"pr":             ref.Permalink(),
				"stats":          bundle.Stats,
				"reviews":        bundle.Reviews,
				"issueComments":  bundle.IssueComments,
				"reviewComments": bundle.ReviewComments,
				"commentsByFile": bundle.CommentsByFile,
				"threads":        bundle.Threads,
			}
			tc.Complete(map[string]any{
				"pr":    ref.Slug(),
				"stats": bundle.Stats,
			}, nil)
			return result
		},
	}
}
