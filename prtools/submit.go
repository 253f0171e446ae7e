/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prtools

import (
	"context"
	"encoding/json"
	"fmt"

	"chainguard.dev/reviewkit/agents/agenttrace"
	"chainguard.dev/reviewkit/agents/schema"
	"chainguard.dev/reviewkit/agents/toolcall"
	"chainguard.dev/reviewkit/review"
	"github.com/chainguard-dev/clog"
	"github.com/invopop/jsonschema"
)

func submitTool[Resp any](cb Callbacks) toolcall.Tool[Resp] {
	draftSchema := schema.ReflectType[review.InlineCommentDraft]()
	commentsSchema := &jsonschema.Schema{
		Type:  "array",
		Items: draftSchema,
	}

	return toolcall.Tool[Resp]{
		Def: toolcall.Definition{
			Name:        "submit_pr_review",
			Description: "Submit a review on a pull request: a summary body, a disposition, and optional inline comments anchored to diff lines. Set dry_run to preview the exact payload without submitting.",
			Parameters: []toolcall.Parameter{
				{Name: "reasoning", Type: "string", Description: "Explain why the review is ready to submit.", Required: true},
				{Name: "pr", Type: "string", Description: "The pull request: a number or a full PR URL.", Required: true},
				{Name: "repo", Type: "string", Description: "Repository hint as owner/repo, when the pr argument is a bare number."},
				{Name: "body", Type: "string", Description: "The review summary body.", Required: true},
				{Name: "disposition", Type: "string", Description: "One of: comment, approve, request_changes.", Required: true},
				{Name: "comments", Type: "array", Description: "Inline comments anchored to lines of the diff.", Schema: commentsSchema},
				{Name: "dry_run", Type: "boolean", Description: "Preview the payload without submitting."},
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
			body, errResp := toolcall.Param[string](call, trace, "body")
			if errResp != nil {
				return errResp
			}
			dispositionRaw, errResp := toolcall.Param[string](call, trace, "disposition")
			if errResp != nil {
				return errResp
			}
			commentsRaw, errResp := toolcall.OptionalParam[[]any](call, "comments", nil)
			if errResp != nil {
				return errResp
			}
			dryRun, errResp := toolcall.OptionalParam(call, "dry_run", false)
			if errResp != nil {
				return errResp
			}

			ref, errResp := resolveRef(ctx, cb, pr, repoHint)
			if errResp != nil {
				return errResp
			}

			disposition, err := review.ParseDisposition(dispositionRaw)
			if err != nil {
				return errorMap(err)
			}

			drafts, err := decodeDrafts(commentsRaw)
			if err != nil {
				return toolcall.Error("invalid comments: %v", err)
			}
			for _, d := range drafts {
				if err := review.ValidateDraft(d); err != nil {
					return errorMap(review.Errorf(review.KindSubmissionRejected, "%v", err).
						WithHint("fix the draft and call submit_pr_review again"))
				}
			}

			tc := trace.StartToolCall(call.ID, call.Name, map[string]any{
				"pr":          ref.Slug(),
				"disposition": string(disposition),
				"comments":    len(drafts),
				"dry_run":     dryRun,
			})

			if dryRun {
				sub := review.BuildSubmission("", body, disposition, drafts)
				preview := review.NewDryRunPreview(ref, sub)
				preview.Warnings = diffWarnings(ctx, cb, ref, drafts)

				result := map[string]any{
					"dryRun":       true,
					"pr":           preview.PR,
					"commentCount": preview.CommentCount,
					"submission":   preview.Submission,
				}
				if len(preview.Warnings) > 0 {
					result["warnings"] = preview.Warnings
				}
				tc.Complete(result, nil)
				return result
			}

			sha, err := cb.HeadSHA(ctx, ref)
			if err != nil {
				log.With("pr", ref.Slug()).With("error", err).Error("Failed to fetch head commit")
				result := errorMap(err)
				tc.Complete(result, err)
				return result
			}

			sub := review.BuildSubmission(sha, body, disposition, drafts)
			res, err := cb.CreateReview(ctx, ref, sub)
			if err != nil {
				log.With("pr", ref.Slug()).With("error", err).Error("Failed to submit review")
				result := errorMap(err)
				tc.Complete(result, err)
				return result
			}

			result := map[string]any{
				"success":      true,
				"pr":           res.PR,
				"commentCount": res.CommentCount,
			}
			if res.ReviewID != 0 {
				result["reviewId"] = res.ReviewID
			}
			if res.State != "" {
				result["state"] = res.State
			}
			if res.URL != "" {
				result["url"] = res.URL
			}
			tc.Complete(result, nil)
			return result
		},
	}
}

// decodeDrafts converts the raw array argument into typed drafts via a JSON
// round trip.
func decodeDrafts(raw []any) ([]review.InlineCommentDraft, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var drafts []review.InlineCommentDraft
	if err := json.Unmarshal(data, &drafts); err != nil {
		return nil, fmt.Errorf("each comment needs path, line, and body: %w", err)
	}
	return drafts, nil
}

// diffWarnings checks drafts against the current diff. Advisory only: a
// failure to fetch or parse the diff skips the check rather than failing the
// dry run, and the forge remains the authority on line validity.
func diffWarnings(ctx context.Context, cb Callbacks, ref review.PrRef, drafts []review.InlineCommentDraft) []string {
	if len(drafts) == 0 || cb.Diff == nil {
		return nil
	}
	log := clog.FromContext(ctx)

	diff, err := cb.Diff(ctx, ref)
	if err != nil {
		log.With("pr", ref.Slug()).With("error", err).Warn("Skipping diff scope check")
		return nil
	}
	scope, err := review.NewDiffScope(diff)
	if err != nil {
		log.With("pr", ref.Slug()).With("error", err).Warn("Skipping diff scope check")
		return nil
	}
	return scope.Check(drafts)
}
