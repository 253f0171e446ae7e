/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prtools

import (
	"context"
	"strings"
	"testing"

	"chainguard.dev/reviewkit/review"
)

func TestSubmitToolRealSubmission(t *testing.T) {
	cb := fakeCallbacks()
	var submitted review.ReviewSubmission
	create := cb.CreateReview
	cb.CreateReview = func(ctx context.Context, ref review.PrRef, sub review.ReviewSubmission) (*review.SubmissionResult, error) {
		submitted = sub
		return create(ctx, ref, sub)
	}
	tools := providerTools(t, cb)

	resp := callTool(t, tools, "submit_pr_review", map[string]any{
		"reasoning":   "review is complete",
		"pr":          "42",
		"body":        "One question about the retry count.",
		"disposition": "comment",
		"comments": []any{
			map[string]any{"path": "retry.go", "line": float64(3), "body": "why 5 attempts?"},
		},
	})

	if ok, _ := resp["success"].(bool); !ok {
		t.Fatalf("response = %#v, want success", resp)
	}
	if resp["commentCount"] != 1 {
		t.Errorf("commentCount = %v", resp["commentCount"])
	}
	if submitted.CommitID != "abc123" {
		t.Errorf("commit id = %q, want head SHA fetched just in time", submitted.CommitID)
	}
	if submitted.Event != review.DispositionComment {
		t.Errorf("event = %q", submitted.Event)
	}
	if len(submitted.Comments) != 1 || submitted.Comments[0].Path != "retry.go" {
		t.Errorf("comments = %#v", submitted.Comments)
	}
}

func TestSubmitToolZeroCommentsOmitsField(t *testing.T) {
	cb := fakeCallbacks()
	var submitted review.ReviewSubmission
	create := cb.CreateReview
	cb.CreateReview = func(ctx context.Context, ref review.PrRef, sub review.ReviewSubmission) (*review.SubmissionResult, error) {
		submitted = sub
		return create(ctx, ref, sub)
	}
	tools := providerTools(t, cb)

	resp := callTool(t, tools, "submit_pr_review", map[string]any{
		"reasoning":   "approving",
		"pr":          "42",
		"body":        "LGTM",
		"disposition": "APPROVE",
	})
	if ok, _ := resp["success"].(bool); !ok {
		t.Fatalf("response = %#v, want success", resp)
	}
	if submitted.Comments != nil {
		t.Errorf("comments = %#v, want nil so the field is omitted", submitted.Comments)
	}
}

func TestSubmitToolDryRun(t *testing.T) {
	cb := fakeCallbacks()
	headCalled := false
	cb.HeadSHA = func(context.Context, review.PrRef) (string, error) {
		headCalled = true
		return "abc123", nil
	}
	createCalled := false
	cb.CreateReview = func(context.Context, review.PrRef, review.ReviewSubmission) (*review.SubmissionResult, error) {
		createCalled = true
		return nil, nil
	}
	tools := providerTools(t, cb)

	resp := callTool(t, tools, "submit_pr_review", map[string]any{
		"reasoning":   "previewing before submission",
		"pr":          "42",
		"body":        "One question.",
		"disposition": "comment",
		"dry_run":     true,
		"comments": []any{
			map[string]any{"path": "retry.go", "line": float64(3), "body": "why 5?"},
		},
	})

	if ok, _ := resp["dryRun"].(bool); !ok {
		t.Fatalf("response = %#v, want dryRun", resp)
	}
	if createCalled || headCalled {
		t.Error("dry run touched the forge")
	}
	sub, ok := resp["submission"].(review.ReviewSubmission)
	if !ok {
		t.Fatalf("submission echo missing: %#v", resp)
	}
	if sub.CommitID != "" {
		t.Errorf("dry-run commit id = %q, want empty", sub.CommitID)
	}
	if resp["commentCount"] != 1 {
		t.Errorf("commentCount = %v", resp["commentCount"])
	}
	if _, ok := resp["warnings"]; ok {
		t.Errorf("warnings for in-diff anchor: %#v", resp["warnings"])
	}
}

func TestSubmitToolDryRunWarnsOutOfDiff(t *testing.T) {
	tools := providerTools(t, fakeCallbacks())

	resp := callTool(t, tools, "submit_pr_review", map[string]any{
		"reasoning":   "previewing",
		"pr":          "42",
		"body":        "One question.",
		"disposition": "comment",
		"dry_run":     true,
		"comments": []any{
			map[string]any{"path": "retry.go", "line": float64(400), "body": "out of range"},
		},
	})

	warnings, ok := resp["warnings"].([]string)
	if !ok || len(warnings) != 1 {
		t.Fatalf("warnings = %#v, want one", resp["warnings"])
	}
	if !strings.Contains(warnings[0], "retry.go line 400") {
		t.Errorf("warning = %q", warnings[0])
	}
}

func TestSubmitToolInvalidDisposition(t *testing.T) {
	tools := providerTools(t, fakeCallbacks())
	resp := callTool(t, tools, "submit_pr_review", map[string]any{
		"reasoning":   "done",
		"pr":          "42",
		"body":        "x",
		"disposition": "merge",
	})
	if _, ok := resp["error"]; !ok {
		t.Fatalf("response = %#v, want error", resp)
	}
}

func TestSubmitToolInvalidDraft(t *testing.T) {
	tools := providerTools(t, fakeCallbacks())
	resp := callTool(t, tools, "submit_pr_review", map[string]any{
		"reasoning":   "done",
		"pr":          "42",
		"body":        "x",
		"disposition": "comment",
		"comments": []any{
			map[string]any{"path": "retry.go", "line": float64(0), "body": "bad line"},
		},
	})
	if resp["kind"] != string(review.KindSubmissionRejected) {
		t.Errorf("kind = %v, response %#v", resp["kind"], resp)
	}
	if resp["hint"] == nil {
		t.Error("rejected draft carries no hint")
	}
}

func TestSubmitToolLineNotInDiffRejection(t *testing.T) {
	cb := fakeCallbacks()
	cb.CreateReview = func(context.Context, review.PrRef, review.ReviewSubmission) (*review.SubmissionResult, error) {
		return nil, review.Errorf(review.KindLineNotInDiff,
			"pull request review comment line must be part of the diff").
			WithHint("use fetch_pr_snapshot to see which lines changed")
	}
	tools := providerTools(t, cb)

	resp := callTool(t, tools, "submit_pr_review", map[string]any{
		"reasoning":   "done",
		"pr":          "42",
		"body":        "x",
		"disposition": "comment",
		"comments": []any{
			map[string]any{"path": "retry.go", "line": float64(3), "body": "q"},
		},
	})
	if resp["kind"] != string(review.KindLineNotInDiff) {
		t.Errorf("kind = %v, response %#v", resp["kind"], resp)
	}
}
