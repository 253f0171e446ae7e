/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reviewagent

import (
	"context"
	"errors"
	"strings"

	"chainguard.dev/reviewkit/agents/agenttrace"
	"chainguard.dev/reviewkit/agents/toolcall"
	"chainguard.dev/reviewkit/prtools"
	"chainguard.dev/reviewkit/review"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultModel is used when Options.Model is empty.
const DefaultModel = "claude-sonnet-4-5@20250929"

// Tools is the tool composition for PR review: the PR tools over the
// empty base.
type Tools = prtools.PRTools[toolcall.EmptyTools]

// Options configures a Reviewer.
type Options struct {
	// ProjectID and Region locate the Vertex AI project.
	ProjectID string
	Region    string

	// Model selects the provider by prefix (claude-* or gemini-*).
	// Empty means DefaultModel.
	Model string

	// Callbacks provides the forge operations the PR tools run against.
	Callbacks prtools.Callbacks

	// DryRun forces every review through this Reviewer to be a preview,
	// regardless of the per-request flag.
	DryRun bool
}

// Reviewer runs PR reviews. Each Review call constructs a fresh agent so
// the metric labels reflect that review's repository and round.
type Reviewer struct {
	opts Options
}

// NewReviewer creates a Reviewer with the given options.
func NewReviewer(opts Options) (*Reviewer, error) {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Callbacks.View == nil || opts.Callbacks.Diff == nil {
		return nil, errors.New("reviewer callbacks must provide View and Diff")
	}
	return &Reviewer{opts: opts}, nil
}

// Review runs one review of the requested pull request and returns the
// agent's report. The reference is resolved up front so the prompt and
// metrics carry the canonical repository, and so an unknown reference
// fails before any model call.
func (r *Reviewer) Review(ctx context.Context, req *Request) (*Report, error) {
	if req == nil || strings.TrimSpace(req.PullRequest) == "" {
		return nil, review.Errorf(review.KindInvalidReference, "no pull request to review")
	}

	ref, err := review.ParseRef(req.PullRequest, req.Repository)
	if err != nil {
		return nil, err
	}
	ref, err = review.ResolveAmbient(ctx, ref, r.opts.Callbacks.AmbientRepo())
	if err != nil {
		return nil, err
	}

	dryRun := req.DryRun || r.opts.DryRun
	cb := r.opts.Callbacks
	if dryRun {
		cb = guardedCallbacks(cb)
	}

	round := max(req.Round, 1)
	reviewCtx := agenttrace.ReviewContext{
		Repository: ref.Slug(),
		PullNumber: ref.Number,
		Round:      round,
	}
	// Spans get the full context; metrics get only its bounded labels.
	ctx = agenttrace.WithReviewContext(ctx, reviewCtx)

	sys, err := systemPrompt()
	if err != nil {
		return nil, err
	}

	config := Config[*Report, Tools]{
		SystemInstructions: sys,
		UserPrompt:         userPrompt(),
		Tools:              prtools.NewProvider[*Report](toolcall.NewEmptyToolsProvider[*Report]()),
		Enricher: func(_ context.Context, base []attribute.KeyValue) []attribute.KeyValue {
			return reviewCtx.EnrichAttributes(base)
		},
	}

	agent, err := New[*Request](ctx, r.opts.ProjectID, r.opts.Region, r.opts.Model, config)
	if err != nil {
		return nil, err
	}

	bound := *req
	bound.Repository = ref.Slug()
	bound.PullRequest = ref.Permalink()
	bound.Round = round
	bound.DryRun = dryRun

	report, err := agent.Execute(ctx, &bound, prtools.NewPRTools(toolcall.EmptyTools{}, cb))
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, errors.New("agent finished without submitting a report")
	}
	return report, nil
}

// guardedCallbacks replaces CreateReview with a refusal. The prompt already
// tells the model a dry run never submits; this catches it if it tries
// anyway.
func guardedCallbacks(cb prtools.Callbacks) prtools.Callbacks {
	cb.CreateReview = func(context.Context, review.PrRef, review.ReviewSubmission) (*review.SubmissionResult, error) {
		return nil, review.Errorf(review.KindSubmissionRejected, "this is a dry-run review: real submissions are disabled").
			WithHint("call submit_pr_review with dry_run set to true")
	}
	return cb
}
