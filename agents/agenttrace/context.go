/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// ReviewContext carries review-session metadata for agent executions.
// It is attached to traces and used to enrich metrics with labels for
// tracking token usage and tool calls per repository and review round.
type ReviewContext struct {
	Repository string `json:"repository,omitempty"`  // "owner/repo"
	PullNumber int    `json:"pull_number,omitempty"` // Pull request number
	HeadSHA    string `json:"head_sha,omitempty"`    // Head commit SHA the review ran against
	Round      int    `json:"round,omitempty"`       // Review round for repeated reviews of the same PR (1, 2, 3, ...)
}

// EnrichAttributes adds review context attributes to the provided base attributes.
// This is used to enrich metrics using only BOUNDED labels.
//
// Note: pull_number and head_sha are NOT included in metrics to prevent unbounded
// cardinality (every PR and commit creates a new time series). Those fields remain
// on the ReviewContext for traces where cardinality is not a concern. Use trace
// exemplars to link from aggregated metrics to detailed per-PR traces.
func (r ReviewContext) EnrichAttributes(baseAttrs []attribute.KeyValue) []attribute.KeyValue {
	// Pre-allocate for base + up to 2 additional attributes
	attrs := make([]attribute.KeyValue, len(baseAttrs), len(baseAttrs)+2)
	copy(attrs, baseAttrs)

	// Repository is bounded: tens to hundreds of repositories vs unlimited PRs
	if r.Repository != "" {
		attrs = append(attrs, attribute.String("repository", r.Repository))
	}

	// Round is bounded: typically 1-5 re-reviews per PR
	attrs = append(attrs, attribute.Int("round", r.Round))

	return attrs
}

// contextKey is used for storing the review context in context.Context
type contextKey string

const reviewContextKey contextKey = "review_context"

// WithReviewContext adds review context to the Go context
func WithReviewContext(ctx context.Context, reviewCtx ReviewContext) context.Context {
	return context.WithValue(ctx, reviewContextKey, reviewCtx)
}

// GetReviewContext retrieves review context from the Go context
func GetReviewContext(ctx context.Context) ReviewContext {
	if val := ctx.Value(reviewContextKey); val != nil {
		if reviewCtx, ok := val.(ReviewContext); ok {
			return reviewCtx
		}
	}
	return ReviewContext{}
}
