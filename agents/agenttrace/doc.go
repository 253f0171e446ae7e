/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package agenttrace provides tracing infrastructure for AI agent interactions.

# Overview

This package contains the foundational types for tracking agent executions:

  - ReviewContext: Review-session metadata (repository, PR number, head SHA, round) for trace enrichment
  - Trace[T]: Complete agent interaction from prompt to result
  - ToolCall[T]: Individual tool invocation within a trace
  - Tracer[T]: Interface for creating and managing traces

Every trace and tool call is mirrored into OpenTelemetry spans, so agent
runs show up in distributed traces alongside the rest of the system.

# Usage

Set review context for trace enrichment:

	ctx = agenttrace.WithReviewContext(ctx, agenttrace.ReviewContext{
		Repository: "chainguard-dev/reviewkit",
		PullNumber: 42,
		HeadSHA:    "abc123",
		Round:      1,
	})

Create and use traces:

	tracer := agenttrace.ByCode[string](func(trace *agenttrace.Trace[string]) {
		log.Printf("Trace completed: %s", trace.ID)
	})
	ctx = agenttrace.WithTracer[string](ctx, tracer)

	trace := agenttrace.StartTrace[string](ctx, "Review this pull request")
	toolCall := trace.StartToolCall("tc1", "fetch_pr_snapshot", map[string]any{
		"pr": "chainguard-dev/reviewkit#42",
	})
	toolCall.Complete("Snapshot content here", nil)
	trace.Complete("Review complete", nil)
*/
package agenttrace
