/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"

	"github.com/chainguard-dev/clog"
)

// NewDefaultTracer creates a new default tracer that logs completed traces
// to clog. It is used whenever no explicit tracer was registered in the
// context, so agent runs are never silently untraced.
func NewDefaultTracer[T any](ctx context.Context) Tracer[T] {
	logger := clog.FromContext(ctx)

	callback := func(trace *Trace[T]) {
		log := logger.With(
			"trace_id", trace.ID,
			"duration_ms", trace.Duration().Milliseconds(),
			"tool_calls", len(trace.ToolCalls),
		)
		if trace.ReviewCtx.Repository != "" {
			log = log.With("repository", trace.ReviewCtx.Repository, "pull_number", trace.ReviewCtx.PullNumber)
		}
		log.Info("Agent trace completed", "trace", trace.String())
	}

	return ByCode[T](callback)
}
