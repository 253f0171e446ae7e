/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"
)

// Tracer creates and records traces for agent executions producing results
// of type T. Implementations decide what happens to a trace once it
// completes: log it, persist it, feed it to an evaluation harness.
type Tracer[T any] interface {
	// NewTrace starts a new trace for the given prompt.
	NewTrace(ctx context.Context, prompt string) *Trace[T]

	// RecordTrace is invoked automatically when a trace completes.
	RecordTrace(trace *Trace[T])
}

// tracerKey is a generic context key, so tracers for different result types
// can coexist in the same context without colliding.
type tracerKey[T any] struct{}

// WithTracer returns a context carrying the given tracer. Executors pick it
// up via StartTrace, so callers can observe agent runs without threading a
// tracer through every call site.
func WithTracer[T any](ctx context.Context, tracer Tracer[T]) context.Context {
	return context.WithValue(ctx, tracerKey[T]{}, tracer)
}

// TracerFromContext retrieves the tracer for result type T from the context,
// falling back to the default logging tracer when none was registered.
func TracerFromContext[T any](ctx context.Context) Tracer[T] {
	if tracer, ok := ctx.Value(tracerKey[T]{}).(Tracer[T]); ok {
		return tracer
	}
	return NewDefaultTracer[T](ctx)
}

// StartTrace begins a new trace using the tracer registered in the context.
func StartTrace[T any](ctx context.Context, prompt string) *Trace[T] {
	return TracerFromContext[T](ctx).NewTrace(ctx, prompt)
}
