/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"
	"sync"
)

// ByCode creates a tracer that invokes the given callbacks when a trace
// completes. Callbacks run in parallel and RecordTrace blocks until all of
// them return. Nil callbacks are ignored.
func ByCode[T any](callbacks ...func(*Trace[T])) Tracer[T] {
	return &byCodeTracer[T]{callbacks: callbacks}
}

type byCodeTracer[T any] struct {
	callbacks []func(*Trace[T])
}

// NewTrace implements Tracer.
func (b *byCodeTracer[T]) NewTrace(ctx context.Context, prompt string) *Trace[T] {
	return newTraceWithTracer[T](ctx, b, prompt)
}

// RecordTrace implements Tracer.
func (b *byCodeTracer[T]) RecordTrace(trace *Trace[T]) {
	var wg sync.WaitGroup
	for _, callback := range b.callbacks {
		if callback == nil {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			callback(trace)
		}()
	}
	wg.Wait()
}
