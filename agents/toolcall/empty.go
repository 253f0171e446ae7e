/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolcall

// EmptyTools is the callbacks type for a provider with no tools.
// It anchors the bottom of a composed provider stack.
type EmptyTools struct{}

type emptyToolsProvider[Resp any] struct{}

var _ ToolProvider[any, EmptyTools] = (*emptyToolsProvider[any])(nil)

// NewEmptyToolsProvider returns a ToolProvider exposing no tools.
// Wrap it with domain providers to build up a tool stack.
func NewEmptyToolsProvider[Resp any]() ToolProvider[Resp, EmptyTools] {
	return emptyToolsProvider[Resp]{}
}

func (emptyToolsProvider[Resp]) Tools(EmptyTools) map[string]Tool[Resp] {
	return map[string]Tool[Resp]{}
}
