/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudetool

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"

	"chainguard.dev/reviewkit/agents/agenttrace"
	"chainguard.dev/reviewkit/agents/schema"
	"chainguard.dev/reviewkit/agents/toolcall"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"
)

// Metadata describes a tool available to the Claude agent.
type Metadata[Response any] struct {
	// Definition is the Anthropic tool definition.
	Definition anthropic.ToolParam

	// Handler is the function that processes tool calls.
	// It receives the context, tool use block, trace, and a result pointer.
	// If the handler sets *result to a non-zero value, the executor will immediately exit with that response.
	Handler func(ctx context.Context, toolUse anthropic.ToolUseBlock, trace *agenttrace.Trace[Response], result *Response) map[string]any
}

// FromTool converts a provider-independent tool into Claude metadata.
// The handler parses the tool use input JSON into args and delegates to the
// unified handler.
func FromTool[Resp any](tool toolcall.Tool[Resp]) Metadata[Resp] {
	properties := make(map[string]any, len(tool.Def.Parameters))
	required := make([]string, 0, len(tool.Def.Parameters))
	for _, p := range tool.Def.Parameters {
		properties[p.Name] = parameterSchema(p)
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return Metadata[Resp]{
		Definition: anthropic.ToolParam{
			Name:        tool.Def.Name,
			Description: anthropic.String(tool.Def.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Type:       constant.Object("object"),
				Properties: properties,
				Required:   required,
			},
		},
		Handler: func(ctx context.Context, toolUse anthropic.ToolUseBlock, trace *agenttrace.Trace[Resp], result *Resp) map[string]any {
			args := map[string]any{}
			if len(toolUse.Input) > 0 {
				if err := json.Unmarshal(toolUse.Input, &args); err != nil {
					trace.BadToolCall(toolUse.ID, toolUse.Name, map[string]any{
						"input": string(toolUse.Input),
					}, err)
					return Error("invalid tool input: %v", err)
				}
			}
			return tool.Handler(ctx, toolcall.ToolCall{
				ID:   toolUse.ID,
				Name: toolUse.Name,
				Args: args,
			}, trace, result)
		},
	}
}

// Map converts all tools from a provider into Claude metadata keyed by tool name.
func Map[Resp, CB any](provider toolcall.ToolProvider[Resp, CB], cb CB) map[string]Metadata[Resp] {
	tools := provider.Tools(cb)
	out := make(map[string]Metadata[Resp], len(tools))
	for name, tool := range tools {
		out[name] = FromTool(tool)
	}
	return out
}

// parameterSchema renders a single parameter as a JSON schema fragment.
// Parameters carrying a full schema (arrays, objects) render it verbatim.
func parameterSchema(p toolcall.Parameter) map[string]any {
	if p.Schema != nil {
		if m, err := schema.ToMap(p.Schema); err == nil {
			if p.Description != "" && m["description"] == nil {
				m["description"] = p.Description
			}
			return m
		}
	}
	return map[string]any{
		"type":        p.Type,
		"description": p.Description,
	}
}

// Error creates an error response map for Claude tool calls
func Error(format string, args ...any) map[string]any {
	return map[string]any{
		"error": fmt.Sprintf(format, args...),
	}
}

// ErrorWithContext creates an error response with additional context
func ErrorWithContext(err error, context map[string]any) map[string]any {
	response := map[string]any{
		"error": err.Error(),
	}
	// Add context fields
	maps.Copy(response, context)
	return response
}
