/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package toolcall defines provider-independent tool definitions for AI agents.
//
// A tool is declared exactly once as a Tool[Resp] with a Definition (name,
// description, parameters) and a single Handler operating on a neutral
// ToolCall. The claudetool and googletool subpackages convert these unified
// definitions into the SDK-specific shapes each model provider expects, so
// adding a tool never means writing it twice.
//
// # Defining a tool
//
//	tool := toolcall.Tool[Report]{
//		Def: toolcall.Definition{
//			Name:        "fetch_pr_snapshot",
//			Description: "Fetch the metadata and diff for a pull request",
//			Parameters: []toolcall.Parameter{
//				{Name: "reasoning", Type: "string", Description: "Why this snapshot is needed", Required: true},
//				{Name: "pr", Type: "string", Description: "PR reference", Required: true},
//			},
//		},
//		Handler: func(ctx context.Context, call toolcall.ToolCall, trace *agenttrace.Trace[Report], result *Report) map[string]any {
//			pr, errMap := toolcall.Param[string](call, trace, "pr")
//			if errMap != nil {
//				return errMap
//			}
//			// ... do the work ...
//			return map[string]any{"snapshot": snapshot}
//		},
//	}
//
// Handlers report failures as {"error": ...} maps via Error and
// ErrorWithContext rather than Go errors, so the model can read the failure
// and retry with corrected arguments.
//
// # Providers
//
// ToolProvider groups tools behind a callbacks value, decoupling tool
// definitions from the clients that implement them. Providers compose by
// wrapping: start from NewEmptyToolsProvider and layer tool sets on top.
//
// # Result escape
//
// A handler may set *result to a non-zero value to terminate the agent loop
// immediately with that response. The submitresult package builds its
// terminal submit_result tool on this mechanism.
package toolcall
