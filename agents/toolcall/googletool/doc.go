/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package googletool converts provider-independent tool definitions into the
shapes the Google genai SDK expects, and provides type-safe parameter
extraction and error-response helpers for Gemini function handlers.

# Converting tools

FromTool turns a toolcall.Tool into Metadata: a genai.FunctionDeclaration
plus a handler that forwards the function call args to the unified handler
and wraps its result map in a genai.FunctionResponse. Map does the same for
every tool a provider exposes:

	tools := googletool.Map(prtools.NewProvider[*reviewagent.Report](), callbacks)

# Parameter extraction

Handlers that work with raw genai.FunctionCall values extract parameters
with Param and OptionalParam. JSON numbers arrive as float64 and convert
automatically to int, int32, and int64:

	pr, errResp := googletool.Param[string](call, "pr")
	if errResp != nil {
		return errResp
	}
	dryRun, errResp := googletool.OptionalParam(call, "dry_run", false)

# Error responses

Failures go back to the model as FunctionResponse payloads rather than Go
errors, so the model can read the failure and correct its next call:

	return googletool.Error(call, "no pull request found for %s", ref)

	return googletool.ErrorWithContext(call, err, map[string]any{
		"error_kind": "line_not_in_diff",
		"hint":       "inline comments may only target changed lines",
	})
*/
package googletool
