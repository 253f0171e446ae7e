/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package claudetool converts provider-independent tool definitions into the
shapes the Anthropic SDK expects, and provides the error-response helpers
Claude tool handlers use.

# Converting tools

FromTool turns a toolcall.Tool into Metadata: an anthropic.ToolParam
definition plus a handler that decodes the tool use input JSON and delegates
to the unified handler. Map does the same for every tool a provider exposes:

	tools := claudetool.Map(prtools.NewProvider[*reviewagent.Report](), callbacks)

The executor registers each Metadata's Definition with the model and routes
incoming tool use blocks to the matching Handler.

# Error responses

Handlers report failures back to the model as response maps rather than Go
errors, so the model can read the failure and correct its next call:

	return claudetool.Error("no pull request found for %s", ref)

	return claudetool.ErrorWithContext(err, map[string]any{
		"error_kind": "line_not_in_diff",
		"hint":       "inline comments may only target changed lines",
	})
*/
package claudetool
