/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package claudeexecutor drives tool-using agent conversations against
// Claude models on Vertex AI.
//
// The executor owns the common conversation loop: it renders the prompt from
// a promptbuilder template, streams and accumulates the model response,
// dispatches tool calls to claudetool handlers, retries transient API errors
// with backoff, and parses the final JSON answer into the Response type. A
// tool handler can short-circuit the loop by writing through its result
// pointer; the submitresult package uses that to let the model return the
// typed report directly.
//
//	exec, err := claudeexecutor.New[*Request, *Report](
//	    client,
//	    userPrompt,
//	    claudeexecutor.WithModel[*Request, *Report]("claude-sonnet-4-5@20250929"),
//	    claudeexecutor.WithSystemInstructions[*Request, *Report](systemInstructions),
//	    claudeexecutor.WithSubmitResultProvider[*Request, *Report](submitresult.ClaudeToolForResponse[*Report]),
//	)
//	...
//	report, err := exec.Execute(ctx, request, claudetool.Map(provider, callbacks))
//
// When extended thinking is enabled via WithThinking, reasoning blocks are
// captured on the trace as agenttrace.ReasoningContent and temperature is
// forced to 1.0 as the API requires.
package claudeexecutor
