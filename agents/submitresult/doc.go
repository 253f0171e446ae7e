/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package submitresult builds the terminal tool an agent calls to hand back
// its structured result.
//
// The tool is derived from the response type: a submitresult struct tag names
// the tool, describes it, and names the payload field, and the payload schema
// is reflected from the type itself. The handler decodes the payload into the
// response type and sets the executor's result pointer, which ends the
// conversation loop.
//
//	type Report struct {
//		_        struct{} `submitresult:"name=submit_pr_review,description=Submit the completed review,payload=review"`
//		Verdict  string   `json:"verdict"`
//		Summary  string   `json:"summary"`
//	}
//
//	claudeexecutor.WithSubmitResultProvider[*Request, *Report](
//		submitresult.ClaudeToolForResponse[*Report])
//
// The tool is defined once as a provider-independent toolcall.Tool; the
// ClaudeTool and GoogleTool constructors convert it for each SDK.
package submitresult
