/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package submitresult

import (
	"chainguard.dev/reviewkit/agents/toolcall/claudetool"
)

// ClaudeTool converts the submit tool into Claude executor metadata.
func ClaudeTool[Response any](opts Options[Response]) (claudetool.Metadata[Response], error) {
	tool, err := Tool(opts)
	if err != nil {
		return claudetool.Metadata[Response]{}, err
	}
	return claudetool.FromTool(tool), nil
}

// ClaudeToolForResponse builds the submit tool from the submitresult tag on
// the response type. It matches claudeexecutor.SubmitResultProvider.
func ClaudeToolForResponse[Response any]() (claudetool.Metadata[Response], error) {
	return ClaudeTool(OptionsForResponse[Response]())
}
