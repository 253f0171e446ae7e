/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package submitresult

import (
	"chainguard.dev/reviewkit/agents/toolcall/googletool"
)

// GoogleTool converts the submit tool into Google executor metadata.
func GoogleTool[Response any](opts Options[Response]) (googletool.Metadata[Response], error) {
	tool, err := Tool(opts)
	if err != nil {
		return googletool.Metadata[Response]{}, err
	}
	return googletool.FromTool(tool), nil
}

// GoogleToolForResponse builds the submit tool from the submitresult tag on
// the response type. It matches googleexecutor.SubmitResultProvider.
func GoogleToolForResponse[Response any]() (googletool.Metadata[Response], error) {
	return GoogleTool(OptionsForResponse[Response]())
}
