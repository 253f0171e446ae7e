/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package result extracts structured JSON from model text responses.

Models asked for JSON often wrap it in markdown fences or surround it with
prose. ExtractJSON strips a ```json fence (or a bare ``` fence) and returns
the content; plain input comes back trimmed. Extract combines extraction
with unmarshaling into a typed value:

	report, err := result.Extract[reviewagent.Report](responseText)

The executors use Extract as a fallback when a model answers with text
instead of calling its submit tool. All functions operate on immutable
inputs and are safe for concurrent use.
*/
package result
