/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"encoding/json"
	"strings"
)

// ExtractJSON extracts JSON content from a text response that may contain markdown code blocks.
// It looks for content between ```json and ``` markers, or returns the input trimmed if no markers are found.
func ExtractJSON(responseText string) string {
	// Prefer the first ```json block on its own line
	if block, ok := fencedJSONBlock(responseText); ok {
		return block
	}

	// Fallback: clean the response text - sometimes models add extra whitespace or markdown formatting
	responseText = strings.TrimSpace(responseText)

	// If the response is wrapped in markdown code blocks, extract the JSON
	if strings.HasPrefix(responseText, "```json") && strings.HasSuffix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
		return strings.TrimSpace(responseText)
	}

	// These do nothing if the values aren't there, so always do it.
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	return strings.TrimSpace(responseText)
}

// fencedJSONBlock returns the content of the first ```json fence whose markers
// sit on their own lines. An unterminated fence runs to the end of the input.
// An empty fence yields an empty string, which callers should treat as an error.
func fencedJSONBlock(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "```json" {
			continue
		}
		body := lines[i+1:]
		for j, l := range body {
			if l == "```" {
				body = body[:j]
				break
			}
		}
		return strings.TrimSpace(strings.Join(body, "\n")), true
	}
	return "", false
}

// Extract extracts JSON content from a text response and unmarshals it into the provided type.
// It combines ExtractJSON with json.Unmarshal for convenience.
func Extract[T any](responseText string) (T, error) {
	var result T

	// Extract the JSON content
	jsonContent := ExtractJSON(responseText)

	// Unmarshal into the result type
	if err := json.Unmarshal([]byte(jsonContent), &result); err != nil {
		return result, err
	}

	return result, nil
}
