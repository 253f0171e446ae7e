/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googleexecutor

import (
	"strings"
)

// retryableVertexMarkers are substrings that mark a Vertex AI error as
// transient. The genai SDK surfaces gRPC and googleapi failures as flat
// strings, so matching on message text is the only classification available.
var retryableVertexMarkers = []string{
	"Resource exhausted",
	"RESOURCE_EXHAUSTED",
	"429",
	"rate limit",
	"quota exceeded",
	"Overloaded",
	"503",
	"Internal error",
	"server error",
}

// isRetryableVertexError reports whether err is a transient Vertex AI
// failure: rate limiting, quota exhaustion, or a server-side error.
func isRetryableVertexError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range retryableVertexMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
