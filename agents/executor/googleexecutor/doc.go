/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package googleexecutor drives tool-using agent conversations against
// Gemini models through the Google GenAI SDK.
//
// It is the Gemini counterpart of claudeexecutor with the same shape: a
// promptbuilder template is bound and rendered, a chat session carries the
// function-call loop, googletool handlers execute each call, transient
// Vertex AI errors are retried with backoff, and the final text is parsed
// into the Response type. Malformed function calls get one corrective
// message listing the declared functions before the run is failed.
//
// A tool handler can short-circuit the loop by writing through its result
// pointer; the submitresult package uses that to let the model return the
// typed report directly.
package googleexecutor
