/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

import (
	"errors"
	"fmt"
)

// Kind identifies a class of failure so callers can branch without parsing
// message text.
type Kind string

const (
	// KindInvalidReference means the PR identifier could not be parsed.
	// Not recoverable; the caller must re-supply the reference.
	KindInvalidReference Kind = "invalid_reference"

	// KindAmbiguousContext means no owner/repo could be derived from the
	// reference, the hint, or the ambient repository context.
	KindAmbiguousContext Kind = "ambiguous_context"

	// KindNotFound means the PR (or repository) does not exist or is not
	// visible with the current credentials.
	KindNotFound Kind = "not_found"

	// KindAuthRequired means the forge rejected the credentials.
	KindAuthRequired Kind = "auth_required"

	// KindRateLimited means the forge throttled the request. Nothing here
	// retries automatically; the caller decides when to try again.
	KindRateLimited Kind = "rate_limited"

	// KindSubmissionRejected means the forge refused the review payload.
	KindSubmissionRejected Kind = "submission_rejected"

	// KindLineNotInDiff is the rejection case where a referenced line does
	// not exist in the current diff, split out so the caller can correct
	// line numbers and resubmit.
	KindLineNotInDiff Kind = "line_not_in_diff"

	// KindUnknown is the catch-all for external failures; the underlying
	// message is passed through unmodified.
	KindUnknown Kind = "unknown"
)

// Error is a classified failure with an optional remediation hint.
type Error struct {
	Kind    Kind
	Message string
	Hint    string
}

func (e *Error) Error() string { return e.Message }

// Errorf builds a classified error.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithHint attaches a remediation hint and returns the same error.
func (e *Error) WithHint(format string, args ...any) *Error {
	e.Hint = fmt.Sprintf(format, args...)
	return e
}

// KindOf classifies an arbitrary error. Errors that did not originate from
// this taxonomy report KindUnknown.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}

// HintOf returns the remediation hint carried by err, if any.
func HintOf(err error) string {
	var re *Error
	if errors.As(err, &re) {
		return re.Hint
	}
	return ""
}
