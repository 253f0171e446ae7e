/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ghcli

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"chainguard.dev/reviewkit/review"
)

// Classify maps a failed gh invocation onto the review error taxonomy. This
// is the only function in the module that matches on gh's error prose; keep
// new patterns here rather than at call sites. Already-classified errors pass
// through unchanged. op names the attempted operation for the message, e.g.
// "fetching pull request metadata".
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var classified *review.Error
	if errors.As(err, &classified) {
		return classified
	}
	if errors.Is(err, exec.ErrNotFound) {
		return review.Errorf(review.KindUnknown, "%s: the gh executable is not installed", op).
			WithHint("install the GitHub CLI from https://cli.github.com and run 'gh auth login'")
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return review.Errorf(review.KindUnknown, "%s: interrupted: %v", op, err)
	}

	text := strings.ToLower(err.Error())
	switch {
	case containsAny(text, "gh auth login", "not logged in", "bad credentials", "http 401", "authentication token"):
		return review.Errorf(review.KindAuthRequired, "%s: the GitHub CLI is not authenticated", op).
			WithHint("run 'gh auth login' or set GH_TOKEN")
	case containsAny(text, "rate limit"):
		return review.Errorf(review.KindRateLimited, "%s: the GitHub API rate limit is exhausted", op).
			WithHint("wait for the limit to reset, or authenticate as a user with more quota")
	case containsAny(text, "must be part of the diff", "position is invalid"):
		return review.Errorf(review.KindLineNotInDiff, "%s: a comment is anchored to a line that is not part of the diff", op).
			WithHint("inline comments can only anchor to lines shown in the pull request diff; re-check each comment's line and side against the current diff")
	case containsAny(text, "http 422", "unprocessable"):
		return review.Errorf(review.KindSubmissionRejected, "%s: GitHub rejected the submission: %v", op, err)
	case containsAny(text, "not found", "http 404", "could not resolve to a pullrequest", "no pull requests found"):
		return review.Errorf(review.KindNotFound, "%s: no such pull request", op).
			WithHint("check the pull request number and the owner/repo it belongs to")
	}
	return review.Errorf(review.KindUnknown, "%s: %v", op, err)
}

func containsAny(text string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
