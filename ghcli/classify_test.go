/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ghcli

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"chainguard.dev/reviewkit/review"
)

// stderrErr fakes a failed gh invocation the way execRunner reports one.
func stderrErr(stderr string) error {
	return &RunError{
		Args:   []string{"api", "repos/acme/widgets/pulls/42/reviews"},
		Stderr: stderr,
		Err:    errors.New("exit status 1"),
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want review.Kind
	}{{
		name: "auth prompt",
		err:  stderrErr("To get started with GitHub CLI, please run:  gh auth login"),
		want: review.KindAuthRequired,
	}, {
		name: "not logged in",
		err:  stderrErr("You are not logged into any GitHub hosts. To log in, run: gh auth login"),
		want: review.KindAuthRequired,
	}, {
		name: "bad credentials",
		err:  stderrErr("HTTP 401: Bad credentials (https://api.github.com/graphql)"),
		want: review.KindAuthRequired,
	}, {
		name: "primary rate limit",
		err:  stderrErr("API rate limit exceeded for user ID 1234. (HTTP 403)"),
		want: review.KindRateLimited,
	}, {
		name: "secondary rate limit",
		err:  stderrErr("You have exceeded a secondary rate limit. Please wait a few minutes before you try again."),
		want: review.KindRateLimited,
	}, {
		name: "graphql missing pr",
		err:  stderrErr("GraphQL: Could not resolve to a PullRequest with the number of 9999. (repository.pullRequest)"),
		want: review.KindNotFound,
	}, {
		name: "rest 404",
		err:  stderrErr("gh: Not Found (HTTP 404)"),
		want: review.KindNotFound,
	}, {
		name: "line off the diff",
		err:  stderrErr("gh: Unprocessable Entity (HTTP 422); Pull request review thread line must be part of the diff"),
		want: review.KindLineNotInDiff,
	}, {
		name: "start line off the diff",
		err:  stderrErr("gh: Unprocessable Entity (HTTP 422); pull_request_review_thread.start_line must be part of the diff"),
		want: review.KindLineNotInDiff,
	}, {
		name: "legacy position",
		err:  stderrErr("gh: Validation Failed (HTTP 422); Position is invalid"),
		want: review.KindLineNotInDiff,
	}, {
		name: "generic 422",
		err:  stderrErr("gh: Validation Failed (HTTP 422)"),
		want: review.KindSubmissionRejected,
	}, {
		name: "plain failure",
		err:  errors.New("read /dev/stdin: input/output error"),
		want: review.KindUnknown,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify("submitting the review", tt.err)
			if kind := review.KindOf(got); kind != tt.want {
				t.Errorf("Classify(%v) kind = %q, want %q", tt.err, kind, tt.want)
			}
		})
	}
}

func TestClassifyNil(t *testing.T) {
	if got := Classify("anything", nil); got != nil {
		t.Errorf("Classify(nil) = %v, want nil", got)
	}
}

func TestClassifyPassesThroughClassified(t *testing.T) {
	orig := review.Errorf(review.KindAmbiguousContext, "no repository in context")
	got := Classify("fetching pull request metadata", orig)
	var classified *review.Error
	if !errors.As(got, &classified) || classified != orig {
		t.Errorf("Classify rewrote an already classified error: %v", got)
	}
}

func TestClassifyMissingBinary(t *testing.T) {
	err := &RunError{Args: []string{"pr", "view"}, Err: exec.ErrNotFound}
	got := Classify("fetching pull request metadata", err)
	if kind := review.KindOf(got); kind != review.KindUnknown {
		t.Errorf("kind = %q, want %q", kind, review.KindUnknown)
	}
	if hint := review.HintOf(got); !strings.Contains(hint, "cli.github.com") {
		t.Errorf("hint = %q, want an install pointer", hint)
	}
}
