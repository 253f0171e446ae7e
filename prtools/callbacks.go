/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prtools

import (
	"context"

	"chainguard.dev/reviewkit/ghcli"
	"chainguard.dev/reviewkit/review"
)

// Callbacks provides the forge operations the PR tools run against. Each
// field is an injectable func so tests can fake individual operations
// without a gh binary.
type Callbacks struct {
	// CurrentRepo resolves the ambient repository context for references
	// that omit owner/repo.
	CurrentRepo func(ctx context.Context) (owner, repo string, err error)

	// View fetches PR metadata, file stats, and commit messages.
	View func(ctx context.Context, ref review.PrRef) (*review.PrDetails, error)

	// Diff fetches the full unified diff.
	Diff func(ctx context.Context, ref review.PrRef) (string, error)

	// Reviews, IssueComments, and ReviewComments fetch the three comment
	// populations of a PR.
	Reviews        func(ctx context.Context, ref review.PrRef) ([]review.Review, error)
	IssueComments  func(ctx context.Context, ref review.PrRef) ([]review.IssueComment, error)
	ReviewComments func(ctx context.Context, ref review.PrRef) ([]review.ReviewComment, error)

	// HeadSHA fetches the PR head commit just before a real submission.
	HeadSHA func(ctx context.Context, ref review.PrRef) (string, error)

	// CreateReview posts the review.
	CreateReview func(ctx context.Context, ref review.PrRef, sub review.ReviewSubmission) (*review.SubmissionResult, error)
}

// NewCallbacks wires the callbacks to a gh CLI client.
func NewCallbacks(client *ghcli.Client) Callbacks {
	return Callbacks{
		CurrentRepo:    client.CurrentRepo,
		View:           client.View,
		Diff:           client.Diff,
		Reviews:        client.Reviews,
		IssueComments:  client.IssueComments,
		ReviewComments: client.ReviewComments,
		HeadSHA:        client.HeadSHA,
		CreateReview:   client.CreateReview,
	}
}

// AmbientRepo adapts the CurrentRepo callback to review.CurrentRepoProvider.
// A nil callback yields a nil provider so ambient resolution fails with
// ambiguous context instead of a nil dereference.
func (cb Callbacks) AmbientRepo() review.CurrentRepoProvider {
	if cb.CurrentRepo == nil {
		return nil
	}
	return repoProviderFunc(cb.CurrentRepo)
}

type repoProviderFunc func(ctx context.Context) (string, string, error)

func (f repoProviderFunc) CurrentRepo(ctx context.Context) (string, string, error) {
	return f(ctx)
}

// snapshotSource adapts the callbacks to review.SnapshotSource.
type snapshotSource struct {
	cb Callbacks
}

func (s snapshotSource) View(ctx context.Context, ref review.PrRef) (*review.PrDetails, error) {
	return s.cb.View(ctx, ref)
}

func (s snapshotSource) Diff(ctx context.Context, ref review.PrRef) (string, error) {
	return s.cb.Diff(ctx, ref)
}
