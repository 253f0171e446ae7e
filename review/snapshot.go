/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// SizeCategory is a coarse label for how much a PR changes.
type SizeCategory string

const (
	SizeSmall     SizeCategory = "small"
	SizeMedium    SizeCategory = "medium"
	SizeLarge     SizeCategory = "large"
	SizeVeryLarge SizeCategory = "very large"
)

// ClassifySize buckets a PR by total changed lines. Boundaries are inclusive
// on the lower category: 100 is small, 500 is medium, 1000 is large.
func ClassifySize(additions, deletions int) SizeCategory {
	switch total := additions + deletions; {
	case total <= 100:
		return SizeSmall
	case total <= 500:
		return SizeMedium
	case total <= 1000:
		return SizeLarge
	default:
		return SizeVeryLarge
	}
}

// FileChange is the per-file line delta of a PR.
type FileChange struct {
	Path      string `json:"path"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// Commit is one commit on the PR branch.
type Commit struct {
	SHA      string `json:"sha"`
	Headline string `json:"headline"`
	Author   string `json:"author,omitempty"`
}

// PrDetails is the metadata half of a snapshot, as reported by the forge in
// a single read.
type PrDetails struct {
	Number       int          `json:"number"`
	Title        string       `json:"title"`
	Body         string       `json:"body,omitempty"`
	Author       string       `json:"author"`
	State        string       `json:"state"`
	Draft        bool         `json:"draft"`
	BaseRef      string       `json:"baseRef"`
	HeadRef      string       `json:"headRef"`
	HeadSHA      string       `json:"headSha"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	Additions    int          `json:"additions"`
	Deletions    int          `json:"deletions"`
	ChangedFiles int          `json:"changedFiles"`
	Files        []FileChange `json:"files"`
	Commits      []Commit     `json:"commits"`
	URL          string       `json:"url,omitempty"`
}

// PrSnapshot is the read-only aggregate handed to the caller: details plus
// the full unified diff and the derived size category. Computed on demand,
// never persisted between calls.
type PrSnapshot struct {
	PrDetails
	CommitCount  int          `json:"commitCount"`
	SizeCategory SizeCategory `json:"sizeCategory"`
	Diff         string       `json:"diff"`
}

// SnapshotSource supplies the two independent reads behind a snapshot.
type SnapshotSource interface {
	View(ctx context.Context, ref PrRef) (*PrDetails, error)
	Diff(ctx context.Context, ref PrRef) (string, error)
}

// FetchSnapshot assembles a snapshot for a fully-resolved reference. The
// metadata and diff reads are independent and run concurrently; the first
// failure cancels the other and the whole fetch fails. A partial snapshot is
// never returned.
func FetchSnapshot(ctx context.Context, src SnapshotSource, ref PrRef) (*PrSnapshot, error) {
	var (
		details *PrDetails
		diff    string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := src.View(ctx, ref)
		details = d
		return err
	})
	g.Go(func() error {
		d, err := src.Diff(ctx, ref)
		diff = d
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &PrSnapshot{
		PrDetails:    *details,
		CommitCount:  len(details.Commits),
		SizeCategory: ClassifySize(details.Additions, details.Deletions),
		Diff:         diff,
	}, nil
}
