/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

import (
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Review is one submitted review on the PR.
type Review struct {
	ID          int64     `json:"id"`
	Author      string    `json:"author"`
	IsBot       bool      `json:"isBot"`
	State       string    `json:"state"`
	Body        string    `json:"body,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
	URL         string    `json:"url,omitempty"`
}

// IssueComment is a top-level conversation comment on the PR, as opposed to
// an inline review comment.
type IssueComment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	IsBot     bool      `json:"isBot"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	URL       string    `json:"url,omitempty"`
}

// CommentStats summarizes a comments bundle at a glance.
type CommentStats struct {
	Reviews           int `json:"reviews"`
	IssueComments     int `json:"issueComments"`
	ReviewComments    int `json:"reviewComments"`
	BotComments       int `json:"botComments"`
	Threads           int `json:"threads"`
	FilesWithComments int `json:"filesWithComments"`
}

// CommentsBundle is the full comment picture of a PR: raw lists, the by-file
// index, assembled threads, and summary stats.
type CommentsBundle struct {
	Stats          CommentStats                                    `json:"stats"`
	Reviews        []Review                                        `json:"reviews"`
	IssueComments  []IssueComment                                  `json:"issueComments"`
	ReviewComments []ReviewComment                                 `json:"reviewComments"`
	CommentsByFile *orderedmap.OrderedMap[string, []ReviewComment] `json:"commentsByFile"`
	Threads        []CommentThread                                 `json:"threads"`
}

// BuildCommentsBundle derives threads and stats from the fetched lists.
// Slices in the result are always non-nil so the JSON output carries empty
// arrays rather than nulls. BotComments counts bot-authored issue and review
// comments.
func BuildCommentsBundle(reviews []Review, issueComments []IssueComment, reviewComments []ReviewComment) *CommentsBundle {
	if reviews == nil {
		reviews = []Review{}
	}
	if issueComments == nil {
		issueComments = []IssueComment{}
	}
	if reviewComments == nil {
		reviewComments = []ReviewComment{}
	}

	threaded := AssembleThreads(reviewComments)

	bots := 0
	for _, c := range issueComments {
		if c.IsBot {
			bots++
		}
	}
	for _, c := range reviewComments {
		if c.IsBot {
			bots++
		}
	}

	return &CommentsBundle{
		Stats: CommentStats{
			Reviews:           len(reviews),
			IssueComments:     len(issueComments),
			ReviewComments:    len(reviewComments),
			BotComments:       bots,
			Threads:           len(threaded.Threads),
			FilesWithComments: threaded.ByFile.Len(),
		},
		Reviews:        reviews,
		IssueComments:  issueComments,
		ReviewComments: reviewComments,
		CommentsByFile: threaded.ByFile,
		Threads:        threaded.Threads,
	}
}
