/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

import (
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ReviewComment is an inline comment anchored to a file and line in the PR
// diff.
type ReviewComment struct {
	ID        int64     `json:"id"`
	Path      string    `json:"path"`
	Line      *int      `json:"line"` // nil when the commented line no longer exists
	Side      string    `json:"side,omitempty"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	IsBot     bool      `json:"isBot"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// InReplyTo is the id of the parent comment, or zero for a thread root.
	// It is a back-reference only; the parent does not own its replies.
	InReplyTo int64 `json:"inReplyToId,omitempty"`

	DiffHunk string `json:"diffHunk,omitempty"`
	URL      string `json:"url,omitempty"`
}

// CommentThread is one root comment plus its replies in input order.
// Threads are derived fresh on every fetch and never cached.
type CommentThread struct {
	Root    ReviewComment   `json:"root"`
	Replies []ReviewComment `json:"replies,omitempty"`
}

// ThreadedComments is the result of AssembleThreads: comments bucketed by
// file (first-seen path order, insertion order within a bucket) and grouped
// into threads.
type ThreadedComments struct {
	ByFile  *orderedmap.OrderedMap[string, []ReviewComment] `json:"byFile"`
	Threads []CommentThread                                 `json:"threads"`
}

// AssembleThreads groups a flat, chronologically ordered comment list.
//
// A comment is a thread root iff InReplyTo is zero. Replies keep input order.
// A comment whose parent is absent from the input (the parent was deleted)
// appears in no thread: it is neither promoted to root, which would
// misrepresent thread ownership, nor listed as anyone's reply. It still
// shows up in the byFile buckets.
//
// Reply chains are exactly one level deep in this data source; a reply to a
// reply would be dropped from every thread view the same way an orphan is.
func AssembleThreads(comments []ReviewComment) ThreadedComments {
	byFile := orderedmap.New[string, []ReviewComment]()
	replies := make(map[int64][]ReviewComment)

	for _, c := range comments {
		bucket, _ := byFile.Get(c.Path)
		byFile.Set(c.Path, append(bucket, c))

		if c.InReplyTo != 0 {
			replies[c.InReplyTo] = append(replies[c.InReplyTo], c)
		}
	}

	threads := []CommentThread{}
	for _, c := range comments {
		if c.InReplyTo != 0 {
			continue
		}
		threads = append(threads, CommentThread{
			Root:    c,
			Replies: replies[c.ID],
		})
	}

	return ThreadedComments{ByFile: byFile, Threads: threads}
}
