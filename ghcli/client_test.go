/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ghcli

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"chainguard.dev/reviewkit/review"
	"github.com/google/go-cmp/cmp"
)

// fakeRunner serves canned gh output keyed by the joined argument list.
type fakeRunner struct {
	out   map[string]string
	calls []string
	stdin []byte
}

func (f *fakeRunner) Run(_ context.Context, stdin []byte, args ...string) ([]byte, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	if stdin != nil {
		f.stdin = stdin
	}
	out, ok := f.out[key]
	if !ok {
		return nil, &RunError{Args: args, Stderr: "no canned output for invocation", Err: errors.New("exit status 1")}
	}
	return []byte(out), nil
}

func TestClientView(t *testing.T) {
	runner := &fakeRunner{out: map[string]string{
		"pr view 42 --repo acme/widgets --json " + prViewFields: `{
			"number": 42,
			"title": "Add frobnicator",
			"body": "Makes the widgets frob.",
			"author": {"login": "octocat"},
			"state": "OPEN",
			"isDraft": false,
			"baseRefName": "main",
			"headRefName": "frob",
			"headRefOid": "abc123",
			"createdAt": "2026-01-02T15:04:05Z",
			"updatedAt": "2026-01-03T10:00:00Z",
			"additions": 120,
			"deletions": 30,
			"changedFiles": 2,
			"files": [
				{"path": "frob.go", "additions": 100, "deletions": 10},
				{"path": "frob_test.go", "additions": 20, "deletions": 20}
			],
			"commits": [
				{"oid": "abc123", "messageHeadline": "Add frobnicator", "authors": [{"login": "octocat", "name": "The Octocat"}]}
			],
			"url": "https://github.com/acme/widgets/pull/42"
		}`,
	}}
	client := NewClient(runner)

	got, err := client.View(context.Background(), review.PrRef{Owner: "acme", Repo: "widgets", Number: 42})
	if err != nil {
		t.Fatalf("View: %v", err)
	}

	want := &review.PrDetails{
		Number:       42,
		Title:        "Add frobnicator",
		Body:         "Makes the widgets frob.",
		Author:       "octocat",
		State:        "OPEN",
		BaseRef:      "main",
		HeadRef:      "frob",
		HeadSHA:      "abc123",
		CreatedAt:    time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC),
		Additions:    120,
		Deletions:    30,
		ChangedFiles: 2,
		Files: []review.FileChange{
			{Path: "frob.go", Additions: 100, Deletions: 10},
			{Path: "frob_test.go", Additions: 20, Deletions: 20},
		},
		Commits: []review.Commit{
			{SHA: "abc123", Headline: "Add frobnicator", Author: "octocat"},
		},
		URL: "https://github.com/acme/widgets/pull/42",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("View mismatch (-want +got):\n%s", diff)
	}
}

func TestClientViewAmbient(t *testing.T) {
	runner := &fakeRunner{out: map[string]string{
		"pr view 7 --json " + prViewFields: `{"number": 7, "title": "t", "author": {"login": "octocat"}, "state": "OPEN"}`,
	}}
	client := NewClient(runner)

	got, err := client.View(context.Background(), review.PrRef{Number: 7})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if got.Number != 7 {
		t.Errorf("Number = %d, want 7", got.Number)
	}
	if len(runner.calls) != 1 || strings.Contains(runner.calls[0], "--repo") {
		t.Errorf("ambient view should not pass --repo, got calls %v", runner.calls)
	}
}

func TestClientCurrentRepo(t *testing.T) {
	runner := &fakeRunner{out: map[string]string{
		"repo view --json owner,name": `{"name": "widgets", "owner": {"login": "acme"}}`,
	}}
	client := NewClient(runner)

	owner, repo, err := client.CurrentRepo(context.Background())
	if err != nil {
		t.Fatalf("CurrentRepo: %v", err)
	}
	if owner != "acme" || repo != "widgets" {
		t.Errorf("CurrentRepo = %q/%q, want acme/widgets", owner, repo)
	}
}

func TestClientReviewComments(t *testing.T) {
	runner := &fakeRunner{out: map[string]string{
		"api --paginate repos/acme/widgets/pulls/42/comments?per_page=100": `[
			{
				"id": 100,
				"path": "frob.go",
				"line": 12,
				"side": "RIGHT",
				"body": "does this handle nil?",
				"user": {"login": "octocat", "type": "User"},
				"created_at": "2026-01-02T15:04:05Z",
				"updated_at": "2026-01-02T15:04:05Z",
				"diff_hunk": "@@ -1,3 +1,4 @@",
				"html_url": "https://github.com/acme/widgets/pull/42#discussion_r100"
			},
			{
				"id": 101,
				"path": "frob.go",
				"line": 12,
				"side": "RIGHT",
				"body": "good catch, fixed",
				"user": {"login": "renovate[bot]", "type": "Bot"},
				"created_at": "2026-01-02T16:00:00Z",
				"updated_at": "2026-01-02T16:00:00Z",
				"in_reply_to_id": 100
			},
			{
				"id": 102,
				"path": "README.md",
				"line": null,
				"body": "file-level remark",
				"user": {"login": "octocat", "type": "User"},
				"created_at": "2026-01-02T17:00:00Z",
				"updated_at": "2026-01-02T17:00:00Z"
			}
		]`,
	}}
	client := NewClient(runner)

	got, err := client.ReviewComments(context.Background(), review.PrRef{Owner: "acme", Repo: "widgets", Number: 42})
	if err != nil {
		t.Fatalf("ReviewComments: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d comments, want 3", len(got))
	}

	if got[0].Line == nil || *got[0].Line != 12 {
		t.Errorf("comment 100 line = %v, want 12", got[0].Line)
	}
	if got[1].InReplyTo != 100 {
		t.Errorf("comment 101 inReplyTo = %d, want 100", got[1].InReplyTo)
	}
	if !got[1].IsBot {
		t.Error("comment 101 should be classified as a bot")
	}
	if got[2].Line != nil {
		t.Errorf("file-level comment line = %v, want nil", got[2].Line)
	}
}

func TestClientIssueCommentsPaginated(t *testing.T) {
	// gh api --paginate emits one array per page, back to back.
	runner := &fakeRunner{out: map[string]string{
		"api --paginate repos/acme/widgets/issues/42/comments?per_page=100": `[
			{"id": 1, "body": "first page", "user": {"login": "octocat"}, "created_at": "2026-01-02T15:04:05Z"}
		][
			{"id": 2, "body": "second page", "user": {"login": "hubot", "type": "Bot"}, "created_at": "2026-01-02T16:00:00Z"}
		]`,
	}}
	client := NewClient(runner)

	got, err := client.IssueComments(context.Background(), review.PrRef{Owner: "acme", Repo: "widgets", Number: 42})
	if err != nil {
		t.Fatalf("IssueComments: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d comments, want 2 across pages", len(got))
	}
	if got[1].Author != "hubot" || !got[1].IsBot {
		t.Errorf("comment 2 = %+v, want bot hubot", got[1])
	}
}

func TestClientReviews(t *testing.T) {
	runner := &fakeRunner{out: map[string]string{
		"api --paginate repos/acme/widgets/pulls/42/reviews?per_page=100": `[
			{"id": 9, "state": "APPROVED", "body": "lgtm", "user": {"login": "octocat"}, "submitted_at": "2026-01-02T15:04:05Z", "html_url": "https://github.com/acme/widgets/pull/42#pullrequestreview-9"}
		]`,
	}}
	client := NewClient(runner)

	got, err := client.Reviews(context.Background(), review.PrRef{Owner: "acme", Repo: "widgets", Number: 42})
	if err != nil {
		t.Fatalf("Reviews: %v", err)
	}
	want := []review.Review{{
		ID:          9,
		Author:      "octocat",
		State:       "APPROVED",
		Body:        "lgtm",
		SubmittedAt: time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
		URL:         "https://github.com/acme/widgets/pull/42#pullrequestreview-9",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reviews mismatch (-want +got):\n%s", diff)
	}
}

func TestClientListRequiresRepo(t *testing.T) {
	runner := &fakeRunner{}
	client := NewClient(runner)

	_, err := client.ReviewComments(context.Background(), review.PrRef{Number: 42})
	if kind := review.KindOf(err); kind != review.KindAmbiguousContext {
		t.Fatalf("kind = %q, want %q", kind, review.KindAmbiguousContext)
	}
	if len(runner.calls) != 0 {
		t.Errorf("no gh invocation expected for an unqualified ref, got %v", runner.calls)
	}
}

func TestClientCreateReview(t *testing.T) {
	runner := &fakeRunner{out: map[string]string{
		"api repos/acme/widgets/pulls/42/reviews -X POST --input -": `{
			"id": 555,
			"state": "COMMENTED",
			"html_url": "https://github.com/acme/widgets/pull/42#pullrequestreview-555"
		}`,
	}}
	client := NewClient(runner)

	ref := review.PrRef{Owner: "acme", Repo: "widgets", Number: 42}
	sub := review.BuildSubmission("abc123", "Looks solid overall.", review.DispositionComment, []review.InlineCommentDraft{
		{Path: "frob.go", Line: 12, Body: "nil check?"},
	})

	got, err := client.CreateReview(context.Background(), ref, sub)
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	want := &review.SubmissionResult{
		Success:      true,
		PR:           "https://github.com/acme/widgets/pull/42",
		CommentCount: 1,
		ReviewID:     555,
		State:        "COMMENTED",
		URL:          "https://github.com/acme/widgets/pull/42#pullrequestreview-555",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CreateReview mismatch (-want +got):\n%s", diff)
	}

	wantPayload, _ := json.Marshal(sub)
	if string(runner.stdin) != string(wantPayload) {
		t.Errorf("posted payload = %s, want %s", runner.stdin, wantPayload)
	}
}

func TestClientHeadSHA(t *testing.T) {
	runner := &fakeRunner{out: map[string]string{
		"pr view 42 --repo acme/widgets --json headRefOid": `{"headRefOid": "def456"}`,
	}}
	client := NewClient(runner)

	got, err := client.HeadSHA(context.Background(), review.PrRef{Owner: "acme", Repo: "widgets", Number: 42})
	if err != nil {
		t.Fatalf("HeadSHA: %v", err)
	}
	if got != "def456" {
		t.Errorf("HeadSHA = %q, want def456", got)
	}
}

func TestClientDiff(t *testing.T) {
	runner := &fakeRunner{out: map[string]string{
		"pr diff 42 --repo acme/widgets": "diff --git a/frob.go b/frob.go\n",
	}}
	client := NewClient(runner)

	got, err := client.Diff(context.Background(), review.PrRef{Owner: "acme", Repo: "widgets", Number: 42})
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if !strings.HasPrefix(got, "diff --git") {
		t.Errorf("Diff = %q, want raw diff text", got)
	}
}
