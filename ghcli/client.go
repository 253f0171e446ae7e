/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ghcli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"chainguard.dev/reviewkit/review"
	"github.com/google/go-github/v84/github"
)

// prViewFields is everything a snapshot needs from gh pr view in one read.
const prViewFields = "number,title,body,author,state,isDraft,baseRefName,headRefName,headRefOid,createdAt,updatedAt,additions,deletions,changedFiles,files,commits,url"

// Client wraps the gh CLI with typed pull request operations. It relies on
// gh for authentication and host selection, so it works wherever gh itself
// is logged in.
type Client struct {
	runner Runner
}

// NewClient returns a Client that executes gh through the given Runner.
func NewClient(runner Runner) *Client {
	return &Client{runner: runner}
}

var (
	_ review.CurrentRepoProvider = (*Client)(nil)
	_ review.SnapshotSource      = (*Client)(nil)
)

// CurrentRepo reports the repository the working directory belongs to,
// as gh infers it from the git remotes.
func (c *Client) CurrentRepo(ctx context.Context) (owner, repo string, err error) {
	out, err := c.runner.Run(ctx, nil, "repo", "view", "--json", "owner,name")
	if err != nil {
		return "", "", Classify("resolving the current repository", err)
	}
	var view struct {
		Name  string `json:"name"`
		Owner struct {
			Login string `json:"login"`
		} `json:"owner"`
	}
	if err := json.Unmarshal(out, &view); err != nil {
		return "", "", fmt.Errorf("decoding repository view: %w", err)
	}
	if view.Owner.Login == "" || view.Name == "" {
		return "", "", fmt.Errorf("gh repo view returned no repository")
	}
	return view.Owner.Login, view.Name, nil
}

// prView mirrors the gh pr view --json field names.
type prView struct {
	Number       int        `json:"number"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	Author       login      `json:"author"`
	State        string     `json:"state"`
	IsDraft      bool       `json:"isDraft"`
	BaseRefName  string     `json:"baseRefName"`
	HeadRefName  string     `json:"headRefName"`
	HeadRefOid   string     `json:"headRefOid"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	Additions    int        `json:"additions"`
	Deletions    int        `json:"deletions"`
	ChangedFiles int        `json:"changedFiles"`
	Files        []prFile   `json:"files"`
	Commits      []prCommit `json:"commits"`
	URL          string     `json:"url"`
}

type prFile struct {
	Path      string `json:"path"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

type prCommit struct {
	Oid             string  `json:"oid"`
	MessageHeadline string  `json:"messageHeadline"`
	Authors         []login `json:"authors"`
}

type login struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

// View fetches the metadata half of a snapshot. An unqualified ref is passed
// to gh without --repo, deferring repository selection to gh's own ambient
// resolution.
func (c *Client) View(ctx context.Context, ref review.PrRef) (*review.PrDetails, error) {
	out, err := c.runner.Run(ctx, nil, prArgs(ref, "view", "--json", prViewFields)...)
	if err != nil {
		return nil, Classify("fetching pull request metadata", err)
	}
	var view prView
	if err := json.Unmarshal(out, &view); err != nil {
		return nil, fmt.Errorf("decoding pull request metadata: %w", err)
	}

	details := &review.PrDetails{
		Number:       view.Number,
		Title:        view.Title,
		Body:         view.Body,
		Author:       view.Author.Login,
		State:        view.State,
		Draft:        view.IsDraft,
		BaseRef:      view.BaseRefName,
		HeadRef:      view.HeadRefName,
		HeadSHA:      view.HeadRefOid,
		CreatedAt:    view.CreatedAt,
		UpdatedAt:    view.UpdatedAt,
		Additions:    view.Additions,
		Deletions:    view.Deletions,
		ChangedFiles: view.ChangedFiles,
		URL:          view.URL,
	}
	for _, file := range view.Files {
		details.Files = append(details.Files, review.FileChange{
			Path:      file.Path,
			Additions: file.Additions,
			Deletions: file.Deletions,
		})
	}
	for _, commit := range view.Commits {
		author := ""
		if len(commit.Authors) > 0 {
			author = commit.Authors[0].Login
			if author == "" {
				author = commit.Authors[0].Name
			}
		}
		details.Commits = append(details.Commits, review.Commit{
			SHA:      commit.Oid,
			Headline: commit.MessageHeadline,
			Author:   author,
		})
	}
	return details, nil
}

// Diff fetches the full unified diff of the PR.
func (c *Client) Diff(ctx context.Context, ref review.PrRef) (string, error) {
	out, err := c.runner.Run(ctx, nil, prArgs(ref, "diff")...)
	if err != nil {
		return "", Classify("fetching pull request diff", err)
	}
	return string(out), nil
}

// HeadSHA reads the current head commit of the PR. Submissions call this
// just before building the payload so the pinned commit is as fresh as the
// forge can report.
func (c *Client) HeadSHA(ctx context.Context, ref review.PrRef) (string, error) {
	out, err := c.runner.Run(ctx, nil, prArgs(ref, "view", "--json", "headRefOid")...)
	if err != nil {
		return "", Classify("fetching pull request head", err)
	}
	var view struct {
		HeadRefOid string `json:"headRefOid"`
	}
	if err := json.Unmarshal(out, &view); err != nil {
		return "", fmt.Errorf("decoding pull request head: %w", err)
	}
	if view.HeadRefOid == "" {
		return "", fmt.Errorf("gh reported no head commit for %s", ref.Permalink())
	}
	return view.HeadRefOid, nil
}

// Reviews lists the submitted reviews on the PR.
func (c *Client) Reviews(ctx context.Context, ref review.PrRef) ([]review.Review, error) {
	raw, err := c.list(ctx, ref, "pulls", "reviews")
	if err != nil {
		return nil, Classify("fetching pull request reviews", err)
	}
	decoded, err := decodePages[*github.PullRequestReview](raw)
	if err != nil {
		return nil, fmt.Errorf("decoding pull request reviews: %w", err)
	}

	reviews := make([]review.Review, 0, len(decoded))
	for _, r := range decoded {
		reviews = append(reviews, review.Review{
			ID:          r.GetID(),
			Author:      r.GetUser().GetLogin(),
			IsBot:       isBotUser(r.GetUser()),
			State:       r.GetState(),
			Body:        r.GetBody(),
			SubmittedAt: r.GetSubmittedAt().Time,
			URL:         r.GetHTMLURL(),
		})
	}
	return reviews, nil
}

// ReviewComments lists the inline diff comments on the PR. Line stays a
// pointer through the conversion: file-level comments carry no line at all,
// and that is not the same thing as line zero.
func (c *Client) ReviewComments(ctx context.Context, ref review.PrRef) ([]review.ReviewComment, error) {
	raw, err := c.list(ctx, ref, "pulls", "comments")
	if err != nil {
		return nil, Classify("fetching pull request comments", err)
	}
	decoded, err := decodePages[*github.PullRequestComment](raw)
	if err != nil {
		return nil, fmt.Errorf("decoding pull request comments: %w", err)
	}

	comments := make([]review.ReviewComment, 0, len(decoded))
	for _, comment := range decoded {
		comments = append(comments, review.ReviewComment{
			ID:        comment.GetID(),
			Path:      comment.GetPath(),
			Line:      comment.Line,
			Side:      comment.GetSide(),
			Body:      comment.GetBody(),
			Author:    comment.GetUser().GetLogin(),
			IsBot:     isBotUser(comment.GetUser()),
			CreatedAt: comment.GetCreatedAt().Time,
			UpdatedAt: comment.GetUpdatedAt().Time,
			InReplyTo: comment.GetInReplyTo(),
			DiffHunk:  comment.GetDiffHunk(),
			URL:       comment.GetHTMLURL(),
		})
	}
	return comments, nil
}

// IssueComments lists the PR-level conversation comments.
func (c *Client) IssueComments(ctx context.Context, ref review.PrRef) ([]review.IssueComment, error) {
	raw, err := c.list(ctx, ref, "issues", "comments")
	if err != nil {
		return nil, Classify("fetching conversation comments", err)
	}
	decoded, err := decodePages[*github.IssueComment](raw)
	if err != nil {
		return nil, fmt.Errorf("decoding conversation comments: %w", err)
	}

	comments := make([]review.IssueComment, 0, len(decoded))
	for _, comment := range decoded {
		comments = append(comments, review.IssueComment{
			ID:        comment.GetID(),
			Author:    comment.GetUser().GetLogin(),
			IsBot:     isBotUser(comment.GetUser()),
			Body:      comment.GetBody(),
			CreatedAt: comment.GetCreatedAt().Time,
			URL:       comment.GetHTMLURL(),
		})
	}
	return comments, nil
}

// CreateReview posts the submission and reports what the forge accepted.
func (c *Client) CreateReview(ctx context.Context, ref review.PrRef, sub review.ReviewSubmission) (*review.SubmissionResult, error) {
	if err := requireSlug(ref); err != nil {
		return nil, err
	}
	payload, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("encoding review submission: %w", err)
	}

	path := fmt.Sprintf("repos/%s/%s/pulls/%d/reviews", ref.Owner, ref.Repo, ref.Number)
	out, err := c.runner.Run(ctx, payload, "api", path, "-X", "POST", "--input", "-")
	if err != nil {
		return nil, Classify("submitting the review", err)
	}

	var created github.PullRequestReview
	if err := json.Unmarshal(out, &created); err != nil {
		return nil, fmt.Errorf("decoding submitted review: %w", err)
	}
	return &review.SubmissionResult{
		Success:      true,
		PR:           ref.Permalink(),
		CommentCount: len(sub.Comments),
		ReviewID:     created.GetID(),
		State:        created.GetState(),
		URL:          created.GetHTMLURL(),
	}, nil
}

// list pages through a REST collection endpoint for the PR.
func (c *Client) list(ctx context.Context, ref review.PrRef, api, collection string) ([]byte, error) {
	if err := requireSlug(ref); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("repos/%s/%s/%s/%d/%s?per_page=100", ref.Owner, ref.Repo, api, ref.Number, collection)
	return c.runner.Run(ctx, nil, "api", "--paginate", path)
}

// decodePages decodes gh api --paginate output, which is one JSON array per
// page back to back rather than a single array.
func decodePages[T any](raw []byte) ([]T, error) {
	var out []T
	dec := json.NewDecoder(bytes.NewReader(raw))
	for dec.More() {
		var page []T
		if err := dec.Decode(&page); err != nil {
			return nil, err
		}
		out = append(out, page...)
	}
	return out, nil
}

// prArgs builds a gh pr subcommand argument list, qualifying the repository
// only when the ref names one.
func prArgs(ref review.PrRef, verb string, extra ...string) []string {
	args := []string{"pr", verb, strconv.Itoa(ref.Number)}
	if slug := ref.Slug(); slug != "" {
		args = append(args, "--repo", slug)
	}
	return append(args, extra...)
}

// requireSlug guards the REST endpoints, which have the repository in the
// path and cannot fall back to gh's ambient resolution.
func requireSlug(ref review.PrRef) error {
	if ref.Owner == "" || ref.Repo == "" {
		return review.Errorf(review.KindAmbiguousContext,
			"pull request #%d is not qualified with a repository", ref.Number).
			WithHint("pass a full URL or an owner/repo alongside the number")
	}
	return nil
}

func isBotUser(u *github.User) bool {
	return u.GetType() == "Bot" || review.IsBot(u.GetLogin())
}
