/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"chainguard.dev/reviewkit/ghcli"
	"chainguard.dev/reviewkit/review"
	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"
)

func submitCmd(opts *options) *cobra.Command {
	var (
		body         string
		disposition  string
		commentsPath string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "submit <number | url>",
		Short: "Submit a review, or preview one with --dry-run",
		Long: `Submit a pull request review with an optional file of inline comments.

The comments file is a JSON array of drafts:

  [{"path": "pkg/foo.go", "line": 42, "body": "nit: ..."},
   {"path": "pkg/bar.go", "line": 10, "startLine": 5, "body": "..."}]

Pass "-" to read the drafts from stdin. With --dry-run the exact payload
that would be posted is printed instead, along with warnings for any
comment anchored outside the diff.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := opts.client()

			ref, err := opts.resolve(ctx, client, args[0])
			if err != nil {
				return err
			}

			disp, err := review.ParseDisposition(disposition)
			if err != nil {
				return err
			}

			drafts, err := readDrafts(commentsPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			for i, d := range drafts {
				if err := review.ValidateDraft(d); err != nil {
					return fmt.Errorf("comment %d: %w", i+1, err)
				}
			}

			if dryRun {
				sub := review.BuildSubmission("", body, disp, drafts)
				preview := review.NewDryRunPreview(ref, sub)
				preview.Warnings = scopeWarnings(ctx, client, ref, drafts)
				if opts.asJSON {
					return printJSON(cmd.OutOrStdout(), preview)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "dry run: would submit %s review on %s with %d inline comments\n",
					disp, preview.PR, preview.CommentCount)
				for _, w := range preview.Warnings {
					fmt.Fprintf(out, "warning: %s\n", w)
				}
				return printJSON(out, preview.Submission)
			}

			// The head SHA is read just before posting so the review
			// pins to the newest commit, not one seen minutes ago.
			sha, err := client.HeadSHA(ctx, ref)
			if err != nil {
				return err
			}

			result, err := client.CreateReview(ctx, ref, review.BuildSubmission(sha, body, disp, drafts))
			if err != nil {
				return err
			}

			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "submitted %s review on %s (%d inline comments)\n",
				result.State, result.PR, result.CommentCount)
			if result.URL != "" {
				fmt.Fprintln(cmd.OutOrStdout(), result.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "Top-level review body")
	cmd.Flags().StringVar(&disposition, "disposition", "COMMENT", "Review verdict: COMMENT, APPROVE, or REQUEST_CHANGES")
	cmd.Flags().StringVar(&commentsPath, "comments", "", "Path to a JSON array of inline comment drafts, or - for stdin")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the payload instead of posting it")
	return cmd
}

// readDrafts loads inline comment drafts from a JSON file, stdin when path
// is "-", or returns nil for no path.
func readDrafts(path string, stdin io.Reader) ([]review.InlineCommentDraft, error) {
	if path == "" {
		return nil, nil
	}

	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var drafts []review.InlineCommentDraft
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&drafts); err != nil {
		return nil, fmt.Errorf("parsing comment drafts from %s: %w", path, err)
	}
	return drafts, nil
}

// scopeWarnings checks drafts against the diff. The check is advisory, so
// a failure to fetch or parse the diff logs and returns nothing rather
// than failing the preview.
func scopeWarnings(ctx context.Context, client *ghcli.Client, ref review.PrRef, drafts []review.InlineCommentDraft) []string {
	if len(drafts) == 0 {
		return nil
	}
	diff, err := client.Diff(ctx, ref)
	if err != nil {
		clog.WarnContextf(ctx, "skipping diff scope check: %v", err)
		return nil
	}
	scope, err := review.NewDiffScope(diff)
	if err != nil {
		clog.WarnContextf(ctx, "skipping diff scope check: %v", err)
		return nil
	}
	return scope.Check(drafts)
}
