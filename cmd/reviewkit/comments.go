/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"strconv"

	"chainguard.dev/reviewkit/review"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func commentsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments <number | url>",
		Short: "Fetch the full discussion of a pull request",
		Long: `Fetch reviews, conversation comments, and inline review comments,
assembled into per-file buckets and reply threads. Bot authors are
flagged so automated chatter is easy to separate from human feedback.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := opts.client()

			ref, err := opts.resolve(ctx, client, args[0])
			if err != nil {
				return err
			}

			var (
				reviews        []review.Review
				issueComments  []review.IssueComment
				reviewComments []review.ReviewComment
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				reviews, err = client.Reviews(gctx, ref)
				return err
			})
			g.Go(func() error {
				var err error
				issueComments, err = client.IssueComments(gctx, ref)
				return err
			})
			g.Go(func() error {
				var err error
				reviewComments, err = client.ReviewComments(gctx, ref)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			bundle := review.BuildCommentsBundle(reviews, issueComments, reviewComments)

			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), bundle)
			}

			out := cmd.OutOrStdout()
			s := bundle.Stats
			fmt.Fprintf(out, "%s: %d reviews, %d conversation comments, %d inline comments (%d from bots)\n",
				ref.Permalink(), s.Reviews, s.IssueComments, s.ReviewComments, s.BotComments)
			fmt.Fprintf(out, "%d threads across %d files\n\n", s.Threads, s.FilesWithComments)

			table := newTable([]string{"File", "Line", "Author", "Replies", "Comment"}, out)
			for _, t := range bundle.Threads {
				line := ""
				if t.Root.Line != nil {
					line = strconv.Itoa(*t.Root.Line)
				}
				author := t.Root.Author
				if t.Root.IsBot {
					author += " (bot)"
				}
				_ = table.Append([]string{
					t.Root.Path,
					line,
					author,
					strconv.Itoa(len(t.Replies)),
					firstLine(t.Root.Body),
				})
			}
			return table.Render()
		},
	}
	return cmd
}
