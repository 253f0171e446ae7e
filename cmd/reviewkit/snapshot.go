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
)

func snapshotCmd(opts *options) *cobra.Command {
	var withDiff bool

	cmd := &cobra.Command{
		Use:   "snapshot <number | url>",
		Short: "Fetch a point-in-time snapshot of a pull request",
		Long: `Fetch PR metadata, per-file change stats, commit headlines, and the
unified diff in one shot. The metadata and diff reads run concurrently
and either both succeed or the whole fetch fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := opts.client()

			ref, err := opts.resolve(ctx, client, args[0])
			if err != nil {
				return err
			}

			snapshot, err := review.FetchSnapshot(ctx, client, ref)
			if err != nil {
				return err
			}

			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), snapshot)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", ref.Permalink(), snapshot.Title)
			fmt.Fprintf(out, "author %s, state %s, base %s <- head %s\n",
				snapshot.Author, snapshot.State, snapshot.BaseRef, snapshot.HeadRef)
			fmt.Fprintf(out, "%d files, +%d -%d (%s), %d commits\n\n",
				snapshot.ChangedFiles, snapshot.Additions, snapshot.Deletions,
				snapshot.SizeCategory, snapshot.CommitCount)

			table := newTable([]string{"File", "+", "-"}, out)
			for _, f := range snapshot.Files {
				_ = table.Append([]string{f.Path, strconv.Itoa(f.Additions), strconv.Itoa(f.Deletions)})
			}
			if err := table.Render(); err != nil {
				return err
			}

			if withDiff {
				fmt.Fprintf(out, "\n%s", snapshot.Diff)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withDiff, "diff", false, "Print the full unified diff after the file table")
	return cmd
}
