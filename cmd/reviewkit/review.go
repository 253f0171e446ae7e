/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"errors"
	"fmt"

	"chainguard.dev/reviewkit/prtools"
	"chainguard.dev/reviewkit/reviewagent"
	"github.com/spf13/cobra"
)

func reviewCmd(opts *options) *cobra.Command {
	var (
		dryRun       bool
		round        int
		instructions string
	)

	cmd := &cobra.Command{
		Use:   "review <number | url>",
		Short: "Run the LLM review agent against a pull request",
		Long: `Run the review agent: it fetches the PR snapshot and discussion,
forms an opinion using the built-in review skills, previews the
submission, and posts the review. With --dry-run it previews only.

The model comes from REVIEWKIT_MODEL and the Vertex AI project from
REVIEWKIT_PROJECT and REVIEWKIT_REGION.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cfg.ProjectID == "" {
				return errors.New("REVIEWKIT_PROJECT must be set to run the review agent")
			}

			reviewer, err := reviewagent.NewReviewer(reviewagent.Options{
				ProjectID: opts.cfg.ProjectID,
				Region:    opts.cfg.Region,
				Model:     opts.cfg.Model,
				Callbacks: prtools.NewCallbacks(opts.client()),
				DryRun:    dryRun,
			})
			if err != nil {
				return err
			}

			report, err := reviewer.Review(cmd.Context(), &reviewagent.Request{
				Repository:   opts.repo,
				PullRequest:  args[0],
				Round:        round,
				Instructions: instructions,
			})
			if err != nil {
				return err
			}

			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), report)
			}

			out := cmd.OutOrStdout()
			verb := "submitted"
			if !report.Submitted {
				verb = "previewed"
			}
			fmt.Fprintf(out, "%s %s review with %d inline comments\n", verb, report.Disposition, len(report.Comments))
			if report.ReviewURL != "" {
				fmt.Fprintln(out, report.ReviewURL)
			}
			fmt.Fprintf(out, "\n%s\n", report.Summary)
			for _, c := range report.Comments {
				fmt.Fprintf(out, "\n%s:%d\n  %s\n", c.Path, c.Line, firstLine(c.Body))
			}
			for _, w := range report.Warnings {
				fmt.Fprintf(out, "\nwarning: %s\n", w)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the review instead of posting it")
	cmd.Flags().IntVar(&round, "round", 1, "Review round for repeated reviews of the same PR")
	cmd.Flags().StringVar(&instructions, "instructions", "", "Extra guidance for the agent, such as areas to focus on")
	return cmd
}
