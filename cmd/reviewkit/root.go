/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"chainguard.dev/reviewkit/ghcli"
	"chainguard.dev/reviewkit/review"
	"github.com/spf13/cobra"
)

// options carries the environment config plus the persistent flags shared
// by every subcommand.
type options struct {
	cfg    config
	repo   string
	asJSON bool
}

func rootCmd(cfg config) *cobra.Command {
	opts := &options{cfg: cfg}

	cmd := &cobra.Command{
		Use:   "reviewkit",
		Short: "Review pull requests with an LLM agent, or by hand",
		Long: `reviewkit fetches pull request context, previews and submits reviews,
and runs an LLM review agent. All forge access goes through the gh CLI,
which supplies authentication.

PRs are identified by a full URL, or by a bare number resolved against
--repo or the repository of the current directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.repo, "repo", "", "Repository hint as owner/repo for bare PR numbers")
	cmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Emit machine-readable JSON instead of tables")

	cmd.AddCommand(
		snapshotCmd(opts),
		commentsCmd(opts),
		submitCmd(opts),
		reviewCmd(opts),
		skillsCmd(opts),
	)
	return cmd
}

// client builds the gh-backed forge client.
func (o *options) client() *ghcli.Client {
	return ghcli.NewClient(ghcli.NewRunnerForBinary(o.cfg.GhBinary))
}

// resolve turns a command-line PR argument into a fully-qualified reference,
// falling back to the repository of the working directory when the argument
// is a bare number and --repo is unset.
func (o *options) resolve(ctx context.Context, client *ghcli.Client, arg string) (review.PrRef, error) {
	ref, err := review.ParseRef(arg, o.repo)
	if err != nil {
		return review.PrRef{}, err
	}
	return review.ResolveAmbient(ctx, ref, client)
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// firstLine truncates a comment body to its first line for table display.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if len(s) > 72 {
		s = s[:69] + "..."
	}
	return s
}
