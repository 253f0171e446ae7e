/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"strings"

	"chainguard.dev/reviewkit/skills"
	"github.com/spf13/cobra"
)

func skillsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Inspect the review skills built into the agent",
	}
	cmd.AddCommand(skillsListCmd(opts), skillsShowCmd(opts))
	return cmd
}

func skillsListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in review skills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := skills.All()
			if err != nil {
				return err
			}

			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), skills.Index(all))
			}

			table := newTable([]string{"Name", "Description", "Applies to"}, cmd.OutOrStdout())
			for _, s := range all {
				_ = table.Append([]string{s.Name, s.Description, strings.Join(s.Applies, ", ")})
			}
			return table.Render()
		},
	}
}

func skillsShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print one skill document, or the persona",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "persona" {
				persona, err := skills.Persona()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), persona)
				return nil
			}

			all, err := skills.All()
			if err != nil {
				return err
			}
			for _, s := range all {
				if s.Name != args[0] {
					continue
				}
				if opts.asJSON {
					return printJSON(cmd.OutOrStdout(), s)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n\n%s\n", s.Name, s.Description, s.Body)
				return nil
			}
			return fmt.Errorf("unknown skill %q", args[0])
		},
	}
}
