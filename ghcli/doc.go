/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package ghcli runs the GitHub CLI and turns its output into typed review data.

Everything that touches the gh binary lives here: process execution, JSON
decoding, and the translation of gh's error text into the review error
taxonomy. Callers above this package see review types and review errors,
never raw process output.

# Runner

Runner abstracts the process boundary so the Client can be tested without a
gh installation:

	client := ghcli.NewClient(ghcli.NewRunner())
	details, err := client.View(ctx, ref)

The default Runner executes gh with the caller's context; cancelling the
context kills the process rather than leaving it orphaned.

# Error classification

gh reports failures as prose on stderr. Classify is the single place that
pattern-matches that prose into review error kinds (NotFound, AuthRequired,
RateLimited, and so on). Nothing else in the module inspects gh error text,
so when gh rewords a message there is exactly one function to update.
*/
package ghcli
