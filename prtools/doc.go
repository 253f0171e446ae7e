/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package prtools defines the pull request review tools an agent calls:
fetch_pr_snapshot, fetch_pr_comments, and submit_pr_review.

Each tool is a provider-independent toolcall.Tool over a Callbacks struct of
injectable funcs, normally wired to a ghcli.Client with NewCallbacks. Every
call is a stateless transaction against the forge: no cache, no shared state
between invocations, no automatic retry. Failures come back to the model as
structured error objects carrying the message, the failure kind, and a
remediation hint when one exists.

The provider composes over a base, so callers can layer additional tools:

	provider := prtools.NewProvider(toolcall.NewEmptyToolsProvider[*Report]())
	tools := provider.Tools(prtools.NewPRTools(toolcall.EmptyTools{}, cb))

submit_pr_review supports a dry_run flag that validates and shapes the exact
payload a real submission would send, without calling the forge. Dry-run
previews include advisory warnings for inline comments anchored outside the
current diff.
*/
package prtools
