/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

import (
	"slices"
	"strings"
)

// knownBots lists automation accounts whose logins do not follow the bot
// suffix conventions.
var knownBots = []string{
	"allcontributors",
	"codecov",
	"coveralls",
	"dependabot",
	"github-actions",
	"greenkeeper",
	"imgbot",
	"mergify",
	"renovate",
	"stale",
}

// IsBot reports whether a login looks like an automation account. The check
// is case-insensitive and ordered: a "[bot]" suffix, a "bot" suffix, then the
// known-bots list. This is a best-effort heuristic with known false negatives
// for custom bots; treat the result as advisory, never as a trust boundary.
func IsBot(login string) bool {
	l := strings.ToLower(login)
	if strings.HasSuffix(l, "[bot]") {
		return true
	}
	if strings.HasSuffix(l, "bot") {
		return true
	}
	return slices.Contains(knownBots, l)
}
