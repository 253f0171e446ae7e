/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package review

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// PrRef identifies a pull request. Owner and Repo may be empty, which means
// "resolve from ambient context" via a CurrentRepoProvider.
type PrRef struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Number int    `json:"number"`
}

// Slug returns "owner/repo", or "" when the reference is still ambient.
func (r PrRef) Slug() string {
	if r.Owner == "" || r.Repo == "" {
		return ""
	}
	return r.Owner + "/" + r.Repo
}

// Permalink returns a human-readable link for the reference. Ambient
// references render as "#N" since no repository is known yet.
func (r PrRef) Permalink() string {
	if slug := r.Slug(); slug != "" {
		return fmt.Sprintf("https://github.com/%s/pull/%d", slug, r.Number)
	}
	return fmt.Sprintf("#%d", r.Number)
}

// ParseRef resolves a user-supplied PR identifier into a PrRef.
//
// Two shapes are accepted, tried in order: a pull-request URL of the form
// host/owner/repo/pull/<digits> (an https:// or http:// prefix is allowed and
// ignored, as is anything after the number), and a bare base-10 integer.
// The URL shape always wins over the bare-number interpretation.
//
// For a bare number, a repoHint of the form "owner/repo" fills in the
// repository; with no usable hint the owner and repo are left empty for
// ambient resolution. Anything else fails with KindInvalidReference.
//
// This is pure string parsing; no process or network calls happen here.
func ParseRef(ref, repoHint string) (PrRef, error) {
	ref = strings.TrimSpace(ref)

	if parsed, ok := parsePullURL(ref); ok {
		return parsed, nil
	}

	number, err := strconv.Atoi(ref)
	if err != nil || number <= 0 {
		return PrRef{}, Errorf(KindInvalidReference,
			"invalid PR reference %q: expected a pull request URL or a positive number", ref).
			WithHint("use a URL like https://github.com/owner/repo/pull/123, or a bare number plus a repo hint")
	}

	out := PrRef{Number: number}
	if owner, repo, ok := strings.Cut(repoHint, "/"); ok && owner != "" && repo != "" {
		out.Owner, out.Repo = owner, repo
	}
	return out, nil
}

// parsePullURL matches host/owner/repo/pull/<digits>, with any host.
func parsePullURL(ref string) (PrRef, bool) {
	s := strings.TrimPrefix(ref, "https://")
	s = strings.TrimPrefix(s, "http://")

	parts := strings.Split(s, "/")
	if len(parts) < 5 || parts[3] != "pull" {
		return PrRef{}, false
	}
	number, err := strconv.Atoi(parts[4])
	if err != nil || number <= 0 {
		return PrRef{}, false
	}
	if parts[1] == "" || parts[2] == "" {
		return PrRef{}, false
	}
	return PrRef{Owner: parts[1], Repo: parts[2], Number: number}, true
}

// CurrentRepoProvider resolves the ambient repository context, typically by
// asking the forge CLI which repository the working directory belongs to.
type CurrentRepoProvider interface {
	CurrentRepo(ctx context.Context) (owner, repo string, err error)
}

// ResolveAmbient fills in the owner and repo of an ambient reference using
// the provider. Fully-qualified references pass through untouched. A nil or
// failing provider yields KindAmbiguousContext.
func ResolveAmbient(ctx context.Context, ref PrRef, repos CurrentRepoProvider) (PrRef, error) {
	if ref.Owner != "" && ref.Repo != "" {
		return ref, nil
	}
	if repos == nil {
		return PrRef{}, Errorf(KindAmbiguousContext,
			"no repository specified for PR #%d and no ambient context is available", ref.Number).
			WithHint("pass an explicit repo hint like owner/repo, or a full PR URL")
	}
	owner, repo, err := repos.CurrentRepo(ctx)
	if err != nil {
		return PrRef{}, Errorf(KindAmbiguousContext,
			"no repository specified for PR #%d and the current repository could not be determined: %v", ref.Number, err).
			WithHint("run from inside a repository clone, or pass an explicit owner/repo hint")
	}
	ref.Owner, ref.Repo = owner, repo
	return ref, nil
}
