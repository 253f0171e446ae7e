/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package review holds the pull-request review domain model: reference
resolution, bot classification, comment threading, review submission payloads,
and the PR snapshot aggregate.

Everything in this package is pure computation over data already fetched from
the forge. Process execution and error-text sniffing live in the ghcli
package; this package only defines the typed error taxonomy those boundaries
map into.
*/
package review
