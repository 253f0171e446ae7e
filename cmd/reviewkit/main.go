/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements the reviewkit CLI: fetch PR snapshots and
// discussion, submit reviews, and run the review agent, all through the
// gh CLI for authentication and transport.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
)

// config is the environment-driven configuration. Per-invocation knobs
// (repo hint, output format, dry run) are flags instead.
type config struct {
	// Model selects the review agent's model by prefix (claude-* via
	// Vertex AI, gemini-*). Empty means the agent's default.
	Model string `env:"REVIEWKIT_MODEL"`

	// GhBinary overrides the gh binary path.
	GhBinary string `env:"REVIEWKIT_GH_BINARY,default=gh"`

	// ProjectID and Region locate the Vertex AI project for the agent.
	ProjectID string `env:"REVIEWKIT_PROJECT"`
	Region    string `env:"REVIEWKIT_REGION,default=us-central1"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	if err := rootCmd(cfg).ExecuteContext(ctx); err != nil {
		clog.FromContext(ctx).Errorf("%v", err)
		os.Exit(1)
	}
}
