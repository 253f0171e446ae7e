/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder_test

import (
	"strings"
	"testing"

	"chainguard.dev/reviewkit/agents/promptbuilder"
)

type reviewRequest struct {
	Repository string `yaml:"repository"`
	PullNumber int    `yaml:"pull_number"`
}

func (r *reviewRequest) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	return p.BindYAML("pr_context", r)
}

func TestBindableBindsRequestValues(t *testing.T) {
	p, err := promptbuilder.NewPrompt("Context:\n{{pr_context}}")
	if err != nil {
		t.Fatalf("NewPrompt() error = %v", err)
	}

	var req promptbuilder.Bindable = &reviewRequest{
		Repository: "chainguard-dev/reviewkit",
		PullNumber: 12,
	}
	p, err = req.Bind(p)
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	out, err := p.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !strings.Contains(out, "pull_number: 12") {
		t.Errorf("built prompt = %q", out)
	}
}

func TestNoopBind(t *testing.T) {
	p, err := promptbuilder.NewPrompt("static instructions")
	if err != nil {
		t.Fatalf("NewPrompt() error = %v", err)
	}
	got, err := promptbuilder.Noop{}.Bind(p)
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if got != p {
		t.Error("Noop.Bind returned a different prompt")
	}
}
