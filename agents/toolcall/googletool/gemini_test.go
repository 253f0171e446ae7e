/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googletool

import (
	"context"
	"testing"

	"chainguard.dev/reviewkit/agents/agenttrace"
	"chainguard.dev/reviewkit/agents/toolcall"
	"google.golang.org/genai"
)

func commentsTool() toolcall.Tool[string] {
	return toolcall.Tool[string]{
		Def: toolcall.Definition{
			Name:        "fetch_pr_comments",
			Description: "Fetch review threads for a pull request",
			Parameters: []toolcall.Parameter{{
				Name:        "pr",
				Type:        "string",
				Description: "PR reference",
				Required:    true,
			}, {
				Name:        "include_bots",
				Type:        "boolean",
				Description: "Include bot comments",
			}},
		},
		Handler: func(_ context.Context, call toolcall.ToolCall, _ *agenttrace.Trace[string], _ *string) map[string]any {
			return map[string]any{"echo": call.Args["pr"]}
		},
	}
}

func TestFromToolDefinition(t *testing.T) {
	meta := FromTool(commentsTool())

	def := meta.Definition
	if def.Name != "fetch_pr_comments" {
		t.Errorf("name = %q", def.Name)
	}
	if def.Parameters.Type != genai.TypeObject {
		t.Errorf("parameters type = %v", def.Parameters.Type)
	}
	pr, ok := def.Parameters.Properties["pr"]
	if !ok || pr.Type != genai.TypeString {
		t.Errorf("pr property = %#v", pr)
	}
	bots, ok := def.Parameters.Properties["include_bots"]
	if !ok || bots.Type != genai.TypeBoolean {
		t.Errorf("include_bots property = %#v", bots)
	}
	if len(def.Parameters.Required) != 1 || def.Parameters.Required[0] != "pr" {
		t.Errorf("required = %v", def.Parameters.Required)
	}
}

func TestFromToolHandlerWrapsResponse(t *testing.T) {
	meta := FromTool(commentsTool())
	ctx := context.Background()
	trace := agenttrace.StartTrace[string](ctx, "prompt")

	var result string
	resp := meta.Handler(ctx, &genai.FunctionCall{
		ID:   "c1",
		Name: "fetch_pr_comments",
		Args: map[string]any{"pr": "a/b#2"},
	}, trace, &result)

	if resp == nil {
		t.Fatal("handler returned nil FunctionResponse")
	}
	if resp.ID != "c1" || resp.Name != "fetch_pr_comments" {
		t.Errorf("response identity = %q/%q", resp.ID, resp.Name)
	}
	if resp.Response["echo"] != "a/b#2" {
		t.Errorf("response payload = %#v", resp.Response)
	}
}

func TestParam(t *testing.T) {
	call := &genai.FunctionCall{
		ID:   "c2",
		Name: "fetch_pr_comments",
		Args: map[string]any{"pr": "a/b#3", "round": float64(2)},
	}

	pr, errResp := Param[string](call, "pr")
	if errResp != nil {
		t.Fatalf("Param() error = %#v", errResp.Response)
	}
	if pr != "a/b#3" {
		t.Errorf("Param() = %q", pr)
	}

	round, errResp := Param[int](call, "round")
	if errResp != nil {
		t.Fatalf("Param() error = %#v", errResp.Response)
	}
	if round != 2 {
		t.Errorf("Param() = %d", round)
	}

	if _, errResp := Param[string](call, "missing"); errResp == nil {
		t.Error("Param() on missing arg returned nil error response")
	}
}

func TestOptionalParam(t *testing.T) {
	call := &genai.FunctionCall{Args: map[string]any{"include_bots": true}}

	got, errResp := OptionalParam(call, "include_bots", false)
	if errResp != nil {
		t.Fatalf("OptionalParam() error = %#v", errResp.Response)
	}
	if !got {
		t.Error("OptionalParam() = false")
	}

	def, errResp := OptionalParam(call, "round", 1)
	if errResp != nil {
		t.Fatalf("OptionalParam() error = %#v", errResp.Response)
	}
	if def != 1 {
		t.Errorf("OptionalParam() default = %d", def)
	}
}
