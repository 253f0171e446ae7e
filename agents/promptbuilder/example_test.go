/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder_test

import (
	"fmt"
	"log"

	"chainguard.dev/reviewkit/agents/promptbuilder"
)

// ExampleNewPrompt demonstrates creating a new prompt template
func ExampleNewPrompt() {
	p, err := promptbuilder.NewPrompt(`Review {{pr}} focusing on {{focus}}.`)
	if err != nil {
		log.Fatal(err)
	}

	bindings := p.GetBindings()
	fmt.Printf("Found %d bindings\n", len(bindings))
	// Output: Found 2 bindings
}

// ExampleMustNewPrompt demonstrates creating a prompt that panics on error
func ExampleMustNewPrompt() {
	// This is safe for package-level variables with known-good templates
	var template = promptbuilder.MustNewPrompt(`Summarize: {{diff}}`)

	bindings := template.GetBindings()
	fmt.Printf("Template has %d binding\n", len(bindings))
	// Output: Template has 1 binding
}

// ExamplePrompt_BindStringLiteral demonstrates binding literal string values
func ExamplePrompt_BindStringLiteral() {
	p := promptbuilder.MustNewPrompt(`System: {{instructions}}
User: {{query}}`)

	// Bind developer-provided literal strings
	p, err := p.BindStringLiteral("instructions", "You are a meticulous code reviewer.")
	if err != nil {
		log.Fatal(err)
	}

	p, err = p.BindStringLiteral("query", "Review pull request 42.")
	if err != nil {
		log.Fatal(err)
	}

	result, err := p.Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result)
	// Output: System: You are a meticulous code reviewer.
	// User: Review pull request 42.
}

// ExamplePrompt_BindJSON demonstrates binding structured data as JSON
func ExamplePrompt_BindJSON() {
	p := promptbuilder.MustNewPrompt(`Consider this pull request:
{{pr}}`)

	pr := map[string]any{
		"number": 42,
		"title":  "Add retry to fetcher",
		"files":  []string{"fetch.go", "fetch_test.go"},
	}

	p, err := p.BindJSON("pr", pr)
	if err != nil {
		log.Fatal(err)
	}

	result, err := p.Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result)
	// Output: Consider this pull request:
	// {
	//   "files": [
	//     "fetch.go",
	//     "fetch_test.go"
	//   ],
	//   "number": 42,
	//   "title": "Add retry to fetcher"
	// }
}

// ExamplePrompt_BindYAML demonstrates binding structured data as YAML
func ExamplePrompt_BindYAML() {
	p := promptbuilder.MustNewPrompt(`Available skills:
{{skills}}`)

	skills := []map[string]string{
		{"name": "security", "description": "Spot injection and authz gaps"},
	}

	p, err := p.BindYAML("skills", skills)
	if err != nil {
		log.Fatal(err)
	}

	result, err := p.Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result)
	// Output: Available skills:
	// - description: Spot injection and authz gaps
	//   name: security
}

// ExampleNewTrustedPrompt demonstrates building a prompt from an embedded template
func ExampleNewTrustedPrompt() {
	// In real code this string comes from a go:embed asset
	embedded := "Persona:\n{{persona}}\n\nTask: review the change."

	p, err := promptbuilder.NewTrustedPrompt(embedded)
	if err != nil {
		log.Fatal(err)
	}

	p, err = p.BindTrustedString("persona", "You review Go services for Chainguard.")
	if err != nil {
		log.Fatal(err)
	}

	result, err := p.Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result)
	// Output: Persona:
	// You review Go services for Chainguard.
	//
	// Task: review the change.
}

// ExamplePrompt_MustBindStringLiteral demonstrates the Must variant for binding literals
func ExamplePrompt_MustBindStringLiteral() {
	p := promptbuilder.MustNewPrompt(`Hello {{name}}!`)

	// Chain Must methods for fluent API when you know bindings will succeed
	p = p.MustBindStringLiteral("name", "World")

	result, err := p.Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result)
	// Output: Hello World!
}
