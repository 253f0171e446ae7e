/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package promptbuilder provides a safe, injection-resistant prompt construction
library that leverages Go's standard encoding packages to automatically handle
escaping and formatting. Similar to SQL prepared statements, but for LLM prompts.

# Overview

The promptbuilder package allows developers to construct prompts with dynamic
content while preventing prompt injection attacks. It achieves this by:

  - Using compile-time type safety to ensure templates come from developers
  - Automatically escaping user-provided data through standard encoders
  - Preventing transitive substitutions through single-pass tokenization
  - Immutable prompt instances - all binding methods return new instances

This matters for code review prompts in particular: PR titles, bodies, and
comments are author-controlled text that gets embedded into the prompt, so
they always travel through an encoder binding, never raw concatenation.

# Basic Usage

Create a prompt template with placeholders and bind values to them:

	import "chainguard.dev/reviewkit/agents/promptbuilder"

	// Templates must be literal strings (compile-time safety)
	p, err := promptbuilder.NewPrompt(`
		Review the following pull request:
		{{snapshot}}

		Instructions: {{instructions}}
	`)
	if err != nil {
		// Handle invalid template error
	}

	// Bind PR data as JSON (automatically escaped)
	p, err = p.BindJSON("snapshot", snapshot)
	if err != nil {
		// Handle binding error
	}

	// Bind developer-controlled literal strings
	p, err = p.BindStringLiteral("instructions", "Focus on correctness")
	if err != nil {
		// Handle binding error
	}

	// Build the final prompt
	result, err := p.Build()
	if err != nil {
		// Handle unbound placeholder error
	}

# Binding Methods

The package provides multiple binding methods for different data formats:

	// BindStringLiteral - For developer-controlled string literals only
	p, err = p.BindStringLiteral("key", "literal value")

	// BindTrustedString - For developer-controlled runtime strings
	// (embedded documents, operator-shipped files)
	p, err = p.BindTrustedString("persona", personaText)

	// BindJSON - Marshals data as indented JSON
	p, err = p.BindJSON("data", struct{ Name string }{"Alice"})

	// BindXML - Marshals data as indented XML
	p, err = p.BindXML("config", xmlStruct)

	// BindYAML - Marshals data as YAML
	p, err = p.BindYAML("settings", yamlData)

Each method also has a Must variant that panics on error:

	p = p.MustBindStringLiteral("key", "value")
	p = p.MustBindJSON("data", jsonData)

# Trusted Templates

NewPrompt only accepts compile-time string literals. Templates that ship with
the binary but are loaded at runtime (go:embed assets such as the reviewer
persona) use NewTrustedPrompt instead:

	//go:embed persona.md
	var personaTemplate string

	var persona = promptbuilder.MustNewTrustedPrompt(personaTemplate)

The trust boundary is the same in both cases: the template content is
developer-controlled. Only the enforcement mechanism differs.

# Template Syntax

Templates use {{name}} placeholders for bindings. Valid binding names must
contain only letters, digits, and underscores. Invalid identifiers will cause
NewPrompt to return an error.

Valid examples:
  - {{data}}
  - {{user_input}}
  - {{item1}}

Invalid examples:
  - {{}} (empty)
  - {{test-case}} (contains hyphen)
  - {{test.value}} (contains dot)

# Bindable Interface

Types can implement the Bindable interface to provide custom binding logic.
Executors expect request types to implement this interface so that prompts
can be bound to the specific data in each request:

	type Bindable interface {
		Bind(prompt *Prompt) (*Prompt, error)
	}

The package provides a Noop implementation that returns the prompt unchanged,
useful as an embedded field for types that conditionally bind values or when
no binding is needed:

	type MyRequest struct {
		promptbuilder.Noop // Provides default Bind implementation
		Data string
	}

# Security Properties

1. No Raw User Input - User data must go through encoders (XML, JSON, or YAML)
2. Type-Safe Literals - stringLiteral ensures only developer literals bypass encoding
3. Automatic Escaping - Encoding libraries handle all escaping for user data
4. No Transitive Substitution - Single-pass tokenization prevents recursive replacement
5. Immutable Prompts - All operations return new instances, preventing mutation

# Error Handling

The package returns errors for:
  - Invalid template syntax (malformed placeholders)
  - Binding to non-existent placeholders
  - Attempting to rebind already-bound placeholders
  - Building with unbound placeholders
  - Marshaling failures in BindJSON/BindXML/BindYAML

# Thread Safety

Prompt instances are immutable after creation. Binding methods return new instances,
making the original safe to share across goroutines.
*/
package promptbuilder
