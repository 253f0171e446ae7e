/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Bindable is implemented by request types that know how to bind their own
// values into a prompt template. Executors call Bind on the incoming request
// to produce the fully bound prompt for the conversation.
type Bindable interface {
	// Bind returns a new prompt with the receiver's values bound.
	Bind(prompt *Prompt) (*Prompt, error)
}

// Noop implements Bindable by leaving the prompt untouched. Embed it in
// request types that have nothing to bind.
type Noop struct{}

// Bind returns the prompt unchanged.
func (Noop) Bind(prompt *Prompt) (*Prompt, error) {
	return prompt, nil
}
