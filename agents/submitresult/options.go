/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package submitresult

import (
	"fmt"
	"reflect"

	"chainguard.dev/reviewkit/agents/schema"
	"github.com/invopop/jsonschema"
)

// Options configures the submit tool for a response type.
type Options[Response any] struct {
	ToolName           string
	Description        string
	SuccessMessage     string
	PayloadFieldName   string
	PayloadDescription string
	Generator          *schema.Generator
}

func (o *Options[Response]) setDefaults() {
	if o.ToolName == "" {
		o.ToolName = "submit_result"
	}
	if o.Description == "" {
		o.Description = "Submit the final result and complete the analysis."
	}
	if o.SuccessMessage == "" {
		o.SuccessMessage = "Result submitted successfully."
	}
	if o.PayloadFieldName == "" {
		o.PayloadFieldName = "result"
	}
	if o.PayloadDescription == "" {
		o.PayloadDescription = "Structured result payload."
	}
	if o.Generator == nil {
		o.Generator = schema.NewGenerator()
	}
}

func (o *Options[Response]) validate() error {
	if o.PayloadFieldName == "reasoning" {
		return fmt.Errorf("payload field name %q collides with the reasoning parameter", o.PayloadFieldName)
	}
	return nil
}

func (o *Options[Response]) schemaForResponse() *jsonschema.Schema {
	typ := reflect.TypeFor[Response]()
	var value any
	if typ.Kind() == reflect.Pointer {
		value = reflect.New(typ.Elem()).Interface()
	} else {
		value = reflect.New(typ).Interface()
	}
	return o.Generator.Reflect(value)
}
