/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package submitresult

import (
	"context"
	"encoding/json"
	"reflect"

	"chainguard.dev/reviewkit/agents/agenttrace"
	"chainguard.dev/reviewkit/agents/toolcall"
	"github.com/chainguard-dev/clog"
)

// Tool builds the provider-independent submit tool for the response type.
// The handler validates the payload against Response by decoding into it,
// then sets *result so the executor loop terminates with that value.
func Tool[Response any](opts Options[Response]) (toolcall.Tool[Response], error) {
	opts.setDefaults()
	if err := opts.validate(); err != nil {
		return toolcall.Tool[Response]{}, err
	}

	payloadSchema := opts.schemaForResponse()
	payloadSchema.Description = opts.PayloadDescription

	handler := func(ctx context.Context, call toolcall.ToolCall, trace *agenttrace.Trace[Response], result *Response) map[string]any {
		log := clog.FromContext(ctx)

		reasoning, errMap := toolcall.Param[string](call, trace, "reasoning")
		if errMap != nil {
			return errMap
		}
		payloadRaw, errMap := toolcall.Param[map[string]any](call, trace, opts.PayloadFieldName)
		if errMap != nil {
			return errMap
		}

		log.With("reasoning", reasoning).Info("Submitting result")

		tc := trace.StartToolCall(call.ID, call.Name, call.Args)

		payloadJSON, err := json.Marshal(payloadRaw)
		if err != nil {
			tc.Complete(nil, err)
			return toolcall.Error("failed to marshal payload: %v", err)
		}

		parsed, err := decodePayload[Response](payloadJSON)
		if err != nil {
			tc.Complete(nil, err)
			return toolcall.Error("failed to unmarshal payload: %v", err)
		}
		*result = parsed

		success := map[string]any{
			"success": true,
			"message": opts.SuccessMessage,
		}
		tc.Complete(success, nil)
		return success
	}

	return toolcall.Tool[Response]{
		Def: toolcall.Definition{
			Name:        opts.ToolName,
			Description: opts.Description,
			Parameters: []toolcall.Parameter{{
				Name:        "reasoning",
				Type:        "string",
				Description: "Explain why you are confident this result is complete and accurate.",
				Required:    true,
			}, {
				Name:        opts.PayloadFieldName,
				Type:        "object",
				Description: opts.PayloadDescription,
				Required:    true,
				Schema:      payloadSchema,
			}},
		},
		Handler: handler,
	}, nil
}

// decodePayload unmarshals JSON into a fresh Response, handling both value
// and pointer response types.
func decodePayload[Response any](data []byte) (Response, error) {
	var zero Response
	typ := reflect.TypeFor[Response]()

	var dest any
	if typ.Kind() == reflect.Pointer {
		dest = reflect.New(typ.Elem()).Interface()
	} else {
		dest = reflect.New(typ).Interface()
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return zero, err
	}

	if typ.Kind() == reflect.Pointer {
		return dest.(Response), nil
	}
	return reflect.ValueOf(dest).Elem().Interface().(Response), nil
}
