/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package submitresult

import (
	"reflect"
	"strings"
)

// tagKey is the struct tag that carries submit tool metadata on response types.
const tagKey = "submitresult"

type tagMetadata struct {
	ToolName           string
	Description        string
	SuccessMessage     string
	PayloadFieldName   string
	PayloadDescription string
}

// OptionsForResponse returns Options pre-populated from the submitresult tag
// on the response type T. Callers may adjust the returned struct before
// handing it to Tool, ClaudeTool, or GoogleTool.
func OptionsForResponse[T any]() Options[T] {
	meta, _ := extractMetadata(reflect.TypeFor[T]())
	return Options[T]{
		ToolName:           meta.ToolName,
		Description:        meta.Description,
		SuccessMessage:     meta.SuccessMessage,
		PayloadFieldName:   meta.PayloadFieldName,
		PayloadDescription: meta.PayloadDescription,
	}
}

// extractMetadata finds the first field carrying a submitresult tag and
// parses it. The tag is struct-level metadata so only one field should
// carry it; additional tags are ignored.
func extractMetadata(t reflect.Type) (tagMetadata, bool) {
	var meta tagMetadata
	if t == nil {
		return meta, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return meta, false
	}

	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get(tagKey)
		if tag == "" {
			continue
		}
		parseTag(tag, &meta)
		return meta, true
	}
	return meta, false
}

func parseTag(tag string, meta *tagMetadata) {
	for part := range strings.SplitSeq(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key, value, _ := strings.Cut(part, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "name", "tool", "toolname":
			meta.ToolName = value
		case "description":
			meta.Description = value
		case "success", "successmessage":
			meta.SuccessMessage = value
		case "payload", "payloadfield", "payloadfieldname":
			meta.PayloadFieldName = value
		case "payloaddescription", "payload_desc":
			meta.PayloadDescription = value
		}
	}
}
