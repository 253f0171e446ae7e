/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googleexecutor

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"reflect"

	"chainguard.dev/reviewkit/agents/agenttrace"
	"chainguard.dev/reviewkit/agents/executor/retry"
	"chainguard.dev/reviewkit/agents/metrics"
	"chainguard.dev/reviewkit/agents/promptbuilder"
	"chainguard.dev/reviewkit/agents/result"
	"chainguard.dev/reviewkit/agents/toolcall/googletool"
	"github.com/chainguard-dev/clog"
	"google.golang.org/genai"
)

// Interface runs an agent conversation against Gemini.
type Interface[Request promptbuilder.Bindable, Response any] interface {
	// Execute binds the request into the prompt and drives the function-call
	// conversation until the model produces a Response. Seed tool calls,
	// when given, are executed up front and their results prepended as chat
	// history.
	Execute(ctx context.Context, request Request, tools map[string]googletool.Metadata[Response], seedToolCalls ...*genai.FunctionCall) (Response, error)
}

type executor[Request promptbuilder.Bindable, Response any] struct {
	client             *genai.Client
	prompt             *promptbuilder.Prompt
	model              string
	temperature        float32
	maxOutputTokens    int32
	systemInstructions *promptbuilder.Prompt
	responseMIMEType   string
	responseSchema     *genai.Schema
	thinkingBudget     *int32 // nil means thinking is disabled
	submitTool         googletool.Metadata[Response]
	genaiMetrics       *metrics.GenAI
	retryConfig        retry.RetryConfig
}

// New creates an executor for the given prompt template.
func New[Request promptbuilder.Bindable, Response any](
	client *genai.Client,
	prompt *promptbuilder.Prompt,
	options ...Option[Request, Response],
) (Interface[Request, Response], error) {
	if prompt == nil {
		return nil, errors.New("prompt is required")
	}

	exec := &executor[Request, Response]{
		client:          client,
		prompt:          prompt,
		model:           "gemini-2.5-flash",
		temperature:     0.1,
		maxOutputTokens: 8192,
		genaiMetrics:    metrics.NewGenAI("chainguard.ai.reviewkit"),
		retryConfig:     retry.DefaultRetryConfig(),
	}
	for _, opt := range options {
		if err := opt(exec); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return exec, nil
}

func (e *executor[Request, Response]) Execute(
	ctx context.Context,
	request Request,
	tools map[string]googletool.Metadata[Response],
	seedToolCalls ...*genai.FunctionCall,
) (resp Response, err error) {
	log := clog.FromContext(ctx)

	boundPrompt, err := request.Bind(e.prompt)
	if err != nil {
		return resp, fmt.Errorf("failed to bind request to prompt: %w", err)
	}
	prompt, err := boundPrompt.Build()
	if err != nil {
		return resp, fmt.Errorf("failed to build prompt: %w", err)
	}

	trace := agenttrace.StartTrace[Response](ctx, prompt)
	defer func() {
		trace.Complete(resp, err)
	}()

	// The submit tool is opt-in via WithSubmitResultProvider. It never
	// shadows a caller-registered tool of the same name.
	if e.submitTool.Handler != nil {
		mergedTools := make(map[string]googletool.Metadata[Response], len(tools)+1)
		maps.Copy(mergedTools, tools)

		name := "submit_result"
		if e.submitTool.Definition != nil && e.submitTool.Definition.Name != "" {
			name = e.submitTool.Definition.Name
		}
		if _, exists := mergedTools[name]; !exists {
			mergedTools[name] = e.submitTool
		}
		tools = mergedTools
	}

	toolDeclarations := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, meta := range tools {
		toolDeclarations = append(toolDeclarations, meta.Definition)
	}

	config := &genai.GenerateContentConfig{
		Temperature:     ptr(e.temperature),
		MaxOutputTokens: e.maxOutputTokens,
	}

	if e.systemInstructions != nil {
		systemPrompt, err := e.systemInstructions.Build()
		if err != nil {
			return resp, fmt.Errorf("building system prompt: %w", err)
		}
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{
				Text: systemPrompt,
			}},
		}
	}

	if len(toolDeclarations) > 0 {
		config.Tools = []*genai.Tool{{
			FunctionDeclarations: toolDeclarations,
		}}
	}

	if e.responseMIMEType != "" {
		config.ResponseMIMEType = e.responseMIMEType
	}
	if e.responseSchema != nil {
		config.ResponseSchema = e.responseSchema
	}
	if e.thinkingBudget != nil {
		config.ThinkingConfig = &genai.ThinkingConfig{
			IncludeThoughts: true,
			ThinkingBudget:  e.thinkingBudget,
		}
	}

	log.With("model", e.model).Info("Creating Google AI chat session")

	// Build the full history first, then split it: the chat is created with
	// everything but the last message, which is sent explicitly to get the
	// first model response.
	history := make([]*genai.Content, 0, 1+len(seedToolCalls)*2)
	history = append(history, &genai.Content{
		Role: "user",
		Parts: []*genai.Part{{
			Text: prompt,
		}},
	})

	// finalResult is set by a tool handler that wants to terminate the
	// conversation with a typed response; the submit tool does exactly that.
	var finalResult Response
	finalResultPtr := &finalResult

	for _, call := range seedToolCalls {
		log.With("tool", call.Name).With("id", call.ID).Info("Pre-executing seed tool call")

		var result *genai.FunctionResponse
		if meta, ok := tools[call.Name]; ok {
			result = meta.Handler(ctx, call, trace, finalResultPtr)
		} else {
			log.With("tool", call.Name).Error("Unknown seed tool requested")
			trace.BadToolCall(call.ID, call.Name, call.Args, fmt.Errorf("unknown tool: %q", call.Name))
			result = &genai.FunctionResponse{
				ID:   call.ID,
				Name: call.Name,
				Response: map[string]any{
					"error": fmt.Sprintf("unknown tool: %q", call.Name),
				},
			}
		}

		if !reflect.ValueOf(finalResult).IsZero() {
			log.Info("Seed tool set final result, exiting immediately")
			return finalResult, nil
		}

		history = append(history, &genai.Content{
			Role: "model",
			Parts: []*genai.Part{{
				FunctionCall: call,
			}},
		}, &genai.Content{
			Role: "user",
			Parts: []*genai.Part{{
				FunctionResponse: result,
			}},
		})
	}

	chat, err := e.client.Chats.Create(ctx, e.model, config, history[:len(history)-1])
	if err != nil {
		return resp, fmt.Errorf("failed to create chat with model %q: %w", e.model, err)
	}

	log.Info("Sending final message")
	response, err := retry.RetryWithBackoff(ctx, e.retryConfig, "send_initial_message", isRetryableVertexError, func() (*genai.GenerateContentResponse, error) {
		return chat.Send(ctx, history[len(history)-1].Parts...)
	})
	if err != nil {
		return resp, fmt.Errorf("failed to send final message: %w", err)
	}

	e.recordUsage(ctx, trace, response)

	// Conversation loop.
	var responseText string
	for {
		log.With("candidates_count", len(response.Candidates)).
			Info("Received response from model")

		if len(response.Candidates) == 0 {
			return resp, errors.New("no content generated - no candidates")
		}

		candidate := response.Candidates[0]

		// Gemini occasionally emits a malformed function call; ask it to
		// try again with the declared functions rather than failing the run.
		if candidate.FinishReason == genai.FinishReasonMalformedFunctionCall {
			log.With("finish_message", candidate.FinishMessage).
				Warn("Model attempted a malformed function call, asking it to retry")

			var funcNames []string
			for _, decl := range toolDeclarations {
				funcNames = append(funcNames, decl.Name)
			}

			retryMsg := genai.Part{Text: fmt.Sprintf("The function call was malformed. Please try again using the available functions: %v", funcNames)}
			retryResp, err := retry.RetryWithBackoff(ctx, e.retryConfig, "send_malformed_retry", isRetryableVertexError, func() (*genai.GenerateContentResponse, error) {
				return chat.SendMessage(ctx, retryMsg)
			})
			if err != nil {
				return resp, fmt.Errorf("failed to send retry message after malformed function call: %w", err)
			}

			e.recordUsage(ctx, trace, retryResp)
			response = retryResp
			continue
		}

		if candidate.Content == nil {
			return resp, errors.New("no content generated - candidate content is nil")
		}
		if len(candidate.Content.Parts) == 0 {
			return resp, errors.New("no content generated - no parts in candidate")
		}

		var toolCalls []*genai.FunctionCall
		var hasText bool

		for i, part := range candidate.Content.Parts {
			switch {
			case part.Thought:
				trace.Reasoning = append(trace.Reasoning, agenttrace.ReasoningContent{
					Thinking: part.Text,
				})
				log.With("part_index", i).
					With("thinking_length", len(part.Text)).
					Info("Found thought part")
			case part.Text != "":
				responseText = part.Text
				hasText = true
				log.With("part_index", i).
					With("text_length", len(part.Text)).
					Info("Found text part")
			case part.FunctionCall != nil:
				toolCalls = append(toolCalls, part.FunctionCall)
				log.With("part_index", i).
					With("function_name", part.FunctionCall.Name).
					With("function_id", part.FunctionCall.ID).
					Info("Found function call part")
			default:
				log.With("part_index", i).
					Warn("Found part with unexpected content")
			}
		}

		if len(toolCalls) > 0 {
			var toolResponseParts []*genai.Part

			for _, call := range toolCalls {
				log.With("tool", call.Name).With("id", call.ID).Info("Executing tool call")
				e.genaiMetrics.RecordToolCall(ctx, e.model, call.Name)

				var toolResponse *genai.FunctionResponse
				toolMeta, found := tools[call.Name]
				if !found {
					log.With("function", call.Name).Error("Unknown function call requested by model")
					toolResponse = googletool.Error(call, "Unknown function: %s", call.Name)
					trace.BadToolCall(call.ID, call.Name, call.Args, fmt.Errorf("unknown function: %q", call.Name))
				} else {
					toolResponse = toolMeta.Handler(ctx, call, trace, finalResultPtr)
				}

				if !reflect.ValueOf(finalResult).IsZero() {
					log.Info("Tool set final result, exiting conversation loop")
					return finalResult, nil
				}

				toolResponseParts = append(toolResponseParts, &genai.Part{
					FunctionResponse: toolResponse,
				})
			}

			response, err = retry.RetryWithBackoff(ctx, e.retryConfig, "send_tool_responses", isRetryableVertexError, func() (*genai.GenerateContentResponse, error) {
				return chat.Send(ctx, toolResponseParts...)
			})
			if err != nil {
				return resp, fmt.Errorf("failed to send tool responses: %w", err)
			}

			e.recordUsage(ctx, trace, response)
			continue
		}

		if hasText && responseText != "" {
			break
		}

		log.Error("Unexpected response format - no text and no tool calls")
		return resp, errors.New("unexpected response format from model")
	}

	if responseText == "" {
		return resp, errors.New("no text content found in response")
	}

	extractedResponse, err := result.Extract[Response](responseText)
	if err != nil {
		log.With("response", responseText).With("error", err).Error("Failed to parse AI response")
		return resp, fmt.Errorf("failed to parse AI response: %w", err)
	}
	return extractedResponse, nil
}

func ptr[T any](v T) *T {
	return &v
}

// recordUsage records token usage on both the metrics meter and the trace
// span, so consumption is visible in Cloud Trace without cross-referencing.
func (e *executor[Request, Response]) recordUsage(ctx context.Context, trace *agenttrace.Trace[Response], response *genai.GenerateContentResponse) {
	if response == nil || response.UsageMetadata == nil {
		return
	}
	usage := response.UsageMetadata
	e.genaiMetrics.RecordTokens(ctx, e.model, int64(usage.PromptTokenCount), int64(usage.CandidatesTokenCount))
	trace.RecordTokenUsage(e.model, int64(usage.PromptTokenCount), int64(usage.CandidatesTokenCount))
}
