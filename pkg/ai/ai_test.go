package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

type completionFunc func(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)

func (f completionFunc) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return f(ctx, req)
}

const goodOutput = `{
	"title": "Nil Map Write in Go",
	"summary": "Writing to an uninitialized map panics; the fix is to allocate it with make before use.",
	"attributes": [
		{"trait_type": "Language", "value": "Go"},
		{"trait_type": "Platform/Library", "value": "stdlib"},
		{"trait_type": "ErrorType", "value": "Runtime Panic"}
	],
	"complexityScore": 20,
	"fullAnalysis": "### Root Cause\nA nil map cannot be assigned to..."
}`

func respWith(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestAnalyze_OK(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	g := &GroqAnalyzer{
		model:       "test-model",
		temperature: 0.3,
		api: completionFunc(func(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			gotReq = req
			return respWith(goodOutput), nil
		}),
	}

	analysis, err := g.Analyze(context.Background(), "m[\"k\"]=1", "assignment to entry in nil map", "m := make(map[string]int)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Title != "Nil Map Write in Go" {
		t.Fatalf("unexpected title: %q", analysis.Title)
	}
	if analysis.ComplexityScore != 20 {
		t.Fatalf("unexpected score: %d", analysis.ComplexityScore)
	}
	if len(analysis.Attributes) != 3 {
		t.Fatalf("unexpected attributes: %v", analysis.Attributes)
	}

	if gotReq.Model != "test-model" {
		t.Fatalf("model not propagated: %q", gotReq.Model)
	}
	if gotReq.ResponseFormat == nil || gotReq.ResponseFormat.Type != openai.ChatCompletionResponseFormatTypeJSONObject {
		t.Fatal("JSON response format not requested")
	}
	content := gotReq.Messages[0].Content
	for _, fragment := range []string{"m[\"k\"]=1", "assignment to entry in nil map", "complexityScore"} {
		if !strings.Contains(content, fragment) {
			t.Fatalf("prompt missing %q", fragment)
		}
	}
}

func TestAnalyze_FencedOutput(t *testing.T) {
	g := &GroqAnalyzer{
		api: completionFunc(func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			return respWith("```json\n" + goodOutput + "\n```"), nil
		}),
	}
	if _, err := g.Analyze(context.Background(), "c", "e", "s"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnalyze_ProviderError(t *testing.T) {
	g := &GroqAnalyzer{
		api: completionFunc(func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			return openai.ChatCompletionResponse{}, errors.New("connection refused")
		}),
	}
	if _, err := g.Analyze(context.Background(), "c", "e", "s"); err == nil {
		t.Fatal("expected error")
	}
}

func TestAnalyze_NonConformingOutput(t *testing.T) {
	cases := []string{
		"not json at all",
		`{"title": "", "summary": "s", "complexityScore": 10}`,
		`{"title": "t", "summary": "s", "complexityScore": 500}`,
	}
	for i, out := range cases {
		g := &GroqAnalyzer{
			api: completionFunc(func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
				return respWith(out), nil
			}),
		}
		if _, err := g.Analyze(context.Background(), "c", "e", "s"); err == nil {
			t.Fatalf("case %d: expected error for %q", i, out)
		}
	}
}

func TestAnalyze_EmptyChoices(t *testing.T) {
	g := &GroqAnalyzer{
		api: completionFunc(func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			return openai.ChatCompletionResponse{}, nil
		}),
	}
	_, err := g.Analyze(context.Background(), "c", "e", "s")
	if err == nil || !strings.Contains(fmt.Sprint(err), "empty completion") {
		t.Fatalf("unexpected error: %v", err)
	}
}
