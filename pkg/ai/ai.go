// Package ai implements the submission summarizer on top of the Groq
// completion API. Groq exposes an OpenAI-compatible endpoint, so the client
// is built on the go-openai library with a custom base URL. The model is
// asked for a constrained JSON object; anything that does not parse into a
// valid Analysis fails the whole submission.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/debugger-labs/debugger-go/pkg/config"
	"github.com/debugger-labs/debugger-go/pkg/model"
)

// Analyzer produces a structured analysis of one debugging submission.
type Analyzer interface {
	Analyze(ctx context.Context, code, errText, solution string) (*model.Analysis, error)
}

// completionAPI is the slice of the go-openai client used by GroqAnalyzer.
// It exists so tests can substitute a fake without a network round-trip.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// GroqAnalyzer sends submissions to the Groq chat-completion endpoint and
// parses the constrained JSON response.
type GroqAnalyzer struct {
	api         completionAPI
	model       string
	temperature float32
}

// NewGroqAnalyzer builds an analyzer from the Groq section of the config.
func NewGroqAnalyzer(cfg config.Groq) *GroqAnalyzer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	return &GroqAnalyzer{
		api:         openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: 0.3,
	}
}

const promptTemplate = `Analyze the following developer error submission. Based on the code, error, and solution, provide the following information in a VALID JSON format:
1. "title": A concise, descriptive title for this dataset (max 15 words).
2. "summary": A brief, one-paragraph summary explaining the problem and solution.
3. "attributes": An array of key-value objects for "Language", "Platform/Library", and "ErrorType".
4. "complexityScore": An integer between 1 and 100 representing the complexity.
5. "fullAnalysis": A detailed, markdown-formatted explanation of the root cause and the fix.

Example JSON output:
{
    "title": "React State Hydration Mismatch on Server-Side Rendered App",
    "summary": "This dataset addresses a common hydration error in Next.js where server-generated timestamps caused a mismatch with the client-side render. The solution involves ensuring the component only renders the dynamic time on the client side using the useEffect hook.",
    "attributes": [
        {"trait_type": "Language", "value": "JavaScript"},
        {"trait_type": "Platform/Library", "value": "React (Next.js)"},
        {"trait_type": "ErrorType", "value": "Hydration Error"}
    ],
    "complexityScore": 75,
    "fullAnalysis": "### Root Cause\nThe error 'Text content does not match server-rendered HTML' occurs because..."
}

---
SUBMISSION DATA:
Code: %s
Error: %s
Solution: %s
---`

// Analyze sends the submission to the completion endpoint and parses the
// response. It returns an error if the provider is unreachable, returns no
// choices, or produces output that does not conform to the Analysis schema.
func (g *GroqAnalyzer) Analyze(ctx context.Context, code, errText, solution string) (*model.Analysis, error) {
	req := openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(promptTemplate, code, errText, solution),
			},
		},
	}

	resp, err := g.api.CreateChatCompletion(ctx, req)
	if err != nil {
		zap.L().Error("groq completion failed", zap.Error(err))
		return nil, fmt.Errorf("failed to analyze data with AI: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("failed to analyze data with AI: empty completion response")
	}

	analysis, err := parseAnalysis(resp.Choices[0].Message.Content)
	if err != nil {
		zap.L().Error("groq returned non-conforming output", zap.Error(err))
		return nil, fmt.Errorf("failed to analyze data with AI: %w", err)
	}

	zap.L().Debug("ai analysis complete",
		zap.String("title", analysis.Title),
		zap.Int("complexityScore", analysis.ComplexityScore))
	return analysis, nil
}

// parseAnalysis decodes the model output into an Analysis and validates it.
// Reasoning models occasionally wrap the object in a fenced code block even
// with JSON response format requested; the fences are stripped before parsing.
func parseAnalysis(content string) (*model.Analysis, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var analysis model.Analysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &analysis); err != nil {
		return nil, fmt.Errorf("unparsable completion output: %w", err)
	}
	if err := analysis.Valid(); err != nil {
		return nil, err
	}
	return &analysis, nil
}
