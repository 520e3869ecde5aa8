package conversation

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var groqTracer = otel.Tracer("ferre.internal.conversation.groq")

type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// GroqClient talks to the Groq chat-completions endpoint, which speaks the
// OpenAI wire protocol.
type GroqClient struct {
	client chatClient
}

// NewGroqClient builds a client against baseURL with the given key.
func NewGroqClient(apiKey, baseURL string) (*GroqClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &GroqClient{client: openai.NewClientWithConfig(cfg)}, nil
}

// Complete sends one chat completion request and returns the trimmed text.
func (c *GroqClient) Complete(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	ctx, span := groqTracer.Start(ctx, "conversation.groq.complete")
	defer span.End()
	span.SetAttributes(
		attribute.String("ferre.model", req.Model),
		attribute.Int("ferre.messages", len(req.Messages)),
	)

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   int(req.MaxTokens),
		Temperature: req.Temperature,
		TopP:        req.TopP,
	})
	if err != nil {
		span.RecordError(err)
		return LLMResponse{}, fmt.Errorf("conversation: groq completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		span.RecordError(ErrEmptyCompletion)
		return LLMResponse{}, ErrEmptyCompletion
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		span.RecordError(ErrEmptyCompletion)
		return LLMResponse{}, ErrEmptyCompletion
	}

	return LLMResponse{
		Text: text,
		Usage: TokenUsage{
			InputTokens:  int32(resp.Usage.PromptTokens),
			OutputTokens: int32(resp.Usage.CompletionTokens),
			TotalTokens:  int32(resp.Usage.TotalTokens),
		},
	}, nil
}
