package conversation

import (
	"context"
	"errors"
)

const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ErrMissingAPIKey is returned when a completion is requested but no
// provider credentials were configured.
var ErrMissingAPIKey = errors.New("conversation: no API key configured")

// ErrEmptyCompletion is returned when the provider answers with no usable
// choices or an empty message.
var ErrEmptyCompletion = errors.New("conversation: provider returned empty completion")

// ChatMessage is one turn of a conversation as exchanged with the client
// and with the completion provider.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type TokenUsage struct {
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
}

type LLMRequest struct {
	Model       string
	Messages    []ChatMessage
	MaxTokens   int32
	Temperature float32
	TopP        float32
}

type LLMResponse struct {
	Text  string
	Usage TokenUsage
}

// LLMClient abstracts the completion provider so the routing service can be
// tested with a stub.
type LLMClient interface {
	Complete(ctx context.Context, req LLMRequest) (LLMResponse, error)
}
