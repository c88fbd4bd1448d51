package usecase

import (
	"context"
	"errors"
	"strings"

	"gemini-chat/internal/domain"
)

// Generator produces text for a fully assembled prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ChatService struct {
	apiKey        string
	gen           Generator
	maxMessageLen int
}

type ChatInput struct {
	Message string
	History []domain.ChatMessage
}

type ChatOutput struct {
	Response string
}

// NewChatService builds the chat use case. An empty apiKey is accepted so the
// process can start unconfigured; every Chat call then fails with
// ErrorNotConfigured without reaching gen, which may be nil in that case.
// maxMessageLen <= 0 disables the message length check.
func NewChatService(apiKey string, gen Generator, maxMessageLen int) (*ChatService, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey != "" && gen == nil {
		return nil, errors.New("usecase: generator must not be nil when an API key is set")
	}
	if maxMessageLen < 0 {
		maxMessageLen = 0
	}
	return &ChatService{
		apiKey:        apiKey,
		gen:           gen,
		maxMessageLen: maxMessageLen,
	}, nil
}

func (s *ChatService) Chat(ctx context.Context, in ChatInput) (ChatOutput, error) {
	if in.Message == "" {
		return ChatOutput{}, newError(ErrorInvalidInput, "empty_message", nil)
	}
	if s.maxMessageLen > 0 && len(in.Message) > s.maxMessageLen {
		return ChatOutput{}, newError(ErrorInvalidInput, ReasonMessageTooLong, nil)
	}
	if s.apiKey == "" {
		return ChatOutput{}, newError(ErrorNotConfigured, "missing_api_key", nil)
	}

	prompt := BuildPrompt(BuildContext(in.History), in.Message)
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return ChatOutput{}, newError(ErrorUpstream, "gemini_error", err)
	}

	return ChatOutput{Response: Augment(text)}, nil
}
