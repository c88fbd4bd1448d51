package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gemini-chat/internal/domain"
)

type fakeGenerator struct {
	text      string
	err       error
	prompt    string
	callCount int
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.callCount++
	f.prompt = prompt
	return f.text, f.err
}

func newTestService(t *testing.T, apiKey string, gen Generator) *ChatService {
	t.Helper()
	svc, err := NewChatService(apiKey, gen, 0)
	require.NoError(t, err)
	return svc
}

func expectChatError(t *testing.T, err error, code ErrorCode, reason string) {
	t.Helper()
	var usecaseErr *Error
	require.ErrorAs(t, err, &usecaseErr)
	require.Equal(t, code, usecaseErr.Code)
	require.Equal(t, reason, usecaseErr.Reason)
}

func TestNewChatService_ValidatesDependencies(t *testing.T) {
	_, err := NewChatService("key", nil, 0)
	require.Error(t, err)

	_, err = NewChatService("", nil, 0)
	require.NoError(t, err)

	_, err = NewChatService("  ", nil, 0)
	require.NoError(t, err)
}

func TestChat_HappyPath(t *testing.T) {
	gen := &fakeGenerator{text: "Hi, how can I help?"}
	svc := newTestService(t, "key", gen)

	out, err := svc.Chat(context.Background(), ChatInput{Message: "hello there"})
	require.NoError(t, err)
	require.Equal(t, "Hi, how can I help? 👋", out.Response)
	require.Equal(t, 1, gen.callCount)
	require.True(t, strings.HasPrefix(gen.prompt, personaPreamble()))
	require.True(t, strings.HasSuffix(gen.prompt, "\n\nUser: hello there\n\nAssistant:"))
	require.NotContains(t, gen.prompt, "Conversation history:")
}

func TestChat_IncludesHistoryInPrompt(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	svc := newTestService(t, "key", gen)

	_, err := svc.Chat(context.Background(), ChatInput{
		Message: "and now?",
		History: []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: "ignore me"},
			{Role: domain.RoleUser, Content: "first"},
			{Role: domain.RoleAssistant, Content: "reply"},
		},
	})
	require.NoError(t, err)
	require.Contains(t, gen.prompt, "Conversation history:\nUser: first\nAssistant: reply\n\nUser: and now?\n\nAssistant:")
	require.NotContains(t, gen.prompt, "ignore me")
}

func TestChat_EmptyMessage(t *testing.T) {
	gen := &fakeGenerator{text: "unused"}
	svc := newTestService(t, "key", gen)

	_, err := svc.Chat(context.Background(), ChatInput{Message: ""})
	expectChatError(t, err, ErrorInvalidInput, "empty_message")
	require.Zero(t, gen.callCount)
}

func TestChat_ValidationPrecedesConfigurationCheck(t *testing.T) {
	svc := newTestService(t, "", nil)

	_, err := svc.Chat(context.Background(), ChatInput{Message: ""})
	expectChatError(t, err, ErrorInvalidInput, "empty_message")
}

func TestChat_MessageTooLong(t *testing.T) {
	gen := &fakeGenerator{text: "unused"}
	svc, err := NewChatService("key", gen, 5)
	require.NoError(t, err)

	_, err = svc.Chat(context.Background(), ChatInput{Message: "too long"})
	expectChatError(t, err, ErrorInvalidInput, "message_too_long")
	require.Zero(t, gen.callCount)

	_, err = svc.Chat(context.Background(), ChatInput{Message: "short"})
	require.NoError(t, err)
}

func TestChat_MissingAPIKey_SkipsUpstream(t *testing.T) {
	gen := &fakeGenerator{text: "unused"}
	svc := &ChatService{gen: gen}

	_, err := svc.Chat(context.Background(), ChatInput{Message: "hello"})
	expectChatError(t, err, ErrorNotConfigured, "missing_api_key")
	require.Zero(t, gen.callCount)
}

func TestChat_UpstreamError(t *testing.T) {
	upstream := errors.New("googleapi: Error 400: API key not valid")
	svc := newTestService(t, "key", &fakeGenerator{err: upstream})

	_, err := svc.Chat(context.Background(), ChatInput{Message: "hello"})
	expectChatError(t, err, ErrorUpstream, "gemini_error")
	require.ErrorIs(t, err, upstream)
}
