package usecase

import (
	"fmt"
	"strings"

	"gemini-chat/internal/domain"
)

const maxHistoryMessages = 10

func personaPreamble() string {
	return strings.Join([]string{
		"You are a friendly and helpful AI assistant.",
		"Answer clearly and concisely in a warm, conversational tone.",
		"Use the conversation history, when provided, to stay consistent with earlier answers.",
		"If you are unsure about something, say so instead of guessing.",
	}, " ")
}

// BuildContext renders the most recent history as "User:"/"Assistant:" lines.
// Only the last maxHistoryMessages entries are considered, and system entries
// among them are dropped.
func BuildContext(history []domain.ChatMessage) string {
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	lines := make([]string, 0, len(history))
	for _, m := range history {
		if m.Role == domain.RoleSystem {
			continue
		}
		lines = append(lines, historyLine(m))
	}
	return strings.Join(lines, "\n")
}

func historyLine(m domain.ChatMessage) string {
	speaker := "Assistant"
	if m.Role == domain.RoleUser {
		speaker = "User"
	}
	return speaker + ": " + m.Content
}

// BuildPrompt assembles the full prompt sent upstream.
func BuildPrompt(context, message string) string {
	if context == "" {
		return fmt.Sprintf("%s\n\nUser: %s\n\nAssistant:", personaPreamble(), message)
	}
	return fmt.Sprintf("%s\n\nConversation history:\n%s\n\nUser: %s\n\nAssistant:", personaPreamble(), context, message)
}
