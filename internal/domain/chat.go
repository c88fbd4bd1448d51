package domain

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage is a single prior turn as sent by the caller.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
