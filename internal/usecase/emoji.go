package usecase

import "strings"

type emojiRule struct {
	keyword string
	emoji   string
}

// emojiRules is scanned in order; only the first keyword found is considered.
var emojiRules = []emojiRule{
	{"hello", "👋"},
	{"hi", "👋"},
	{"bye", "👋"},
	{"thanks", "🙏"},
	{"thank you", "🙏"},
	{"help", "🤝"},
	{"good", "👍"},
	{"great", "🌟"},
	{"love", "❤️"},
	{"happy", "😊"},
	{"sad", "😢"},
	{"code", "💻"},
	{"programming", "💻"},
	{"python", "🐍"},
	{"javascript", "⚡"},
	{"data", "📊"},
	{"science", "🔬"},
	{"math", "🔢"},
	{"music", "🎵"},
	{"food", "🍕"},
	{"weather", "🌤️"},
	{"time", "⏰"},
	{"question", "❓"},
	{"answer", "✅"},
	{"important", "⚠️"},
	{"success", "✨"},
	{"error", "❌"},
	{"money", "💰"},
	{"business", "💼"},
	{"book", "📚"},
	{"learn", "📖"},
	{"idea", "💡"},
	{"world", "🌍"},
	{"star", "⭐"},
	{"rocket", "🚀"},
	{"fire", "🔥"},
}

// Augment appends at most one emoji to text, chosen by the first keyword in
// emojiRules that occurs in text (case-insensitively). When that emoji is
// already present the text is returned unchanged; later keywords are not tried.
func Augment(text string) string {
	lower := strings.ToLower(text)
	for _, r := range emojiRules {
		if !strings.Contains(lower, r.keyword) {
			continue
		}
		if strings.Contains(text, r.emoji) {
			return text
		}
		return text + " " + r.emoji
	}
	return text
}
