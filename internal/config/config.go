package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"gemini-chat/internal/integrations/paramstore"
)

type Config struct {
	// Gemini
	GeminiAPIKey      string
	GeminiAPIKeyParam string
	GeminiModel       string

	// Request limits
	MaxMessageLength int

	// Local development
	DevAddr string
}

// Load reads configuration from the environment, after loading .env if it exists.
// A missing GEMINI_API_KEY is not an error here; the chat service reports it per request.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		GeminiAPIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiAPIKeyParam: strings.TrimSpace(os.Getenv("GEMINI_API_KEY_PARAM")),
		GeminiModel:       getEnvOrDefault("GEMINI_MODEL", "gemini-pro"),
		MaxMessageLength:  getEnvAsIntOrDefault("MAX_MESSAGE_LENGTH", 0),
		DevAddr:           getEnvOrDefault("DEV_ADDR", ":3000"),
	}
}

// NeedsParamStore reports whether the API key has to be read from SSM.
func (c Config) NeedsParamStore() bool {
	return c.GeminiAPIKey == "" && c.GeminiAPIKeyParam != ""
}

// ResolveAPIKey returns GEMINI_API_KEY when set, otherwise the token stored
// under GEMINI_API_KEY_PARAM. It returns "" with no error when neither is set.
func (c Config) ResolveAPIKey(ctx context.Context, getter paramstore.Getter) (string, error) {
	if !c.NeedsParamStore() {
		return c.GeminiAPIKey, nil
	}
	key, err := paramstore.FetchToken(ctx, getter, c.GeminiAPIKeyParam)
	if err != nil {
		return "", fmt.Errorf("config: resolve gemini api key: %w", err)
	}
	return key, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
