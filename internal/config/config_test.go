package config

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeGetter struct {
	val   string
	err   error
	calls int
}

func (f *fakeGetter) GetParameter(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.val, f.err
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY_PARAM", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("MAX_MESSAGE_LENGTH", "")
	t.Setenv("DEV_ADDR", "")

	cfg := Load()
	require.Empty(t, cfg.GeminiAPIKey)
	require.Equal(t, "gemini-pro", cfg.GeminiModel)
	require.Zero(t, cfg.MaxMessageLength)
	require.Equal(t, ":3000", cfg.DevAddr)
	require.False(t, cfg.NeedsParamStore())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", " AIza-test ")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-flash")
	t.Setenv("MAX_MESSAGE_LENGTH", "2000")
	t.Setenv("DEV_ADDR", "127.0.0.1:8080")

	cfg := Load()
	require.Equal(t, "AIza-test", cfg.GeminiAPIKey)
	require.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	require.Equal(t, 2000, cfg.MaxMessageLength)
	require.Equal(t, "127.0.0.1:8080", cfg.DevAddr)
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "42", 10, 42},
		{"uses default for empty", "", 10, 10},
		{"uses default for non-numeric", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tc.envValue)
			require.Equal(t, tc.expected, getEnvAsIntOrDefault("TEST_INT", tc.defaultVal))
		})
	}
}

func TestResolveAPIKey_PrefersEnvironment(t *testing.T) {
	g := &fakeGetter{val: `{"token":"from-ssm"}`}
	cfg := Config{GeminiAPIKey: "from-env", GeminiAPIKeyParam: "/gemini-chat/api-key"}

	key, err := cfg.ResolveAPIKey(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, "from-env", key)
	require.Zero(t, g.calls)
}

func TestResolveAPIKey_FromParamStore(t *testing.T) {
	g := &fakeGetter{val: `{"token":"from-ssm"}`}
	cfg := Config{GeminiAPIKeyParam: "/gemini-chat/api-key"}

	key, err := cfg.ResolveAPIKey(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, "from-ssm", key)
	require.Equal(t, 1, g.calls)
}

func TestResolveAPIKey_ParamStoreError(t *testing.T) {
	cfg := Config{GeminiAPIKeyParam: "/gemini-chat/api-key"}

	_, err := cfg.ResolveAPIKey(context.Background(), &fakeGetter{err: errors.New("access denied")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "access denied")
}

func TestResolveAPIKey_Unset(t *testing.T) {
	key, err := Config{}.ResolveAPIKey(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, key)
}
