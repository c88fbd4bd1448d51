package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"gemini-chat/handler"
	"gemini-chat/internal/config"
	"gemini-chat/internal/integrations/gemini"
	"gemini-chat/internal/integrations/paramstore"
	"gemini-chat/internal/usecase"
)

// NewHandler wires the chat handler from cfg. The returned cleanup closes the
// Gemini client, if one was created.
//
// A credential that cannot be resolved is logged rather than returned, so the
// process still starts and each request reports the missing configuration.
func NewHandler(ctx context.Context, cfg config.Config) (*handler.Handler, func(), error) {
	apiKey := loadAPIKey(ctx, cfg)

	cleanup := func() {}
	var gen usecase.Generator
	if apiKey != "" {
		client, err := gemini.NewClient(ctx, apiKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, fmt.Errorf("bootstrap: %w", err)
		}
		gen = client
		cleanup = func() {
			if err := client.Close(); err != nil {
				slog.Warn("failed to close Gemini client", "err", err)
			}
		}
	} else {
		slog.Warn("GEMINI_API_KEY is not configured; chat requests will fail until it is set")
	}

	chatService, err := usecase.NewChatService(apiKey, gen, cfg.MaxMessageLength)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("bootstrap: %w", err)
	}

	h, err := handler.NewHandler(chatService)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("bootstrap: %w", err)
	}
	return h, cleanup, nil
}

func loadAPIKey(ctx context.Context, cfg config.Config) string {
	if !cfg.NeedsParamStore() {
		return cfg.GeminiAPIKey
	}
	getter, err := newParamGetter(ctx)
	if err != nil {
		slog.Error("failed to create SSM client", "err", err)
		return ""
	}
	return resolveAPIKey(ctx, cfg, getter)
}

func resolveAPIKey(ctx context.Context, cfg config.Config, getter paramstore.Getter) string {
	key, err := cfg.ResolveAPIKey(ctx, getter)
	if err != nil {
		slog.Error("failed to resolve Gemini API key", "param", cfg.GeminiAPIKeyParam, "err", err)
		return ""
	}
	return key
}

var newParamGetter = func(ctx context.Context) (paramstore.Getter, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: load AWS config: %w", err)
	}
	client, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return client, nil
}
