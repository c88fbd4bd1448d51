package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"gemini-chat/internal/bootstrap"
	"gemini-chat/internal/config"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	cfg := config.Load()

	// ---- Handler ----
	h, cleanup, err := bootstrap.NewHandler(ctx, cfg)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}
	defer cleanup()

	lambda.Start(h.Handle)
}
