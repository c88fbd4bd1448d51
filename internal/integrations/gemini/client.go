package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-pro"

// ErrEmptyResponse is returned when the model answers without any text part,
// e.g. when every candidate was blocked by safety filters.
var ErrEmptyResponse = errors.New("gemini: empty response")

// contentGenerator is the subset of *genai.GenerativeModel used by Client.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Client sends single-shot text prompts to a Gemini model.
type Client struct {
	sdk   *genai.Client
	model contentGenerator
}

// NewClient creates a Client authenticated with apiKey. An empty model name
// falls back to DefaultModel.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini: api key must not be empty")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}

	sdk, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{sdk: sdk, model: sdk.GenerativeModel(model)}, nil
}

func newWithModel(model contentGenerator) (*Client, error) {
	if model == nil {
		return nil, errors.New("gemini: model must not be nil")
	}
	return &Client{model: model}, nil
}

// Generate sends prompt as a single text part and returns the concatenated
// text of the response. The SDK's own error is wrapped with %w so its message
// stays visible to callers that inspect it.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.model == nil {
		return "", errors.New("gemini: client not initialized")
	}
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	text := extractText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (c *Client) Close() error {
	if c.sdk == nil {
		return nil
	}
	return c.sdk.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}
	return text.String()
}
