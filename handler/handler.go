package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"gemini-chat/internal/domain"
	"gemini-chat/internal/usecase"
)

const correlationHeader = "X-Correlation-Id"

var corsHeaders = map[string]string{
	"Access-Control-Allow-Credentials": "true",
	"Access-Control-Allow-Origin":      "*",
	"Access-Control-Allow-Methods":     "GET,OPTIONS,PATCH,DELETE,POST,PUT",
	"Access-Control-Allow-Headers":     "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version",
}

// Chatter is the use case consumed by Handler.
type Chatter interface {
	Chat(ctx context.Context, in usecase.ChatInput) (usecase.ChatOutput, error)
}

type Handler struct {
	chat Chatter
}

// chatRequest keeps fields raw so that a malformed message (400) can be told
// apart from a malformed history (500).
type chatRequest struct {
	Message json.RawMessage `json:"message"`
	History json.RawMessage `json:"history"`
}

type chatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// failureResponse always carries details, even when the raw message is empty.
type failureResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func NewHandler(chat Chatter) (*Handler, error) {
	if chat == nil {
		return nil, errors.New("handler: chat use case must not be nil")
	}
	return &Handler{chat: chat}, nil
}

// Handle serves one API Gateway proxy event. It never returns a non-nil error:
// every outcome is encoded in the response.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := correlationIDFrom(event.Headers)
	headers := responseHeaders(correlationID)

	switch event.HTTPMethod {
	case http.MethodOptions:
		return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Headers: headers}, nil
	case http.MethodPost:
	default:
		return jsonResponse(http.StatusMethodNotAllowed, headers, errorResponse{Error: "Method not allowed"}), nil
	}

	in, err := decodeChatInput(event)
	if err != nil {
		return h.failure(correlationID, headers, err), nil
	}

	out, err := h.chat.Chat(ctx, in)
	if err != nil {
		return h.failure(correlationID, headers, err), nil
	}

	return jsonResponse(http.StatusOK, headers, chatResponse{Response: out.Response, Success: true}), nil
}

func (h *Handler) failure(correlationID string, headers map[string]string, err error) events.APIGatewayProxyResponse {
	var usecaseErr *usecase.Error
	if !errors.As(err, &usecaseErr) {
		slog.Error("chat request failed", "correlation_id", correlationID, "err", err)
		return jsonResponse(http.StatusInternalServerError, headers, failureResponse{
			Error:   usecase.Classify(err.Error()),
			Details: err.Error(),
		})
	}

	switch usecaseErr.Code {
	case usecase.ErrorInvalidInput:
		message := usecase.MessageRequired
		if usecaseErr.Reason == usecase.ReasonMessageTooLong {
			message = usecase.MessageTooLong
		}
		return jsonResponse(http.StatusBadRequest, headers, errorResponse{Error: message})
	case usecase.ErrorNotConfigured:
		slog.Error("chat request failed", "correlation_id", correlationID, "code", usecaseErr.Code, "reason", usecaseErr.Reason)
		return jsonResponse(http.StatusInternalServerError, headers, errorResponse{Error: usecase.MessageNotConfigured})
	default:
		raw := err.Error()
		if usecaseErr.Err != nil {
			raw = usecaseErr.Err.Error()
		}
		slog.Error("chat request failed", "correlation_id", correlationID, "code", usecaseErr.Code, "reason", usecaseErr.Reason, "err", usecaseErr.Err)
		return jsonResponse(http.StatusInternalServerError, headers, failureResponse{
			Error:   usecase.Classify(raw),
			Details: raw,
		})
	}
}

func decodeChatInput(event events.APIGatewayProxyRequest) (usecase.ChatInput, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return usecase.ChatInput{}, &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "invalid_base64_body", Err: err}
		}
		body = decoded
	}

	var req chatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return usecase.ChatInput{}, &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "invalid_json", Err: err}
	}

	var message string
	if len(req.Message) > 0 {
		if err := json.Unmarshal(req.Message, &message); err != nil {
			return usecase.ChatInput{}, &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "message_not_string", Err: err}
		}
	}
	if message == "" {
		return usecase.ChatInput{}, &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "empty_message"}
	}

	var history []domain.ChatMessage
	if len(req.History) > 0 {
		if err := json.Unmarshal(req.History, &history); err != nil {
			return usecase.ChatInput{}, fmt.Errorf("handler: decode history: %w", err)
		}
	}

	return usecase.ChatInput{Message: message, History: history}, nil
}

func correlationIDFrom(headers map[string]string) string {
	for k, v := range headers {
		if strings.EqualFold(k, correlationHeader) && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return uuid.NewString()
}

func responseHeaders(correlationID string) map[string]string {
	headers := make(map[string]string, len(corsHeaders)+2)
	for k, v := range corsHeaders {
		headers[k] = v
	}
	headers[correlationHeader] = correlationID
	return headers
}

func jsonResponse(status int, headers map[string]string, body any) events.APIGatewayProxyResponse {
	headers["Content-Type"] = "application/json"
	buf, err := json.Marshal(body)
	if err != nil {
		slog.Error("failed to encode response", "err", err)
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    headers,
			Body:       `{"error":"Failed to generate response"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(buf),
	}
}
