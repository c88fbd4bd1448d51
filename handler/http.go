package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

const maxBodyBytes = 1 << 20

// HTTP exposes h as a net/http handler for running outside Lambda.
func HTTP(h *Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers := make(map[string]string, len(r.Header))
		for k := range r.Header {
			headers[k] = r.Header.Get(k)
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeResponse(w, jsonResponse(http.StatusRequestEntityTooLarge,
				responseHeaders(correlationIDFrom(headers)),
				errorResponse{Error: "Request body too large"}))
			return
		}

		query := make(map[string]string, len(r.URL.Query()))
		for k := range r.URL.Query() {
			query[k] = r.URL.Query().Get(k)
		}

		// Handle never fails; its error is part of the Lambda signature only.
		resp, _ := h.Handle(r.Context(), events.APIGatewayProxyRequest{
			HTTPMethod:            r.Method,
			Path:                  r.URL.Path,
			Headers:               headers,
			QueryStringParameters: query,
			Body:                  string(body),
		})
		writeResponse(w, resp)
	})
}

func writeResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	if resp.Body == "" {
		return
	}
	if _, err := io.WriteString(w, resp.Body); err != nil {
		slog.Warn("failed to write response body", "err", err)
	}
}
