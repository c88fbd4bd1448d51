package usecase

import (
	"fmt"
	"strings"
)

type ErrorCode string

const (
	ErrorInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrorNotConfigured ErrorCode = "NOT_CONFIGURED"
	ErrorUpstream      ErrorCode = "UPSTREAM_ERROR"
)

const (
	MessageRequired       = "Message is required"
	MessageNotConfigured  = "GEMINI_API_KEY is not configured. Please set it in your environment variables."
	MessageGenerateFailed = "Failed to generate response"
	MessageTooLong        = "Message is too long"
)

const ReasonMessageTooLong = "message_too_long"

type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("usecase: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("usecase: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}

// errorClass pairs a case-sensitive substring of a raw upstream error with
// the message shown to the caller. Order matters: the first match wins.
type errorClass struct {
	substr  string
	message string
}

var errorClasses = []errorClass{
	{substr: "API key", message: "Invalid API key. Please check your GEMINI_API_KEY environment variable."},
	{substr: "quota", message: "API quota exceeded. Please check your Gemini API usage."},
	{substr: "network", message: "Network error. Please check your connection."},
}

// Classify maps a raw upstream error message to a user-facing message.
func Classify(raw string) string {
	for _, c := range errorClasses {
		if strings.Contains(raw, c.substr) {
			return c.message
		}
	}
	return MessageGenerateFailed
}
