package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies the failure category so handlers and the UI can react
// to each one differently.
type Kind string

const (
	KindInvalidURL            Kind = "invalid_url"
	KindTranscriptUnavailable Kind = "transcript_unavailable"
	KindAuth                  Kind = "auth"
	KindRateLimit             Kind = "rate_limit"
	KindNetwork               Kind = "network"
	KindEmptyResponse         Kind = "empty_response"
	KindInternal              Kind = "internal"
)

type AppError struct {
	Code    int    `json:"-"`
	Kind    Kind   `json:"kind"`
	Message string `json:"error"`
	Op      string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func InvalidInput(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidURL,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func NotFound(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindTranscriptUnavailable,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func Internal(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// InvalidURL reports that no video identifier could be extracted from
// the user's input.
func InvalidURL(op string, err error, message string) *AppError {
	return InvalidInput(op, err, message)
}

// TranscriptUnavailable reports that the transcript provider could not
// deliver a transcript, for whatever cause the message names.
func TranscriptUnavailable(op string, err error, message string) *AppError {
	return NotFound(op, err, message)
}

// SummarizationFailed reports a failed completion call. The kind narrows
// the cause so the UI can tell a bad API key from a flaky service.
func SummarizationFailed(op string, kind Kind, err error, message string) *AppError {
	return &AppError{
		Code:    summarizationCode(kind),
		Kind:    kind,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func summarizationCode(kind Kind) int {
	switch kind {
	case KindAuth:
		return http.StatusUnauthorized
	case KindRateLimit:
		return http.StatusTooManyRequests
	case KindNetwork, KindEmptyResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the kind carried by err, or KindInternal for errors
// from outside this package.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func IsNotFound(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == http.StatusNotFound
	}
	return false
}
