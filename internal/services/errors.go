package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration     = errors.New("configuration error")
	ErrNotFound          = errors.New("not found")
	ErrEmptyResponse     = errors.New("empty response")
	ErrEmptyAudio        = errors.New("empty audio")
	ErrMalformedResponse = errors.New("malformed response")
	ErrUnexpected        = errors.New("unexpected failure")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrUnexpected
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}

// payloadError attaches the raw service payload that triggered a failure so
// callers can surface it for diagnostics.
type payloadError struct {
	err     error
	payload string
}

func (e *payloadError) Error() string { return e.err.Error() }

func (e *payloadError) Unwrap() error { return e.err }

// WithPayload decorates err with the raw payload text. A nil err returns nil.
func WithPayload(err error, payload string) error {
	if err == nil {
		return nil
	}
	return &payloadError{err: err, payload: payload}
}

// Payload extracts the raw payload attached to err, if any.
func Payload(err error) (string, bool) {
	var pe *payloadError
	if errors.As(err, &pe) {
		return pe.payload, true
	}
	return "", false
}
