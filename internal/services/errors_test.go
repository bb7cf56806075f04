package services

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(ErrConfiguration, "analyze", "load credentials", "api key missing", base)
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration marker, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	want := "configuration error: analyze: load credentials: api key missing: boom"
	if err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWrapDefaultsToUnexpected(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrUnexpected) {
		t.Fatalf("expected unexpected marker, got %v", err)
	}
	if err.Error() != "unexpected failure: service failure" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	raw := "this is not json"
	err := WithPayload(Wrap(ErrMalformedResponse, "persist", "parse result", "", errors.New("bad token")), raw)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("payload wrapper lost marker: %v", err)
	}
	got, ok := Payload(err)
	if !ok || got != raw {
		t.Fatalf("Payload() = %q, %v; want %q, true", got, ok, raw)
	}
	wrapped := fmt.Errorf("outer: %w", err)
	if got, ok := Payload(wrapped); !ok || got != raw {
		t.Fatalf("payload not recoverable through wrapping: %q, %v", got, ok)
	}
}

func TestPayloadAbsent(t *testing.T) {
	if _, ok := Payload(errors.New("plain")); ok {
		t.Fatal("expected no payload on plain error")
	}
	if WithPayload(nil, "ignored") != nil {
		t.Fatal("WithPayload(nil) should be nil")
	}
}
