package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	secret := []byte("test-secret")

	signed, err := Issue(42, secret, time.Minute)
	if err != nil {
		t.Fatalf("should be able to issue a token: %v", err)
	}

	userId, err := Parse(signed, secret)
	if err != nil {
		t.Fatalf("should be able to parse the token: %v", err)
	}
	if userId != 42 {
		t.Fatalf("should have gotten user 42 back, got: %v", userId)
	}
}

func TestParseExpired(t *testing.T) {
	secret := []byte("test-secret")

	signed, err := Issue(42, secret, -time.Minute)
	if err != nil {
		t.Fatalf("should be able to issue a token: %v", err)
	}

	if _, err := Parse(signed, secret); !errors.Is(err, ErrExpired) {
		t.Fatalf("should have gotten ErrExpired, got: %v", err)
	}
}

func TestParseWrongSecret(t *testing.T) {
	signed, err := Issue(42, []byte("test-secret"), time.Minute)
	if err != nil {
		t.Fatalf("should be able to issue a token: %v", err)
	}

	if _, err := Parse(signed, []byte("another-secret")); !errors.Is(err, ErrInvalid) {
		t.Fatalf("should have gotten ErrInvalid, got: %v", err)
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := Parse("not.a.token", []byte("test-secret")); !errors.Is(err, ErrInvalid) {
		t.Fatalf("should have gotten ErrInvalid, got: %v", err)
	}
}
