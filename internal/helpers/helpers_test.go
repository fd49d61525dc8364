package helpers

import (
	"testing"
	"time"
)

func TestParseStartTime(t *testing.T) {
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2035-04-01 20:00:00",
		"2035-04-01T20:00",
		"2035-04-01T20:00:00",
		"2035-04-01T22:00:00+02:00",
		" 2035-04-01 20:00:00 ",
	} {
		got, err := ParseStartTime(in)
		if err != nil {
			t.Fatalf("ParseStartTime(%q): %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseStartTime(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseStartTime("next tuesday"); err == nil {
		t.Fatal("expected error for unparseable time")
	}
}

func TestParseID(t *testing.T) {
	if _, err := ParseID("8c6f1d1e-6d0f-4f43-9b8e-3a1f0b9e2a11"); err != nil {
		t.Fatalf("parse id: %v", err)
	}
	if _, err := ParseID("42"); err == nil {
		t.Fatal("expected error for non-uuid id")
	}
}

func TestFlashSignerRoundTrip(t *testing.T) {
	signer, err := NewFlashSigner([]byte("secret"), time.Minute)
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}

	token, err := signer.Sign([]string{"Venue The Musical Hop was successfully listed!"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	messages, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if len(messages) != 1 || messages[0] != "Venue The Musical Hop was successfully listed!" {
		t.Fatalf("messages = %v", messages)
	}
}

func TestFlashSignerRejectsForeignKey(t *testing.T) {
	signer, _ := NewFlashSigner([]byte("secret"), time.Minute)
	other, _ := NewFlashSigner([]byte("another secret"), time.Minute)

	token, err := other.Sign([]string{"forged"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := signer.Verify(token); err == nil {
		t.Fatal("expected verification failure for token signed with another key")
	}
}

func TestFlashSignerRejectsExpired(t *testing.T) {
	signer, _ := NewFlashSigner([]byte("secret"), time.Minute)
	issued := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	signer.now = func() time.Time { return issued }

	token, err := signer.Sign([]string{"stale"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	signer.now = func() time.Time { return issued.Add(2 * time.Minute) }
	if _, err := signer.Verify(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestNewFlashSignerRequiresSecret(t *testing.T) {
	if _, err := NewFlashSigner(nil, time.Minute); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
