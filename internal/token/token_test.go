package token

import (
	"errors"
	"testing"
	"time"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword("password123", &hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("password124", &hash) {
		t.Error("wrong password accepted")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password must differ")
	}
	if !CheckPassword("password123", &h2) {
		t.Error("second hash rejected its own password")
	}
}

func TestCheckPasswordNilHash(t *testing.T) {
	if CheckPassword("anything", nil) {
		t.Error("nil hash must never match")
	}
	empty := ""
	if CheckPassword("anything", &empty) {
		t.Error("empty hash must never match")
	}
}

func TestIssueAndParsePair(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 30*24*time.Hour)
	access, refresh, err := m.Issue("12345678", "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if access == refresh {
		t.Fatal("access and refresh tokens must differ")
	}

	ac, err := m.ParseAccess(access)
	if err != nil {
		t.Fatalf("ParseAccess: %v", err)
	}
	if ac.Subject != "12345678" || ac.Rol != "admin" {
		t.Errorf("access claims = %q/%q", ac.Subject, ac.Rol)
	}

	rc, err := m.ParseRefresh(refresh)
	if err != nil {
		t.Fatalf("ParseRefresh: %v", err)
	}
	if rc.Subject != "12345678" {
		t.Errorf("refresh subject = %q", rc.Subject)
	}
}

func TestTokenTypeIsEnforced(t *testing.T) {
	m := NewManager("test-secret", time.Hour, time.Hour)
	access, refresh, err := m.Issue("12345678", "user")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := m.ParseAccess(refresh); !errors.Is(err, ErrInvalidToken) {
		t.Error("refresh token accepted as access token")
	}
	if _, err := m.ParseRefresh(access); !errors.Is(err, ErrInvalidToken) {
		t.Error("access token accepted as refresh token")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, -time.Minute)
	access, refresh, err := m.Issue("12345678", "user")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := m.ParseAccess(access); !errors.Is(err, ErrInvalidToken) {
		t.Error("expired access token accepted")
	}
	if _, err := m.ParseRefresh(refresh); !errors.Is(err, ErrInvalidToken) {
		t.Error("expired refresh token accepted")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	m := NewManager("test-secret", time.Hour, time.Hour)
	other := NewManager("other-secret", time.Hour, time.Hour)
	access, _, err := m.Issue("12345678", "user")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := other.ParseAccess(access); !errors.Is(err, ErrInvalidToken) {
		t.Error("token signed with another secret accepted")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	m := NewManager("test-secret", time.Hour, time.Hour)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.ParseAccess(raw); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("raw %q accepted", raw)
		}
	}
}
