package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tok, err := CreateStaffToken("staff-1", "Administrator", "ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	claims, err := ParseValidate(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Sub != "staff-1" || claims.Role != "ADMIN" || claims.Name != "Administrator" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tok, err := CreateStaffToken("staff-1", "Administrator", "ADMIN", -time.Minute)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := ParseValidate(tok); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	tok, err := CreateStaffToken("staff-1", "Administrator", "ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := ParseValidate(tok); err == nil {
		t.Fatal("expected token signed with another secret to fail")
	}
}
