package util

import (
	"seatudy_backend/internal/model"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	member := &model.Member{
		Email:     "member@seatudy.dev",
		Nickname:  "member",
		LoginType: model.LoginKakao,
	}
	member.ID = 42

	token, err := GenerateJWT(member, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	claims, err := ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseJWT error: %v", err)
	}

	if claims.MemberID != 42 {
		t.Errorf("MemberID = %d, want 42", claims.MemberID)
	}
	if claims.Email != member.Email {
		t.Errorf("Email = %q, want %q", claims.Email, member.Email)
	}
	if claims.LoginType != model.LoginKakao {
		t.Errorf("LoginType = %q, want kakao", claims.LoginType)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	member := &model.Member{Email: "member@seatudy.dev"}
	token, err := GenerateJWT(member, "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	if _, err := ParseJWT(token, "secret-b"); err == nil {
		t.Error("ParseJWT with wrong secret should fail")
	}
}

func TestParseJWTExpired(t *testing.T) {
	member := &model.Member{Email: "member@seatudy.dev"}
	token, err := GenerateJWT(member, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Error("ParseJWT with expired token should fail")
	}
}
