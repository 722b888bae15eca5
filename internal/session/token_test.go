package session

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("irrelevant-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestTokenExpired_FutureExp(t *testing.T) {
	now := time.Now()
	token := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
	if TokenExpired(token, now) {
		t.Error("token with future exp reported expired")
	}
}

func TestTokenExpired_PastExp(t *testing.T) {
	now := time.Now()
	token := signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()})
	if !TokenExpired(token, now) {
		t.Error("token with past exp reported valid")
	}
}

func TestTokenExpired_ExactBoundary(t *testing.T) {
	now := time.Unix(1700000000, 0)
	token := signedToken(t, jwt.MapClaims{"exp": now.Unix()})
	if !TokenExpired(token, now) {
		t.Error("token expiring exactly now should count as expired")
	}
}

func TestTokenExpired_NoExpClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "42"})
	if !TokenExpired(token, time.Now()) {
		t.Error("token without exp claim should count as expired")
	}
}

func TestTokenExpired_Malformed(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b", "not.a.token", "x.y.z.w"} {
		if !TokenExpired(tok, time.Now()) {
			t.Errorf("malformed token %q should count as expired", tok)
		}
	}
}

// The check is pure: same token, same clock, same answer.
func TestTokenExpired_Deterministic(t *testing.T) {
	now := time.Now()
	token := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
	for i := 0; i < 3; i++ {
		if TokenExpired(token, now) {
			t.Fatal("result changed between identical calls")
		}
	}
}
