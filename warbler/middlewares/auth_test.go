package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"warbler/warbler/config"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, userID uint, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	return token
}

func TestParseToken(t *testing.T) {
	token := signTestToken(t, 42, testSecret)

	userID, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user id 42, got %d", userID)
	}

	if _, err := ParseToken(token, "other-secret"); err == nil {
		t.Errorf("expected failure for wrong secret")
	}
	if _, err := ParseToken("garbage", testSecret); err == nil {
		t.Errorf("expected failure for malformed token")
	}
}

func TestAuthMiddlewareBearer(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}
	var gotID uint
	handler := AuthMiddleware(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = r.Context().Value(UserIDKey).(uint)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, 7, testSecret))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if gotID != 7 {
		t.Errorf("expected user id 7 in context, got %d", gotID)
	}
}

func TestAuthMiddlewareRejectsAnonymous(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}
	handler := AuthMiddleware(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("handler must not run without identity")
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}
