package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"warbler/warbler/config"
	"warbler/warbler/controllers"
	"warbler/warbler/sources/psql"
	"warbler/warbler/sources/psql/dao"
	"warbler/warbler/types"
	"warbler/warbler/utils/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthRouter(t *testing.T) http.Handler {
	logging.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := psql.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	ctrl := controllers.NewAuthController(dao.NewUserDAO(db), config.Config{JWTSecret: "test-secret"})
	return AuthRoutes(ctrl, nil)
}

func postJSON(t *testing.T, handler http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	req := httptest.NewRequest("POST", path, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestLoginInvalidCredentialsIsJSON(t *testing.T) {
	router := setupAuthRouter(t)

	rr := postJSON(t, router, "/signup", types.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d (%s)", rr.Code, rr.Body.String())
	}

	rr = postJSON(t, router, "/login", types.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("401 body is not json: %v", err)
	}
	if body["error"] == "" {
		t.Errorf("expected an error field, got %v", body)
	}
}

func TestLoginSuccessReturnsToken(t *testing.T) {
	router := setupAuthRouter(t)

	postJSON(t, router, "/signup", types.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})

	rr := postJSON(t, router, "/login", types.LoginRequest{
		Username: "alice",
		Password: "correct-horse",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rr.Code, rr.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("login body is not json: %v", err)
	}
	if body.Token == "" {
		t.Errorf("expected a token in the login response")
	}
}
