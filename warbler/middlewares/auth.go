package middlewares

import (
	"context"
	"net/http"
	"strings"

	"warbler/warbler/config"
	redisstore "warbler/warbler/sources/redis"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// AuthMiddleware resolves the caller's identity and injects the user id
// into the request context. Browser clients present the session cookie;
// API clients present a bearer JWT. Everything below this middleware
// receives identity as an explicit value, never as ambient state.
func AuthMiddleware(cfg config.Config, sessions *redisstore.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := resolveSession(r, sessions); ok {
				ctx := context.WithValue(r.Context(), UserIDKey, userID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			if userID, ok := resolveBearer(r, cfg.JWTSecret); ok {
				ctx := context.WithValue(r.Context(), UserIDKey, userID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		})
	}
}

func resolveSession(r *http.Request, sessions *redisstore.SessionStore) (uint, bool) {
	if sessions == nil {
		return 0, false
	}
	cookie, err := r.Cookie(redisstore.SessionCookie)
	if err != nil {
		return 0, false
	}
	userID, ok, err := sessions.Get(r.Context(), cookie.Value)
	if err != nil || !ok {
		return 0, false
	}
	return userID, true
}

func resolveBearer(r *http.Request, secret string) (uint, bool) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return 0, false
	}
	parts := strings.Split(auth, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}
	userID, err := ParseToken(parts[1], secret)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// ParseToken validates a signed JWT and extracts the user id claim. The
// websocket stream reuses this for its in-band handshake.
func ParseToken(tokenStr, secret string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, jwt.ErrTokenInvalidClaims
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return uint(userID), nil
}
