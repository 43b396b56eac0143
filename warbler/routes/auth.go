package routes

import (
	"encoding/json"
	"net/http"
	"time"

	"warbler/warbler/controllers"
	redisstore "warbler/warbler/sources/redis"
	"warbler/warbler/types"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(ctrl *controllers.AuthController, sessions *redisstore.SessionStore) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", func(w http.ResponseWriter, r *http.Request) {
		var req types.SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, types.ErrInvalidInput)
			return
		}
		user, err := ctrl.Signup(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		// Signup establishes identity immediately, same as login.
		establishSession(w, r, sessions, user.ID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	})

	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var req types.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, types.ErrInvalidInput)
			return
		}
		user, err := ctrl.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}
		if user == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		token, err := ctrl.IssueToken(user)
		if err != nil {
			writeError(w, err)
			return
		}
		establishSession(w, r, sessions, user.ID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"user": user, "token": token})
	})

	r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(redisstore.SessionCookie); err == nil && sessions != nil {
			sessions.Delete(r.Context(), cookie.Value)
		}
		http.SetCookie(w, &http.Cookie{
			Name:     redisstore.SessionCookie,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"logged out"}`))
	})

	return r
}

func establishSession(w http.ResponseWriter, r *http.Request, sessions *redisstore.SessionStore, userID uint) {
	if sessions == nil {
		return
	}
	token, err := sessions.Create(r.Context(), userID)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     redisstore.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(redisstore.SessionTTL / time.Second),
	})
}
