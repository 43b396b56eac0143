package routes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"warbler/warbler/config"
	"warbler/warbler/controllers"
	"warbler/warbler/middlewares"
	redisstore "warbler/warbler/sources/redis"
	"warbler/warbler/types"

	"github.com/go-chi/chi/v5"
)

func UserRoutes(ctrl *controllers.UserController, cfg config.Config, sessions *redisstore.SessionStore) chi.Router {
	r := chi.NewRouter()

	// Public: user directory and profiles are visible to everyone.
	r.Get("/", handleJSON(func(r *http.Request) (any, error) {
		return ctrl.ListUsers(r.Context(), r.URL.Query().Get("q"))
	}))

	r.Get("/{user_id}", handleJSON(func(r *http.Request) (any, error) {
		id, err := pathID(r, "user_id")
		if err != nil {
			return nil, err
		}
		return ctrl.GetUser(r.Context(), id)
	}))

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg, sessions))

		gr.Get("/{user_id}/followers", handleJSON(func(r *http.Request) (any, error) {
			id, err := pathID(r, "user_id")
			if err != nil {
				return nil, err
			}
			return ctrl.Followers(r.Context(), id)
		}))

		gr.Get("/{user_id}/following", handleJSON(func(r *http.Request) (any, error) {
			id, err := pathID(r, "user_id")
			if err != nil {
				return nil, err
			}
			return ctrl.Following(r.Context(), id)
		}))

		gr.Get("/{user_id}/likes", handleJSON(func(r *http.Request) (any, error) {
			id, err := pathID(r, "user_id")
			if err != nil {
				return nil, err
			}
			return ctrl.LikedMessages(r.Context(), id)
		}))

		gr.Post("/follow/{user_id}", handleJSON(func(r *http.Request) (any, error) {
			viewerID, _ := currentUserID(r)
			targetID, err := pathID(r, "user_id")
			if err != nil {
				return nil, err
			}
			if err := ctrl.Follow(r.Context(), viewerID, targetID); err != nil {
				return nil, err
			}
			return map[string]string{"status": "following"}, nil
		}))

		gr.Post("/stop-following/{user_id}", handleJSON(func(r *http.Request) (any, error) {
			viewerID, _ := currentUserID(r)
			targetID, err := pathID(r, "user_id")
			if err != nil {
				return nil, err
			}
			if err := ctrl.Unfollow(r.Context(), viewerID, targetID); err != nil {
				return nil, err
			}
			return map[string]string{"status": "not following"}, nil
		}))

		gr.Put("/profile", handleJSON(func(r *http.Request) (any, error) {
			viewerID, _ := currentUserID(r)
			var req types.UpdateProfileRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, types.ErrInvalidInput
			}
			return ctrl.UpdateProfile(r.Context(), viewerID, req)
		}))

		gr.Post("/{user_id}/avatar", handleJSON(func(r *http.Request) (any, error) {
			viewerID, _ := currentUserID(r)
			targetID, err := pathID(r, "user_id")
			if err != nil {
				return nil, err
			}
			if viewerID != targetID {
				return nil, types.ErrNotOwner
			}
			kind := r.URL.Query().Get("kind")
			if kind != "header" {
				kind = "avatar"
			}
			contentType := r.Header.Get("Content-Type")
			return ctrl.UploadImage(r.Context(), viewerID, kind, r.Body, r.ContentLength, contentType)
		}))

		gr.Delete("/delete", func(w http.ResponseWriter, r *http.Request) {
			viewerID, _ := currentUserID(r)
			if err := ctrl.DeleteUser(r.Context(), viewerID); err != nil {
				writeError(w, err)
				return
			}
			// Account is gone; drop the session too.
			if cookie, err := r.Cookie(redisstore.SessionCookie); err == nil && sessions != nil {
				sessions.Delete(r.Context(), cookie.Value)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})

	return r
}

func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, types.ErrInvalidInput
	}
	return uint(id), nil
}
