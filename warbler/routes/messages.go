package routes

import (
	"encoding/json"
	"net/http"

	"warbler/warbler/config"
	"warbler/warbler/controllers"
	"warbler/warbler/middlewares"
	redisstore "warbler/warbler/sources/redis"
	"warbler/warbler/types"

	"github.com/go-chi/chi/v5"
)

func MessageRoutes(ctrl *controllers.MessageController, cfg config.Config, sessions *redisstore.SessionStore) chi.Router {
	r := chi.NewRouter()

	// Public: a single message is visible to everyone.
	r.Get("/{message_id}", handleJSON(func(r *http.Request) (any, error) {
		id, err := pathID(r, "message_id")
		if err != nil {
			return nil, err
		}
		return ctrl.GetMessage(r.Context(), id)
	}))

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg, sessions))

		gr.Post("/", handleJSON(func(r *http.Request) (any, error) {
			viewerID, _ := currentUserID(r)
			var req types.PostMessageRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, types.ErrInvalidInput
			}
			return ctrl.Post(r.Context(), viewerID, req.Text)
		}))

		gr.Delete("/{message_id}", func(w http.ResponseWriter, r *http.Request) {
			viewerID, _ := currentUserID(r)
			id, err := pathID(r, "message_id")
			if err != nil {
				writeError(w, err)
				return
			}
			if err := ctrl.DeleteMessage(r.Context(), viewerID, id); err != nil {
				writeError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		gr.Post("/{message_id}/like", handleJSON(func(r *http.Request) (any, error) {
			viewerID, _ := currentUserID(r)
			id, err := pathID(r, "message_id")
			if err != nil {
				return nil, err
			}
			liked, err := ctrl.ToggleLike(r.Context(), viewerID, id)
			if err != nil {
				return nil, err
			}
			return types.LikeResponse{Liked: liked}, nil
		}))
	})

	return r
}
