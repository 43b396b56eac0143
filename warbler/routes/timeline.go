package routes

import (
	"net/http"

	"warbler/warbler/config"
	"warbler/warbler/controllers"
	"warbler/warbler/middlewares"
	redisstore "warbler/warbler/sources/redis"

	"github.com/go-chi/chi/v5"
)

func TimelineRoutes(ctrl *controllers.MessageController, cfg config.Config, sessions *redisstore.SessionStore) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg, sessions))

		gr.Get("/home", handleJSON(func(r *http.Request) (any, error) {
			viewerID, _ := currentUserID(r)
			return ctrl.HomeTimeline(r.Context(), viewerID)
		}))
	})

	// Public: anyone can read a single user's message history.
	r.Get("/user/{user_id}", handleJSON(func(r *http.Request) (any, error) {
		id, err := pathID(r, "user_id")
		if err != nil {
			return nil, err
		}
		return ctrl.UserTimeline(r.Context(), id)
	}))

	return r
}

// LandingRoute serves "/". Identified viewers are told where their feed
// lives; anonymous viewers get the signup pointer instead of a timeline.
func LandingRoute(sessions *redisstore.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if cookie, err := r.Cookie(redisstore.SessionCookie); err == nil && sessions != nil {
			if _, ok, _ := sessions.Get(r.Context(), cookie.Value); ok {
				w.Write([]byte(`{"timeline":"/timeline/home"}`))
				return
			}
		}
		w.Write([]byte(`{"message":"Welcome to Warbler. Sign up at /auth/signup."}`))
	}
}
