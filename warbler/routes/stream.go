package routes

import (
	"encoding/json"
	"net/http"

	"warbler/warbler/config"
	"warbler/warbler/controllers"
	"warbler/warbler/middlewares"
	"warbler/warbler/realtime"
	"warbler/warbler/utils/logging"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StreamRoutes exposes the live home-timeline feed. The client opens the
// socket, sends a single frame {"token": "<jwt>"}, and from then on
// receives every new message authored by itself or anyone it follows.
func StreamRoutes(ctrl *controllers.MessageController, hub *realtime.Hub, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			logging.ErrorLogger.Error("websocket accept error", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageText {
			conn.Close(websocket.StatusUnsupportedData, "unsupported data")
			return
		}
		var input struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(data, &input); err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid json"}`))
			return
		}
		userID, err := middlewares.ParseToken(input.Token, cfg.JWTSecret)
		if err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid token"}`))
			conn.Close(websocket.StatusPolicyViolation, "invalid token")
			return
		}

		authorIDs, err := ctrl.TimelineAuthors(ctx, userID)
		if err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"`+err.Error()+`"}`))
			return
		}

		sub := hub.Subscribe(authorIDs)
		defer hub.Unsubscribe(sub)

		for {
			select {
			case <-ctx.Done():
				conn.Close(websocket.StatusNormalClosure, "")
				return
			case msg, ok := <-sub.C:
				if !ok {
					conn.Close(websocket.StatusNormalClosure, "")
					return
				}
				frame, err := json.Marshal(msg)
				if err != nil {
					continue
				}
				if err := conn.Write(ctx, websocket.MessageText, frame); err != nil {
					return
				}
			}
		}
	})

	return r
}
