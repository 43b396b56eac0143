package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warbler/warbler/config"
	"warbler/warbler/controllers"
	"warbler/warbler/realtime"
	"warbler/warbler/routes"
	"warbler/warbler/services/preview"
	"warbler/warbler/sources/psql"
	"warbler/warbler/sources/psql/dao"
	redisstore "warbler/warbler/sources/redis"
	"warbler/warbler/sources/storage"
	"warbler/warbler/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	userDAO := dao.NewUserDAO(db.DB)
	messageDAO := dao.NewMessageDAO(db.DB)
	followDAO := dao.NewFollowDAO(db.DB)
	likeDAO := dao.NewLikeDAO(db.DB)

	sessions := redisstore.NewSessionStore(cfg)
	defer sessions.Close()

	store, err := storage.NewMinIOClient(cfg)
	if err != nil {
		logging.ErrorLogger.Error("minio connection error", zap.Error(err))
		os.Exit(1)
	}

	hub := realtime.NewHub()
	previews := preview.NewFetcher()

	authCtrl := controllers.NewAuthController(userDAO, cfg)
	userCtrl := controllers.NewUserController(userDAO, followDAO, likeDAO, store)
	messageCtrl := controllers.NewMessageController(messageDAO, likeDAO, followDAO, userDAO, hub, previews)
	healthCtrl := controllers.NewHealthController(db.DB)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", routes.LandingRoute(sessions))
	r.Mount("/auth", routes.AuthRoutes(authCtrl, sessions))
	r.Mount("/users", routes.UserRoutes(userCtrl, cfg, sessions))
	r.Mount("/messages", routes.MessageRoutes(messageCtrl, cfg, sessions))
	r.Mount("/timeline", routes.TimelineRoutes(messageCtrl, cfg, sessions))
	r.Mount("/stream", routes.StreamRoutes(messageCtrl, hub, cfg))
	r.Mount("/health", routes.HealthRoutes(healthCtrl))

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	logging.AppLogger.Info("warbler listening", zap.String("addr", cfg.ServerAddr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
