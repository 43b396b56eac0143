package controllers

import (
	"context"
	"testing"

	"warbler/warbler/config"
	"warbler/warbler/sources/psql"
	"warbler/warbler/sources/psql/dao"
	"warbler/warbler/sources/psql/models"
	"warbler/warbler/types"
	"warbler/warbler/utils/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- Helpers ---

type testEnv struct {
	auth     *AuthController
	users    *UserController
	messages *MessageController
	likeDAO  *dao.LikeDAO
	userDAO  *dao.UserDAO
}

func setupTestEnv(t *testing.T) *testEnv {
	logging.InitLogger() // ensures AppLogger isn't nil

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := psql.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	userDAO := dao.NewUserDAO(db)
	messageDAO := dao.NewMessageDAO(db)
	followDAO := dao.NewFollowDAO(db)
	likeDAO := dao.NewLikeDAO(db)

	cfg := config.Config{JWTSecret: "test-secret"}
	return &testEnv{
		auth:     NewAuthController(userDAO, cfg),
		users:    NewUserController(userDAO, followDAO, likeDAO, nil),
		messages: NewMessageController(messageDAO, likeDAO, followDAO, userDAO, nil, nil),
		likeDAO:  likeDAO,
		userDAO:  userDAO,
	}
}

func signupUser(t *testing.T, env *testEnv, username string) *models.User {
	t.Helper()
	user, err := env.auth.Signup(context.Background(), types.SignupRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: username + "-password",
	})
	if err != nil {
		t.Fatalf("signup %s failed: %v", username, err)
	}
	return user
}
