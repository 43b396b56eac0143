package controllers

import (
	"context"
	"time"

	"warbler/warbler/config"
	"warbler/warbler/services/credentials"
	"warbler/warbler/sources/psql/dao"
	"warbler/warbler/sources/psql/models"
	"warbler/warbler/types"

	"github.com/golang-jwt/jwt/v5"
)

type AuthController struct {
	userDAO *dao.UserDAO
	cfg     config.Config
}

func NewAuthController(userDAO *dao.UserDAO, cfg config.Config) *AuthController {
	return &AuthController{
		userDAO: userDAO,
		cfg:     cfg,
	}
}

// Signup hashes the password, applies defaults for unset image fields,
// and persists the new user. A username or email collision surfaces as
// types.ErrDuplicateIdentity so the caller can re-present the form.
func (c *AuthController) Signup(ctx context.Context, req types.SignupRequest) (*models.User, error) {
	if req.Password == "" {
		return nil, types.ErrInvalidPassword
	}
	if req.Username == "" || req.Email == "" {
		return nil, types.ErrInvalidInput
	}

	digest, err := credentials.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		Password:       digest,
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}
	if err := c.userDAO.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user for a correct username/password pair and
// (nil, nil) otherwise. An unknown username and a wrong password are
// indistinguishable to the caller.
func (c *AuthController) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := c.userDAO.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !credentials.Verify(password, user.Password) {
		return nil, nil
	}
	return user, nil
}

// IssueToken signs a JWT for API clients; browser clients use the
// cookie session instead.
func (c *AuthController) IssueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.cfg.JWTSecret))
}
