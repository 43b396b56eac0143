package controllers

import (
	"context"
	"errors"
	"testing"

	"warbler/warbler/types"
)

func TestSignupAndAuthenticate(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.Signup(ctx, types.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if user.ID == 0 {
		t.Errorf("expected persisted user to have an id")
	}
	if user.Password == "correct-horse" {
		t.Errorf("password stored in plaintext")
	}
	if user.ImageURL == "" || user.HeaderImageURL == "" {
		t.Errorf("expected image defaults to be applied, got %q / %q", user.ImageURL, user.HeaderImageURL)
	}

	got, err := env.auth.Authenticate(ctx, "alice", "correct-horse")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if got == nil || got.ID != user.ID {
		t.Errorf("expected authenticate to return the signed-up user")
	}
}

func TestSignupEmptyPassword(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.auth.Signup(context.Background(), types.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
	})
	if !errors.Is(err, types.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestSignupDuplicateIdentity(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	signupUser(t, env, "alice")

	// Same username, different email.
	_, err := env.auth.Signup(ctx, types.SignupRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "pw",
	})
	if !errors.Is(err, types.ErrDuplicateIdentity) {
		t.Fatalf("expected ErrDuplicateIdentity for duplicate username, got %v", err)
	}

	// Same email, different username.
	_, err = env.auth.Signup(ctx, types.SignupRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "pw",
	})
	if !errors.Is(err, types.ErrDuplicateIdentity) {
		t.Fatalf("expected ErrDuplicateIdentity for duplicate email, got %v", err)
	}

	// No extra row persisted.
	users, err := env.users.ListUsers(ctx, "")
	if err != nil {
		t.Fatalf("list users failed: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("expected 1 user after failed signups, got %d", len(users))
	}
}

func TestAuthenticateBadCredentials(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	signupUser(t, env, "alice")

	// Wrong password and unknown username look identical to the caller.
	if got, err := env.auth.Authenticate(ctx, "alice", "wrong"); err != nil || got != nil {
		t.Errorf("wrong password: expected (nil, nil), got (%v, %v)", got, err)
	}
	if got, err := env.auth.Authenticate(ctx, "nobody", "whatever"); err != nil || got != nil {
		t.Errorf("unknown user: expected (nil, nil), got (%v, %v)", got, err)
	}
}

func TestIssueToken(t *testing.T) {
	env := setupTestEnv(t)
	user := signupUser(t, env, "alice")

	token, err := env.auth.IssueToken(user)
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	if token == "" {
		t.Errorf("expected a signed token")
	}
}
