package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/weconnect/weconnect/internal/model"
)

func TestCreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	first := model.User{ID: "u1", Email: "alice@example.com", PasswordHash: "hash1"}
	if err := store.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	dup := model.User{ID: "u2", Email: "alice@example.com", PasswordHash: "hash2"}
	if err := store.CreateUser(ctx, dup); !errors.Is(err, ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}

	// First record must be untouched
	got, err := store.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if got.ID != "u1" || got.PasswordHash != "hash1" {
		t.Errorf("first record changed: %+v", got)
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	t.Parallel()

	store := New()

	if _, err := store.GetUserByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserByEmail_ReturnsCopy(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	if err := store.CreateUser(ctx, model.User{ID: "u1", Email: "alice@example.com", PasswordHash: "hash1"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, err := store.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	got.PasswordHash = "tampered"

	again, err := store.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if again.PasswordHash != "hash1" {
		t.Errorf("stored record mutated through a returned copy: %s", again.PasswordHash)
	}
}

func TestUpdateUserPassword(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	if err := store.CreateUser(ctx, model.User{ID: "u1", Email: "alice@example.com", PasswordHash: "old"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if err := store.UpdateUserPassword(ctx, "alice@example.com", "new"); err != nil {
		t.Fatalf("UpdateUserPassword failed: %v", err)
	}

	got, err := store.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if got.PasswordHash != "new" {
		t.Errorf("expected updated hash, got %s", got.PasswordHash)
	}

	if err := store.UpdateUserPassword(ctx, "ghost@example.com", "x"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
