package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/abid327/distrib/internal/models"
	"github.com/abid327/distrib/internal/storage"
)

// fakeUserStorage is an in-memory UserStorage for testing.
type fakeUserStorage struct {
	users map[int64]*models.User
}

func newFakeUserStorage(t *testing.T, username, password string) *fakeUserStorage {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	return &fakeUserStorage{users: map[int64]*models.User{
		1: {ID: 1, Username: username, PasswordHash: string(hash)},
	}}
}

func (f *fakeUserStorage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeUserStorage) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStorage) UpdateUserPassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func TestAuthenticate(t *testing.T) {
	auth := NewPasswordAuthenticator(newFakeUserStorage(t, "admin", "admin123"))
	ctx := context.Background()

	t.Run("valid credentials return the user", func(t *testing.T) {
		user, err := auth.Authenticate(ctx, "admin", "admin123")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.Username != "admin" {
			t.Errorf("Username = %q, want admin", user.Username)
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "admin", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user is indistinguishable from wrong password", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "nobody", "admin123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects weak passwords", func(t *testing.T) {
		auth := NewPasswordAuthenticator(newFakeUserStorage(t, "admin", "admin123"))
		err := auth.ChangePassword(ctx, 1, "short")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("Expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("old password stops working after a change", func(t *testing.T) {
		auth := NewPasswordAuthenticator(newFakeUserStorage(t, "admin", "admin123"))
		if err := auth.ChangePassword(ctx, 1, "newsecret1"); err != nil {
			t.Fatalf("ChangePassword failed: %v", err)
		}

		if _, err := auth.Authenticate(ctx, "admin", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Old password still accepted: %v", err)
		}
		if _, err := auth.Authenticate(ctx, "admin", "newsecret1"); err != nil {
			t.Errorf("New password rejected: %v", err)
		}
	})

	t.Run("unknown user fails", func(t *testing.T) {
		auth := NewPasswordAuthenticator(newFakeUserStorage(t, "admin", "admin123"))
		if err := auth.ChangePassword(ctx, 99, "newsecret1"); err == nil {
			t.Error("Expected error for unknown user")
		}
	})
}
