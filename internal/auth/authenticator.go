package auth

import (
	"context"

	"github.com/abid327/distrib/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods without
// changing the CLI or service code.
type Authenticator interface {
	// Authenticate verifies the operator's credentials and returns the
	// user if valid.
	Authenticate(ctx context.Context, username, credential string) (*models.User, error)

	// ChangePassword replaces the stored credential for a user.
	ChangePassword(ctx context.Context, userID int64, credential string) error

	// ValidateCredential checks if the credential meets the
	// implementation's requirements.
	ValidateCredential(credential string) error
}
