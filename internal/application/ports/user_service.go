package ports

import (
	"context"

	"webcars-api/internal/domain/user"
)

type UserService interface {
	// Register creates the identity record from email and password only.
	// The display name is pushed in afterwards via UpdateProfile,
	// mirroring the auth collaborator's two-step contract.
	Register(ctx context.Context, email, password string) (*user.User, error)
	UpdateProfile(ctx context.Context, id user.ID, name string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
}
