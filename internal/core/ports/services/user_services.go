package services

import (
	"context"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
)

// UserSvcFacade exposes user directory operations.
type UserSvcFacade interface {
	// CreateUser registers a user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername resolves a login email to its user record; this is the
	// directory lookup the approval engine's authorization check relies on.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves a paginated user list.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// UpdateUser applies a partial update.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actingUsername string) (*domain.User, error)

	// DeleteUser soft-deletes a user.
	DeleteUser(ctx context.Context, userID, actingUsername string) error

	// VerifyCredentials checks a username/password pair and returns the user.
	VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error)

	// FindOrCreateOAuthUser upserts a user authenticated by an external
	// identity provider.
	FindOrCreateOAuthUser(ctx context.Context, email, firstName, lastName string) (*domain.User, error)
}
