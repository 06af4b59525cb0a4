package ports

import (
	"context"

	"github.com/socialnet/social-api/internal/core/domain"
)

// UpdateProfileInput carries a partial profile update. Nil fields are left
// unchanged. ProfilePicture, when set, is a data-URI encoded image.
type UpdateProfileInput struct {
	FullName       *string
	DateOfBirth    *string
	ProfilePicture *string
}

// ProfileService exposes the current user's profile.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error)
}
