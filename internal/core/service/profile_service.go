package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/socialnet/social-api/internal/core/domain"
	"github.com/socialnet/social-api/internal/core/ports"
)

type profileService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

// NewProfileService returns a ProfileService implementation.
func NewProfileService(repo ports.UserRepository, log zerolog.Logger) ports.ProfileService {
	return &profileService{repo: repo, log: log}
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// Update applies a partial profile edit. Note that posts keep the display
// name they were created with even after a rename.
func (s *profileService) Update(ctx context.Context, userID string, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.DateOfBirth != nil {
		user.DateOfBirth = *in.DateOfBirth
	}
	if in.ProfilePicture != nil {
		user.ProfilePicture = *in.ProfilePicture
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return user, nil
}
