package ports

import (
	"context"

	"github.com/socialnet/social-api/internal/core/domain"
)

// SignupInput carries the fields required to register a new account.
type SignupInput struct {
	Email       string
	FullName    string
	Password    string
	DateOfBirth string
}

// AuthService defines registration and login. Both return a signed bearer
// token alongside the user.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
