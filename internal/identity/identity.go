package identity

import (
	"context"
	"errors"

	"lankadrive-backend/internal/domain"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// AuthContext is the identity attached to an authenticated request. The core
// treats it as given context; it never computes roles itself.
type AuthContext struct {
	UserID string
	Email  string
	Name   string
	Role   domain.UserRole
}

// Provider turns a bearer token into an AuthContext.
type Provider interface {
	Verify(ctx context.Context, token string) (*AuthContext, error)
}

// Multi tries each provider in order and returns the first successful
// verification. Lets Firebase end-user tokens and local admin JWTs share one
// Authorization header.
func Multi(providers ...Provider) Provider {
	return multiProvider(providers)
}

type multiProvider []Provider

func (m multiProvider) Verify(ctx context.Context, token string) (*AuthContext, error) {
	for _, p := range m {
		if ac, err := p.Verify(ctx, token); err == nil {
			return ac, nil
		}
	}
	return nil, ErrUnauthenticated
}
