package identity

import (
	"context"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/security"
)

// LocalProvider accepts access tokens minted by our own token manager for
// the admin credential login path.
type LocalProvider struct {
	tokens security.TokenManager
}

func NewLocalProvider(tokens security.TokenManager) *LocalProvider {
	return &LocalProvider{tokens: tokens}
}

func (p *LocalProvider) Verify(ctx context.Context, token string) (*AuthContext, error) {
	claims, err := p.tokens.ValidateToken(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	if claims.Type != security.TokenTypeAccess {
		return nil, ErrUnauthenticated
	}

	role := domain.UserRoleUser
	if claims.Role == string(domain.UserRoleAdmin) {
		role = domain.UserRoleAdmin
	}
	return &AuthContext{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   role,
	}, nil
}
