package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/logger"
)

// FirebaseProvider verifies Firebase ID tokens issued to site customers.
// Role comes from the "role" custom claim; absent means plain user.
type FirebaseProvider struct {
	client *auth.Client
}

func NewFirebaseProvider(ctx context.Context, app *firebase.App) (*FirebaseProvider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase auth client: %w", err)
	}
	return &FirebaseProvider{client: client}, nil
}

func (p *FirebaseProvider) Verify(ctx context.Context, token string) (*AuthContext, error) {
	logger.ExternalServiceCall("firebase-auth", "VerifyIDToken")
	decoded, err := p.client.VerifyIDToken(ctx, token)
	logger.ExternalServiceResult("firebase-auth", "VerifyIDToken", err)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	ac := &AuthContext{
		UserID: decoded.UID,
		Role:   domain.UserRoleUser,
	}
	if email, ok := decoded.Claims["email"].(string); ok {
		ac.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		ac.Name = name
	}
	if role, ok := decoded.Claims["role"].(string); ok && role == string(domain.UserRoleAdmin) {
		ac.Role = domain.UserRoleAdmin
	}
	return ac, nil
}
