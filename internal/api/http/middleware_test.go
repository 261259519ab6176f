package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apihttp "lankadrive-backend/internal/api/http"
	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/identity"
)

type stubProvider struct {
	auth *identity.AuthContext
}

func (p *stubProvider) Verify(ctx context.Context, token string) (*identity.AuthContext, error) {
	if p.auth == nil || token != "good-token" {
		return nil, identity.ErrUnauthenticated
	}
	return p.auth, nil
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Upsert(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func recordAuth(captured **identity.AuthContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = apihttp.AuthFromRequest(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_RequireUser(t *testing.T) {
	userAuth := &identity.AuthContext{
		UserID: "user-1",
		Email:  "user@example.com",
		Name:   "Test User",
		Role:   domain.UserRoleUser,
	}

	t.Run("RejectsMissingToken", func(t *testing.T) {
		mw := apihttp.NewAuthMiddleware(&stubProvider{auth: userAuth}, new(mockUserRepo))

		var captured *identity.AuthContext
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/bookings/my", nil)

		mw.RequireUser(recordAuth(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, captured)
	})

	t.Run("RejectsInvalidToken", func(t *testing.T) {
		mw := apihttp.NewAuthMiddleware(&stubProvider{auth: userAuth}, new(mockUserRepo))

		var captured *identity.AuthContext
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/bookings/my", nil)
		req.Header.Set("Authorization", "Bearer forged")

		mw.RequireUser(recordAuth(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("AttachesIdentityAndSyncsUser", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == "user-1" && u.Email == "user@example.com"
		})).Return(nil).Once()
		mw := apihttp.NewAuthMiddleware(&stubProvider{auth: userAuth}, userRepo)

		var captured *identity.AuthContext
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/bookings/my", nil)
		req.Header.Set("Authorization", "Bearer good-token")

		mw.RequireUser(recordAuth(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, captured)
		assert.Equal(t, "user-1", captured.UserID)
		userRepo.AssertExpectations(t)
	})

	t.Run("UserSyncFailureDoesNotRejectRequest", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("Upsert", mock.Anything, mock.Anything).Return(assert.AnError).Once()
		mw := apihttp.NewAuthMiddleware(&stubProvider{auth: userAuth}, userRepo)

		var captured *identity.AuthContext
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/bookings/my", nil)
		req.Header.Set("Authorization", "Bearer good-token")

		mw.RequireUser(recordAuth(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	t.Run("ForbidsNonAdmin", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		mw := apihttp.NewAuthMiddleware(&stubProvider{auth: &identity.AuthContext{
			UserID: "user-1",
			Role:   domain.UserRoleUser,
		}}, userRepo)

		var captured *identity.AuthContext
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/admin/bookings", nil)
		req.Header.Set("Authorization", "Bearer good-token")

		mw.RequireAdmin(recordAuth(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, captured)
	})

	t.Run("AllowsAdmin", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		mw := apihttp.NewAuthMiddleware(&stubProvider{auth: &identity.AuthContext{
			UserID: "admin-1",
			Role:   domain.UserRoleAdmin,
		}}, userRepo)

		var captured *identity.AuthContext
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/admin/bookings", nil)
		req.Header.Set("Authorization", "Bearer good-token")

		mw.RequireAdmin(recordAuth(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.UserRoleAdmin, captured.Role)
	})
}

func TestAuthMiddleware_Optional(t *testing.T) {
	mw := apihttp.NewAuthMiddleware(&stubProvider{}, new(mockUserRepo))

	var captured *identity.AuthContext
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/cars", nil)

	mw.Optional(recordAuth(&captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, captured)
}
