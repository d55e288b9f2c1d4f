package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"artisthub/internal/auth"
	"artisthub/internal/handler"
	"artisthub/internal/model"
	"artisthub/internal/router"
)

// stubUserRepo satisfies repository.UserRepository for middleware tests.
type stubUserRepo struct {
	user *model.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) error { return nil }
func (s *stubUserRepo) Update(ctx context.Context, user *model.User) error { return nil }
func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.user, nil
}
func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.user, nil
}
func (s *stubUserRepo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return nil
}

// stubMembershipRepo satisfies repository.MembershipRepository.
type stubMembershipRepo struct {
	memberships []model.TeamMembership
}

func (s *stubMembershipRepo) Create(ctx context.Context, m *model.TeamMembership) error { return nil }
func (s *stubMembershipRepo) Update(ctx context.Context, m *model.TeamMembership) error { return nil }
func (s *stubMembershipRepo) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]model.TeamMembership, error) {
	return s.memberships, nil
}
func (s *stubMembershipRepo) FindByUserAndArtist(ctx context.Context, userID, artistID uuid.UUID) (*model.TeamMembership, error) {
	return nil, nil
}

func TestAuthContext_HydratesUserFromBearerToken(t *testing.T) {
	const secret = "test-secret"
	user := &model.User{
		ID:       uuid.New(),
		Email:    "marie.dubois@artisthub.com",
		Role:     model.RoleMarketingManager,
		IsActive: true,
	}
	artistID := uuid.New()
	memberships := []model.TeamMembership{
		{UserID: user.ID, ArtistID: artistID, Role: model.RoleMarketingManager, IsActive: true},
	}

	jwtService := auth.NewJWTService(secret, "artisthub-test", time.Hour, 24*time.Hour)
	token, err := jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	assert.NoError(t, err)

	e := newTestEcho()
	e.GET("/api/v1/whoami", func(c echo.Context) error {
		current, ok := handler.CurrentUser(c)
		if !ok {
			return echo.NewHTTPError(http.StatusInternalServerError, "user not loaded")
		}
		return c.JSON(http.StatusOK, echo.Map{
			"userId":      current.ID,
			"memberships": len(handler.Memberships(c)),
		})
	}, router.JWTMiddleware(secret), handler.AuthContext(&stubUserRepo{user: user}, &stubMembershipRepo{memberships: memberships}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		UserID      uuid.UUID `json:"userId"`
		Memberships int       `json:"memberships"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, 1, resp.Memberships)
}

func TestAuthContext_RejectsMissingAndInvalidTokens(t *testing.T) {
	const secret = "test-secret"
	user := &model.User{ID: uuid.New(), Email: "sarah.lopez@music.com", Role: model.RoleArtist, IsActive: true}

	e := newTestEcho()
	e.GET("/api/v1/whoami", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, router.JWTMiddleware(secret), handler.AuthContext(&stubUserRepo{user: user}, &stubMembershipRepo{}))

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "garbage token", header: "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthContext_RejectsInactiveUser(t *testing.T) {
	const secret = "test-secret"
	user := &model.User{ID: uuid.New(), Email: "mike.dj@electronic.com", Role: model.RoleArtist, IsActive: false}

	jwtService := auth.NewJWTService(secret, "artisthub-test", time.Hour, 24*time.Hour)
	token, err := jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	assert.NoError(t, err)

	e := newTestEcho()
	e.GET("/api/v1/whoami", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, router.JWTMiddleware(secret), handler.AuthContext(&stubUserRepo{user: user}, &stubMembershipRepo{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
