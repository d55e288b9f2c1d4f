package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"artisthub/internal/auth"
	"artisthub/internal/model"
	"artisthub/internal/repository"
)

const (
	contextKeyUser        = "currentUser"
	contextKeyMemberships = "memberships"
)

// AuthContext loads the authenticated user and their active memberships from
// the validated JWT. It runs after the JWT middleware on secured routes.
func AuthContext(userRepo repository.UserRepository, membershipRepo repository.MembershipRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}
			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}

			ctx := c.Request().Context()
			user, err := userRepo.FindByID(ctx, userID)
			if err != nil || !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not found or inactive")
			}

			memberships, err := membershipRepo.FindActiveByUser(ctx, userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to load memberships")
			}

			c.Set(contextKeyUser, user)
			c.Set(contextKeyMemberships, memberships)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user loaded by AuthContext.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(contextKeyUser).(*model.User)
	return user, ok
}

// Memberships returns the active memberships loaded by AuthContext.
func Memberships(c echo.Context) []model.TeamMembership {
	memberships, _ := c.Get(contextKeyMemberships).([]model.TeamMembership)
	return memberships
}

// accessibleArtistIDs resolves the artist scope for the current request. The
// admin role sees every artist; everyone else sees their memberships.
func accessibleArtistIDs(c echo.Context, artistRepo repository.ArtistRepository) ([]uuid.UUID, error) {
	user, ok := CurrentUser(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	if user.Role == model.RoleAdmin {
		return artistRepo.ListIDs(c.Request().Context())
	}
	memberships := Memberships(c)
	ids := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.ArtistID)
	}
	return ids, nil
}

// requirePermission enforces a scoped permission check. Admins always pass.
func requirePermission(c echo.Context, permission string, artistID uuid.UUID) error {
	user, ok := CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	if user.Role == model.RoleAdmin {
		return nil
	}
	if !auth.HasPermission(Memberships(c), permission, artistID) {
		return echo.NewHTTPError(http.StatusForbidden, ErrorResponse{
			Success: false,
			Error:   "insufficient permissions",
			Code:    "FORBIDDEN",
		})
	}
	return nil
}
