package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"artisthub/internal/auth"
	"artisthub/internal/metrics"
	"artisthub/internal/model"
	"artisthub/internal/repository"
	"artisthub/internal/service"
)

// DashboardHandler handles the role-aware dashboard endpoints.
type DashboardHandler struct {
	dashboardService service.DashboardService
	activityService  service.ActivityService
	artistRepo       repository.ArtistRepository
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService, activityService service.ActivityService, artistRepo repository.ArtistRepository) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		activityService:  activityService,
		artistRepo:       artistRepo,
	}
}

// resolveScope turns the artistId query parameter into a concrete artist set.
// "all" or an empty value means every artist the caller can see; a UUID
// narrows to that artist and must be covered by a membership.
func (h *DashboardHandler) resolveScope(c echo.Context) ([]uuid.UUID, *uuid.UUID, error) {
	param := c.QueryParam("artistId")
	if param == "" || param == "all" {
		ids, err := accessibleArtistIDs(c, h.artistRepo)
		return ids, nil, err
	}

	artistID, err := uuid.Parse(param)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid artistId")
	}

	user, _ := CurrentUser(c)
	if user.Role != model.RoleAdmin {
		covered := false
		for _, m := range Memberships(c) {
			if m.ArtistID == artistID {
				covered = true
				break
			}
		}
		if !covered {
			return nil, nil, echo.NewHTTPError(http.StatusForbidden, ErrorResponse{
				Success: false,
				Error:   "insufficient permissions",
				Code:    "FORBIDDEN",
			})
		}
	}
	return []uuid.UUID{artistID}, &artistID, nil
}

// Metrics godoc
// @Summary Role-specific dashboard metric cards
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param artistId query string false "Artist UUID or 'all'"
// @Success 200 {object} Response
// @Failure 403 {object} ErrorResponse
// @Router /dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	artistIDs, _, err := h.resolveScope(c)
	if err != nil {
		return err
	}
	metrics.DashboardRequests.WithLabelValues(string(user.Role)).Inc()

	cards, err := h.dashboardService.Metrics(c.Request().Context(), user.Role, artistIDs)
	if err != nil {
		return err
	}

	scope := c.QueryParam("artistId")
	if scope == "" {
		scope = "all"
	}
	return respond(c, http.StatusOK, echo.Map{
		"metrics":  cards,
		"artistId": scope,
		"role":     user.Role,
	}, "")
}

// Activities godoc
// @Summary Recent activity feed
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param artistId query string false "Artist UUID or 'all'"
// @Param limit query int false "Maximum entries (default 10)"
// @Success 200 {object} Response
// @Router /dashboard/activities [get]
func (h *DashboardHandler) Activities(c echo.Context) error {
	_, artistID, err := h.resolveScope(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
	}

	items, err := h.activityService.Recent(c.Request().Context(), artistID, limit)
	if err != nil {
		return err
	}
	// Clients consume the feed as a bare array under data.
	return respond(c, http.StatusOK, items, "")
}

// QuickActions godoc
// @Summary Role-keyed dashboard shortcuts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /dashboard/quick-actions [get]
func (h *DashboardHandler) QuickActions(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	actions := h.dashboardService.QuickActions(user.Role)
	return respond(c, http.StatusOK, echo.Map{"quickActions": actions}, "")
}

// UserProfile godoc
// @Summary Profile card for the dashboard header
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /dashboard/user-profile [get]
func (h *DashboardHandler) UserProfile(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	memberships := Memberships(c)
	artists := make([]echo.Map, 0, len(memberships))
	for _, m := range memberships {
		entry := echo.Map{"artistId": m.ArtistID, "role": m.Role}
		if m.Artist != nil {
			entry["stageName"] = m.Artist.StageName
		}
		artists = append(artists, entry)
	}

	return respond(c, http.StatusOK, echo.Map{
		"name":        user.FullName(),
		"email":       user.Email,
		"role":        user.Role,
		"roleLabel":   roleLabel(user.Role),
		"permissions": auth.RolePermissions(user.Role),
		"artists":     artists,
	}, "")
}

func roleLabel(role model.Role) string {
	switch role {
	case model.RoleArtist:
		return "Artiste"
	case model.RoleMarketingManager:
		return "Responsable Marketing"
	case model.RoleTourManager:
		return "Responsable Tournées"
	case model.RoleAlbumManager:
		return "Responsable Albums"
	case model.RoleFinancialManager:
		return "Responsable Financier"
	case model.RolePressOfficer:
		return "Attaché de Presse"
	case model.RoleAdmin:
		return "Administrateur"
	default:
		return string(role)
	}
}
