package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"artisthub/internal/auth"
	"artisthub/internal/model"
	"artisthub/internal/service"
)

// ActivityHandler handles raw timeline endpoints outside the dashboard feed.
type ActivityHandler struct {
	activityService service.ActivityService
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ActivityRequest represents a manual timeline entry.
type ActivityRequest struct {
	ArtistID    uuid.UUID              `json:"artistId" validate:"required"`
	Type        model.ActivityType     `json:"type" validate:"required"`
	Action      string                 `json:"action" validate:"required,max=200"`
	Description string                 `json:"description"`
	Metadata    model.JSONMap          `json:"metadata"`
	Priority    model.ActivityPriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status      model.ActivityStatus   `json:"status" validate:"omitempty,oneof=info success warning error"`
}

// List godoc
// @Summary List recent activities
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param artistId query string false "Artist UUID"
// @Param limit query int false "Maximum entries (default 10)"
// @Success 200 {object} Response
// @Router /activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	var artistID *uuid.UUID
	if raw := c.QueryParam("artistId"); raw != "" && raw != "all" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid artistId")
		}
		if err := requirePermission(c, auth.PermArtistView, id); err != nil {
			return err
		}
		artistID = &id
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
	}

	items, err := h.activityService.Recent(c.Request().Context(), artistID, limit)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"activities": items}, "")
}

// Create godoc
// @Summary Record a timeline entry
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ActivityRequest true "Activity data"
// @Success 201 {object} Response
// @Failure 403 {object} ErrorResponse
// @Router /activities [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	var req ActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	// The artist-scoped route carries the artist id in the path.
	if param := c.Param("artistId"); param != "" {
		artistID, err := uuid.Parse(param)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid artist id")
		}
		req.ArtistID = artistID
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := requirePermission(c, auth.PermArtistView, req.ArtistID); err != nil {
		return err
	}

	user, _ := CurrentUser(c)
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	status := req.Status
	if status == "" {
		status = model.ActivityStatusInfo
	}
	activity := &model.ActivityTimeline{
		ArtistID:    req.ArtistID,
		CreatedBy:   user.ID,
		Type:        req.Type,
		Action:      req.Action,
		Description: req.Description,
		Metadata:    req.Metadata,
		Priority:    priority,
		Status:      status,
		IsPublic:    true,
	}
	if err := h.activityService.Record(c.Request().Context(), activity); err != nil {
		return err
	}
	return respond(c, http.StatusCreated, echo.Map{"activity": activity}, "activity recorded")
}
