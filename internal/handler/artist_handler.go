package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"artisthub/internal/auth"
	"artisthub/internal/service"
)

// ArtistHandler handles artist roster endpoints.
type ArtistHandler struct {
	artistService service.ArtistService
}

// NewArtistHandler creates a new artist handler.
func NewArtistHandler(artistService service.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService}
}

// List godoc
// @Summary List artists
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /artists [get]
func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.artistService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"artists": artists}, "")
}

// Get godoc
// @Summary Get an artist by id
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artist UUID"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponse
// @Router /artists/{id} [get]
func (h *ArtistHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artist id")
	}
	if err := requirePermission(c, auth.PermArtistView, id); err != nil {
		return err
	}

	artist, err := h.artistService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"artist": artist}, "")
}

// StatisticsOverview godoc
// @Summary Cross-artist statistics rollup
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /statistics/overview [get]
func (h *ArtistHandler) StatisticsOverview(c echo.Context) error {
	overview, err := h.artistService.StatisticsOverview(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, overview, "")
}
