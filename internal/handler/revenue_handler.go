package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"artisthub/internal/auth"
	"artisthub/internal/model"
	"artisthub/internal/service"
)

// RevenueHandler handles revenue stream endpoints. Every route is guarded by
// a scoped financial permission check.
type RevenueHandler struct {
	revenueService service.RevenueService
}

// NewRevenueHandler creates a new revenue handler.
func NewRevenueHandler(revenueService service.RevenueService) *RevenueHandler {
	return &RevenueHandler{revenueService: revenueService}
}

// RevenueRequest represents a revenue create or update payload.
type RevenueRequest struct {
	ArtistID        uuid.UUID              `json:"artistId" validate:"required"`
	Source          model.RevenueSource    `json:"source" validate:"required,oneof=streaming physical_sales digital_sales live_performance merchandise sync_licensing publishing sponsorship other"`
	Platform        string                 `json:"platform" validate:"max=100"`
	Amount          decimal.Decimal        `json:"amount" validate:"required"`
	Currency        string                 `json:"currency" validate:"omitempty,len=3"`
	Date            time.Time              `json:"date" validate:"required"`
	Description     string                 `json:"description"`
	Metadata        model.JSONMap          `json:"metadata"`
	IsRecurring     bool                   `json:"isRecurring"`
	RecurringPeriod *model.RecurringPeriod `json:"recurringPeriod" validate:"omitempty,oneof=daily weekly monthly quarterly yearly"`
	Taxable         *bool                  `json:"taxable"`
	Status          model.RevenueStatus    `json:"status" validate:"omitempty,oneof=pending confirmed disputed cancelled"`
	PayoutDate      *time.Time             `json:"payoutDate"`
}

func (r *RevenueRequest) toModel(createdBy uuid.UUID) *model.RevenueStream {
	currency := r.Currency
	if currency == "" {
		currency = "EUR"
	}
	status := r.Status
	if status == "" {
		status = model.RevenueStatusPending
	}
	taxable := true
	if r.Taxable != nil {
		taxable = *r.Taxable
	}
	return &model.RevenueStream{
		ArtistID:        r.ArtistID,
		CreatedBy:       createdBy,
		Source:          r.Source,
		Platform:        r.Platform,
		Amount:          r.Amount,
		Currency:        currency,
		Date:            r.Date,
		Description:     r.Description,
		Metadata:        r.Metadata,
		IsRecurring:     r.IsRecurring,
		RecurringPeriod: r.RecurringPeriod,
		Taxable:         taxable,
		Status:          status,
		PayoutDate:      r.PayoutDate,
	}
}

// Create godoc
// @Summary Record a revenue stream
// @Tags revenue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RevenueRequest true "Revenue data"
// @Success 201 {object} Response
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /revenue [post]
func (h *RevenueHandler) Create(c echo.Context) error {
	var req RevenueRequest
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
	if err := requirePermission(c, auth.PermFinancialCreate, req.ArtistID); err != nil {
		return err
	}

	user, _ := CurrentUser(c)
	revenue := req.toModel(user.ID)
	if err := h.revenueService.Create(c.Request().Context(), revenue); err != nil {
		return err
	}
	return respond(c, http.StatusCreated, echo.Map{"revenue": revenue}, "revenue recorded")
}

// ListByArtist godoc
// @Summary List revenue streams for an artist
// @Tags revenue
// @Produce json
// @Security BearerAuth
// @Param artistId path string true "Artist UUID"
// @Success 200 {object} Response
// @Failure 403 {object} ErrorResponse
// @Router /artists/{artistId}/revenue [get]
func (h *RevenueHandler) ListByArtist(c echo.Context) error {
	artistID, err := uuid.Parse(c.Param("artistId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artist id")
	}
	if err := requirePermission(c, auth.PermFinancialView, artistID); err != nil {
		return err
	}

	revenues, err := h.revenueService.ListByArtist(c.Request().Context(), artistID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"revenue": revenues}, "")
}

// Get godoc
// @Summary Get a revenue stream by id
// @Tags revenue
// @Produce json
// @Security BearerAuth
// @Param id path string true "Revenue UUID"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponse
// @Router /revenue/{id} [get]
func (h *RevenueHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid revenue id")
	}

	revenue, err := h.revenueService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if err := requirePermission(c, auth.PermFinancialView, revenue.ArtistID); err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"revenue": revenue}, "")
}
