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

// CampaignHandler handles marketing campaign endpoints. Every route is
// guarded by a scoped marketing permission check.
type CampaignHandler struct {
	campaignService service.CampaignService
}

// NewCampaignHandler creates a new campaign handler.
func NewCampaignHandler(campaignService service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// CampaignRequest represents a campaign create or update payload.
type CampaignRequest struct {
	ArtistID    uuid.UUID            `json:"artistId" validate:"required"`
	Name        string               `json:"name" validate:"required,max=200"`
	Description string               `json:"description"`
	Type        model.CampaignType   `json:"type" validate:"required,oneof=email social paid_ads influencer pr events other"`
	Status      model.CampaignStatus `json:"status" validate:"omitempty,oneof=draft scheduled active paused completed cancelled"`
	Budget      decimal.Decimal      `json:"budget"`
	SpentAmount decimal.Decimal      `json:"spentAmount"`
	StartDate   time.Time            `json:"startDate" validate:"required"`
	EndDate     *time.Time           `json:"endDate"`
	Goals       model.JSONMap        `json:"goals"`
	Metrics     model.JSONMap        `json:"metrics"`
}

// Create godoc
// @Summary Create a marketing campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CampaignRequest true "Campaign data"
// @Success 201 {object} Response
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /campaigns [post]
func (h *CampaignHandler) Create(c echo.Context) error {
	var req CampaignRequest
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
	if err := requirePermission(c, auth.PermMarketingCreate, req.ArtistID); err != nil {
		return err
	}

	user, _ := CurrentUser(c)
	status := req.Status
	if status == "" {
		status = model.CampaignStatusDraft
	}
	campaign := &model.MarketingCampaign{
		ArtistID:    req.ArtistID,
		CreatedBy:   user.ID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Status:      status,
		Budget:      req.Budget,
		SpentAmount: req.SpentAmount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Goals:       req.Goals,
		Metrics:     req.Metrics,
	}
	if err := h.campaignService.Create(c.Request().Context(), campaign); err != nil {
		return err
	}
	return respond(c, http.StatusCreated, echo.Map{"campaign": campaign}, "campaign created")
}

// ListByArtist godoc
// @Summary List campaigns for an artist
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param artistId path string true "Artist UUID"
// @Success 200 {object} Response
// @Failure 403 {object} ErrorResponse
// @Router /artists/{artistId}/campaigns [get]
func (h *CampaignHandler) ListByArtist(c echo.Context) error {
	artistID, err := uuid.Parse(c.Param("artistId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artist id")
	}
	if err := requirePermission(c, auth.PermMarketingView, artistID); err != nil {
		return err
	}

	campaigns, err := h.campaignService.ListByArtist(c.Request().Context(), artistID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"campaigns": campaigns}, "")
}

// Get godoc
// @Summary Get a campaign by id
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign UUID"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponse
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid campaign id")
	}

	campaign, err := h.campaignService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if err := requirePermission(c, auth.PermMarketingView, campaign.ArtistID); err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"campaign": campaign}, "")
}

// Update godoc
// @Summary Update a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign UUID"
// @Param request body CampaignRequest true "Campaign data"
// @Success 200 {object} Response
// @Failure 403 {object} ErrorResponse
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid campaign id")
	}

	campaign, err := h.campaignService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if err := requirePermission(c, auth.PermMarketingEdit, campaign.ArtistID); err != nil {
		return err
	}

	var req CampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	campaign.Name = req.Name
	campaign.Description = req.Description
	campaign.Type = req.Type
	if req.Status != "" {
		campaign.Status = req.Status
	}
	campaign.Budget = req.Budget
	campaign.SpentAmount = req.SpentAmount
	campaign.StartDate = req.StartDate
	campaign.EndDate = req.EndDate
	campaign.Goals = req.Goals
	campaign.Metrics = req.Metrics

	if err := h.campaignService.Update(c.Request().Context(), campaign); err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"campaign": campaign}, "campaign updated")
}
