package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "artisthub/internal/errors"
	"artisthub/internal/model"
	"artisthub/internal/repository"
)

// CampaignService exposes marketing campaign operations.
type CampaignService interface {
	Create(ctx context.Context, campaign *model.MarketingCampaign) error
	Update(ctx context.Context, campaign *model.MarketingCampaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.MarketingCampaign, error)
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.MarketingCampaign, error)
}

type campaignService struct {
	campaignRepo repository.CampaignRepository
	artistRepo   repository.ArtistRepository
	activityRepo repository.ActivityRepository
}

// NewCampaignService creates a new campaign service.
func NewCampaignService(campaignRepo repository.CampaignRepository, artistRepo repository.ArtistRepository, activityRepo repository.ActivityRepository) CampaignService {
	return &campaignService{
		campaignRepo: campaignRepo,
		artistRepo:   artistRepo,
		activityRepo: activityRepo,
	}
}

// Create persists the campaign and records a launch entry in the artist's
// timeline when the campaign starts out active.
func (s *campaignService) Create(ctx context.Context, campaign *model.MarketingCampaign) error {
	if _, err := s.artistRepo.FindByID(ctx, campaign.ArtistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrArtistNotFound
		}
		return err
	}
	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return err
	}

	if campaign.Status == model.CampaignStatusActive {
		entityType := "marketing_campaign"
		activity := &model.ActivityTimeline{
			ArtistID:          campaign.ArtistID,
			CreatedBy:         campaign.CreatedBy,
			Type:              model.ActivityCampaignLaunch,
			Action:            "Campagne lancée",
			Description:       campaign.Name,
			RelatedEntityType: entityType,
			RelatedEntityID:   &campaign.ID,
			Priority:          model.PriorityMedium,
			Status:            model.ActivityStatusSuccess,
			IsPublic:          true,
		}
		// Timeline writes are best effort and never fail the campaign.
		_ = s.activityRepo.Create(ctx, activity)
	}
	return nil
}

func (s *campaignService) Update(ctx context.Context, campaign *model.MarketingCampaign) error {
	return s.campaignRepo.Update(ctx, campaign)
}

func (s *campaignService) GetByID(ctx context.Context, id uuid.UUID) (*model.MarketingCampaign, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewHTTPError(404, "Campaign not found", apperrors.CodeResourceNotFound)
		}
		return nil, err
	}
	return campaign, nil
}

func (s *campaignService) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.MarketingCampaign, error) {
	return s.campaignRepo.ListByArtist(ctx, artistID)
}
