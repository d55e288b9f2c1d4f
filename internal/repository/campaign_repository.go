package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"artisthub/internal/model"
)

// CampaignRepository defines marketing campaign persistence operations,
// including the aggregates backing the marketing dashboard.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *model.MarketingCampaign) error
	Update(ctx context.Context, campaign *model.MarketingCampaign) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MarketingCampaign, error)
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.MarketingCampaign, error)
	CountActive(ctx context.Context, artistIDs []uuid.UUID) (int64, error)
	CountActiveCreatedBefore(ctx context.Context, artistIDs []uuid.UUID, cutoff time.Time) (int64, error)
	ListByTypeSince(ctx context.Context, artistIDs []uuid.UUID, campaignType model.CampaignType, since time.Time) ([]model.MarketingCampaign, error)
}

type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository.
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *model.MarketingCampaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *campaignRepository) Update(ctx context.Context, campaign *model.MarketingCampaign) error {
	return r.db.WithContext(ctx).Save(campaign).Error
}

func (r *campaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MarketingCampaign, error) {
	var campaign model.MarketingCampaign
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&campaign).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.MarketingCampaign, error) {
	var campaigns []model.MarketingCampaign
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&campaigns).Error
	if err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *campaignRepository) CountActive(ctx context.Context, artistIDs []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MarketingCampaign{}).
		Where("artist_id IN ? AND status = ?", artistIDs, model.CampaignStatusActive).
		Count(&count).Error
	return count, err
}

// CountActiveCreatedBefore backs the naive period-over-period campaign delta.
func (r *campaignRepository) CountActiveCreatedBefore(ctx context.Context, artistIDs []uuid.UUID, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MarketingCampaign{}).
		Where("artist_id IN ? AND status = ? AND created_at < ?", artistIDs, model.CampaignStatusActive, cutoff).
		Count(&count).Error
	return count, err
}

func (r *campaignRepository) ListByTypeSince(ctx context.Context, artistIDs []uuid.UUID, campaignType model.CampaignType, since time.Time) ([]model.MarketingCampaign, error) {
	var campaigns []model.MarketingCampaign
	err := r.db.WithContext(ctx).
		Where("artist_id IN ? AND type = ? AND created_at >= ?", artistIDs, campaignType, since).
		Find(&campaigns).Error
	if err != nil {
		return nil, err
	}
	return campaigns, nil
}
