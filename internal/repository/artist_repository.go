package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"artisthub/internal/model"
)

// ArtistRepository defines artist persistence operations.
type ArtistRepository interface {
	Create(ctx context.Context, artist *model.Artist) error
	Update(ctx context.Context, artist *model.Artist) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	FindByStageName(ctx context.Context, stageName string) (*model.Artist, error)
	List(ctx context.Context) ([]model.Artist, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	Count(ctx context.Context) (int64, error)
	SumFollowers(ctx context.Context, artistIDs []uuid.UUID) (int64, error)
	SumStreams(ctx context.Context) (int64, error)
}

type artistRepository struct {
	db *gorm.DB
}

// NewArtistRepository creates a new artist repository.
func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(ctx context.Context, artist *model.Artist) error {
	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *artistRepository) Update(ctx context.Context, artist *model.Artist) error {
	return r.db.WithContext(ctx).Save(artist).Error
}

func (r *artistRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	var artist model.Artist
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindByStageName(ctx context.Context, stageName string) (*model.Artist, error) {
	var artist model.Artist
	if err := r.db.WithContext(ctx).Where("stage_name = ?", stageName).First(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) List(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist
	if err := r.db.WithContext(ctx).Order("stage_name").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Artist{}).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *artistRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Artist{}).Count(&count).Error
	return count, err
}

// SumFollowers totals the denormalized follower snapshots for the given artists.
func (r *artistRepository) SumFollowers(ctx context.Context, artistIDs []uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Artist{}).
		Where("id IN ?", artistIDs).
		Select("COALESCE(SUM(total_followers), 0)").
		Scan(&total).Error
	return total, err
}

func (r *artistRepository) SumStreams(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Artist{}).
		Select("COALESCE(SUM(total_streams), 0)").
		Scan(&total).Error
	return total, err
}
