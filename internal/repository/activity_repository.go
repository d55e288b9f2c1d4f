package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"artisthub/internal/model"
)

// ActivityRepository defines activity timeline persistence operations.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.ActivityTimeline) error
	Recent(ctx context.Context, artistID *uuid.UUID, limit int) ([]model.ActivityTimeline, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.ActivityTimeline) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// Recent returns up to limit rows newest-first, optionally scoped to one
// artist. Related Artist and Creator are preloaded for display decoration.
func (r *activityRepository) Recent(ctx context.Context, artistID *uuid.UUID, limit int) ([]model.ActivityTimeline, error) {
	query := r.db.WithContext(ctx).
		Preload("Artist").
		Preload("Creator").
		Order("created_at DESC").
		Limit(limit)
	if artistID != nil {
		query = query.Where("artist_id = ?", *artistID)
	}

	var activities []model.ActivityTimeline
	if err := query.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
