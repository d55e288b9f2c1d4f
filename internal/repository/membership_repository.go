package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"artisthub/internal/model"
)

// MembershipRepository defines team membership persistence operations.
type MembershipRepository interface {
	Create(ctx context.Context, membership *model.TeamMembership) error
	Update(ctx context.Context, membership *model.TeamMembership) error
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]model.TeamMembership, error)
	FindByUserAndArtist(ctx context.Context, userID, artistID uuid.UUID) (*model.TeamMembership, error)
}

type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository.
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Create(ctx context.Context, membership *model.TeamMembership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *membershipRepository) Update(ctx context.Context, membership *model.TeamMembership) error {
	return r.db.WithContext(ctx).Save(membership).Error
}

// FindActiveByUser returns the caller's active memberships with artist names
// preloaded for the profile payload.
func (r *membershipRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]model.TeamMembership, error) {
	var memberships []model.TeamMembership
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *membershipRepository) FindByUserAndArtist(ctx context.Context, userID, artistID uuid.UUID) (*model.TeamMembership, error) {
	var membership model.TeamMembership
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND artist_id = ?", userID, artistID).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}
