package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"artisthub/internal/model"
)

// RevenueRepository defines revenue stream persistence operations, including
// the aggregates backing the financial dashboard and statistics overview.
type RevenueRepository interface {
	Create(ctx context.Context, revenue *model.RevenueStream) error
	Update(ctx context.Context, revenue *model.RevenueStream) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.RevenueStream, error)
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.RevenueStream, error)
	ListConfirmedInRange(ctx context.Context, artistIDs []uuid.UUID, from, to time.Time) ([]model.RevenueStream, error)
	SumConfirmedBySource(ctx context.Context) (map[model.RevenueSource]decimal.Decimal, error)
}

type revenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository creates a new revenue repository.
func NewRevenueRepository(db *gorm.DB) RevenueRepository {
	return &revenueRepository{db: db}
}

func (r *revenueRepository) Create(ctx context.Context, revenue *model.RevenueStream) error {
	return r.db.WithContext(ctx).Create(revenue).Error
}

func (r *revenueRepository) Update(ctx context.Context, revenue *model.RevenueStream) error {
	return r.db.WithContext(ctx).Save(revenue).Error
}

func (r *revenueRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.RevenueStream, error) {
	var revenue model.RevenueStream
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&revenue).Error; err != nil {
		return nil, err
	}
	return &revenue, nil
}

func (r *revenueRepository) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.RevenueStream, error) {
	var revenues []model.RevenueStream
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("date DESC").
		Find(&revenues).Error
	if err != nil {
		return nil, err
	}
	return revenues, nil
}

// ListConfirmedInRange returns confirmed records with date in [from, to).
func (r *revenueRepository) ListConfirmedInRange(ctx context.Context, artistIDs []uuid.UUID, from, to time.Time) ([]model.RevenueStream, error) {
	var revenues []model.RevenueStream
	err := r.db.WithContext(ctx).
		Select("amount", "source").
		Where("artist_id IN ? AND status = ? AND date >= ? AND date < ?",
			artistIDs, model.RevenueStatusConfirmed, from, to).
		Find(&revenues).Error
	if err != nil {
		return nil, err
	}
	return revenues, nil
}

func (r *revenueRepository) SumConfirmedBySource(ctx context.Context) (map[model.RevenueSource]decimal.Decimal, error) {
	var rows []struct {
		Source model.RevenueSource
		Total  decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.RevenueStream{}).
		Select("source, COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", model.RevenueStatusConfirmed).
		Group("source").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	totals := make(map[model.RevenueSource]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.Source] = row.Total
	}
	return totals, nil
}
