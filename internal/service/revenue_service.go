package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "artisthub/internal/errors"
	"artisthub/internal/model"
	"artisthub/internal/repository"
)

// RevenueService exposes revenue stream operations.
type RevenueService interface {
	Create(ctx context.Context, revenue *model.RevenueStream) error
	Update(ctx context.Context, revenue *model.RevenueStream) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.RevenueStream, error)
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.RevenueStream, error)
}

type revenueService struct {
	revenueRepo  repository.RevenueRepository
	artistRepo   repository.ArtistRepository
	activityRepo repository.ActivityRepository
}

// NewRevenueService creates a new revenue service.
func NewRevenueService(revenueRepo repository.RevenueRepository, artistRepo repository.ArtistRepository, activityRepo repository.ActivityRepository) RevenueService {
	return &revenueService{
		revenueRepo:  revenueRepo,
		artistRepo:   artistRepo,
		activityRepo: activityRepo,
	}
}

// Create persists the record and logs a timeline entry for confirmed revenue.
// An inconsistent recurring pair is rejected before hitting the database so
// the caller gets a 422 instead of a 500 from the save hook.
func (s *revenueService) Create(ctx context.Context, revenue *model.RevenueStream) error {
	if err := revenue.ValidateRecurring(); err != nil {
		return apperrors.NewValidationError([]apperrors.FieldError{
			{Field: "recurringPeriod", Message: err.Error()},
		})
	}
	if _, err := s.artistRepo.FindByID(ctx, revenue.ArtistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrArtistNotFound
		}
		return err
	}
	if err := s.revenueRepo.Create(ctx, revenue); err != nil {
		return err
	}

	if revenue.Status == model.RevenueStatusConfirmed {
		entityType := "revenue_stream"
		activity := &model.ActivityTimeline{
			ArtistID:          revenue.ArtistID,
			CreatedBy:         revenue.CreatedBy,
			Type:              model.ActivityRevenueReceived,
			Action:            "Revenus reçus",
			Description:       formatEuro(revenue.Amount) + " (" + string(revenue.Source) + ")",
			RelatedEntityType: entityType,
			RelatedEntityID:   &revenue.ID,
			Priority:          model.PriorityMedium,
			Status:            model.ActivityStatusSuccess,
			IsPublic:          true,
		}
		_ = s.activityRepo.Create(ctx, activity)
	}
	return nil
}

func (s *revenueService) Update(ctx context.Context, revenue *model.RevenueStream) error {
	if err := revenue.ValidateRecurring(); err != nil {
		return apperrors.NewValidationError([]apperrors.FieldError{
			{Field: "recurringPeriod", Message: err.Error()},
		})
	}
	return s.revenueRepo.Update(ctx, revenue)
}

func (s *revenueService) GetByID(ctx context.Context, id uuid.UUID) (*model.RevenueStream, error) {
	revenue, err := s.revenueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewHTTPError(http.StatusNotFound, "Revenue stream not found", apperrors.CodeResourceNotFound)
		}
		return nil, err
	}
	return revenue, nil
}

func (s *revenueService) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.RevenueStream, error) {
	return s.revenueRepo.ListByArtist(ctx, artistID)
}
