package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "artisthub/internal/errors"
	"artisthub/internal/model"
)

func TestRevenueService_CreateRejectsInconsistentRecurring(t *testing.T) {
	svc := NewRevenueService(new(MockRevenueRepository), new(MockArtistRepository), new(MockActivityRepository))

	err := svc.Create(context.Background(), &model.RevenueStream{
		ArtistID:    uuid.New(),
		Source:      model.RevenueSourceStreaming,
		Amount:      decimal.NewFromInt(100),
		Date:        time.Now(),
		IsRecurring: true,
	})

	var httpErr *apperrors.HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.StatusCode)
	assert.Equal(t, apperrors.CodeValidationError, httpErr.Code)
	assert.Equal(t, "recurringPeriod", httpErr.Details[0].Field)
}

func TestRevenueService_CreateUnknownArtist(t *testing.T) {
	artistID := uuid.New()
	artistRepo := new(MockArtistRepository)
	artistRepo.On("FindByID", mock.Anything, artistID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewRevenueService(new(MockRevenueRepository), artistRepo, new(MockActivityRepository))
	err := svc.Create(context.Background(), &model.RevenueStream{
		ArtistID: artistID,
		Source:   model.RevenueSourceStreaming,
		Amount:   decimal.NewFromInt(100),
		Date:     time.Now(),
	})
	assert.ErrorIs(t, err, apperrors.ErrArtistNotFound)
}

func TestRevenueService_CreateConfirmedLogsActivity(t *testing.T) {
	artistID := uuid.New()

	artistRepo := new(MockArtistRepository)
	artistRepo.On("FindByID", mock.Anything, artistID).Return(&model.Artist{ID: artistID}, nil)

	revenueRepo := new(MockRevenueRepository)
	revenueRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.RevenueStream")).Return(nil)

	activityRepo := new(MockActivityRepository)
	activityRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.ActivityTimeline) bool {
		return a.Type == model.ActivityRevenueReceived && a.ArtistID == artistID
	})).Return(nil)

	svc := NewRevenueService(revenueRepo, artistRepo, activityRepo)
	err := svc.Create(context.Background(), &model.RevenueStream{
		ArtistID: artistID,
		Source:   model.RevenueSourceStreaming,
		Amount:   decimal.RequireFromString("530.75"),
		Date:     time.Now(),
		Status:   model.RevenueStatusConfirmed,
	})
	assert.NoError(t, err)
	activityRepo.AssertExpectations(t)
}

func TestRevenueService_CreatePendingSkipsActivity(t *testing.T) {
	artistID := uuid.New()

	artistRepo := new(MockArtistRepository)
	artistRepo.On("FindByID", mock.Anything, artistID).Return(&model.Artist{ID: artistID}, nil)

	revenueRepo := new(MockRevenueRepository)
	revenueRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.RevenueStream")).Return(nil)

	activityRepo := new(MockActivityRepository)

	svc := NewRevenueService(revenueRepo, artistRepo, activityRepo)
	err := svc.Create(context.Background(), &model.RevenueStream{
		ArtistID: artistID,
		Source:   model.RevenueSourceStreaming,
		Amount:   decimal.NewFromInt(100),
		Date:     time.Now(),
		Status:   model.RevenueStatusPending,
	})
	assert.NoError(t, err)
	activityRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
