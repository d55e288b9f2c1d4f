package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "artisthub/internal/errors"
	"artisthub/internal/model"
)

func TestArtistService_GetByID(t *testing.T) {
	artistID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockArtistRepository)
		mockRepo.On("FindByID", mock.Anything, artistID).Return(&model.Artist{ID: artistID, StageName: "DJ Mike"}, nil)

		svc := NewArtistService(mockRepo, new(MockRevenueRepository))
		artist, err := svc.GetByID(context.Background(), artistID)
		assert.NoError(t, err)
		assert.Equal(t, "DJ Mike", artist.StageName)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockArtistRepository)
		mockRepo.On("FindByID", mock.Anything, artistID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewArtistService(mockRepo, new(MockRevenueRepository))
		artist, err := svc.GetByID(context.Background(), artistID)
		assert.ErrorIs(t, err, apperrors.ErrArtistNotFound)
		assert.Nil(t, artist)
	})
}

func TestArtistService_StatisticsOverview(t *testing.T) {
	artistRepo := new(MockArtistRepository)
	artistRepo.On("Count", mock.Anything).Return(int64(2), nil)
	artistRepo.On("SumStreams", mock.Anything).Return(int64(2770000), nil)

	revenueRepo := new(MockRevenueRepository)
	revenueRepo.On("SumConfirmedBySource", mock.Anything).Return(map[model.RevenueSource]decimal.Decimal{
		model.RevenueSourceStreaming:       decimal.RequireFromString("3951.25"),
		model.RevenueSourceLivePerformance: decimal.RequireFromString("1850.00"),
	}, nil)

	svc := NewArtistService(artistRepo, revenueRepo)
	overview, err := svc.StatisticsOverview(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, "5 801,25 €", overview.TotalRevenue)
	assert.Equal(t, "2.8M", overview.TotalStreams)
	assert.Equal(t, int64(2), overview.TotalArtists)
	assert.Equal(t, "3 951,25 €", overview.RevenueBySource["streaming"])
	assert.Equal(t, "1 850,00 €", overview.RevenueBySource["live_performance"])

	artistRepo.AssertExpectations(t)
	revenueRepo.AssertExpectations(t)
}
