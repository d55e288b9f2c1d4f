package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"artisthub/internal/model"
)

func TestActivityService_Recent(t *testing.T) {
	artistID := uuid.New()
	now := time.Now()

	rows := []model.ActivityTimeline{
		{
			Action:      "Campagne lancée",
			Description: "Lancement single été",
			Status:      model.ActivityStatusSuccess,
			CreatedAt:   now.Add(-5 * time.Minute),
			Artist:      &model.Artist{StageName: "Sarah Lopez"},
		},
		{
			Action:    "Revenus reçus",
			Status:    model.ActivityStatusInfo,
			CreatedAt: now.Add(-3 * time.Hour),
		},
	}

	mockRepo := new(MockActivityRepository)
	mockRepo.On("Recent", mock.Anything, &artistID, 2).Return(rows, nil)

	svc := NewActivityService(mockRepo)
	items, err := svc.Recent(context.Background(), &artistID, 2)
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	assert.Equal(t, "Campagne lancée", items[0].Action)
	assert.Equal(t, "Lancement single été", items[0].Detail)
	assert.Equal(t, "Sarah Lopez", items[0].Artist)
	assert.Equal(t, "success", items[0].Type)
	assert.Equal(t, "5min", items[0].Time)

	// Missing description and artist fall back to placeholder labels.
	assert.Equal(t, "Aucun détail disponible", items[1].Detail)
	assert.Equal(t, "Artiste inconnu", items[1].Artist)
	assert.Equal(t, "3h", items[1].Time)

	mockRepo.AssertExpectations(t)
}

func TestActivityService_RecentDefaultLimit(t *testing.T) {
	mockRepo := new(MockActivityRepository)
	mockRepo.On("Recent", mock.Anything, (*uuid.UUID)(nil), 10).Return([]model.ActivityTimeline{}, nil)

	svc := NewActivityService(mockRepo)
	items, err := svc.Recent(context.Background(), nil, 0)
	assert.NoError(t, err)
	assert.Empty(t, items)
	mockRepo.AssertExpectations(t)
}

func TestActivityService_Record(t *testing.T) {
	mockRepo := new(MockActivityRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ActivityTimeline")).Return(nil)

	svc := NewActivityService(mockRepo)
	err := svc.Record(context.Background(), &model.ActivityTimeline{
		ArtistID: uuid.New(),
		Type:     model.ActivityOther,
		Action:   "Note ajoutée",
	})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
