package service

import (
	"context"

	"github.com/google/uuid"

	"artisthub/internal/model"
	"artisthub/internal/repository"
)

const defaultActivityLimit = 10

// ActivityItem is one timeline entry shaped for the dashboard feed.
type ActivityItem struct {
	Time     string        `json:"time"`
	Action   string        `json:"action"`
	Detail   string        `json:"detail"`
	Artist   string        `json:"artist"`
	Type     string        `json:"type"`
	Metadata model.JSONMap `json:"metadata,omitempty"`
}

// ActivityService exposes the recent-activity feed.
type ActivityService interface {
	Recent(ctx context.Context, artistID *uuid.UUID, limit int) ([]ActivityItem, error)
	Record(ctx context.Context, activity *model.ActivityTimeline) error
}

type activityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new activity service.
func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

// Recent returns at most limit entries, newest first. A nil artistID means
// the feed is not scoped to a single artist.
func (s *activityService) Recent(ctx context.Context, artistID *uuid.UUID, limit int) ([]ActivityItem, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	activities, err := s.activityRepo.Recent(ctx, artistID, limit)
	if err != nil {
		return nil, err
	}

	items := make([]ActivityItem, 0, len(activities))
	for _, a := range activities {
		detail := a.Description
		if detail == "" {
			detail = "Aucun détail disponible"
		}
		artistName := "Artiste inconnu"
		if a.Artist != nil && a.Artist.StageName != "" {
			artistName = a.Artist.StageName
		}
		items = append(items, ActivityItem{
			Time:     a.TimeAgo(),
			Action:   a.Action,
			Detail:   detail,
			Artist:   artistName,
			Type:     string(a.Status),
			Metadata: a.Metadata,
		})
	}
	return items, nil
}

func (s *activityService) Record(ctx context.Context, activity *model.ActivityTimeline) error {
	return s.activityRepo.Create(ctx, activity)
}
