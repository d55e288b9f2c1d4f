package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityType categorizes a timeline entry.
type ActivityType string

const (
	ActivityCampaignLaunch   ActivityType = "campaign_launch"
	ActivityEmailSent        ActivityType = "email_sent"
	ActivitySocialPost       ActivityType = "social_post"
	ActivityVenueBooking     ActivityType = "venue_booking"
	ActivityContractSigned   ActivityType = "contract_signed"
	ActivityRevenueReceived  ActivityType = "revenue_received"
	ActivityExpenseLogged    ActivityType = "expense_logged"
	ActivityDocumentUploaded ActivityType = "document_uploaded"
	ActivityTeamInvite       ActivityType = "team_invite"
	ActivityReportGenerated  ActivityType = "report_generated"
	ActivityOther            ActivityType = "other"
)

// ActivityStatus drives the color-coding of a timeline entry.
type ActivityStatus string

const (
	ActivityStatusInfo    ActivityStatus = "info"
	ActivityStatusSuccess ActivityStatus = "success"
	ActivityStatusWarning ActivityStatus = "warning"
	ActivityStatusError   ActivityStatus = "error"
)

// ActivityPriority ranks a timeline entry.
type ActivityPriority string

const (
	PriorityLow    ActivityPriority = "low"
	PriorityMedium ActivityPriority = "medium"
	PriorityHigh   ActivityPriority = "high"
	PriorityUrgent ActivityPriority = "urgent"
)

// ActivityTimeline represents one event in an artist's activity feed.
// The relative-time label is computed at read time, never stored.
type ActivityTimeline struct {
	ID                uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	ArtistID          uuid.UUID        `json:"artistId" gorm:"type:uuid;not null;index"`
	CreatedBy         uuid.UUID        `json:"createdBy" gorm:"type:uuid;not null;index"`
	Type              ActivityType     `json:"type" gorm:"type:varchar(20);not null"`
	Action            string           `json:"action" gorm:"size:200;not null"`
	Description       string           `json:"description,omitempty" gorm:"type:text"`
	Metadata          JSONMap          `json:"metadata,omitempty" gorm:"type:jsonb"`
	RelatedEntityType string           `json:"relatedEntityType,omitempty" gorm:"size:50"`
	RelatedEntityID   *uuid.UUID       `json:"relatedEntityId,omitempty" gorm:"type:uuid"`
	Priority          ActivityPriority `json:"priority" gorm:"type:varchar(10);not null;default:'medium'"`
	Status            ActivityStatus   `json:"status" gorm:"type:varchar(10);not null;default:'info'"`
	IsPublic          bool             `json:"isPublic" gorm:"not null;default:true"`
	CreatedAt         time.Time        `json:"createdAt" gorm:"index"`
	UpdatedAt         time.Time        `json:"updatedAt"`

	// Relations
	Artist  *Artist `json:"-" gorm:"foreignKey:ArtistID"`
	Creator *User   `json:"-" gorm:"foreignKey:CreatedBy"`
}

// BeforeCreate sets the UUID before creating the record.
func (a *ActivityTimeline) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TimeAgo returns the relative-time label against the current wall clock.
func (a *ActivityTimeline) TimeAgo() string {
	return a.TimeAgoAt(time.Now())
}

// TimeAgoAt buckets the entry's age, evaluated in fixed order with integer
// floor division only: <1min, <60min, <24h, <7d, <4w, then an absolute date.
func (a *ActivityTimeline) TimeAgoAt(now time.Time) string {
	minutes := int(now.Sub(a.CreatedAt).Minutes())
	if minutes < 1 {
		return "À l'instant"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}
	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%dj", days)
	}
	weeks := days / 7
	if weeks < 4 {
		return fmt.Sprintf("%dsem", weeks)
	}
	return a.CreatedAt.Format("02/01/2006")
}

// StatusColor maps the status enum to the dashboard palette.
func (a *ActivityTimeline) StatusColor() string {
	switch a.Status {
	case ActivityStatusInfo:
		return "blue"
	case ActivityStatusSuccess:
		return "emerald"
	case ActivityStatusWarning:
		return "amber"
	case ActivityStatusError:
		return "red"
	default:
		return "gray"
	}
}

// PriorityColor maps the priority enum to the dashboard palette.
func (a *ActivityTimeline) PriorityColor() string {
	switch a.Priority {
	case PriorityLow:
		return "gray"
	case PriorityMedium:
		return "blue"
	case PriorityHigh:
		return "amber"
	case PriorityUrgent:
		return "red"
	default:
		return "gray"
	}
}
