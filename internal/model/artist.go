package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Artist represents a managed artist profile, owned by exactly one User.
//
// The aggregate counters (TotalFollowers, TotalStreams, TotalRevenue,
// MonthlyListeners) are manually maintained snapshots. They are not derived
// from RevenueStream or ActivityTimeline and no job reconciles them, so they
// may drift from the true sums.
type Artist struct {
	ID               uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID       `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	StageName        string          `json:"stageName" gorm:"uniqueIndex;size:100;not null"`
	Bio              string          `json:"bio,omitempty" gorm:"type:text"`
	Genre            string          `json:"genre" gorm:"size:50;not null;default:'Electronic';index"`
	Website          string          `json:"website,omitempty" gorm:"size:255"`
	Avatar           string          `json:"avatar,omitempty" gorm:"size:255"`
	InstagramHandle  string          `json:"instagramHandle,omitempty" gorm:"size:100"`
	TiktokHandle     string          `json:"tiktokHandle,omitempty" gorm:"size:100"`
	TwitterHandle    string          `json:"twitterHandle,omitempty" gorm:"size:100"`
	SpotifyID        string          `json:"spotifyId,omitempty" gorm:"size:100"`
	Location         string          `json:"location,omitempty" gorm:"size:100"`
	FoundedYear      int             `json:"foundedYear,omitempty"`
	IsVerified       bool            `json:"isVerified" gorm:"default:false;index"`
	TotalFollowers   int64           `json:"totalFollowers" gorm:"not null;default:0;index"`
	TotalStreams     int64           `json:"totalStreams" gorm:"not null;default:0"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue" gorm:"type:decimal(12,2);not null;default:0"`
	MonthlyListeners int64           `json:"monthlyListeners" gorm:"not null;default:0"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`

	// Relations
	User *User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets the UUID before creating the record.
func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// BeforeSave strips the leading @ from social handles.
func (a *Artist) BeforeSave(tx *gorm.DB) error {
	a.InstagramHandle = strings.TrimPrefix(a.InstagramHandle, "@")
	a.TiktokHandle = strings.TrimPrefix(a.TiktokHandle, "@")
	a.TwitterHandle = strings.TrimPrefix(a.TwitterHandle, "@")
	return nil
}
