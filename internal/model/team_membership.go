package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMembership links a User to an Artist with a role and an optional map of
// custom permission overrides. All scoped permission checks run against the
// caller's membership list.
type TeamMembership struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_member_artist"`
	ArtistID    uuid.UUID  `json:"artistId" gorm:"type:uuid;not null;uniqueIndex:idx_member_artist;index"`
	Role        Role       `json:"role" gorm:"type:varchar(30);not null"`
	Permissions JSONMap    `json:"permissions" gorm:"type:jsonb"`
	IsActive    bool       `json:"isActive" gorm:"default:true;index"`
	InvitedBy   *uuid.UUID `json:"invitedBy,omitempty" gorm:"type:uuid"`
	InvitedAt   time.Time  `json:"invitedAt"`
	JoinedAt    *time.Time `json:"joinedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Relations
	User   *User   `json:"-" gorm:"foreignKey:UserID"`
	Artist *Artist `json:"-" gorm:"foreignKey:ArtistID"`
}

// BeforeCreate sets the UUID before creating the record.
func (m *TeamMembership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.InvitedAt.IsZero() {
		m.InvitedAt = time.Now()
	}
	return nil
}
