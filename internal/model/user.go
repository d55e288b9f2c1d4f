package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role enumerates the closed set of user roles.
type Role string

const (
	RoleArtist           Role = "artist"
	RoleMarketingManager Role = "marketing_manager"
	RoleTourManager      Role = "tour_manager"
	RoleAlbumManager     Role = "album_manager"
	RoleFinancialManager Role = "financial_manager"
	RolePressOfficer     Role = "press_officer"
	RoleAdmin            Role = "admin"
)

// User represents an authenticated user in the system.
type User struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email           string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	FirstName       string     `json:"firstName" gorm:"size:50;not null"`
	LastName        string     `json:"lastName" gorm:"size:50;not null"`
	PasswordHash    string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role            Role       `json:"role" gorm:"type:varchar(30);not null;default:'artist';index"`
	IsActive        bool       `json:"isActive" gorm:"default:true;index"`
	IsEmailVerified bool       `json:"isEmailVerified" gorm:"default:false"`
	Avatar          string     `json:"avatar,omitempty" gorm:"size:255"`
	Phone           string     `json:"phone,omitempty" gorm:"size:20"`
	Timezone        string     `json:"timezone" gorm:"size:50;not null;default:'UTC'"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`

	// Relations
	ArtistProfile *Artist          `json:"artistProfile,omitempty" gorm:"foreignKey:UserID"`
	Memberships   []TeamMembership `json:"-" gorm:"foreignKey:UserID"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// BeforeCreate sets the UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeSave normalizes the email to lowercase. Uniqueness is enforced on the
// normalized form.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}
