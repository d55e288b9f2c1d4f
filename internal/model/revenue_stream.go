package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RevenueSource represents where a revenue record came from.
type RevenueSource string

const (
	RevenueSourceStreaming       RevenueSource = "streaming"
	RevenueSourcePhysicalSales   RevenueSource = "physical_sales"
	RevenueSourceDigitalSales    RevenueSource = "digital_sales"
	RevenueSourceLivePerformance RevenueSource = "live_performance"
	RevenueSourceMerchandise     RevenueSource = "merchandise"
	RevenueSourceSyncLicensing   RevenueSource = "sync_licensing"
	RevenueSourcePublishing      RevenueSource = "publishing"
	RevenueSourceSponsorship     RevenueSource = "sponsorship"
	RevenueSourceOther           RevenueSource = "other"
)

// RevenueStatus represents the settlement state of a revenue record.
type RevenueStatus string

const (
	RevenueStatusPending   RevenueStatus = "pending"
	RevenueStatusConfirmed RevenueStatus = "confirmed"
	RevenueStatusDisputed  RevenueStatus = "disputed"
	RevenueStatusCancelled RevenueStatus = "cancelled"
)

// RecurringPeriod represents the cadence of a recurring revenue record.
type RecurringPeriod string

const (
	RecurringDaily     RecurringPeriod = "daily"
	RecurringWeekly    RecurringPeriod = "weekly"
	RecurringMonthly   RecurringPeriod = "monthly"
	RecurringQuarterly RecurringPeriod = "quarterly"
	RecurringYearly    RecurringPeriod = "yearly"
)

// ErrRecurringInconsistent is returned when IsRecurring and RecurringPeriod
// disagree. The pair must be set together or not at all.
var ErrRecurringInconsistent = errors.New("recurring period must be set exactly when revenue is recurring")

// RevenueStream represents a dated monetary record for one artist.
type RevenueStream struct {
	ID              uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	ArtistID        uuid.UUID        `json:"artistId" gorm:"type:uuid;not null;index:idx_revenue_artist_date;index:idx_revenue_artist_status"`
	CreatedBy       uuid.UUID        `json:"createdBy" gorm:"type:uuid;not null;index"`
	Source          RevenueSource    `json:"source" gorm:"type:varchar(20);not null;index"`
	Platform        string           `json:"platform,omitempty" gorm:"size:100"`
	Amount          decimal.Decimal  `json:"amount" gorm:"type:decimal(12,2);not null"`
	Currency        string           `json:"currency" gorm:"size:3;not null;default:'EUR'"`
	Date            time.Time        `json:"date" gorm:"type:date;not null;index:idx_revenue_artist_date"`
	Description     string           `json:"description,omitempty" gorm:"type:text"`
	Metadata        JSONMap          `json:"metadata,omitempty" gorm:"type:jsonb"`
	IsRecurring     bool             `json:"isRecurring" gorm:"not null;default:false"`
	RecurringPeriod *RecurringPeriod `json:"recurringPeriod,omitempty" gorm:"type:varchar(10)"`
	Taxable         bool             `json:"taxable" gorm:"not null;default:true"`
	Status          RevenueStatus    `json:"status" gorm:"type:varchar(10);not null;default:'pending';index:idx_revenue_artist_status"`
	PayoutDate      *time.Time       `json:"payoutDate,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`

	// Relations
	Artist  *Artist `json:"-" gorm:"foreignKey:ArtistID"`
	Creator *User   `json:"-" gorm:"foreignKey:CreatedBy"`
}

// BeforeCreate sets the UUID before creating the record.
func (r *RevenueStream) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeSave normalizes the currency and rejects an inconsistent recurring pair.
func (r *RevenueStream) BeforeSave(tx *gorm.DB) error {
	r.Currency = strings.ToUpper(r.Currency)
	if err := r.ValidateRecurring(); err != nil {
		return err
	}
	// Platform may arrive only inside metadata, e.g. from import pipelines.
	if r.Platform == "" && r.Metadata != nil {
		if p, ok := r.Metadata["platform"].(string); ok {
			r.Platform = p
		}
	}
	return nil
}

// ValidateRecurring enforces that IsRecurring is true iff RecurringPeriod is set.
func (r *RevenueStream) ValidateRecurring() error {
	if r.IsRecurring != (r.RecurringPeriod != nil) {
		return ErrRecurringInconsistent
	}
	return nil
}

// IsOverdue reports a pending record whose payout date already passed.
func (r *RevenueStream) IsOverdue(now time.Time) bool {
	return r.PayoutDate != nil && r.PayoutDate.Before(now) && r.Status == RevenueStatusPending
}

// NetAmount applies a flat tax rate for taxable records.
func (r *RevenueStream) NetAmount(taxRate decimal.Decimal) decimal.Decimal {
	if !r.Taxable {
		return r.Amount
	}
	return r.Amount.Mul(decimal.NewFromInt(1).Sub(taxRate))
}
