package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CampaignType represents the channel a campaign runs on.
type CampaignType string

const (
	CampaignTypeEmail      CampaignType = "email"
	CampaignTypeSocial     CampaignType = "social"
	CampaignTypePaidAds    CampaignType = "paid_ads"
	CampaignTypeInfluencer CampaignType = "influencer"
	CampaignTypePR         CampaignType = "pr"
	CampaignTypeEvents     CampaignType = "events"
	CampaignTypeOther      CampaignType = "other"
)

// CampaignStatus represents the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// MarketingCampaign represents a marketing campaign for one artist.
// Goals and Metrics hold matching keys; a performance score compares them.
type MarketingCampaign struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	ArtistID    uuid.UUID       `json:"artistId" gorm:"type:uuid;not null;index"`
	CreatedBy   uuid.UUID       `json:"createdBy" gorm:"type:uuid;not null;index"`
	Name        string          `json:"name" gorm:"size:200;not null"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	Type        CampaignType    `json:"type" gorm:"type:varchar(20);not null;index"`
	Status      CampaignStatus  `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	Budget      decimal.Decimal `json:"budget" gorm:"type:decimal(12,2);not null;default:0"`
	SpentAmount decimal.Decimal `json:"spentAmount" gorm:"type:decimal(12,2);not null;default:0"`
	StartDate   time.Time       `json:"startDate" gorm:"not null"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	Goals       JSONMap         `json:"goals" gorm:"type:jsonb"`
	Metrics     JSONMap         `json:"metrics" gorm:"type:jsonb"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	// Relations
	Artist  *Artist `json:"-" gorm:"foreignKey:ArtistID"`
	Creator *User   `json:"-" gorm:"foreignKey:CreatedBy"`
}

// BeforeCreate sets the UUID before creating the record.
func (c *MarketingCampaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeSave clamps overspend to the budget instead of rejecting the write.
func (c *MarketingCampaign) BeforeSave(tx *gorm.DB) error {
	if c.SpentAmount.GreaterThan(c.Budget) {
		c.SpentAmount = c.Budget
	}
	return nil
}

// RemainingBudget returns budget minus spend.
func (c *MarketingCampaign) RemainingBudget() decimal.Decimal {
	return c.Budget.Sub(c.SpentAmount)
}

// BudgetUsage returns the spend as a percentage of budget, 0 for a zero budget.
func (c *MarketingCampaign) BudgetUsage() float64 {
	if !c.Budget.IsPositive() {
		return 0
	}
	usage, _ := c.SpentAmount.Div(c.Budget).Mul(decimal.NewFromInt(100)).Float64()
	return usage
}

// IsRunning reports whether the campaign is active within its date window.
func (c *MarketingCampaign) IsRunning(now time.Time) bool {
	if c.Status != CampaignStatusActive || c.StartDate.After(now) {
		return false
	}
	return c.EndDate == nil || !c.EndDate.Before(now)
}

// PerformanceScore averages metric/goal ratios as a 0-100+ score. Goals with
// no matching metric, or non-positive targets, are skipped.
func (c *MarketingCampaign) PerformanceScore() int {
	var total float64
	var count int
	for key, goal := range c.Goals {
		target, ok := toFloat(goal)
		if !ok || target <= 0 {
			continue
		}
		actual, ok := toFloat(c.Metrics[key])
		if !ok {
			continue
		}
		total += actual / target * 100
		count++
	}
	if count == 0 {
		return 0
	}
	return int(total/float64(count) + 0.5)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
