package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default percentages applied when the configuration row is lazily created.
const (
	DefaultCommissionPercent = 5.0
	DefaultTaxPercent        = 12.0
	DefaultInterestPercent   = 2.0
	DefaultMarkupPercent     = 40.0
)

// PricingConfig is the single-row operating-cost configuration feeding the
// price formation pipeline. At most one row exists; it is created with
// defaults on first read. All percentages are whole numbers (12 means 12%).
type PricingConfig struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	AverageRevenue       float64        `gorm:"type:decimal(15,2);default:0" json:"average_revenue"`
	OperatingCost        float64        `gorm:"type:decimal(15,2);default:0" json:"operating_cost"`
	ProductiveCost       *float64       `gorm:"type:decimal(15,2)" json:"productive_cost,omitempty"`
	CommissionPercent    float64        `gorm:"type:decimal(8,2);default:5" json:"commission_percent"`
	TaxPercent           float64        `gorm:"type:decimal(8,2);default:12" json:"tax_percent"`
	InterestPercent      float64        `gorm:"type:decimal(8,2);default:2" json:"interest_percent"`
	DefaultMarkupPercent float64        `gorm:"type:decimal(8,2);default:40" json:"default_markup_percent"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating the config row
func (c *PricingConfig) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PricingConfig model
func (PricingConfig) TableName() string {
	return "pricing_configs"
}
