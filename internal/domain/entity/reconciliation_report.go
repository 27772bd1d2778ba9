package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// CategoryVariance is the budget-vs-actual summary for one line category
type CategoryVariance struct {
	Budgeted   float64 `gorm:"type:decimal(15,2);default:0" json:"budgeted"`
	Realized   float64 `gorm:"type:decimal(15,2);default:0" json:"realized"`
	Difference float64 `gorm:"type:decimal(15,2);default:0" json:"difference"`
	Percentage float64 `gorm:"type:decimal(8,2);default:0" json:"percentage"`
}

// ReconciliationLine is one budgeted line joined to its realized counterpart
type ReconciliationLine struct {
	Category   string              `json:"category"`
	RefID      uuid.UUID           `json:"ref_id"`
	Name       string              `json:"name"`
	Budgeted   float64             `json:"budgeted"`
	Realized   float64             `json:"realized"`
	Difference float64             `json:"difference"`
	Percentage float64             `json:"percentage"`
	Status     enum.VarianceStatus `json:"status"`
}

// ReconciliationReport is the persisted snapshot of one finalize event,
// keyed one-to-one to the warehouse record it reconciles. Re-finalizing
// overwrites it in place.
type ReconciliationReport struct {
	ID                uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	WarehouseRecordID uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex" json:"warehouse_record_id"`
	Materials         CategoryVariance     `gorm:"embedded;embeddedPrefix:materials_" json:"materials"`
	Expenses          CategoryVariance     `gorm:"embedded;embeddedPrefix:expenses_" json:"expenses"`
	Extras            CategoryVariance     `gorm:"embedded;embeddedPrefix:extras_" json:"extras"`
	Total             CategoryVariance     `gorm:"embedded;embeddedPrefix:total_" json:"total"`
	Analysis          []ReconciliationLine `gorm:"serializer:json" json:"analysis"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
	DeletedAt         gorm.DeletedAt       `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new reconciliation report
func (r *ReconciliationReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReconciliationReport model
func (ReconciliationReport) TableName() string {
	return "reconciliation_reports"
}
