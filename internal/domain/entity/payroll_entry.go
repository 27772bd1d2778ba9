package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PayrollEntry is one profession's payroll line, used by the price formation
// pipeline to derive the productive-minute cost.
type PayrollEntry struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Profession       string         `gorm:"size:255;not null" json:"profession"`
	BaseSalary       float64        `gorm:"type:decimal(15,2);not null" json:"base_salary"`
	Headcount        int            `gorm:"not null" json:"headcount"`
	TotalWithCharges float64        `gorm:"type:decimal(15,2);not null" json:"total_with_charges"`
	IsProductive     bool           `gorm:"default:true" json:"is_productive"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payroll entry
func (p *PayrollEntry) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PayrollEntry model
func (PayrollEntry) TableName() string {
	return "payroll_entries"
}
