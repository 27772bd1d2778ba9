package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Material represents a raw material from the shop's catalog (vinyl, ACM
// sheets, ink, profiles). Quote and order lines snapshot its unit cost.
type Material struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Code      string         `gorm:"size:100;unique;not null" json:"code"`
	Unit      string         `gorm:"size:50" json:"unit"`
	UnitCost  float64        `gorm:"type:decimal(15,2);default:0" json:"unit_cost"`
	Notes     *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new material
func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Material model
func (Material) TableName() string {
	return "materials"
}
