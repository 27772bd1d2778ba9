package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ExtraOption is a configurable surcharge/adjustment definition that quote and
// order lines reference. The Kind decides how a line's values are interpreted.
type ExtraOption struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Kind      enum.ExtraKind `gorm:"default:0" json:"kind"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new extra option
func (e *ExtraOption) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ExtraOption model
func (ExtraOption) TableName() string {
	return "extra_options"
}
