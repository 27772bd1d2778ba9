package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// AuditLog is one entry of the mutation audit trail. Writes are best-effort:
// a failed audit insert never fails the operation being audited.
type AuditLog struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ActorID     uuid.UUID        `gorm:"type:uuid;index" json:"actor_id"`
	ActorName   string           `gorm:"size:255" json:"actor_name"`
	Action      enum.AuditAction `gorm:"size:20;not null;index" json:"action"`
	EntityType  string           `gorm:"size:100;not null;index" json:"entity_type"`
	EntityID    string           `gorm:"size:100;index" json:"entity_id"`
	Description string           `gorm:"size:500" json:"description"`
	Detail      string           `gorm:"type:text" json:"detail,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new audit log entry
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
