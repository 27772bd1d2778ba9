package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// WarehouseRecord (almoxarifado) tracks actual consumption against an order.
// One record per order; finalizing it produces the reconciliation report.
type WarehouseRecord struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	OrderID         uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	Status          enum.WarehouseStatus `gorm:"default:0" json:"status"`
	FinalizedAt     *time.Time           `json:"finalized_at,omitempty"`
	FinalizedByID   *uuid.UUID           `gorm:"type:uuid" json:"finalized_by_id,omitempty"`
	FinalizedByName string               `gorm:"size:255" json:"finalized_by_name,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	DeletedAt       gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Order     Order              `gorm:"foreignKey:OrderID" json:"-"`
	Materials []RealizedMaterial `gorm:"foreignKey:WarehouseRecordID" json:"materials,omitempty"`
	Expenses  []RealizedExpense  `gorm:"foreignKey:WarehouseRecordID" json:"expenses,omitempty"`
	Extras    []RealizedExtra    `gorm:"foreignKey:WarehouseRecordID" json:"extras,omitempty"`
}

// BeforeCreate generates a UUID before creating a new warehouse record
func (w *WarehouseRecord) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WarehouseRecord model
func (WarehouseRecord) TableName() string {
	return "warehouse_records"
}

// RealizedMaterial is the actually-consumed counterpart of an order material line
type RealizedMaterial struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	WarehouseRecordID uuid.UUID      `gorm:"type:uuid;not null;index" json:"warehouse_record_id"`
	OrderMaterialID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_material_id"`
	Quantity          float64        `gorm:"type:decimal(15,4);not null" json:"quantity"`
	UnitCost          float64        `gorm:"type:decimal(15,2);not null" json:"unit_cost"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new realized material line
func (rm *RealizedMaterial) BeforeCreate(tx *gorm.DB) error {
	if rm.ID == uuid.Nil {
		rm.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RealizedMaterial model
func (RealizedMaterial) TableName() string {
	return "realized_materials"
}

// RealizedExpense is the actually-incurred counterpart of an order expense line
type RealizedExpense struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	WarehouseRecordID uuid.UUID      `gorm:"type:uuid;not null;index" json:"warehouse_record_id"`
	OrderExpenseID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_expense_id"`
	Amount            float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new realized expense line
func (re *RealizedExpense) BeforeCreate(tx *gorm.DB) error {
	if re.ID == uuid.Nil {
		re.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RealizedExpense model
func (RealizedExpense) TableName() string {
	return "realized_expenses"
}

// RealizedExtra is the actually-incurred counterpart of an order extra line.
// Amount1/Amount2 replace the budgeted values; percent extras keep the
// budgeted base when reconciled.
type RealizedExtra struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	WarehouseRecordID uuid.UUID      `gorm:"type:uuid;not null;index" json:"warehouse_record_id"`
	OrderExtraID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_extra_id"`
	StringValue       *string        `gorm:"size:255" json:"string_value,omitempty"`
	Amount1           *float64       `gorm:"type:decimal(15,4)" json:"amount1,omitempty"`
	Amount2           *float64       `gorm:"type:decimal(15,4)" json:"amount2,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new realized extra line
func (rx *RealizedExtra) BeforeCreate(tx *gorm.DB) error {
	if rx.ID == uuid.Nil {
		rx.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RealizedExtra model
func (RealizedExtra) TableName() string {
	return "realized_extras"
}
