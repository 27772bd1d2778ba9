package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a confirmed job (pedido) derived from an approved quote.
// Its lines are the budget the warehouse reconciliation is measured against.
type Order struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	QuoteID      *uuid.UUID       `gorm:"type:uuid;uniqueIndex" json:"quote_id,omitempty"`
	Date         time.Time        `gorm:"type:date;not null" json:"date"`
	Reference    string           `gorm:"size:100;unique;not null" json:"reference"`
	CustomerName string           `gorm:"size:255" json:"customer_name"`
	TotalBudget  float64          `gorm:"type:decimal(15,2);default:0" json:"total_budget"`
	Status       enum.OrderStatus `gorm:"default:0" json:"status"`
	Note         *string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User      User            `gorm:"foreignKey:UserID" json:"-"`
	Quote     *Quote          `gorm:"foreignKey:QuoteID" json:"-"`
	Materials []OrderMaterial `gorm:"foreignKey:OrderID" json:"materials,omitempty"`
	Expenses  []OrderExpense  `gorm:"foreignKey:OrderID" json:"expenses,omitempty"`
	Extras    []OrderExtra    `gorm:"foreignKey:OrderID" json:"extras,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderMaterial is a budgeted material line in an order
type OrderMaterial struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	MaterialID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"material_id"`
	MaterialName string         `gorm:"size:255" json:"material_name"`
	Quantity     float64        `gorm:"type:decimal(15,4);not null" json:"quantity"`
	UnitCost     float64        `gorm:"type:decimal(15,2);not null" json:"unit_cost"`
	SubTotal     float64        `gorm:"type:decimal(15,2);not null" json:"sub_total"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order material line
func (om *OrderMaterial) BeforeCreate(tx *gorm.DB) error {
	if om.ID == uuid.Nil {
		om.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderMaterial model
func (OrderMaterial) TableName() string {
	return "order_materials"
}

// OrderExpense is a budgeted expense line in an order
type OrderExpense struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Amount      float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order expense line
func (oe *OrderExpense) BeforeCreate(tx *gorm.DB) error {
	if oe.ID == uuid.Nil {
		oe.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderExpense model
func (OrderExpense) TableName() string {
	return "order_expenses"
}

// OrderExtra is a budgeted extra-option line in an order
type OrderExtra struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	OptionID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"option_id"`
	OptionName  string         `gorm:"size:255" json:"option_name"`
	Kind        enum.ExtraKind `gorm:"default:0" json:"kind"`
	StringValue *string        `gorm:"size:255" json:"string_value,omitempty"`
	Amount1     *float64       `gorm:"type:decimal(15,4)" json:"amount1,omitempty"`
	Amount2     *float64       `gorm:"type:decimal(15,4)" json:"amount2,omitempty"`
	SubTotal    float64        `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order extra line
func (ox *OrderExtra) BeforeCreate(tx *gorm.DB) error {
	if ox.ID == uuid.Nil {
		ox.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderExtra model
func (OrderExtra) TableName() string {
	return "order_extras"
}
