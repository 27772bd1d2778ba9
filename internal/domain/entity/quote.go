package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Quote represents a priced proposal (orçamento) for a client
type Quote struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Date           time.Time        `gorm:"type:date;not null" json:"date"`
	Reference      string           `gorm:"size:100;unique;not null" json:"reference"`
	CustomerName   string           `gorm:"size:255" json:"customer_name"`
	TotalBudget    float64          `gorm:"type:decimal(15,2);default:0" json:"total_budget"`
	SuggestedPrice *float64         `gorm:"type:decimal(15,2)" json:"suggested_price,omitempty"`
	Status         enum.QuoteStatus `gorm:"default:0" json:"status"`
	Note           *string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Materials []QuoteMaterial `gorm:"foreignKey:QuoteID" json:"materials,omitempty"`
	Expenses  []QuoteExpense  `gorm:"foreignKey:QuoteID" json:"expenses,omitempty"`
	Extras    []QuoteExtra    `gorm:"foreignKey:QuoteID" json:"extras,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quote
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// QuoteMaterial is a budgeted material line in a quote
type QuoteMaterial struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	QuoteID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"quote_id"`
	MaterialID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"material_id"`
	MaterialName string         `gorm:"size:255" json:"material_name"`
	Quantity     float64        `gorm:"type:decimal(15,4);not null" json:"quantity"`
	UnitCost     float64        `gorm:"type:decimal(15,2);not null" json:"unit_cost"`
	SubTotal     float64        `gorm:"type:decimal(15,2);not null" json:"sub_total"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new quote material line
func (qm *QuoteMaterial) BeforeCreate(tx *gorm.DB) error {
	if qm.ID == uuid.Nil {
		qm.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuoteMaterial model
func (QuoteMaterial) TableName() string {
	return "quote_materials"
}

// QuoteExpense is a budgeted expense line in a quote
type QuoteExpense struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	QuoteID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"quote_id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Amount      float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new quote expense line
func (qe *QuoteExpense) BeforeCreate(tx *gorm.DB) error {
	if qe.ID == uuid.Nil {
		qe.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuoteExpense model
func (QuoteExpense) TableName() string {
	return "quote_expenses"
}

// QuoteExtra is a budgeted extra-option line in a quote. StringValue, Amount1
// and Amount2 are interpreted according to the option's kind.
type QuoteExtra struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	QuoteID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"quote_id"`
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

// BeforeCreate generates a UUID before creating a new quote extra line
func (qx *QuoteExtra) BeforeCreate(tx *gorm.DB) error {
	if qx.ID == uuid.Nil {
		qx.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuoteExtra model
func (QuoteExtra) TableName() string {
	return "quote_extras"
}
