package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarginTier maps a closed cost range to a margin percentage. Tiers are kept
// densely numbered by Position (1..N) and must never overlap.
type MarginTier struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Position      int            `gorm:"not null;index" json:"position"`
	RangeStart    float64        `gorm:"type:decimal(15,2);not null" json:"range_start"`
	RangeEnd      *float64       `gorm:"type:decimal(15,2)" json:"range_end,omitempty"`
	MarginPercent float64        `gorm:"type:decimal(8,2);not null" json:"margin_percent"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Contains reports whether the tier's range contains the given cost.
// A nil RangeEnd means the range is unbounded above.
func (t *MarginTier) Contains(cost float64) bool {
	if cost < t.RangeStart {
		return false
	}
	return t.RangeEnd == nil || cost <= *t.RangeEnd
}

// Overlaps reports whether two tiers' ranges intersect. Ranges are treated as
// closed intervals, nil end meaning +infinity.
func (t *MarginTier) Overlaps(other *MarginTier) bool {
	if t.RangeEnd != nil && *t.RangeEnd < other.RangeStart {
		return false
	}
	if other.RangeEnd != nil && *other.RangeEnd < t.RangeStart {
		return false
	}
	return true
}

// BeforeCreate generates a UUID before creating a new margin tier
func (t *MarginTier) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MarginTier model
func (MarginTier) TableName() string {
	return "margin_tiers"
}

// MarkupTier maps costs up to UpperBound to a markup percentage. Selection is
// first-match by ascending Position; a nil UpperBound matches any cost. Unlike
// margin tiers there is no overlap validation, so a tier with a smaller bound
// placed after a larger one is unreachable.
type MarkupTier struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Position      int            `gorm:"not null;index" json:"position"`
	UpperBound    *float64       `gorm:"type:decimal(15,2)" json:"upper_bound,omitempty"`
	MarkupPercent float64        `gorm:"type:decimal(8,2);not null" json:"markup_percent"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Matches reports whether the tier applies to the given cost.
func (t *MarkupTier) Matches(cost float64) bool {
	return t.UpperBound == nil || cost <= *t.UpperBound
}

// BeforeCreate generates a UUID before creating a new markup tier
func (t *MarkupTier) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MarkupTier model
func (MarkupTier) TableName() string {
	return "markup_tiers"
}
