package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartPosition is a time-limited hold on one unit, created when a buyer
// puts a ticket in their cart. It counts against quotas until Expires and
// is simply ignored afterwards; nothing deletes it on expiry.
type CartPosition struct {
	ID          uint            `gorm:"primaryKey"`
	CartID      string          `gorm:"not null;index"`
	EventID     uint            `gorm:"not null;index"`
	ItemID      uint            `gorm:"not null;index"`
	Item        Item            `gorm:"foreignKey:ItemID"`
	VariationID *uint           `gorm:"index"`
	Variation   *ItemVariation  `gorm:"foreignKey:VariationID"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Expires     time.Time       `gorm:"not null;index"`
}

func (p *CartPosition) TableName() string {
	return "cart_positions"
}

// NewCartID returns a fresh identifier for a buyer's cart session.
func NewCartID() string {
	return uuid.NewString()
}
