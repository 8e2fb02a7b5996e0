package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a sellable product (a ticket type, usually). It belongs to an
// event and may belong to a category. Whether it can currently be bought
// depends on its own active flag and sale window plus the quotas covering
// it; see app/availability.
type Item struct {
	ID           uint                `gorm:"primaryKey"`
	EventID      uint                `gorm:"not null;index"`
	Event        Event               `gorm:"foreignKey:EventID"`
	CategoryID   *uint               `gorm:"index"`
	Category     *Category           `gorm:"foreignKey:CategoryID"`
	Name         string              `gorm:"not null"`
	Active       bool                `gorm:"not null;default:true"`
	DefaultPrice decimal.Decimal     `gorm:"type:decimal(10,2);not null"`
	TaxRate      decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	Position     int                 `gorm:"not null;default:0"`

	// AvailableFrom and AvailableUntil bound the sale window. Nil means
	// unbounded on that side.
	AvailableFrom  *time.Time
	AvailableUntil *time.Time

	Properties []Property      `gorm:"foreignKey:ItemID"`
	Variations []ItemVariation `gorm:"foreignKey:ItemID"`
	Quotas     []Quota         `gorm:"many2many:item_quotas"`
}

func (i *Item) TableName() string {
	return "items"
}
