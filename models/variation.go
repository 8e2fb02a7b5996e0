package models

import (
	"github.com/shopspring/decimal"
)

// ItemVariation pins down one combination of property values for an item.
//
// Every combination of property values is sellable in principle, whether
// or not a variation record exists for it. Variation records only override
// defaults for one specific combination: a price different from the item's
// default, or Active=false to exclude the combination from sale. They are
// materialized when a combination is first attached to a quota, because
// quota membership needs a row to point at.
//
// A variation whose value set no longer covers exactly the item's current
// properties (a property was added or removed since) is stale and ignored
// by the combinator.
type ItemVariation struct {
	ID           uint                `gorm:"primaryKey"`
	ItemID       uint                `gorm:"not null;index"`
	Active       bool                `gorm:"not null;default:true"`
	DefaultPrice decimal.NullDecimal `gorm:"type:decimal(10,2)"`

	// Values holds exactly one PropertyValue per property of the item.
	Values []PropertyValue `gorm:"many2many:variation_values"`
	Quotas []Quota         `gorm:"many2many:variation_quotas"`
}

func (v *ItemVariation) TableName() string {
	return "item_variations"
}
