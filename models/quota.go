package models

// Quota is a pool of capacity shared by one or more items or variations.
// A quota of 500 on all items of an event caps total sales at 500; an
// additional quota of 100 on the VIP item caps VIP sales at 100 within
// that total.
//
// Size is the capacity; nil means unlimited.
type Quota struct {
	ID      uint   `gorm:"primaryKey"`
	EventID uint   `gorm:"not null;index"`
	Event   Event  `gorm:"foreignKey:EventID"`
	Name    string `gorm:"not null"`
	Size    *int64

	Items      []Item          `gorm:"many2many:item_quotas"`
	Variations []ItemVariation `gorm:"many2many:variation_quotas"`
}

func (q *Quota) TableName() string {
	return "quotas"
}

// Unlimited reports whether this quota never runs out.
func (q *Quota) Unlimited() bool {
	return q.Size == nil
}
