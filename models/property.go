package models

// Property is a named axis of variation for an item, e.g. "Size" for a
// t-shirt. Its values span one dimension of the item's combination space.
type Property struct {
	ID      uint   `gorm:"primaryKey"`
	EventID uint   `gorm:"not null;index"`
	Event   Event  `gorm:"foreignKey:EventID"`
	ItemID  *uint  `gorm:"index"`
	Name    string `gorm:"not null"`

	Values []PropertyValue `gorm:"foreignKey:PropertyID"`
}

func (p *Property) TableName() string {
	return "properties"
}

// PropertyValue is one allowed value of a property, e.g. "M" for "Size".
type PropertyValue struct {
	ID         uint   `gorm:"primaryKey"`
	PropertyID uint   `gorm:"not null;index"`
	Value      string `gorm:"not null"`
	Position   int    `gorm:"not null;default:0"`
}

func (v *PropertyValue) TableName() string {
	return "property_values"
}

// SortKey orders values by declared position first, creation order second.
func (v *PropertyValue) SortKey() (int, uint) {
	return v.Position, v.ID
}

func (v *PropertyValue) Less(other *PropertyValue) bool {
	pa, ia := v.SortKey()
	pb, ib := other.SortKey()
	if pa != pb {
		return pa < pb
	}
	return ia < ib
}
