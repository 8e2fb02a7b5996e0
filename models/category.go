package models

// Category groups items for display ordering purposes.
// It has no effect on availability.
type Category struct {
	ID       uint   `gorm:"primaryKey"`
	EventID  uint   `gorm:"not null;index"`
	Event    Event  `gorm:"foreignKey:EventID"`
	Name     string `gorm:"not null"`
	Position int    `gorm:"not null;default:0"`
}

func (c *Category) TableName() string {
	return "categories"
}

// SortKey orders categories by position first, creation order second.
func (c *Category) SortKey() (int, uint) {
	return c.Position, c.ID
}

func (c *Category) Less(other *Category) bool {
	pa, ia := c.SortKey()
	pb, ib := other.SortKey()
	if pa != pb {
		return pa < pb
	}
	return ia < ib
}
