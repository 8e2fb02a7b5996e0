package models

// Event is the owning scope for items, properties and quotas.
// Catalog change notifications are keyed on its ID.
type Event struct {
	ID   uint   `gorm:"primaryKey"`
	Slug string `gorm:"uniqueIndex;not null"`
	Name string `gorm:"not null"`
}

func (e *Event) TableName() string {
	return "events"
}
