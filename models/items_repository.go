package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrItemNotFound is returned when an item is not found.
var ErrItemNotFound = errors.New("item not found")

// ErrVariationNotFound is returned when a variation is not found.
var ErrVariationNotFound = errors.New("variation not found")

type ItemsRepository struct {
	db *gorm.DB
}

func NewItemsRepository(db *gorm.DB) *ItemsRepository {
	return &ItemsRepository{
		db: db,
	}
}

// GetByID loads an item with everything the combinator and the
// availability checker need: properties with their values, variations
// with their value sets and quota memberships, and the item's own quotas.
func (r *ItemsRepository) GetByID(ctx context.Context, id uint) (*Item, error) {
	var item Item
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Properties.Values").
		Preload("Variations.Values").
		Preload("Variations.Quotas").
		Preload("Quotas").
		First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// GetAllForEvent returns the event's items in catalog order.
func (r *ItemsRepository) GetAllForEvent(ctx context.Context, eventID uint) ([]Item, error) {
	var items []Item
	if err := r.db.WithContext(ctx).
		Joins("LEFT JOIN categories ON categories.id = items.category_id").
		Where("items.event_id = ?", eventID).
		Order("categories.position, categories.id, items.position, items.id").
		Preload("Category").
		Preload("Properties.Values").
		Preload("Variations.Values").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetVariation loads a single variation with its value set and quota
// memberships.
func (r *ItemsRepository) GetVariation(ctx context.Context, id uint) (*ItemVariation, error) {
	var variation ItemVariation
	if err := r.db.WithContext(ctx).
		Preload("Values").
		Preload("Quotas").
		First(&variation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariationNotFound
		}
		return nil, err
	}
	return &variation, nil
}
