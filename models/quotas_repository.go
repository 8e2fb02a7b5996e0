package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrQuotaNotFound is returned when a quota is not found.
var ErrQuotaNotFound = errors.New("quota not found")

type QuotasRepository struct {
	db *gorm.DB
}

func NewQuotasRepository(db *gorm.DB) *QuotasRepository {
	return &QuotasRepository{
		db: db,
	}
}

// positionLookup is the single definition of "does a position belong to
// this quota": either the position has no variation and its item is
// directly in the quota's item set, or it has a variation and that
// variation is directly in the quota's variation set. Both order and cart
// counting go through this scope; table names the position table being
// filtered.
func positionLookup(table string, quotaID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		cond := fmt.Sprintf(
			"(%[1]s.variation_id IS NULL AND %[1]s.item_id IN (SELECT item_id FROM item_quotas WHERE quota_id = ?))"+
				" OR %[1]s.variation_id IN (SELECT item_variation_id FROM variation_quotas WHERE quota_id = ?)",
			table,
		)
		return db.Where(cond, quotaID, quotaID)
	}
}

func (r *QuotasRepository) GetByID(ctx context.Context, id uint) (*Quota, error) {
	var quota Quota
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Variations").
		First(&quota, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuotaNotFound
		}
		return nil, err
	}
	return &quota, nil
}

// CountOrders counts order positions belonging to the quota, split into
// paid and still-pending. Pending positions whose order expired before now
// do not count. Missing aggregates come back as zero, never null.
func (r *QuotasRepository) CountOrders(ctx context.Context, quotaID uint, now time.Time) (paid, pending int64, err error) {
	var row struct {
		Paid    int64
		Pending int64
	}
	err = r.db.WithContext(ctx).
		Model(&OrderPosition{}).
		Select(
			"COALESCE(SUM(CASE WHEN orders.status = ? THEN 1 ELSE 0 END), 0) AS paid, "+
				"COALESCE(SUM(CASE WHEN orders.status = ? AND orders.expires >= ? THEN 1 ELSE 0 END), 0) AS pending",
			OrderStatusPaid, OrderStatusPending, now,
		).
		Joins("JOIN orders ON orders.id = order_positions.order_id").
		Scopes(positionLookup("order_positions", quotaID)).
		Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("count order positions: %w", err)
	}
	return row.Paid, row.Pending, nil
}

// CountInCarts counts unexpired cart reservations belonging to the quota.
func (r *QuotasRepository) CountInCarts(ctx context.Context, quotaID uint, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&CartPosition{}).
		Scopes(positionLookup("cart_positions", quotaID)).
		Where("cart_positions.expires >= ?", now).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count cart positions: %w", err)
	}
	return count, nil
}
