package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stagepass/inventory/app/clock"
	"github.com/stagepass/inventory/models"
)

// ErrItemHasProperties is returned when an item-level quota check is
// attempted on an item that has properties. Such items are sold per
// variation; check the variation instead.
var ErrItemHasProperties = errors.New("item has properties, check its variations instead")

// ErrNoQuota is returned when an item or variation is covered by no quota
// at all. There is no meaningful verdict for it; defaulting to either
// "available" or "sold out" would be a guess with money on the line.
var ErrNoQuota = errors.New("no quota covers this item or variation")

// QuotaCounter supplies the consumption counts for one quota, evaluated
// against a single instant. The store behind it is expected to deliver a
// consistent snapshot per call; see models.QuotasRepository.
type QuotaCounter interface {
	CountOrders(ctx context.Context, quotaID uint, now time.Time) (paid, pending int64, err error)
	CountInCarts(ctx context.Context, quotaID uint, now time.Time) (int64, error)
}

// Checker answers "is this item or variation purchasable right now". It
// composes the sale-window gate with the quota verdicts of whatever quotas
// cover the item or variation.
type Checker struct {
	counter QuotaCounter
	clock   clock.Clock
}

func NewChecker(counter QuotaCounter, clk clock.Clock) *Checker {
	return &Checker{
		counter: counter,
		clock:   clk,
	}
}

// ItemOnSale reports whether the item is on sale per its own schedule:
// active, and inside [AvailableFrom, AvailableUntil] with nil bounds open.
// This is independent of quota state; purchasability needs both this and
// a quota check.
func (c *Checker) ItemOnSale(item *models.Item) bool {
	if !item.Active {
		return false
	}
	now := c.clock.Now()
	if item.AvailableFrom != nil && item.AvailableFrom.After(now) {
		return false
	}
	if item.AvailableUntil != nil && item.AvailableUntil.Before(now) {
		return false
	}
	return true
}

// CheckItem computes the quota verdict for an item without properties.
// Items with properties have no item-level verdict; their variations carry
// the quota memberships.
func (c *Checker) CheckItem(ctx context.Context, item *models.Item) (Result, error) {
	if len(item.Properties) > 0 {
		return Result{}, ErrItemHasProperties
	}
	return c.check(ctx, item.Quotas)
}

// CheckVariation computes the quota verdict for one variation.
func (c *Checker) CheckVariation(ctx context.Context, variation *models.ItemVariation) (Result, error) {
	return c.check(ctx, variation.Quotas)
}

func (c *Checker) check(ctx context.Context, quotas []models.Quota) (Result, error) {
	if len(quotas) == 0 {
		return Result{}, ErrNoQuota
	}
	now := c.clock.Now()
	results := make([]Result, len(quotas))
	for i, quota := range quotas {
		result, err := c.forQuota(ctx, &quota, now)
		if err != nil {
			return Result{}, err
		}
		results[i] = result
	}
	return Combine(results), nil
}

func (c *Checker) forQuota(ctx context.Context, quota *models.Quota, now time.Time) (Result, error) {
	// Unlimited quotas never need counting.
	if quota.Unlimited() {
		return Result{Status: StatusOK}, nil
	}
	paid, pending, err := c.counter.CountOrders(ctx, quota.ID, now)
	if err != nil {
		return Result{}, fmt.Errorf("quota %d: %w", quota.ID, err)
	}
	inCart, err := c.counter.CountInCarts(ctx, quota.ID, now)
	if err != nil {
		return Result{}, fmt.Errorf("quota %d: %w", quota.ID, err)
	}
	return ForQuota(quota.Size, Counts{Paid: paid, Pending: pending, InCart: inCart}), nil
}
