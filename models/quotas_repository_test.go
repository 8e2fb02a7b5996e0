package models

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- SQL Recorder ---

// sqlRecorder captures the SQL gorm builds. With DryRun nothing is
// executed against a database, but the trace still fires with the final
// statement and its interpolated arguments, so the counting queries the
// availability verdicts hang on can be pinned down in tests.
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Info(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Warn(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	require.NotEmpty(t, r.statements, "no statement was built")
	return r.statements[len(r.statements)-1]
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	recorder := &sqlRecorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=inventory dbname=inventory",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               recorder,
	})
	require.NoError(t, err)
	return db, recorder
}

// positionClause is how the shared position lookup must render for one
// position table: variation-less positions match through the quota's item
// set, positions with a variation through the quota's variation set.
func positionClause(table string) string {
	return "(" + table + ".variation_id IS NULL AND " + table + ".item_id IN (SELECT item_id FROM item_quotas WHERE quota_id = 7))" +
		" OR " + table + ".variation_id IN (SELECT item_variation_id FROM variation_quotas WHERE quota_id = 7)"
}

var countNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

// --- Tests ---

func TestCountOrdersQuery(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewQuotasRepository(db)

	paid, pending, err := repo.CountOrders(context.Background(), 7, countNow)
	require.NoError(t, err)
	assert.Zero(t, paid)
	assert.Zero(t, pending)

	sql := recorder.last(t)
	assert.Contains(t, sql, `JOIN orders ON orders.id = order_positions.order_id`)
	assert.Contains(t, sql, `SUM(CASE WHEN orders.status = 'paid' THEN 1 ELSE 0 END)`)
	assert.Contains(t, sql, `orders.status = 'pending' AND orders.expires >= '2026-08-24 12:00:00'`,
		"a pending order expired before now must contribute nothing")
	assert.Contains(t, sql, "COALESCE", "missing aggregates must come back as zero")
	assert.Contains(t, sql, positionClause("order_positions"))
}

func TestCountInCartsQuery(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewQuotasRepository(db)

	count, err := repo.CountInCarts(context.Background(), 7, countNow)
	require.NoError(t, err)
	assert.Zero(t, count)

	sql := recorder.last(t)
	assert.Contains(t, sql, `"cart_positions"`)
	assert.Contains(t, sql, `cart_positions.expires >= '2026-08-24 12:00:00'`,
		"an expired cart reservation must contribute nothing")
	assert.Contains(t, sql, positionClause("cart_positions"))
}

// Both counting queries must go through the same predicate definition;
// only the table name may differ.
func TestPositionLookupSharedBetweenCounts(t *testing.T) {
	for _, table := range []string{"order_positions", "cart_positions"} {
		db, recorder := newDryRunDB(t)
		db.Table(table).Scopes(positionLookup(table, 7)).Find(&[]map[string]interface{}{})
		assert.Contains(t, recorder.last(t), positionClause(table))
	}
}
