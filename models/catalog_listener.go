package models

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/lib/pq"
)

// CatalogCache is what the listener invalidates. Implemented by
// app/variations.Cache. Clear is needed because a reconnect may have
// missed notifications for any event.
type CatalogCache interface {
	InvalidateEvent(eventID uint)
	Clear()
}

// DefaultCatalogChannel is the NOTIFY channel catalog writes publish on.
// The payload is the event ID whose catalog changed.
const DefaultCatalogChannel = "catalog_changed"

// CatalogListener consumes catalog change notifications from Postgres and
// invalidates the combination cache for the affected event. Catalog
// writers (admin workflows, migrations) are expected to NOTIFY after a
// successful commit touching categories, items, properties, values,
// variations or quotas.
type CatalogListener struct {
	listener *pq.Listener
	cache    CatalogCache
	log      *slog.Logger
}

const (
	listenerMinReconnect = 10 * time.Second
	listenerMaxReconnect = time.Minute
	listenerPingInterval = 90 * time.Second
)

// NewCatalogListener connects a listener to the database and subscribes to
// the channel. Run must be called to start consuming.
func NewCatalogListener(dsn, channel string, cache CatalogCache, log *slog.Logger) (*CatalogListener, error) {
	l := &CatalogListener{
		cache: cache,
		log:   log,
	}
	l.listener = pq.NewListener(dsn, listenerMinReconnect, listenerMaxReconnect, l.onEvent)
	if err := l.listener.Listen(channel); err != nil {
		l.listener.Close()
		return nil, fmt.Errorf("listen on %q: %w", channel, err)
	}
	return l, nil
}

func (l *CatalogListener) onEvent(ev pq.ListenerEventType, err error) {
	if err != nil {
		l.log.Error("catalog listener connection event", "event", ev, "error", err)
	}
}

// Run consumes notifications until the context is cancelled. A nil
// notification signals a reconnect, after which changes may have been
// missed; the whole cache is dropped to stay correct.
func (l *CatalogListener) Run(ctx context.Context) error {
	defer l.listener.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n := <-l.listener.Notify:
			l.handle(n)
		case <-time.After(listenerPingInterval):
			if err := l.listener.Ping(); err != nil {
				l.log.Error("catalog listener ping failed", "error", err)
			}
		}
	}
}

func (l *CatalogListener) handle(n *pq.Notification) {
	if n == nil {
		l.cache.Clear()
		l.log.Warn("catalog listener reconnected, dropped cached combinations")
		return
	}
	eventID, err := strconv.ParseUint(n.Extra, 10, 64)
	if err != nil {
		l.log.Error("catalog notification with bad payload", "payload", n.Extra, "error", err)
		return
	}
	l.cache.InvalidateEvent(uint(eventID))
	l.log.Debug("catalog changed", "event_id", eventID)
}
