package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/lib/pq"
)

// Channel is the NOTIFY channel fired by the posts table trigger.
const Channel = "posts_changes"

const (
	minReconnectInterval = time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// Listener bridges PostgreSQL LISTEN/NOTIFY into the hub.
type Listener struct {
	hub *Hub
	pql *pq.Listener
}

func NewListener(dsn string, hub *Hub) (*Listener, error) {
	pql := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				slog.Error("postgres listener event", slog.Int("event", int(ev)), slog.String("error", err.Error()))
			}
		})

	if err := pql.Listen(Channel); err != nil {
		pql.Close()
		return nil, err
	}

	return &Listener{hub: hub, pql: pql}, nil
}

// Run consumes notifications until ctx is cancelled. A nil notification
// means the connection was re-established; subscribers get a synthetic
// event so they re-fetch anything missed during the outage.
func (l *Listener) Run(ctx context.Context) {
	defer l.pql.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case n := <-l.pql.Notify:
			if n == nil {
				l.hub.Publish(Event{Op: "RECONNECT"})
				continue
			}

			var ev Event
			if err := json.Unmarshal([]byte(n.Extra), &ev); err != nil {
				slog.Warn("unparseable notification payload", slog.String("payload", n.Extra))
				ev = Event{Op: "UNKNOWN"}
			}
			l.hub.Publish(ev)

		case <-time.After(pingInterval):
			if err := l.pql.Ping(); err != nil {
				slog.Error("postgres listener ping failed", slog.String("error", err.Error()))
			}
		}
	}
}
