package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/config"
	"github.com/nats-io/nats.go"
)

const defaultSubjectPrefix = "activity"

// conn is the part of *nats.Conn the publisher needs.
type conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

type NATSPublisher struct {
	conn   conn
	prefix string
}

// NewPublisher connects to NATS when a url is configured and otherwise
// returns a publisher that drops every event.
func NewPublisher(cfg config.NATSConfig) (domain.EventPublisher, error) {
	if cfg.URL == "" {
		return NewNoopPublisher(), nil
	}
	nc, err := nats.Connect(cfg.URL,
		nats.Name("activitylog"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats, err: %w", err)
	}
	return newNATSPublisher(nc, cfg.SubjectPrefix), nil
}

func newNATSPublisher(c conn, prefix string) *NATSPublisher {
	if prefix == "" {
		prefix = defaultSubjectPrefix
	}
	return &NATSPublisher{conn: c, prefix: prefix}
}

func (p *NATSPublisher) subject(name string) string {
	return p.prefix + "." + name
}

func (p *NATSPublisher) publish(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s event, err: %w", name, err)
	}
	if err := p.conn.Publish(p.subject(name), payload); err != nil {
		return fmt.Errorf("publish %s, err: %w", p.subject(name), err)
	}
	return nil
}

func (p *NATSPublisher) PublishCreated(ctx context.Context, activity *domain.Activity) error {
	return p.publish(ctx, SubjectCreated, NewCreatedEvent(activity))
}

func (p *NATSPublisher) PublishCleanup(ctx context.Context, cutoff time.Time, deletedCount int64) error {
	return p.publish(ctx, SubjectCleanup, CleanupEvent{Cutoff: cutoff, DeletedCount: deletedCount})
}

// Close flushes pending messages before closing the connection.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
