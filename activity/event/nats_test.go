package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type published struct {
	subject string
	data    []byte
}

type fakeConn struct {
	messages []published
	err      error
	drained  bool
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, published{subject: subject, data: data})
	return nil
}

func (f *fakeConn) Drain() error {
	f.drained = true
	return nil
}

func TestPublishCreated(t *testing.T) {
	fc := &fakeConn{}
	p := newNATSPublisher(fc, "")
	a := &domain.Activity{
		ID:         bson.NewObjectID(),
		UserID:     "user123",
		Action:     domain.ActionLogin,
		Status:     domain.StatusSuccess,
		ResourceID: "r-1",
		Timestamp:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.PublishCreated(context.Background(), a))
	require.Len(t, fc.messages, 1)
	assert.Equal(t, "activity.created", fc.messages[0].subject)

	var evt CreatedEvent
	require.NoError(t, json.Unmarshal(fc.messages[0].data, &evt))
	assert.Equal(t, a.ID.Hex(), evt.ID)
	assert.Equal(t, "user123", evt.UserID)
	assert.Equal(t, "login", evt.Action)
	assert.Equal(t, "r-1", evt.ResourceID)
	assert.True(t, a.Timestamp.Equal(evt.Timestamp))
}

func TestPublishCleanup(t *testing.T) {
	fc := &fakeConn{}
	p := newNATSPublisher(fc, "audit")
	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, p.PublishCleanup(context.Background(), cutoff, 12))
	require.Len(t, fc.messages, 1)
	assert.Equal(t, "audit.cleanup", fc.messages[0].subject)
	assert.JSONEq(t, `{"cutoff":"2025-01-01T00:00:00Z","deletedCount":12}`, string(fc.messages[0].data))

	require.NoError(t, p.Close())
	assert.True(t, fc.drained)
}

func TestPublishErrors(t *testing.T) {
	fc := &fakeConn{err: errors.New("nats: connection closed")}
	p := newNATSPublisher(fc, "")
	err := p.PublishCleanup(context.Background(), time.Now(), 1)
	assert.ErrorContains(t, err, "activity.cleanup")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = newNATSPublisher(&fakeConn{}, "").PublishCreated(ctx, &domain.Activity{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewPublisherWithoutURLIsNoop(t *testing.T) {
	p, err := NewPublisher(config.NATSConfig{})
	require.NoError(t, err)
	assert.NoError(t, p.PublishCreated(context.Background(), &domain.Activity{}))
	assert.NoError(t, p.PublishCleanup(context.Background(), time.Now(), 0))
	assert.NoError(t, p.Close())
}
