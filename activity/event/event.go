package event

import (
	"context"
	"time"

	"github.com/activitylog/api/activity/domain"
)

const (
	SubjectCreated = "created"
	SubjectCleanup = "cleanup"
)

type CreatedEvent struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Action       string    `json:"action"`
	Status       string    `json:"status"`
	ResourceType string    `json:"resourceType,omitempty"`
	ResourceID   string    `json:"resourceId,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type CleanupEvent struct {
	Cutoff       time.Time `json:"cutoff"`
	DeletedCount int64     `json:"deletedCount"`
}

func NewCreatedEvent(a *domain.Activity) CreatedEvent {
	return CreatedEvent{
		ID:           a.ID.Hex(),
		UserID:       a.UserID,
		Action:       string(a.Action),
		Status:       string(a.Status),
		ResourceType: a.ResourceType,
		ResourceID:   a.ResourceID,
		Timestamp:    a.Timestamp,
	}
}

type noopPublisher struct{}

func NewNoopPublisher() domain.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishCreated(context.Context, *domain.Activity) error { return nil }

func (noopPublisher) PublishCleanup(context.Context, time.Time, int64) error { return nil }

func (noopPublisher) Close() error { return nil }
