package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// QueryActivityOptions carries a filtered, paginated query. Repositories
// fill Result (sorted by timestamp desc, ties in insertion order) and Total
// (the match count ignoring Skip and Limit).
type QueryActivityOptions struct {
	Filter Filter
	Skip   int64
	Limit  int64
	Result []*Activity
	Total  int64
}

type Repository interface {
	CreateActivity(ctx context.Context, activity *Activity) error
	QueryActivities(ctx context.Context, opt *QueryActivityOptions) error
	GetActivity(ctx context.Context, id bson.ObjectID) (*Activity, error)
	DeleteActivitiesBefore(ctx context.Context, cutoff time.Time) (int64, error)
	EnsureIndexes(ctx context.Context) error
	Close(ctx context.Context) error
}

type Service interface {
	CreateActivity(ctx context.Context, activity *Activity) error
	ListActivities(ctx context.Context, filter Filter, page, pageSize int) (*ActivityPage, error)
	GetActivity(ctx context.Context, id string) (*Activity, error)
	DeleteActivitiesOlderThan(ctx context.Context, days int) (int64, error)
}

// RecordCache holds immutable records by their hex id.
type RecordCache interface {
	Get(ctx context.Context, id string) (*Activity, bool, error)
	Set(ctx context.Context, activity *Activity) error
	Purge(ctx context.Context) error
}

// EventPublisher announces store changes to other services. Delivery is best effort.
type EventPublisher interface {
	PublishCreated(ctx context.Context, activity *Activity) error
	PublishCleanup(ctx context.Context, cutoff time.Time, deletedCount int64) error
	Close() error
}
