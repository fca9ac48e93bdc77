package repository

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/activitylog/api/activity/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// memoryRepo keeps activities in insertion order, for tests and
// single-process deployments.
type memoryRepo struct {
	mu         sync.RWMutex
	activities []*domain.Activity
}

func NewMemoryRepository() domain.Repository {
	return &memoryRepo{}
}

func cloneActivity(a *domain.Activity) *domain.Activity {
	c := *a
	c.Details = maps.Clone(a.Details)
	return &c
}

func (r *memoryRepo) EnsureIndexes(ctx context.Context) error {
	return nil
}

func (r *memoryRepo) CreateActivity(ctx context.Context, activity *domain.Activity) error {
	if activity == nil {
		return errors.New("nil activity")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if activity.ID.IsZero() {
		activity.ID = bson.NewObjectID()
	}
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now().UTC().Truncate(time.Millisecond)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = append(r.activities, cloneActivity(activity))
	return nil
}

func (r *memoryRepo) QueryActivities(ctx context.Context, opt *domain.QueryActivityOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	matched := make([]*domain.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		if opt.Filter.Match(a) {
			matched = append(matched, a)
		}
	}
	r.mu.RUnlock()

	// stable sort keeps insertion order among equal timestamps
	slices.SortStableFunc(matched, func(a, b *domain.Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	opt.Total = int64(len(matched))
	start := min(max(opt.Skip, 0), opt.Total)
	end := opt.Total
	if opt.Limit > 0 && opt.Limit < opt.Total-start {
		end = start + opt.Limit
	}

	result := make([]*domain.Activity, 0, end-start)
	for _, a := range matched[start:end] {
		result = append(result, cloneActivity(a))
	}
	opt.Result = result
	return nil
}

func (r *memoryRepo) GetActivity(ctx context.Context, id bson.ObjectID) (*domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.activities {
		if a.ID == id {
			return cloneActivity(a), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) DeleteActivitiesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	before := len(r.activities)
	r.activities = slices.DeleteFunc(r.activities, func(a *domain.Activity) bool {
		return a.Timestamp.Before(cutoff)
	})
	return int64(before - len(r.activities)), nil
}

func (r *memoryRepo) Close(ctx context.Context) error {
	return nil
}
