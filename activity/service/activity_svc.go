package service

import (
	"context"
	"time"

	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/pkg/logger"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	opCreate  = "create"
	opList    = "list"
	opGet     = "get"
	opCleanup = "cleanup"
)

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func (svc *Service) storeError(ctx context.Context, op string, err error) error {
	svc.metricCollector.ObserveStoreError(op)
	logger.Logger(ctx).Error().Stack().Err(errors.WithStack(err)).Str("op", op).Msg("activity store operation failed")
	return domain.NewStoreError(op, err)
}

// CreateActivity validates, completes and persists activity. On success
// activity holds the stored record.
func (svc *Service) CreateActivity(ctx context.Context, activity *domain.Activity) error {
	ctx, span := svc.tracer.Start(ctx, "activity.create")
	defer span.End()

	if activity == nil {
		err := domain.NewValidationError("activity", "activity is required")
		failSpan(span, err)
		return err
	}
	activity.Normalize(svc.now())
	if err := activity.Validate(); err != nil {
		failSpan(span, err)
		return err
	}
	activity.ID = bson.NewObjectID()
	span.SetAttributes(
		attribute.String("activity.user_id", activity.UserID),
		attribute.String("activity.action", string(activity.Action)),
	)

	if err := svc.Repo.CreateActivity(ctx, activity); err != nil {
		failSpan(span, err)
		return svc.storeError(ctx, opCreate, err)
	}
	svc.metricCollector.ObserveCreated(string(activity.Action))

	if err := svc.publisher().PublishCreated(ctx, activity); err != nil {
		logger.Logger(ctx).Warn().Err(err).Str("activity_id", activity.ID.Hex()).Msg("publish activity created event failed")
	}
	return nil
}

func (svc *Service) ListActivities(ctx context.Context, filter domain.Filter, page, pageSize int) (*domain.ActivityPage, error) {
	ctx, span := svc.tracer.Start(ctx, "activity.list")
	defer span.End()

	if err := filter.Validate(); err != nil {
		failSpan(span, err)
		return nil, err
	}
	if filter.Kind == domain.FilterByDateRange {
		filter.Start = filter.Start.UTC().Truncate(time.Millisecond)
		filter.End = filter.End.UTC().Truncate(time.Millisecond)
	}
	req := domain.NewPageRequest(page, pageSize, svc.maxPageSize)
	span.SetAttributes(
		attribute.String("activity.filter", filter.Kind.String()),
		attribute.Int("activity.page", req.Page),
		attribute.Int("activity.page_size", req.PageSize),
	)

	opt := &domain.QueryActivityOptions{
		Filter: filter,
		Skip:   req.Skip(),
		Limit:  int64(req.PageSize),
	}
	if err := svc.Repo.QueryActivities(ctx, opt); err != nil {
		failSpan(span, err)
		return nil, svc.storeError(ctx, opList, err)
	}

	data := opt.Result
	if data == nil {
		data = []*domain.Activity{}
	}
	return &domain.ActivityPage{
		Data:       data,
		Pagination: domain.NewPagination(opt.Total, req),
	}, nil
}

func (svc *Service) GetActivity(ctx context.Context, id string) (*domain.Activity, error) {
	ctx, span := svc.tracer.Start(ctx, "activity.get")
	defer span.End()

	oid, err := domain.ParseID(id)
	if err != nil {
		failSpan(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("activity.id", oid.Hex()))

	cached, hit, err := svc.cache().Get(ctx, oid.Hex())
	if err != nil {
		logger.Logger(ctx).Warn().Err(err).Str("activity_id", oid.Hex()).Msg("read activity cache failed")
	}
	svc.metricCollector.ObserveCache(hit)
	if hit {
		return cached, nil
	}

	activity, err := svc.Repo.GetActivity(ctx, oid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		failSpan(span, err)
		return nil, svc.storeError(ctx, opGet, err)
	}

	if err := svc.cache().Set(ctx, activity); err != nil {
		logger.Logger(ctx).Warn().Err(err).Str("activity_id", oid.Hex()).Msg("write activity cache failed")
	}
	return activity, nil
}

// DeleteActivitiesOlderThan removes every activity with a timestamp strictly
// before now minus days and reports how many were removed.
func (svc *Service) DeleteActivitiesOlderThan(ctx context.Context, days int) (int64, error) {
	ctx, span := svc.tracer.Start(ctx, "activity.cleanup")
	defer span.End()

	if days <= 0 {
		err := domain.NewValidationError("days", "days must be a positive integer")
		failSpan(span, err)
		return 0, err
	}
	// in UTC AddDate is exactly days*24h, without the Duration overflow; stores keep ms
	cutoff := svc.now().UTC().AddDate(0, 0, -days).Truncate(time.Millisecond)
	span.SetAttributes(
		attribute.Int("activity.days", days),
		attribute.String("activity.cutoff", cutoff.Format(time.RFC3339)),
	)

	deleted, err := svc.Repo.DeleteActivitiesBefore(ctx, cutoff)
	if err != nil {
		failSpan(span, err)
		return 0, svc.storeError(ctx, opCleanup, err)
	}
	span.SetAttributes(attribute.Int64("activity.deleted", deleted))
	svc.metricCollector.ObserveDeleted(deleted)

	if err := svc.cache().Purge(ctx); err != nil {
		logger.Logger(ctx).Warn().Err(err).Msg("purge activity cache failed")
	}
	if err := svc.publisher().PublishCleanup(ctx, cutoff, deleted); err != nil {
		logger.Logger(ctx).Warn().Err(err).Msg("publish activity cleanup event failed")
	}
	logger.Logger(ctx).Info().Int("days", days).Int64("deleted", deleted).Msg("activity cleanup finished")
	return deleted, nil
}
