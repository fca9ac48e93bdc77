package service

import (
	"context"
	"errors"
	"time"

	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/config"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const tracerName = "github.com/activitylog/api/activity/service"

type Params struct {
	fx.In
	Repo             domain.Repository
	Cache            domain.RecordCache
	Publisher        domain.EventPublisher
	PaginationConfig config.PaginationConfig
}

func NewService(params Params) (domain.Service, error) {
	collector, err := registerMetricCollector(NewMetricCollector())
	if err != nil {
		return nil, err
	}
	return newService(params.Repo, params.Cache, params.Publisher, params.PaginationConfig.MaxPageSize, collector), nil
}

func newService(repo domain.Repository, cache domain.RecordCache, publisher domain.EventPublisher, maxPageSize int, collector *MetricCollector) *Service {
	if collector == nil {
		collector = NewMetricCollector()
	}
	return &Service{
		Repo:            repo,
		Cache:           cache,
		Publisher:       publisher,
		maxPageSize:     maxPageSize,
		metricCollector: collector,
		tracer:          otel.Tracer(tracerName),
		now:             time.Now,
	}
}

// registerMetricCollector registers c with the default registry. When a
// collector is already registered (several services in one process) that one
// is returned instead.
func registerMetricCollector(c *MetricCollector) (*MetricCollector, error) {
	err := prometheus.Register(c)
	if err == nil {
		return c, nil
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(*MetricCollector); ok {
			return existing, nil
		}
	}
	return nil, err
}

type Service struct {
	Repo            domain.Repository
	Cache           domain.RecordCache
	Publisher       domain.EventPublisher
	maxPageSize     int
	metricCollector *MetricCollector
	tracer          trace.Tracer
	now             func() time.Time
}

var _ domain.Service = (*Service)(nil)

func (svc *Service) cache() domain.RecordCache {
	if svc.Cache == nil {
		return nopCache{}
	}
	return svc.Cache
}

func (svc *Service) publisher() domain.EventPublisher {
	if svc.Publisher == nil {
		return nopPublisher{}
	}
	return svc.Publisher
}

type nopCache struct{}

func (nopCache) Get(context.Context, string) (*domain.Activity, bool, error) { return nil, false, nil }
func (nopCache) Set(context.Context, *domain.Activity) error                 { return nil }
func (nopCache) Purge(context.Context) error                                 { return nil }

type nopPublisher struct{}

func (nopPublisher) PublishCreated(context.Context, *domain.Activity) error { return nil }
func (nopPublisher) PublishCleanup(context.Context, time.Time, int64) error { return nil }
func (nopPublisher) Close() error                                           { return nil }
