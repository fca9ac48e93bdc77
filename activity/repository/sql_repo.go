package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/config"
	"go.mongodb.org/mongo-driver/v2/bson"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSQLiteDSN = "file::memory:?cache=shared"

// activityRecord is the relational row of an activity. Timestamps are unix
// milliseconds; seq orders rows that share a timestamp by insertion.
type activityRecord struct {
	Seq          uint64            `gorm:"column:seq;primaryKey;autoIncrement"`
	ActivityID   string            `gorm:"column:activity_id;size:24;not null;uniqueIndex:idx_activity_id"`
	UserID       string            `gorm:"column:user_id;size:255;not null;index:idx_user_timestamp,priority:1"`
	Action       string            `gorm:"column:action;size:64;not null;index:idx_action_timestamp,priority:1"`
	Timestamp    int64             `gorm:"column:timestamp;not null;index:idx_user_timestamp,priority:2;index:idx_action_timestamp,priority:2;index:idx_timestamp"`
	IPAddress    string            `gorm:"column:ip_address;size:64"`
	UserAgent    string            `gorm:"column:user_agent;size:512"`
	Details      datatypes.JSONMap `gorm:"column:details"`
	ResourceType string            `gorm:"column:resource_type;size:128"`
	ResourceID   string            `gorm:"column:resource_id;size:128"`
	Status       string            `gorm:"column:status;size:16;not null"`
}

func newActivityRecord(a *domain.Activity) *activityRecord {
	var details datatypes.JSONMap
	if len(a.Details) > 0 {
		details = datatypes.JSONMap(a.Details)
	}
	return &activityRecord{
		ActivityID:   a.ID.Hex(),
		UserID:       a.UserID,
		Action:       string(a.Action),
		Timestamp:    a.Timestamp.UnixMilli(),
		IPAddress:    a.IPAddress,
		UserAgent:    a.UserAgent,
		Details:      details,
		ResourceType: a.ResourceType,
		ResourceID:   a.ResourceID,
		Status:       string(a.Status),
	}
}

func (rec *activityRecord) toDomain() (*domain.Activity, error) {
	id, err := bson.ObjectIDFromHex(rec.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("decode activity id %q, err: %w", rec.ActivityID, err)
	}
	var details map[string]any
	if len(rec.Details) > 0 {
		details = map[string]any(rec.Details)
	}
	return &domain.Activity{
		ID:           id,
		UserID:       rec.UserID,
		Action:       domain.Action(rec.Action),
		Timestamp:    time.UnixMilli(rec.Timestamp).UTC(),
		IPAddress:    rec.IPAddress,
		UserAgent:    rec.UserAgent,
		Details:      details,
		ResourceType: rec.ResourceType,
		ResourceID:   rec.ResourceID,
		Status:       domain.Status(rec.Status),
	}, nil
}

type sqlRepo struct {
	db    *gorm.DB
	table string
}

// NewSQLRepository opens a postgres or sqlite store through gorm.
func NewSQLRepository(driver string, cfg config.SQLConfig) (domain.Repository, error) {
	dsn := cfg.DSN.Value()
	var dialector gorm.Dialector
	switch driver {
	case config.StorageDriverPostgres:
		if dsn == "" {
			return nil, errors.New("postgres dsn must not be empty")
		}
		dialector = postgres.Open(dsn)
	case config.StorageDriverSQLite:
		if dsn == "" {
			dsn = defaultSQLiteDSN
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s, err: %w", driver, err)
	}
	return newSQLRepository(db, cfg.Table), nil
}

func newSQLRepository(db *gorm.DB, table string) *sqlRepo {
	if table == "" {
		table = defaultActivityCollection
	}
	return &sqlRepo{db: db, table: table}
}

func (r *sqlRepo) tx(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table)
}

// EnsureIndexes creates the activity table together with its indexes.
func (r *sqlRepo) EnsureIndexes(ctx context.Context) error {
	if err := r.tx(ctx).AutoMigrate(&activityRecord{}); err != nil {
		return fmt.Errorf("create activity table, err: %w", err)
	}
	return nil
}

func (r *sqlRepo) CreateActivity(ctx context.Context, activity *domain.Activity) error {
	if activity == nil {
		return errors.New("nil activity")
	}
	if activity.ID.IsZero() {
		activity.ID = bson.NewObjectID()
	}
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now().UTC().Truncate(time.Millisecond)
	}

	if err := r.tx(ctx).Create(newActivityRecord(activity)).Error; err != nil {
		return fmt.Errorf("create activity, err: %w", err)
	}
	return nil
}

func (r *sqlRepo) where(tx *gorm.DB, f domain.Filter) *gorm.DB {
	switch f.Kind {
	case domain.FilterByUser:
		return tx.Where("user_id = ?", f.UserID)
	case domain.FilterByAction:
		return tx.Where("action = ?", string(f.Action))
	case domain.FilterByDateRange:
		return tx.Where("timestamp >= ? AND timestamp <= ?", f.Start.UnixMilli(), f.End.UnixMilli())
	}
	return tx
}

func (r *sqlRepo) QueryActivities(ctx context.Context, opt *domain.QueryActivityOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	var total int64
	if err := r.where(r.tx(ctx), opt.Filter).Count(&total).Error; err != nil {
		return fmt.Errorf("count activities, err: %w", err)
	}
	opt.Total = total
	if opt.Skip < 0 || opt.Skip >= total {
		opt.Result = []*domain.Activity{}
		return nil
	}

	query := r.where(r.tx(ctx), opt.Filter).
		Order("timestamp DESC").
		Order("seq ASC").
		Offset(int(opt.Skip))
	if opt.Limit > 0 {
		query = query.Limit(int(opt.Limit))
	}

	var records []*activityRecord
	if err := query.Find(&records).Error; err != nil {
		return fmt.Errorf("find activities, err: %w", err)
	}

	result := make([]*domain.Activity, 0, len(records))
	for _, rec := range records {
		activity, err := rec.toDomain()
		if err != nil {
			return err
		}
		result = append(result, activity)
	}
	opt.Result = result
	return nil
}

func (r *sqlRepo) GetActivity(ctx context.Context, id bson.ObjectID) (*domain.Activity, error) {
	var rec activityRecord
	err := r.tx(ctx).Where("activity_id = ?", id.Hex()).Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find activity, err: %w", err)
	}
	return rec.toDomain()
}

func (r *sqlRepo) DeleteActivitiesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.tx(ctx).Where("timestamp < ?", cutoff.UnixMilli()).Delete(&activityRecord{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete activities, err: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *sqlRepo) Close(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
