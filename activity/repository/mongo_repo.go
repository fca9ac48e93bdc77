package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/config"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	defaultActivityCollection = "activities"
	defaultTimestampField     = "timestamp"
)

type mongoRepo struct {
	client *mongo.Client
	db     *mongo.Database
	coll   *mongo.Collection
}

func mongoURI(cfg config.MongoDBConfig) string {
	uri := "mongodb://"
	if cfg.User != "" {
		uri += fmt.Sprintf("%s:%s@", cfg.User, cfg.Password.Value())
	}
	uri += fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	if cfg.Options != "" {
		uri += "/?" + cfg.Options
	}
	return uri
}

func NewMongoRepository(cfg config.MongoDBConfig) (domain.Repository, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	opts := options.Client().
		ApplyURI(mongoURI(cfg)).
		SetTimeout(timeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb, err: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb, err: %w", err)
	}

	collection := cfg.Collection
	if collection == "" {
		collection = defaultActivityCollection
	}
	db := client.Database(cfg.Database)
	return &mongoRepo{
		client: client,
		db:     db,
		coll:   db.Collection(collection),
	}, nil
}

func (r *mongoRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: defaultTimestampField, Value: -1},
			},
			Options: options.Index().SetName("idx_user_timestamp"),
		},
		{
			Keys: bson.D{
				{Key: "action", Value: 1},
				{Key: defaultTimestampField, Value: -1},
			},
			Options: options.Index().SetName("idx_action_timestamp"),
		},
		{
			Keys:    bson.D{{Key: defaultTimestampField, Value: -1}},
			Options: options.Index().SetName("idx_timestamp"),
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("create activity indexes, err: %w", err)
	}
	return nil
}

func (r *mongoRepo) CreateActivity(ctx context.Context, activity *domain.Activity) error {
	if activity == nil {
		return errors.New("nil activity")
	}
	if activity.ID.IsZero() {
		activity.ID = bson.NewObjectID()
	}
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now().UTC().Truncate(time.Millisecond)
	}

	res, err := r.coll.InsertOne(ctx, activity)
	if err != nil {
		return fmt.Errorf("create activity, err: %w", err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		activity.ID = oid
	}
	return nil
}

func mongoFilter(f domain.Filter) bson.M {
	filter := bson.M{}
	switch f.Kind {
	case domain.FilterByUser:
		filter["userId"] = f.UserID
	case domain.FilterByAction:
		filter["action"] = f.Action
	case domain.FilterByDateRange:
		filter[defaultTimestampField] = bson.M{
			"$gte": f.Start,
			"$lte": f.End,
		}
	}
	return filter
}

func (r *mongoRepo) QueryActivities(ctx context.Context, opt *domain.QueryActivityOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := mongoFilter(opt.Filter)
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return fmt.Errorf("count activities, err: %w", err)
	}
	opt.Total = total
	if opt.Skip < 0 || opt.Skip >= total {
		opt.Result = []*domain.Activity{}
		return nil
	}

	// ObjectIDs grow with insertion, so _id breaks timestamp ties in insertion order
	findOptions := options.Find().
		SetSort(bson.D{{Key: defaultTimestampField, Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(opt.Skip)
	if opt.Limit > 0 {
		findOptions.SetLimit(opt.Limit)
	}

	cursor, err := r.coll.Find(ctx, filter, findOptions)
	if err != nil {
		return fmt.Errorf("find activities, err: %w", err)
	}
	defer cursor.Close(ctx)

	result := []*domain.Activity{}
	if err := cursor.All(ctx, &result); err != nil {
		return fmt.Errorf("decode activities, err: %w", err)
	}
	opt.Result = result
	return nil
}

func (r *mongoRepo) GetActivity(ctx context.Context, id bson.ObjectID) (*domain.Activity, error) {
	var activity domain.Activity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&activity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find activity, err: %w", err)
	}
	return &activity, nil
}

func (r *mongoRepo) DeleteActivitiesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{defaultTimestampField: bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("delete activities, err: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *mongoRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
