package util

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"
)

func MongoCleanup(ctx context.Context, mongodbClient *mongo.Client, dbName string) error {
	return mongodbClient.Database(dbName).Drop(ctx)
}

// SQLCleanup empties table without dropping it.
func SQLCleanup(ctx context.Context, db *gorm.DB, table string) error {
	return db.WithContext(ctx).Exec("DELETE FROM " + table).Error
}
