package repository

import (
	"fmt"

	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/config"
	"go.uber.org/fx"
)

type Params struct {
	fx.In
	StorageConfig config.StorageConfig
	MongoConfig   config.MongoDBConfig
	SQLConfig     config.SQLConfig
}

// NewRepository opens the store selected by storage.driver.
func NewRepository(params Params) (domain.Repository, error) {
	switch params.StorageConfig.Driver {
	case config.StorageDriverMongoDB, "":
		return NewMongoRepository(params.MongoConfig)
	case config.StorageDriverPostgres, config.StorageDriverSQLite:
		return NewSQLRepository(params.StorageConfig.Driver, params.SQLConfig)
	case config.StorageDriverMemory:
		return NewMemoryRepository(), nil
	}
	return nil, fmt.Errorf("unsupported storage driver %q", params.StorageConfig.Driver)
}
