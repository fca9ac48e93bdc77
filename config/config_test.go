package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitActivityConfigReadsTestFile(t *testing.T) {
	cfg, err := InitActivityConfig("activity_config.test.toml", GetAbsPath("config"))
	require.NoError(t, err)

	assert.Equal(t, ":3001", cfg.Server.Host)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "activity-logs-test", cfg.MongoDB.Database)
	assert.Equal(t, 100, cfg.Pagination.MaxPageSize)
	assert.Equal(t, 30, cfg.Retention.Days)
	assert.Equal(t, time.Minute, cfg.Retention.Interval)
	assert.Equal(t, CacheDriverMemory, cfg.Cache.Driver)
	// defaults fill keys the file leaves out
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "activity:", cfg.Cache.Prefix)
	assert.Same(t, GetConfig(), GetConfig())
	assert.Equal(t, cfg, *GetConfig())
}

func TestInitActivityConfigEnvOverride(t *testing.T) {
	t.Setenv("ACTIVITY_STORAGE_DRIVER", StorageDriverSQLite)
	t.Setenv("ACTIVITY_PAGINATION_MAX_PAGE_SIZE", "50")

	cfg, err := InitActivityConfig("activity_config.test", "")
	require.NoError(t, err)
	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, 50, cfg.Pagination.MaxPageSize)
}

func TestInitActivityConfigMissingFile(t *testing.T) {
	_, err := InitActivityConfig("does_not_exist", t.TempDir())
	require.Error(t, err)
}

func TestSecretValueMasks(t *testing.T) {
	s := SecretValue("hunter2")
	assert.Equal(t, "hunter2", s.Value())
	assert.Equal(t, "*******", s.String())
	text, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "*******", string(text))
	assert.Equal(t, "", SecretValue("").String())
}

func TestShippedConfigDisablesProcessLocalCache(t *testing.T) {
	cfg, err := InitActivityConfig("activity_config.toml", GetAbsPath("config"))
	require.NoError(t, err)

	assert.Equal(t, CacheDriverNone, cfg.Cache.Driver)
	assert.Equal(t, StorageDriverMongoDB, cfg.Storage.Driver)
}
