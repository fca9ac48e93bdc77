package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

const (
	StorageDriverMongoDB  = "mongodb"
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
	StorageDriverMemory   = "memory"
)

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type MongoDBConfig struct {
	Database   string        `mapstructure:"database"`
	Collection string        `mapstructure:"collection"`
	CAPem      SecretValue   `mapstructure:"ca_pem"`
	User       string        `mapstructure:"user"`
	Password   SecretValue   `mapstructure:"password"`
	Port       string        `mapstructure:"port"`
	Host       string        `mapstructure:"host"`
	Options    string        `mapstructure:"options"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type SQLConfig struct {
	DSN   SecretValue `mapstructure:"dsn"`
	Table string      `mapstructure:"table"`
}

type PaginationConfig struct {
	MaxPageSize int `mapstructure:"max_page_size"`
}

type RetentionConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Days     int           `mapstructure:"days"`
	Interval time.Duration `mapstructure:"interval"`
}

const (
	CacheDriverNone   = "none"
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type CacheConfig struct {
	Driver   string        `mapstructure:"driver"`
	TTL      time.Duration `mapstructure:"ttl"`
	Capacity int           `mapstructure:"capacity"`
	RedisURL SecretValue   `mapstructure:"redis_url"`
	Prefix   string        `mapstructure:"prefix"`
}

type NATSConfig struct {
	URL           string `mapstructure:"url"`
	SubjectPrefix string `mapstructure:"subject_prefix"`
}

type ActivityConfig struct {
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Storage    StorageConfig    `mapstructure:"storage"`
	MongoDB    MongoDBConfig    `mapstructure:"mongodb"`
	SQL        SQLConfig        `mapstructure:"sql"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Retention  RetentionConfig  `mapstructure:"retention"`
	Cache      CacheConfig      `mapstructure:"cache"`
	NATS       NATSConfig       `mapstructure:"nats"`
}

var (
	activityCfg *ActivityConfig
)

func GetConfig() *ActivityConfig {
	return activityCfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", ":3000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("storage.driver", StorageDriverMongoDB)
	v.SetDefault("mongodb.host", "localhost")
	v.SetDefault("mongodb.port", "27017")
	v.SetDefault("mongodb.database", "activity-logs")
	v.SetDefault("mongodb.collection", "activities")
	v.SetDefault("mongodb.timeout", "10s")
	v.SetDefault("sql.table", "activities")
	v.SetDefault("pagination.max_page_size", 1000)
	v.SetDefault("retention.enabled", false)
	v.SetDefault("retention.days", 90)
	v.SetDefault("retention.interval", "1h")
	v.SetDefault("cache.driver", CacheDriverNone)
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("cache.capacity", 10000)
	v.SetDefault("cache.prefix", "activity:")
	v.SetDefault("nats.subject_prefix", "activity")
}

// InitActivityConfig loads an optional .env file, then the TOML config named
// configName from configPath (or the repository config directory), with
// ACTIVITY_ prefixed environment variables taking precedence.
func InitActivityConfig(configName string, configPath string) (ActivityConfig, error) {
	var cfg ActivityConfig
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, err
	}

	v := viper.New()
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = "activity_config"
	}
	configName = strings.TrimSuffix(configName, ".toml")
	v.AddConfigPath(GetAbsPath("config"))
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.SetEnvPrefix("ACTIVITY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	err := v.ReadInConfig()
	if err != nil {
		return cfg, err
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return cfg, err
	}
	activityCfg = &cfg
	return cfg, nil
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(0)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
