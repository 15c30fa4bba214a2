package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cron      CronConfig      `mapstructure:"cron"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Recommend RecommendConfig `mapstructure:"recommend"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CronConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	CacheSweep string `mapstructure:"cache_sweep"`
}

type CacheConfig struct {
	// Backend selects the suggestion cache store: "memory" or "redis".
	Backend string        `mapstructure:"backend"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type RecommendConfig struct {
	Weights     WeightsConfig     `mapstructure:"weights"`
	Confidence  ConfidenceConfig  `mapstructure:"confidence"`
	Trend       TrendConfig       `mapstructure:"trend"`
	Reliability ReliabilityConfig `mapstructure:"reliability"`
}

type WeightsConfig struct {
	Price       float64 `mapstructure:"price"`
	LeadTime    float64 `mapstructure:"lead_time"`
	Reliability float64 `mapstructure:"reliability"`
	Trend       float64 `mapstructure:"trend"`
}

type ConfidenceConfig struct {
	LowThreshold  float64 `mapstructure:"low_threshold"`
	HighThreshold float64 `mapstructure:"high_threshold"`
}

type TrendConfig struct {
	WindowDays int `mapstructure:"window_days"`
	MinPoints  int `mapstructure:"min_points"`
}

type ReliabilityConfig struct {
	OnTimeWeight   float64 `mapstructure:"on_time_weight"`
	AccuracyWeight float64 `mapstructure:"accuracy_weight"`
	// LookbackDays limits how far back delivery history is read. Zero means all history.
	LookbackDays int `mapstructure:"lookback_days"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.cache_sweep", "@every 1m")
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.ttl", "5m")

	v.SetDefault("recommend.weights.price", 0.4)
	v.SetDefault("recommend.weights.lead_time", 0.2)
	v.SetDefault("recommend.weights.reliability", 0.25)
	v.SetDefault("recommend.weights.trend", 0.15)
	v.SetDefault("recommend.confidence.low_threshold", 60)
	v.SetDefault("recommend.confidence.high_threshold", 80)
	v.SetDefault("recommend.trend.window_days", 180)
	v.SetDefault("recommend.trend.min_points", 3)
	v.SetDefault("recommend.reliability.on_time_weight", 0.5)
	v.SetDefault("recommend.reliability.accuracy_weight", 0.5)
	v.SetDefault("recommend.reliability.lookback_days", 0)

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
