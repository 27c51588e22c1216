// Package config holds the inventory module configuration, loaded from
// environment variables.
package config

import (
	"fmt"
	"net"

	"github.com/caarlos0/env/v6"
)

// Config contains the settings the inventory module needs: the Mongo database
// holding the records and the Redis instance backing the stock-event audit
// stream.
type Config struct {
	MongoDBURI   string `env:"MONGODB_URI"`
	DatabaseName string `env:"MONGODB_DATABASE" envDefault:"ot_inventory_db"`

	Redis RedisConfig
}

// RedisConfig configures the Redis client used for the stock-event stream.
type RedisConfig struct {
	Host            string `env:"REDIS_HOST" envDefault:"localhost"`
	Port            string `env:"REDIS_PORT" envDefault:"6379"`
	Password        string `env:"REDIS_PASSWORD" envDefault:""`
	Database        int    `env:"REDIS_DATABASE" envDefault:"0"`
	MaxRetries      int    `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	PoolSize        int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns    int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	EnableTLS       bool   `env:"REDIS_ENABLE_TLS" envDefault:"false"`
	ConnMaxIdleTime string `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"30m"`
	ConnMaxLifetime string `env:"REDIS_CONN_MAX_LIFETIME" envDefault:"1h"`

	// StreamMaxLength caps the audit stream; older entries are trimmed.
	StreamMaxLength int64 `env:"REDIS_STREAM_MAX_LENGTH" envDefault:"10000"`
	// StockEventStream is the stream key stock adjustments are appended to.
	StockEventStream string `env:"REDIS_STOCK_EVENT_STREAM" envDefault:"inventory:stock-events"`
}

// GetAddr returns the host:port address for the Redis client.
func (c *RedisConfig) GetAddr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// LoadConfig reads the inventory configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse inventory config: %w", err)
	}
	if cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	return cfg, nil
}
