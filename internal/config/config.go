package config

import (
	"github.com/hslcabal/team-roster-service/internal/logger"
)

type Config struct {
	Server   ServerConfig        `mapstructure:"server"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"gt=0,lte=65535"`
	// BasePath is the prefix stripped from clean URLs before dispatch.
	BasePath string `mapstructure:"base_path"`
}

type PostgresConfig struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"gt=0,lte=65535"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"dbname" validate:"required"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"max_conns"`
	MinConns          int32  `mapstructure:"min_conns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
}
