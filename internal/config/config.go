package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	PaymentGateway PaymentGatewayConfig `toml:"payment_gateway"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	RunMigrations   bool   `toml:"run_migrations"`
	MigrationsDir   string `toml:"migrations_dir"`
}

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled         bool   `toml:"enabled"`
	Path            string `toml:"path"`
	ServiceName     string `toml:"service_name"`
	CollectInterval int    `toml:"collect_interval"` // секунды, для статистики пула БД
}

// PaymentGatewayConfig настройки платежного шлюза
type PaymentGatewayConfig struct {
	URL         string `toml:"url"`
	KeyID       string `toml:"key_id"`
	KeySecret   string `toml:"key_secret"`
	Currency    string `toml:"currency"`
	Timeout     int    `toml:"timeout"` // секунды, на один исходящий вызов
	CallbackURL string `toml:"callback_url"`
}

// Load читает конфигурацию из TOML файла.
// Секреты можно переопределить переменными окружения:
// DB_PASSWORD, PAYMENT_GATEWAY_KEY_ID, PAYMENT_GATEWAY_KEY_SECRET.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("PAYMENT_GATEWAY_KEY_ID"); v != "" {
		cfg.PaymentGateway.KeyID = v
	}
	if v := os.Getenv("PAYMENT_GATEWAY_KEY_SECRET"); v != "" {
		cfg.PaymentGateway.KeySecret = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MigrationsDir == "" {
		cfg.Database.MigrationsDir = "migrations"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.CollectInterval == 0 {
		cfg.Metrics.CollectInterval = 15
	}
	if cfg.PaymentGateway.Currency == "" {
		cfg.PaymentGateway.Currency = "INR"
	}
	if cfg.PaymentGateway.Timeout == 0 {
		cfg.PaymentGateway.Timeout = 5
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.PaymentGateway.URL == "" {
		return fmt.Errorf("config: payment_gateway.url is required")
	}
	if c.PaymentGateway.KeyID == "" || c.PaymentGateway.KeySecret == "" {
		return fmt.Errorf("config: payment_gateway credentials are required")
	}
	return nil
}
