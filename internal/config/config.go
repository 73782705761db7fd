package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-WeddingBooking/internal/domain"
)

// Config конфигурация приложения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки аутентификации администратора
type AuthConfig struct {
	Username        string  `toml:"username"`
	DefaultPassword string  `toml:"default_password"`
	JWTSecret       string  `toml:"jwt_secret"`
	TokenTTLHours   int     `toml:"token_ttl_hours"`
	RememberTTLDays int     `toml:"remember_ttl_days"`
	LoginRatePerMin float64 `toml:"login_rate_per_min"`
	LoginBurst      int     `toml:"login_burst"`
	MinPasswordLen  int     `toml:"min_password_length"`
}

// TokenTTL время жизни обычной сессии
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// RememberTTL время жизни сессии с "запомнить меня"
func (a AuthConfig) RememberTTL() time.Duration {
	return time.Duration(a.RememberTTLDays) * 24 * time.Hour
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL строка подключения в формате postgres:// (для golang-migrate)
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// Load читает конфигурацию из TOML файла и переменных окружения
// .env подхватывается, если существует
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "wedding_booking",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "wedding-booking",
		},
		Auth: AuthConfig{
			Username:        domain.AdminUsername,
			DefaultPassword: domain.DefaultAdminPassword,
			TokenTTLHours:   24,
			RememberTTLDays: 30,
			LoginRatePerMin: 10,
			LoginBurst:      5,
			MinPasswordLen:  domain.MinPasswordLength,
		},
	}
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("AUTH_JWT_SECRET"); ok {
		c.Auth.JWTSecret = v
	}
	if v, ok := os.LookupEnv("AUTH_DEFAULT_PASSWORD"); ok {
		c.Auth.DefaultPassword = v
	}
}

// Validate проверяет конфигурацию и возвращает все найденные ошибки разом
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort))
	}
	if strings.TrimSpace(c.Database.Host) == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if strings.TrimSpace(c.Database.DBName) == "" {
		errs = append(errs, errors.New("database.dbname is required"))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path must start with '/': %q", c.Metrics.Path))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required (or AUTH_JWT_SECRET)"))
	}
	if c.Auth.TokenTTLHours <= 0 {
		errs = append(errs, errors.New("auth.token_ttl_hours must be positive"))
	}
	if c.Auth.RememberTTLDays <= 0 {
		errs = append(errs, errors.New("auth.remember_ttl_days must be positive"))
	}
	if c.Auth.LoginRatePerMin <= 0 || c.Auth.LoginBurst <= 0 {
		errs = append(errs, errors.New("auth.login_rate_per_min and auth.login_burst must be positive"))
	}
	if len(c.Auth.DefaultPassword) < c.Auth.MinPasswordLen {
		errs = append(errs, fmt.Errorf("auth.default_password shorter than %d", c.Auth.MinPasswordLen))
	}

	return errors.Join(errs...)
}
