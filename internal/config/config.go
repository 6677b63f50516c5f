package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/elitetenis/court-booking-service/internal/domain"
	"github.com/elitetenis/court-booking-service/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Rules    RulesConfig    `toml:"rules"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RulesConfig настраиваемые параметры правил бронирования.
// Нулевые значения заменяются дефолтами клуба (см. RulePolicy).
type RulesConfig struct {
	// Время открытия брони: будни недели открываются в понедельник,
	// выходные — в четверг (формат HH:MM)
	WeekdayReleaseTime string `toml:"weekday_release_time"`
	WeekendReleaseTime string `toml:"weekend_release_time"`

	// Недельные лимиты
	MaxNormalWeekdayPerWeek int `toml:"max_normal_weekday_per_week"`
	MaxNormalWeekendPerWeek int `toml:"max_normal_weekend_per_week"`
	MaxPyramidPerWeek       int `toml:"max_pyramid_per_week"`
	MaxBeachWeekdayPerWeek  int `toml:"max_beach_weekday_per_week"`
	MaxBeachWeekendPerWeek  int `toml:"max_beach_weekend_per_week"`

	// Дневной лимит на теннисных кортах
	MaxRegularPerDay int `toml:"max_regular_per_day"`

	// Бронь "в последний момент" не считается в лимиты (в часах)
	LastMinuteWindowHours int `toml:"last_minute_window_hours"`

	// Максимальная длина диапазона интердикции (в днях, включительно)
	MaxInterdictionRangeDays int `toml:"max_interdiction_range_days"`
}

// RulePolicy собирает доменную политику правил из конфигурации.
// Незаполненные поля получают дефолты клуба.
func (c RulesConfig) RulePolicy() domain.RulePolicy {
	policy := domain.DefaultRulePolicy()

	if c.WeekdayReleaseTime != "" {
		policy.WeekdayReleaseTime = types.TimeString(c.WeekdayReleaseTime)
	}
	if c.WeekendReleaseTime != "" {
		policy.WeekendReleaseTime = types.TimeString(c.WeekendReleaseTime)
	}
	if c.MaxNormalWeekdayPerWeek > 0 {
		policy.MaxNormalWeekdayPerWeek = c.MaxNormalWeekdayPerWeek
	}
	if c.MaxNormalWeekendPerWeek > 0 {
		policy.MaxNormalWeekendPerWeek = c.MaxNormalWeekendPerWeek
	}
	if c.MaxPyramidPerWeek > 0 {
		policy.MaxPyramidPerWeek = c.MaxPyramidPerWeek
	}
	if c.MaxBeachWeekdayPerWeek > 0 {
		policy.MaxBeachWeekdayPerWeek = c.MaxBeachWeekdayPerWeek
	}
	if c.MaxBeachWeekendPerWeek > 0 {
		policy.MaxBeachWeekendPerWeek = c.MaxBeachWeekendPerWeek
	}
	if c.MaxRegularPerDay > 0 {
		policy.MaxRegularPerDay = c.MaxRegularPerDay
	}
	if c.LastMinuteWindowHours > 0 {
		policy.LastMinuteWindow = time.Duration(c.LastMinuteWindowHours) * time.Hour
	}
	if c.MaxInterdictionRangeDays > 0 {
		policy.MaxInterdictionRangeDays = c.MaxInterdictionRangeDays
	}

	return policy
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "court-booking-service"
	}

	return &cfg, nil
}
