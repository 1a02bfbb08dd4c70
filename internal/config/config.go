package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	DocService DocServiceConfig `toml:"docservice"`
	Settlement SettlementConfig `toml:"settlement"`
}

// ServerConfig настройки HTTP сервера
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
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

// DocServiceConfig настройки клиента сервиса генерации документов
type DocServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// SettlementConfig политика расчета итоговой оплаты при возврате автомобиля.
// Денежные значения задаются строками, чтобы не терять точность на float.
type SettlementConfig struct {
	Currency           string `toml:"currency"`
	LateFeePerDay      string `toml:"late_fee_per_day"`
	MileageAllowanceKm int64  `toml:"mileage_allowance_km"`
	MileageFeePerKm    string `toml:"mileage_fee_per_km"`
	FullTankCharge     string `toml:"full_tank_charge"`

	DamageBodyworkFee string `toml:"damage_bodywork_fee"`
	DamageInteriorFee string `toml:"damage_interior_fee"`
	DamageTiresFee    string `toml:"damage_tires_fee"`
	DamageGlassFee    string `toml:"damage_glass_fee"`
}

// Policy конвертирует конфигурацию в доменную политику расчета
func (c *SettlementConfig) Policy() (*domain.SettlementPolicy, error) {
	lateFee, err := parseAmount("late_fee_per_day", c.LateFeePerDay)
	if err != nil {
		return nil, err
	}

	mileageFee, err := parseAmount("mileage_fee_per_km", c.MileageFeePerKm)
	if err != nil {
		return nil, err
	}

	fullTank, err := parseAmount("full_tank_charge", c.FullTankCharge)
	if err != nil {
		return nil, err
	}

	damageCharges := make(map[domain.DamageCategory]decimal.Decimal, 4)
	for _, entry := range []struct {
		category domain.DamageCategory
		key      string
		value    string
	}{
		{domain.DamageBodywork, "damage_bodywork_fee", c.DamageBodyworkFee},
		{domain.DamageInterior, "damage_interior_fee", c.DamageInteriorFee},
		{domain.DamageTires, "damage_tires_fee", c.DamageTiresFee},
		{domain.DamageGlass, "damage_glass_fee", c.DamageGlassFee},
	} {
		charge, err := parseAmount(entry.key, entry.value)
		if err != nil {
			return nil, err
		}
		damageCharges[entry.category] = charge
	}

	return &domain.SettlementPolicy{
		LateFeePerDay:      lateFee,
		DamageCharges:      damageCharges,
		MileageAllowanceKm: c.MileageAllowanceKm,
		MileageFeePerKm:    mileageFee,
		FullTankCharge:     fullTank,
	}, nil
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		return nil, fmt.Errorf("config: server.http_port is required")
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("config: database.host and database.dbname are required")
	}

	// Валидируем политику расчета сразу при старте, а не при первом возврате
	if _, err := cfg.Settlement.Policy(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func parseAmount(key, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: settlement.%s: invalid amount %q: %w", key, value, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("config: settlement.%s: amount must not be negative", key)
	}
	return amount, nil
}
