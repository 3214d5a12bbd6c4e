package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxPresetCeiling bounds the configurable per-character preset limit.
const MaxPresetCeiling = 25

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// TransmogConfig holds the appearance-override feature settings.
type TransmogConfig struct {
	Enabled        bool `yaml:"enabled"`
	PresetsEnabled bool `yaml:"presets_enabled"`
	MaxPresets     int  `yaml:"max_presets"`

	// Pricing: price = (sell_price + cost_fee) * cost_multiplier, in copper.
	CostMultiplier float64 `yaml:"cost_multiplier"`
	CostFee        int64   `yaml:"cost_fee"`

	// Optional token charge on top of the money cost.
	TokenRequired bool  `yaml:"token_required"`
	TokenEntry    int32 `yaml:"token_entry"`
	TokenAmount   int32 `yaml:"token_amount"`
}

// Server holds all configuration for the game server.
type Server struct {
	Database DatabaseConfig `yaml:"database"`
	Transmog TransmogConfig `yaml:"transmog"`

	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// DefaultServer returns Server config with sensible defaults.
func DefaultServer() Server {
	return Server{
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "transmog",
			Password: "transmog",
			DBName:   "transmog",
			SSLMode:  "disable",
		},
		Transmog: TransmogConfig{
			Enabled:        true,
			PresetsEnabled: true,
			MaxPresets:     1,
			CostMultiplier: 1.0,
			CostFee:        0,
			TokenRequired:  false,
			TokenEntry:     49426,
			TokenAmount:    1,
		},
		LogLevel: "info",
	}
}

// LoadServer loads server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Transmog.Normalize()
	return cfg, nil
}

// Normalize clamps out-of-range values to their working bounds.
func (t *TransmogConfig) Normalize() {
	if t.MaxPresets < 1 {
		t.MaxPresets = 1
	}
	if t.MaxPresets > MaxPresetCeiling {
		t.MaxPresets = MaxPresetCeiling
	}
	if t.CostMultiplier < 0 {
		t.CostMultiplier = 1.0
	}
	if t.CostFee < 0 {
		t.CostFee = 0
	}
	if t.TokenAmount < 1 {
		t.TokenAmount = 1
	}
}
