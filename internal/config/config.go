package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`

	// AdminTrigger is the reserved display name that grants admin authority.
	// Known-weak shared-secret mechanism, preserved as-is.
	AdminTrigger string `mapstructure:"admin_trigger" yaml:"admin_trigger"`
	// CoinInterval is the economy accrual period.
	CoinInterval time.Duration `mapstructure:"coin_interval" yaml:"coin_interval"`
	// CoinsPerTick is the amount credited per user per accrual.
	CoinsPerTick int `mapstructure:"coins_per_tick" yaml:"coins_per_tick"`

	// MessageRate / MessageBurst bound inbound frames per connection.
	MessageRate  float64 `mapstructure:"message_rate" yaml:"message_rate"`
	MessageBurst int     `mapstructure:"message_burst" yaml:"message_burst"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		AdminTrigger:      "./admin-menu./",
		CoinInterval:      60 * time.Second,
		CoinsPerTick:      1,
		MessageRate:       5,
		MessageBurst:      10,
	}
}
