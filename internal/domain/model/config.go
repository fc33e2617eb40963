package model

import "time"

type BackendConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	PowerPath string        `mapstructure:"power_path" validate:"required"` // "/power" or "/util/ability/power" depending on the server
	ClientID  string        `mapstructure:"client_id"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

// BridgeConfig drives the optional local Hue bridge emulation. Hue clients
// carry no OAuth token, so the backend token comes from here.
type BridgeConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	LocalIP string `mapstructure:"local_ip"`
	Token   string `mapstructure:"token" validate:"required_if=Enabled true"`
}

type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Log     LogConfig     `mapstructure:"log"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Bridge  BridgeConfig  `mapstructure:"bridge"`
}
