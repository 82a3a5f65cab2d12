package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ServerConfig drives `rowctl serve`.
type ServerConfig struct {
	Name           string        `toml:"name"`
	Addr           string        `toml:"addr"`
	CorsOrigins    []string      `toml:"cors_origins"`
	MaxPayload     int           `toml:"max_payload"`
	AuthToken      string        `toml:"auth_token"`
	TrustedProxies []string      `toml:"trusted_proxies"`
	DefaultUser    string        `toml:"default_user"`
	Storage        StorageConfig `toml:"storage"`
	MQTT           MQTTConfig    `toml:"mqtt"`
}

type StorageConfig struct {
	Root string `toml:"root"`
}

// MQTTConfig is optional; an empty Broker disables publishing.
type MQTTConfig struct {
	Broker      string `toml:"broker"`
	ClientID    string `toml:"client_id"`
	TopicPrefix string `toml:"topic_prefix"`
	QoS         int    `toml:"qos"`
	Retain      bool   `toml:"retain"`
}

func (c MQTTConfig) Enabled() bool {
	return strings.TrimSpace(c.Broker) != ""
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Name:           "rowctl",
		Addr:           ":9300",
		MaxPayload:     512,
		TrustedProxies: []string{"127.0.0.1", "::1"},
		DefaultUser:    "athlete",
		Storage:        StorageConfig{Root: "local/rowctl"},
		MQTT:           MQTTConfig{ClientID: "rowctl", TopicPrefix: "rowctl/pm5"},
	}
}

func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()
	if err := loadToml(path, &cfg); err != nil {
		return ServerConfig{}, err
	}
	if err := ValidateServerConfig(cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateServerConfig(cfg ServerConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("server config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("server config missing addr")
	}
	if cfg.MaxPayload <= 0 {
		return fmt.Errorf("server config max_payload must be positive")
	}
	if strings.TrimSpace(cfg.DefaultUser) == "" || strings.ContainsAny(cfg.DefaultUser, `/\`) {
		return fmt.Errorf("server config default_user must be a plain name")
	}
	if cfg.MQTT.Enabled() {
		if err := ValidateMQTT(cfg.MQTT); err != nil {
			return fmt.Errorf("mqtt invalid: %w", err)
		}
	}
	return nil
}

func ValidateMQTT(cfg MQTTConfig) error {
	u, err := url.Parse(strings.TrimSpace(cfg.Broker))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("broker must be a url like tcp://host:1883")
	}
	if cfg.QoS < 0 || cfg.QoS > 2 {
		return fmt.Errorf("qos must be 0, 1 or 2")
	}
	if strings.TrimSpace(cfg.TopicPrefix) == "" {
		return fmt.Errorf("topic_prefix is required")
	}
	return nil
}
