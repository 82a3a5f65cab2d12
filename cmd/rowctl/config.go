package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/rowctl/internal/config"
)

// recordProfile drives `rowctl replay`: who is rowing, where workouts go and
// where records are published.
type recordProfile struct {
	User        string
	StorageRoot string
	Save        bool
	LogEvery    int
	RaceID      string
	MQTT        config.MQTTConfig
}

type fileProfile struct {
	User            string `toml:"user"`
	StorageRoot     string `toml:"storage_root"`
	Save            bool   `toml:"save"`
	LogEvery        int    `toml:"log_every"`
	RaceID          string `toml:"race_id"`
	MQTTBroker      string `toml:"mqtt_broker"`
	MQTTClientID    string `toml:"mqtt_client_id"`
	MQTTTopicPrefix string `toml:"mqtt_topic_prefix"`
	MQTTQoS         int    `toml:"mqtt_qos"`
	MQTTRetain      bool   `toml:"mqtt_retain"`
}

func defaultRecordProfile() recordProfile {
	return recordProfile{
		User:        "athlete",
		StorageRoot: "local/rowctl",
		LogEvery:    25,
		MQTT:        config.MQTTConfig{ClientID: "rowctl-replay", TopicPrefix: "rowctl/pm5"},
	}
}

func loadRecordProfile(path string) (recordProfile, error) {
	cfg := defaultRecordProfile()

	var raw fileProfile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return recordProfile{}, fmt.Errorf("load profile: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return recordProfile{}, fmt.Errorf("load profile: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("user") {
		if user := strings.TrimSpace(raw.User); user != "" {
			cfg.User = user
		}
	}
	if meta.IsDefined("storage_root") {
		cfg.StorageRoot = strings.TrimSpace(raw.StorageRoot)
	}
	if meta.IsDefined("save") {
		cfg.Save = raw.Save
	}
	if meta.IsDefined("log_every") {
		if raw.LogEvery < 0 {
			return recordProfile{}, fmt.Errorf("log_every must not be negative")
		}
		cfg.LogEvery = raw.LogEvery
	}
	if meta.IsDefined("race_id") {
		cfg.RaceID = strings.TrimSpace(raw.RaceID)
	}
	if meta.IsDefined("mqtt_broker") {
		cfg.MQTT.Broker = strings.TrimSpace(raw.MQTTBroker)
	}
	if meta.IsDefined("mqtt_client_id") {
		cfg.MQTT.ClientID = strings.TrimSpace(raw.MQTTClientID)
	}
	if meta.IsDefined("mqtt_topic_prefix") {
		cfg.MQTT.TopicPrefix = strings.TrimSpace(raw.MQTTTopicPrefix)
	}
	if meta.IsDefined("mqtt_qos") {
		cfg.MQTT.QoS = raw.MQTTQoS
	}
	if meta.IsDefined("mqtt_retain") {
		cfg.MQTT.Retain = raw.MQTTRetain
	}

	if cfg.Save && cfg.StorageRoot == "" {
		return recordProfile{}, fmt.Errorf("storage_root is required when save is enabled")
	}
	if cfg.MQTT.Enabled() {
		if err := config.ValidateMQTT(cfg.MQTT); err != nil {
			return recordProfile{}, fmt.Errorf("mqtt invalid: %w", err)
		}
	}
	return cfg, nil
}
