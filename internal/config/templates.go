package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "server":
		return serverTemplate, nil
	case "profile":
		return profileTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const serverTemplate = `name = "rowctl"
addr = ":9300"
cors_origins = ["http://localhost:3000"]
max_payload = 512
# Bearer token for /v1/notifications and /v1/workouts. Empty leaves them open.
auth_token = ""
trusted_proxies = ["127.0.0.1", "::1"]
# Workouts posted without a user are recorded under this name.
default_user = "athlete"

[storage]
root = "local/rowctl"

[mqtt]
broker = ""
client_id = "rowctl"
topic_prefix = "rowctl/pm5"
qos = 0
retain = false
`

const profileTemplate = `user = "athlete"
storage_root = "local/rowctl"
save = true
log_every = 25
race_id = ""
mqtt_broker = ""
mqtt_client_id = "rowctl-replay"
mqtt_topic_prefix = "rowctl/pm5"
mqtt_qos = 0
`
