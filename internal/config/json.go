package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/fleetdesk/fleetcli/internal/flagx"
	"github.com/fleetdesk/fleetcli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "60s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	SessionStoreBackend string         `json:"session_store_backend"`
	SessionStorePath    string         `json:"session_store_path"`
	RefreshBuffer       timex.Duration `json:"refresh_buffer"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via the -c or -config flags. Without such a flag, nothing is loaded.
// Zero-valued JSON fields leave the existing Config values untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.SessionStoreBackend != "" {
		cfg.SessionStoreBackend = jc.SessionStoreBackend
	}
	if jc.SessionStorePath != "" {
		cfg.SessionStorePath = jc.SessionStorePath
	}
	if jc.RefreshBuffer.Duration != 0 {
		cfg.RefreshBuffer = time.Duration(jc.RefreshBuffer.Duration)
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
