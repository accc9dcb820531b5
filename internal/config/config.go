package config

import "time"

// Store backends for the durable session record.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds runtime settings for the fleetcli client.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend REST API.
//   - SessionStoreBackend: "file" or "sqlite".
//   - SessionStorePath: JSON file path (file backend) or SQLite DSN.
//   - RefreshBuffer: how long before token expiry the proactive refresh fires.
//   - RequestTimeout: transport-level timeout for API calls.
type Config struct {
	ServerEndpointAddr  string
	SessionStoreBackend string
	SessionStorePath    string
	RefreshBuffer       time.Duration
	RequestTimeout      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.SessionStoreBackend = StoreFile
	c.SessionStorePath = "fleetcli_session.json"
	c.RefreshBuffer = 60 * time.Second
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
