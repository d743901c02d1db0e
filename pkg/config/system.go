package config

// SystemConfig holds resolved system-wide infrastructure settings.
type SystemConfig struct {
	// Host and Port for the HTTP API server.
	Host string
	Port int

	// SidecarAddr is the base URL of the local model-serving sidecar
	// (empty = sidecar provider disabled).
	SidecarAddr string

	// DashboardURL is the base URL of the dashboard, used in CORS defaults.
	DashboardURL string

	// AllowedWSOrigins is additional origin patterns accepted for
	// WebSocket upgrades beyond the dashboard origin.
	AllowedWSOrigins []string
}
