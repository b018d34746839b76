// Package config defines CLI configuration and its loading order.
package config

// Config contains process configuration.
type Config struct {
	// BackendURL is the base URL of the Vibora backend.
	BackendURL string `koanf:"backend_url"`

	// APIToken authenticates requests against the backend. Empty disables auth.
	APIToken string `koanf:"api_token"`

	// DBPath is the sqlite database location. Empty means the per-user default.
	DBPath string `koanf:"db_path"`

	// FrameRate is the capture frame rate of analysis CSVs, frames per second.
	FrameRate float64 `koanf:"frame_rate"`

	// SampleStride keeps every Nth frame when building velocity series.
	SampleStride int `koanf:"sample_stride"`

	// PlayerRadius and BallRadius set the density neighborhoods for heatmap
	// intensity, in court meters.
	PlayerRadius float64 `koanf:"player_radius"`
	BallRadius   float64 `koanf:"ball_radius"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		BackendURL:   "http://localhost:8000",
		FrameRate:    30,
		SampleStride: 10,
		PlayerRadius: 1.0,
		BallRadius:   1.5,
	}
}
