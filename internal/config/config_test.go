package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.BackendURL)
	assert.Equal(t, 30.0, cfg.FrameRate)
	assert.Equal(t, 10, cfg.SampleStride)
	assert.Equal(t, 1.0, cfg.PlayerRadius)
	assert.Equal(t, 1.5, cfg.BallRadius)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PADEL_BACKEND_URL", "https://api.example.com")
	t.Setenv("PADEL_SAMPLE_STRIDE", "5")
	t.Setenv("PADEL_API_TOKEN", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.BackendURL)
	assert.Equal(t, 5, cfg.SampleStride)
	assert.Equal(t, "secret", cfg.APIToken)
	// Untouched keys keep their defaults.
	assert.Equal(t, 30.0, cfg.FrameRate)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "padel.yaml")
	yaml := "backend_url: https://file.example.com\nframe_rate: 60\nball_radius: 2.0\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("PADEL_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://file.example.com", cfg.BackendURL)
	assert.Equal(t, 60.0, cfg.FrameRate)
	assert.Equal(t, 2.0, cfg.BallRadius)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "padel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frame_rate: 60\n"), 0644))
	t.Setenv("PADEL_CONFIG", path)
	t.Setenv("PADEL_FRAME_RATE", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25.0, cfg.FrameRate)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("PADEL_FRAME_RATE", "-1")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PADEL_FRAME_RATE", "30")
	t.Setenv("PADEL_SAMPLE_STRIDE", "0")
	_, err = Load()
	assert.Error(t, err)
}
