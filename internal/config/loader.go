package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PADEL_CONFIG is set
//  3. env (prefix PADEL_)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("PADEL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: PADEL_BACKEND_URL, PADEL_FRAME_RATE, ...
	// Map env keys like PADEL_FRAME_RATE -> frame_rate (flat keys).
	envProvider := env.Provider("PADEL_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "padel_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.BackendURL == "" {
		return nil, errors.New("backend_url must not be empty")
	}
	if cfg.FrameRate <= 0 {
		return nil, errors.New("frame_rate must be positive")
	}
	if cfg.SampleStride <= 0 {
		return nil, errors.New("sample_stride must be positive")
	}
	return &cfg, nil
}
