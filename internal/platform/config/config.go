// Package config provides configuration loading and validation for blogctl.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for blogctl.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Blog      BlogConfig      `koanf:"blog"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// BlogConfig holds blog service policy.
type BlogConfig struct {
	// PopularLimit caps the popular posts listing.
	PopularLimit int `koanf:"popular_limit"`

	// ViewWindow is how long a repeat view by the same user is not counted.
	ViewWindow time.Duration `koanf:"view_window"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
