package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.TVMazeBaseURL != DefaultBaseURL {
		t.Errorf("Expected base URL %q, got %q", DefaultBaseURL, cfg.TVMazeBaseURL)
	}
	if cfg.DefaultImageURL != DefaultImageURL {
		t.Errorf("Expected default image %q, got %q", DefaultImageURL, cfg.DefaultImageURL)
	}
	if cfg.ClientTimeout != "30s" {
		t.Errorf("Expected client timeout 30s, got %q", cfg.ClientTimeout)
	}
	if cfg.CoalesceRequests {
		t.Error("Expected request coalescing to be off by default")
	}
	if cfg.CircuitBreaker.FailureThreshold != 0 {
		t.Errorf("Expected circuit breaker to be disabled, got threshold %d", cfg.CircuitBreaker.FailureThreshold)
	}
	if cfg.ViewStore.Provider != "memory" {
		t.Errorf("Expected memory view store, got %q", cfg.ViewStore.Provider)
	}
	if cfg.Server.Port != 8080 || cfg.GRPC.Port != 9000 {
		t.Errorf("Unexpected ports: http %d, grpc %d", cfg.Server.Port, cfg.GRPC.Port)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_TVMAZE_BASE_URL", "http://localhost:1234/")
	t.Setenv("APP_COALESCE_REQUESTS", "true")
	t.Setenv("APP_CIRCUIT_BREAKER_FAILURE_THRESHOLD", "5")
	t.Setenv("APP_VIEW_STORE_PROVIDER", "redis")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.TVMazeBaseURL != "http://localhost:1234" {
		t.Errorf("Expected trailing slash to be trimmed, got %q", cfg.TVMazeBaseURL)
	}
	if !cfg.CoalesceRequests {
		t.Error("Expected coalescing to be enabled from env")
	}
	if cfg.CircuitBreaker.FailureThreshold != 5 {
		t.Errorf("Expected threshold 5, got %d", cfg.CircuitBreaker.FailureThreshold)
	}
	if cfg.ViewStore.Provider != "redis" {
		t.Errorf("Expected redis provider, got %q", cfg.ViewStore.Provider)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level from LOG_LEVEL, got %q", cfg.LogLevel)
	}
}

func TestLoadConfig_EmptyValuesFallBack(t *testing.T) {
	t.Setenv("APP_USER_AGENT", "")
	t.Setenv("APP_DEFAULT_IMAGE_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("Expected default user agent, got %q", cfg.UserAgent)
	}
	if cfg.DefaultImageURL != DefaultImageURL {
		t.Errorf("Expected default image URL, got %q", cfg.DefaultImageURL)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		value    string
		expected time.Duration
	}{
		{"", time.Minute},
		{"5s", 5 * time.Second},
		{"not-a-duration", time.Minute},
	}
	for _, tt := range tests {
		if got := ParseDuration(tt.value, time.Minute, "test"); got != tt.expected {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.value, got, tt.expected)
		}
	}
}

func TestGetUserAgent(t *testing.T) {
	if GetUserAgent() == "" {
		t.Error("Expected a non-empty user agent")
	}
}
