package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want %q", cfg.ServerPort, "8080")
	}
	if cfg.EnrollmentMode != EnrollmentModeTrigger {
		t.Errorf("EnrollmentMode = %q, want %q", cfg.EnrollmentMode, EnrollmentModeTrigger)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want %v", cfg.JWTExpiry, 24*time.Hour)
	}
	if cfg.JoinCodeTTL != 48*time.Hour {
		t.Errorf("JoinCodeTTL = %v, want %v", cfg.JoinCodeTTL, 48*time.Hour)
	}
	if cfg.AllowedOrigins != nil {
		t.Errorf("AllowedOrigins = %v, want nil", cfg.AllowedOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("ENROLLMENT_MODE", "hook")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("MAX_DB_CONNS", "4")

	cfg := Load()

	if cfg.ServerPort != "9000" {
		t.Errorf("ServerPort = %q, want %q", cfg.ServerPort, "9000")
	}
	if cfg.EnrollmentMode != EnrollmentModeHook {
		t.Errorf("EnrollmentMode = %q, want %q", cfg.EnrollmentMode, EnrollmentModeHook)
	}
	if cfg.JWTExpiry != 2*time.Hour {
		t.Errorf("JWTExpiry = %v, want %v", cfg.JWTExpiry, 2*time.Hour)
	}
	if cfg.MaxDBConns != 4 {
		t.Errorf("MaxDBConns = %d, want 4", cfg.MaxDBConns)
	}
}

func TestParseEnrollmentMode(t *testing.T) {
	tests := []struct {
		raw  string
		want EnrollmentMode
	}{
		{"trigger", EnrollmentModeTrigger},
		{"hook", EnrollmentModeHook},
		{" HOOK ", EnrollmentModeHook},
		{"", EnrollmentModeTrigger},
		{"nonsense", EnrollmentModeTrigger},
	}

	for _, tt := range tests {
		if got := parseEnrollmentMode(tt.raw); got != tt.want {
			t.Errorf("parseEnrollmentMode(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseOrigins(t *testing.T) {
	if got := parseOrigins(""); got != nil {
		t.Errorf("parseOrigins(\"\") = %v, want nil", got)
	}

	got := parseOrigins("https://a.example.com, https://b.example.com ,")
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(got) != len(want) {
		t.Fatalf("parseOrigins returned %d origins, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("origin[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT_KEY", "not-a-number")
	if got := getEnvInt("TEST_INT_KEY", 7); got != 7 {
		t.Errorf("getEnvInt with invalid value = %d, want fallback 7", got)
	}
}
