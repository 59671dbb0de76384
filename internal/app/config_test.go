package app_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"unitconv/internal/app"
	"unitconv/internal/conversion"
	"unitconv/internal/domain"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // no .env

	cfg, err := app.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Scale != conversion.DefaultScale {
		t.Errorf("Scale = %d, want %d", cfg.Scale, conversion.DefaultScale)
	}
	if cfg.DefaultUnit != domain.Unselected {
		t.Errorf("DefaultUnit = %s, want Unselected", cfg.DefaultUnit)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log = %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.HTTP.Addr != ":8080" || cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("HTTP = %+v", cfg.HTTP)
	}
	if cfg.RateLimit.RPS != 50 || cfg.RateLimit.Burst != 100 {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("UNITCONV_SCALE", "3")
	t.Setenv("UNITCONV_DEFAULT_UNIT", "m")
	t.Setenv("UNITCONV_LOG_LEVEL", "DEBUG")
	t.Setenv("UNITCONV_SERVER", "http://127.0.0.1:9000/")
	t.Setenv("UNITCONV_HTTP_ADDR", ":9000")
	t.Setenv("UNITCONV_RATE_LIMIT_RPS", "2.5")

	cfg, err := app.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Scale != 3 || cfg.DefaultUnit != domain.Meters || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ServerURL != "http://127.0.0.1:9000" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.HTTP.Addr != ":9000" || cfg.RateLimit.RPS != 2.5 {
		t.Errorf("HTTP = %+v, RateLimit = %+v", cfg.HTTP, cfg.RateLimit)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"UNITCONV_SCALE":        "19",
		"UNITCONV_DEFAULT_UNIT": "inches",
		"UNITCONV_LOG_FORMAT":   "xml",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(key, value)
			_, err := app.LoadConfig()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), key) {
				t.Fatalf("error %q does not name %s", err, key)
			}
		})
	}
}

func TestNew_WiresRemoteOnlyWithServer(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := app.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	var logs bytes.Buffer
	a, err := app.New(cfg, &logs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Remote != nil {
		t.Fatal("Remote should be nil without a server URL")
	}
	if got, err := a.Engine.Convert("1", domain.Meters, domain.Feet); err != nil || got != "3.28084" {
		t.Fatalf("Convert = %q, %v", got, err)
	}

	cfg.ServerURL = "http://127.0.0.1:1"
	a, err = app.New(cfg, &logs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Remote == nil {
		t.Fatal("Remote should be set")
	}
}
