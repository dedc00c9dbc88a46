package telemetry

import (
	"errors"
	"testing"

	"github.com/Belphemur/YouTubeTranscript/internal/config"
)

func TestInit_DisabledWithoutDSN(t *testing.T) {
	flush, err := Init(&config.Config{}, "test")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	flush()
}

func TestInit_InvalidDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.Sentry.DSN = "not a dsn"
	if _, err := Init(cfg, "test"); err == nil {
		t.Fatal("Expected error for invalid DSN")
	}
}

func TestCaptureError_NoClient(t *testing.T) {
	// Must not panic without an initialized client
	CaptureError(errors.New("boom"), map[string]string{"videoRef": "abc"})
	CaptureError(nil, nil)
}
