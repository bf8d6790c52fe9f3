package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/deppfellow/analytics/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"unknown": zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	if got := GetPgxTraceLogLevel(zerolog.DebugLevel); got != tracelog.LogLevelDebug {
		t.Errorf("debug maps to %v", got)
	}
	if got := GetPgxTraceLogLevel(zerolog.Disabled); got != tracelog.LogLevelNone {
		t.Errorf("disabled maps to %v", got)
	}
}

func TestProductionLoggerWritesJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Str("slice", "contact").Msg("saved")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("production output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["service"] != config.ServiceName {
		t.Errorf("service = %v, want %s", entry["service"], config.ServiceName)
	}
	if entry["slice"] != "contact" {
		t.Errorf("slice = %v, want contact", entry["slice"])
	}
}

func TestDevelopmentLoggerRespectsLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "development"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("warn entry missing from output")
	}
}

func TestLoggerServiceWithoutLicense(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())
	if svc.GetApplication() != nil {
		t.Fatal("expected no New Relic application without a license key")
	}
	svc.Shutdown()

	var nilService *LoggerService
	if nilService.GetApplication() != nil {
		t.Fatal("nil service must report no application")
	}
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	log := WithTraceContext(base, nil)
	log.Info().Msg("x")

	if strings.Contains(buf.String(), "trace.id") {
		t.Error("trace fields should not be added without a transaction")
	}
}
