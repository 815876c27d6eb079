package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}
}

func TestInitWithRejectsUnknownFormat(t *testing.T) {
	if err := InitWith(&bytes.Buffer{}, "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if err := InitWith(nil, "text"); err == nil {
		t.Fatal("expected error for nil writer")
	}
}

func TestJSONOutputCarriesFieldsAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWith(&buf, "json"); err != nil {
		t.Fatalf("init: %v", err)
	}

	ctx := WithRequestID(context.Background(), "req-42")
	Get().Info(ctx, "hello", String("k", "v"), Int("n", 3), Error(errors.New("boom")))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not json: %v (%q)", err, buf.String())
	}
	if line["msg"] != "hello" {
		t.Errorf("msg = %v", line["msg"])
	}
	if line["k"] != "v" {
		t.Errorf("k = %v", line["k"])
	}
	if line["n"] != float64(3) {
		t.Errorf("n = %v", line["n"])
	}
	if line["request_id"] != "req-42" {
		t.Errorf("request_id = %v", line["request_id"])
	}
	if src, _ := line["source"].(string); !strings.Contains(src, "logger_test.go") {
		t.Errorf("source = %v, want caller file", line["source"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWith(&buf, "text"); err != nil {
		t.Fatalf("init: %v", err)
	}
	ctx := context.Background()

	Get().Debug(ctx, "hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %q", buf.String())
	}

	if err := SetLevelString("DEBUG"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	Get().Debug(ctx, "visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("debug line missing: %q", buf.String())
	}

	if err := SetLevelString("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	_ = SetLevelString("info")
}

func TestLoggerNamed(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWith(&buf, "text"); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Named("probe").Warn(context.Background(), "test message")
	if !strings.Contains(buf.String(), "component=probe") {
		t.Fatalf("named component missing: %q", buf.String())
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Info(context.Background(), "nothing")
	l.Named("x").Error(context.Background(), "still nothing")
}
