package tilecut

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/tilecut/geom"
	"github.com/gogpu/tilecut/internal/assert"
)

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	logger().Debug("probe")
	if buf.Len() == 0 {
		t.Fatal("configured logger received no output")
	}

	buf.Reset()
	SetLogger(nil)
	logger().Debug("probe")
	if buf.Len() != 0 {
		t.Error("nil logger still produces output")
	}
}

// TestContractViolationLogsAndPanics checks the failure path: the
// violation is reported through the configured sink, then the library
// panics with an assert.Violation.
func TestContractViolationLogsAndPanics(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on contract violation")
		}
		v, ok := r.(*assert.Violation)
		if !ok {
			t.Fatalf("panic value %T, want *assert.Violation", r)
		}
		if v.Kind != "precondition" {
			t.Errorf("violation kind %q, want precondition", v.Kind)
		}
		out := buf.String()
		if !strings.Contains(out, "failed") || !strings.Contains(out, "tileSize") {
			t.Errorf("sink did not receive the violation: %q", out)
		}
	}()
	NewTileGrid(geom.Vec2s64{}, 0)
}
