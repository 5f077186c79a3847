package internal

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "info")
	log.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	if entry["service"] != "metro-indexer" {
		t.Errorf("service = %v", entry["service"])
	}
	runID, _ := entry["run_id"].(string)
	if _, err := uuid.Parse(runID); err != nil {
		t.Errorf("run_id %q is not a uuid: %v", runID, err)
	}
	if entry["message"] != "hello" {
		t.Errorf("message = %v", entry["message"])
	}
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "warn")
	log.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %s", buf.String())
	}
	log.Warn().Msg("kept")
	if buf.Len() == 0 {
		t.Error("warn should be written at warn level")
	}
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "chatty")
	log.Debug().Msg("dropped")
	if buf.Len() != 0 {
		t.Error("debug should be filtered at the fallback level")
	}
	log.Info().Msg("kept")
	if buf.Len() == 0 {
		t.Error("info should be written at the fallback level")
	}
}

func TestNewLogger_DistinctRunIDs(t *testing.T) {
	var a, b bytes.Buffer
	la := NewLogger(&a, "info")
	lb := NewLogger(&b, "info")
	la.Info().Msg("x")
	lb.Info().Msg("x")

	var ea, eb map[string]any
	_ = json.Unmarshal(a.Bytes(), &ea)
	_ = json.Unmarshal(b.Bytes(), &eb)
	if ea["run_id"] == eb["run_id"] {
		t.Error("each logger should get its own run id")
	}
}

func TestInitLogging_Console(t *testing.T) {
	var buf bytes.Buffer
	log := InitLogging(&buf, "info")
	log.Info().Str("output", "out.json").Msg("Conversion complete")

	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("Conversion complete")) || !bytes.Contains(buf.Bytes(), []byte("output=out.json")) {
		t.Errorf("unexpected console output: %s", out)
	}
	if bytes.Contains(buf.Bytes(), []byte("\x1b[")) {
		t.Error("console output should not contain color codes")
	}
}
