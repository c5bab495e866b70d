package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigure_JSON(t *testing.T) {
	var buf bytes.Buffer
	Configure("debug", "JSON", &buf)
	defer Configure("info", "", &bytes.Buffer{})

	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}
	Log.WithField("rooms", 15).Debug("generated")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "generated" {
		t.Errorf("msg = %v, want generated", entry["msg"])
	}
	if entry["rooms"] != float64(15) {
		t.Errorf("rooms = %v, want 15", entry["rooms"])
	}
}

func TestConfigure_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure("chatty", "text", &buf)
	defer Configure("info", "", &bytes.Buffer{})

	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}
	Log.Debug("hidden")
	Log.Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug line written at info level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("info line missing")
	}
}
