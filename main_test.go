package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"riftwalker/pkg/game/generator"
	"riftwalker/pkg/game/state"
	"riftwalker/pkg/server"
)

func newTestSession(t *testing.T) *state.Session {
	t.Helper()
	s, err := state.NewSession(60, 40, generator.DefaultConfig())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if err := s.Regenerate(3); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}
	return s
}

func TestWriteWorldJSON_File(t *testing.T) {
	s := newTestSession(t)
	path := filepath.Join(t.TempDir(), "world.json")

	if err := writeWorldJSON(s, path); err != nil {
		t.Fatalf("writeWorldJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var got server.Response
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Type != "world" || got.Seed != 3 || len(got.World.Rooms) != len(s.World.Rooms) {
		t.Errorf("response = %q seed %d with %d rooms, want world seed 3 with %d rooms",
			got.Type, got.Seed, len(got.World.Rooms), len(s.World.Rooms))
	}
}

func TestWriteWorldJSON_ReportsFileErrors(t *testing.T) {
	s := newTestSession(t)
	path := filepath.Join(t.TempDir(), "missing", "world.json")

	if err := writeWorldJSON(s, path); err == nil {
		t.Error("writeWorldJSON() into a missing directory returned nil error")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncodeWorld_ReportsWriteErrors(t *testing.T) {
	if err := encodeWorld(failingWriter{}, newTestSession(t)); err == nil {
		t.Error("encodeWorld() on a failing writer returned nil error")
	}
}
