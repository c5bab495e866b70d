package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"riftwalker/pkg/game/generator"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(generator.DefaultConfig(), ":0").Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health error = %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("GET /health = %d %q, want 200 ok", resp.StatusCode, body)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header = %q, want *", got)
	}
}

func TestWorld_MatchesSeededGenerator(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/world?seed=5&width=60&height=40")
	if err != nil {
		t.Fatalf("GET /world error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got Response
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Type != "world" || got.Seed != 5 {
		t.Fatalf("response = %q seed %d, want world seed 5", got.Type, got.Seed)
	}

	want := generator.NewSeeded(5).Generate(60, 40)
	if len(got.World.Rooms) != len(want.Rooms) {
		t.Fatalf("%d rooms, want %d", len(got.World.Rooms), len(want.Rooms))
	}
	for i, r := range want.Rooms {
		g := got.World.Rooms[i]
		if g.X != r.X || g.Y != r.Y || g.Type != r.Type || g.RequiredAbility != r.RequiredAbility {
			t.Errorf("room %d = %+v, want %+v", i, g, r)
		}
	}
	if got.World.Tilemap.Width != 60 || len(got.World.Tilemap.Cells) != 40 {
		t.Errorf("tilemap %dx%d, want 60x40", got.World.Tilemap.Width, len(got.World.Tilemap.Cells))
	}
}

func TestWorld_BadRequests(t *testing.T) {
	ts := newTestServer(t)

	for _, query := range []string{"width=0x", "width=513", "height=-1", "seed=abc"} {
		resp, err := http.Get(ts.URL + "/world?" + query)
		if err != nil {
			t.Fatalf("GET /world?%s error = %v", query, err)
		}
		var got Response
		json.NewDecoder(resp.Body).Decode(&got)
		resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest || got.Type != "error" || got.Error == "" {
			t.Errorf("GET /world?%s = %d %+v, want 400 error", query, resp.StatusCode, got)
		}
	}
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	return conn
}

func TestWebSocket_Generate(t *testing.T) {
	conn := dialWS(t, newTestServer(t))

	if err := conn.WriteJSON(Request{Type: "generate", Seed: 8, Width: 60, Height: 40}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	var got Response
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if got.Type != "world" || got.Seed != 8 {
		t.Fatalf("response = %q seed %d, want world seed 8", got.Type, got.Seed)
	}
	want := generator.NewSeeded(8).Generate(60, 40)
	if len(got.World.Rooms) != len(want.Rooms) {
		t.Errorf("%d rooms, want %d", len(got.World.Rooms), len(want.Rooms))
	}
}

func TestWebSocket_Errors(t *testing.T) {
	conn := dialWS(t, newTestServer(t))

	requests := []Request{
		{Type: "explode"},
		{Type: "generate", Width: 1000, Height: 10},
	}
	for _, req := range requests {
		if err := conn.WriteJSON(req); err != nil {
			t.Fatalf("WriteJSON() error = %v", err)
		}
		var got Response
		if err := conn.ReadJSON(&got); err != nil {
			t.Fatalf("ReadJSON() error = %v", err)
		}
		if got.Type != "error" || got.Error == "" || got.World != nil {
			t.Errorf("request %+v got %+v, want an error", req, got)
		}
	}
}

func TestGenerate_DefaultsAndRandomSeed(t *testing.T) {
	s := New(generator.DefaultConfig(), ":0")

	w, seed, err := s.Generate(0, 0, 0)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if seed == 0 {
		t.Error("Generate() returned seed 0")
	}
	if w.Tilemap.Width != DefaultWidth || w.Tilemap.Height != DefaultHeight {
		t.Errorf("tilemap %dx%d, want %dx%d", w.Tilemap.Width, w.Tilemap.Height, DefaultWidth, DefaultHeight)
	}
}
