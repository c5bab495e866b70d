// Package server exposes world generation over HTTP and WebSocket.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"riftwalker/pkg/engine/rng"
	"riftwalker/pkg/game/generator"
	gameworld "riftwalker/pkg/game/world"
	"riftwalker/pkg/logger"
)

// Size limits accepted from clients
const (
	MaxDimension  = 512
	DefaultWidth  = 60
	DefaultHeight = 40
)

// Request is a command sent by a WebSocket client
type Request struct {
	Type   string `json:"type"`
	Seed   int64  `json:"seed"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Response is sent back for every request, and as the body of GET /world
type Response struct {
	Type  string           `json:"type"`
	Seed  int64            `json:"seed,omitempty"`
	World *gameworld.World `json:"world,omitempty"`
	Error string           `json:"error,omitempty"`
}

type Server struct {
	Config generator.Config
	Addr   string
}

func New(cfg generator.Config, addr string) *Server {
	return &Server{
		Config: cfg,
		Addr:   addr,
	}
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/world", enableCORS(s.handleWorld))
	return mux
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	logger.Log.WithField("addr", s.Addr).Info("world server listening")
	return http.ListenAndServe(s.Addr, s.Handler())
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// Generate builds one world for a request. A zero seed picks a time-based one;
// zero dimensions take the defaults.
func (s *Server) Generate(seed int64, width, height int) (*gameworld.World, int64, error) {
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	if width < 1 || width > MaxDimension || height < 1 || height > MaxDimension {
		return nil, 0, fmt.Errorf("world size %dx%d outside 1..%d", width, height, MaxDimension)
	}
	if seed == 0 {
		seed = rng.NewSeed()
	}

	gen, err := generator.NewMetroidvania(s.Config, rng.NewSeeded(seed))
	if err != nil {
		return nil, 0, err
	}
	w := gen.Generate(width, height)

	logger.Log.WithFields(logrus.Fields{
		"seed":   seed,
		"width":  width,
		"height": height,
		"rooms":  len(w.Rooms),
	}).Debug("world served")
	return w, seed, nil
}

// handleWorld serves GET /world?seed=&width=&height=
func (s *Server) handleWorld(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, Response{Type: "error", Error: "method not allowed"})
		return
	}

	q := r.URL.Query()
	seed, err1 := queryInt64(q.Get("seed"))
	width, err2 := queryInt64(q.Get("width"))
	height, err3 := queryInt64(q.Get("height"))
	for _, err := range []error{err1, err2, err3} {
		if err != nil {
			writeJSON(w, http.StatusBadRequest, Response{Type: "error", Error: err.Error()})
			return
		}
	}

	world, used, err := s.Generate(seed, int(width), int(height))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Type: "error", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, Response{Type: "world", Seed: used, World: world})
}

// handleWS upgrades the connection and starts the client pumps
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("websocket upgrade failed")
		return
	}

	client := NewClient(s, conn)

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func queryInt64(v string) (int64, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", v)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Warn("failed to write response")
	}
}
