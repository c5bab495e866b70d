// Package state holds the viewer session: the current world, how it was
// generated, and where the explorer stands in it.
package state

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"riftwalker/pkg/engine/rng"
	"riftwalker/pkg/game/generator"
	gameworld "riftwalker/pkg/game/world"
	"riftwalker/pkg/logger"
)

// Errors returned by Session.Enter
var (
	ErrNoWorld      = errors.New("no world generated")
	ErrNotConnected = errors.New("room is not connected to the current room")
	ErrLocked       = errors.New("room requires an ability not yet collected")
)

const maxMessages = 5

// Session represents one viewing session of generated worlds
type Session struct {
	Width  int
	Height int
	Config generator.Config

	Seed       int64 // Seed of the current world
	Generation int   // How many worlds this session has generated

	World *gameworld.World

	CurrentRoom int // Room the explorer is standing in
	Held        mapset.Set[gameworld.Ability]
	Visited     mapset.Set[int]

	Messages []string
}

// NewSession creates a session for width x height worlds. No world exists
// until Regenerate is called.
func NewSession(width, height int, cfg generator.Config) (*Session, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("world size %dx%d must be positive", width, height)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	return &Session{
		Width:    width,
		Height:   height,
		Config:   cfg,
		Held:     mapset.New[gameworld.Ability](),
		Visited:  mapset.New[int](),
		Messages: make([]string, 0),
	}, nil
}

// Regenerate discards the current world and builds a new one from seed.
// A zero seed picks a time-based one.
func (s *Session) Regenerate(seed int64) error {
	if seed == 0 {
		seed = rng.NewSeed()
	}

	gen, err := generator.NewMetroidvania(s.Config, rng.NewSeeded(seed))
	if err != nil {
		return err
	}

	s.Load(gen.Generate(s.Width, s.Height), seed)

	logger.Log.WithField("seed", seed).WithField("generation", s.Generation).Info("world regenerated")
	s.AddMessage(fmt.Sprintf("Generated world #%d (seed %d, %d rooms)", s.Generation, seed, len(s.World.Rooms)))
	return nil
}

// Load replaces the current world and puts the explorer back in the spawn
// room with nothing collected. seed is informational only.
func (s *Session) Load(w *gameworld.World, seed int64) {
	s.World = w
	s.Seed = seed
	s.Generation++
	s.CurrentRoom = 0
	s.Held = mapset.New[gameworld.Ability]()
	s.Visited = mapset.New[int]()
	s.Visited.Put(0)
}

// RegenerateRandom builds a new world from a fresh time-based seed
func (s *Session) RegenerateRandom() error {
	return s.Regenerate(0)
}

// Current returns the room the explorer is in, or nil without a world
func (s *Session) Current() *gameworld.Room {
	if s.World == nil {
		return nil
	}
	return s.World.Room(s.CurrentRoom)
}

// Enter moves the explorer into a neighbouring room. Gated rooms need their
// ability to have been collected first; entering an ability room collects it.
func (s *Session) Enter(id int) error {
	current := s.Current()
	if current == nil {
		return ErrNoWorld
	}
	target := s.World.Room(id)
	if target == nil || !current.IsConnectedTo(id) {
		return ErrNotConnected
	}
	if target.IsGated() && !s.Held.Has(target.RequiredAbility) {
		s.AddMessage(fmt.Sprintf("Room %d needs %s", id, target.RequiredAbility))
		return ErrLocked
	}

	s.CurrentRoom = id
	s.Visited.Put(id)
	if target.GrantsAbility() && !s.Held.Has(target.Ability) {
		s.Held.Put(target.Ability)
		s.AddMessage(fmt.Sprintf("Collected %s", target.Ability))
	}
	return nil
}

// HasAbility checks if the explorer has collected an ability
func (s *Session) HasAbility(a gameworld.Ability) bool {
	return s.Held.Has(a)
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}
