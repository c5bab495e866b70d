package state

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"riftwalker/pkg/game/generator"
	gameworld "riftwalker/pkg/game/world"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(60, 40, generator.DefaultConfig())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

// makeForkWorld: spawn(0) links to ability room 1 (dash) and to room 2, which needs dash.
func makeForkWorld() *gameworld.World {
	rooms := []*gameworld.Room{
		{ID: 0, Type: gameworld.RoomSpawn, Connections: []int{1, 2}},
		{ID: 1, Type: gameworld.RoomAbility, Ability: gameworld.Dash, Connections: []int{0}},
		{ID: 2, Type: gameworld.RoomNormal, RequiredAbility: gameworld.Dash, Connections: []int{0}},
	}
	return &gameworld.World{Rooms: rooms}
}

func TestNewSession_RejectsBadInput(t *testing.T) {
	if _, err := NewSession(0, 40, generator.DefaultConfig()); err == nil {
		t.Error("NewSession() accepted zero width")
	}
	cfg := generator.DefaultConfig()
	cfg.TileSize = 0
	if _, err := NewSession(60, 40, cfg); err == nil {
		t.Error("NewSession() accepted zero tile size")
	}
}

func TestRegenerate_SameSeedSameWorld(t *testing.T) {
	a := newTestSession(t)
	b := newTestSession(t)

	if err := a.Regenerate(42); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}
	if err := b.Regenerate(42); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}

	if !reflect.DeepEqual(a.World, b.World) {
		t.Error("same seed produced different worlds")
	}
	if a.Seed != 42 || a.Generation != 1 {
		t.Errorf("Seed, Generation = %d, %d, want 42, 1", a.Seed, a.Generation)
	}
}

func TestRegenerate_ResetsExplorer(t *testing.T) {
	s := newTestSession(t)
	if err := s.Regenerate(5); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}
	s.CurrentRoom = 3
	s.Held.Put(gameworld.Dash)

	if err := s.RegenerateRandom(); err != nil {
		t.Fatalf("RegenerateRandom() error = %v", err)
	}
	if s.Seed == 0 {
		t.Error("RegenerateRandom() left seed at 0")
	}
	if s.Generation != 2 {
		t.Errorf("Generation = %d, want 2", s.Generation)
	}
	if s.CurrentRoom != 0 || s.HasAbility(gameworld.Dash) {
		t.Error("explorer state survived regeneration")
	}
	if !s.Visited.Has(0) || s.Visited.Size() != 1 {
		t.Errorf("Visited size = %d, want only the spawn room", s.Visited.Size())
	}
}

func TestEnter(t *testing.T) {
	s := newTestSession(t)

	if err := s.Enter(1); !errors.Is(err, ErrNoWorld) {
		t.Errorf("Enter() without world = %v, want ErrNoWorld", err)
	}

	s.World = makeForkWorld()
	s.Visited = mapset.New[int]()

	if err := s.Enter(2); !errors.Is(err, ErrLocked) {
		t.Fatalf("Enter(2) = %v, want ErrLocked", err)
	}
	if s.CurrentRoom != 0 {
		t.Errorf("CurrentRoom = %d after locked entry, want 0", s.CurrentRoom)
	}

	if err := s.Enter(1); err != nil {
		t.Fatalf("Enter(1) = %v", err)
	}
	if !s.HasAbility(gameworld.Dash) {
		t.Error("entering the ability room did not collect dash")
	}

	if err := s.Enter(2); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Enter(2) from room 1 = %v, want ErrNotConnected", err)
	}
	if err := s.Enter(0); err != nil {
		t.Fatalf("Enter(0) = %v", err)
	}
	if err := s.Enter(2); err != nil {
		t.Errorf("Enter(2) with dash = %v", err)
	}
	if s.Visited.Size() != 3 {
		t.Errorf("Visited size = %d, want 3", s.Visited.Size())
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	s := newTestSession(t)
	for _, m := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		s.AddMessage(m)
	}

	want := []string{"c", "d", "e", "f", "g"}
	if !reflect.DeepEqual(s.Messages, want) {
		t.Errorf("Messages = %v, want %v", s.Messages, want)
	}

	s.ClearMessages()
	if len(s.Messages) != 0 {
		t.Errorf("len(Messages) = %d after clear, want 0", len(s.Messages))
	}
}

func TestLoad_ResetsExplorer(t *testing.T) {
	s := newTestSession(t)
	s.Load(makeForkWorld(), 0)
	if err := s.Enter(1); err != nil {
		t.Fatalf("Enter(1) = %v", err)
	}

	s.Load(makeForkWorld(), 77)

	if s.Seed != 77 || s.Generation != 2 || s.CurrentRoom != 0 {
		t.Errorf("Seed, Generation, CurrentRoom = %d, %d, %d, want 77, 2, 0", s.Seed, s.Generation, s.CurrentRoom)
	}
	if s.Held.Size() != 0 || s.Visited.Size() != 1 || !s.Visited.Has(0) {
		t.Errorf("Held size %d, Visited size %d, want 0 and {0}", s.Held.Size(), s.Visited.Size())
	}
}
