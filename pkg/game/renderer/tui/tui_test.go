package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"

	"riftwalker/pkg/game/generator"
	"riftwalker/pkg/game/state"
	gameworld "riftwalker/pkg/game/world"
)

func newTestRenderer(t *testing.T, input string) (*TUIRenderer, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	r := NewWithIO(strings.NewReader(input), &out)
	r.Init()
	return r, &out
}

func newTestSession(t *testing.T) *state.Session {
	t.Helper()
	s, err := state.NewSession(60, 40, generator.DefaultConfig())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

func TestFrame_ShowsSeedMapAndLegend(t *testing.T) {
	r, _ := newTestRenderer(t, "")
	s := newTestSession(t)
	if err := s.Regenerate(42); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}

	frame := color.ClearCode(r.Frame(s, 30, 11))

	for _, want := range []string{"Seed 42", "@", "IN_ROOM", "ROOM_TYPE_SPAWN", "LEGEND_WALL", "Messages"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q:\n%s", want, frame)
		}
	}
}

func TestFrame_NoWorld(t *testing.T) {
	r, _ := newTestRenderer(t, "")
	frame := color.ClearCode(r.Frame(newTestSession(t), 30, 11))
	if !strings.Contains(frame, "(no world)") {
		t.Errorf("frame = %q, want no world notice", frame)
	}
}

func TestExecute(t *testing.T) {
	r, _ := newTestRenderer(t, "")
	s := newTestSession(t)

	if quit := r.Execute(s, "s 7"); quit {
		t.Fatal("seed command quit")
	}
	if s.Seed != 7 || s.Generation != 1 {
		t.Errorf("Seed, Generation = %d, %d, want 7, 1", s.Seed, s.Generation)
	}

	r.Execute(s, "s nope")
	if last := color.ClearCode(s.Messages[len(s.Messages)-1]); !strings.Contains(last, "bad seed") {
		t.Errorf("last message = %q, want bad seed", last)
	}

	r.Execute(s, "g 999")
	if s.CurrentRoom != 0 {
		t.Errorf("CurrentRoom = %d after bad move, want 0", s.CurrentRoom)
	}

	if quit := r.Execute(s, "Q"); !quit {
		t.Error("Execute(Q) did not quit")
	}
}

func TestRun_ReadsCommandsUntilQuit(t *testing.T) {
	r, out := newTestRenderer(t, "s 9\nq\n")
	s := newTestSession(t)

	if err := r.Run(s); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if s.Seed != 9 {
		t.Errorf("Seed = %d, want 9", s.Seed)
	}
	if s.Generation != 2 {
		t.Errorf("Generation = %d, want 2", s.Generation)
	}
	if !strings.Contains(color.ClearCode(out.String()), "Seed 9") {
		t.Error("output never showed the regenerated seed")
	}
}

func TestFormatText(t *testing.T) {
	r, _ := newTestRenderer(t, "")
	got := color.ClearCode(r.FormatText("GT{EXITS} ACTION{quit} ROOM{%d}", 4))
	if got != "EXITS quit 4" {
		t.Errorf("FormatText() = %q, want %q", got, "EXITS quit 4")
	}
}

func TestExecute_DevMapAndDump(t *testing.T) {
	r, _ := newTestRenderer(t, "")
	r.dumpPath = filepath.Join(t.TempDir(), "map.txt")
	s := newTestSession(t)

	r.Execute(s, "m")
	if s.World == nil || s.World.Room(0).Type != gameworld.RoomSpawn {
		t.Fatal("dev map not loaded")
	}

	// Room 1 hands out double jump, which opens room 2
	r.Execute(s, "1")
	r.Execute(s, "2")
	if s.CurrentRoom != 2 {
		t.Errorf("CurrentRoom = %d, want 2", s.CurrentRoom)
	}
	if !s.HasAbility(gameworld.DoubleJump) {
		t.Error("double jump not collected")
	}

	r.Execute(s, "d")
	if _, err := os.Stat(r.dumpPath); err != nil {
		t.Errorf("dump not written: %v", err)
	}
}

func TestExitsLine_TranslationWithPercent(t *testing.T) {
	prev := dynamicGet
	dynamicGet = func(key string, vars ...any) string {
		if key == "ABILITY_DASH" {
			return "100% dash"
		}
		return key
	}
	t.Cleanup(func() { dynamicGet = prev })

	r, _ := newTestRenderer(t, "")
	s := newTestSession(t)
	s.Load(&gameworld.World{Rooms: []*gameworld.Room{
		{ID: 0, Type: gameworld.RoomSpawn, Connections: []int{1, 2}},
		{ID: 1, Type: gameworld.RoomAbility, Ability: gameworld.Dash, Connections: []int{0}},
		{ID: 2, Type: gameworld.RoomNormal, RequiredAbility: gameworld.Dash, Connections: []int{0}},
	}}, 0)

	got := color.ClearCode(r.exitsLine(s, s.Current()))
	want := "EXITS 1, 2 (100% dash)"
	if got != want {
		t.Errorf("exitsLine() = %q, want %q", got, want)
	}
}
