// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"riftwalker/pkg/game/renderer"
	"riftwalker/pkg/game/state"
	gameworld "riftwalker/pkg/game/world"
)

// DefaultDumpFilename is where dumps go when no path is given
const DefaultDumpFilename = "map.txt"

// WriteDump writes a full debug dump of the session's world: metadata, legend,
// the rendered map, the raw tilemap and per-room details.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func WriteDump(w io.Writer, s *state.Session) error {
	world := s.World
	if world == nil {
		return fmt.Errorf("no world")
	}
	room := s.Current()

	ew := &errWriter{w: w}

	// --- Metadata ---
	ew.println("=== MAP DUMP DEBUG (room graph, gates, entities) ===")
	ew.println("")
	ew.println("--- Metadata ---")
	ew.printf("seed: %d\n", s.Seed)
	ew.printf("generation: %d\n", s.Generation)
	ew.printf("grid_width: %d\n", world.Tilemap.Width)
	ew.printf("grid_height: %d\n", world.Tilemap.Height)
	ew.printf("coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	ew.printf("rooms: %d\n", len(world.Rooms))
	ew.printf("connections: %d\n", len(world.Connections))
	ew.printf("player_start_px: %v,%v\n", world.PlayerStart.X, world.PlayerStart.Y)
	if room != nil {
		ew.printf("current_room: %d\n", room.ID)
	}
	if err := world.Validate(s.Config.Padding); err != nil {
		ew.printf("validation: %v\n", err)
	} else {
		ew.println("validation: ok")
	}
	report := world.Progression()
	ew.printf("completable: %v\n", report.Completable())
	ew.println("")

	// --- Legend ---
	ew.println("--- Legend (cell symbols) ---")
	for _, g := range renderer.Glyphs() {
		ew.printf("%c = %s  ", g.Symbol(), g.LegendKey())
	}
	ew.println("")
	ew.println("")

	// --- Map ---
	ew.println("--- Map (rendered) ---")
	if c := renderer.SessionCanvas(s); c != nil {
		ew.println(c.String())
	}
	ew.println("")

	ew.println("--- Tilemap (0 = empty/floor, 1 = wall, 2 = doorway) ---")
	for _, row := range world.Tilemap.Cells {
		for _, code := range row {
			ew.printf("%d", code)
		}
		ew.println("")
	}
	ew.println("")

	// --- Rooms ---
	ew.println("--- Rooms ---")
	for _, r := range world.Rooms {
		ew.printf("  id: %d type: %s x: %d y: %d width: %d height: %d center_px: %v,%v connections: %v",
			r.ID, r.Type, r.X, r.Y, r.Width, r.Height, r.Center.X, r.Center.Y, r.Connections)
		if r.IsGated() {
			ew.printf(" requires: %s", r.RequiredAbility)
		}
		if r.GrantsAbility() {
			ew.printf(" grants: %s", r.Ability)
		}
		ew.println("")
	}
	ew.println("")

	ew.println("Doorways:")
	for _, r := range world.Rooms {
		for _, d := range r.Doorways {
			ew.printf("  room: %d x: %d y: %d target_room: %d\n", r.ID, d.X, d.Y, d.TargetRoom)
		}
	}
	ew.println("")

	ew.println("Enemies:")
	for _, r := range world.Rooms {
		for _, e := range r.Enemies {
			ew.printf("  room: %d x: %d y: %d type: %s\n", r.ID, e.X, e.Y, e.Type)
		}
	}
	ew.println("")

	ew.println("Items:")
	for _, r := range world.Rooms {
		for _, it := range r.Items {
			ew.printf("  room: %d x: %d y: %d type: %s\n", r.ID, it.X, it.Y, it.Type)
		}
	}
	ew.println("")

	// --- Abilities ---
	ew.println("Ability locations:")
	if len(world.AbilityLocations) == 0 {
		ew.println("  (none)")
	}
	for _, a := range world.PlacedAbilities() {
		loc := world.AbilityLocations[a]
		ew.printf("  ability: %s x_px: %v y_px: %v\n", a, loc.X, loc.Y)
	}
	ew.println("")

	ew.println("Progression:")
	ew.printf("  order: %v\n", report.Order)
	ew.printf("  stranded: %v\n", report.Stranded)
	ew.printf("  unreachable_rooms: %v\n", report.Unreachable)
	ew.println("")

	// Explorer inventory
	ew.println("Collected abilities:")
	held := heldAbilities(s)
	if len(held) == 0 {
		ew.println("  (none)")
	}
	for _, a := range held {
		ew.printf("  ability: %s\n", a)
	}
	ew.println("")

	ew.println("=== END MAP DUMP ===")
	return ew.err
}

// DumpToFile writes WriteDump output to path (DefaultDumpFilename when empty)
// and returns the absolute path written.
func DumpToFile(s *state.Session, path string) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, s); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

func heldAbilities(s *state.Session) []string {
	var names []string
	s.Held.Each(func(a gameworld.Ability) {
		names = append(names, string(a))
	})
	sort.Strings(names)
	return names
}

// errWriter remembers the first write error so the dump can be written without
// checking every line
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, s)
}
