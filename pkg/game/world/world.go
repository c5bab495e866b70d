package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"riftwalker/pkg/engine/world"
)

// World is the immutable result of one generation run.
// Rooms[0] is always the spawn room and Rooms[i].ID == i.
type World struct {
	Rooms            []*Room                 `json:"rooms"`
	Connections      []Connection            `json:"connections"`
	Tilemap          *world.Tilemap          `json:"tilemap"`
	PlayerStart      world.Point             `json:"playerStart"`
	AbilityLocations map[Ability]world.Point `json:"abilityLocations"`
}

// Spawn returns the spawn room, or nil for an empty world
func (w *World) Spawn() *Room {
	if len(w.Rooms) == 0 {
		return nil
	}
	return w.Rooms[0]
}

// Room returns the room with the given id, or nil if out of range
func (w *World) Room(id int) *Room {
	if id < 0 || id >= len(w.Rooms) {
		return nil
	}
	return w.Rooms[id]
}

// RoomsOfType returns rooms of type t in creation order
func (w *World) RoomsOfType(t RoomType) []*Room {
	var out []*Room
	for _, r := range w.Rooms {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// GatedRooms returns every room that requires an ability, in creation order
func (w *World) GatedRooms() []*Room {
	var out []*Room
	for _, r := range w.Rooms {
		if r.IsGated() {
			out = append(out, r)
		}
	}
	return out
}

// PlacedAbilities returns the abilities present in AbilityLocations, in the fixed order
func (w *World) PlacedAbilities() []Ability {
	var out []Ability
	for _, a := range Abilities() {
		if _, ok := w.AbilityLocations[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

// RoomAt returns the first room whose footprint contains (x, y), or nil
func (w *World) RoomAt(x, y int) *Room {
	for _, r := range w.Rooms {
		if r.Bounds().Contains(x, y) {
			return r
		}
	}
	return nil
}

// ReachableFrom returns the ids reachable from start over the connection graph,
// entering only rooms for which allow returns true. The start room is always included.
func (w *World) ReachableFrom(start int, allow func(r *Room) bool) mapset.Set[int] {
	visited := mapset.New[int]()
	if w.Room(start) == nil {
		return visited
	}
	queue := []int{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := w.Rooms[queue[0]]
		queue = queue[1:]

		for _, n := range current.Connections {
			next := w.Room(n)
			if next == nil || visited.Has(n) {
				continue
			}
			if allow != nil && !allow(next) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}

	return visited
}

// Validate checks the structural invariants of a generated world and returns
// the first violation found. padding is the margin used when rooms were placed.
func (w *World) Validate(padding int) error {
	if len(w.Rooms) == 0 {
		return fmt.Errorf("world has no rooms")
	}

	if err := w.validateRooms(); err != nil {
		return err
	}
	if err := w.validateConnections(); err != nil {
		return err
	}

	reachable := w.ReachableFrom(0, nil)
	if reachable.Size() != len(w.Rooms) {
		for _, r := range w.Rooms {
			if !reachable.Has(r.ID) {
				return fmt.Errorf("room %d is not reachable from spawn", r.ID)
			}
		}
	}

	for i := 0; i < len(w.Rooms); i++ {
		a := w.Rooms[i].Bounds().Pad(padding)
		for j := i + 1; j < len(w.Rooms); j++ {
			if a.Intersects(w.Rooms[j].Bounds().Pad(padding)) {
				return fmt.Errorf("rooms %d and %d overlap (padding %d)", i, j, padding)
			}
		}
	}

	if err := w.validateAbilities(); err != nil {
		return err
	}
	if err := w.validateGeometry(); err != nil {
		return err
	}

	if w.Tilemap == nil {
		return fmt.Errorf("world has no tilemap")
	}
	if len(w.Tilemap.Cells) != w.Tilemap.Height {
		return fmt.Errorf("tilemap has %d rows, want %d", len(w.Tilemap.Cells), w.Tilemap.Height)
	}
	for y, row := range w.Tilemap.Cells {
		if len(row) != w.Tilemap.Width {
			return fmt.Errorf("tilemap row %d has %d cells, want %d", y, len(row), w.Tilemap.Width)
		}
	}

	if w.PlayerStart != w.Rooms[0].Center {
		return fmt.Errorf("player start %v differs from spawn centre %v", w.PlayerStart, w.Rooms[0].Center)
	}

	return nil
}

func (w *World) validateRooms() error {
	spawns := 0
	for i, r := range w.Rooms {
		if r == nil {
			return fmt.Errorf("room %d is nil", i)
		}
		if r.ID != i {
			return fmt.Errorf("room at index %d has id %d", i, r.ID)
		}
		if r.Width <= 0 || r.Height <= 0 {
			return fmt.Errorf("room %d has empty footprint %dx%d", i, r.Width, r.Height)
		}
		if r.Type == RoomSpawn {
			spawns++
		}
	}
	spawn := w.Rooms[0]
	if spawn.Type != RoomSpawn {
		return fmt.Errorf("room 0 has type %q, want spawn", spawn.Type)
	}
	if spawns != 1 {
		return fmt.Errorf("world has %d spawn rooms, want 1", spawns)
	}
	if spawn.IsGated() {
		return fmt.Errorf("spawn room requires ability %q", spawn.RequiredAbility)
	}
	return nil
}

type edgeKey struct{ a, b int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// validateConnections checks that the edge list and per-room lists mirror each other
func (w *World) validateConnections() error {
	edges := mapset.New[edgeKey]()
	for _, c := range w.Connections {
		if w.Room(c.From) == nil || w.Room(c.To) == nil {
			return fmt.Errorf("connection %d-%d references a missing room", c.From, c.To)
		}
		if c.From == c.To {
			return fmt.Errorf("connection loops on room %d", c.From)
		}
		key := makeEdgeKey(c.From, c.To)
		if edges.Has(key) {
			return fmt.Errorf("connection %d-%d recorded twice", c.From, c.To)
		}
		edges.Put(key)
		if !w.Rooms[c.From].IsConnectedTo(c.To) || !w.Rooms[c.To].IsConnectedTo(c.From) {
			return fmt.Errorf("connection %d-%d not mirrored in both rooms", c.From, c.To)
		}
	}

	for _, r := range w.Rooms {
		seen := mapset.New[int]()
		for _, n := range r.Connections {
			if seen.Has(n) {
				return fmt.Errorf("room %d lists neighbour %d twice", r.ID, n)
			}
			seen.Put(n)
			if !edges.Has(makeEdgeKey(r.ID, n)) {
				return fmt.Errorf("room %d lists neighbour %d without a connection record", r.ID, n)
			}
		}
	}
	return nil
}

func (w *World) validateAbilities() error {
	granted := make(map[Ability]int)
	for _, r := range w.Rooms {
		if !r.GrantsAbility() {
			continue
		}
		if r.Type != RoomAbility {
			return fmt.Errorf("room %d of type %q grants %q", r.ID, r.Type, r.Ability)
		}
		if prev, dup := granted[r.Ability]; dup {
			return fmt.Errorf("ability %q granted by rooms %d and %d", r.Ability, prev, r.ID)
		}
		granted[r.Ability] = r.ID
	}

	for a, loc := range w.AbilityLocations {
		if !a.IsKnown() {
			return fmt.Errorf("unknown ability %q in ability locations", a)
		}
		id, ok := granted[a]
		if !ok {
			return fmt.Errorf("ability %q has a location but no granting room", a)
		}
		if w.Rooms[id].Center != loc {
			return fmt.Errorf("ability %q location %v differs from room %d centre", a, loc, id)
		}
	}
	for a, id := range granted {
		if _, ok := w.AbilityLocations[a]; !ok {
			return fmt.Errorf("room %d grants %q but it has no location", id, a)
		}
	}

	for _, r := range w.Rooms {
		if !r.IsGated() {
			continue
		}
		if _, ok := w.AbilityLocations[r.RequiredAbility]; !ok {
			return fmt.Errorf("room %d requires unplaced ability %q", r.ID, r.RequiredAbility)
		}
	}
	return nil
}

func (w *World) validateGeometry() error {
	for _, r := range w.Rooms {
		bounds := r.Bounds()
		if len(r.Tiles) != r.Width*r.Height {
			return fmt.Errorf("room %d has %d tiles, want %d", r.ID, len(r.Tiles), r.Width*r.Height)
		}
		seen := mapset.New[[2]int]()
		for _, t := range r.Tiles {
			if !bounds.Contains(t.X, t.Y) {
				return fmt.Errorf("room %d tile (%d,%d) outside footprint", r.ID, t.X, t.Y)
			}
			if seen.Has([2]int{t.X, t.Y}) {
				return fmt.Errorf("room %d tile (%d,%d) duplicated", r.ID, t.X, t.Y)
			}
			seen.Put([2]int{t.X, t.Y})
			wantWall := bounds.OnBorder(t.X, t.Y)
			if wantWall != (t.Type == TileWall) {
				return fmt.Errorf("room %d tile (%d,%d) has type %q", r.ID, t.X, t.Y, t.Type)
			}
		}
		for _, d := range r.Doorways {
			if !bounds.Contains(d.X, d.Y) {
				return fmt.Errorf("room %d doorway (%d,%d) outside footprint", r.ID, d.X, d.Y)
			}
			if !r.IsConnectedTo(d.TargetRoom) {
				return fmt.Errorf("room %d doorway targets unconnected room %d", r.ID, d.TargetRoom)
			}
		}
	}
	return nil
}
