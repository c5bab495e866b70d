// Package generator builds Metroidvania worlds: a connected graph of rooms,
// ability gates, room rasters, enemy and item spawns, and a flattened tilemap.
package generator

import (
	"github.com/sirupsen/logrus"

	"riftwalker/pkg/engine/rng"
	"riftwalker/pkg/engine/world"
	gameworld "riftwalker/pkg/game/world"
	"riftwalker/pkg/logger"
)

// WorldGenerator is an interface for world generation algorithms
type WorldGenerator interface {
	Generate(width, height int) *gameworld.World
	Name() string
}

// MetroidvaniaGenerator grows a room graph outwards from a spawn room.
// It is not safe for concurrent use: every call draws from the same Source.
type MetroidvaniaGenerator struct {
	cfg Config
	rnd rng.Source
}

// NewMetroidvania creates a generator with the given settings and randomness source
func NewMetroidvania(cfg Config, rnd rng.Source) (*MetroidvaniaGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = rng.NewSeeded(rng.NewSeed())
	}
	return &MetroidvaniaGenerator{cfg: cfg, rnd: rnd}, nil
}

// NewSeeded creates a generator with the default settings seeded for reproducible output
func NewSeeded(seed int64) *MetroidvaniaGenerator {
	return &MetroidvaniaGenerator{cfg: DefaultConfig(), rnd: rng.NewSeeded(seed)}
}

// Name returns the name of this generator
func (g *MetroidvaniaGenerator) Name() string {
	return "Metroidvania Graph"
}

// Config returns the generator settings
func (g *MetroidvaniaGenerator) Config() Config {
	return g.cfg
}

// Generate runs every stage once and returns a fresh world.
// width and height bound the tilemap; rooms may extend past them.
func (g *MetroidvaniaGenerator) Generate(width, height int) *gameworld.World {
	log := logger.Log.WithFields(logrus.Fields{
		"generator": g.Name(),
		"width":     width,
		"height":    height,
	})

	// 1. Room graph
	rooms, connections := g.buildRoomGraph(width, height, log)

	// 2. Abilities and gates
	abilityLocations := g.placeAbilities(rooms)
	g.placeGates(rooms, placedAbilities(abilityLocations), log)

	// 3. Enemies and items
	for _, room := range rooms {
		g.populateRoom(room)
	}

	// 4. Geometry and tilemap
	w := AssembleWorld(width, height, rooms, connections, abilityLocations, g.cfg.DoorwayMode)

	log.WithFields(logrus.Fields{
		"rooms":       len(rooms),
		"connections": len(connections),
		"abilities":   len(abilityLocations),
		"gated":       len(w.GatedRooms()),
	}).Debug("world generated")

	return w
}

// AssembleWorld rasterizes placed rooms (tiles and doorways), composes the
// tilemap and wraps everything in a World. rooms must be indexed by id with
// the spawn room first. It draws no randomness.
func AssembleWorld(width, height int, rooms []*gameworld.Room, connections []gameworld.Connection,
	abilityLocations map[gameworld.Ability]world.Point, mode DoorwayMode) *gameworld.World {
	for _, room := range rooms {
		rasterizeRoom(room, rooms, mode)
	}

	w := &gameworld.World{
		Rooms:            rooms,
		Connections:      connections,
		Tilemap:          ComposeTilemap(width, height, rooms),
		AbilityLocations: abilityLocations,
	}
	if len(rooms) > 0 {
		w.PlayerStart = rooms[0].Center
	}
	return w
}
