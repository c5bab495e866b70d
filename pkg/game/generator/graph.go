package generator

import (
	"math"

	"github.com/sirupsen/logrus"

	"riftwalker/pkg/engine/rng"
	"riftwalker/pkg/engine/world"
	gameworld "riftwalker/pkg/game/world"
)

// buildRoomGraph places the spawn room and grows a tree of rooms from it.
// Every accepted room is linked to the existing room it branched from, so the
// graph is connected by construction. A room index that cannot be placed after
// PlacementAttempts tries is skipped, which can leave fewer rooms than targeted.
func (g *MetroidvaniaGenerator) buildRoomGraph(width, height int, log logrus.FieldLogger) ([]*gameworld.Room, []gameworld.Connection) {
	cfg := g.cfg
	target := rng.Range(g.rnd, cfg.MinRooms, cfg.MaxRooms)
	log.WithField("target", target).Debug("growing room graph")

	spawn := g.newRoom(0, world.Rect{
		X: width / 2,
		Y: height / 2,
		W: cfg.SpawnWidth,
		H: cfg.SpawnHeight,
	}, gameworld.RoomSpawn)

	rooms := []*gameworld.Room{spawn}
	var connections []gameworld.Connection

	for i := 1; i < target; i++ {
		placed := false

		for attempt := 0; attempt < cfg.PlacementAttempts; attempt++ {
			parent := rooms[rng.Intn(g.rnd, len(rooms))]
			angle := rng.Angle(g.rnd)
			distance := rng.Range(g.rnd, cfg.MinBranchDistance, cfg.MaxBranchDistance)
			w := rng.Range(g.rnd, cfg.MinRoomWidth, cfg.MaxRoomWidth)
			h := rng.Range(g.rnd, cfg.MinRoomHeight, cfg.MaxRoomHeight)

			candidate := branchRect(parent.Bounds(), angle, distance, w, h)
			if overlapsAny(candidate, rooms, cfg.Padding) {
				continue
			}

			room := g.newRoom(len(rooms), candidate, g.roomType(i, target))
			rooms = append(rooms, room)

			connections = append(connections, gameworld.Connection{
				From: parent.ID,
				To:   room.ID,
				Type: gameworld.ConnectionNormal,
			})
			parent.Connections = append(parent.Connections, room.ID)
			room.Connections = append(room.Connections, parent.ID)

			placed = true
			break
		}

		if !placed {
			log.WithFields(logrus.Fields{
				"index":    i,
				"attempts": cfg.PlacementAttempts,
			}).Debug("room skipped, no free space found")
		}
	}

	return rooms, connections
}

// newRoom creates a room with its pixel centre filled in
func (g *MetroidvaniaGenerator) newRoom(id int, bounds world.Rect, roomType gameworld.RoomType) *gameworld.Room {
	return &gameworld.Room{
		ID:     id,
		X:      bounds.X,
		Y:      bounds.Y,
		Width:  bounds.W,
		Height: bounds.H,
		Type:   roomType,
		Center: gameworld.PixelCenter(bounds.X, bounds.Y, bounds.W, bounds.H, g.cfg.TileSize),
	}
}

// roomType decides a room's type from its index i out of target rooms.
// Checks run in a fixed order so an index matching several rules takes the first.
func (g *MetroidvaniaGenerator) roomType(i, target int) gameworld.RoomType {
	switch {
	case i == target-1:
		return gameworld.RoomBoss
	case i%g.cfg.AbilityEvery == 0:
		return gameworld.RoomAbility
	case i%g.cfg.SaveEvery == 0:
		return gameworld.RoomSave
	case rng.Chance(g.rnd, g.cfg.SecretChance):
		return gameworld.RoomSecret
	default:
		return gameworld.RoomNormal
	}
}

// branchRect positions a w x h room along angle from parent so that, on the
// dominant axis of the angle, exactly distance empty cells separate the two.
func branchRect(parent world.Rect, angle float64, distance, w, h int) world.Rect {
	cos, sin := math.Cos(angle), math.Sin(angle)

	halfX := float64(parent.W+w) / 2
	halfY := float64(parent.H+h) / 2

	var t float64
	if math.Abs(cos) >= math.Abs(sin) {
		t = (float64(distance) + halfX) / math.Abs(cos)
	} else {
		t = (float64(distance) + halfY) / math.Abs(sin)
	}

	cx := float64(parent.X) + float64(parent.W)/2 + cos*t
	cy := float64(parent.Y) + float64(parent.H)/2 + sin*t

	return world.Rect{
		X: int(math.Round(cx - float64(w)/2)),
		Y: int(math.Round(cy - float64(h)/2)),
		W: w,
		H: h,
	}
}

// overlapsAny reports whether candidate's padded box touches any room's padded box
func overlapsAny(candidate world.Rect, rooms []*gameworld.Room, padding int) bool {
	padded := candidate.Pad(padding)
	for _, r := range rooms {
		if padded.Intersects(r.Bounds().Pad(padding)) {
			return true
		}
	}
	return false
}
