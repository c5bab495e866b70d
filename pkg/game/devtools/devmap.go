package devtools

import (
	"fmt"

	"riftwalker/pkg/engine/world"
	"riftwalker/pkg/game/generator"
	"riftwalker/pkg/game/state"
	gameworld "riftwalker/pkg/game/world"
	"riftwalker/pkg/logger"
)

// Dev map layout: one row of rooms with a fixed gap between each
const (
	devRoomWidth  = 8
	devRoomHeight = 6
	devMargin     = 2
	devGap        = 6
)

type devRoom struct {
	roomType gameworld.RoomType
	grants   gameworld.Ability
	requires gameworld.Ability
	enemies  []gameworld.EnemyType
	health   bool
}

// devRooms lists every room type, ability, gate, enemy and item once, in a
// chain that can be completed left to right
func devRooms() []devRoom {
	return []devRoom{
		{roomType: gameworld.RoomSpawn},
		{roomType: gameworld.RoomAbility, grants: gameworld.DoubleJump, enemies: []gameworld.EnemyType{gameworld.EnemyPatrol}},
		{roomType: gameworld.RoomNormal, requires: gameworld.DoubleJump, health: true,
			enemies: []gameworld.EnemyType{gameworld.EnemyPatrol, gameworld.EnemyFlyer, gameworld.EnemyTurret}},
		{roomType: gameworld.RoomAbility, grants: gameworld.WallJump},
		{roomType: gameworld.RoomSave},
		{roomType: gameworld.RoomAbility, grants: gameworld.Dash, requires: gameworld.WallJump},
		{roomType: gameworld.RoomSecret, health: true},
		{roomType: gameworld.RoomAbility, grants: gameworld.Grappling, enemies: []gameworld.EnemyType{gameworld.EnemyTurret}},
		{roomType: gameworld.RoomBoss, requires: gameworld.Grappling},
	}
}

// DevWorld builds a hard-coded world that shows every room type, ability,
// gate, enemy and item, for checking renderers and dumps by eye
func DevWorld(tileSize float64, mode generator.DoorwayMode) *gameworld.World {
	layout := devRooms()
	rooms := make([]*gameworld.Room, len(layout))
	connections := make([]gameworld.Connection, 0, len(layout)-1)
	abilityLocations := make(map[gameworld.Ability]world.Point)

	for i, dr := range layout {
		x := devMargin + i*(devRoomWidth+devGap)
		y := devMargin
		room := &gameworld.Room{
			ID:              i,
			X:               x,
			Y:               y,
			Width:           devRoomWidth,
			Height:          devRoomHeight,
			Type:            dr.roomType,
			Center:          gameworld.PixelCenter(x, y, devRoomWidth, devRoomHeight, tileSize),
			Connections:     make([]int, 0, 2),
			RequiredAbility: dr.requires,
			Ability:         dr.grants,
			Enemies:         make([]gameworld.Enemy, 0, len(dr.enemies)),
			Items:           make([]gameworld.Item, 0, 1),
		}
		// Enemies sit on the first interior row past the spawn inset, two cells apart
		for j, t := range dr.enemies {
			room.Enemies = append(room.Enemies, gameworld.Enemy{X: x + 2 + j*2, Y: y + 2, Type: t})
		}
		if dr.health {
			cx, cy := room.CenterCell()
			room.Items = append(room.Items, gameworld.Item{X: cx, Y: cy, Type: gameworld.ItemHealth})
		}
		if dr.grants != "" {
			abilityLocations[dr.grants] = room.Center
		}
		rooms[i] = room

		if i > 0 {
			rooms[i-1].Connections = append(rooms[i-1].Connections, i)
			room.Connections = append(room.Connections, i-1)
			connections = append(connections, gameworld.Connection{From: i - 1, To: i, Type: gameworld.ConnectionNormal})
		}
	}

	width := 2*devMargin + len(layout)*devRoomWidth + (len(layout)-1)*devGap
	height := 2*devMargin + devRoomHeight
	return generator.AssembleWorld(width, height, rooms, connections, abilityLocations, mode)
}

// SwitchToDevMap replaces the session's world with DevWorld
func SwitchToDevMap(s *state.Session) {
	w := DevWorld(s.Config.TileSize, s.Config.DoorwayMode)
	s.Load(w, 0)

	logger.Log.WithField("rooms", len(w.Rooms)).Info("switched to developer map")
	s.AddMessage(fmt.Sprintf("Developer map loaded (%d rooms)", len(w.Rooms)))
}
