package generator

import (
	"riftwalker/pkg/engine/world"
	gameworld "riftwalker/pkg/game/world"
)

// rasterizeRoom fills in the room's tiles (border walls, floor inside) and one
// doorway per connection. rooms is indexed by room id.
func rasterizeRoom(room *gameworld.Room, rooms []*gameworld.Room, mode DoorwayMode) {
	room.Tiles = make([]gameworld.Tile, 0, room.Width*room.Height)
	for dy := 0; dy < room.Height; dy++ {
		for dx := 0; dx < room.Width; dx++ {
			tileType := gameworld.TileFloor
			if dx == 0 || dy == 0 || dx == room.Width-1 || dy == room.Height-1 {
				tileType = gameworld.TileWall
			}
			room.Tiles = append(room.Tiles, gameworld.Tile{
				X:    room.X + dx,
				Y:    room.Y + dy,
				Type: tileType,
			})
		}
	}

	room.Doorways = make([]gameworld.Doorway, 0, len(room.Connections))
	for _, target := range room.Connections {
		var neighbor *gameworld.Room
		if target >= 0 && target < len(rooms) {
			neighbor = rooms[target]
		}
		x, y := doorwayAnchor(room, neighbor, mode)
		room.Doorways = append(room.Doorways, gameworld.Doorway{X: x, Y: y, TargetRoom: target})
	}
}

// doorwayAnchor returns the cell a doorway towards neighbor is anchored on.
// In DoorwayCenter mode (and when the neighbour is unknown) it is the centre cell.
func doorwayAnchor(room, neighbor *gameworld.Room, mode DoorwayMode) (int, int) {
	cx, cy := room.CenterCell()
	if mode != DoorwayFacing || neighbor == nil {
		return cx, cy
	}

	nx, ny := neighbor.CenterCell()
	dir := world.DominantDirection(
		neighbor.Center.X-room.Center.X,
		neighbor.Center.Y-room.Center.Y,
	)

	left, right := room.X, room.X+room.Width-1
	top, bottom := room.Y, room.Y+room.Height-1

	switch dir {
	case world.North:
		return clamp(nx, left+1, right-1), top
	case world.South:
		return clamp(nx, left+1, right-1), bottom
	case world.West:
		return left, clamp(ny, top+1, bottom-1)
	default:
		return right, clamp(ny, top+1, bottom-1)
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
