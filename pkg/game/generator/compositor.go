package generator

import (
	"riftwalker/pkg/engine/world"
	gameworld "riftwalker/pkg/game/world"
)

// cellRank orders what a room can contribute to a cell. When footprints
// overlap the highest rank wins, so room order never matters.
type cellRank int

const (
	rankEmpty cellRank = iota
	rankFloor
	rankWall
	rankDoorway
)

var rankCodes = map[cellRank]int{
	rankEmpty:   world.CellEmpty,
	rankFloor:   world.CellEmpty,
	rankWall:    world.CellWall,
	rankDoorway: world.CellDoorway,
}

// ComposeTilemap flattens rooms into a width x height grid of cell codes.
// Cells within one step (Chebyshev) of a doorway anchor become doorways, the
// rest of a room's border becomes wall and everything else stays empty.
// Room cells outside the grid are dropped.
func ComposeTilemap(width, height int, rooms []*gameworld.Room) *world.Tilemap {
	tilemap := world.NewTilemap(width, height)

	ranks := make([][]cellRank, tilemap.Height)
	for y := range ranks {
		ranks[y] = make([]cellRank, tilemap.Width)
	}

	for _, room := range rooms {
		bounds := room.Bounds()
		for y := bounds.Y; y < bounds.Y+bounds.H; y++ {
			for x := bounds.X; x < bounds.X+bounds.W; x++ {
				if !tilemap.InBounds(x, y) {
					continue
				}
				if r := classifyCell(room, bounds, x, y); r > ranks[y][x] {
					ranks[y][x] = r
				}
			}
		}
	}

	for y := range ranks {
		for x, r := range ranks[y] {
			tilemap.Set(x, y, rankCodes[r])
		}
	}

	return tilemap
}

func classifyCell(room *gameworld.Room, bounds world.Rect, x, y int) cellRank {
	for _, d := range room.Doorways {
		if world.Chebyshev(x, y, d.X, d.Y) <= 1 {
			return rankDoorway
		}
	}
	if bounds.OnBorder(x, y) {
		return rankWall
	}
	return rankFloor
}
