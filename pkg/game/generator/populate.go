package generator

import (
	"riftwalker/pkg/engine/rng"
	gameworld "riftwalker/pkg/game/world"
)

// populateRoom scatters enemies in normal and ability rooms and may drop a
// health pickup at the centre of any room.
func (g *MetroidvaniaGenerator) populateRoom(room *gameworld.Room) {
	room.Enemies = []gameworld.Enemy{}
	room.Items = []gameworld.Item{}

	if room.Type == gameworld.RoomNormal || room.Type == gameworld.RoomAbility {
		count := rng.Intn(g.rnd, g.cfg.MaxEnemies+1)
		kinds := gameworld.EnemyTypes()
		for i := 0; i < count; i++ {
			x := room.X + g.cfg.EnemyInset + rng.Intn(g.rnd, insetSpan(room.Width, g.cfg.EnemyInset))
			y := room.Y + g.cfg.EnemyInset + rng.Intn(g.rnd, insetSpan(room.Height, g.cfg.EnemyInset))
			room.Enemies = append(room.Enemies, gameworld.Enemy{
				X:    x,
				Y:    y,
				Type: kinds[rng.Intn(g.rnd, len(kinds))],
			})
		}
	}

	if rng.Chance(g.rnd, g.cfg.HealthChance) {
		cx, cy := room.CenterCell()
		room.Items = append(room.Items, gameworld.Item{X: cx, Y: cy, Type: gameworld.ItemHealth})
	}
}

// insetSpan is how many positions remain along an axis of length size after
// keeping inset cells clear on both sides. Never less than 1: on an axis too
// short for both insets (a 4-tall room) every enemy lands on the first inset
// cell, which is still an interior cell.
func insetSpan(size, inset int) int {
	span := size - 2*inset
	if span < 1 {
		return 1
	}
	return span
}
