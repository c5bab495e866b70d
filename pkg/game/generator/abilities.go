package generator

import (
	"github.com/sirupsen/logrus"

	"riftwalker/pkg/engine/rng"
	"riftwalker/pkg/engine/world"
	gameworld "riftwalker/pkg/game/world"
)

// placeAbilities hands the fixed abilities, in order, to the ability rooms in
// creation order. Extra ability rooms get nothing; missing ones leave abilities unplaced.
func (g *MetroidvaniaGenerator) placeAbilities(rooms []*gameworld.Room) map[gameworld.Ability]world.Point {
	abilities := gameworld.Abilities()
	locations := make(map[gameworld.Ability]world.Point)

	next := 0
	for _, room := range rooms {
		if next >= len(abilities) {
			break
		}
		if room.Type != gameworld.RoomAbility {
			continue
		}
		room.Ability = abilities[next]
		locations[room.Ability] = room.Center
		next++
	}

	return locations
}

// placeGates marks rooms from GateStartIndex onward as requiring one of the
// placed abilities. With nothing placed there is nothing to require, so the
// room stays open even when its gate roll succeeds.
func (g *MetroidvaniaGenerator) placeGates(rooms []*gameworld.Room, placed []gameworld.Ability, log logrus.FieldLogger) {
	start := g.cfg.GateStartIndex
	if start < 1 {
		start = 1 // never gate the spawn room
	}

	for i := start; i < len(rooms); i++ {
		if !rng.Chance(g.rnd, g.cfg.GateChance) {
			continue
		}
		if len(placed) == 0 {
			log.WithField("room", i).Debug("gate skipped, no abilities placed")
			continue
		}
		rooms[i].RequiredAbility = placed[rng.Intn(g.rnd, len(placed))]
	}
}

// placedAbilities lists the abilities that received a room, in the fixed order
func placedAbilities(locations map[gameworld.Ability]world.Point) []gameworld.Ability {
	var out []gameworld.Ability
	for _, a := range gameworld.Abilities() {
		if _, ok := locations[a]; ok {
			out = append(out, a)
		}
	}
	return out
}
