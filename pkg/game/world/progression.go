package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Reachable returns the ids of rooms reachable from spawn by a player holding
// the given abilities. Gated rooms whose ability is not held block traversal.
func (w *World) Reachable(held mapset.Set[Ability]) mapset.Set[int] {
	return w.ReachableFrom(0, func(r *Room) bool {
		return !r.IsGated() || held.Has(r.RequiredAbility)
	})
}

// ProgressionReport describes how far a player can get by collecting abilities
// in whatever order the layout allows.
type ProgressionReport struct {
	// Order lists abilities in the wave they become collectable; abilities
	// unlocked in the same wave keep the fixed ability order.
	Order []Ability
	// Stranded lists ability names that are placed but never collectable.
	Stranded []Ability
	// Unreachable lists room ids the player can never enter.
	Unreachable []int
}

// Completable returns true if every room can eventually be entered
func (p ProgressionReport) Completable() bool {
	return len(p.Unreachable) == 0
}

// Progression repeatedly expands the reachable set with the abilities granted
// by reachable rooms until nothing new is collected.
func (w *World) Progression() ProgressionReport {
	var report ProgressionReport
	if len(w.Rooms) == 0 {
		return report
	}

	held := mapset.New[Ability]()
	for {
		reachable := w.Reachable(held)

		var wave []Ability
		for _, a := range Abilities() {
			if held.Has(a) {
				continue
			}
			for _, r := range w.Rooms {
				if r.Ability == a && reachable.Has(r.ID) {
					wave = append(wave, a)
					break
				}
			}
		}

		if len(wave) == 0 {
			for _, r := range w.Rooms {
				if !reachable.Has(r.ID) {
					report.Unreachable = append(report.Unreachable, r.ID)
				}
			}
			break
		}

		for _, a := range wave {
			held.Put(a)
			report.Order = append(report.Order, a)
		}
	}

	for _, a := range w.PlacedAbilities() {
		if !held.Has(a) {
			report.Stranded = append(report.Stranded, a)
		}
	}
	sort.Ints(report.Unreachable)

	return report
}
