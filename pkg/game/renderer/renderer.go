// Package renderer turns a generated world into a grid of glyphs that the
// terminal and Ebiten backends draw.
package renderer

import (
	"strings"

	"riftwalker/pkg/engine/world"
	"riftwalker/pkg/game/state"
	gameworld "riftwalker/pkg/game/world"
)

// Glyph is what a single canvas cell shows
type Glyph int

const (
	GlyphVoid Glyph = iota
	GlyphFloor
	GlyphWall
	GlyphDoorway
	GlyphLockedDoorway
	GlyphHealth
	GlyphPatrol
	GlyphFlyer
	GlyphTurret
	GlyphAbility
	GlyphPlayer
)

// Glyphs lists every glyph in legend order
func Glyphs() []Glyph {
	return []Glyph{
		GlyphPlayer, GlyphAbility, GlyphPatrol, GlyphFlyer, GlyphTurret,
		GlyphHealth, GlyphDoorway, GlyphLockedDoorway, GlyphWall, GlyphFloor,
	}
}

var glyphSymbols = map[Glyph]rune{
	GlyphVoid:          ' ',
	GlyphFloor:         '·',
	GlyphWall:          '▒',
	GlyphDoorway:       '+',
	GlyphLockedDoorway: '▣',
	GlyphHealth:        '♥',
	GlyphPatrol:        'p',
	GlyphFlyer:         'f',
	GlyphTurret:        't',
	GlyphAbility:       '★',
	GlyphPlayer:        '@',
}

var glyphLegendKeys = map[Glyph]string{
	GlyphVoid:          "LEGEND_VOID",
	GlyphFloor:         "LEGEND_FLOOR",
	GlyphWall:          "LEGEND_WALL",
	GlyphDoorway:       "LEGEND_DOORWAY",
	GlyphLockedDoorway: "LEGEND_LOCKED_DOORWAY",
	GlyphHealth:        "LEGEND_HEALTH",
	GlyphPatrol:        "LEGEND_PATROL",
	GlyphFlyer:         "LEGEND_FLYER",
	GlyphTurret:        "LEGEND_TURRET",
	GlyphAbility:       "LEGEND_ABILITY",
	GlyphPlayer:        "LEGEND_PLAYER",
}

// Symbol returns the character used for the glyph in text output
func (g Glyph) Symbol() rune {
	if r, ok := glyphSymbols[g]; ok {
		return r
	}
	return '?'
}

// LegendKey returns the translation key describing the glyph
func (g Glyph) LegendKey() string {
	return glyphLegendKeys[g]
}

var enemyGlyphs = map[gameworld.EnemyType]Glyph{
	gameworld.EnemyPatrol: GlyphPatrol,
	gameworld.EnemyFlyer:  GlyphFlyer,
	gameworld.EnemyTurret: GlyphTurret,
}

// Canvas is a drawable snapshot of a world, indexed [y][x]
type Canvas struct {
	Width  int
	Height int
	Cells  [][]Glyph
	Owners [][]int // Room id covering each cell, -1 for none
}

// NewCanvas builds the canvas of a world. Overlays are stacked so that the
// player hides abilities, which hide enemies, which hide items, which hide tiles.
// A player cell outside the map is ignored.
func NewCanvas(w *gameworld.World, playerX, playerY int) *Canvas {
	tm := w.Tilemap
	if tm == nil {
		tm = world.NewTilemap(0, 0)
	}

	c := &Canvas{
		Width:  tm.Width,
		Height: tm.Height,
		Cells:  make([][]Glyph, tm.Height),
		Owners: make([][]int, tm.Height),
	}
	for y := 0; y < tm.Height; y++ {
		c.Cells[y] = make([]Glyph, tm.Width)
		c.Owners[y] = make([]int, tm.Width)
		for x := range c.Owners[y] {
			c.Owners[y][x] = -1
		}
	}

	for _, r := range w.Rooms {
		b := r.Bounds()
		for y := b.Y; y < b.Y+b.H; y++ {
			for x := b.X; x < b.X+b.W; x++ {
				if c.InBounds(x, y) {
					c.Owners[y][x] = r.ID
				}
			}
		}
	}

	tm.ForEachCell(func(x, y, code int) {
		owner := c.Owners[y][x]
		switch {
		case code == world.CellWall:
			c.Cells[y][x] = GlyphWall
		case code == world.CellDoorway:
			c.Cells[y][x] = GlyphDoorway
			if r := w.Room(owner); r != nil && r.IsGated() {
				c.Cells[y][x] = GlyphLockedDoorway
			}
		case owner >= 0:
			c.Cells[y][x] = GlyphFloor
		}
	})

	for _, r := range w.Rooms {
		for _, it := range r.Items {
			c.set(it.X, it.Y, GlyphHealth)
		}
	}
	for _, r := range w.Rooms {
		for _, e := range r.Enemies {
			c.set(e.X, e.Y, enemyGlyphs[e.Type])
		}
	}
	for _, r := range w.Rooms {
		if r.GrantsAbility() {
			x, y := r.CenterCell()
			c.set(x, y, GlyphAbility)
		}
	}
	c.set(playerX, playerY, GlyphPlayer)

	return c
}

// SessionCanvas builds the canvas for a session, with the player in the
// centre of the current room. Returns nil when no world exists.
func SessionCanvas(s *state.Session) *Canvas {
	room := s.Current()
	if room == nil {
		return nil
	}
	x, y := room.CenterCell()
	return NewCanvas(s.World, x, y)
}

// InBounds checks if an x/y position is on the canvas
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// At returns the glyph at (x, y), GlyphVoid when off the canvas
func (c *Canvas) At(x, y int) Glyph {
	if !c.InBounds(x, y) {
		return GlyphVoid
	}
	return c.Cells[y][x]
}

// Owner returns the room id covering (x, y), or -1
func (c *Canvas) Owner(x, y int) int {
	if !c.InBounds(x, y) {
		return -1
	}
	return c.Owners[y][x]
}

func (c *Canvas) set(x, y int, g Glyph) {
	if c.InBounds(x, y) {
		c.Cells[y][x] = g
	}
}

// Count returns how many cells show the glyph
func (c *Canvas) Count(g Glyph) int {
	n := 0
	for _, row := range c.Cells {
		for _, cell := range row {
			if cell == g {
				n++
			}
		}
	}
	return n
}

// Window returns the top-left corner of a cols x rows view centred on (cx, cy),
// shifted so it stays on the canvas where the canvas is big enough.
func (c *Canvas) Window(cx, cy, cols, rows int) (int, int) {
	return windowStart(cx, cols, c.Width), windowStart(cy, rows, c.Height)
}

func windowStart(center, span, size int) int {
	start := center - span/2
	if start+span > size {
		start = size - span
	}
	if start < 0 {
		start = 0
	}
	return start
}

// String renders the whole canvas, one line per row
func (c *Canvas) String() string {
	var sb strings.Builder
	for y, row := range c.Cells {
		for _, g := range row {
			sb.WriteRune(g.Symbol())
		}
		if y < len(c.Cells)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
