// Package ebiten provides an Ebiten-based 2D graphical viewer for generated worlds.
package ebiten

import (
	"image/color"

	"riftwalker/pkg/game/renderer"
)

// Color palette - brighter colors for visibility
var (
	colorBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorGrid       = color.RGBA{40, 40, 60, 255}    // Faint cell outlines
	colorRoomFrame  = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorCurrent    = color.RGBA{0, 255, 0, 255}     // Bright green
	colorPanel      = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// glyphColors maps each glyph to its fill colour. Void cells are not drawn.
var glyphColors = map[renderer.Glyph]color.RGBA{
	renderer.GlyphFloor:         {40, 40, 60, 255},
	renderer.GlyphWall:          {180, 180, 200, 255},
	renderer.GlyphDoorway:       {255, 255, 0, 255},
	renderer.GlyphLockedDoorway: {255, 100, 100, 255},
	renderer.GlyphHealth:        {100, 255, 150, 255},
	renderer.GlyphPatrol:        {255, 80, 80, 255},
	renderer.GlyphFlyer:         {255, 150, 200, 255},
	renderer.GlyphTurret:        {255, 165, 0, 255},
	renderer.GlyphAbility:       {100, 150, 255, 255},
	renderer.GlyphPlayer:        {0, 255, 0, 255},
}

// Glyphs drawn as discs over a floor cell instead of filling the cell
var markerGlyphs = map[renderer.Glyph]bool{
	renderer.GlyphHealth:  true,
	renderer.GlyphPatrol:  true,
	renderer.GlyphFlyer:   true,
	renderer.GlyphTurret:  true,
	renderer.GlyphAbility: true,
	renderer.GlyphPlayer:  true,
}

// Tile size constraints
const (
	defaultTileSize = 12
	minTileSize     = 4
	maxTileSize     = 48
	tileSizeStep    = 2
)

// Camera pan speed in cells per frame while an arrow key is held
const panStep = 1

const (
	windowWidth  = 960
	windowHeight = 640
	hudHeight    = 64
)
