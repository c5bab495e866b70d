// Package world provides the records that make up a generated Metroidvania world.
// It builds on the generic engine/world primitives (Rect, Tilemap, Point).
package world

import (
	"encoding/json"

	"riftwalker/pkg/engine/world"
)

// RoomType classifies a room at creation time; it never changes afterwards
type RoomType string

const (
	RoomSpawn   RoomType = "spawn"
	RoomBoss    RoomType = "boss"
	RoomAbility RoomType = "ability"
	RoomSave    RoomType = "save"
	RoomSecret  RoomType = "secret"
	RoomNormal  RoomType = "normal"
)

// Ability is a traversal ability name. The empty Ability means "none".
type Ability string

const (
	DoubleJump Ability = "double_jump"
	WallJump   Ability = "wall_jump"
	Dash       Ability = "dash"
	Grappling  Ability = "grappling"
)

// Abilities returns the fixed ability list in assignment order
func Abilities() []Ability {
	return []Ability{DoubleJump, WallJump, Dash, Grappling}
}

// MarshalJSON writes the empty Ability as null
func (a Ability) MarshalJSON() ([]byte, error) {
	if a == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(a))
}

// UnmarshalJSON reads null back as the empty Ability
func (a *Ability) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = Ability(s)
	return nil
}

// IsKnown reports whether a is one of the fixed abilities
func (a Ability) IsKnown() bool {
	for _, known := range Abilities() {
		if a == known {
			return true
		}
	}
	return false
}

// TileType is the raster class of a room tile
type TileType string

const (
	TileWall  TileType = "wall"
	TileFloor TileType = "floor"
)

// Tile is one cell of a room footprint, in grid coordinates
type Tile struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Type TileType `json:"type"`
}

// Doorway marks a passage from a room towards a connected room
type Doorway struct {
	X          int `json:"x"`
	Y          int `json:"y"`
	TargetRoom int `json:"targetRoom"`
}

// EnemyType is the behaviour class of a spawned enemy
type EnemyType string

const (
	EnemyPatrol EnemyType = "patrol"
	EnemyFlyer  EnemyType = "flyer"
	EnemyTurret EnemyType = "turret"
)

// EnemyTypes returns the enemy kinds in draw order
func EnemyTypes() []EnemyType {
	return []EnemyType{EnemyPatrol, EnemyFlyer, EnemyTurret}
}

// Enemy is an enemy spawn point in grid coordinates
type Enemy struct {
	X    int       `json:"x"`
	Y    int       `json:"y"`
	Type EnemyType `json:"type"`
}

// ItemType is the kind of pickup
type ItemType string

const (
	ItemHealth ItemType = "health"
)

// Item is a pickup in grid coordinates
type Item struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Type ItemType `json:"type"`
}

// ConnectionType describes how two rooms are linked
type ConnectionType string

const (
	ConnectionNormal ConnectionType = "normal"
)

// Connection is an undirected edge between two rooms, recorded once per edge
type Connection struct {
	From int            `json:"from"`
	To   int            `json:"to"`
	Type ConnectionType `json:"type"`
}

// Room is a rectangular area of the world.
// Geometry and type are fixed when the room is placed; Tiles, Doorways,
// Enemies and Items are derived by later generation stages.
type Room struct {
	ID     int      `json:"id"`
	X      int      `json:"x"`
	Y      int      `json:"y"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Type   RoomType `json:"type"`

	Center      world.Point `json:"center"`
	Connections []int       `json:"connections"`

	RequiredAbility Ability `json:"requiredAbility"`
	Ability         Ability `json:"ability"`

	Tiles    []Tile    `json:"tiles"`
	Doorways []Doorway `json:"doorways"`
	Enemies  []Enemy   `json:"enemies"`
	Items    []Item    `json:"items"`
}

// Bounds returns the room footprint as a Rect
func (r *Room) Bounds() world.Rect {
	return world.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}

// CenterCell returns the grid cell at the room's geometric centre
func (r *Room) CenterCell() (int, int) {
	return r.Bounds().Center()
}

// IsGated returns true if entering the room requires an ability
func (r *Room) IsGated() bool {
	return r.RequiredAbility != ""
}

// GrantsAbility returns true if the room hands out an ability
func (r *Room) GrantsAbility() bool {
	return r.Ability != ""
}

// IsConnectedTo reports whether other is in this room's connection list
func (r *Room) IsConnectedTo(other int) bool {
	for _, id := range r.Connections {
		if id == other {
			return true
		}
	}
	return false
}

// PixelCenter converts a footprint to its pixel-space centroid
func PixelCenter(x, y, width, height int, tileSize float64) world.Point {
	return world.Point{
		X: (float64(x) + float64(width)/2) * tileSize,
		Y: (float64(y) + float64(height)/2) * tileSize,
	}
}
