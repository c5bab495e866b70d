package generator

import "fmt"

// DoorwayMode selects where a room's doorway anchors are placed
type DoorwayMode int

const (
	// DoorwayCenter anchors every doorway at the room's centre cell, whatever the neighbour's direction
	DoorwayCenter DoorwayMode = iota
	// DoorwayFacing anchors each doorway on the border wall that faces the neighbour
	DoorwayFacing
)

// String returns the flag spelling of the mode
func (m DoorwayMode) String() string {
	switch m {
	case DoorwayFacing:
		return "facing"
	default:
		return "center"
	}
}

// Config holds the tuning constants of the Metroidvania generator
type Config struct {
	TileSize float64 // Pixels per grid cell, used for room and ability centres

	MinRooms          int // Target room count is drawn from [MinRooms, MaxRooms]
	MaxRooms          int
	PlacementAttempts int // Tries per room before the index is skipped
	Padding           int // Margin kept around every room when testing overlap

	SpawnWidth  int
	SpawnHeight int

	MinRoomWidth  int
	MaxRoomWidth  int
	MinRoomHeight int
	MaxRoomHeight int

	MinBranchDistance int // Gap, in cells, between a parent and a new room
	MaxBranchDistance int

	AbilityEvery int     // Every Nth room index becomes an ability room
	SaveEvery    int     // Otherwise every Nth becomes a save room
	SecretChance float64 // Otherwise chance of a secret room

	GateChance     float64 // Chance a room past GateStartIndex requires an ability
	GateStartIndex int

	MaxEnemies   int     // Enemies per eligible room are drawn from [0, MaxEnemies]
	EnemyInset   int     // Distance kept between enemy spawns and the room border
	HealthChance float64 // Chance of a health pickup in any room

	DoorwayMode DoorwayMode
}

// DefaultConfig returns the stock generator settings
func DefaultConfig() Config {
	return Config{
		TileSize: 32,

		MinRooms:          15,
		MaxRooms:          24,
		PlacementAttempts: 50,
		Padding:           2,

		SpawnWidth:  8,
		SpawnHeight: 6,

		MinRoomWidth:  6,
		MaxRoomWidth:  11,
		MinRoomHeight: 4,
		MaxRoomHeight: 7,

		MinBranchDistance: 6,
		MaxBranchDistance: 9,

		AbilityEvery: 4,
		SaveEvery:    3,
		SecretChance: 0.2,

		GateChance:     0.3,
		GateStartIndex: 3,

		MaxEnemies:   2,
		EnemyInset:   2,
		HealthChance: 0.3,

		DoorwayMode: DoorwayCenter,
	}
}

// Validate rejects settings the generator cannot honour
func (c Config) Validate() error {
	switch {
	case c.TileSize <= 0:
		return fmt.Errorf("tile size must be positive, got %v", c.TileSize)
	case c.MinRooms < 1:
		return fmt.Errorf("min rooms must be at least 1, got %d", c.MinRooms)
	case c.MaxRooms < c.MinRooms:
		return fmt.Errorf("max rooms %d is below min rooms %d", c.MaxRooms, c.MinRooms)
	case c.PlacementAttempts < 1:
		return fmt.Errorf("placement attempts must be at least 1, got %d", c.PlacementAttempts)
	case c.Padding < 0:
		return fmt.Errorf("padding must not be negative, got %d", c.Padding)
	case c.SpawnWidth < 3 || c.SpawnHeight < 3:
		return fmt.Errorf("spawn room %dx%d is too small", c.SpawnWidth, c.SpawnHeight)
	case c.MinRoomWidth < 6 || c.MaxRoomWidth < c.MinRoomWidth:
		return fmt.Errorf("room width range [%d,%d] is invalid", c.MinRoomWidth, c.MaxRoomWidth)
	case c.MinRoomHeight < 4 || c.MaxRoomHeight < c.MinRoomHeight:
		return fmt.Errorf("room height range [%d,%d] is invalid", c.MinRoomHeight, c.MaxRoomHeight)
	case c.MinBranchDistance < 0 || c.MaxBranchDistance < c.MinBranchDistance:
		return fmt.Errorf("branch distance range [%d,%d] is invalid", c.MinBranchDistance, c.MaxBranchDistance)
	case c.AbilityEvery < 1 || c.SaveEvery < 1:
		return fmt.Errorf("room type periods must be positive")
	case c.MaxEnemies < 0 || c.EnemyInset < 0:
		return fmt.Errorf("enemy settings must not be negative")
	}
	return nil
}
