package world

// Cell codes stored in a Tilemap
const (
	CellEmpty   = 0
	CellWall    = 1
	CellDoorway = 2
)

// Tilemap is a fixed-size grid of integer cell codes, indexed Cells[y][x]
type Tilemap struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Cells  [][]int `json:"cells"`
}

// NewTilemap creates a width x height tilemap with every cell set to CellEmpty.
// Non-positive dimensions produce an empty map.
func NewTilemap(width, height int) *Tilemap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	t := &Tilemap{Width: width, Height: height, Cells: make([][]int, height)}
	for y := 0; y < height; y++ {
		t.Cells[y] = make([]int, width)
	}
	return t
}

// InBounds checks if an x/y position is within the tilemap
func (t *Tilemap) InBounds(x, y int) bool {
	return x >= 0 && x < t.Width && y >= 0 && y < t.Height
}

// Get returns the code at (x, y), or CellEmpty when out of bounds
func (t *Tilemap) Get(x, y int) int {
	if !t.InBounds(x, y) {
		return CellEmpty
	}
	return t.Cells[y][x]
}

// Set writes a code at (x, y). Returns false if out of bounds.
func (t *Tilemap) Set(x, y, code int) bool {
	if !t.InBounds(x, y) {
		return false
	}
	t.Cells[y][x] = code
	return true
}

// CenterPosition returns the x and y of the map centre
func (t *Tilemap) CenterPosition() (int, int) {
	return t.Width / 2, t.Height / 2
}

// ForEachCell iterates over all cells row by row
func (t *Tilemap) ForEachCell(fn func(x, y, code int)) {
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			fn(x, y, t.Cells[y][x])
		}
	}
}

// Count returns how many cells hold the given code
func (t *Tilemap) Count(code int) int {
	n := 0
	t.ForEachCell(func(_, _, c int) {
		if c == code {
			n++
		}
	})
	return n
}
