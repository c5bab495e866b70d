package ebiten

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"riftwalker/pkg/game/renderer"
	"riftwalker/pkg/game/state"
	"riftwalker/pkg/logger"
)

// EbitenRenderer draws the session's world as coloured cells and lets the
// user pan, zoom and regenerate.
type EbitenRenderer struct {
	session *state.Session
	canvas  *renderer.Canvas

	// generation the canvas was built for
	canvasGeneration int
	canvasRoom       int

	tileSize int

	// camX and camY are the map cell at the top-left of the view
	camX, camY int

	showGrid  bool
	dumpPath  string
	openedLog bool
}

// New creates a new Ebiten renderer. dumpPath is where the D key writes a map dump.
func New(dumpPath string) *EbitenRenderer {
	return &EbitenRenderer{
		tileSize: defaultTileSize,
		dumpPath: dumpPath,
	}
}

// Name returns the renderer name
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Riftwalker")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Run starts the Ebiten game loop; it returns when the window closes
func (e *EbitenRenderer) Run(s *state.Session) error {
	if s.World == nil {
		if err := s.RegenerateRandom(); err != nil {
			return err
		}
	}
	e.session = s
	e.refreshCanvas()
	e.centerOnPlayer(windowWidth, windowHeight)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// refreshCanvas rebuilds the canvas when the world or the explorer's room changed
func (e *EbitenRenderer) refreshCanvas() {
	s := e.session
	if e.canvas != nil && e.canvasGeneration == s.Generation && e.canvasRoom == s.CurrentRoom {
		return
	}
	e.canvas = renderer.SessionCanvas(s)
	e.canvasGeneration = s.Generation
	e.canvasRoom = s.CurrentRoom
}

// centerOnPlayer moves the camera so the current room is in the middle of the view
func (e *EbitenRenderer) centerOnPlayer(screenW, screenH int) {
	room := e.session.Current()
	if room == nil {
		return
	}
	cx, cy := room.CenterCell()
	e.camX = cx - screenW/e.tileSize/2
	e.camY = cy - (screenH-hudHeight)/e.tileSize/2
}

// Draw renders the visible part of the map and the HUD (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.canvas == nil {
		ebitenutil.DebugPrint(screen, "no world")
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ts := float32(e.tileSize)
	cols := w/e.tileSize + 1
	rows := (h-hudHeight)/e.tileSize + 1

	for vy := 0; vy < rows; vy++ {
		for vx := 0; vx < cols; vx++ {
			mx, my := e.camX+vx, e.camY+vy
			g := e.canvas.At(mx, my)
			if g == renderer.GlyphVoid {
				continue
			}

			px := float32(vx) * ts
			py := float32(hudHeight) + float32(vy)*ts

			if markerGlyphs[g] {
				vector.DrawFilledRect(screen, px, py, ts, ts, glyphColors[renderer.GlyphFloor], false)
				vector.DrawFilledCircle(screen, px+ts/2, py+ts/2, ts/2-1, glyphColors[g], true)
			} else {
				vector.DrawFilledRect(screen, px, py, ts, ts, glyphColors[g], false)
			}
			if e.showGrid {
				vector.StrokeRect(screen, px, py, ts, ts, 1, colorGrid, false)
			}
		}
	}

	e.drawCurrentRoomFrame(screen)
	e.drawHUD(screen, w)
}

func (e *EbitenRenderer) drawCurrentRoomFrame(screen *ebiten.Image) {
	room := e.session.Current()
	if room == nil {
		return
	}
	ts := float32(e.tileSize)
	x := float32(room.X-e.camX) * ts
	y := float32(hudHeight) + float32(room.Y-e.camY)*ts
	vector.StrokeRect(screen, x, y, float32(room.Width)*ts, float32(room.Height)*ts, 2, colorCurrent, false)

	for _, id := range room.Connections {
		next := e.session.World.Room(id)
		if next == nil {
			continue
		}
		nx := float32(next.X-e.camX) * ts
		ny := float32(hudHeight) + float32(next.Y-e.camY)*ts
		vector.StrokeRect(screen, nx, ny, float32(next.Width)*ts, float32(next.Height)*ts, 1, colorRoomFrame, false)
	}
}

func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, width int) {
	vector.DrawFilledRect(screen, 0, 0, float32(width), hudHeight, colorPanel, false)

	s := e.session
	room := s.Current()
	lines := []string{
		fmt.Sprintf("Seed %d  world #%d  rooms %d  room %d (%s)",
			s.Seed, s.Generation, len(s.World.Rooms), room.ID, gotext.Get("ROOM_TYPE_"+strings.ToUpper(string(room.Type)))),
		fmt.Sprintf("Exits %v  [R]egen  [arrows] pan  [G]rid  [D]ump  [M] dev map  [Tab] next room  [+/-] zoom", room.Connections),
	}
	if n := len(s.Messages); n > 0 {
		lines = append(lines, s.Messages[n-1])
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 8, 4+i*18)
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !e.openedLog {
		e.openedLog = true
		logger.Log.WithField("width", outsideWidth).WithField("height", outsideHeight).Info("viewer window opened")
	}
	return outsideWidth, outsideHeight
}
