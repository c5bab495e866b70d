package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"riftwalker/pkg/game/devtools"
	"riftwalker/pkg/logger"
)

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := e.session.RegenerateRandom(); err != nil {
			logger.Log.WithError(err).Error("regeneration failed")
		}
		e.refreshCanvas()
		w, h := ebiten.WindowSize()
		e.centerOnPlayer(w, h)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		devtools.SwitchToDevMap(e.session)
		e.refreshCanvas()
		w, h := ebiten.WindowSize()
		e.centerOnPlayer(w, h)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		e.enterNextRoom()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		e.showGrid = !e.showGrid
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		path, err := devtools.DumpToFile(e.session, e.dumpPath)
		if err != nil {
			e.session.AddMessage("dump failed: " + err.Error())
		} else {
			e.session.AddMessage("map written to " + path)
		}
	}

	e.handleZoom()
	e.handlePan()
	return nil
}

// enterNextRoom moves to the first unvisited open neighbour, or failing that any open one
func (e *EbitenRenderer) enterNextRoom() {
	room := e.session.Current()
	if room == nil || len(room.Connections) == 0 {
		return
	}
	for _, id := range room.Connections {
		if e.session.Visited.Has(id) {
			continue
		}
		if e.session.Enter(id) == nil {
			e.refreshCanvas()
			return
		}
	}
	// Everything nearby is visited or locked: step back along the first open exit
	for _, id := range room.Connections {
		if e.session.Enter(id) == nil {
			e.refreshCanvas()
			return
		}
	}
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		if e.tileSize+tileSizeStep <= maxTileSize {
			e.tileSize += tileSizeStep
			changed = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		if e.tileSize-tileSizeStep >= minTileSize {
			e.tileSize -= tileSizeStep
			changed = true
		}
	}
	if changed {
		w, h := ebiten.WindowSize()
		e.centerOnPlayer(w, h)
	}
}

// handlePan moves the camera while arrow keys are held
func (e *EbitenRenderer) handlePan() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		e.camX -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		e.camX += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		e.camY -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		e.camY += panStep
	}
}
