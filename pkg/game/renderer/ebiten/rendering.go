package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"bitsycart/pkg/game/renderer"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	g := e.game
	if g == nil {
		return
	}
	screen.Fill(g.DialogStyle().Box)

	if g.RoomDirty {
		e.roomLayer.Clear()
		renderer.DrawRoom(e.roomCanvas, g, roomOrigin, tileSize)
		g.RoomDirty = false
	}
	screen.DrawImage(e.roomLayer, nil)

	if !g.Dialog.Active() {
		e.dialogLayer.Clear()
		return
	}
	// Draw may run more or less often than Update; the dialog advances once
	// per game frame.
	if !e.drawnFrame || e.lastFrame != g.Frame {
		g.DrawDialog(e.dialogCanvas)
		e.lastFrame = g.Frame
		e.drawnFrame = true
	}
	screen.DrawImage(e.dialogLayer, nil)
}
