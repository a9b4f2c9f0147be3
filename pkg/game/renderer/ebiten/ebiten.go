// Package ebiten provides an Ebiten-based 2D graphical renderer.
package ebiten

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"

	"bitsycart/pkg/engine/dialog"
	"bitsycart/pkg/game/renderer"
	"bitsycart/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	scale  int
	lines  int
	logger *log.Logger

	face    text.Face
	metrics dialog.Metrics

	game *state.Game

	// Offscreen layers. The room is repainted only when it changes; the
	// dialog layer keeps what earlier frames drew, since the dialog engine
	// only draws what changed.
	roomLayer    *ebiten.Image
	dialogLayer  *ebiten.Image
	roomCanvas   *imageCanvas
	dialogCanvas *imageCanvas
	lastFrame    uint
	drawnFrame   bool

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// New creates a new Ebiten renderer. scale is clamped to the supported range;
// lines caps dialog lines per page when positive.
func New(logger *log.Logger, scale, lines int) *EbitenRenderer {
	if scale < minScale || scale > maxScale {
		scale = defaultScale
	}
	face := newFace()
	return &EbitenRenderer{
		scale:   scale,
		lines:   lines,
		logger:  logger,
		face:    face,
		metrics: faceMetrics(face),
	}
}

// Metrics implements renderer.Renderer.
func (e *EbitenRenderer) Metrics() dialog.Metrics {
	return e.metrics
}

// Config implements renderer.Renderer.
func (e *EbitenRenderer) Config() dialog.Config {
	cfg := dialog.DefaultConfig()
	cfg.LinesPerPage = e.lines
	return cfg
}

// Run implements renderer.Renderer. It opens the window and blocks until it
// is closed or the player quits.
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g
	e.roomLayer = ebiten.NewImage(screenWidth, screenHeight)
	e.dialogLayer = ebiten.NewImage(screenWidth, screenHeight)
	icons := func(kind dialog.WordKind, id string) color.Color {
		return renderer.IconColor(g, kind, id)
	}
	e.roomCanvas = &imageCanvas{img: e.roomLayer, face: e.face}
	e.dialogCanvas = &imageCanvas{
		img:        e.dialogLayer,
		face:       e.face,
		iconSize:   e.Config().IconWidth,
		lineHeight: e.metrics.CharHeight,
		icons:      icons,
	}

	ebiten.SetWindowSize(screenWidth*e.scale, screenHeight*e.scale)
	ebiten.SetWindowTitle(gotext.Get("bitsycart"))
	ebiten.SetTPS(60)
	return ebiten.RunGame(e)
}
