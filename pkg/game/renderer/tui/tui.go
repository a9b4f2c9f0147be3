// Package tui runs a game in the terminal: one character cell per pixel of
// the dialog engine, coloured with 24-bit escape codes.
package tui

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"

	"bitsycart/pkg/engine/dialog"
	"bitsycart/pkg/engine/input"
	"bitsycart/pkg/game/renderer"
	"bitsycart/pkg/game/state"
)

// Screen layout in cells. Tiles are two cells wide so rooms look square.
var (
	tileSize  = image.Pt(2, 1)
	roomSize  = renderer.RoomSize(tileSize)
	boxHeight = 6
)

// FrameRate is the number of updates per second.
const FrameRate = 30

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out    io.Writer
	logger *log.Logger
	grid   *Grid
	// LinesPerPage overrides the box height budget when positive.
	LinesPerPage int
}

// New creates a new TUI renderer writing to stdout.
func New(logger *log.Logger) *TUIRenderer {
	return &TUIRenderer{out: os.Stdout, logger: logger}
}

// Metrics implements renderer.Renderer. One character is one cell.
func (t *TUIRenderer) Metrics() dialog.Metrics {
	return dialog.Metrics{CharWidth: 1, CharHeight: 1}
}

// Config implements renderer.Renderer: a box below the room.
func (t *TUIRenderer) Config() dialog.Config {
	cfg := dialog.DefaultConfig()
	cfg.Box = image.Rect(0, roomSize.Y, roomSize.X, roomSize.Y+boxHeight)
	cfg.MarginX = 1
	cfg.MarginY = 1
	cfg.IconWidth = 1
	cfg.LinesPerPage = t.LinesPerPage
	cfg.Indicator = image.Pt(roomSize.X-2, roomSize.Y+boxHeight-1)
	cfg.IndicatorSize = 2
	return cfg
}

// Run implements renderer.Renderer. It blocks until the player quits.
func (t *TUIRenderer) Run(g *state.Game) error {
	term, err := input.OpenTerminal()
	if err != nil {
		return err
	}
	defer term.Close()

	if cols, rows, err := term.Size(); err == nil && (cols < roomSize.X || rows < roomSize.Y+boxHeight+1) {
		t.logger.Warn("terminal is smaller than the game screen", "cols", cols, "rows", rows)
	}

	keys := make(chan string, 16)
	errs := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go pumpKeys(func() (string, error) {
		raw, err := term.ReadRaw()
		return raw.Code, err
	}, keys, errs, done)

	// Clear screen and hide cursor; restore the cursor on the way out.
	fmt.Fprint(t.out, "\x1b[2J\x1b[?25l")
	defer fmt.Fprint(t.out, "\x1b[?25h\r\n")

	t.grid = NewGrid(roomSize.X, roomSize.Y+boxHeight+1)

	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()
	for {
		select {
		case err := <-errs:
			return err
		case <-ticker.C:
		}

		pad := input.Pad{}
	drain:
		for {
			select {
			case code := <-keys:
				act := input.MapToIntent(input.NewDebouncedInput(input.RawInput{Device: input.DeviceTerminal, Code: code})).Action
				if act == input.ActionQuit {
					fmt.Fprint(t.out, "\x1b[2J\x1b[H"+gotext.Get("Goodbye."))
					return nil
				}
				if act != input.ActionNone {
					pad[act] = true
				}
			default:
				break drain
			}
		}

		g.Update(pad)
		t.Frame(g)
		if err := t.grid.Flush(t.out); err != nil {
			return err
		}
	}
}

// pumpKeys forwards key codes from read until read fails or done is closed.
// A read already in progress finishes before the pump notices done.
func pumpKeys(read func() (string, error), keys chan<- string, errs chan<- error, done <-chan struct{}) {
	for {
		code, err := read()
		if err != nil {
			select {
			case errs <- err:
			case <-done:
			}
			return
		}
		select {
		case keys <- code:
		case <-done:
			return
		}
	}
}

// Frame draws one frame of g onto the grid.
func (t *TUIRenderer) Frame(g *state.Game) {
	if t.grid == nil {
		t.grid = NewGrid(roomSize.X, roomSize.Y+boxHeight+1)
	}
	t.grid.Icons = func(kind dialog.WordKind, id string) color.Color {
		return renderer.IconColor(g, kind, id)
	}
	cfg := t.Config()
	if g.RoomDirty {
		renderer.DrawRoom(t.grid, g, image.Pt(0, 0), tileSize)
		g.RoomDirty = false
	}
	if g.Dialog.Active() {
		g.DrawDialog(t.grid)
	} else {
		t.grid.FillRect(cfg.Box, g.DialogStyle().Box)
	}
	status := image.Rect(0, cfg.Box.Max.Y, roomSize.X, cfg.Box.Max.Y+1)
	t.grid.FillRect(status, g.DialogStyle().Box)
	t.grid.DrawText(gotext.Get("arrows, enter, q to quit"), status.Min, g.DialogStyle().Text)
}

// Grid returns the canvas of the last frame.
func (t *TUIRenderer) Grid() *Grid {
	return t.grid
}
