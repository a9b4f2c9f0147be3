// Package state owns a running game: the loaded cartridge, script state,
// avatar position and the dialog currently on screen.
package state

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"

	"bitsycart/pkg/engine/dialog"
	"bitsycart/pkg/engine/input"
	"bitsycart/pkg/engine/palette"
	"bitsycart/pkg/engine/world"
	"bitsycart/pkg/game/cartridge"
	"bitsycart/pkg/game/script"
)

// Options configures a game for one host.
type Options struct {
	Metrics dialog.Metrics
	Config  dialog.Config
	// Logger receives cartridge warnings and script errors. Nil discards them.
	Logger *log.Logger
	// Translate looks up dialogue text before evaluation. Defaults to gotext.Get.
	Translate func(string) string
}

// Game is the explicitly owned state of a running cartridge.
type Game struct {
	Cart   *cartridge.Game
	Script *script.State
	Room   *cartridge.Room
	Pos    world.Position
	Dialog *dialog.Dialog
	Frame  uint
	// RoomDirty is set whenever the room needs repainting. Hosts clear it.
	RoomDirty bool

	items     map[string][]cartridge.ItemRef
	eval      *script.Evaluator
	renderer  *dialog.Renderer
	repeat    input.Repeater
	metrics   dialog.Metrics
	cfg       dialog.Config
	logger    *log.Logger
	translate func(string) string
}

// New starts cart: the title is shown as the first dialog and the avatar is
// placed in its starting room.
func New(cart *cartridge.Game, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	translate := opts.Translate
	if translate == nil {
		translate = func(s string) string { return gotext.Get(s) }
	}

	st := script.NewState()
	for name, v := range cart.Variables {
		st.SetVar(name, v)
	}
	st.Avatar = cart.Avatar

	g := &Game{
		Cart:      cart,
		Script:    st,
		RoomDirty: true,
		items:     make(map[string][]cartridge.ItemRef),
		eval:      script.NewEvaluator(st, logger),
		renderer:  dialog.NewRenderer(opts.Metrics, opts.Config),
		metrics:   opts.Metrics,
		cfg:       opts.Config,
		logger:    logger,
		translate: translate,
	}
	for _, r := range cart.Rooms {
		g.items[r.ID] = append([]cartridge.ItemRef(nil), r.Items...)
	}

	g.ShowText(cart.Title)
	g.setStartingRoom()
	return g
}

func (g *Game) setStartingRoom() {
	avatar, ok := g.Cart.Sprite(g.Cart.Avatar)
	if !ok {
		if len(g.Cart.Rooms) > 0 {
			g.setRoom(g.Cart.Rooms[0].ID)
		}
		return
	}
	g.Pos = avatar.Pos
	roomID := avatar.Room
	if roomID == "" && len(g.Cart.Rooms) > 0 {
		roomID = g.Cart.Rooms[0].ID
	}
	g.setRoom(roomID)
}

// setRoom switches rooms without any dialogue.
func (g *Game) setRoom(id string) bool {
	room, ok := g.Cart.Room(id)
	if !ok {
		g.logger.Warn("unknown room", "room", id)
		return false
	}
	g.Room = room
	g.Script.Room = id
	g.Script.Visit(id)
	if room.Palette != "" {
		g.Script.Palette = room.Palette
	}
	g.renderer.SetPalette(g.Palette())
	g.RoomDirty = true
	return true
}

// EnterRoom moves the avatar into room id and shows the room's entry
// dialogue unless another dialogue is already open.
func (g *Game) EnterRoom(id string) {
	if !g.setRoom(id) {
		return
	}
	if g.Room.Entry != "" && !g.Dialog.Active() {
		_ = g.ShowDialogue(g.Room.Entry)
	}
}

// Palette returns the scene palette of the current room.
func (g *Game) Palette() palette.Palette {
	return g.Cart.Palette(g.Script.Palette)
}

// Items returns the items still lying in the current room.
func (g *Game) Items() []cartridge.ItemRef {
	if g.Room == nil {
		return nil
	}
	return g.items[g.Room.ID]
}

// ShowDialogue replaces the current dialog with dialogue id.
func (g *Game) ShowDialogue(id string) error {
	text, ok := g.Cart.Dialogue(id)
	if !ok {
		return fmt.Errorf("%w: %q", cartridge.ErrUnknownDialogue, id)
	}
	g.ShowText(text)
	return nil
}

// ShowText replaces the current dialog with text. Blank text leaves an idle
// dialog with no pages.
func (g *Game) ShowText(text string) {
	if strings.TrimSpace(text) != "" {
		text = g.translate(text)
	}
	g.Dialog = dialog.New(text, g.eval, g.metrics, g.cfg)
	g.logger.Debug("dialog", "pages", g.Dialog.NPages())
}

// Trigger kinds.
const (
	TriggerSprite = "sprite"
	TriggerItem   = "item"
	TriggerEnding = "ending"
)

// Trigger shows the dialogue attached to a sprite, item or ending. An
// ending also ends the game.
func (g *Game) Trigger(kind, id string) error {
	switch kind {
	case TriggerSprite:
		s, ok := g.Cart.Sprite(id)
		if !ok {
			return fmt.Errorf("unknown sprite %q", id)
		}
		return g.ShowDialogue(s.DialogueID())
	case TriggerItem:
		it, ok := g.Cart.Item(id)
		if !ok {
			return fmt.Errorf("unknown item %q", id)
		}
		return g.ShowDialogue(it.DialogueID())
	case TriggerEnding:
		e, ok := g.Cart.Ending(id)
		if !ok {
			return fmt.Errorf("unknown ending %q", id)
		}
		g.ShowText(e.Text)
		g.Script.End = true
		return nil
	}
	return fmt.Errorf("unknown trigger kind %q", kind)
}

// Ended reports whether an ending was reached.
func (g *Game) Ended() bool {
	return g.Script.End
}

// Update advances one frame. pad is the set of actions held this frame.
func (g *Game) Update(pad input.Pad) {
	g.Frame++
	pressed := g.repeat.Update(pad)

	if g.Dialog.Active() {
		if len(pressed) > 0 {
			g.Dialog.NextPage()
		}
		return
	}
	if g.Script.End {
		return
	}
	for _, act := range pressed {
		if d, ok := moveDirection(act); ok {
			g.Move(d)
			return
		}
	}
}

func moveDirection(a input.Action) (world.Direction, bool) {
	switch a {
	case input.ActionMoveNorth:
		return world.North, true
	case input.ActionMoveSouth:
		return world.South, true
	case input.ActionMoveWest:
		return world.West, true
	case input.ActionMoveEast:
		return world.East, true
	}
	return 0, false
}

// DrawDialog draws this frame's slice of the dialog onto c.
func (g *Game) DrawDialog(c dialog.Canvas) {
	g.renderer.Draw(c, g.Dialog, g.Frame)
}

// DialogStyle returns the box colours for the current room.
func (g *Game) DialogStyle() palette.BoxStyle {
	return g.renderer.Style()
}
