// Package cartridge loads game descriptions: palettes, rooms, the things
// placed in them and the dialogue they trigger.
package cartridge

import (
	"errors"

	"bitsycart/pkg/engine/palette"
	"bitsycart/pkg/engine/world"
)

var (
	// ErrNoPalettes is returned for a cartridge without any palette.
	ErrNoPalettes = errors.New("cartridge has no palettes")
	// ErrUnknownDialogue is returned when a dialogue id has no entry.
	ErrUnknownDialogue = errors.New("unknown dialogue")
)

// DefaultAvatar is the sprite id of the player when none is configured.
const DefaultAvatar = "A"

// Game is a loaded cartridge.
type Game struct {
	Title     string
	Avatar    string
	Palettes  []palette.Palette
	Tiles     []Tile
	Sprites   []Sprite
	Items     []Item
	Rooms     []Room
	Endings   []Ending
	Variables map[string]any
	Dialogues map[string]string
}

// Tile is a room cell type.
type Tile struct {
	ID   string
	Name string
	Wall bool
	// Color is the palette index the tile is drawn with.
	Color int
}

// Sprite is a character placed in a room. The avatar is a sprite too.
type Sprite struct {
	ID       string
	Name     string
	Room     string
	Pos      world.Position
	Dialogue string
	Color    int
}

// DialogueID returns the dialogue shown when the sprite is bumped into.
func (s Sprite) DialogueID() string {
	if s.Dialogue != "" {
		return s.Dialogue
	}
	return s.ID
}

// Item is a pick-up kind.
type Item struct {
	ID       string
	Name     string
	Dialogue string
	Color    int
}

// DialogueID returns the dialogue shown when the item is picked up.
func (it Item) DialogueID() string {
	if it.Dialogue != "" {
		return it.Dialogue
	}
	return it.ID
}

// ItemRef places an item in a room.
type ItemRef struct {
	ID  string
	Pos world.Position
}

// Exit moves the avatar to another room.
type Exit struct {
	Pos      world.Position
	Room     string
	Dest     world.Position
	Dialogue string
}

// EndingRef places an ending in a room.
type EndingRef struct {
	ID  string
	Pos world.Position
}

// Ending is the text shown when the game ends.
type Ending struct {
	ID   string
	Text string
}

// Room is one screen of the game.
type Room struct {
	ID      string
	Name    string
	Palette string
	// Entry is shown when the avatar walks in, if no other dialogue is open.
	Entry   string
	Grid    *world.Grid
	Walls   []string
	Items   []ItemRef
	Exits   []Exit
	Endings []EndingRef
}

// IsWall reports whether tile id blocks movement in the room.
func (r *Room) IsWall(g *Game, id string) bool {
	if t, ok := g.Tile(id); ok && t.Wall {
		return true
	}
	for _, w := range r.Walls {
		if w == id {
			return true
		}
	}
	return false
}

// Palette returns the palette with id, falling back to the first palette.
func (g *Game) Palette(id string) palette.Palette {
	for _, p := range g.Palettes {
		if p.ID == id {
			return p
		}
	}
	return g.Palettes[0]
}

// Room returns the room with id.
func (g *Game) Room(id string) (*Room, bool) {
	for i := range g.Rooms {
		if g.Rooms[i].ID == id {
			return &g.Rooms[i], true
		}
	}
	return nil, false
}

// Tile returns the tile with id.
func (g *Game) Tile(id string) (Tile, bool) {
	for _, t := range g.Tiles {
		if t.ID == id {
			return t, true
		}
	}
	return Tile{}, false
}

// Sprite returns the sprite with id.
func (g *Game) Sprite(id string) (*Sprite, bool) {
	for i := range g.Sprites {
		if g.Sprites[i].ID == id {
			return &g.Sprites[i], true
		}
	}
	return nil, false
}

// Item returns the item kind with id.
func (g *Game) Item(id string) (Item, bool) {
	for _, it := range g.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Ending returns the ending with id.
func (g *Game) Ending(id string) (Ending, bool) {
	for _, e := range g.Endings {
		if e.ID == id {
			return e, true
		}
	}
	return Ending{}, false
}

// Dialogue returns the markup of dialogue id.
func (g *Game) Dialogue(id string) (string, bool) {
	text, ok := g.Dialogues[id]
	return text, ok
}

// SpriteAt returns the non-avatar sprite standing at p in room.
func (g *Game) SpriteAt(room string, p world.Position) (*Sprite, bool) {
	for i := range g.Sprites {
		s := &g.Sprites[i]
		if s.ID == g.Avatar || s.Room != room || s.Pos != p {
			continue
		}
		return s, true
	}
	return nil, false
}
