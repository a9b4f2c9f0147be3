package cartridge

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"

	"bitsycart/pkg/engine/palette"
	"bitsycart/pkg/engine/world"
)

// Default palette indices for things drawn without an explicit colour.
const (
	defaultTileColor   = 1
	defaultSpriteColor = 2
)

type cartFile struct {
	Title     string            `toml:"title"`
	Avatar    string            `toml:"avatar"`
	Palettes  []paletteFile     `toml:"palette"`
	Tiles     []tileFile        `toml:"tile"`
	Sprites   []spriteFile      `toml:"sprite"`
	Items     []itemFile        `toml:"item"`
	Rooms     []roomFile        `toml:"room"`
	Endings   []endingFile      `toml:"ending"`
	Variables map[string]any    `toml:"variables"`
	Dialogue  map[string]string `toml:"dialogue"`
}

type paletteFile struct {
	ID     string   `toml:"id"`
	Name   string   `toml:"name"`
	Colors []string `toml:"colors"`
}

type tileFile struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Wall  bool   `toml:"wall"`
	Color *int   `toml:"color"`
}

type spriteFile struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Room     string `toml:"room"`
	X        int    `toml:"x"`
	Y        int    `toml:"y"`
	Dialogue string `toml:"dialogue"`
	Color    *int   `toml:"color"`
}

type itemFile struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Dialogue string `toml:"dialogue"`
	Color    *int   `toml:"color"`
}

type placeFile struct {
	ID string `toml:"id"`
	X  int    `toml:"x"`
	Y  int    `toml:"y"`
}

type exitFile struct {
	X        int    `toml:"x"`
	Y        int    `toml:"y"`
	Room     string `toml:"room"`
	DestX    int    `toml:"dest_x"`
	DestY    int    `toml:"dest_y"`
	Dialogue string `toml:"dialogue"`
}

type roomFile struct {
	ID      string      `toml:"id"`
	Name    string      `toml:"name"`
	Palette string      `toml:"palette"`
	Entry   string      `toml:"entry"`
	Tiles   []string    `toml:"tiles"`
	Walls   []string    `toml:"walls"`
	Items   []placeFile `toml:"items"`
	Exits   []exitFile  `toml:"exits"`
	Endings []placeFile `toml:"endings"`
}

type endingFile struct {
	ID   string `toml:"id"`
	Text string `toml:"text"`
}

// Load reads and parses the cartridge at path.
func Load(path string) (*Game, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading cartridge: %w", err)
	}
	return Parse(data)
}

// Parse decodes a cartridge. Problems that still leave a playable game are
// returned as warnings.
func Parse(data []byte) (*Game, []string, error) {
	var f cartFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding cartridge: %w", err)
	}

	var warnings []string
	for _, key := range md.Undecoded() {
		warnings = append(warnings, fmt.Sprintf("unknown key %q", key.String()))
	}

	if len(f.Palettes) == 0 {
		return nil, warnings, ErrNoPalettes
	}

	g := &Game{
		Title:     f.Title,
		Avatar:    f.Avatar,
		Variables: f.Variables,
		Dialogues: f.Dialogue,
	}
	if g.Avatar == "" {
		g.Avatar = DefaultAvatar
	}
	if g.Variables == nil {
		g.Variables = map[string]any{}
	}
	if g.Dialogues == nil {
		g.Dialogues = map[string]string{}
	}

	for _, pf := range f.Palettes {
		p, err := parsePalette(pf)
		if err != nil {
			return nil, warnings, err
		}
		g.Palettes = append(g.Palettes, p)
	}
	for _, tf := range f.Tiles {
		g.Tiles = append(g.Tiles, Tile{ID: tf.ID, Name: tf.Name, Wall: tf.Wall, Color: colorOr(tf.Color, defaultTileColor)})
	}
	for _, sf := range f.Sprites {
		g.Sprites = append(g.Sprites, Sprite{
			ID:       sf.ID,
			Name:     sf.Name,
			Room:     sf.Room,
			Pos:      world.Position{X: sf.X, Y: sf.Y},
			Dialogue: sf.Dialogue,
			Color:    colorOr(sf.Color, defaultSpriteColor),
		})
	}
	for _, itf := range f.Items {
		g.Items = append(g.Items, Item{ID: itf.ID, Name: itf.Name, Dialogue: itf.Dialogue, Color: colorOr(itf.Color, defaultSpriteColor)})
	}
	for _, ef := range f.Endings {
		g.Endings = append(g.Endings, Ending(ef))
	}
	for _, rf := range f.Rooms {
		r, ws := parseRoom(rf)
		warnings = append(warnings, ws...)
		g.Rooms = append(g.Rooms, r)
	}

	warnings = append(warnings, g.check()...)
	return g, warnings, nil
}

func colorOr(c *int, def int) int {
	if c == nil {
		return def
	}
	return *c
}

func parsePalette(pf paletteFile) (palette.Palette, error) {
	p := palette.Palette{ID: pf.ID, Name: pf.Name}
	for _, s := range pf.Colors {
		if !strings.HasPrefix(s, "#") {
			s = "#" + s
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return p, fmt.Errorf("palette %q: %w", pf.ID, err)
		}
		p.Colors = append(p.Colors, palette.FromColorful(c))
	}
	return p, nil
}

func parseRoom(rf roomFile) (Room, []string) {
	var warnings []string
	grid, exact := world.ParseGrid(rf.Tiles)
	if !exact {
		warnings = append(warnings, fmt.Sprintf("room %q: tiles are not %dx%d, padded with empty tiles", rf.ID, world.TilesX, world.TilesY))
	}
	r := Room{
		ID:      rf.ID,
		Name:    rf.Name,
		Palette: rf.Palette,
		Entry:   rf.Entry,
		Grid:    grid,
		Walls:   rf.Walls,
	}
	for _, it := range rf.Items {
		r.Items = append(r.Items, ItemRef{ID: it.ID, Pos: world.Position{X: it.X, Y: it.Y}})
	}
	for _, ex := range rf.Exits {
		r.Exits = append(r.Exits, Exit{
			Pos:      world.Position{X: ex.X, Y: ex.Y},
			Room:     ex.Room,
			Dest:     world.Position{X: ex.DestX, Y: ex.DestY},
			Dialogue: ex.Dialogue,
		})
	}
	for _, en := range rf.Endings {
		r.Endings = append(r.Endings, EndingRef{ID: en.ID, Pos: world.Position{X: en.X, Y: en.Y}})
	}
	return r, warnings
}

// check reports dangling references between sections.
func (g *Game) check() []string {
	var warnings []string
	warnf := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}
	hasPalette := func(id string) bool {
		for _, p := range g.Palettes {
			if p.ID == id {
				return true
			}
		}
		return false
	}
	hasDialogue := func(id string) bool {
		_, ok := g.Dialogues[id]
		return ok
	}

	if len(g.Rooms) == 0 {
		warnf("cartridge has no rooms")
	}
	if _, ok := g.Sprite(g.Avatar); !ok {
		warnf("avatar sprite %q not found", g.Avatar)
	}
	for _, p := range g.Palettes {
		if len(p.Colors) < 2 {
			warnf("palette %q has fewer than two colours", p.ID)
		}
	}
	for _, s := range g.Sprites {
		if s.Room != "" {
			if _, ok := g.Room(s.Room); !ok {
				warnf("sprite %q: unknown room %q", s.ID, s.Room)
			}
		}
		if s.Dialogue != "" && !hasDialogue(s.Dialogue) {
			warnf("sprite %q: unknown dialogue %q", s.ID, s.Dialogue)
		}
	}
	for _, it := range g.Items {
		if it.Dialogue != "" && !hasDialogue(it.Dialogue) {
			warnf("item %q: unknown dialogue %q", it.ID, it.Dialogue)
		}
	}
	for _, r := range g.Rooms {
		if r.Palette != "" && !hasPalette(r.Palette) {
			warnf("room %q: unknown palette %q", r.ID, r.Palette)
		}
		if r.Entry != "" && !hasDialogue(r.Entry) {
			warnf("room %q: unknown dialogue %q", r.ID, r.Entry)
		}
		for _, it := range r.Items {
			if _, ok := g.Item(it.ID); !ok {
				warnf("room %q: unknown item %q", r.ID, it.ID)
			}
		}
		for _, ex := range r.Exits {
			if _, ok := g.Room(ex.Room); !ok {
				warnf("room %q: exit to unknown room %q", r.ID, ex.Room)
			}
			if ex.Dialogue != "" && !hasDialogue(ex.Dialogue) {
				warnf("room %q: unknown dialogue %q", r.ID, ex.Dialogue)
			}
		}
		for _, en := range r.Endings {
			if _, ok := g.Ending(en.ID); !ok {
				warnf("room %q: unknown ending %q", r.ID, en.ID)
			}
		}
	}
	return warnings
}
