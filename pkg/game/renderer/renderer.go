// Package renderer holds what the game hosts share: the host interface and
// the room painter.
package renderer

import (
	"image"
	"image/color"

	"bitsycart/pkg/engine/dialog"
	"bitsycart/pkg/engine/palette"
	"bitsycart/pkg/engine/world"
	"bitsycart/pkg/game/state"
)

// Palette indices used for things without their own colour.
const (
	backgroundColor = 0
	avatarColor     = 2
)

// Surface is the drawing primitive the room painter needs.
type Surface interface {
	FillRect(r image.Rectangle, c color.Color)
}

// RoomSize returns the pixel size of a room drawn with tile.
func RoomSize(tile image.Point) image.Point {
	return image.Pt(world.TilesX*tile.X, world.TilesY*tile.Y)
}

// DrawRoom paints the current room at origin: background, tiles, items,
// sprites and finally the avatar, one solid block per tile.
func DrawRoom(s Surface, g *state.Game, origin, tile image.Point) {
	if g.Room == nil {
		return
	}
	pal := g.Palette()
	cell := func(p world.Position) image.Rectangle {
		at := origin.Add(image.Pt(p.X*tile.X, p.Y*tile.Y))
		return image.Rectangle{Min: at, Max: at.Add(tile)}
	}

	s.FillRect(image.Rectangle{Min: origin, Max: origin.Add(RoomSize(tile))}, colorAt(pal, backgroundColor))

	g.Room.Grid.Each(func(p world.Position, id string) {
		if t, ok := g.Cart.Tile(id); ok {
			s.FillRect(cell(p), colorAt(pal, t.Color))
		}
	})
	for _, ref := range g.Items() {
		if it, ok := g.Cart.Item(ref.ID); ok {
			s.FillRect(inset(cell(ref.Pos), tile), colorAt(pal, it.Color))
		}
	}
	for _, sp := range g.Cart.Sprites {
		if sp.ID == g.Cart.Avatar || sp.Room != g.Room.ID {
			continue
		}
		s.FillRect(cell(sp.Pos), colorAt(pal, sp.Color))
	}
	s.FillRect(cell(g.Pos), colorAt(pal, avatarColor))
}

// inset shrinks a tile rectangle so items read smaller than sprites. Tiles
// too small to shrink are returned unchanged.
func inset(r image.Rectangle, tile image.Point) image.Rectangle {
	if tile.X < 4 || tile.Y < 4 {
		return r
	}
	return r.Inset(tile.X / 4)
}

// IconColor returns the colour an inline dialog icon is drawn with.
func IconColor(g *state.Game, kind dialog.WordKind, id string) color.Color {
	pal := g.Palette()
	idx := avatarColor
	switch kind {
	case dialog.WordSprite:
		if sp, ok := g.Cart.Sprite(id); ok {
			idx = sp.Color
		}
	case dialog.WordTile:
		if t, ok := g.Cart.Tile(id); ok {
			idx = t.Color
		}
	case dialog.WordItem:
		if it, ok := g.Cart.Item(id); ok {
			idx = it.Color
		}
	}
	return colorAt(pal, idx)
}

// colorAt returns palette entry idx, or the fallback text colour when the
// palette is too short.
func colorAt(p palette.Palette, idx int) palette.RGB {
	if c, ok := p.Color(idx); ok {
		return c
	}
	return palette.FallbackText
}
