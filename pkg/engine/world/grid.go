// Package world holds the tile grid a room is laid out on.
package world

import (
	"strings"
)

// Room dimensions in tiles.
const (
	TilesX = 16
	TilesY = 16
)

// EmptyTile is the tile id of a cell with nothing on it.
const EmptyTile = "0"

// Position is a tile coordinate inside a room.
type Position struct {
	X int
	Y int
}

// Step returns the neighbour of p in direction d, clamped to the room.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: clamp(p.X+dx, 0, TilesX-1), Y: clamp(p.Y+dy, 0, TilesY-1)}
}

// Index returns the row-major offset of p.
func (p Position) Index() int {
	return p.Y*TilesX + p.X
}

// InBounds reports whether p lies inside the room.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < TilesX && p.Y >= 0 && p.Y < TilesY
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Grid is the tile layout of one room.
type Grid struct {
	tiles [TilesX * TilesY]string
}

// ParseGrid builds a grid from rows of tile ids. A row containing commas is
// split on them; otherwise every rune is one tile id. Missing rows and
// columns are filled with EmptyTile. The returned bool is false when the
// rows did not describe exactly TilesY rows of TilesX tiles.
func ParseGrid(rows []string) (*Grid, bool) {
	g := &Grid{}
	for i := range g.tiles {
		g.tiles[i] = EmptyTile
	}
	exact := len(rows) == TilesY
	for y, row := range rows {
		if y >= TilesY {
			break
		}
		ids := splitRow(row)
		if len(ids) != TilesX {
			exact = false
		}
		for x, id := range ids {
			if x >= TilesX {
				break
			}
			g.tiles[Position{X: x, Y: y}.Index()] = id
		}
	}
	return g, exact
}

func splitRow(row string) []string {
	if strings.Contains(row, ",") {
		ids := strings.Split(row, ",")
		for i := range ids {
			ids[i] = strings.TrimSpace(ids[i])
		}
		return ids
	}
	ids := make([]string, 0, len(row))
	for _, r := range row {
		ids = append(ids, string(r))
	}
	return ids
}

// TileAt returns the tile id at p, or EmptyTile outside the room.
func (g *Grid) TileAt(p Position) string {
	if g == nil || !p.InBounds() {
		return EmptyTile
	}
	return g.tiles[p.Index()]
}

// Each calls fn for every non-empty tile in row-major order.
func (g *Grid) Each(fn func(p Position, id string)) {
	if g == nil {
		return
	}
	for i, id := range g.tiles {
		if id == EmptyTile {
			continue
		}
		fn(Position{X: i % TilesX, Y: i / TilesX}, id)
	}
}
