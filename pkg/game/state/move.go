package state

import (
	"bitsycart/pkg/engine/world"
)

// Move steps the avatar one tile in direction d, picking up items and
// activating exits, endings and sprites on the way.
func (g *Game) Move(d world.Direction) {
	if g.Room == nil {
		return
	}
	next := g.Pos.Step(d)
	g.RoomDirty = true

	if id, ok := g.popItemAt(next); ok {
		g.Script.Put(id)
		if err := g.Trigger(TriggerItem, id); err != nil {
			g.logger.Debug("item without dialogue", "item", id, "err", err)
		}
	}
	if g.leaveRoom(next) {
		return
	}
	if g.activateEnding(next) {
		return
	}
	if s, ok := g.Cart.SpriteAt(g.Room.ID, next); ok {
		if err := g.Trigger(TriggerSprite, s.ID); err != nil {
			g.logger.Debug("sprite without dialogue", "sprite", s.ID, "err", err)
		}
		return
	}
	if g.Room.IsWall(g.Cart, g.Room.Grid.TileAt(next)) {
		return
	}
	g.Pos = next
}

func (g *Game) popItemAt(p world.Position) (string, bool) {
	items := g.items[g.Room.ID]
	for i, it := range items {
		if it.Pos != p {
			continue
		}
		g.items[g.Room.ID] = append(items[:i:i], items[i+1:]...)
		return it.ID, true
	}
	return "", false
}

func (g *Game) leaveRoom(p world.Position) bool {
	for _, ex := range g.Room.Exits {
		if ex.Pos != p {
			continue
		}
		if ex.Dialogue != "" {
			if err := g.ShowDialogue(ex.Dialogue); err != nil {
				g.logger.Warn("exit dialogue", "err", err)
			}
		}
		g.Pos = ex.Dest
		g.EnterRoom(ex.Room)
		return true
	}
	return false
}

func (g *Game) activateEnding(p world.Position) bool {
	for _, en := range g.Room.Endings {
		if en.Pos != p {
			continue
		}
		if err := g.Trigger(TriggerEnding, en.ID); err != nil {
			g.logger.Warn("ending", "err", err)
		}
		g.Pos = p
		g.Script.End = true
		return true
	}
	return false
}
