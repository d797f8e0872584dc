package arena

import (
	"math"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// CheckCollision reports whether a circle overlaps any wall tile.
// It tests the 3x3 tile neighbourhood around the circle's center, clamping the
// center onto each wall tile's box and comparing the distance to the radius.
// Touching exactly at the radius is not a collision.
func (g *TileGrid) CheckCollision(pos core.Vec2, radius float64) bool {
	cx, cy := g.CellAt(pos)
	ts := g.tileSize
	rr := radius * radius

	for ty := cy - 1; ty <= cy+1; ty++ {
		for tx := cx - 1; tx <= cx+1; tx++ {
			if !g.inBounds(tx, ty) || g.cells[ty*g.width+tx] != Wall {
				continue
			}
			left, top := float64(tx)*ts, float64(ty)*ts
			closestX := math.Max(left, math.Min(pos.X, left+ts))
			closestY := math.Max(top, math.Min(pos.Y, top+ts))
			dx := pos.X - closestX
			dy := pos.Y - closestY
			if dx*dx+dy*dy < rr {
				return true
			}
		}
	}
	return false
}

// CheckCorners is the coarse probe: it samples the four corners of the
// circle's bounding box and reports a hit if any lands in a wall.
// Faster than CheckCollision but over-reports near corners of walls.
func (g *TileGrid) CheckCorners(pos core.Vec2, radius float64) bool {
	corners := [4]core.Vec2{
		{X: pos.X - radius, Y: pos.Y - radius},
		{X: pos.X + radius, Y: pos.Y - radius},
		{X: pos.X - radius, Y: pos.Y + radius},
		{X: pos.X + radius, Y: pos.Y + radius},
	}
	for _, c := range corners {
		if g.GetTile(g.CellAt(c)) == Wall {
			return true
		}
	}
	return false
}

// MoveAxisSeparated moves a circle by delta, X first then Y, committing each
// axis only if the circle is clear of walls there. Blocking one axis still lets
// the other slide, which is what keeps movement smooth along walls.
func (g *TileGrid) MoveAxisSeparated(pos, delta core.Vec2, radius float64) core.Vec2 {
	if delta.X != 0 {
		if next := core.V(pos.X+delta.X, pos.Y); !g.CheckCollision(next, radius) {
			pos = next
		}
	}
	if delta.Y != 0 {
		if next := core.V(pos.X, pos.Y+delta.Y); !g.CheckCollision(next, radius) {
			pos = next
		}
	}
	return pos
}
