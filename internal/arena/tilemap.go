package arena

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// Tile is the content of one grid cell.
type Tile uint8

const (
	Floor Tile = iota
	Wall
)

// Strategy selects how a TileGrid is generated.
type Strategy int

const (
	StrategyCave Strategy = iota // cellular automata caves
	StrategyBox                  // border walls plus scattered single-tile obstacles
)

// ErrUnknownKind is returned when a textual type tag does not name a known variant.
var ErrUnknownKind = errors.New("unknown kind")

// ParseStrategy converts a config name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "cave":
		return StrategyCave, nil
	case "box":
		return StrategyBox, nil
	default:
		return 0, fmt.Errorf("arena: %w: map strategy %q", ErrUnknownKind, s)
	}
}

// String returns the config name of the strategy.
func (s Strategy) String() string {
	if s == StrategyBox {
		return "box"
	}
	return "cave"
}

// TileGrid is the level's tile map. Cells are addressed by (cx, cy) in tile
// units; world positions are in pixels, tileSize pixels per cell.
// Every border cell is a wall once generated.
type TileGrid struct {
	width    int
	height   int
	tileSize float64
	cells    []Tile
}

// NewTileGrid creates an all-floor grid. Call Generate to populate it.
func NewTileGrid(width, height int, tileSize float64) *TileGrid {
	return &TileGrid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		cells:    make([]Tile, width*height),
	}
}

// Width returns the grid width in tiles.
func (g *TileGrid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *TileGrid) Height() int { return g.height }

// TileSize returns the side of a tile in world pixels.
func (g *TileGrid) TileSize() float64 { return g.tileSize }

func (g *TileGrid) inBounds(cx, cy int) bool {
	return cx >= 0 && cx < g.width && cy >= 0 && cy < g.height
}

func (g *TileGrid) isBorder(cx, cy int) bool {
	return cx == 0 || cy == 0 || cx == g.width-1 || cy == g.height-1
}

// GetTile returns the tile at (cx, cy). Anything outside the grid is a wall.
func (g *TileGrid) GetTile(cx, cy int) Tile {
	if !g.inBounds(cx, cy) {
		return Wall
	}
	return g.cells[cy*g.width+cx]
}

// SetTile writes a tile. Out-of-bounds writes are ignored and reported as false.
func (g *TileGrid) SetTile(cx, cy int, t Tile) bool {
	if !g.inBounds(cx, cy) {
		return false
	}
	g.cells[cy*g.width+cx] = t
	return true
}

// Generate fills the grid using the given strategy.
func (g *TileGrid) Generate(s Strategy, rng RNG, p GenParams) {
	switch s {
	case StrategyBox:
		g.generateBox(rng, p.Obstacles)
	default:
		g.generateCave(rng, p.WallChance, p.SmoothPasses)
	}
}

// GenParams holds the generation knobs of both strategies.
type GenParams struct {
	WallChance   float64
	SmoothPasses int
	Obstacles    int
}

func (g *TileGrid) generateCave(rng RNG, wallChance float64, passes int) {
	for cy := 0; cy < g.height; cy++ {
		for cx := 0; cx < g.width; cx++ {
			t := Floor
			if g.isBorder(cx, cy) || rng.Float64() < wallChance {
				t = Wall
			}
			g.cells[cy*g.width+cx] = t
		}
	}
	for i := 0; i < passes; i++ {
		g.Smooth()
	}
}

func (g *TileGrid) generateBox(rng RNG, obstacles int) {
	for cy := 0; cy < g.height; cy++ {
		for cx := 0; cx < g.width; cx++ {
			t := Floor
			if g.isBorder(cx, cy) {
				t = Wall
			}
			g.cells[cy*g.width+cx] = t
		}
	}
	if g.width < 3 || g.height < 3 {
		return
	}
	for i := 0; i < obstacles; i++ {
		cx := 1 + int(rng.Float64()*float64(g.width-2))
		cy := 1 + int(rng.Float64()*float64(g.height-2))
		g.SetTile(cx, cy, Wall)
	}
}

// Smooth runs one cellular automata pass: an interior cell with more than four
// wall neighbours becomes a wall, fewer than four becomes floor, exactly four
// keeps its tile. All cells are decided from the previous generation.
func (g *TileGrid) Smooth() {
	next := make([]Tile, len(g.cells))
	for cy := 0; cy < g.height; cy++ {
		for cx := 0; cx < g.width; cx++ {
			i := cy*g.width + cx
			if g.isBorder(cx, cy) {
				next[i] = Wall
				continue
			}
			switch n := g.WallNeighbours(cx, cy); {
			case n > 4:
				next[i] = Wall
			case n < 4:
				next[i] = Floor
			default:
				next[i] = g.cells[i]
			}
		}
	}
	g.cells = next
}

// WallNeighbours counts walls among the 8 neighbours of (cx, cy).
// Cells outside the grid count as walls.
func (g *TileGrid) WallNeighbours(cx, cy int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.GetTile(cx+dx, cy+dy) == Wall {
				n++
			}
		}
	}
	return n
}

// ClearArea carves floor in the (2r+1)x(2r+1) square around (cx, cy).
// Border cells stay walls.
func (g *TileGrid) ClearArea(cx, cy, r int) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if g.inBounds(x, y) && !g.isBorder(x, y) {
				g.cells[y*g.width+x] = Floor
			}
		}
	}
}

// CellAt returns the cell containing a world position.
func (g *TileGrid) CellAt(p core.Vec2) (int, int) {
	return int(math.Floor(p.X / g.tileSize)), int(math.Floor(p.Y / g.tileSize))
}

// CellCenter returns the world position of the center of a cell.
func (g *TileGrid) CellCenter(cx, cy int) core.Vec2 {
	return core.V((float64(cx)+0.5)*g.tileSize, (float64(cy)+0.5)*g.tileSize)
}

// WorldSize returns the grid extent in world pixels.
func (g *TileGrid) WorldSize() core.Vec2 {
	return core.V(float64(g.width)*g.tileSize, float64(g.height)*g.tileSize)
}

// FloorCount returns the number of floor cells.
func (g *TileGrid) FloorCount() int {
	n := 0
	for _, t := range g.cells {
		if t == Floor {
			n++
		}
	}
	return n
}

// String renders the grid as text, '#' for walls and '.' for floor.
func (g *TileGrid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for cy := 0; cy < g.height; cy++ {
		if cy > 0 {
			sb.WriteByte('\n')
		}
		for cx := 0; cx < g.width; cx++ {
			if g.cells[cy*g.width+cx] == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
