package obj

import (
	"encoding/json"
	"fmt"
)

// waterTileIDs classifies tile ids as water: lethal, non-solid terrain.
var waterTileIDs = map[int]struct{}{
	2: {},
	3: {},
}

func isWaterID(id int) bool {
	_, ok := waterTileIDs[id]
	return ok
}

// TileRef places one tile id at a zero-based tile coordinate.
type TileRef struct {
	X  int `json:"x"`
	Y  int `json:"y"`
	ID int `json:"id"`
}

// Layer is an ordered list of placed tiles plus the dense lookup built from it.
type Layer struct {
	Name  string    `json:"name"`
	Tiles []TileRef `json:"tiles"`

	grid [][]int // grid[y][x] = id, -1 where absent
}

// SpawnPoint is a tile coordinate used for actor placement.
type SpawnPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// EnemySpawn places one enemy at a tile coordinate.
type EnemySpawn struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
}

// Level is the decoded tile map. The grids are built once at decode time and
// never mutated afterwards; a level reload decodes a fresh Level.
type Level struct {
	TileSize  int          `json:"tileSize"`
	MapWidth  int          `json:"mapWidth"`
	MapHeight int          `json:"mapHeight"`
	Layers    []Layer      `json:"layers"`
	Spawn     SpawnPoint   `json:"spawn"`
	Enemies   []EnemySpawn `json:"enemies"`
}

// DecodeLevel parses level JSON and builds the per-layer lookups. Any
// malformed structure is an error; the game cannot start without a level.
func DecodeLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("level: unmarshal: %w", err)
	}
	if lvl.TileSize <= 0 {
		return nil, fmt.Errorf("level: invalid tile size %d", lvl.TileSize)
	}
	if lvl.MapWidth <= 0 || lvl.MapHeight <= 0 {
		return nil, fmt.Errorf("level: invalid dimensions %dx%d", lvl.MapWidth, lvl.MapHeight)
	}
	for li := range lvl.Layers {
		layer := &lvl.Layers[li]
		layer.grid = make([][]int, lvl.MapHeight)
		for y := range layer.grid {
			layer.grid[y] = make([]int, lvl.MapWidth)
			for x := range layer.grid[y] {
				layer.grid[y][x] = -1
			}
		}
		for _, t := range layer.Tiles {
			if t.X < 0 || t.X >= lvl.MapWidth || t.Y < 0 || t.Y >= lvl.MapHeight {
				return nil, fmt.Errorf("level: layer %q tile (%d,%d) out of bounds", layer.Name, t.X, t.Y)
			}
			if t.ID < 0 {
				return nil, fmt.Errorf("level: layer %q tile (%d,%d) has negative id %d", layer.Name, t.X, t.Y, t.ID)
			}
			layer.grid[t.Y][t.X] = t.ID
		}
	}
	return &lvl, nil
}

// TileAt returns the first tile id present at (col,row) across layers.
// The bool is false when no layer has a tile there or the coordinate is
// outside the map; absence is not an error.
func (l *Level) TileAt(col, row int) (int, bool) {
	if l == nil || col < 0 || row < 0 || col >= l.MapWidth || row >= l.MapHeight {
		return 0, false
	}
	for i := range l.Layers {
		if id := l.Layers[i].grid[row][col]; id >= 0 {
			return id, true
		}
	}
	return 0, false
}

// IsSolid reports whether (col,row) blocks movement. Absent tiles and water
// are non-solid.
func (l *Level) IsSolid(col, row int) bool {
	id, ok := l.TileAt(col, row)
	if !ok {
		return false
	}
	return !isWaterID(id)
}

// IsWater reports whether a water tile is present at (col,row).
func (l *Level) IsWater(col, row int) bool {
	id, ok := l.TileAt(col, row)
	return ok && isWaterID(id)
}

// PixelWidth returns the map width in world pixels.
func (l *Level) PixelWidth() float64 {
	if l == nil {
		return 0
	}
	return float64(l.MapWidth * l.TileSize)
}

// PixelHeight returns the map height in world pixels.
func (l *Level) PixelHeight() float64 {
	if l == nil {
		return 0
	}
	return float64(l.MapHeight * l.TileSize)
}

// SpawnPosition returns the player spawn in world pixels (top-left of the
// spawn cell), clamped into the map.
func (l *Level) SpawnPosition() (float64, float64) {
	if l == nil {
		return 0, 0
	}
	x := l.Spawn.X
	y := l.Spawn.Y
	if x < 0 || x >= l.MapWidth {
		x = 0
	}
	if y < 0 || y >= l.MapHeight {
		y = 0
	}
	return float64(x * l.TileSize), float64(y * l.TileSize)
}
