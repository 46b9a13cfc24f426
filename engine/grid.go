package engine

import (
	"math"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/physics"
	"github.com/lixenwraith/horde/vmath"
)

// SpatialGrid is a uniform hash grid keyed by packed cell coordinates
// The world is unbounded, so cells live in a map instead of a dense
// array; the grid is rebuilt every frame (clear + reinsert) rather than
// incrementally updated, which avoids stale-cell bugs when entities
// cross cell boundaries
type SpatialGrid struct {
	cellSize float64
	cells    map[uint64][]core.Entity

	// Scratch set reused by QueryRect to de-duplicate multi-cell hits
	seen map[core.Entity]struct{}
}

// NewSpatialGrid creates a grid with the given cell size
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[uint64][]core.Entity, 256),
		seen:     make(map[core.Entity]struct{}, 64),
	}
}

// PackCell packs signed cell coordinates into one map key
func PackCell(cx, cy int32) uint64 {
	return uint64(uint32(cx))<<32 | uint64(uint32(cy))
}

// CellCoord returns the cell containing a world coordinate
func (g *SpatialGrid) CellCoord(v float64) int32 {
	return int32(math.Floor(v / g.cellSize))
}

// Clear empties all cells, keeping slice capacity to avoid churn
func (g *SpatialGrid) Clear() {
	for key, cell := range g.cells {
		g.cells[key] = cell[:0]
	}
}

// Insert adds an entity to every cell its shape overlaps
// At minimum the containing cell
func (g *SpatialGrid) Insert(e core.Entity, shape physics.Shape, pos vmath.Vec2) {
	min, max := physics.Bounds(shape, pos)
	minX, minY := g.CellCoord(min.X), g.CellCoord(min.Y)
	maxX, maxY := g.CellCoord(max.X), g.CellCoord(max.Y)

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			key := PackCell(cx, cy)
			g.cells[key] = append(g.cells[key], e)
		}
	}
}

// QueryRect returns the de-duplicated union of entities from all cells
// overlapping the rectangle
func (g *SpatialGrid) QueryRect(min, max vmath.Vec2) []core.Entity {
	clear(g.seen)

	minX, minY := g.CellCoord(min.X), g.CellCoord(min.Y)
	maxX, maxY := g.CellCoord(max.X), g.CellCoord(max.Y)

	var result []core.Entity
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			for _, e := range g.cells[PackCell(cx, cy)] {
				if _, dup := g.seen[e]; dup {
					continue
				}
				g.seen[e] = struct{}{}
				result = append(result, e)
			}
		}
	}
	return result
}

// ForEachCell visits every non-empty cell; used by the collision
// system's pair discovery
func (g *SpatialGrid) ForEachCell(fn func(entities []core.Entity)) {
	for _, cell := range g.cells {
		if len(cell) > 0 {
			fn(cell)
		}
	}
}
