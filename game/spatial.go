package game

import (
	"math"
	"sort"
)

// SpatialCellSize is about twice the largest asteroid radius
const SpatialCellSize = 80.0

// SpatialGrid is a uniform grid over the viewport for broad-phase queries.
// Positions outside the viewport clamp to the border cells, which keeps
// overlapping boxes overlapping.
type SpatialGrid struct {
	cols, rows int
	cells      [][]int
	seen       []uint32
	stamp      uint32
}

// NewSpatialGrid creates a grid covering b
func NewSpatialGrid(b Bounds) *SpatialGrid {
	g := &SpatialGrid{}
	g.Resize(b)
	return g
}

// Resize rebuilds the cell table for new bounds, dropping contents
func (g *SpatialGrid) Resize(b Bounds) {
	g.cols = int(math.Ceil(b.W/SpatialCellSize)) + 1
	g.rows = int(math.Ceil(b.H/SpatialCellSize)) + 1
	if g.cols < 1 {
		g.cols = 1
	}
	if g.rows < 1 {
		g.rows = 1
	}
	g.cells = make([][]int, g.cols*g.rows)
}

// Clear resets all cells (keeps allocated capacity)
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func (g *SpatialGrid) span(p Vec2, radius float64) (minCX, maxCX, minCY, maxCY int) {
	clamp := func(v float64, n int) int {
		c := int(math.Floor(v / SpatialCellSize))
		if c < 0 {
			return 0
		}
		if c >= n {
			return n - 1
		}
		return c
	}
	return clamp(p.X-radius, g.cols), clamp(p.X+radius, g.cols),
		clamp(p.Y-radius, g.rows), clamp(p.Y+radius, g.rows)
}

// InsertCircle adds idx to all cells overlapping the circle's bounding box
func (g *SpatialGrid) InsertCircle(p Vec2, radius float64, idx int) {
	minCX, maxCX, minCY, maxCY := g.span(p, radius)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			i := cy*g.cols + cx
			g.cells[i] = append(g.cells[i], idx)
		}
	}
}

// QueryBuf appends every distinct index whose box overlaps the query box,
// highest index first, and returns the extended slice
func (g *SpatialGrid) QueryBuf(p Vec2, radius float64, buf []int) []int {
	g.stamp++
	if g.stamp == 0 {
		clear(g.seen)
		g.stamp = 1
	}
	start := len(buf)
	minCX, maxCX, minCY, maxCY := g.span(p, radius)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			for _, idx := range g.cells[cy*g.cols+cx] {
				if idx >= len(g.seen) {
					g.grow(idx + 1)
				}
				if g.seen[idx] == g.stamp {
					continue
				}
				g.seen[idx] = g.stamp
				buf = append(buf, idx)
			}
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(buf[start:])))
	return buf
}

func (g *SpatialGrid) grow(n int) {
	if n <= cap(g.seen) {
		g.seen = g.seen[:n]
		return
	}
	seen := make([]uint32, n, 2*n)
	copy(seen, g.seen)
	g.seen = seen
}

// Rebuild indexes every asteroid by its slice position
func (g *SpatialGrid) Rebuild(asteroids []*Asteroid) {
	g.Clear()
	for i, a := range asteroids {
		g.InsertCircle(a.Pos, a.Radius, i)
	}
}
