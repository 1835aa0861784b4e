package tilecut

import (
	"github.com/gogpu/tilecut/geom"
	"github.com/gogpu/tilecut/internal/parallel"
)

// TileOutput is the result of cutting one geometry against one tile:
// the snapped multipolygon segments inside the tile and the cut
// segments closing the polygon along the tile border, all in tile-local
// coordinates.
type TileOutput struct {
	Coords   geom.Vec2s64
	Segments []geom.Segment2u16
	Cuts     []geom.Segment2u16
}

// Cutter runs the full pipeline for one geometry at a time: hot pixel
// collection, snap rounding, segment filtering, tile grouping and cut
// synthesis. A Cutter owns its scratch arenas and may be reused across
// geometries; it must not be shared between goroutines.
type Cutter struct {
	grid      TileCellGrid
	collector HotPixelCollector

	snapped      []geom.Vec2s64
	segments     []geom.Segment2s64
	tileSegments []geom.Segment2u16
	tiles        []Tile
}

// NewCutter creates a cutter over the given grid.
func NewCutter(grid TileCellGrid) *Cutter {
	return &Cutter{grid: grid}
}

// Grid returns the tile-cell grid the cutter operates on.
func (c *Cutter) Grid() *TileCellGrid {
	return &c.grid
}

// Cut processes one multipolygon given as closed contours (first vertex
// repeated last) and returns the per-tile output. The returned slices
// point into the cutter's arenas and stay valid until the next Cut call.
func (c *Cutter) Cut(contours [][]geom.Vec2f64) []TileOutput {
	c.collector.Init(&c.grid)
	for _, contour := range contours {
		c.collector.NewContour()
		for _, vertex := range contour {
			c.collector.AddVertexAndTileCuts(vertex)
		}
	}
	index := c.collector.BuildIndex()

	c.segments = c.segments[:0]
	for _, contour := range contours {
		c.snapped = SnapRound(index, contour, c.snapped[:0])
		for i := 1; i < len(c.snapped); i++ {
			c.segments = append(c.segments, geom.Segment2s64{
				A: c.snapped[i-1],
				B: c.snapped[i],
			})
		}
	}

	c.segments = FilterSegments(c.segments)
	c.tileSegments, c.tiles = CollectTiles(c.grid.Tiles(), c.segments, c.tileSegments, c.tiles)

	output := make([]TileOutput, len(c.tiles))
	for i, tile := range c.tiles {
		output[i] = TileOutput{
			Coords:   tile.Coords,
			Segments: tile.Segments,
			Cuts:     FindCuts(c.grid.Tiles(), tile.Segments, nil),
		}
	}
	return output
}

// CutAllParallel cuts independent geometries concurrently, one pipeline
// per worker, and returns the per-geometry outputs in input order.
// workers <= 0 selects GOMAXPROCS workers.
func CutAllParallel(grid TileCellGrid, geometries [][][]geom.Vec2f64, workers int) [][]TileOutput {
	pool := parallel.NewPool(workers)
	defer pool.Close()

	outputs := make([][]TileOutput, len(geometries))
	cutters := make(chan *Cutter, pool.Workers())
	for i := 0; i < pool.Workers(); i++ {
		cutters <- NewCutter(grid)
	}

	for i := range geometries {
		pool.Submit(func() {
			cutter := <-cutters
			result := cutter.Cut(geometries[i])
			// The arenas are reused for the next geometry; hand the
			// caller stable copies.
			for t := range result {
				result[t].Segments = append([]geom.Segment2u16(nil), result[t].Segments...)
			}
			outputs[i] = result
			cutters <- cutter
		})
	}
	pool.Wait()
	return outputs
}
