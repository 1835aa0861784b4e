package tilecut

import (
	"math"
	"slices"
	"testing"

	"github.com/gogpu/tilecut/exact"
	"github.com/gogpu/tilecut/geom"
	"github.com/gogpu/tilecut/internal/gridtest"
)

func nextFloat(v float64) float64 { return math.Nextafter(v, math.Inf(1)) }
func prevFloat(v float64) float64 { return math.Nextafter(v, math.Inf(-1)) }

// snapContour collects hot pixels for one contour and snap rounds it.
func snapContour(t *testing.T, grid *TileCellGrid, contour []geom.Vec2f64) []geom.Vec2s64 {
	t.Helper()
	var collector HotPixelCollector
	collector.Init(grid)
	collector.NewContour()
	for _, vertex := range contour {
		collector.AddVertexAndTileCuts(vertex)
	}
	index := collector.BuildIndex()
	return SnapRound(index, contour, nil)
}

func TestSnapRoundPerfectSquare(t *testing.T) {
	grid := NewTileCellGrid(gridtest.WithCellSize(1.1), exact.RoundingCell, geom.Vec2s64{}, 8)
	cell := 1.1

	contour := []geom.Vec2f64{
		{X: cell * -4, Y: cell * -4},
		{X: cell * +4, Y: cell * -4},
		{X: cell * +4, Y: cell * +4},
		{X: cell * -4, Y: cell * +4},
		{X: cell * -4, Y: cell * -4},
	}
	want := []geom.Vec2s64{
		{X: -4, Y: -4},
		{X: 0, Y: -4},
		{X: +4, Y: -4},
		{X: +4, Y: 0},
		{X: +4, Y: +4},
		{X: 0, Y: +4},
		{X: -4, Y: +4},
		{X: -4, Y: 0},
		{X: -4, Y: -4},
	}

	got := snapContour(t, &grid, contour)
	if !slices.Equal(got, want) {
		t.Errorf("snap round = %v, want %v", got, want)
	}
}

func TestSnapRoundDistortedSquare(t *testing.T) {
	grid := NewTileCellGrid(gridtest.WithCellSize(1.1), exact.RoundingCell, geom.Vec2s64{}, 8)
	cell := 1.1

	contour := []geom.Vec2f64{
		{X: prevFloat(cell * -4), Y: cell * -4},
		{X: nextFloat(cell * +4), Y: prevFloat(cell * -4)},
		{X: prevFloat(cell * +4), Y: nextFloat(cell * +4)},
		{X: cell * -4, Y: cell * +4},
		{X: prevFloat(cell * -4), Y: cell * -4},
	}
	want := []geom.Vec2s64{
		{X: -5, Y: -4},
		{X: 0, Y: -5},
		{X: +4, Y: -5},
		{X: +4, Y: 0}, // Exactly at corner.
		{X: +3, Y: +4},
		{X: 0, Y: +4},
		{X: -4, Y: +4},
		{X: -5, Y: 0},
		{X: -5, Y: -4},
	}

	got := snapContour(t, &grid, contour)
	if !slices.Equal(got, want) {
		t.Errorf("snap round = %v, want %v", got, want)
	}
}

func TestSnapRoundHalfIntegerPerfectSquare(t *testing.T) {
	grid := NewTileCellGrid(gridtest.WithCellSize(1), exact.RoundingCell, geom.Vec2s64{}, 8)

	contour := []geom.Vec2f64{
		{X: -4.0 + 0.5, Y: -4.0 + 0.5},
		{X: +4.0 + 0.5, Y: -4.0 + 0.5},
		{X: +4.0 + 0.5, Y: +4.0 + 0.5},
		{X: -4.0 + 0.5, Y: +4.0 + 0.5},
		{X: -4.0 + 0.5, Y: -4.0 + 0.5},
	}
	want := []geom.Vec2s64{
		{X: -4, Y: -4},
		{X: 0, Y: -4},
		{X: +4, Y: -4},
		{X: +4, Y: 0},
		{X: +4, Y: +4},
		{X: 0, Y: +4},
		{X: -4, Y: +4},
		{X: -4, Y: 0},
		{X: -4, Y: -4},
	}

	got := snapContour(t, &grid, contour)
	if !slices.Equal(got, want) {
		t.Errorf("snap round = %v, want %v", got, want)
	}
}

// TestSnapRoundNeverSkipsHotPixels verifies that no hot pixel lying on
// the rounded segment support is skipped: every hot pixel of the index
// that the original segment intersects appears in the output.
func TestSnapRoundNeverSkipsHotPixels(t *testing.T) {
	grid := NewTileCellGrid(gridtest.WithCellSize(1.1), exact.RoundingCell, geom.Vec2s64{}, 4)

	contour := []geom.Vec2f64{
		{X: -10.3, Y: -7.9},
		{X: 12.7, Y: 3.4},
		{X: -4.2, Y: 9.6},
		{X: -10.3, Y: -7.9},
	}

	var collector HotPixelCollector
	collector.Init(&grid)
	collector.NewContour()
	for _, vertex := range contour {
		collector.AddVertexAndTileCuts(vertex)
	}
	index := collector.BuildIndex()
	rounded := SnapRound(index, contour, nil)

	// Each original segment's interior hot pixels must appear in the
	// output between its endpoint pixels.
	for i := 1; i < len(contour); i++ {
		prevPixel := grid.CellOf(contour[i-1])
		currPixel := grid.CellOf(contour[i])
		expected := index.findIf(
			pixelOrder(prevPixel.X <= currPixel.X),
			pixelOrder(prevPixel.Y <= currPixel.Y),
			min(prevPixel.X, currPixel.X), max(prevPixel.X, currPixel.X),
			min(prevPixel.Y, currPixel.Y), max(prevPixel.Y, currPixel.Y),
			nil,
			func(hp HotPixel) bool {
				if hp == prevPixel || hp == currPixel {
					return false
				}
				return grid.LineIntersectsCell(geom.Segment2f64{A: contour[i-1], B: contour[i]}, hp)
			})
		for _, pixel := range expected {
			if !slices.Contains(rounded, pixel) {
				t.Errorf("segment %d: hot pixel %v missing from output", i, pixel)
			}
		}
	}
	if rounded[0] != rounded[len(rounded)-1] {
		t.Errorf("rounded contour is not closed: %v", rounded)
	}
}
