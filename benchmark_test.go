package tilecut

import (
	"testing"

	"github.com/gogpu/tilecut/exact"
	"github.com/gogpu/tilecut/geom"
	"github.com/gogpu/tilecut/internal/gridtest"
)

func BenchmarkOrientation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = exact.Orientation(1.0+1e6, 2.0+1e6, 6.0+1e6, 10.0+1e6, 11.0+1e6, 18.0+1e6)
	}
}

func BenchmarkSnapRoundSquare(b *testing.B) {
	grid := NewTileCellGrid(gridtest.WithCellSize(1.1), exact.RoundingCell, geom.Vec2s64{}, 8)
	contour := squareContour(1.1)

	var collector HotPixelCollector
	collector.Init(&grid)
	collector.NewContour()
	for _, vertex := range contour {
		collector.AddVertexAndTileCuts(vertex)
	}
	index := collector.BuildIndex()

	var out []geom.Vec2s64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = SnapRound(index, contour, out[:0])
	}
	_ = out
}

func BenchmarkCutterSquare(b *testing.B) {
	grid := NewTileCellGrid(gridtest.WithCellSize(1.1), exact.RoundingCell, geom.Vec2s64{}, 8)
	cutter := NewCutter(grid)
	geometry := [][]geom.Vec2f64{squareContour(1.1)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cutter.Cut(geometry)
	}
}

func BenchmarkFindCuts(b *testing.B) {
	grid := NewTileGrid(geom.Vec2s64{}, 100)
	segments := []geom.Segment2u16{
		{A: geom.V2[uint16](0, 1), B: geom.V2[uint16](1, 0)},
	}
	var result []geom.Segment2u16
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result = FindCuts(grid, segments, result[:0])
	}
	_ = result
}
