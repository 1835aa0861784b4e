// Package tilecut cuts 2D multipolygon geometry against a uniform square
// tile grid, producing topologically consistent, integer-quantized
// segments on a finer cell sub-grid.
//
// # Overview
//
// Input vertices arrive as float64 coordinates. The pipeline snaps them
// to an integer cell grid (snap rounding over a hot-pixel index), groups
// the resulting segments per tile in local uint16 coordinates, and
// completes each tile with synthetic "cut" segments along the tile
// border so every tile carries a closed polygonal boundary. All
// geometric decisions are made with exact floating-point expansions
// (package exact), so results agree with an arbitrary-precision oracle.
//
// # Quick Start
//
//	grid := tilecut.NewTileCellGrid(params, exact.RoundingCell, origin, tileSize)
//
//	var collector tilecut.HotPixelCollector
//	collector.Init(&grid)
//	for _, contour := range contours {
//		collector.NewContour()
//		for _, v := range contour {
//			collector.AddVertexAndTileCuts(v)
//		}
//	}
//	index := collector.BuildIndex()
//
//	var snapped []geom.Vec2s64
//	for _, contour := range contours {
//		snapped = tilecut.SnapRound(index, contour, snapped[:0])
//		// accumulate segments ...
//	}
//
// The higher-level Cutter runs the full pipeline (collect, snap, filter,
// group, cut) for one geometry; CutAllParallel fans independent
// geometries out over a worker pool.
//
// # Architecture
//
// The library is organized into:
//   - Public API: TileGrid, TileCellGrid, HotPixelCollector, SnapRound,
//     LineSnapper, FilterSegments, CollectTiles, FindCuts, Cutter
//   - geom: generic Vec2/Segment2 value types
//   - exact: exact predicates and constructors over GridParameters
//   - internal: expansion arithmetic, contract checks, worker pool
package tilecut
