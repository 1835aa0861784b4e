package tilecut

import (
	"slices"

	"github.com/gogpu/tilecut/geom"
)

// Tile is one output bucket: the tile coordinates and the multipolygon
// segments inside it, in tile-local coordinates. Segments points into
// the shared arena passed to CollectTiles and stays valid until that
// arena is mutated.
type Tile struct {
	Coords   geom.Vec2s64
	Segments []geom.Segment2u16
}

// CollectTiles groups segments by the tile that owns them and returns
// the tile list sorted by coordinates together with the filled segment
// arena.
//
// uniqueSegments is reordered in place. Segments lying entirely on a
// tile boundary belong to the tile in the left half-plane relative to
// the segment, so a tile never receives a 2D part of a polygon twice.
func CollectTiles(tileGrid TileGrid, uniqueSegments []geom.Segment2s64, tileSegments []geom.Segment2u16, tiles []Tile) ([]geom.Segment2u16, []Tile) {
	tileSegments = tileSegments[:0]
	tiles = tiles[:0]
	if len(uniqueSegments) == 0 {
		return tileSegments, tiles
	}

	slices.SortFunc(uniqueSegments, func(lhs, rhs geom.Segment2s64) int {
		return tileGrid.TileOfSegment(lhs).Compare(tileGrid.TileOfSegment(rhs))
	})

	if cap(tileSegments) < len(uniqueSegments) {
		tileSegments = slices.Grow(tileSegments, len(uniqueSegments))
	}

	spanStart := 0
	prevTile := tileGrid.TileOfSegment(uniqueSegments[0])
	flushTile := func(tile geom.Vec2s64) {
		tiles = append(tiles, Tile{
			Coords:   tile,
			Segments: tileSegments[spanStart:len(tileSegments):len(tileSegments)],
		})
		spanStart = len(tileSegments)
	}

	for _, segment := range uniqueSegments {
		tile := tileGrid.TileOfSegment(segment)
		if tile != prevTile {
			flushTile(prevTile)
			prevTile = tile
		}
		tileSegments = append(tileSegments, tileGrid.LocalSegment(tile, segment))
	}
	flushTile(prevTile)

	logger().Debug("tiles collected",
		"segments", len(uniqueSegments),
		"tiles", len(tiles))
	return tileSegments, tiles
}
