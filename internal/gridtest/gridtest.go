// Package gridtest provides the grid parameters shared by tests:
// an EPSG:3857-style world on a 2^32 by 2^32 cell grid for coordinates
// not going beyond 2^25, as generated by cmd/gridgen.
package gridtest

import "github.com/gogpu/tilecut/exact"

// Embedded returns the reference grid parameters. Tests typically
// override CellSize; the constants stay valid for any cell size not
// below DesiredCellSize.
func Embedded() exact.GridParameters {
	return exact.GridParameters{
		CellSize:        0x1.31bf84570a3d7p-07,
		DesiredCellSize: 0x1.31bf84570a3d7p-07,
		MinInput:        0x1.47ae147ae147bp-08,
		MaxInput:        0x1p+25,
		ColumnBorderIntersection: exact.ReliableFractionRange{
			MinReliableFractionalPart: 0x1.195461dff3010p-17,
			MaxReliableFractionalPart: 0x1.fffee6ab9e200p-01,
		},
	}
}

// WithCellSize returns the embedded parameters with the cell size
// overridden. The new size must not be below the desired cell size.
func WithCellSize(cellSize float64) exact.GridParameters {
	grid := Embedded()
	grid.CellSize = cellSize
	return grid
}
