package render

import (
	"image/color"
	"testing"

	"github.com/gogpu/tilecut/geom"
)

func TestTileRendersSegments(t *testing.T) {
	segments := []geom.Segment2u16{
		{A: geom.V2[uint16](0, 0), B: geom.V2[uint16](8, 8)},
	}
	cuts := []geom.Segment2u16{
		{A: geom.V2[uint16](0, 8), B: geom.V2[uint16](0, 0)},
	}
	img := Tile(8, segments, cuts, Options{Size: 64})

	if got := img.Bounds().Dx(); got != 64 {
		t.Fatalf("width = %d, want 64", got)
	}
	// Something must be drawn: not every pixel stays the background.
	background := color.RGBAModel.Convert(color.White).(color.RGBA)
	drawn := 0
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			if img.RGBAAt(x, y) != background {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("nothing drawn")
	}
}

func TestTileDefaultOptions(t *testing.T) {
	img := Tile(8, nil, nil, Options{})
	if got := img.Bounds().Dx(); got != 512 {
		t.Errorf("default size = %d, want 512", got)
	}
}
