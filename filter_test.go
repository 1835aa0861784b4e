package tilecut

import (
	"slices"
	"testing"

	"github.com/gogpu/tilecut/geom"
)

func seg(ax, ay, bx, by int64) geom.Segment2s64 {
	return geom.Segment2s64{A: geom.V2(ax, ay), B: geom.V2(bx, by)}
}

func TestFilterSegments(t *testing.T) {
	tests := []struct {
		name string
		in   []geom.Segment2s64
		want []geom.Segment2s64
	}{
		{
			"empty",
			nil,
			nil,
		},
		{
			"drops zero length",
			[]geom.Segment2s64{seg(1, 1, 1, 1), seg(0, 0, 1, 0)},
			[]geom.Segment2s64{seg(0, 0, 1, 0)},
		},
		{
			"keeps distinct",
			[]geom.Segment2s64{seg(0, 0, 1, 0), seg(1, 0, 1, 1)},
			[]geom.Segment2s64{seg(0, 0, 1, 0), seg(1, 0, 1, 1)},
		},
		{
			"cancels opposite pair",
			[]geom.Segment2s64{seg(0, 0, 1, 0), seg(1, 0, 0, 0)},
			[]geom.Segment2s64{},
		},
		{
			"orientation preserved forward",
			[]geom.Segment2s64{seg(2, 2, 0, 0)},
			[]geom.Segment2s64{seg(2, 2, 0, 0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]geom.Segment2s64(nil), tt.in...)
			got := FilterSegments(in)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterSegments = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilterSegmentsCancellation(t *testing.T) {
	in := []geom.Segment2s64{
		seg(0, 0, 1, 0),
		seg(5, 5, 6, 6),
		seg(1, 0, 0, 0),
	}
	got := FilterSegments(in)
	want := []geom.Segment2s64{seg(5, 5, 6, 6)}
	if !slices.Equal(got, want) {
		t.Errorf("FilterSegments = %v, want %v", got, want)
	}
}

// TestFilterSegmentsIdempotent checks that applying the filter twice
// equals applying it once.
func TestFilterSegmentsIdempotent(t *testing.T) {
	in := []geom.Segment2s64{
		seg(0, 0, 1, 0),
		seg(1, 0, 1, 1),
		seg(1, 1, 0, 0),
		seg(2, 2, 2, 2),
		seg(3, 3, 2, 2),
		seg(2, 2, 3, 3),
	}
	once := FilterSegments(append([]geom.Segment2s64(nil), in...))
	twice := FilterSegments(append([]geom.Segment2s64(nil), once...))
	if !slices.Equal(once, twice) {
		t.Errorf("filter not idempotent: %v != %v", once, twice)
	}
}
