package tilecut

import (
	"slices"

	"github.com/gogpu/tilecut/geom"
	"github.com/gogpu/tilecut/internal/assert"
)

// FilterSegments removes all zero-length, repeated and
// inverse-repeated segments in place and returns the filtered slice.
//
// Segments are grouped by their undirected form; each group's signed
// multiplicity (+1 per min->max copy, -1 per max->min copy) decides the
// outcome: positive emits one min->max copy, negative one max->min copy,
// zero drops the group. The accumulated multiplicity of every group must
// stay within [-1, 1].
func FilterSegments(segments []geom.Segment2s64) []geom.Segment2s64 {
	segments = slices.DeleteFunc(segments, func(s geom.Segment2s64) bool {
		return s.Degenerate()
	})
	if len(segments) == 0 {
		return segments
	}

	slices.SortFunc(segments, func(lhs, rhs geom.Segment2s64) int {
		return lhs.Undirected().Compare(rhs.Undirected())
	})

	out := 0
	counter := int64(0)
	orientAndPush := func(segment geom.Segment2s64) {
		assert.Pre(counter >= -1 && counter <= 1, "segment multiplicity in [-1, 1]")
		if counter > 0 {
			segments[out] = segment
			out++
		} else if counter < 0 {
			segments[out] = segment.Flipped()
			out++
		}
	}

	mainSegment := segments[0]
	counter = 1
	for _, segment := range segments[1:] {
		switch {
		case mainSegment == segment:
			counter++
		case mainSegment == segment.Flipped():
			counter--
		default:
			orientAndPush(mainSegment)
			mainSegment = segment
			counter = 1
		}
	}
	orientAndPush(mainSegment)
	return segments[:out]
}
