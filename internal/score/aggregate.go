package score

import "github.com/lucidity/beatmap/internal/model"

// CategoryAverages returns the document-wide mean score per category. An
// empty segment list yields all zeros; the guard is explicit to avoid a
// division by zero.
func CategoryAverages(segments []model.Segment) model.Breakdown {
	var avgs model.Breakdown
	if len(segments) == 0 {
		return avgs
	}

	for _, seg := range segments {
		for i, v := range seg.Breakdown {
			avgs[i] += v
		}
	}
	for i := range avgs {
		avgs[i] /= float64(len(segments))
	}
	return avgs
}

// MeanScore returns the mean overall score across all segments, zero when
// the list is empty.
func MeanScore(segments []model.Segment) float64 {
	if len(segments) == 0 {
		return 0
	}
	var sum float64
	for _, seg := range segments {
		sum += seg.Score
	}
	return sum / float64(len(segments))
}
