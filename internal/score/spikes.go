package score

import "github.com/lucidity/beatmap/internal/model"

// DefaultSpikeThreshold is the adjacent-delta threshold above which a score
// increase counts as a spike.
const DefaultSpikeThreshold = 20.0

// DetectSpikes scans the ordered segment list for abrupt score increases.
// A spike is any index i >= 1 where overall[i] - overall[i-1] exceeds the
// threshold; index 0 has no predecessor and is never a spike origin. No
// smoothing is applied, so adjacent spikes are possible.
func DetectSpikes(segments []model.Segment, threshold float64) []model.Spike {
	var spikes []model.Spike
	for i := 1; i < len(segments); i++ {
		delta := segments[i].Score - segments[i-1].Score
		if delta > threshold {
			position := float64(i) / float64(len(segments))
			spikes = append(spikes, model.Spike{
				Position: position,
				Percent:  position * 100,
			})
		}
	}
	return spikes
}
