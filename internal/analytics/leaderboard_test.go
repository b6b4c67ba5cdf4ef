package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedFixture() []InfluencerMetrics {
	return []InfluencerMetrics{
		{InfluencerID: 1, ROI: RatioOf(4.0)},
		{InfluencerID: 2, ROI: RatioOf(0)},
		{InfluencerID: 3, ROI: NA()},
		{InfluencerID: 4, ROI: RatioOf(1.5)},
	}
}

func ids(ranked []InfluencerMetrics) []int64 {
	out := make([]int64, len(ranked))
	for i, r := range ranked {
		out[i] = r.InfluencerID
	}
	return out
}

func TestRankDescending(t *testing.T) {
	ranked := Rank(rankedFixture(), Descending)
	// N/A всегда последние при убывании.
	assert.Equal(t, []int64{1, 4, 2, 3}, ids(ranked))
}

func TestRankAscending(t *testing.T) {
	ranked := Rank(rankedFixture(), Ascending)
	// N/A всегда первые при возрастании.
	assert.Equal(t, []int64{3, 2, 4, 1}, ids(ranked))
}

func TestRankTieBreakByID(t *testing.T) {
	ties := []InfluencerMetrics{
		{InfluencerID: 9, ROI: RatioOf(2.0)},
		{InfluencerID: 3, ROI: RatioOf(2.0)},
		{InfluencerID: 6, ROI: RatioOf(2.0)},
	}

	// При равных ROI id идет по возрастанию в обоих направлениях.
	assert.Equal(t, []int64{3, 6, 9}, ids(Rank(ties, Descending)))
	assert.Equal(t, []int64{3, 6, 9}, ids(Rank(ties, Ascending)))
}

func TestRankNAGroupOrderedByID(t *testing.T) {
	nas := []InfluencerMetrics{
		{InfluencerID: 7, ROI: NA()},
		{InfluencerID: 2, ROI: NA()},
		{InfluencerID: 5, ROI: RatioOf(1.0)},
	}

	assert.Equal(t, []int64{5, 2, 7}, ids(Rank(nas, Descending)))
	assert.Equal(t, []int64{2, 7, 5}, ids(Rank(nas, Ascending)))
}

// При попарно различных ROI без N/A порядок возрастания — точное
// обращение порядка убывания.
func TestRankReverseOnDistinctROI(t *testing.T) {
	distinct := []InfluencerMetrics{
		{InfluencerID: 1, ROI: RatioOf(3.3)},
		{InfluencerID: 2, ROI: RatioOf(0.2)},
		{InfluencerID: 3, ROI: RatioOf(7.1)},
		{InfluencerID: 4, ROI: RatioOf(1.0)},
	}

	desc := ids(Rank(distinct, Descending))
	asc := ids(Rank(distinct, Ascending))
	for i := range desc {
		assert.Equal(t, desc[i], asc[len(asc)-1-i])
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	input := rankedFixture()
	Rank(input, Ascending)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(input))
}

func TestTopN(t *testing.T) {
	ranked := Rank(rankedFixture(), Descending)

	top := TopN(ranked, 2)
	require.Len(t, top, 2)
	assert.Equal(t, []int64{1, 4}, ids(top))

	assert.Len(t, TopN(ranked, 10), 4)
	assert.Empty(t, TopN(ranked, 0))
	assert.Empty(t, TopN(ranked, -1))
}

func TestRankFromComputedMetrics(t *testing.T) {
	snap := testSnapshot()
	sel := january()
	m := ComputeMetrics(snap, sel, FilterTracking(snap, sel))

	ranked := Rank(m.Influencers, Descending)
	require.Len(t, ranked, 3)
	// Asha (4.0) перед Rohan (0.0), Priya без выплаты — последняя.
	assert.Equal(t, []int64{1, 2, 3}, ids(ranked))
	assert.False(t, ranked[2].ROI.Valid)
}
