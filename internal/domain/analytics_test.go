package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortRankings(t *testing.T) {
	rankings := []InfluencerRanking{
		{InfluencerID: "inf-c", TotalRevenue: 100},
		{InfluencerID: "inf-a", TotalRevenue: 300},
		{InfluencerID: "inf-d", TotalRevenue: 100},
		{InfluencerID: "inf-b", TotalRevenue: 100},
	}
	got := SortRankings(rankings, 3)
	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.InfluencerID)
	}
	assert.Equal(t, []string{"inf-a", "inf-b", "inf-c"}, ids)
}

func TestSortRankingsNoLimit(t *testing.T) {
	got := SortRankings([]InfluencerRanking{{InfluencerID: "x"}, {InfluencerID: "a"}}, 0)
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].InfluencerID)
	assert.Empty(t, SortRankings(nil, TopInfluencersLimit))
}
