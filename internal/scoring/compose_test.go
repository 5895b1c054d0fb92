package scoring_test

import (
	"testing"

	"pageant-scoring-system/internal/scoring"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(segment uint, raw float64) scoring.SegmentAggregate {
	return scoring.SegmentAggregate{
		SegmentID: segment,
		Raw:       raw,
		Judges:    []scoring.JudgeTotal{{JudgeID: 1, Total: raw}},
	}
}

func TestComposeWeightedTotal(t *testing.T) {
	weights := []scoring.SegmentWeight{
		{SegmentID: 1, SegmentName: "Talent", Weight: 60},
		{SegmentID: 2, SegmentName: "Evening Gown", Weight: 40},
	}
	overall, err := scoring.Compose(weights, map[uint]scoring.SegmentAggregate{
		1: scored(1, 90),
		2: scored(2, 80),
	})
	require.NoError(t, err)
	assert.InDelta(t, 86.0, overall.Total, 1e-9)
	assert.Equal(t, "86.00%", scoring.FormatPercent(overall.Total))

	require.Len(t, overall.Breakdown, 2)
	assert.Equal(t, "Talent", overall.Breakdown[0].SegmentName)
	assert.InDelta(t, 54.0, overall.Breakdown[0].Weighted, 1e-9)
	assert.InDelta(t, 32.0, overall.Breakdown[1].Weighted, 1e-9)
}

func TestComposeNormalizesTenPointAggregates(t *testing.T) {
	weights := []scoring.SegmentWeight{{SegmentID: 1, Weight: 50}}
	overall, err := scoring.Compose(weights, map[uint]scoring.SegmentAggregate{1: scored(1, 8.5)})
	require.NoError(t, err)
	assert.InDelta(t, 85.0, overall.Breakdown[0].Normalized, 1e-9)
	assert.InDelta(t, 42.5, overall.Total, 1e-9)
}

func TestComposeExcludesUnconfiguredSegments(t *testing.T) {
	weights := []scoring.SegmentWeight{{SegmentID: 1, Weight: 100}}
	overall, err := scoring.Compose(weights, map[uint]scoring.SegmentAggregate{
		1: scored(1, 70),
		2: scored(2, 100),
	})
	require.NoError(t, err)
	assert.InDelta(t, 70.0, overall.Total, 1e-9)
	require.Len(t, overall.Breakdown, 1)
	assert.Equal(t, uint(1), overall.Breakdown[0].SegmentID)
}

func TestComposeUnscoredSegmentContributesZero(t *testing.T) {
	weights := []scoring.SegmentWeight{
		{SegmentID: 1, Weight: 50},
		{SegmentID: 2, Weight: 50},
	}
	overall, err := scoring.Compose(weights, map[uint]scoring.SegmentAggregate{1: scored(1, 90)})
	require.NoError(t, err)
	assert.InDelta(t, 45.0, overall.Total, 1e-9)
	assert.True(t, overall.Breakdown[0].Scored)
	assert.False(t, overall.Breakdown[1].Scored)
	assert.Zero(t, overall.Breakdown[1].Weighted)
}

func TestComposeWithoutWeights(t *testing.T) {
	_, err := scoring.Compose(nil, map[uint]scoring.SegmentAggregate{1: scored(1, 90)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, scoring.ErrNotConfigured))
}
