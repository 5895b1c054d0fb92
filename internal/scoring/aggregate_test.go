package scoring_test

import (
	"fmt"
	"testing"

	"pageant-scoring-system/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(judge, subject, segment, criterion uint, value float64) scoring.ScoreRow {
	return scoring.ScoreRow{
		JudgeID:     judge,
		JudgeName:   judgeName(judge),
		SubjectID:   subject,
		SegmentID:   segment,
		CriterionID: criterion,
		Value:       value,
	}
}

func judgeName(id uint) string {
	return fmt.Sprintf("judge-%d", id)
}

func TestAggregateMeanOverScoringJudges(t *testing.T) {
	rows := []scoring.ScoreRow{
		row(1, 7, 3, 10, 50), row(1, 7, 3, 11, 30),
		row(2, 7, 3, 10, 35), row(2, 7, 3, 11, 25),
	}

	agg := scoring.Aggregate(7, 3, rows)
	assert.True(t, agg.Scored())
	assert.Equal(t, 70.0, agg.Raw)
	require.Len(t, agg.Judges, 2)
	assert.Equal(t, 80.0, agg.Judges[0].Total)
	assert.Equal(t, 60.0, agg.Judges[1].Total)
}

func TestAggregateIgnoresOtherSubjectsAndSegments(t *testing.T) {
	rows := []scoring.ScoreRow{
		row(1, 7, 3, 10, 80),
		row(2, 7, 3, 10, 60),
		// 评委 3 只给别的选手和别的环节打过分，不进入分母
		row(3, 8, 3, 10, 10),
		row(3, 7, 4, 20, 10),
	}

	agg := scoring.Aggregate(7, 3, rows)
	assert.Equal(t, 70.0, agg.Raw)
	assert.Len(t, agg.Judges, 2)
}

func TestAggregateBreakdownSortedByJudge(t *testing.T) {
	rows := []scoring.ScoreRow{
		row(5, 1, 1, 1, 10),
		row(2, 1, 1, 1, 20),
		row(9, 1, 1, 1, 30),
	}

	agg := scoring.Aggregate(1, 1, rows)
	require.Len(t, agg.Judges, 3)
	assert.Equal(t, uint(2), agg.Judges[0].JudgeID)
	assert.Equal(t, uint(5), agg.Judges[1].JudgeID)
	assert.Equal(t, uint(9), agg.Judges[2].JudgeID)
	assert.Equal(t, 20.0, agg.Raw)
}

func TestAggregateWithoutScores(t *testing.T) {
	agg := scoring.Aggregate(7, 3, nil)
	assert.False(t, agg.Scored())
	assert.Zero(t, agg.Raw)
	assert.Empty(t, agg.Judges)
}

func TestAggregateScoredZeroIsScored(t *testing.T) {
	agg := scoring.Aggregate(7, 3, []scoring.ScoreRow{row(1, 7, 3, 10, 0)})
	assert.True(t, agg.Scored())
	assert.Zero(t, agg.Raw)
}

func TestAggregateMeanIsOrderIndependent(t *testing.T) {
	rows := []scoring.ScoreRow{
		row(1, 1, 1, 10, 0.1), row(2, 1, 1, 10, 0.2), row(3, 1, 1, 10, 0.3),
	}
	want := scoring.Aggregate(1, 1, rows).Raw
	for i := 0; i < 500; i++ {
		require.Equal(t, want, scoring.Aggregate(1, 1, rows).Raw)
	}
}

func TestIdenticalJudgeTotalsShareRank(t *testing.T) {
	// 两位选手拿到同一组评委总分，只是评委不同
	rows := []scoring.ScoreRow{
		row(1, 1, 1, 10, 60), row(2, 1, 1, 10, 60.1), row(3, 1, 1, 10, 72.3),
		row(1, 2, 1, 10, 72.3), row(2, 2, 1, 10, 60), row(3, 2, 1, 10, 60.1),
	}
	for i := 0; i < 200; i++ {
		aggs := []scoring.SegmentAggregate{
			scoring.Aggregate(1, 1, rows),
			scoring.Aggregate(2, 1, rows),
		}
		ranked := scoring.Rank(aggs, func(a scoring.SegmentAggregate) float64 { return a.Raw })
		require.Len(t, ranked, 2)
		require.Equal(t, 1, ranked[0].Rank)
		require.Equal(t, 1, ranked[1].Rank)
		require.Equal(t, uint(1), ranked[0].Item.SubjectID)
	}
}
