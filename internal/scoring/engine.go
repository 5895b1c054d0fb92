package scoring

import (
	"context"

	"github.com/pkg/errors"
)

// Engine 榜单查询门面，单人赛与组合赛共用，区别只在 ScoreSource 与 Scope
type Engine struct {
	source ScoreSource
}

func NewEngine(source ScoreSource) *Engine {
	return &Engine{source: source}
}

// SegmentStanding 分环节榜单中的一行
type SegmentStanding struct {
	Subject   Subject
	Aggregate SegmentAggregate
}

type SegmentBoard struct {
	Scope     Scope
	Segment   Segment
	Standings []Ranked[SegmentStanding]
}

// OverallStanding 总榜中的一行
type OverallStanding struct {
	Subject Subject
	Overall Overall
}

type OverallBoard struct {
	Scope     Scope
	Segments  []SegmentWeight
	Standings []Ranked[OverallStanding]
}

// SegmentLeaderboard 分环节榜单，按未归一化的评委平均分排序
func (e *Engine) SegmentLeaderboard(ctx context.Context, scope Scope, segmentID uint) (*SegmentBoard, error) {
	segment, err := e.source.Segment(ctx, scope, segmentID)
	if err != nil {
		return nil, aggregationFailure(err, "load segment")
	}
	subjects, err := e.source.Subjects(ctx, scope)
	if err != nil {
		return nil, aggregationFailure(err, "load subjects")
	}
	rows, err := e.source.Scores(ctx, scope, segmentID)
	if err != nil {
		return nil, aggregationFailure(err, "load scores")
	}

	aggs := aggregateAll(rows)
	standings := make([]SegmentStanding, 0, len(subjects))
	for _, s := range subjects {
		agg, ok := aggs[aggregateKey{subjectID: s.ID, segmentID: segmentID}]
		if !ok {
			agg = SegmentAggregate{SubjectID: s.ID, SegmentID: segmentID}
		}
		standings = append(standings, SegmentStanding{Subject: s, Aggregate: agg})
	}

	return &SegmentBoard{
		Scope:   scope,
		Segment: segment,
		Standings: Rank(standings, func(s SegmentStanding) float64 {
			return s.Aggregate.Raw
		}),
	}, nil
}

// OverallLeaderboard 总榜，按归一化后的加权总分排序
func (e *Engine) OverallLeaderboard(ctx context.Context, scope Scope) (*OverallBoard, error) {
	weights, err := e.source.SegmentWeights(ctx, scope)
	if err != nil {
		return nil, aggregationFailure(err, "load segment weights")
	}
	if len(weights) == 0 {
		return nil, errors.WithStack(ErrNotConfigured)
	}
	subjects, err := e.source.Subjects(ctx, scope)
	if err != nil {
		return nil, aggregationFailure(err, "load subjects")
	}

	segmentIDs := make([]uint, len(weights))
	for i, w := range weights {
		segmentIDs[i] = w.SegmentID
	}
	rows, err := e.source.Scores(ctx, scope, segmentIDs...)
	if err != nil {
		return nil, aggregationFailure(err, "load scores")
	}

	aggs := aggregateAll(rows)
	standings := make([]OverallStanding, 0, len(subjects))
	for _, s := range subjects {
		perSegment := make(map[uint]SegmentAggregate, len(weights))
		for _, w := range weights {
			if agg, ok := aggs[aggregateKey{subjectID: s.ID, segmentID: w.SegmentID}]; ok {
				perSegment[w.SegmentID] = agg
			}
		}
		overall, err := Compose(weights, perSegment)
		if err != nil {
			return nil, err
		}
		standings = append(standings, OverallStanding{Subject: s, Overall: overall})
	}

	return &OverallBoard{
		Scope:    scope,
		Segments: weights,
		Standings: Rank(standings, func(s OverallStanding) float64 {
			return s.Overall.Total
		}),
	}, nil
}
