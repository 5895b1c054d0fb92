package pairleaderboard

import (
	"context"

	"pageant-scoring-system/internal/model"
	"pageant-scoring-system/internal/scoring"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Source 组合赛的 scoring.ScoreSource 实现，所有查询都按 scope 中的性别过滤
type Source struct {
	DB *gorm.DB
}

// Subjects 每个组合在某一性别下只对应一位成员
func (s Source) Subjects(ctx context.Context, scope scoring.Scope) ([]scoring.Subject, error) {
	var pairs []model.PairCandidate
	if err := s.DB.WithContext(ctx).Order("id").Find(&pairs).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	out := make([]scoring.Subject, len(pairs))
	for i, p := range pairs {
		out[i] = scoring.Subject{ID: p.ID, Name: p.Name, Member: p.MemberName(scope.Gender)}
	}
	return out, nil
}

func (s Source) Segment(ctx context.Context, scope scoring.Scope, segmentID uint) (scoring.Segment, error) {
	var segment model.PairSegment
	if err := s.DB.WithContext(ctx).First(&segment, segmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scoring.Segment{}, errors.WithStack(scoring.ErrSegmentNotFound)
		}
		return scoring.Segment{}, errors.WithStack(err)
	}
	return scoring.Segment{ID: segment.ID, Name: segment.DisplayName(scope.Gender)}, nil
}

// SegmentIDByName 环节名或任一性别的展示名均可匹配，重名时取最早创建的
func (s Source) SegmentIDByName(ctx context.Context, name string) (uint, error) {
	var segment model.PairSegment
	err := s.DB.WithContext(ctx).
		Where("name = ? OR male_name = ? OR female_name = ?", name, name, name).
		Order("id").
		First(&segment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.WithStack(scoring.ErrSegmentNotFound)
		}
		return 0, errors.WithStack(err)
	}
	return segment.ID, nil
}

func (s Source) Scores(ctx context.Context, scope scoring.Scope, segmentIDs ...uint) ([]scoring.ScoreRow, error) {
	var rows []scoring.ScoreRow
	if len(segmentIDs) == 0 {
		return rows, nil
	}
	err := s.DB.WithContext(ctx).
		Model(&model.PairScore{}).
		Select("pair_score.judge_id, judge.name AS judge_name, pair_score.pair_candidate_id AS subject_id, "+
			"pair_score.pair_segment_id AS segment_id, pair_score.pair_criterion_id AS criterion_id, pair_score.value").
		Joins("JOIN judge ON judge.id = pair_score.judge_id AND judge.deleted_at IS NULL").
		Where("pair_score.gender = ? AND pair_score.pair_segment_id IN ?", scope.Gender, segmentIDs).
		Order("pair_score.id").
		Scan(&rows).Error
	return rows, errors.WithStack(err)
}

type weightRow struct {
	PairSegmentID uint
	Name          string
	MaleName      string
	FemaleName    string
	Weight        float64
}

func (s Source) SegmentWeights(ctx context.Context, scope scoring.Scope) ([]scoring.SegmentWeight, error) {
	var rows []weightRow
	err := s.DB.WithContext(ctx).
		Model(&model.PairOverallWeight{}).
		Select("pair_overall_weight.pair_segment_id, pair_segment.name, pair_segment.male_name, "+
			"pair_segment.female_name, pair_overall_weight.weight").
		Joins("JOIN pair_segment ON pair_segment.id = pair_overall_weight.pair_segment_id AND pair_segment.deleted_at IS NULL").
		Where("pair_overall_weight.gender = ?", scope.Gender).
		Order("pair_overall_weight.pair_segment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	out := make([]scoring.SegmentWeight, len(rows))
	for i, r := range rows {
		segment := model.PairSegment{Name: r.Name, MaleName: r.MaleName, FemaleName: r.FemaleName}
		out[i] = scoring.SegmentWeight{
			SegmentID:   r.PairSegmentID,
			SegmentName: segment.DisplayName(scope.Gender),
			Weight:      r.Weight,
		}
	}
	return out, nil
}
